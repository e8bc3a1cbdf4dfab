package cellselect

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
)

// Gesture outcomes recorded by Metrics.
const (
	outcomeSingle    = "single"
	outcomeRange     = "range"
	outcomeCancelled = "cancelled"
)

// Metrics collects plugin statistics. A nil *Metrics records nothing.
type Metrics struct {
	commands *prometheus.CounterVec
	gestures *prometheus.CounterVec
	selected prometheus.Gauge
}

// NewMetrics creates the collectors and registers them on reg. A nil
// registerer gives nil metrics.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	if reg == nil {
		return nil, nil
	}

	m := &Metrics{
		commands: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "tablesel_commands_total",
				Help: "Table commands received, by command and whether they were handled.",
			},
			[]string{"command", "handled"},
		),
		gestures: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "tablesel_gestures_total",
				Help: "Completed selection gestures by outcome.",
			},
			[]string{"outcome"},
		),
		selected: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "tablesel_selected_cells",
				Help: "Number of currently selected cells.",
			},
		),
	}

	for _, c := range m.toList() {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

func (m *Metrics) toList() []prometheus.Collector {
	return []prometheus.Collector{m.commands, m.gestures, m.selected}
}

// Unregister removes the collectors from reg.
func (m *Metrics) Unregister(reg prometheus.Registerer) {
	if m == nil || reg == nil {
		return
	}
	for _, c := range m.toList() {
		reg.Unregister(c)
	}
}

func (m *Metrics) command(cmd Command, handled bool) {
	if m == nil {
		return
	}
	m.commands.WithLabelValues(cmd.String(), strconv.FormatBool(handled)).Inc()
}

func (m *Metrics) gesture(outcome string) {
	if m == nil {
		return
	}
	m.gestures.WithLabelValues(outcome).Inc()
}

func (m *Metrics) setSelected(n int) {
	if m == nil {
		return
	}
	m.selected.Set(float64(n))
}
