package editor

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"golang.org/x/net/html"

	"github.com/tsawler/tablesel/model"
)

type stubLayout struct {
	boxes map[*html.Node]model.BBox
	at    *html.Node
}

func (l *stubLayout) Box(n *html.Node) (model.BBox, bool) {
	b, ok := l.boxes[n]
	return b, ok
}

func (l *stubLayout) ElementAt(model.Point) *html.Node {
	return l.at
}

func TestNew_Defaults(t *testing.T) {
	root, _, _ := fixture(t)
	c := New(root)

	if c.Root != root {
		t.Error("Root not set")
	}
	if c.Events == nil || c.Locks == nil || c.Create == nil || c.Selection == nil || c.Log == nil {
		t.Fatal("New() left a collaborator nil")
	}
	if c.ReadOnly() {
		t.Error("ReadOnly() = true by default")
	}
	if c.Log != logrus.StandardLogger() {
		t.Error("default logger is not the standard logger")
	}
}

func TestNew_Options(t *testing.T) {
	root, _, _ := fixture(t)
	logger, _ := test.NewNullLogger()
	caret := &Caret{}
	layout := &stubLayout{}

	c := New(root, WithReadOnly(true), WithLogger(logger), WithSelection(caret), WithLayout(layout))

	if !c.ReadOnly() {
		t.Error("WithReadOnly(true) ignored")
	}
	if c.Log != logger {
		t.Error("WithLogger() ignored")
	}
	if c.Selection != caret {
		t.Error("WithSelection() ignored")
	}
	if c.Layout != layout {
		t.Error("WithLayout() ignored")
	}
}

func TestContext_SetReadOnlyFiresAfterSetMode(t *testing.T) {
	root, _, _ := fixture(t)
	c := New(root)
	fired := 0
	c.Events.On(nil, EventAfterSetMode, func(*Event) { fired++ })

	c.SetReadOnly(true)

	if !c.ReadOnly() || fired != 1 {
		t.Errorf("ReadOnly() = %v, afterSetMode fired %d times", c.ReadOnly(), fired)
	}
}

func TestContext_ChangedBumpsRevision(t *testing.T) {
	root, _, _ := fixture(t)
	c := New(root)
	changes := 0
	c.Events.On(nil, EventChange, func(*Event) { changes++ })

	before := c.Revision()
	c.Changed()
	c.Changed()

	if c.Revision() != before+2 {
		t.Errorf("Revision() = %d, want %d", c.Revision(), before+2)
	}
	if changes != 2 {
		t.Errorf("change fired %d times, want 2", changes)
	}
}

func TestContext_ExecCommand(t *testing.T) {
	root, _, _ := fixture(t)
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)
	c := New(root, WithLogger(logger))

	var seen []string
	c.Events.On(nil, EventBeforeCommand, func(e *Event) {
		seen = append(seen, "before:"+e.Command)
		if e.Command == "tablemerge" {
			e.PreventDefault()
		}
	})
	c.Events.On(nil, EventAfterCommand, func(e *Event) {
		seen = append(seen, "after:"+e.Command)
	})

	if !c.ExecCommand("tablemerge") {
		t.Error("ExecCommand(tablemerge) = false, want handled")
	}
	if c.ExecCommand("bold") {
		t.Error("ExecCommand(bold) = true, want unhandled")
	}

	want := []string{"before:tablemerge", "after:tablemerge", "before:bold", "after:bold"}
	if len(seen) != len(want) {
		t.Fatalf("events = %v, want %v", seen, want)
	}
	for i := range want {
		if seen[i] != want[i] {
			t.Errorf("event %d = %q, want %q", i, seen[i], want[i])
		}
	}

	entry := hook.LastEntry()
	if entry == nil || entry.Data["command"] != "bold" {
		t.Errorf("unhandled command not logged, last entry = %v", entry)
	}
}

func TestContext_DestroyClearsHandlers(t *testing.T) {
	root, _, _ := fixture(t)
	c := New(root)
	destructs := 0
	c.Events.On(nil, EventBeforeDestruct, func(*Event) { destructs++ })
	c.Events.On(nil, EventChange, func(*Event) { t.Error("handler ran after Destroy()") })

	c.Destroy()
	c.Changed()

	if destructs != 1 {
		t.Errorf("beforeDestruct fired %d times, want 1", destructs)
	}
}

func TestContext_GeometryWithoutLayout(t *testing.T) {
	root, _, cell := fixture(t)
	c := New(root)

	if _, ok := c.Box(cell); ok {
		t.Error("Box() ok without a layout")
	}
	if c.ElementFromPoint(model.Point{X: 1, Y: 1}) != nil {
		t.Error("ElementFromPoint() non-nil without a layout")
	}
}

func TestContext_GeometryWithLayout(t *testing.T) {
	root, _, cell := fixture(t)
	box := model.NewBBox(0, 0, 80, 24)
	c := New(root, WithLayout(&stubLayout{boxes: map[*html.Node]model.BBox{cell: box}, at: cell}))

	got, ok := c.Box(cell)
	if !ok || got != box {
		t.Errorf("Box() = %v, %v; want %v, true", got, ok, box)
	}
	if c.ElementFromPoint(model.Point{X: 4, Y: 4}) != cell {
		t.Error("ElementFromPoint() did not consult the layout")
	}
}
