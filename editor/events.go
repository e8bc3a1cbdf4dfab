package editor

import (
	"strings"
	"sync"

	"golang.org/x/net/html"

	"github.com/tsawler/tablesel/model"
)

// Event names used by the editor and its plugins.
const (
	EventMouseDown      = "mousedown"
	EventMouseMove      = "mousemove"
	EventMouseUp        = "mouseup"
	EventTouchStart     = "touchstart"
	EventTouchMove      = "touchmove"
	EventTouchEnd       = "touchend"
	EventClick          = "click"
	EventKeyDown        = "keydown"
	EventBeforeCommand  = "beforeCommand"
	EventAfterCommand   = "afterCommand"
	EventChange         = "change"
	EventAfterSetMode   = "afterSetMode"
	EventAfterInit      = "afterInit"
	EventBeforeDestruct = "beforeDestruct"
	EventShowPopup      = "showPopup"
	EventHidePopup      = "hidePopup"
)

// KeyTab is the key name of the Tab key.
const KeyTab = "Tab"

// Handler handles an event.
type Handler func(e *Event)

// Popup describes a request to show contextual UI.
type Popup struct {
	// Anchor is the element the popup belongs to.
	Anchor *html.Node

	// Box computes where to show the popup. It is evaluated lazily because
	// the layout may change between the request and the rendering.
	Box func() model.BBox

	// Kind names the popup, e.g. "table-cells".
	Kind string
}

// Event is a single event travelling through the bus.
type Event struct {
	Name string

	// Target is the node the event originated on. Nil for editor-wide
	// events.
	Target *html.Node

	// Point is the pointer position for mouse and touch events.
	Point model.Point

	// Key is the key name for keyboard events.
	Key string

	// Command is the command name for beforeCommand and afterCommand.
	Command string

	// Popup is set for showPopup.
	Popup *Popup

	// Synthetic marks events generated by the editor rather than the user.
	Synthetic bool

	defaultPrevented   bool
	propagationStopped bool
	currentTarget      *html.Node
}

// PreventDefault asks the host to skip its default handling.
func (e *Event) PreventDefault() { e.defaultPrevented = true }

// DefaultPrevented reports whether a handler called PreventDefault.
func (e *Event) DefaultPrevented() bool { return e.defaultPrevented }

// StopPropagation stops the event from reaching ancestors and global handlers.
func (e *Event) StopPropagation() { e.propagationStopped = true }

// PropagationStopped reports whether a handler called StopPropagation.
func (e *Event) PropagationStopped() bool { return e.propagationStopped }

// CurrentTarget returns the node whose handlers are running, nil for global
// handlers.
func (e *Event) CurrentTarget() *html.Node { return e.currentTarget }

type subscription struct {
	target    *html.Node
	name      string
	namespace string
	handler   Handler
	removed   bool
}

// Events is a synchronous event bus.
type Events struct {
	mu   sync.Mutex
	subs []*subscription
}

// NewEvents creates an empty bus.
func NewEvents() *Events {
	return &Events{}
}

// parseSpec splits "click.table keydown" into name/namespace pairs.
func parseSpec(spec string) [][2]string {
	var out [][2]string
	for _, field := range strings.Fields(spec) {
		name, namespace, _ := strings.Cut(field, ".")
		out = append(out, [2]string{name, namespace})
	}
	return out
}

// On registers h for every event in spec on target. A nil target registers
// a global handler.
func (b *Events) On(target *html.Node, spec string, h Handler) *Events {
	b.mu.Lock()
	defer b.mu.Unlock()

	for _, ev := range parseSpec(spec) {
		if ev[0] == "" {
			continue
		}
		b.subs = append(b.subs, &subscription{
			target:    target,
			name:      ev[0],
			namespace: ev[1],
			handler:   h,
		})
	}
	return b
}

// Off removes the handlers on target matching spec. Each entry of spec is
// "name", "name.namespace" or ".namespace". An empty spec removes every
// handler on target.
func (b *Events) Off(target *html.Node, spec string) *Events {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.remove(func(s *subscription) bool {
		if s.target != target {
			return false
		}
		if strings.TrimSpace(spec) == "" {
			return true
		}
		for _, ev := range parseSpec(spec) {
			if (ev[0] == "" || ev[0] == s.name) && (ev[1] == "" || ev[1] == s.namespace) {
				return true
			}
		}
		return false
	})
	return b
}

// OffNamespace removes every handler in namespace, whatever its target.
func (b *Events) OffNamespace(namespace string) *Events {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.remove(func(s *subscription) bool {
		return s.namespace == namespace
	})
	return b
}

// Clear removes every handler.
func (b *Events) Clear() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.remove(func(*subscription) bool { return true })
}

// remove drops matching subscriptions. Callers hold b.mu.
func (b *Events) remove(match func(*subscription) bool) {
	kept := b.subs[:0]
	for _, s := range b.subs {
		if match(s) {
			s.removed = true
			continue
		}
		kept = append(kept, s)
	}
	for i := len(kept); i < len(b.subs); i++ {
		b.subs[i] = nil
	}
	b.subs = kept
}

// Count returns the number of handlers registered on target for name.
func (b *Events) Count(target *html.Node, name string) int {
	b.mu.Lock()
	defer b.mu.Unlock()

	n := 0
	for _, s := range b.subs {
		if s.target == target && s.name == name {
			n++
		}
	}
	return n
}

// Fire dispatches e from target: handlers on target run first, then those
// on each ancestor, then the global ones. Handlers run in registration order
// and see the bus as it was when Fire started, except that handlers removed
// meanwhile are skipped. Fire returns e.
func (b *Events) Fire(target *html.Node, e *Event) *Event {
	if e.Target == nil {
		e.Target = target
	}

	b.mu.Lock()
	subs := make([]*subscription, len(b.subs))
	copy(subs, b.subs)
	b.mu.Unlock()

	for cur := target; cur != nil; cur = cur.Parent {
		b.dispatch(subs, cur, e)
		if e.propagationStopped {
			return e
		}
	}
	b.dispatch(subs, nil, e)
	return e
}

// Emit fires a global event by name.
func (b *Events) Emit(name string) *Event {
	return b.Fire(nil, &Event{Name: name})
}

func (b *Events) dispatch(subs []*subscription, target *html.Node, e *Event) {
	e.currentTarget = target
	for _, s := range subs {
		if s.target != target || s.name != e.Name {
			continue
		}
		b.mu.Lock()
		removed := s.removed
		b.mu.Unlock()
		if removed {
			continue
		}
		s.handler(e)
	}
}
