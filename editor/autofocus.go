package editor

import (
	"sync"
	"time"

	"golang.org/x/net/html/atom"

	"github.com/tsawler/tablesel/htmldoc"
)

const autofocusNamespace = "autofocus"

// blockTags are the elements a click can land in with no content to hold
// the caret.
var blockTags = []atom.Atom{
	atom.P, atom.Div, atom.Td, atom.Th, atom.Li, atom.Blockquote, atom.Pre,
	atom.H1, atom.H2, atom.H3, atom.H4, atom.H5, atom.H6, atom.Body,
}

// Autofocus focuses the editor after initialization and moves the caret
// into empty blocks the user clicks.
type Autofocus struct {
	ctx   *Context
	delay time.Duration

	mu    sync.Mutex
	timer *time.Timer
}

// InstallAutofocus installs autofocus on ctx. With a zero delay the editor
// is focused as soon as afterInit fires; otherwise focusing is deferred and
// cancelled if the editor is destroyed first.
func InstallAutofocus(ctx *Context, delay time.Duration) *Autofocus {
	a := &Autofocus{ctx: ctx, delay: delay}

	ctx.Events.
		On(nil, EventAfterInit+"."+autofocusNamespace, a.onInit).
		On(nil, EventMouseDown+"."+autofocusNamespace, a.onMouseDown).
		On(nil, EventBeforeDestruct+"."+autofocusNamespace, func(*Event) { a.Stop() })

	return a
}

func (a *Autofocus) onInit(*Event) {
	if a.delay <= 0 {
		a.ctx.Selection.Focus()
		return
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	if a.timer != nil {
		a.timer.Stop()
	}
	a.timer = time.AfterFunc(a.delay, a.fire)
}

func (a *Autofocus) fire() {
	a.mu.Lock()
	a.timer = nil
	a.mu.Unlock()

	a.ctx.Selection.Focus()
}

func (a *Autofocus) onMouseDown(e *Event) {
	target := e.Target
	if a.ctx.ReadOnly() || !htmldoc.IsElement(target, blockTags...) || !htmldoc.IsBlank(target) {
		return
	}
	if !htmldoc.Contains(a.ctx.Root, target) {
		return
	}
	if target == a.ctx.Root {
		a.ctx.Selection.Focus()
		return
	}
	a.ctx.Selection.SetCursorIn(target)
}

// Pending reports whether a deferred focus is still scheduled.
func (a *Autofocus) Pending() bool {
	a.mu.Lock()
	defer a.mu.Unlock()

	return a.timer != nil
}

// Stop cancels a pending deferred focus and removes the handlers.
func (a *Autofocus) Stop() {
	a.mu.Lock()
	if a.timer != nil {
		a.timer.Stop()
		a.timer = nil
	}
	a.mu.Unlock()

	a.ctx.Events.OffNamespace(autofocusNamespace)
}
