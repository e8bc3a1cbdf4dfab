package editor

import (
	"github.com/sirupsen/logrus"
	"golang.org/x/net/html"

	"github.com/tsawler/tablesel/htmldoc"
	"github.com/tsawler/tablesel/model"
)

// Context is the editor a plugin is installed in.
type Context struct {
	// Root is the editable element.
	Root *html.Node

	// Events is the editor's event bus.
	Events *Events

	// Locks is the advisory editor lock.
	Locks *Locker

	// Create builds new elements with the editor's defaults.
	Create *htmldoc.Factory

	// Layout resolves geometry. It may be nil for hosts without rendering.
	Layout Layout

	// Selection is the native caret.
	Selection TextSelection

	// Log receives diagnostics.
	Log logrus.FieldLogger

	readOnly bool
	revision uint64
}

// Option configures a Context.
type Option func(*Context)

// WithReadOnly starts the editor in read-only mode.
func WithReadOnly(readOnly bool) Option {
	return func(c *Context) { c.readOnly = readOnly }
}

// WithLayout sets the layout.
func WithLayout(l Layout) Option {
	return func(c *Context) { c.Layout = l }
}

// WithFactory sets the element factory.
func WithFactory(f *htmldoc.Factory) Option {
	return func(c *Context) { c.Create = f }
}

// WithSelection sets the native caret.
func WithSelection(s TextSelection) Option {
	return func(c *Context) { c.Selection = s }
}

// WithLogger sets the logger.
func WithLogger(l logrus.FieldLogger) Option {
	return func(c *Context) { c.Log = l }
}

// New creates an editor context for root.
func New(root *html.Node, opts ...Option) *Context {
	c := &Context{
		Root:      root,
		Events:    NewEvents(),
		Locks:     &Locker{},
		Create:    htmldoc.NewFactory(),
		Selection: &Caret{},
		Log:       logrus.StandardLogger(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ReadOnly reports whether editing is disabled.
func (c *Context) ReadOnly() bool {
	return c.readOnly
}

// SetReadOnly switches read-only mode and fires afterSetMode.
func (c *Context) SetReadOnly(readOnly bool) {
	c.readOnly = readOnly
	c.Events.Emit(EventAfterSetMode)
}

// Revision returns the structural revision counter.
func (c *Context) Revision() uint64 {
	return c.revision
}

// Changed bumps the structural revision and fires change. Call it after
// every edit that adds, removes or re-spans table cells.
func (c *Context) Changed() {
	c.revision++
	c.Events.Emit(EventChange)
}

// Init fires afterInit.
func (c *Context) Init() {
	c.Events.Emit(EventAfterInit)
}

// Destroy fires beforeDestruct and removes every handler.
func (c *Context) Destroy() {
	c.Events.Emit(EventBeforeDestruct)
	c.Events.Clear()
}

// ExecCommand runs a command through the bus: beforeCommand, then the
// default handling unless a handler prevented it, then afterCommand. It
// reports whether a handler took over the command.
func (c *Context) ExecCommand(name string) bool {
	before := c.Events.Fire(nil, &Event{Name: EventBeforeCommand, Command: name})
	handled := before.DefaultPrevented()
	if !handled {
		c.Log.WithField("command", name).Debug("No handler for command")
	}
	c.Events.Fire(nil, &Event{Name: EventAfterCommand, Command: name})
	return handled
}

// Box returns the pixel box of n, false without a layout.
func (c *Context) Box(n *html.Node) (model.BBox, bool) {
	if c.Layout == nil || n == nil {
		return model.BBox{}, false
	}
	return c.Layout.Box(n)
}

// ElementFromPoint returns the element at p, nil without a layout.
func (c *Context) ElementFromPoint(p model.Point) *html.Node {
	if c.Layout == nil {
		return nil
	}
	return c.Layout.ElementAt(p)
}
