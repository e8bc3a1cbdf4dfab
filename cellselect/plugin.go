package cellselect

import (
	"github.com/sirupsen/logrus"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/tsawler/tablesel/editor"
	"github.com/tsawler/tablesel/htmldoc"
	"github.com/tsawler/tablesel/model"
	"github.com/tsawler/tablesel/selection"
	"github.com/tsawler/tablesel/tables"
)

const (
	// LockName names the lock a plugin takes while a drag selects more
	// than one cell.
	LockName = "table_processor_observer"

	// PopupKind is the kind of the popup requested for selected cells.
	PopupKind = "table-cells"

	namespace  = "table"
	startSpec  = "mousedown.table touchstart.table"
	moveSpec   = "mousemove.table touchmove.table"
	stopSpec   = "mouseup.table touchend.table"
	rescanSpec = "change.table afterCommand.table afterSetMode.table"
)

// State is the gesture state of a plugin.
type State int

const (
	StateIdle State = iota
	StateDragging
)

func (s State) String() string {
	if s == StateDragging {
		return "dragging"
	}
	return "idle"
}

// Option configures a Plugin.
type Option func(*Plugin)

// WithCache reuses matrices between pointer moves. The cache is keyed by
// the editor's structural revision.
func WithCache(c *tables.Cache) Option {
	return func(p *Plugin) { p.cache = c }
}

// WithMetrics records plugin statistics.
func WithMetrics(m *Metrics) Option {
	return func(p *Plugin) { p.metrics = m }
}

// Plugin drives cell selection in the tables of one editor.
type Plugin struct {
	ctx     *editor.Context
	key     *editor.LockKey
	store   *selection.Store
	exec    *Executor
	cache   *tables.Cache
	metrics *Metrics
	log     logrus.FieldLogger

	state   State
	anchor  *html.Node
	current *html.Node
	left    bool

	observed map[*html.Node]bool
}

// Install creates a plugin and subscribes it to ctx. Every table under the
// editor root is observed immediately and tables added later are picked up
// on the next change, afterCommand or afterSetMode event.
func Install(ctx *editor.Context, opts ...Option) *Plugin {
	p := &Plugin{
		ctx:      ctx,
		key:      editor.NewLockKey(LockName),
		store:    selection.NewStore(),
		observed: make(map[*html.Node]bool),
	}
	for _, opt := range opts {
		opt(p)
	}
	p.log = ctx.Log.WithField("lock", p.key.String())
	p.exec = NewExecutor(ctx.Root, ctx.Create, ctx.Log)

	ctx.Events.
		On(nil, "click.table", p.onClick).
		On(nil, "keydown.table", p.onKeyDown).
		On(nil, "beforeCommand.table", p.onBeforeCommand).
		On(nil, "afterCommand.table", p.onAfterCommand).
		On(nil, stopSpec, p.onStop).
		On(nil, "afterSetMode.table", p.onSetMode).
		On(nil, rescanSpec, func(*editor.Event) { p.observeAll() }).
		On(nil, "beforeDestruct.table", func(*editor.Event) { p.Close() })

	p.observeAll()
	return p
}

// State returns the gesture state.
func (p *Plugin) State() State { return p.state }

// Anchor returns the cell the current gesture started on, or nil.
func (p *Plugin) Anchor() *html.Node { return p.anchor }

// Key returns the lock key the plugin uses.
func (p *Plugin) Key() *editor.LockKey { return p.key }

// Selection returns the selection store.
func (p *Plugin) Selection() *selection.Store { return p.store }

// Selected returns the selected cells in document order.
func (p *Plugin) Selected() []*html.Node { return p.store.All() }

// Executor returns the executor the plugin runs commands with.
func (p *Plugin) Executor() *Executor { return p.exec }

// Observed reports whether the plugin listens to table.
func (p *Plugin) Observed(table *html.Node) bool { return p.observed[table] }

// Close unsubscribes the plugin from the editor and every table and clears
// the selection.
func (p *Plugin) Close() {
	p.unselect()
	p.reset()
	p.unlock()
	p.ctx.Events.OffNamespace(namespace)
	clear(p.observed)
}

// observeAll subscribes to tables not seen yet and forgets tables that
// left the document.
func (p *Plugin) observeAll() {
	for table := range p.observed {
		if !htmldoc.Contains(p.ctx.Root, table) {
			p.ctx.Events.Off(table, "."+namespace)
			delete(p.observed, table)
		}
	}
	for _, table := range htmldoc.QueryAll(p.ctx.Root, atom.Table) {
		if !p.observed[table] {
			p.observe(table)
		}
	}
}

func (p *Plugin) observe(table *html.Node) {
	p.observed[table] = true
	p.ctx.Events.
		On(table, startSpec, func(e *editor.Event) { p.onStart(table, e) }).
		On(table, stopSpec, p.onStop)
}

// matrix returns the matrix of table at the current structural revision.
func (p *Plugin) matrix(table *html.Node) *tables.Matrix {
	return p.cache.Matrix(table, p.ctx.Revision())
}

// cellIn returns the cell of table that contains n. Cells of tables nested
// inside table resolve to the enclosing cell of table.
func cellIn(n, table *html.Node) *html.Node {
	for cur := n; cur != nil && cur != table; cur = cur.Parent {
		if htmldoc.IsElement(cur, atom.Td, atom.Th) && htmldoc.Closest(cur.Parent, nil, atom.Table) == table {
			return cur
		}
	}
	return nil
}

func (p *Plugin) onStart(table *html.Node, e *editor.Event) {
	if p.ctx.ReadOnly() {
		return
	}
	// A nested table handles its own gestures.
	if htmldoc.Closest(e.Target, p.ctx.Root, atom.Table) != table {
		return
	}

	p.unselect()
	p.reset()

	cell := cellIn(e.Target, table)
	if cell == nil {
		return
	}
	if cell.FirstChild == nil {
		cell.AppendChild(p.ctx.Create.Element("br"))
	}

	p.state = StateDragging
	p.anchor = cell
	p.current = cell
	p.store.Add(cell)
	p.metrics.setSelected(p.store.Len())

	p.ctx.Events.
		Off(table, moveSpec).
		On(table, moveSpec, func(e *editor.Event) { p.onMove(table, e) })

	p.showPopup(table, func() model.BBox {
		box, _ := p.ctx.Box(cell)
		return box
	})
}

// resolve returns the cell of table under the pointer of e, falling back
// to the event target when the layout knows nothing at that point.
func (p *Plugin) resolve(table *html.Node, e *editor.Event) *html.Node {
	if n := p.ctx.ElementFromPoint(e.Point); n != nil {
		if cell := cellIn(n, table); cell != nil {
			return cell
		}
	}
	return cellIn(e.Target, table)
}

func (p *Plugin) onMove(table *html.Node, e *editor.Event) {
	if p.ctx.ReadOnly() || p.state != StateDragging || p.anchor == nil {
		return
	}
	if p.ctx.Locks.IsLockedNotBy(p.key) {
		p.log.WithField("holder", p.ctx.Locks.Holder().String()).Debug("Move ignored, editor is locked")
		return
	}

	cell := p.resolve(table, e)
	if cell == nil {
		return
	}

	if cell != p.anchor {
		p.ctx.Locks.Lock(p.key)
		p.ctx.Selection.Clear()
		e.PreventDefault()
		if !p.left {
			p.left = true
			p.ctx.Events.Fire(nil, &editor.Event{Name: editor.EventHidePopup})
		}
	}

	m := p.matrix(table)
	b, ok := m.BoundOf(p.anchor, cell)
	if !ok {
		p.log.WithField("table", htmldoc.GetAttr(table, "id")).Debug("Move ignored, anchor left the table")
		return
	}
	p.current = cell
	p.store.Replace(m.CellsIn(b))
	p.metrics.setSelected(p.store.Len())

	e.StopPropagation()
}

func (p *Plugin) onStop(e *editor.Event) {
	if p.state != StateDragging {
		return
	}
	anchor, current := p.anchor, p.current
	p.unlock()
	p.reset()

	table := htmldoc.Closest(anchor, p.ctx.Root, atom.Table)
	if table == nil {
		p.metrics.gesture(outcomeCancelled)
		return
	}
	end := current
	if !p.ctx.Locks.IsLockedNotBy(p.key) {
		if cell := p.resolve(table, e); cell != nil {
			end = cell
		}
	}

	m := p.matrix(table)
	b, ok := m.BoundOf(anchor, end)
	if !ok {
		p.metrics.gesture(outcomeCancelled)
		return
	}
	cells := m.CellsIn(b)
	p.store.Replace(cells)
	p.metrics.setSelected(p.store.Len())
	if len(cells) > 1 {
		p.metrics.gesture(outcomeRange)
	} else {
		p.metrics.gesture(outcomeSingle)
	}

	first, last := m.At(b.Min.Row, b.Min.Col), m.At(b.Max.Row, b.Max.Col)
	p.showPopup(table, func() model.BBox {
		return p.boundBox(first, last, cells)
	})
}

// boundBox returns the screen box from the top-left of first to the
// bottom-right of last. When a corner slot is a hole the union of the
// cells' boxes is used instead.
func (p *Plugin) boundBox(first, last *html.Node, cells []*html.Node) model.BBox {
	if first != nil && last != nil {
		minBox, okMin := p.ctx.Box(first)
		maxBox, okMax := p.ctx.Box(last)
		if okMin && okMax {
			return minBox.Span(maxBox)
		}
	}
	var box model.BBox
	found := false
	for _, cell := range cells {
		b, ok := p.ctx.Box(cell)
		if !ok {
			continue
		}
		if !found {
			box, found = b, true
			continue
		}
		box = box.Union(b)
	}
	return box
}

func (p *Plugin) onClick(e *editor.Event) {
	if e.Synthetic || p.state == StateDragging || p.store.Len() == 0 {
		return
	}
	if cell := htmldoc.Closest(e.Target, p.ctx.Root, atom.Td, atom.Th); cell != nil {
		if p.observed[htmldoc.Closest(cell, p.ctx.Root, atom.Table)] {
			return
		}
	}
	p.unlock()
	p.unselect()
	p.reset()
	p.ctx.Events.Fire(nil, &editor.Event{Name: editor.EventHidePopup})
}

func (p *Plugin) onKeyDown(e *editor.Event) {
	if e.Key == editor.KeyTab && p.store.Len() > 0 {
		p.unselect()
	}
}

func (p *Plugin) onSetMode(*editor.Event) {
	if p.store.Len() == 0 && p.state == StateIdle {
		return
	}
	p.unlock()
	p.unselect()
	p.reset()
	p.ctx.Events.Fire(nil, &editor.Event{Name: editor.EventHidePopup})
}

func (p *Plugin) onBeforeCommand(e *editor.Event) {
	cmd := ParseCommand(e.Command)
	if !cmd.IsStructural() {
		return
	}

	handled := p.exec.Execute(cmd, p.store.All())
	p.metrics.command(cmd, handled)
	if !handled {
		return
	}
	e.PreventDefault()

	p.unselect()
	p.reset()
	p.unlock()
	p.ctx.Changed()
}

func (p *Plugin) onAfterCommand(e *editor.Event) {
	cmd := ParseCommand(e.Command)
	if !cmd.IsJustify() {
		return
	}
	cells := p.store.All()
	p.metrics.command(cmd, len(cells) > 0)
	p.exec.Align(cmd, cells)
}

func (p *Plugin) showPopup(table *html.Node, box func() model.BBox) {
	p.ctx.Events.Fire(nil, &editor.Event{
		Name:  editor.EventShowPopup,
		Popup: &editor.Popup{Anchor: table, Box: box, Kind: PopupKind},
	})
}

func (p *Plugin) unselect() {
	p.store.Clear()
	p.metrics.setSelected(0)
}

// reset returns the gesture to Idle without touching the selection.
func (p *Plugin) reset() {
	if p.state == StateDragging {
		for table := range p.observed {
			p.ctx.Events.Off(table, moveSpec)
		}
	}
	p.state = StateIdle
	p.anchor = nil
	p.current = nil
	p.left = false
}

// unlock releases the editor lock if the plugin holds it.
func (p *Plugin) unlock() {
	if p.ctx.Locks.Holder() == p.key {
		p.ctx.Locks.Unlock()
	}
}
