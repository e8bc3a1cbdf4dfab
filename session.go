package tablesel

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/html"

	"github.com/tsawler/tablesel/cellselect"
	"github.com/tsawler/tablesel/editor"
	"github.com/tsawler/tablesel/htmldoc"
	"github.com/tsawler/tablesel/layout"
	"github.com/tsawler/tablesel/tables"
)

// runtime is the live editor of a session. It is shared by every Session
// derived from the one that opened it.
type runtime struct {
	doc       *htmldoc.Document
	ctx       *editor.Context
	grid      *layout.Grid
	plugin    *cellselect.Plugin
	autofocus *editor.Autofocus
	metrics   *cellselect.Metrics
	closed    bool
}

// Session provides a fluent interface for editing the tables of one HTML
// document. Configuration methods return a new Session and must be called
// before the first operation; the editor is created lazily by the first
// operation and shared from then on.
type Session struct {
	// Source
	filename string
	reader   io.Reader

	options SessionOptions
	rt      *runtime

	// Accumulated error (fail-fast)
	err error
}

// Open creates a Session for the HTML file at filename.
//
// Example:
//
//	out, err := tablesel.Open("page.html").HTML()
func Open(filename string) *Session {
	return &Session{filename: filename, options: defaultOptions()}
}

// FromReader creates a Session reading HTML from r.
func FromReader(r io.Reader) *Session {
	return &Session{reader: r, options: defaultOptions()}
}

// FromString creates a Session for an HTML string.
func FromString(s string) *Session {
	return FromReader(strings.NewReader(s))
}

// clone creates a copy of the Session with a deep copy of options.
func (s *Session) clone() *Session {
	return &Session{
		filename: s.filename,
		reader:   s.reader,
		options:  s.options.clone(),
		rt:       s.rt,
		err:      s.err,
	}
}

// configure returns a copy of s changed by fn, or a failed copy when the
// editor is already running.
func (s *Session) configure(name string, fn func(*SessionOptions)) *Session {
	newSess := s.clone()
	if newSess.rt != nil && newSess.err == nil {
		newSess.err = fmt.Errorf("%s: session already started", name)
		return newSess
	}
	fn(&newSess.options)
	return newSess
}

// ============================================================================
// Configuration Methods (return new Session instance)
// ============================================================================

// ReadOnly disables editing: gestures select nothing.
func (s *Session) ReadOnly() *Session {
	return s.configure("ReadOnly", func(o *SessionOptions) { o.readOnly = true })
}

// Autofocus focuses the editor when it starts, after delay.
func (s *Session) Autofocus(delay time.Duration) *Session {
	return s.configure("Autofocus", func(o *SessionOptions) {
		o.autofocus = true
		o.autofocusDelay = delay
	})
}

// MatrixCache keeps up to size logical matrices between pointer moves.
//
// Example:
//
//	s := tablesel.Open("big.html").MatrixCache(128)
func (s *Session) MatrixCache(size int) *Session {
	return s.configure("MatrixCache", func(o *SessionOptions) { o.cacheSize = size })
}

// CreateAttributes sets a default attribute on every element with tag the
// editor creates, such as the cells added by insert commands.
//
// Example:
//
//	s := tablesel.Open("page.html").CreateAttributes("td", "class", "cell")
func (s *Session) CreateAttributes(tag, key, val string) *Session {
	return s.configure("CreateAttributes", func(o *SessionOptions) {
		if o.createAttributes == nil {
			o.createAttributes = make(map[string][]html.Attribute)
		}
		o.createAttributes[tag] = append(o.createAttributes[tag], html.Attribute{Key: key, Val: val})
	})
}

// Logger sets the logger of the editor.
func (s *Session) Logger(l logrus.FieldLogger) *Session {
	return s.configure("Logger", func(o *SessionOptions) { o.logger = l })
}

// Metrics registers the plugin metrics on reg.
func (s *Session) Metrics(reg prometheus.Registerer) *Session {
	return s.configure("Metrics", func(o *SessionOptions) { o.registerer = reg })
}

// ============================================================================
// Lifecycle
// ============================================================================

// ensureEditor parses the document and starts the editor if not already
// running.
func (s *Session) ensureEditor() error {
	if s.err != nil {
		return s.err
	}
	if s.rt != nil {
		if s.rt.closed {
			return fmt.Errorf("session is closed")
		}
		return nil
	}

	var (
		doc *htmldoc.Document
		err error
	)
	switch {
	case s.reader != nil:
		doc, err = htmldoc.OpenReader(s.reader)
	case s.filename != "":
		doc, err = htmldoc.Open(s.filename)
	default:
		err = fmt.Errorf("no filename specified")
	}
	if err != nil {
		s.err = err
		return err
	}

	o := s.options
	factory := htmldoc.NewFactory()
	for _, tag := range o.tags() {
		for _, attr := range o.createAttributes[tag] {
			factory.SetDefault(tag, attr.Key, attr.Val)
		}
	}
	logger := o.logger
	if logger == nil {
		logger = logrus.StandardLogger()
	}

	root := doc.Body()
	grid := layout.NewGrid(root, layout.DefaultConfig())
	ctx := editor.New(root,
		editor.WithReadOnly(o.readOnly),
		editor.WithLayout(grid),
		editor.WithFactory(factory),
		editor.WithLogger(logger),
	)

	var opts []cellselect.Option
	if o.cacheSize > 0 {
		cache, err := tables.NewCache(o.cacheSize)
		if err != nil {
			s.err = fmt.Errorf("creating matrix cache: %w", err)
			return s.err
		}
		opts = append(opts, cellselect.WithCache(cache))
	}
	metrics, err := cellselect.NewMetrics(o.registerer)
	if err != nil {
		s.err = fmt.Errorf("registering metrics: %w", err)
		return s.err
	}
	opts = append(opts, cellselect.WithMetrics(metrics))

	rt := &runtime{
		doc:     doc,
		ctx:     ctx,
		grid:    grid,
		plugin:  cellselect.Install(ctx, opts...),
		metrics: metrics,
	}
	if o.autofocus {
		rt.autofocus = editor.InstallAutofocus(ctx, o.autofocusDelay)
	}
	ctx.Init()

	s.rt = rt
	return nil
}

// Close destroys the editor, stopping any pending autofocus and removing
// the metrics. It is safe to call Close multiple times.
func (s *Session) Close() error {
	if s.rt == nil || s.rt.closed {
		return nil
	}
	s.rt.ctx.Destroy()
	s.rt.metrics.Unregister(s.options.registerer)
	s.rt.closed = true
	return nil
}

// Editor returns the editor context, starting it if needed.
func (s *Session) Editor() (*editor.Context, error) {
	if err := s.ensureEditor(); err != nil {
		return nil, err
	}
	return s.rt.ctx, nil
}

// Plugin returns the cell selection plugin, starting the editor if needed.
func (s *Session) Plugin() (*cellselect.Plugin, error) {
	if err := s.ensureEditor(); err != nil {
		return nil, err
	}
	return s.rt.plugin, nil
}

// ============================================================================
// Operations
// ============================================================================

// Tables returns the tables of the document in document order.
func (s *Session) Tables() ([]*html.Node, error) {
	if err := s.ensureEditor(); err != nil {
		return nil, err
	}
	return s.rt.doc.Tables(), nil
}

// Table returns the table with index i.
func (s *Session) Table(i int) (*html.Node, error) {
	all, err := s.Tables()
	if err != nil {
		return nil, err
	}
	if i < 0 || i >= len(all) {
		return nil, fmt.Errorf("table %d of %d: %w", i, len(all), ErrNoTable)
	}
	return all[i], nil
}

// Matrix returns the logical matrix of table i.
func (s *Session) Matrix(i int) (*tables.Matrix, error) {
	table, err := s.Table(i)
	if err != nil {
		return nil, err
	}
	return tables.BuildMatrix(table), nil
}

// Cell returns the cell covering the logical coordinate c of table i.
func (s *Session) Cell(i int, c tables.Coord) (*html.Node, error) {
	m, err := s.Matrix(i)
	if err != nil {
		return nil, err
	}
	cell := m.At(c.Row, c.Col)
	if cell == nil {
		return nil, fmt.Errorf("(%d,%d) in table %d: %w", c.Row, c.Col, i, ErrNoCell)
	}
	return cell, nil
}

// pointer fires a pointer event over the coordinate c of table i.
func (s *Session) pointer(name string, i int, c tables.Coord) (*editor.Event, error) {
	table, err := s.Table(i)
	if err != nil {
		return nil, err
	}
	cell, err := s.Cell(i, c)
	if err != nil {
		return nil, err
	}
	pt, ok := s.rt.grid.PointIn(table, c.Row, c.Col)
	if !ok {
		return nil, fmt.Errorf("(%d,%d) in table %d: %w", c.Row, c.Col, i, ErrNoCell)
	}
	return s.rt.ctx.Events.Fire(cell, &editor.Event{Name: name, Point: pt}), nil
}

// PointerDown presses the pointer over the cell at c of table i.
func (s *Session) PointerDown(i int, c tables.Coord) error {
	_, err := s.pointer(editor.EventMouseDown, i, c)
	return err
}

// PointerMove moves the pressed pointer over the cell at c of table i.
func (s *Session) PointerMove(i int, c tables.Coord) error {
	_, err := s.pointer(editor.EventMouseMove, i, c)
	return err
}

// PointerUp releases the pointer over the cell at c of table i.
func (s *Session) PointerUp(i int, c tables.Coord) error {
	_, err := s.pointer(editor.EventMouseUp, i, c)
	return err
}

// Select drags from the cell at from to the cell at to in table i and
// returns the selected cells in document order.
//
// Example:
//
//	cells, err := s.Select(0, tablesel.At(0, 0), tablesel.At(2, 1))
func (s *Session) Select(i int, from, to tables.Coord) ([]*html.Node, error) {
	if err := s.PointerDown(i, from); err != nil {
		return nil, err
	}
	if err := s.PointerMove(i, to); err != nil {
		return nil, err
	}
	if err := s.PointerUp(i, to); err != nil {
		return nil, err
	}
	return s.rt.plugin.Selected(), nil
}

// Selected returns the selected cells in document order.
func (s *Session) Selected() ([]*html.Node, error) {
	if err := s.ensureEditor(); err != nil {
		return nil, err
	}
	return s.rt.plugin.Selected(), nil
}

// ClickOutside clicks the editor outside every table, which clears the
// selection.
func (s *Session) ClickOutside() error {
	if err := s.ensureEditor(); err != nil {
		return err
	}
	s.rt.ctx.Events.Fire(s.rt.ctx.Root, &editor.Event{Name: editor.EventClick})
	return nil
}

// KeyDown presses a key in the editor.
func (s *Session) KeyDown(key string) error {
	if err := s.ensureEditor(); err != nil {
		return err
	}
	s.rt.ctx.Events.Fire(s.rt.ctx.Root, &editor.Event{Name: editor.EventKeyDown, Key: key})
	return nil
}

// Exec runs an editor command and reports whether a table command handled
// it.
//
// Example:
//
//	handled, err := s.Exec("tablesplitv")
func (s *Session) Exec(command string) (bool, error) {
	if err := s.ensureEditor(); err != nil {
		return false, err
	}
	return s.rt.ctx.ExecCommand(command), nil
}

// HTML returns the contents of the document body.
func (s *Session) HTML() (string, error) {
	if err := s.ensureEditor(); err != nil {
		return "", err
	}
	return s.rt.doc.String(), nil
}

// Render writes the whole document to w.
func (s *Session) Render(w io.Writer) error {
	if err := s.ensureEditor(); err != nil {
		return err
	}
	return s.rt.doc.Render(w)
}
