package cellselect

import (
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/tsawler/tablesel/editor"
	"github.com/tsawler/tablesel/htmldoc"
	"github.com/tsawler/tablesel/layout"
	"github.com/tsawler/tablesel/tables"
)

const grid3x3 = `<div id="editor"><table><tbody>
<tr><td>a</td><td>b</td><td>c</td></tr>
<tr><td>d</td><td>e</td><td>f</td></tr>
<tr><td>g</td><td>h</td><td>i</td></tr>
</tbody></table></div>`

// harness is an editor with the plugin installed and a recorder for the
// popup signals.
type harness struct {
	t      *testing.T
	root   *html.Node
	ctx    *editor.Context
	grid   *layout.Grid
	caret  *editor.Caret
	hook   *test.Hook
	plugin *Plugin

	shown  []*editor.Popup
	hidden int
}

func newHarness(t *testing.T, src string, opts ...Option) *harness {
	t.Helper()
	doc, err := htmldoc.Parse(src)
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}
	root := htmldoc.QueryAll(doc.Root(), atom.Div)[0]

	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)
	grid := layout.NewGrid(root, layout.Config{CellWidth: 80, CellHeight: 24})
	caret := &editor.Caret{}
	ctx := editor.New(root,
		editor.WithLayout(grid),
		editor.WithSelection(caret),
		editor.WithLogger(logger),
	)

	h := &harness{t: t, root: root, ctx: ctx, grid: grid, caret: caret, hook: hook}
	ctx.Events.
		On(nil, editor.EventShowPopup, func(e *editor.Event) { h.shown = append(h.shown, e.Popup) }).
		On(nil, editor.EventHidePopup, func(*editor.Event) { h.hidden++ })

	h.plugin = Install(ctx, opts...)
	return h
}

func (h *harness) table(i int) *html.Node {
	h.t.Helper()
	all := htmldoc.QueryAll(h.root, atom.Table)
	if i >= len(all) {
		h.t.Fatalf("no table %d", i)
	}
	return all[i]
}

func (h *harness) cell(text string) *html.Node {
	h.t.Helper()
	for _, cell := range htmldoc.QueryAll(h.root, atom.Td, atom.Th) {
		if htmldoc.TextContent(cell) == text {
			return cell
		}
	}
	h.t.Fatalf("no cell with text %q", text)
	return nil
}

// pointer builds a pointer event over the logical slot (row, col) of the
// first table.
func (h *harness) pointer(name string, row, col int) (*html.Node, *editor.Event) {
	h.t.Helper()
	table := h.table(0)
	pt, ok := h.grid.PointIn(table, row, col)
	if !ok {
		h.t.Fatalf("slot (%d,%d) outside the table", row, col)
	}
	target := tables.BuildMatrix(table).At(row, col)
	return target, &editor.Event{Name: name, Point: pt}
}

func (h *harness) fire(name string, row, col int) *editor.Event {
	target, e := h.pointer(name, row, col)
	return h.ctx.Events.Fire(target, e)
}

func (h *harness) down(row, col int) *editor.Event {
	return h.fire(editor.EventMouseDown, row, col)
}

func (h *harness) move(row, col int) *editor.Event {
	return h.fire(editor.EventMouseMove, row, col)
}

func (h *harness) up(row, col int) *editor.Event {
	return h.fire(editor.EventMouseUp, row, col)
}

func (h *harness) drag(fromRow, fromCol, toRow, toCol int) {
	h.down(fromRow, fromCol)
	h.move(toRow, toCol)
	h.up(toRow, toCol)
}

func (h *harness) selected() []string {
	return texts(h.plugin.Selected())
}

func texts(nodes []*html.Node) []string {
	out := make([]string, 0, len(nodes))
	for _, n := range nodes {
		out = append(out, htmldoc.TextContent(n))
	}
	return out
}

// shape renders the matrix of table one row per line, each slot labelled
// with the text of its cell, "_" for blank cells and "." for holes.
func shape(table *html.Node) string {
	m := tables.BuildMatrix(table)
	var lines []string
	for r := 0; r < m.Height(); r++ {
		var slots []string
		for c := 0; c < m.Width(); c++ {
			cell := m.At(r, c)
			switch {
			case cell == nil:
				slots = append(slots, ".")
			case htmldoc.IsBlank(cell):
				slots = append(slots, "_")
			default:
				slots = append(slots, strings.ReplaceAll(htmldoc.TextContent(cell), "\n", "+"))
			}
		}
		lines = append(lines, strings.Join(slots, " "))
	}
	return strings.Join(lines, "\n")
}
