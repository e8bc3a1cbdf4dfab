package cellselect

import (
	"github.com/sirupsen/logrus"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/tsawler/tablesel/htmldoc"
	"github.com/tsawler/tablesel/justify"
	"github.com/tsawler/tablesel/tables"
)

// Executor carries out table commands on a set of selected cells.
type Executor struct {
	// Root bounds the search for a cell's table. Nil searches up to the
	// document.
	Root *html.Node

	// Create builds the cells and rows inserted by commands.
	Create *htmldoc.Factory

	// Log receives the reasons commands are not handled.
	Log logrus.FieldLogger
}

// NewExecutor creates an executor for tables under root.
func NewExecutor(root *html.Node, f *htmldoc.Factory, log logrus.FieldLogger) *Executor {
	if f == nil {
		f = htmldoc.NewFactory()
	}
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Executor{Root: root, Create: f, Log: log}
}

// Execute runs a structural command. The reference cell is the first of
// cells in document order: row and column commands act on its logical row
// or column, and the table is the one containing it. Execute reports
// whether the command was handled; justify commands, unknown commands, an
// empty selection and a reference cell outside any table are not.
func (x *Executor) Execute(cmd Command, cells []*html.Node) bool {
	if !cmd.IsStructural() {
		return false
	}
	log := x.Log.WithField("command", cmd.String())
	if len(cells) == 0 {
		log.Debug("Command ignored, no cell selected")
		return false
	}

	cells = append([]*html.Node(nil), cells...)
	htmldoc.SortDocumentOrder(cells)
	ref := cells[0]

	table := htmldoc.Closest(ref, x.Root, atom.Table)
	if table == nil {
		log.WithField("cells", len(cells)).Debug("Command ignored, selection is not inside a table")
		return false
	}
	m := tables.BuildMatrix(table)
	pos, ok := m.Position(ref)
	if !ok {
		log.Debug("Command ignored, reference cell is not in its table")
		return false
	}
	cells = sameTable(m, cells)

	switch cmd {
	case CommandSplitVertical:
		tables.SplitVertical(table, cells, x.Create)
	case CommandSplitHorizontal:
		tables.SplitHorizontal(table, cells, x.Create)
	case CommandMerge:
		tables.MergeSelected(table, cells, x.Create)
	case CommandEmpty:
		for _, cell := range cells {
			htmldoc.RemoveChildren(cell)
		}
	case CommandDeleteTable:
		htmldoc.Remove(table)
	case CommandDeleteRow:
		tables.RemoveRow(table, pos.Row)
	case CommandDeleteColumn:
		tables.RemoveColumn(table, pos.Col)
	case CommandAddColumnBefore, CommandAddColumnAfter:
		tables.AppendColumn(table, ref, cmd == CommandAddColumnAfter, x.Create)
	case CommandAddRowBefore, CommandAddRowAfter:
		tables.AppendRow(table, ref, cmd == CommandAddRowAfter, x.Create)
	}
	return true
}

// Align applies a justify command to every cell and reports whether cmd
// was one.
func (x *Executor) Align(cmd Command, cells []*html.Node) bool {
	if !cmd.IsJustify() {
		return false
	}
	for _, cell := range cells {
		justify.AlignCommand(cmd.String(), cell)
	}
	return true
}

// sameTable keeps the cells that belong to the matrix.
func sameTable(m *tables.Matrix, cells []*html.Node) []*html.Node {
	out := cells[:0]
	for _, cell := range cells {
		if _, ok := m.Position(cell); ok {
			out = append(out, cell)
		}
	}
	return out
}
