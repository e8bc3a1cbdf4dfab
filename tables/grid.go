package tables

import (
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/tsawler/tablesel/htmldoc"
)

// Coord is a logical position in a table matrix.
type Coord struct {
	Row int
	Col int
}

// Bound is an axis-aligned rectangle of logical slots. Min and Max are
// both inclusive and Min is never greater than Max on either axis.
type Bound struct {
	Min Coord
	Max Coord
}

// NewBound creates a normalized bound from two corners given in any order.
func NewBound(a, b Coord) Bound {
	return Bound{
		Min: Coord{Row: min(a.Row, b.Row), Col: min(a.Col, b.Col)},
		Max: Coord{Row: max(a.Row, b.Row), Col: max(a.Col, b.Col)},
	}
}

// Rows returns the number of logical rows the bound covers
func (b Bound) Rows() int { return b.Max.Row - b.Min.Row + 1 }

// Cols returns the number of logical columns the bound covers
func (b Bound) Cols() int { return b.Max.Col - b.Min.Col + 1 }

// Contains reports whether a coordinate is inside the bound
func (b Bound) Contains(c Coord) bool {
	return c.Row >= b.Min.Row && c.Row <= b.Max.Row &&
		c.Col >= b.Min.Col && c.Col <= b.Max.Col
}

// Union returns the smallest bound covering both bounds
func (b Bound) Union(other Bound) Bound {
	return Bound{
		Min: Coord{Row: min(b.Min.Row, other.Min.Row), Col: min(b.Min.Col, other.Min.Col)},
		Max: Coord{Row: max(b.Max.Row, other.Max.Row), Col: max(b.Max.Col, other.Max.Col)},
	}
}

// Matrix is the span-expanded logical layout of a table.
type Matrix struct {
	// Table is the table the matrix was built from.
	Table *html.Node

	// Rows are the table's own tr elements in document order. Logical row i
	// is Rows[i].
	Rows []*html.Node

	// Slots holds one entry per logical slot. Every row has the same
	// length; slots no cell covers are nil.
	Slots [][]*html.Node

	extents map[*html.Node]Bound
	cells   []*html.Node
}

// BuildMatrix converts a table into its logical matrix. It never fails:
// spans larger than the table are clipped, overlapping cells keep the slots
// claimed first, and a nil or non-table node gives an empty matrix.
func BuildMatrix(table *html.Node) *Matrix {
	m := &Matrix{
		Table:   table,
		extents: make(map[*html.Node]Bound),
	}
	if !htmldoc.IsElement(table, atom.Table) {
		return m
	}

	m.Rows = TableRows(table)
	height := len(m.Rows)
	m.Slots = make([][]*html.Node, height)

	width := 0
	for r, tr := range m.Rows {
		col := 0
		for _, cell := range htmldoc.Children(tr, atom.Td, atom.Th) {
			// Skip slots still covered by rowspans from earlier rows
			for col < len(m.Slots[r]) && m.Slots[r][col] != nil {
				col++
			}

			rowSpan := logicalRowSpan(cell, height-r)
			colSpan := ColSpan(cell)

			for i := r; i < r+rowSpan; i++ {
				if need := col + colSpan; len(m.Slots[i]) < need {
					m.Slots[i] = append(m.Slots[i], make([]*html.Node, need-len(m.Slots[i]))...)
				}
				for j := col; j < col+colSpan; j++ {
					if m.Slots[i][j] == nil {
						m.Slots[i][j] = cell
					}
				}
			}

			m.extents[cell] = Bound{
				Min: Coord{Row: r, Col: col},
				Max: Coord{Row: r + rowSpan - 1, Col: col + colSpan - 1},
			}
			m.cells = append(m.cells, cell)

			if col+colSpan > width {
				width = col + colSpan
			}
			col += colSpan
		}
	}

	// Pad irregular rows so every row has the same width
	for i := range m.Slots {
		if len(m.Slots[i]) < width {
			m.Slots[i] = append(m.Slots[i], make([]*html.Node, width-len(m.Slots[i]))...)
		}
	}

	return m
}

// logicalRowSpan returns how many rows a cell covers when remaining rows
// are left in the table, counting the cell's own row. rowspan="0" extends
// to the last row.
func logicalRowSpan(cell *html.Node, remaining int) int {
	n, ok := parseSpan(cell, "rowspan")
	switch {
	case ok && n == 0:
		return remaining
	case !ok || n < 1:
		return 1
	case n > remaining:
		return remaining
	}
	return n
}

// TableRows returns the tr elements that belong to table: direct children
// and children of its thead, tbody and tfoot sections. Rows of nested
// tables are not included.
func TableRows(table *html.Node) []*html.Node {
	var rows []*html.Node
	for c := table.FirstChild; c != nil; c = c.NextSibling {
		switch {
		case htmldoc.IsElement(c, atom.Tr):
			rows = append(rows, c)
		case htmldoc.IsElement(c, atom.Thead, atom.Tbody, atom.Tfoot):
			rows = append(rows, htmldoc.Children(c, atom.Tr)...)
		}
	}
	return rows
}

// Height returns the number of logical rows
func (m *Matrix) Height() int {
	return len(m.Slots)
}

// Width returns the number of logical columns
func (m *Matrix) Width() int {
	if len(m.Slots) == 0 {
		return 0
	}
	return len(m.Slots[0])
}

// At returns the cell covering a logical slot, or nil when the slot is
// empty or out of range.
func (m *Matrix) At(row, col int) *html.Node {
	if row < 0 || row >= len(m.Slots) {
		return nil
	}
	if col < 0 || col >= len(m.Slots[row]) {
		return nil
	}
	return m.Slots[row][col]
}

// Position returns the logical top-left coordinate of a cell.
func (m *Matrix) Position(cell *html.Node) (Coord, bool) {
	ext, ok := m.extents[cell]
	return ext.Min, ok
}

// Extent returns the logical rectangle a cell occupies.
func (m *Matrix) Extent(cell *html.Node) (Bound, bool) {
	ext, ok := m.extents[cell]
	return ext, ok
}

// Cells returns every cell of the table in document order.
func (m *Matrix) Cells() []*html.Node {
	out := make([]*html.Node, len(m.cells))
	copy(out, m.cells)
	return out
}

// RowIndex returns the logical index of a tr element, or -1.
func (m *Matrix) RowIndex(tr *html.Node) int {
	for i, row := range m.Rows {
		if row == tr {
			return i
		}
	}
	return -1
}
