package tables

import (
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/tsawler/tablesel/htmldoc"
)

// newCell creates an empty cell holding a line break so the caret can be
// placed in it.
func newCell(f *htmldoc.Factory) *html.Node {
	return f.Element("td", f.Element("br"))
}

// insertCellAt inserts cell into logical row r before the first cell of
// that row's tr that starts at or after col.
func (m *Matrix) insertCellAt(r int, cell *html.Node, col int) {
	tr := m.Rows[r]
	for _, child := range htmldoc.Children(tr, atom.Td, atom.Th) {
		if ext, ok := m.extents[child]; ok && ext.Min.Col >= col {
			tr.InsertBefore(cell, child)
			return
		}
	}
	tr.AppendChild(cell)
}

// removeIfEmpty removes a table that has no cells left.
func removeIfEmpty(table *html.Node) {
	if len(htmldoc.QueryAll(table, atom.Td, atom.Th)) == 0 {
		htmldoc.Remove(table)
	}
}

// InsertRow inserts an empty row so that it becomes logical row at. Cells
// spanning across the insertion point grow by one row instead of receiving a
// new cell.
func InsertRow(table *html.Node, at int, f *htmldoc.Factory) {
	if !htmldoc.IsElement(table, atom.Table) {
		return
	}
	m := BuildMatrix(table)
	height, width := m.Height(), max(m.Width(), 1)
	at = max(0, min(at, height))

	tr := f.Element("tr")
	grown := make(map[*html.Node]bool)
	for c := 0; c < width; c++ {
		if at > 0 && at < height {
			above, below := m.At(at-1, c), m.At(at, c)
			if above != nil && above == below {
				if !grown[above] {
					grown[above] = true
					SetRowSpan(above, m.extents[above].Rows()+1)
				}
				continue
			}
		}
		tr.AppendChild(newCell(f))
	}

	switch {
	case at < height:
		m.Rows[at].Parent.InsertBefore(tr, m.Rows[at])
	case height > 0:
		htmldoc.InsertAfter(m.Rows[height-1], tr)
	default:
		if tbody := htmldoc.Children(table, atom.Tbody); len(tbody) > 0 {
			tbody[0].AppendChild(tr)
		} else {
			table.AppendChild(tr)
		}
	}
}

// AppendRow inserts an empty row above or below the rows covered by cell.
func AppendRow(table, cell *html.Node, after bool, f *htmldoc.Factory) {
	ext, ok := BuildMatrix(table).Extent(cell)
	if !ok {
		return
	}
	if after {
		InsertRow(table, ext.Max.Row+1, f)
		return
	}
	InsertRow(table, ext.Min.Row, f)
}

// InsertColumn inserts an empty column so that it becomes logical column
// at. Cells spanning across the insertion point grow by one column.
func InsertColumn(table *html.Node, at int, f *htmldoc.Factory) {
	m := BuildMatrix(table)
	height, width := m.Height(), m.Width()
	if height == 0 {
		return
	}
	at = max(0, min(at, width))

	grown := make(map[*html.Node]bool)
	for r := 0; r < height; r++ {
		if at > 0 && at < width {
			left, right := m.At(r, at-1), m.At(r, at)
			if left != nil && left == right {
				if !grown[left] {
					grown[left] = true
					SetColSpan(left, m.extents[left].Cols()+1)
				}
				continue
			}
		}
		m.insertCellAt(r, newCell(f), at)
	}
}

// AppendColumn inserts an empty column left or right of the columns covered
// by cell.
func AppendColumn(table, cell *html.Node, after bool, f *htmldoc.Factory) {
	ext, ok := BuildMatrix(table).Extent(cell)
	if !ok {
		return
	}
	if after {
		InsertColumn(table, ext.Max.Col+1, f)
		return
	}
	InsertColumn(table, ext.Min.Col, f)
}

// RemoveRow deletes logical row row. Cells spanning through it shrink, and
// a spanning cell that starts in the removed row moves down to the next
// one. A table left without cells is removed from the document.
func RemoveRow(table *html.Node, row int) {
	m := BuildMatrix(table)
	if row < 0 || row >= m.Height() {
		return
	}
	tr := m.Rows[row]

	seen := make(map[*html.Node]bool)
	for c := 0; c < m.Width(); c++ {
		cell := m.At(row, c)
		if cell == nil || seen[cell] {
			continue
		}
		seen[cell] = true

		ext := m.extents[cell]
		if ext.Rows() == 1 {
			htmldoc.Remove(cell)
			continue
		}

		SetRowSpan(cell, ext.Rows()-1)
		if ext.Min.Row == row && cell.Parent == tr {
			htmldoc.Remove(cell)
			m.insertCellAt(row+1, cell, ext.Min.Col)
		}
	}

	htmldoc.Remove(tr)
	removeIfEmpty(table)
}

// RemoveColumn deletes logical column col. Cells spanning through it
// shrink. A table left without cells is removed from the document.
func RemoveColumn(table *html.Node, col int) {
	m := BuildMatrix(table)
	if col < 0 || col >= m.Width() {
		return
	}

	seen := make(map[*html.Node]bool)
	for r := 0; r < m.Height(); r++ {
		cell := m.At(r, col)
		if cell == nil || seen[cell] {
			continue
		}
		seen[cell] = true

		if ext := m.extents[cell]; ext.Cols() > 1 {
			SetColSpan(cell, ext.Cols()-1)
			continue
		}
		htmldoc.Remove(cell)
	}

	removeIfEmpty(table)
}

// SplitHorizontal splits every given cell into an upper and a lower cell. A
// single-row cell gets a new row below it, and the other cells of its row
// grow to cover that row; a spanning cell hands the lower half of its rows
// to the new cell.
func SplitHorizontal(table *html.Node, cells []*html.Node, f *htmldoc.Factory) {
	for _, cell := range cells {
		m := BuildMatrix(table)
		ext, ok := m.extents[cell]
		if !ok {
			continue
		}

		td := newCell(f)
		SetColSpan(td, ext.Cols())

		if rows := ext.Rows(); rows > 1 {
			upper := rows - rows/2
			SetRowSpan(cell, upper)
			SetRowSpan(td, rows/2)
			m.insertCellAt(ext.Min.Row+upper, td, ext.Min.Col)
			continue
		}

		row := ext.Min.Row
		seen := map[*html.Node]bool{cell: true}
		for c := 0; c < m.Width(); c++ {
			other := m.At(row, c)
			if other == nil || seen[other] {
				continue
			}
			seen[other] = true
			SetRowSpan(other, m.extents[other].Rows()+1)
		}
		htmldoc.InsertAfter(m.Rows[row], f.Element("tr", td))
	}
}

// SplitVertical splits every given cell into a left and a right cell. A
// single-column cell widens the other cells of its column to make room; a
// spanning cell hands the right half of its columns to the new cell.
func SplitVertical(table *html.Node, cells []*html.Node, f *htmldoc.Factory) {
	for _, cell := range cells {
		m := BuildMatrix(table)
		ext, ok := m.extents[cell]
		if !ok {
			continue
		}

		td := newCell(f)
		SetRowSpan(td, ext.Rows())

		if cols := ext.Cols(); cols > 1 {
			SetColSpan(cell, cols-cols/2)
			SetColSpan(td, cols/2)
		} else {
			col := ext.Min.Col
			seen := map[*html.Node]bool{cell: true}
			for r := 0; r < m.Height(); r++ {
				other := m.At(r, col)
				if other == nil || seen[other] {
					continue
				}
				seen[other] = true
				SetColSpan(other, m.extents[other].Cols()+1)
			}
		}
		htmldoc.InsertAfter(cell, td)
	}
}

// MergeSelected merges every cell inside the bound of the given cells into
// the top-left one. Non-blank contents are joined with line breaks and the
// other cells are removed. It reports whether anything was merged.
func MergeSelected(table *html.Node, cells []*html.Node, f *htmldoc.Factory) bool {
	m := BuildMatrix(table)
	b, ok := m.BoundOf(cells...)
	if !ok || (b.Rows() == 1 && b.Cols() == 1) {
		return false
	}

	inside := m.CellsIn(b)
	first := inside[0]
	if htmldoc.IsBlank(first) {
		htmldoc.RemoveChildren(first)
	}
	for _, cell := range inside[1:] {
		if !htmldoc.IsBlank(cell) {
			if first.FirstChild != nil {
				first.AppendChild(f.Element("br"))
			}
			htmldoc.MoveChildren(first, cell)
		}
		htmldoc.Remove(cell)
	}
	if first.FirstChild == nil {
		first.AppendChild(f.Element("br"))
	}

	SetRowSpan(first, b.Rows())
	SetColSpan(first, b.Cols())
	Normalize(table)
	return true
}

// Normalize collapses logical rows and columns that no cell starts in,
// shrinking the spans that covered them, removes rows left without any
// cell, and drops span attributes equal to 1.
func Normalize(table *html.Node) {
	for collapseOne(table) {
	}

	m := BuildMatrix(table)
	for r, tr := range m.Rows {
		if len(htmldoc.Children(tr, atom.Td, atom.Th)) > 0 {
			continue
		}
		empty := true
		for c := 0; c < m.Width(); c++ {
			if m.At(r, c) != nil {
				empty = false
				break
			}
		}
		if empty {
			htmldoc.Remove(tr)
		}
	}

	for _, cell := range htmldoc.QueryAll(table, atom.Td, atom.Th) {
		if n, ok := parseSpan(cell, "rowspan"); ok && n == 1 {
			htmldoc.RemoveAttr(cell, "rowspan")
		}
		if n, ok := parseSpan(cell, "colspan"); ok && n == 1 {
			htmldoc.RemoveAttr(cell, "colspan")
		}
	}
}

// collapseOne removes the first redundant row or column it finds and
// reports whether it changed the table.
func collapseOne(table *html.Node) bool {
	m := BuildMatrix(table)
	if m.Width() == 0 {
		return false
	}

	for r := 1; r < m.Height(); r++ {
		if !continues(m, r, 0, 0, 1) {
			continue
		}
		for _, cell := range distinct(m.Slots[r]) {
			SetRowSpan(cell, m.extents[cell].Rows()-1)
		}
		htmldoc.Remove(m.Rows[r])
		return true
	}

	for c := 1; c < m.Width(); c++ {
		if !continues(m, 0, c, 1, 0) {
			continue
		}
		column := make([]*html.Node, m.Height())
		for r := range column {
			column[r] = m.At(r, c)
		}
		for _, cell := range distinct(column) {
			SetColSpan(cell, m.extents[cell].Cols()-1)
		}
		return true
	}
	return false
}

// continues reports whether every slot of a row (dc=1) or column (dr=1),
// starting at row, col, is covered by the same cell as the slot before it.
func continues(m *Matrix, row, col, dr, dc int) bool {
	for r, c := row, col; r < m.Height() && c < m.Width(); r, c = r+dr, c+dc {
		cur := m.At(r, c)
		prev := m.At(r-dc, c-dr)
		if cur == nil || cur != prev {
			return false
		}
	}
	return true
}

func distinct(nodes []*html.Node) []*html.Node {
	seen := make(map[*html.Node]bool)
	var out []*html.Node
	for _, n := range nodes {
		if n != nil && !seen[n] {
			seen[n] = true
			out = append(out, n)
		}
	}
	return out
}
