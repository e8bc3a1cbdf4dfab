// Package selection tracks which table cells are selected.
//
// A [Store] is owned by one editor session and may hold cells from any table,
// although in practice only one table is populated at a time. Selected cells
// carry the [Attribute] marker so stylesheets can highlight them; the marker
// is the only change the store makes to the document.
package selection

import (
	"golang.org/x/net/html"

	"github.com/tsawler/tablesel/htmldoc"
)

// Attribute marks a selected cell.
const Attribute = "data-tablesel-selected-cell"

// Store is the set of selected cells.
type Store struct {
	cells map[*html.Node]struct{}
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{cells: make(map[*html.Node]struct{})}
}

// Add selects a cell.
func (s *Store) Add(cell *html.Node) {
	if cell == nil {
		return
	}
	s.cells[cell] = struct{}{}
	htmldoc.SetAttr(cell, Attribute, "1")
}

// Remove deselects a cell.
func (s *Store) Remove(cell *html.Node) {
	if cell == nil {
		return
	}
	delete(s.cells, cell)
	htmldoc.RemoveAttr(cell, Attribute)
}

// Has reports whether a cell is selected.
func (s *Store) Has(cell *html.Node) bool {
	_, ok := s.cells[cell]
	return ok
}

// Len returns the number of selected cells.
func (s *Store) Len() int {
	return len(s.cells)
}

// All returns the selected cells in document order.
func (s *Store) All() []*html.Node {
	cells := make([]*html.Node, 0, len(s.cells))
	for cell := range s.cells {
		cells = append(cells, cell)
	}
	htmldoc.SortDocumentOrder(cells)
	return cells
}

// First returns the first selected cell in document order, or nil.
func (s *Store) First() *html.Node {
	var first *html.Node
	for cell := range s.cells {
		if first == nil || htmldoc.Compare(cell, first) < 0 {
			first = cell
		}
	}
	return first
}

// Clear deselects every cell except the given ones.
func (s *Store) Clear(except ...*html.Node) {
	for cell := range s.cells {
		if contains(except, cell) {
			continue
		}
		s.Remove(cell)
	}
}

// Replace makes cells the exact selection, touching only the cells whose
// state changes.
func (s *Store) Replace(cells []*html.Node) {
	want := make(map[*html.Node]bool, len(cells))
	for _, cell := range cells {
		if cell != nil {
			want[cell] = true
		}
	}
	for cell := range s.cells {
		if !want[cell] {
			s.Remove(cell)
		}
	}
	for cell := range want {
		if !s.Has(cell) {
			s.Add(cell)
		}
	}
}

func contains(nodes []*html.Node, n *html.Node) bool {
	for _, c := range nodes {
		if c == n {
			return true
		}
	}
	return false
}
