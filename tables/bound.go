package tables

import "golang.org/x/net/html"

// SelectedBound returns the smallest logical rectangle covering the given
// cells in table, built from a fresh matrix. The result does not depend on
// the order of the cells. ok is false when none of the cells belongs to the
// table.
func SelectedBound(table *html.Node, cells ...*html.Node) (Bound, bool) {
	return BuildMatrix(table).BoundOf(cells...)
}

// BoundOf returns the smallest rectangle covering the given cells. Each
// cell contributes its full span, and the rectangle grows until no cell
// crosses its edge. Cells outside the matrix are ignored.
func (m *Matrix) BoundOf(cells ...*html.Node) (Bound, bool) {
	var b Bound
	found := false
	for _, cell := range cells {
		ext, ok := m.extents[cell]
		if !ok {
			continue
		}
		if !found {
			b = ext
			found = true
			continue
		}
		b = b.Union(ext)
	}
	if !found {
		return Bound{}, false
	}
	return m.Expand(b), true
}

// Expand grows b until every cell it touches lies completely inside it.
func (m *Matrix) Expand(b Bound) Bound {
	for changed := true; changed; {
		changed = false
		for r := b.Min.Row; r <= b.Max.Row; r++ {
			for c := b.Min.Col; c <= b.Max.Col; c++ {
				cell := m.At(r, c)
				if cell == nil {
					continue
				}
				if grown := b.Union(m.extents[cell]); grown != b {
					b = grown
					changed = true
				}
			}
		}
	}
	return b
}

// CellsIn returns the distinct cells covering the slots of b in row-major
// order of their first slot.
func (m *Matrix) CellsIn(b Bound) []*html.Node {
	seen := make(map[*html.Node]bool)
	var cells []*html.Node
	for r := b.Min.Row; r <= b.Max.Row; r++ {
		for c := b.Min.Col; c <= b.Max.Col; c++ {
			cell := m.At(r, c)
			if cell == nil || seen[cell] {
				continue
			}
			seen[cell] = true
			cells = append(cells, cell)
		}
	}
	return cells
}
