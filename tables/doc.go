// Package tables provides the logical grid model for HTML tables.
//
// An HTML table's rows can be irregular: cells span several rows or
// columns, and a row may simply be shorter than the others. This package
// turns the physical cells into a dense logical matrix and edits tables
// through that matrix so spans stay consistent.
//
// # Matrix
//
// [BuildMatrix] walks the rows of a table in document order and fills every
// logical slot a cell covers:
//
//	m := tables.BuildMatrix(table)
//	cell := m.At(1, 2)
//	ext, ok := m.Extent(cell) // the rectangle the cell occupies
//
// Matrices are snapshots. Any structural edit invalidates them, so callers
// rebuild after every mutation. [Cache] memoizes matrices keyed by a
// structural revision counter for hosts that rebuild on every pointer move.
//
// # Bounds
//
// [SelectedBound] returns the smallest rectangle covering a set of cells.
// The rectangle is grown until no spanning cell straddles its edge, so
// [Matrix.CellsIn] always returns whole cells.
//
// # Mutations
//
// The editing primitives keep the table structurally valid:
//
//   - [SplitVertical], [SplitHorizontal] - split cells
//   - [MergeSelected] - merge the bound of a set of cells into one cell
//   - [RemoveRow], [RemoveColumn] - delete a logical row or column
//   - [AppendRow], [AppendColumn] - insert an empty row or column next to a cell
//   - [Normalize] - collapse redundant spans left behind by merges
//
// New cells are created through an [htmldoc.Factory] so they carry the
// editor's default attributes.
package tables
