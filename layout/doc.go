// Package layout resolves document geometry for hosts that have no
// rendering engine of their own.
//
// The [Grid] lays every top-level table of an editor root out on a fixed
// metric: each logical slot is [Config.CellWidth] by [Config.CellHeight]
// pixels and tables are stacked vertically, separated by [Config.TableGap].
// Spanning cells cover the boxes of all their slots.
//
//	grid := layout.NewGrid(root, layout.DefaultConfig())
//	box, ok := grid.Box(cell)
//	cell := grid.ElementAt(model.Point{X: 90, Y: 30})
//
// The layout is recomputed from the live tree on every query, so it always
// reflects the latest structural edit.
package layout
