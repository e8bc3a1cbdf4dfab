// Package model provides the small value types shared by the table selection
// packages.
//
// # Geometry
//
// Geometric primitives describe where rendered cells sit in the editor
// viewport:
//
//   - [Point] - a pointer position in client coordinates
//   - [BBox] - a bounding box with containment and union
//
// The viewport origin is the top-left corner and Y grows
// downward, so [BBox.Top] is the smaller Y value.
//
// # Alignment
//
// [TextAlignment] enumerates the horizontal alignments the justify commands
// can apply to a cell.
package model
