package layout

import (
	"math"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/tsawler/tablesel/htmldoc"
	"github.com/tsawler/tablesel/model"
	"github.com/tsawler/tablesel/tables"
)

// Config holds the metrics of a Grid.
type Config struct {
	// CellWidth is the width of one logical column in pixels (default: 80)
	CellWidth float64

	// CellHeight is the height of one logical row in pixels (default: 24)
	CellHeight float64

	// TableGap is the vertical space between consecutive tables (default: 16)
	TableGap float64

	// Origin is the top-left corner of the first table
	Origin model.Point
}

// DefaultConfig returns sensible default metrics
func DefaultConfig() Config {
	return Config{
		CellWidth:  80,
		CellHeight: 24,
		TableGap:   16,
	}
}

// Grid is a fixed-metric layout of the tables under a root element.
type Grid struct {
	root   *html.Node
	config Config
}

// NewGrid creates a layout for the tables under root. Non-positive cell
// metrics fall back to the defaults.
func NewGrid(root *html.Node, config Config) *Grid {
	def := DefaultConfig()
	if config.CellWidth <= 0 {
		config.CellWidth = def.CellWidth
	}
	if config.CellHeight <= 0 {
		config.CellHeight = def.CellHeight
	}
	if config.TableGap < 0 {
		config.TableGap = 0
	}
	return &Grid{root: root, config: config}
}

// Config returns the metrics in use.
func (g *Grid) Config() Config {
	return g.config
}

// placed is a table with its matrix and the top-left corner of its box.
type placed struct {
	table  *html.Node
	matrix *tables.Matrix
	origin model.Point
}

// place lays out the top-level tables in document order.
func (g *Grid) place() []placed {
	var out []placed
	y := g.config.Origin.Y
	for _, table := range htmldoc.QueryAll(g.root, atom.Table) {
		if table.Parent != nil && htmldoc.Closest(table.Parent, g.root, atom.Table) != nil {
			continue
		}
		m := tables.BuildMatrix(table)
		out = append(out, placed{
			table:  table,
			matrix: m,
			origin: model.Point{X: g.config.Origin.X, Y: y},
		})
		y += float64(m.Height())*g.config.CellHeight + g.config.TableGap
	}
	return out
}

// tableBox returns the box of a placed table.
func (g *Grid) tableBox(p placed) model.BBox {
	return model.NewBBox(p.origin.X, p.origin.Y,
		float64(p.matrix.Width())*g.config.CellWidth,
		float64(p.matrix.Height())*g.config.CellHeight)
}

// boundBox returns the box covering the logical slots of b in p.
func (g *Grid) boundBox(p placed, b tables.Bound) model.BBox {
	return model.NewBBox(
		p.origin.X+float64(b.Min.Col)*g.config.CellWidth,
		p.origin.Y+float64(b.Min.Row)*g.config.CellHeight,
		float64(b.Cols())*g.config.CellWidth,
		float64(b.Rows())*g.config.CellHeight,
	)
}

// Box returns the box of n. Cells cover all their slots, rows span the
// table width and tables cover their whole matrix. Any other node inside a
// table cell gets the box of that cell.
func (g *Grid) Box(n *html.Node) (model.BBox, bool) {
	if n == nil {
		return model.BBox{}, false
	}
	layout := g.place()
	for cur := n; cur != nil && cur != g.root; cur = cur.Parent {
		for _, p := range layout {
			switch {
			case cur == p.table:
				return g.tableBox(p), true
			case htmldoc.IsElement(cur, atom.Tr):
				if r := p.matrix.RowIndex(cur); r >= 0 {
					return g.boundBox(p, tables.NewBound(
						tables.Coord{Row: r},
						tables.Coord{Row: r, Col: max(p.matrix.Width()-1, 0)},
					)), true
				}
			default:
				if b, ok := p.matrix.Extent(cur); ok {
					return g.boundBox(p, b), true
				}
			}
		}
	}
	return model.BBox{}, false
}

// ElementAt returns the cell under pt, the table itself when pt falls in a
// hole of an irregular table, or nil outside every table.
func (g *Grid) ElementAt(pt model.Point) *html.Node {
	for _, p := range g.place() {
		if !g.tableBox(p).Contains(pt) {
			continue
		}
		col := int(math.Floor((pt.X - p.origin.X) / g.config.CellWidth))
		row := int(math.Floor((pt.Y - p.origin.Y) / g.config.CellHeight))
		if cell := p.matrix.At(row, col); cell != nil {
			return cell
		}
		return p.table
	}
	return nil
}

// PointIn returns the center of the slot (row, col) of the table, false when
// the table is not laid out or the slot is outside its matrix.
func (g *Grid) PointIn(table *html.Node, row, col int) (model.Point, bool) {
	for _, p := range g.place() {
		if p.table != table {
			continue
		}
		if row < 0 || col < 0 || row >= p.matrix.Height() || col >= p.matrix.Width() {
			return model.Point{}, false
		}
		return g.boundBox(p, tables.NewBound(tables.Coord{Row: row, Col: col}, tables.Coord{Row: row, Col: col})).Center(), true
	}
	return model.Point{}, false
}
