package tables

import (
	"strings"
	"testing"

	"golang.org/x/net/html"

	"github.com/tsawler/tablesel/htmldoc"
)

// parseTable parses an HTML fragment and returns its first table.
func parseTable(t *testing.T, src string) *html.Node {
	t.Helper()
	doc, err := htmldoc.Parse(src)
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}
	tables := doc.Tables()
	if len(tables) == 0 {
		t.Fatal("no table in fixture")
	}
	return tables[0]
}

// cellByText returns the first cell of table whose text is text.
func cellByText(t *testing.T, table *html.Node, text string) *html.Node {
	t.Helper()
	for _, cell := range BuildMatrix(table).Cells() {
		if htmldoc.TextContent(cell) == text {
			return cell
		}
	}
	t.Fatalf("no cell with text %q", text)
	return nil
}

// shape renders the matrix of table one row per line, each slot labelled
// with the text of its cell, "_" for blank cells and "." for holes.
func shape(table *html.Node) string {
	m := BuildMatrix(table)
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

const grid3x3 = `<table><tbody>
<tr><td>a</td><td>b</td><td>c</td></tr>
<tr><td>d</td><td>e</td><td>f</td></tr>
<tr><td>g</td><td>h</td><td>i</td></tr>
</tbody></table>`
