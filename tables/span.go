package tables

import (
	"fmt"
	"strconv"

	"golang.org/x/net/html"

	"github.com/tsawler/tablesel/htmldoc"
)

// maxColSpan is the largest colspan HTML honors.
const maxColSpan = 1000

// parseSpan reads a span attribute. ok is false when the attribute is
// missing or does not start with a number.
func parseSpan(cell *html.Node, key string) (n int, ok bool) {
	val, present := htmldoc.LookupAttr(cell, key)
	if !present {
		return 0, false
	}
	if _, err := fmt.Sscanf(val, "%d", &n); err != nil {
		return 0, false
	}
	return n, true
}

// RowSpan returns the rowspan attribute of a cell, at least 1.
func RowSpan(cell *html.Node) int {
	n, ok := parseSpan(cell, "rowspan")
	if !ok || n < 1 {
		return 1
	}
	return n
}

// ColSpan returns the colspan attribute of a cell, between 1 and 1000.
func ColSpan(cell *html.Node) int {
	n, ok := parseSpan(cell, "colspan")
	if !ok || n < 1 {
		return 1
	}
	if n > maxColSpan {
		return maxColSpan
	}
	return n
}

// SetRowSpan sets the rowspan of a cell. A span of 1 or less removes the
// attribute.
func SetRowSpan(cell *html.Node, n int) {
	setSpan(cell, "rowspan", n)
}

// SetColSpan sets the colspan of a cell. A span of 1 or less removes the
// attribute.
func SetColSpan(cell *html.Node, n int) {
	setSpan(cell, "colspan", n)
}

func setSpan(cell *html.Node, key string, n int) {
	if n <= 1 {
		htmldoc.RemoveAttr(cell, key)
		return
	}
	htmldoc.SetAttr(cell, key, strconv.Itoa(n))
}
