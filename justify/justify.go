// Package justify applies text alignment commands to elements.
package justify

import (
	"strings"

	"golang.org/x/net/html"

	"github.com/tsawler/tablesel/htmldoc"
	"github.com/tsawler/tablesel/model"
)

const textAlign = "text-align"

var commands = map[string]model.TextAlignment{
	"justifyleft":   model.AlignLeft,
	"justifycenter": model.AlignCenter,
	"justifyright":  model.AlignRight,
	"justifyfull":   model.AlignJustify,
}

// Command returns the alignment an editor command name asks for.
func Command(name string) (model.TextAlignment, bool) {
	a, ok := commands[strings.ToLower(name)]
	return a, ok
}

// Align sets the text alignment of n. Alignment already set on n or on any
// element inside it is cleared first so the new value is the only one in
// effect.
func Align(n *html.Node, a model.TextAlignment) {
	if n == nil || n.Type != html.ElementNode {
		return
	}
	Clear(n)
	htmldoc.SetStyle(n, textAlign, a.CSS())
}

// AlignCommand applies an editor justify command to n. It reports false for
// names that are not justify commands.
func AlignCommand(name string, n *html.Node) bool {
	a, ok := Command(name)
	if !ok {
		return false
	}
	Align(n, a)
	return true
}

// Clear removes text alignment from n and every element inside it. Style
// attributes left empty are removed.
func Clear(n *html.Node) {
	if n == nil {
		return
	}
	if n.Type == html.ElementNode && htmldoc.Style(n, textAlign) != "" {
		htmldoc.SetStyle(n, textAlign, "")
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		Clear(c)
	}
}
