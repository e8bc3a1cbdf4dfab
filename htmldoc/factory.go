package htmldoc

import (
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Factory creates detached elements carrying the editor's default
// attributes. The zero value creates bare elements.
type Factory struct {
	// Attributes maps a tag name to the attributes every new element with
	// that tag receives.
	Attributes map[string][]html.Attribute
}

// NewFactory creates a factory with no default attributes.
func NewFactory() *Factory {
	return &Factory{Attributes: make(map[string][]html.Attribute)}
}

// SetDefault adds a default attribute for a tag.
func (f *Factory) SetDefault(tag, key, val string) {
	if f.Attributes == nil {
		f.Attributes = make(map[string][]html.Attribute)
	}
	f.Attributes[tag] = append(f.Attributes[tag], html.Attribute{Key: key, Val: val})
}

// Element creates a detached element and appends the given children.
func (f *Factory) Element(tag string, children ...*html.Node) *html.Node {
	n := &html.Node{
		Type:     html.ElementNode,
		Data:     tag,
		DataAtom: atom.Lookup([]byte(tag)),
	}
	if f != nil {
		for _, attr := range f.Attributes[tag] {
			n.Attr = append(n.Attr, attr)
		}
	}
	for _, c := range children {
		n.AppendChild(c)
	}
	return n
}

// Text creates a detached text node.
func (f *Factory) Text(s string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: s}
}
