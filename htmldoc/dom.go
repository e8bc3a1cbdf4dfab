package htmldoc

import (
	"sort"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// IsElement reports whether n is an element with one of the given tags.
// With no tags it reports whether n is an element at all.
func IsElement(n *html.Node, tags ...atom.Atom) bool {
	if n == nil || n.Type != html.ElementNode {
		return false
	}
	if len(tags) == 0 {
		return true
	}
	for _, tag := range tags {
		if n.DataAtom == tag {
			return true
		}
	}
	return false
}

// Closest returns n or its nearest ancestor with one of the given tags. The
// search stops at root (exclusive); a nil root searches to the top of the
// tree. Returns nil when nothing matches.
func Closest(n, root *html.Node, tags ...atom.Atom) *html.Node {
	for cur := n; cur != nil && cur != root; cur = cur.Parent {
		if IsElement(cur, tags...) {
			return cur
		}
	}
	return nil
}

// Contains reports whether n is root or one of its descendants.
func Contains(root, n *html.Node) bool {
	for cur := n; cur != nil; cur = cur.Parent {
		if cur == root {
			return true
		}
	}
	return false
}

// QueryAll returns every descendant of root with one of the given tags in
// document order. root itself is not included.
func QueryAll(root *html.Node, tags ...atom.Atom) []*html.Node {
	if root == nil {
		return nil
	}
	var result []*html.Node
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if IsElement(c, tags...) {
				result = append(result, c)
			}
			walk(c)
		}
	}
	walk(root)
	return result
}

// Children returns the direct element children of n with one of the given
// tags.
func Children(n *html.Node, tags ...atom.Atom) []*html.Node {
	if n == nil {
		return nil
	}
	var result []*html.Node
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if IsElement(c, tags...) {
			result = append(result, c)
		}
	}
	return result
}

// GetAttr returns the value of an attribute on a node, or empty string if not found.
func GetAttr(n *html.Node, key string) string {
	val, _ := LookupAttr(n, key)
	return val
}

// LookupAttr returns the value of an attribute and whether it is present.
func LookupAttr(n *html.Node, key string) (string, bool) {
	if n == nil {
		return "", false
	}
	for _, attr := range n.Attr {
		if attr.Namespace == "" && attr.Key == key {
			return attr.Val, true
		}
	}
	return "", false
}

// SetAttr sets an attribute, replacing any existing value.
func SetAttr(n *html.Node, key, val string) {
	for i, attr := range n.Attr {
		if attr.Namespace == "" && attr.Key == key {
			n.Attr[i].Val = val
			return
		}
	}
	n.Attr = append(n.Attr, html.Attribute{Key: key, Val: val})
}

// RemoveAttr removes an attribute if present.
func RemoveAttr(n *html.Node, key string) {
	for i, attr := range n.Attr {
		if attr.Namespace == "" && attr.Key == key {
			n.Attr = append(n.Attr[:i], n.Attr[i+1:]...)
			return
		}
	}
}

// SetStyle sets one CSS property in the style attribute, keeping the others.
func SetStyle(n *html.Node, property, value string) {
	var decls []string
	for _, decl := range strings.Split(GetAttr(n, "style"), ";") {
		decl = strings.TrimSpace(decl)
		if decl == "" {
			continue
		}
		name, _, _ := strings.Cut(decl, ":")
		if strings.EqualFold(strings.TrimSpace(name), property) {
			continue
		}
		decls = append(decls, decl)
	}
	if value != "" {
		decls = append(decls, property+": "+value)
	}
	if len(decls) == 0 {
		RemoveAttr(n, "style")
		return
	}
	SetAttr(n, "style", strings.Join(decls, "; ")+";")
}

// Style returns the value of one CSS property from the style attribute.
func Style(n *html.Node, property string) string {
	for _, decl := range strings.Split(GetAttr(n, "style"), ";") {
		name, value, ok := strings.Cut(decl, ":")
		if ok && strings.EqualFold(strings.TrimSpace(name), property) {
			return strings.TrimSpace(value)
		}
	}
	return ""
}

// Remove detaches n from its parent. Detached nodes are left alone.
func Remove(n *html.Node) {
	if n != nil && n.Parent != nil {
		n.Parent.RemoveChild(n)
	}
}

// RemoveChildren detaches every child of n.
func RemoveChildren(n *html.Node) {
	for n.FirstChild != nil {
		n.RemoveChild(n.FirstChild)
	}
}

// InsertAfter inserts n as the next sibling of ref.
func InsertAfter(ref, n *html.Node) {
	if ref == nil || ref.Parent == nil {
		return
	}
	ref.Parent.InsertBefore(n, ref.NextSibling)
}

// MoveChildren appends every child of src to dst.
func MoveChildren(dst, src *html.Node) {
	for src.FirstChild != nil {
		c := src.FirstChild
		src.RemoveChild(c)
		dst.AppendChild(c)
	}
}

// Compare orders a and b by document order: negative when a comes first,
// positive when b comes first, zero when they are the same node or live in
// different trees. An ancestor comes before its descendants.
func Compare(a, b *html.Node) int {
	if a == b {
		return 0
	}
	pa, pb := path(a), path(b)
	if len(pa) == 0 || len(pb) == 0 || pa[0] != pb[0] {
		return 0
	}

	i := 0
	for i < len(pa) && i < len(pb) && pa[i] == pb[i] {
		i++
	}
	switch {
	case i == len(pa):
		return -1
	case i == len(pb):
		return 1
	}

	// pa[i] and pb[i] are siblings under pa[i-1]
	for c := pa[i]; c != nil; c = c.NextSibling {
		if c == pb[i] {
			return -1
		}
	}
	return 1
}

// path returns the ancestor chain of n starting at the tree root.
func path(n *html.Node) []*html.Node {
	var chain []*html.Node
	for cur := n; cur != nil; cur = cur.Parent {
		chain = append(chain, cur)
	}
	for i, j := 0, len(chain)-1; i < j; i, j = i+1, j-1 {
		chain[i], chain[j] = chain[j], chain[i]
	}
	return chain
}

// SortDocumentOrder sorts nodes in place by document order. Nodes from
// different trees keep their relative order.
func SortDocumentOrder(nodes []*html.Node) {
	sort.SliceStable(nodes, func(i, j int) bool {
		return Compare(nodes[i], nodes[j]) < 0
	})
}
