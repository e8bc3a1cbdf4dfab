package editor

import (
	"sync"

	"golang.org/x/net/html"

	"github.com/tsawler/tablesel/model"
)

// Layout maps between document nodes and viewport geometry.
type Layout interface {
	// Box returns the pixel box of n relative to the editor viewport.
	Box(n *html.Node) (model.BBox, bool)

	// ElementAt returns the deepest element rendered at p, or nil.
	ElementAt(p model.Point) *html.Node
}

// TextSelection is the host's native caret and text selection.
type TextSelection interface {
	// Clear drops any native text selection.
	Clear()

	// Focus focuses the editor.
	Focus()

	// SetCursorIn places the caret inside n.
	SetCursorIn(n *html.Node)
}

// Caret is an in-memory TextSelection for hosts without a native one.
type Caret struct {
	mu       sync.Mutex
	focused  bool
	node     *html.Node
	selected []*html.Node
}

// Clear drops the text selection.
func (c *Caret) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.selected = nil
}

// Focus focuses the editor.
func (c *Caret) Focus() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.focused = true
}

// SetCursorIn focuses the editor and places the caret inside n.
func (c *Caret) SetCursorIn(n *html.Node) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.focused = true
	c.node = n
	c.selected = nil
}

// Select sets the native text selection to the given nodes.
func (c *Caret) Select(nodes ...*html.Node) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.selected = append([]*html.Node(nil), nodes...)
}

// Focused reports whether the editor has focus.
func (c *Caret) Focused() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.focused
}

// Node returns the node holding the caret.
func (c *Caret) Node() *html.Node {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.node
}

// HasSelection reports whether there is a native text selection.
func (c *Caret) HasSelection() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	return len(c.selected) > 0
}
