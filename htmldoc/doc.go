// Package htmldoc provides the HTML document layer the table selection
// engine edits.
//
// Documents are parsed with golang.org/x/net/html and kept as a live node
// tree. The package adds the handful of DOM operations an editor needs on
// top of that tree:
//
//   - [Closest] and [QueryAll] for ancestor and descendant lookups
//   - [GetAttr], [SetAttr] and [RemoveAttr] for attributes
//   - [Compare] and [SortDocumentOrder] for document order
//   - [Factory] for creating detached elements with editor defaults
//
// All lookups return nil or false instead of failing when a node is detached
// or the tree is malformed.
package htmldoc
