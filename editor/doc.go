// Package editor provides the editor context the table selection engine
// runs inside.
//
// A [Context] bundles what an editing plugin needs from its host:
//
//   - the editable root node and the read-only flag
//   - an [Events] bus with DOM-style bubbling and namespaced handlers
//   - a [Locker] for advisory cross-subsystem locks keyed by [LockKey]
//   - a [Layout] resolving nodes to pixel boxes and points to nodes
//   - a [TextSelection] standing in for the native caret
//   - an element [htmldoc.Factory] carrying editor defaults
//   - a structural revision counter
//
// Everything runs synchronously on the caller's goroutine. The only
// exception is the [Autofocus] timer, which is why the bus, the locker and
// the caret are safe for concurrent use.
//
// # Events
//
// Handlers are registered per target node, or globally with a nil target,
// using jQuery-style specs:
//
//	ctx.Events.On(table, "mousedown.table touchstart.table", onDown)
//	ctx.Events.Off(table, ".table") // every handler in the namespace
//
// [Events.Fire] calls handlers on the target, then on each ancestor, then
// the global handlers, until one calls [Event.StopPropagation].
package editor
