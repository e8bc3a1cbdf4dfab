// Package cellselect implements rectangular cell selection in editable
// tables and the structural table commands that act on it.
//
// A [Plugin] is installed on an [editor.Context]. It watches every table
// under the editor root and turns pointer gestures into a selection: a
// pointer-down on a cell anchors the selection, every move replaces it with
// the cells covering the rectangle between the anchor and the cell under the
// pointer, and pointer-up ends the gesture and asks the host for the cell
// popup.
//
//	ctx := editor.New(root, editor.WithLayout(layout.NewGrid(root, layout.DefaultConfig())))
//	p := cellselect.Install(ctx)
//	defer p.Close()
//
//	// ... drag ...
//	ctx.ExecCommand("tablemerge")
//
// Commands reach the plugin through the editor's beforeCommand event and are
// carried out by an [Executor], which can also be used on its own.
package cellselect
