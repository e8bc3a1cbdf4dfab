// Command tablesel selects and edits cells of the tables in an HTML file
// the way a user would in an editor: by dragging from one cell to another
// and running table commands on the selection.
package main

import (
	"os"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
