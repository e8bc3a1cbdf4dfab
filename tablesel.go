// Package tablesel provides a fluent API for selecting and editing cells of
// HTML tables the way a user of a rich-text editor would: by dragging across
// cells and running table commands on the selection.
//
// Basic usage:
//
//	s := tablesel.FromString(`<table>...</table>`)
//	defer s.Close()
//
//	cells, err := s.Select(0, tablesel.At(0, 0), tablesel.At(1, 1))
//	if err != nil {
//	    // handle error
//	}
//	handled, err := s.Exec("tablemerge")
//	html, err := s.HTML()
//
// With options:
//
//	s := tablesel.Open("page.html").
//	    MatrixCache(64).
//	    Logger(logger).
//	    Metrics(prometheus.DefaultRegisterer)
//
// For lower-level control, the editor, cellselect and tables packages can be
// used directly.
package tablesel

import (
	"errors"

	"github.com/tsawler/tablesel/tables"
)

var (
	// ErrNoTable is returned when a table index does not exist.
	ErrNoTable = errors.New("tablesel: no such table")

	// ErrNoCell is returned when a logical coordinate is outside the table
	// or falls in a hole of an irregular table.
	ErrNoCell = errors.New("tablesel: no cell at coordinate")
)

// At returns the logical coordinate (row, col).
func At(row, col int) tables.Coord {
	return tables.Coord{Row: row, Col: col}
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
//
// Example:
//
//	out := tablesel.Must(tablesel.FromString(src).HTML())
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
