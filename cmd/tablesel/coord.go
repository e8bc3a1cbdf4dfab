package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/tsawler/tablesel"
	"github.com/tsawler/tablesel/tables"
)

// parseCoord parses "row,col".
func parseCoord(s string) (tables.Coord, error) {
	rowStr, colStr, ok := strings.Cut(s, ",")
	if !ok {
		return tables.Coord{}, fmt.Errorf("invalid coordinate %q: want row,col", s)
	}
	row, err := strconv.Atoi(strings.TrimSpace(rowStr))
	if err != nil {
		return tables.Coord{}, fmt.Errorf("invalid row in %q: %w", s, err)
	}
	col, err := strconv.Atoi(strings.TrimSpace(colStr))
	if err != nil {
		return tables.Coord{}, fmt.Errorf("invalid column in %q: %w", s, err)
	}
	if row < 0 || col < 0 {
		return tables.Coord{}, fmt.Errorf("invalid coordinate %q: negative index", s)
	}
	return tablesel.At(row, col), nil
}
