package cellselect

import (
	"golang.org/x/text/cases"
)

// Command is a table command.
type Command int

// Table commands. The structural commands run before the host's default
// handling and replace it; the justify commands run after it.
const (
	CommandUnknown Command = iota
	CommandSplitVertical
	CommandSplitHorizontal
	CommandMerge
	CommandEmpty
	CommandDeleteTable
	CommandDeleteRow
	CommandDeleteColumn
	CommandAddColumnBefore
	CommandAddColumnAfter
	CommandAddRowBefore
	CommandAddRowAfter
	CommandJustifyLeft
	CommandJustifyCenter
	CommandJustifyRight
	CommandJustifyFull

	commandCount
)

// commandNames holds the editor command name of every command. Its size
// makes the compiler reject a command added without a name.
var commandNames = [commandCount]string{
	CommandUnknown:         "",
	CommandSplitVertical:   "tablesplitv",
	CommandSplitHorizontal: "tablesplitg",
	CommandMerge:           "tablemerge",
	CommandEmpty:           "tableempty",
	CommandDeleteTable:     "tablebin",
	CommandDeleteRow:       "tablebinrow",
	CommandDeleteColumn:    "tablebincolumn",
	CommandAddColumnBefore: "tableaddcolumnbefore",
	CommandAddColumnAfter:  "tableaddcolumnafter",
	CommandAddRowBefore:    "tableaddrowbefore",
	CommandAddRowAfter:     "tableaddrowafter",
	CommandJustifyLeft:     "justifyleft",
	CommandJustifyCenter:   "justifycenter",
	CommandJustifyRight:    "justifyright",
	CommandJustifyFull:     "justifyfull",
}

var commandIndex = make(map[string]Command, commandCount)

func init() {
	for c := CommandUnknown + 1; c < commandCount; c++ {
		commandIndex[commandNames[c]] = c
	}
}

// ParseCommand maps an editor command name to a Command, ignoring case.
// Unknown names give CommandUnknown.
func ParseCommand(name string) Command {
	return commandIndex[cases.Fold().String(name)]
}

// Commands returns every known command in declaration order.
func Commands() []Command {
	out := make([]Command, 0, commandCount-1)
	for c := CommandUnknown + 1; c < commandCount; c++ {
		out = append(out, c)
	}
	return out
}

// String returns the editor command name, or "unknown".
func (c Command) String() string {
	if c <= CommandUnknown || c >= commandCount {
		return "unknown"
	}
	return commandNames[c]
}

// IsStructural reports whether the command edits the table structure or
// content and replaces the host's default handling.
func (c Command) IsStructural() bool {
	return c >= CommandSplitVertical && c <= CommandAddRowAfter
}

// IsJustify reports whether the command aligns cell content.
func (c Command) IsJustify() bool {
	return c >= CommandJustifyLeft && c <= CommandJustifyFull
}
