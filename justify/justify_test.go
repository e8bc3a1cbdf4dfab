package justify

import (
	"testing"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/tsawler/tablesel/htmldoc"
	"github.com/tsawler/tablesel/model"
)

func parseCell(t *testing.T, src string) *html.Node {
	t.Helper()
	doc, err := htmldoc.Parse(src)
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}
	return htmldoc.QueryAll(doc.Root(), atom.Td)[0]
}

func TestCommand(t *testing.T) {
	tests := []struct {
		name string
		want model.TextAlignment
		ok   bool
	}{
		{"justifyleft", model.AlignLeft, true},
		{"justifyCenter", model.AlignCenter, true},
		{"JUSTIFYRIGHT", model.AlignRight, true},
		{"justifyfull", model.AlignJustify, true},
		{"justify", 0, false},
		{"tablemerge", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Command(tt.name)
			if ok != tt.ok || got != tt.want {
				t.Errorf("Command(%q) = %v, %v; want %v, %v", tt.name, got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestAlign(t *testing.T) {
	cell := parseCell(t, `<table><tr><td style="color: red">x</td></tr></table>`)

	Align(cell, model.AlignCenter)

	if got := htmldoc.GetAttr(cell, "style"); got != "color: red; text-align: center;" {
		t.Errorf("style = %q", got)
	}
}

func TestAlign_ReplacesNestedAlignment(t *testing.T) {
	cell := parseCell(t, `<table><tr><td style="text-align: left"><p style="text-align: right">x</p><p style="text-align: center; color: blue">y</p></td></tr></table>`)

	Align(cell, model.AlignJustify)

	if got := htmldoc.Style(cell, "text-align"); got != "justify" {
		t.Errorf("cell text-align = %q, want justify", got)
	}
	ps := htmldoc.QueryAll(cell, atom.P)
	if _, ok := htmldoc.LookupAttr(ps[0], "style"); ok {
		t.Error("empty style attribute left on the first paragraph")
	}
	if got := htmldoc.GetAttr(ps[1], "style"); got != "color: blue;" {
		t.Errorf("second paragraph style = %q, want color only", got)
	}
}

func TestAlignCommand(t *testing.T) {
	cell := parseCell(t, `<table><tr><td>x</td></tr></table>`)

	if AlignCommand("tablemerge", cell) {
		t.Error("AlignCommand() accepted a non-justify command")
	}
	if _, ok := htmldoc.LookupAttr(cell, "style"); ok {
		t.Error("non-justify command touched the cell")
	}

	if !AlignCommand("justifyright", cell) {
		t.Fatal("AlignCommand(justifyright) = false")
	}
	if got := htmldoc.Style(cell, "text-align"); got != "right" {
		t.Errorf("text-align = %q, want right", got)
	}
}

func TestAlign_IgnoresNonElements(t *testing.T) {
	Align(nil, model.AlignLeft)
	Align(&html.Node{Type: html.TextNode, Data: "x"}, model.AlignLeft)
}
