package tables

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestBuildMatrix(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "uniform",
			input: grid3x3,
			want:  "a b c\nd e f\ng h i",
		},
		{
			name: "colspan and rowspan",
			input: `<table>
<tr><td colspan="2" rowspan="2">a</td><td>b</td></tr>
<tr><td>c</td></tr>
<tr><td>d</td><td>e</td><td>f</td></tr>
</table>`,
			want: "a a b\na a c\nd e f",
		},
		{
			name: "rowspan in the middle column",
			input: `<table>
<tr><td>a</td><td rowspan="2">b</td><td>c</td></tr>
<tr><td>d</td><td>e</td></tr>
</table>`,
			want: "a b c\nd b e",
		},
		{
			name: "irregular rows are padded",
			input: `<table>
<tr><td>a</td><td>b</td><td>c</td></tr>
<tr><td>d</td></tr>
</table>`,
			want: "a b c\nd . .",
		},
		{
			name: "rowspan larger than table is clipped",
			input: `<table>
<tr><td rowspan="9">a</td><td>b</td></tr>
<tr><td>c</td></tr>
</table>`,
			want: "a b\na c",
		},
		{
			name: "rowspan zero extends to last row",
			input: `<table>
<tr><td rowspan="0">a</td><td>b</td></tr>
<tr><td>c</td></tr>
<tr><td>d</td></tr>
</table>`,
			want: "a b\na c\na d",
		},
		{
			name: "invalid spans default to one",
			input: `<table>
<tr><td colspan="x" rowspan="-3">a</td><td>b</td></tr>
</table>`,
			want: "a b",
		},
		{
			name: "overlapping spans keep the first owner",
			input: `<table>
<tr><td>a</td><td rowspan="2">b</td></tr>
<tr><td colspan="3">c</td></tr>
</table>`,
			want: "a b .\nc b c",
		},
		{
			name: "thead tbody and tfoot rows",
			input: `<table>
<thead><tr><th>h</th></tr></thead>
<tbody><tr><td>b</td></tr></tbody>
<tfoot><tr><td>f</td></tr></tfoot>
</table>`,
			want: "h\nb\nf",
		},
		{
			name: "nested tables are not part of the outer matrix",
			input: `<table>
<tr><td>a</td><td><table><tr><td>x</td><td>y</td></tr></table></td></tr>
</table>`,
			want: "a xy",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table := parseTable(t, tt.input)
			if diff := cmp.Diff(tt.want, shape(table)); diff != "" {
				t.Errorf("matrix mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestBuildMatrix_NilAndNonTable(t *testing.T) {
	m := BuildMatrix(nil)
	if m.Height() != 0 || m.Width() != 0 {
		t.Errorf("BuildMatrix(nil) = %dx%d, want 0x0", m.Height(), m.Width())
	}

	table := parseTable(t, grid3x3)
	m = BuildMatrix(TableRows(table)[0])
	if m.Height() != 0 {
		t.Errorf("BuildMatrix(tr) height = %d, want 0", m.Height())
	}
}

func TestMatrix_SpanningCellFillsItsRectangle(t *testing.T) {
	table := parseTable(t, `<table>
<tr><td colspan="2" rowspan="2">a</td><td>b</td></tr>
<tr><td>c</td></tr>
</table>`)
	m := BuildMatrix(table)
	a := cellByText(t, table, "a")

	for _, c := range []Coord{{0, 0}, {0, 1}, {1, 0}, {1, 1}} {
		if got := m.At(c.Row, c.Col); got != a {
			t.Errorf("At(%d, %d) is not the spanning cell", c.Row, c.Col)
		}
	}

	ext, ok := m.Extent(a)
	if !ok {
		t.Fatal("Extent() did not find the spanning cell")
	}
	want := Bound{Min: Coord{0, 0}, Max: Coord{1, 1}}
	if ext != want {
		t.Errorf("Extent() = %+v, want %+v", ext, want)
	}
}

func TestMatrix_Position(t *testing.T) {
	table := parseTable(t, `<table>
<tr><td rowspan="2">a</td><td>b</td></tr>
<tr><td>c</td></tr>
</table>`)
	m := BuildMatrix(table)

	pos, ok := m.Position(cellByText(t, table, "c"))
	if !ok {
		t.Fatal("Position() did not find cell c")
	}
	if pos != (Coord{Row: 1, Col: 1}) {
		t.Errorf("Position(c) = %+v, want {1 1}", pos)
	}

	other := parseTable(t, grid3x3)
	if _, ok := m.Position(cellByText(t, other, "a")); ok {
		t.Error("Position() found a cell from another table")
	}
}

func TestMatrix_AtOutOfRange(t *testing.T) {
	m := BuildMatrix(parseTable(t, grid3x3))
	for _, c := range []Coord{{-1, 0}, {0, -1}, {3, 0}, {0, 3}} {
		if got := m.At(c.Row, c.Col); got != nil {
			t.Errorf("At(%d, %d) = %v, want nil", c.Row, c.Col, got)
		}
	}
}

func TestMatrix_RowIndex(t *testing.T) {
	table := parseTable(t, grid3x3)
	m := BuildMatrix(table)
	rows := TableRows(table)

	if got := m.RowIndex(rows[2]); got != 2 {
		t.Errorf("RowIndex(rows[2]) = %d, want 2", got)
	}
	if got := m.RowIndex(table); got != -1 {
		t.Errorf("RowIndex(table) = %d, want -1", got)
	}
}

func TestSpanAttributes(t *testing.T) {
	table := parseTable(t, `<table><tr><td rowspan="3" colspan="5000">a</td><td>b</td></tr></table>`)
	a := cellByText(t, table, "a")
	b := cellByText(t, table, "b")

	if got := RowSpan(a); got != 3 {
		t.Errorf("RowSpan(a) = %d, want 3", got)
	}
	if got := ColSpan(a); got != maxColSpan {
		t.Errorf("ColSpan(a) = %d, want %d", got, maxColSpan)
	}
	if got := RowSpan(b); got != 1 {
		t.Errorf("RowSpan(b) = %d, want 1", got)
	}

	SetRowSpan(a, 1)
	if _, ok := parseSpan(a, "rowspan"); ok {
		t.Error("SetRowSpan(1) should remove the attribute")
	}
	SetColSpan(b, 4)
	if got := ColSpan(b); got != 4 {
		t.Errorf("ColSpan(b) = %d, want 4", got)
	}
}

func TestNewBound_Normalizes(t *testing.T) {
	b := NewBound(Coord{Row: 3, Col: 0}, Coord{Row: 1, Col: 2})
	want := Bound{Min: Coord{1, 0}, Max: Coord{3, 2}}
	if b != want {
		t.Errorf("NewBound() = %+v, want %+v", b, want)
	}
	if b.Rows() != 3 || b.Cols() != 3 {
		t.Errorf("Rows(), Cols() = %d, %d, want 3, 3", b.Rows(), b.Cols())
	}
	if !b.Contains(Coord{2, 1}) || b.Contains(Coord{0, 1}) {
		t.Error("Contains() gave the wrong answer")
	}
}
