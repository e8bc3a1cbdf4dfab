package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/tsawler/tablesel/tables"
)

const page = `<html><body><table>
<tr><td>a</td><td>b</td><td>c</td></tr>
<tr><td>d</td><td colspan="2">e</td></tr>
</table></body></html>`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func run(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	cmd := newRootCommand()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err = cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestMatrixCommand(t *testing.T) {
	file := writeFile(t, "page.html", page)

	out, _, err := run(t, "matrix", file)
	if err != nil {
		t.Fatalf("matrix failed: %v", err)
	}

	want := "a\tb\tc\nd\te\te\n"
	if diff := cmp.Diff(want, out); diff != "" {
		t.Errorf("output mismatch (-want +got):\n%s", diff)
	}
}

func TestMatrixCommand_NoTable(t *testing.T) {
	file := writeFile(t, "page.html", page)

	if _, _, err := run(t, "matrix", file, "--table", "3"); err == nil {
		t.Error("expected an error for a missing table")
	}
}

func TestSelectCommand(t *testing.T) {
	file := writeFile(t, "page.html", page)

	out, _, err := run(t, "select", file, "--from", "0,1", "--to", "1,1")
	if err != nil {
		t.Fatalf("select failed: %v", err)
	}

	want := "0,1\tb\n0,2\tc\n1,1\te\n"
	if diff := cmp.Diff(want, out); diff != "" {
		t.Errorf("output mismatch (-want +got):\n%s", diff)
	}
}

func TestSelectCommand_ReadOnly(t *testing.T) {
	file := writeFile(t, "page.html", page)

	tests := []struct {
		name  string
		args  []string
		setup func(t *testing.T)
	}{
		{"flag", []string{"--readonly"}, func(*testing.T) {}},
		{"environment", nil, func(t *testing.T) { t.Setenv("TABLESEL_READONLY", "true") }},
		{"config file", nil, func(t *testing.T) {
			cfg := writeFile(t, "tablesel.yaml", "readonly: true\n")
			t.Setenv("TABLESEL_CONFIG", cfg)
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup(t)
			args := append([]string{"select", file, "--to", "1,2"}, tt.args...)

			out, _, err := run(t, args...)
			if err != nil {
				t.Fatalf("select failed: %v", err)
			}
			if out != "" {
				t.Errorf("read-only select printed %q", out)
			}
		})
	}
}

func TestExecCommand(t *testing.T) {
	file := writeFile(t, "page.html", page)

	out, errOut, err := run(t, "exec", file, "--from", "0,0", "--to", "0,1", "--command", "tablemerge", "--log-format", "json")
	if err != nil {
		t.Fatalf("exec failed: %v", err)
	}
	if !strings.Contains(out, `colspan="2"`) || !strings.Contains(out, "a<br/>b") {
		t.Errorf("merged table not rendered:\n%s", out)
	}
	if !strings.Contains(errOut, `"handled":true`) {
		t.Errorf("log output = %q, want a JSON entry with handled=true", errOut)
	}
}

func TestExecCommand_RequiresCommand(t *testing.T) {
	file := writeFile(t, "page.html", page)

	if _, _, err := run(t, "exec", file); err == nil {
		t.Error("exec without --command succeeded")
	}
}

func TestRootCommand_BadConfiguration(t *testing.T) {
	file := writeFile(t, "page.html", page)

	tests := []struct {
		name string
		args []string
	}{
		{"log level", []string{"--log-level", "loud"}},
		{"log format", []string{"--log-format", "xml"}},
		{"missing config file", []string{"--config", filepath.Join(t.TempDir(), "none.yaml")}},
		{"bad coordinate", []string{"--from", "x"}},
		{"hole", []string{"--from", "5,5"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := append([]string{"select", file}, tt.args...)
			if _, _, err := run(t, args...); err == nil {
				t.Error("expected an error")
			}
		})
	}
}

func TestParseCoord(t *testing.T) {
	tests := []struct {
		in      string
		want    tables.Coord
		wantErr bool
	}{
		{"0,0", tables.Coord{}, false},
		{"2, 3", tables.Coord{Row: 2, Col: 3}, false},
		{"2", tables.Coord{}, true},
		{"a,1", tables.Coord{}, true},
		{"1,b", tables.Coord{}, true},
		{"-1,0", tables.Coord{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseCoord(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseCoord(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("parseCoord(%q) = %+v, want %+v", tt.in, got, tt.want)
			}
		})
	}
}
