package cli

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matzehuels/cogmap/pkg/errors"
	pkgio "github.com/matzehuels/cogmap/pkg/io"
)

const testMap = `<?xml version="1.0"?>
<model>
  <concept id="1" style="standard">Raise prices</concept>
  <concept id="2" style="Goal">Profit</concept>
  <concept id="3" style="Risk">Churn</concept>
  <position concept="1" x="100" y="200"/>
  <link from="1" to="2" sign="+"/>
  <link from="2" to="9" sign="-"/>
  <conceptstyle name="Goal" red="0" green="100" blue="0" bold="1"/>
</model>`

func writeMap(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "model.xml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

// runCLI executes the root command with args and returns what was
// written to Out and Err.
func runCLI(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	c := New(io.Discard, LogInfo)
	c.Out, c.Err = &out, &errOut

	root := c.RootCommand()
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return out.String(), errOut.String(), err
}

func TestConvertJSONStdout(t *testing.T) {
	path := writeMap(t, testMap)

	stdout, stderr, err := runCLI(t, "convert", path)
	if err != nil {
		t.Fatalf("convert: %v", err)
	}
	if stderr != "" {
		t.Errorf("unexpected status output: %q", stderr)
	}

	res, err := pkgio.ReadJSON(strings.NewReader(stdout))
	if err != nil {
		t.Fatalf("ReadJSON: %v", err)
	}
	if len(res.Nodes) != 3 || len(res.Edges) != 2 || len(res.NodeStyles) != 1 {
		t.Fatalf("got %d nodes, %d edges, %d styles", len(res.Nodes), len(res.Edges), len(res.NodeStyles))
	}
	if x := res.Nodes[0].X; x == nil || *x != 20 {
		t.Errorf("elem-1 x = %v, want 20", x)
	}
}

func TestConvertCSVStdout(t *testing.T) {
	path := writeMap(t, testMap)

	stdout, _, err := runCLI(t, "convert", path, "--format", "csv")
	if err != nil {
		t.Fatalf("convert: %v", err)
	}

	blocks := strings.Split(stdout, "\n\n")
	if len(blocks) != 3 {
		t.Fatalf("got %d CSV blocks, want 3:\n%s", len(blocks), stdout)
	}
	for i, prefix := range []string{"name,id,refno,label", "name,id,refno,from", "type,font_colour,font_weight"} {
		if !strings.HasPrefix(blocks[i], prefix) {
			t.Errorf("block %d starts with %q, want prefix %q", i, firstLine(blocks[i]), prefix)
		}
	}
	if !strings.Contains(blocks[0], "elem-3,node-3,3,Churn,Risk,NA,NA,NA,NA") {
		t.Errorf("unplaced concept row missing:\n%s", blocks[0])
	}
}

func TestConvertJSONFile(t *testing.T) {
	path := writeMap(t, testMap)
	out := filepath.Join(t.TempDir(), "nested", "model.json")

	_, stderr, err := runCLI(t, "convert", path, "-o", out)
	if err != nil {
		t.Fatalf("convert: %v", err)
	}

	res, err := pkgio.ImportJSON(out)
	if err != nil {
		t.Fatalf("ImportJSON: %v", err)
	}
	if len(res.Edges) != 2 {
		t.Errorf("got %d edges, want 2", len(res.Edges))
	}
	if !strings.Contains(stderr, out) {
		t.Errorf("status output should name %s:\n%s", out, stderr)
	}
	if !strings.Contains(stderr, "3 nodes") {
		t.Errorf("status output should report counts:\n%s", stderr)
	}
}

func TestConvertJSONIntoDirectory(t *testing.T) {
	path := writeMap(t, testMap)
	dir := t.TempDir()

	if _, _, err := runCLI(t, "convert", path, "-o", dir); err != nil {
		t.Fatalf("convert: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "model.json")); err != nil {
		t.Errorf("expected model.json in %s: %v", dir, err)
	}
}

func TestConvertCSVDirectory(t *testing.T) {
	path := writeMap(t, testMap)
	dir := filepath.Join(t.TempDir(), "tables")

	if _, _, err := runCLI(t, "convert", path, "--format", "csv", "-o", dir); err != nil {
		t.Fatalf("convert: %v", err)
	}
	for _, name := range []string{"nodes.csv", "edges.csv", "node_styles.csv"} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Errorf("missing %s: %v", name, err)
		}
	}
}

func TestConvertErrors(t *testing.T) {
	tests := []struct {
		name string
		args func(t *testing.T) []string
		code errors.Code
	}{
		{
			name: "missing file",
			args: func(t *testing.T) []string {
				return []string{"convert", filepath.Join(t.TempDir(), "absent.xml")}
			},
			code: errors.ErrCodeFileNotFound,
		},
		{
			name: "malformed xml",
			args: func(t *testing.T) []string {
				return []string{"convert", writeMap(t, "<model><concept id=\"1\">")}
			},
			code: errors.ErrCodeInvalidXML,
		},
		{
			name: "bad bold flag",
			args: func(t *testing.T) []string {
				return []string{"convert", writeMap(t, `<m><conceptstyle name="s" red="0" green="0" blue="0" bold="2"/></m>`)}
			},
			code: errors.ErrCodeInvalidBoldFlag,
		},
		{
			name: "unsupported format",
			args: func(t *testing.T) []string {
				return []string{"convert", writeMap(t, testMap), "--format", "svg"}
			},
			code: errors.ErrCodeInvalidFormat,
		},
		{
			name: "negative scale",
			args: func(t *testing.T) []string {
				return []string{"convert", writeMap(t, testMap), "--scale", "-1"}
			},
			code: errors.ErrCodeInvalidScale,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := runCLI(t, tt.args(t)...)
			if err == nil {
				t.Fatal("expected error")
			}
			if !errors.Is(err, tt.code) {
				t.Errorf("error code = %q, want %q (%v)", errors.GetCode(err), tt.code, err)
			}
		})
	}
}

func TestConvertRequiresOneArg(t *testing.T) {
	if _, _, err := runCLI(t, "convert"); err == nil {
		t.Error("expected error without an input file")
	}
}

func TestInspect(t *testing.T) {
	path := writeMap(t, testMap)

	stdout, _, err := runCLI(t, "inspect", path)
	if err != nil {
		t.Fatalf("inspect: %v", err)
	}

	for _, want := range []string{
		"model.xml",
		"1 of 3",
		"elem-2 has no position",
		"x 20..20  y -40..-40",
		"+ 1",
		"- 1",
		"#00ff00",
		"bold",
		`type "Risk" has no conceptstyle entry`,
		"conn-2: elem-2 -> elem-9 references an unknown concept",
	} {
		if !strings.Contains(stdout, want) {
			t.Errorf("report missing %q:\n%s", want, stdout)
		}
	}
}

func TestInspectScale(t *testing.T) {
	path := writeMap(t, testMap)

	stdout, _, err := runCLI(t, "inspect", path, "--scale", "10")
	if err != nil {
		t.Fatalf("inspect: %v", err)
	}
	if !strings.Contains(stdout, "x 10..10  y -20..-20") {
		t.Errorf("extent not rescaled:\n%s", stdout)
	}
}

func TestCompletion(t *testing.T) {
	for _, shell := range []string{"bash", "zsh", "fish", "powershell"} {
		t.Run(shell, func(t *testing.T) {
			stdout, _, err := runCLI(t, "completion", shell)
			if err != nil {
				t.Fatalf("completion %s: %v", shell, err)
			}
			if !strings.Contains(stdout, appName) {
				t.Errorf("completion script should mention %s", appName)
			}
		})
	}

	if _, _, err := runCLI(t, "completion", "tcsh"); err == nil {
		t.Error("expected error for unsupported shell")
	}
}

func TestReportError(t *testing.T) {
	var buf bytes.Buffer
	ReportError(&buf, errors.New(errors.ErrCodeInvalidColour, "red: 120 outside 0..100"))

	if !strings.Contains(buf.String(), "red: 120 outside 0..100") {
		t.Errorf("ReportError() = %q", buf.String())
	}
}

func firstLine(s string) string {
	line, _, _ := strings.Cut(s, "\n")
	return line
}

func TestVersionFlag(t *testing.T) {
	stdout, _, err := runCLI(t, "--version")
	if err != nil {
		t.Fatalf("--version: %v", err)
	}
	if !strings.HasPrefix(stdout, appName+" version ") {
		t.Errorf("--version output = %q", stdout)
	}
}

func TestInspectNullFields(t *testing.T) {
	path := writeMap(t, `<m>
  <concept id="1">A</concept>
  <link from="1"/>
  <conceptstyle name="Muted" red="10"/>
</m>`)

	stdout, _, err := runCLI(t, "inspect", path)
	if err != nil {
		t.Fatalf("inspect: %v", err)
	}
	for _, want := range []string{"Muted", "conn-1: elem-1 -> null references an unknown concept"} {
		if !strings.Contains(stdout, want) {
			t.Errorf("report missing %q:\n%s", want, stdout)
		}
	}
}
