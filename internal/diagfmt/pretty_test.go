package diagfmt_test

import (
	"bytes"
	"strings"
	"testing"

	"hslight/internal/diag"
	"hslight/internal/diagfmt"
	"hslight/internal/source"
)

func makeBag(fs *source.FileSet, input string) (*diag.Bag, source.FileID) {
	id := fs.AddVirtual("test.hs", []byte(input))
	return diag.NewBag(16), id
}

func TestPrettyHeaderAndCaret(t *testing.T) {
	fs := source.NewFileSet()
	bag, id := makeBag(fs, "x = \"oops\n")
	bag.Add(diag.Diagnostic{
		Severity: diag.SevError,
		Code:     diag.LexUnterminatedString,
		Message:  "unterminated string literal",
		Primary:  source.Span{File: id, Start: 4, End: 9},
	})

	var buf bytes.Buffer
	diagfmt.Pretty(&buf, bag, fs, diagfmt.PrettyOpts{PathMode: diagfmt.PathModeBasename})
	out := buf.String()

	if !strings.Contains(out, "test.hs:1:5: ERROR[LEX1002]: unterminated string literal") {
		t.Fatalf("missing header in:\n%s", out)
	}
	if !strings.Contains(out, "x = \"oops") {
		t.Fatalf("missing context line in:\n%s", out)
	}
	if !strings.Contains(out, "^~~~~") {
		t.Fatalf("missing caret underline in:\n%s", out)
	}
}

func TestPrettySpanlessDiagnostic(t *testing.T) {
	fs := source.NewFileSet()
	bag, _ := makeBag(fs, "")
	bag.Add(diag.Diagnostic{
		Severity: diag.SevError,
		Code:     diag.IOReadFailed,
		Message:  "failed to read file",
	})

	var buf bytes.Buffer
	diagfmt.Pretty(&buf, bag, fs, diagfmt.PrettyOpts{})
	if got := buf.String(); got != "ERROR[IO4001]: failed to read file\n" {
		t.Fatalf("got %q", got)
	}
}

func TestPrettyTabExpansion(t *testing.T) {
	fs := source.NewFileSet()
	bag, id := makeBag(fs, "\tbad\n")
	bag.Add(diag.Diagnostic{
		Severity: diag.SevWarning,
		Code:     diag.LexInfo,
		Message:  "something about bad",
		Primary:  source.Span{File: id, Start: 1, End: 4},
	})

	var buf bytes.Buffer
	diagfmt.Pretty(&buf, bag, fs, diagfmt.PrettyOpts{})
	out := buf.String()
	// The tab expands to 8 spaces, the caret starts at display column 9.
	if !strings.Contains(out, "|         bad") {
		t.Fatalf("tab not expanded in context:\n%s", out)
	}
	if !strings.Contains(out, "|         ^~~") {
		t.Fatalf("caret misaligned:\n%s", out)
	}
}

func TestDiagnosticsJSON(t *testing.T) {
	fs := source.NewFileSet()
	bag, id := makeBag(fs, "f = 1\n")
	bag.Add(diag.Diagnostic{
		Severity: diag.SevError,
		Code:     diag.LexUnknownChar,
		Message:  "unknown character",
		Primary:  source.Span{File: id, Start: 0, End: 1},
	})

	var buf bytes.Buffer
	err := diagfmt.DiagnosticsJSON(&buf, bag, fs, diagfmt.JSONOpts{
		IncludePositions: true,
		PathMode:         diagfmt.PathModeBasename,
	})
	if err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, want := range []string{`"code": "LEX1001"`, `"path": "test.hs"`, `"line": 1`} {
		if !strings.Contains(out, want) {
			t.Fatalf("missing %s in:\n%s", want, out)
		}
	}
}
