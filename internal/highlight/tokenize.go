package highlight

import (
	"fmt"

	"hslight/internal/diag"
	"hslight/internal/lexer"
	"hslight/internal/source"
	"hslight/internal/token"
)

// LexError reports that the lexer rejected the input. No token output
// exists alongside it.
type LexError struct {
	Path        string
	Diagnostics []diag.Diagnostic
}

func (e *LexError) Error() string {
	if len(e.Diagnostics) == 0 {
		return fmt.Sprintf("%s: tokenization failed", e.Path)
	}
	first := e.Diagnostics[0]
	if len(e.Diagnostics) == 1 {
		return fmt.Sprintf("%s: %s", e.Path, first.Message)
	}
	return fmt.Sprintf("%s: %s (and %d more)", e.Path, first.Message, len(e.Diagnostics)-1)
}

// maxLexDiagnostics bounds how many lexer diagnostics one call collects.
// One error already fails the whole call, the rest is context.
const maxLexDiagnostics = 64

// Tokenize runs the full pipeline over one file: lex to completion,
// classify, reconstruct. The lexer runs with every extension enabled and
// layout synthesis on; layout tokens have no real source position and are
// dropped before reconstruction, as is the end-of-input marker.
//
// The error is all-or-nothing: any lexical error fails the whole call
// with a *LexError and no stream.
func Tokenize(file *source.File) (*Stream, error) {
	bag := diag.NewBag(maxLexDiagnostics)
	lx := lexer.New(file, lexer.Options{
		Reporter: &diag.BagReporter{Bag: bag},
		Layout:   true,
	})

	var raw []token.Token
	for {
		t := lx.Next()
		if t.Kind == token.EOF {
			break
		}
		raw = append(raw, t)
	}
	if bag.HasErrors() {
		return nil, &LexError{Path: file.Path, Diagnostics: errorItems(bag)}
	}

	spans := make([]SpanToken, 0, len(raw))
	for _, t := range raw {
		if t.Virtual || t.Span.Empty() {
			continue
		}
		start := file.ExpandedLineColAt(t.Span.Start)
		end := file.ExpandedLineColAt(t.Span.End)
		spans = append(spans, SpanToken{
			Category: Classify(t.Kind),
			Start:    start,
			End:      end,
		})
	}
	return Reconstruct(string(file.Content), spans), nil
}

// TokenizeString is Tokenize over in-memory input, for callers without a
// FileSet of their own.
func TokenizeString(name, input string) (*Stream, error) {
	fs := source.NewFileSet()
	id := fs.AddVirtual(name, []byte(input))
	return Tokenize(fs.Get(id))
}

func errorItems(bag *diag.Bag) []diag.Diagnostic {
	items := bag.Items()
	out := make([]diag.Diagnostic, 0, len(items))
	for _, d := range items {
		if d.Severity >= diag.SevError {
			out = append(out, d)
		}
	}
	return out
}
