package lexer_test

import (
	"fmt"
	"testing"

	"hslight/internal/diag"
	"hslight/internal/lexer"
	"hslight/internal/source"
	"hslight/internal/token"
)

// testReporter collects every diagnostic the lexer reports.
type testReporter struct {
	diagnostics []diag.Diagnostic
}

func (r *testReporter) Report(code diag.Code, sev diag.Severity, primary source.Span, msg string, notes []diag.Note) {
	r.diagnostics = append(r.diagnostics, diag.Diagnostic{
		Severity: sev,
		Code:     code,
		Message:  msg,
		Primary:  primary,
		Notes:    notes,
	})
}

func (r *testReporter) HasErrors() bool {
	for _, d := range r.diagnostics {
		if d.Severity == diag.SevError {
			return true
		}
	}
	return false
}

func (r *testReporter) ErrorMessages() []string {
	messages := make([]string, 0, len(r.diagnostics))
	for _, d := range r.diagnostics {
		messages = append(messages, fmt.Sprintf("[%s] %s: %s", d.Code.ID(), d.Severity, d.Message))
	}
	return messages
}

func makeTestLexer(input string, layout bool) (*lexer.Lexer, *testReporter) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("test.hs", []byte(input))
	file := fs.Get(fileID)

	reporter := &testReporter{}
	lx := lexer.New(file, lexer.Options{Reporter: reporter, Layout: layout})
	return lx, reporter
}

func collectAllTokens(lx *lexer.Lexer) []token.Token {
	tokens := make([]token.Token, 0)
	for {
		tok := lx.Next()
		tokens = append(tokens, tok)
		if tok.Kind == token.EOF {
			break
		}
	}
	return tokens
}

func tokensToString(tokens []token.Token) string {
	s := ""
	for i, tok := range tokens {
		if i > 0 {
			s += " "
		}
		s += tok.Kind.String()
	}
	return s
}

// expectTokens checks the token kind sequence for input, EOF excluded.
func expectTokens(t *testing.T, input string, expected []token.Kind) {
	t.Helper()
	lx, reporter := makeTestLexer(input, false)
	tokens := collectAllTokens(lx)

	if len(tokens) > 0 && tokens[len(tokens)-1].Kind == token.EOF {
		tokens = tokens[:len(tokens)-1]
	}

	if len(tokens) != len(expected) {
		t.Fatalf("Expected %d tokens, got %d\nInput: %q\nTokens: %v\nErrors: %v",
			len(expected), len(tokens), input, tokensToString(tokens), reporter.ErrorMessages())
	}
	for i, want := range expected {
		if tokens[i].Kind != want {
			t.Fatalf("Token %d: expected %v, got %v\nInput: %q\nTokens: %v",
				i, want, tokens[i].Kind, input, tokensToString(tokens))
		}
	}
}

// expectTexts checks kinds and exact source slices.
func expectTexts(t *testing.T, input string, expected [][2]string) {
	t.Helper()
	lx, reporter := makeTestLexer(input, false)
	tokens := collectAllTokens(lx)
	if len(tokens) > 0 && tokens[len(tokens)-1].Kind == token.EOF {
		tokens = tokens[:len(tokens)-1]
	}
	if len(tokens) != len(expected) {
		t.Fatalf("Expected %d tokens, got %d\nInput: %q\nTokens: %v\nErrors: %v",
			len(expected), len(tokens), input, tokensToString(tokens), reporter.ErrorMessages())
	}
	for i, want := range expected {
		if tokens[i].Kind.String() != want[0] || tokens[i].Text != want[1] {
			t.Fatalf("Token %d: expected (%s, %q), got (%s, %q)\nInput: %q",
				i, want[0], want[1], tokens[i].Kind, tokens[i].Text, input)
		}
	}
}

func TestSimpleBinding(t *testing.T) {
	expectTexts(t, "f = 1\n", [][2]string{
		{"VarId", "f"},
		{"Equal", "="},
		{"IntLit", "1"},
	})
}

func TestKeywords(t *testing.T) {
	expectTokens(t, "module Main where import Data.List",
		[]token.Kind{
			token.KwModule, token.ConId, token.KwWhere,
			token.KwImport, token.QConId,
		})
}

func TestExtensionKeywords(t *testing.T) {
	expectTokens(t, "proc rec forall mdo pattern role",
		[]token.Kind{
			token.KwProc, token.KwRec, token.KwForall,
			token.KwMdo, token.KwPattern, token.KwRole,
		})
}

func TestQualifiedNames(t *testing.T) {
	expectTexts(t, "Data.List.map M.Just M.++ M.:+:", [][2]string{
		{"QVarId", "Data.List.map"},
		{"QConId", "M.Just"},
		{"QVarSym", "M.++"},
		{"QConSym", "M.:+:"},
	})
}

func TestConIdThenDot(t *testing.T) {
	// A trailing dot that cannot start a segment stays a reserved dot.
	expectTokens(t, "A . b",
		[]token.Kind{token.ConId, token.Dot, token.VarId})
}

func TestReservedSymbols(t *testing.T) {
	expectTokens(t, ":: -> <- => = \\ | @ ~ .. :",
		[]token.Kind{
			token.DColon, token.RightArrow, token.LeftArrow, token.DArrow,
			token.Equal, token.Lambda, token.Bar, token.At, token.Tilde,
			token.DotDot, token.Colon,
		})
}

func TestMinusAndDotAreReserved(t *testing.T) {
	expectTokens(t, "a - b", []token.Kind{token.VarId, token.Minus, token.VarId})
	expectTokens(t, "f . g", []token.Kind{token.VarId, token.Dot, token.VarId})
}

func TestOperators(t *testing.T) {
	expectTexts(t, "x >>= f <$> g :+: h", [][2]string{
		{"VarId", "x"},
		{"VarSym", ">>="},
		{"VarId", "f"},
		{"VarSym", "<$>"},
		{"VarId", "g"},
		{"ConSym", ":+:"},
		{"VarId", "h"},
	})
}

func TestDashRunOperator(t *testing.T) {
	// "-->" is an operator, "--" starts a comment.
	expectTokens(t, "a --> b", []token.Kind{token.VarId, token.VarSym, token.VarId})
	expectTokens(t, "a -- b", []token.Kind{token.VarId, token.LineComment})
}

func TestPunctuation(t *testing.T) {
	expectTokens(t, "( ) [ ] { } ; , ` (# #)",
		[]token.Kind{
			token.LParen, token.RParen, token.LBracket, token.RBracket,
			token.LBrace, token.RBrace, token.Semi, token.Comma,
			token.Backquote, token.UnboxedLParen, token.UnboxedRParen,
		})
}

func TestUnderscore(t *testing.T) {
	expectTokens(t, "_ _foo f_1",
		[]token.Kind{token.KwUnderscore, token.VarId, token.VarId})
}

func TestNumbers(t *testing.T) {
	expectTexts(t, "42 0x2A 0o52 0b101010 1_000", [][2]string{
		{"IntLit", "42"},
		{"IntLit", "0x2A"},
		{"IntLit", "0o52"},
		{"IntLit", "0b101010"},
		{"IntLit", "1_000"},
	})
	expectTexts(t, "3.14 6.02e23 1e-9 2E+3", [][2]string{
		{"RationalLit", "3.14"},
		{"RationalLit", "6.02e23"},
		{"RationalLit", "1e-9"},
		{"RationalLit", "2E+3"},
	})
}

func TestPrimLiterals(t *testing.T) {
	expectTexts(t, "3# 3## 3.0# 3.0## 'a'# \"s\"#", [][2]string{
		{"PrimIntLit", "3#"},
		{"PrimWordLit", "3##"},
		{"PrimFloatLit", "3.0#"},
		{"PrimDoubleLit", "3.0##"},
		{"PrimCharLit", "'a'#"},
		{"PrimStringLit", "\"s\"#"},
	})
}

func TestRangeKeepsDots(t *testing.T) {
	expectTokens(t, "[1..10]",
		[]token.Kind{
			token.LBracket, token.IntLit, token.DotDot, token.IntLit,
			token.RBracket,
		})
}

func TestCharLiterals(t *testing.T) {
	expectTexts(t, `'a' '\n' '\x41' '\\'`, [][2]string{
		{"CharLit", "'a'"},
		{"CharLit", `'\n'`},
		{"CharLit", `'\x41'`},
		{"CharLit", `'\\'`},
	})
}

func TestSimpleQuote(t *testing.T) {
	expectTokens(t, "'True '[]",
		[]token.Kind{
			token.SimpleQuote, token.ConId,
			token.SimpleQuote, token.LBracket, token.RBracket,
		})
}

func TestStrings(t *testing.T) {
	expectTexts(t, `"hello" "with \"quotes\""`, [][2]string{
		{"StringLit", `"hello"`},
		{"StringLit", `"with \"quotes\""`},
	})
}

func TestStringGap(t *testing.T) {
	input := "\"one \\\n  \\two\""
	expectTexts(t, input, [][2]string{
		{"StringLit", input},
	})
}

func TestComments(t *testing.T) {
	expectTokens(t, "x -- trailing", []token.Kind{token.VarId, token.LineComment})
	expectTokens(t, "{- block -} y", []token.Kind{token.BlockComment, token.VarId})
	expectTokens(t, "{- outer {- inner -} still -} z",
		[]token.Kind{token.BlockComment, token.VarId})
}

func TestDocComments(t *testing.T) {
	expectTokens(t, "-- | next\n-- ^ prev\n-- * Section\n-- $chunk\n{-| block doc -}",
		[]token.Kind{
			token.DocCommentNext, token.DocCommentPrev, token.DocSection,
			token.DocCommentNamed, token.DocCommentNext,
		})
}

func TestPragmas(t *testing.T) {
	expectTexts(t, "{-# LANGUAGE GADTs #-}\n{-# INLINE f #-}\n{-# SCC \"n\" #-}", [][2]string{
		{"PragmaLanguage", "{-# LANGUAGE GADTs #-}"},
		{"PragmaInline", "{-# INLINE f #-}"},
		{"PragmaGeneric", "{-# SCC \"n\" #-}"},
	})
}

func TestHaddockOptions(t *testing.T) {
	expectTokens(t, "{-# OPTIONS_HADDOCK prune #-}", []token.Kind{token.DocOptions})
}

func TestTemplateHaskell(t *testing.T) {
	expectTokens(t, "[| x |] [p| p |] [d| d |] [t| t |] $x $$(f)",
		[]token.Kind{
			token.OpenExpQuote, token.VarId, token.CloseQuote,
			token.OpenPatQuote, token.VarId, token.CloseQuote,
			token.OpenDecQuote, token.VarId, token.CloseQuote,
			token.OpenTypQuote, token.VarId, token.CloseQuote,
			token.Dollar, token.VarId,
			token.DollarDollar, token.LParen, token.VarId, token.RParen,
		})
}

func TestQuasiQuote(t *testing.T) {
	expectTexts(t, "[sql| select * from t |]", [][2]string{
		{"QuasiQuote", "[sql| select * from t |]"},
	})
}

func TestDollarOperator(t *testing.T) {
	// '$' with space on both sides is the ordinary application operator.
	expectTokens(t, "f $ x", []token.Kind{token.VarId, token.VarSym, token.VarId})
}

func TestLabelsAndImplicits(t *testing.T) {
	expectTexts(t, "#name ?imp", [][2]string{
		{"LabelId", "#name"},
		{"ImplicitId", "?imp"},
	})
}

func TestUnterminatedString(t *testing.T) {
	lx, reporter := makeTestLexer(`x = "oops`, false)
	collectAllTokens(lx)
	if !reporter.HasErrors() {
		t.Fatal("expected an error for unterminated string")
	}
}

func TestUnterminatedBlockComment(t *testing.T) {
	lx, reporter := makeTestLexer("{- never closed", false)
	collectAllTokens(lx)
	if !reporter.HasErrors() {
		t.Fatal("expected an error for unterminated block comment")
	}
}

func TestUnterminatedPragma(t *testing.T) {
	lx, reporter := makeTestLexer("{-# LANGUAGE GADTs", false)
	collectAllTokens(lx)
	if !reporter.HasErrors() {
		t.Fatal("expected an error for unterminated pragma")
	}
}

func TestSpansCoverExactSlices(t *testing.T) {
	input := "main :: IO ()\nmain = putStrLn \"hi\"\n"
	lx, _ := makeTestLexer(input, false)
	for _, tok := range collectAllTokens(lx) {
		if tok.Kind == token.EOF {
			break
		}
		slice := input[tok.Span.Start:tok.Span.End]
		if slice != tok.Text {
			t.Fatalf("%v: Span %v covers %q, Text is %q", tok.Kind, tok.Span, slice, tok.Text)
		}
	}
}

func TestLayoutVirtualTokens(t *testing.T) {
	input := "main = do\n  a\n  b\n"
	lx, _ := makeTestLexer(input, true)
	tokens := collectAllTokens(lx)

	var kinds []token.Kind
	virtuals := 0
	for _, tok := range tokens {
		kinds = append(kinds, tok.Kind)
		if tok.Virtual {
			virtuals++
			if !tok.Span.Empty() {
				t.Fatalf("virtual token %v must have an empty span", tok.Kind)
			}
			if tok.Text != "" {
				t.Fatalf("virtual token %v must have no text", tok.Kind)
			}
		}
	}

	// do opens a context at 'a' (VLBrace), 'b' aligns (VSemi), EOF closes
	// it (VRBrace).
	want := []token.Kind{
		token.VarId, token.Equal, token.KwDo,
		token.VLBrace, token.VarId,
		token.VSemi, token.VarId,
		token.VRBrace, token.EOF,
	}
	if len(kinds) != len(want) {
		t.Fatalf("got %v, want %v", tokensToString(tokens), want)
	}
	for i := range want {
		if kinds[i] != want[i] {
			t.Fatalf("token %d: got %v, want %v (all: %v)", i, kinds[i], want[i], tokensToString(tokens))
		}
	}
	if virtuals != 3 {
		t.Fatalf("expected 3 virtual tokens, got %d", virtuals)
	}
}

func TestLayoutExplicitBrace(t *testing.T) {
	input := "main = do { a; b }"
	lx, _ := makeTestLexer(input, true)
	for _, tok := range collectAllTokens(lx) {
		if tok.Virtual {
			t.Fatalf("explicit braces must not produce virtual tokens, got %v", tok.Kind)
		}
	}
}

func TestPeekDoesNotConsume(t *testing.T) {
	lx, _ := makeTestLexer("a b", false)
	p := lx.Peek()
	n := lx.Next()
	if p.Kind != n.Kind || p.Text != n.Text {
		t.Fatalf("Peek returned (%v,%q), Next returned (%v,%q)", p.Kind, p.Text, n.Kind, n.Text)
	}
	if next := lx.Next(); next.Text != "b" {
		t.Fatalf("expected second token b, got %q", next.Text)
	}
}
