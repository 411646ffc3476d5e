package token_test

import (
	"testing"

	"hslight/internal/source"
	"hslight/internal/token"
)

func tok(k token.Kind) token.Token {
	return token.Token{Kind: k, Span: source.Span{Start: 0, End: 0}}
}

// Every defined kind must have a distinct name: the String table doubles as
// an exhaustiveness check, so adding a Kind without naming it fails here.
func TestKindNamesExhaustive(t *testing.T) {
	seen := make(map[string]token.Kind, token.KindCount)
	for i := 0; i < token.KindCount; i++ {
		k := token.Kind(i)
		name := k.String()
		if name == "" || name == "Kind(?)" {
			t.Fatalf("Kind(%d) has no name", i)
		}
		if prev, dup := seen[name]; dup {
			t.Fatalf("Kind(%d) and Kind(%d) share the name %q", i, prev, name)
		}
		seen[name] = k
	}
}

func TestIsLiteral(t *testing.T) {
	lits := []token.Kind{
		token.CharLit, token.StringLit, token.IntLit, token.RationalLit,
		token.PrimCharLit, token.PrimStringLit, token.PrimIntLit,
		token.PrimWordLit, token.PrimFloatLit, token.PrimDoubleLit,
	}
	for _, k := range lits {
		if !tok(k).IsLiteral() {
			t.Fatalf("%v should be literal", k)
		}
	}
	non := []token.Kind{token.VarId, token.KwLet, token.Equal, token.LParen}
	for _, k := range non {
		if tok(k).IsLiteral() {
			t.Fatalf("%v must NOT be literal", k)
		}
	}
}

func TestIsKeyword(t *testing.T) {
	keywords := []token.Kind{
		token.KwCase, token.KwClass, token.KwData, token.KwDefault,
		token.KwDeriving, token.KwDo, token.KwElse, token.KwForeign,
		token.KwIf, token.KwImport, token.KwIn, token.KwInfix,
		token.KwInfixl, token.KwInfixr, token.KwInstance, token.KwLet,
		token.KwModule, token.KwNewtype, token.KwOf, token.KwThen,
		token.KwType, token.KwWhere, token.KwForall, token.KwMdo,
		token.KwFamily, token.KwRole, token.KwPattern, token.KwStatic,
		token.KwStock, token.KwAnyclass, token.KwVia, token.KwGroup,
		token.KwBy, token.KwUsing, token.KwProc, token.KwRec,
		token.KwUnit, token.KwSignature, token.KwDependency,
	}
	for _, k := range keywords {
		if !tok(k).IsKeyword() {
			t.Fatalf("%v should be keyword", k)
		}
	}
	if tok(token.VarId).IsKeyword() {
		t.Fatal("VarId must not be keyword")
	}
}

func TestIsReservedSym(t *testing.T) {
	syms := []token.Kind{
		token.DotDot, token.Colon, token.DColon, token.Equal, token.Lambda,
		token.Bar, token.LeftArrow, token.RightArrow, token.At, token.Tilde,
		token.DArrow, token.Minus, token.Dot, token.Semi, token.Comma,
		token.Backquote, token.LParen, token.RParen, token.LBracket,
		token.RBracket, token.LBrace, token.RBrace, token.UnboxedLParen,
		token.UnboxedRParen, token.SimpleQuote,
	}
	for _, k := range syms {
		if !tok(k).IsReservedSym() {
			t.Fatalf("%v should be reserved punctuation", k)
		}
	}
	if tok(token.VarSym).IsReservedSym() {
		t.Fatal("VarSym is an operator identifier, not reserved punctuation")
	}
}

func TestIsCommentAndPragma(t *testing.T) {
	comments := []token.Kind{
		token.LineComment, token.BlockComment, token.DocCommentNext,
		token.DocCommentPrev, token.DocCommentNamed, token.DocSection,
		token.DocOptions,
	}
	for _, k := range comments {
		if !tok(k).IsComment() {
			t.Fatalf("%v should be comment", k)
		}
		if tok(k).IsPragma() {
			t.Fatalf("%v must NOT be pragma", k)
		}
	}

	pragmas := []token.Kind{
		token.PragmaLanguage, token.PragmaOptionsGhc, token.PragmaInline,
		token.PragmaSpecialise, token.PragmaRules, token.PragmaDeprecated,
		token.PragmaWarning, token.PragmaUnpack, token.PragmaSource,
		token.PragmaComplete, token.PragmaGeneric,
	}
	for _, k := range pragmas {
		if !tok(k).IsPragma() {
			t.Fatalf("%v should be pragma", k)
		}
		if tok(k).IsComment() {
			t.Fatalf("%v must NOT be comment", k)
		}
	}
}

func TestIsIdent(t *testing.T) {
	ids := []token.Kind{
		token.VarId, token.QVarId, token.ConId, token.QConId,
		token.VarSym, token.QVarSym, token.ConSym, token.QConSym,
		token.LabelId, token.ImplicitId,
	}
	for _, k := range ids {
		if !tok(k).IsIdent() {
			t.Fatalf("%v should be ident", k)
		}
	}
	if tok(token.KwWhere).IsIdent() {
		t.Fatal("KwWhere must not be ident")
	}
}
