package token

import (
	"hslight/internal/source"
)

// Token represents a single source token with its location.
type Token struct {
	Kind Kind
	Span source.Span
	Text string
	// Virtual marks layout-synthesized tokens (VLBrace, VRBrace, VSemi)
	// that have no real source location. Their Span is empty and Text "".
	Virtual bool
}

// IsLiteral reports whether the token is a character, string, or numeric
// literal, primitive variants included.
func (t Token) IsLiteral() bool {
	switch t.Kind {
	case CharLit, StringLit, IntLit, RationalLit,
		PrimCharLit, PrimStringLit, PrimIntLit, PrimWordLit,
		PrimFloatLit, PrimDoubleLit:
		return true
	default:
		return false
	}
}

// IsKeyword reports whether the token is a reserved word.
func (t Token) IsKeyword() bool {
	switch t.Kind {
	case KwCase, KwClass, KwData, KwDefault, KwDeriving, KwDo, KwElse,
		KwForeign, KwIf, KwImport, KwIn, KwInfix, KwInfixl, KwInfixr,
		KwInstance, KwLet, KwModule, KwNewtype, KwOf, KwThen, KwType,
		KwWhere, KwForall, KwMdo, KwFamily, KwRole, KwPattern, KwStatic,
		KwStock, KwAnyclass, KwVia, KwGroup, KwBy, KwUsing, KwProc, KwRec,
		KwUnit, KwSignature, KwDependency, KwUnderscore:
		return true
	default:
		return false
	}
}

// IsReservedSym reports whether the token is fixed reserved punctuation.
func (t Token) IsReservedSym() bool {
	switch t.Kind {
	case DotDot, Colon, DColon, Equal, Lambda, Bar, LeftArrow, RightArrow,
		At, Tilde, DArrow, Minus, Dot, Semi, Comma, Backquote,
		LParen, RParen, LBracket, RBracket, LBrace, RBrace,
		UnboxedLParen, UnboxedRParen, SimpleQuote:
		return true
	default:
		return false
	}
}

// IsComment reports whether the token is a comment or documentation form.
func (t Token) IsComment() bool {
	switch t.Kind {
	case LineComment, BlockComment, DocCommentNext, DocCommentPrev,
		DocCommentNamed, DocSection, DocOptions:
		return true
	default:
		return false
	}
}

// IsPragma reports whether the token is a pragma bracket.
func (t Token) IsPragma() bool {
	switch t.Kind {
	case PragmaLanguage, PragmaOptionsGhc, PragmaInline, PragmaSpecialise,
		PragmaRules, PragmaDeprecated, PragmaWarning, PragmaUnpack,
		PragmaSource, PragmaComplete, PragmaGeneric:
		return true
	default:
		return false
	}
}

// IsIdent reports whether the token is an identifier of any shape.
func (t Token) IsIdent() bool {
	switch t.Kind {
	case VarId, QVarId, ConId, QConId, VarSym, QVarSym, ConSym, QConSym,
		LabelId, ImplicitId:
		return true
	default:
		return false
	}
}
