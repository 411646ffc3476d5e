package highlight

import "hslight/internal/token"

// categoryOf maps every token kind to its presentation category. The two
// reserved glyphs '-' and '.' classify as Operator rather than Symbol so
// that renderers paint them the same as any other operator.
//
// TestClassifyTotal checks that no kind is left at catUnset.
var categoryOf = [token.KindCount]Category{
	token.Invalid: Other,
	token.EOF:     Other,

	token.VarId:      Variable,
	token.QVarId:     Variable,
	token.LabelId:    Variable,
	token.ImplicitId: Variable,

	token.ConId:  Constructor,
	token.QConId: Constructor,

	token.VarSym:  Operator,
	token.QVarSym: Operator,
	token.ConSym:  Operator,
	token.QConSym: Operator,

	token.KwCase:       Keyword,
	token.KwClass:      Keyword,
	token.KwData:       Keyword,
	token.KwDefault:    Keyword,
	token.KwDeriving:   Keyword,
	token.KwDo:         Keyword,
	token.KwElse:       Keyword,
	token.KwForeign:    Keyword,
	token.KwIf:         Keyword,
	token.KwImport:     Keyword,
	token.KwIn:         Keyword,
	token.KwInfix:      Keyword,
	token.KwInfixl:     Keyword,
	token.KwInfixr:     Keyword,
	token.KwInstance:   Keyword,
	token.KwLet:        Keyword,
	token.KwModule:     Keyword,
	token.KwNewtype:    Keyword,
	token.KwOf:         Keyword,
	token.KwThen:       Keyword,
	token.KwType:       Keyword,
	token.KwWhere:      Keyword,
	token.KwForall:     Keyword,
	token.KwMdo:        Keyword,
	token.KwFamily:     Keyword,
	token.KwRole:       Keyword,
	token.KwPattern:    Keyword,
	token.KwStatic:     Keyword,
	token.KwStock:      Keyword,
	token.KwAnyclass:   Keyword,
	token.KwVia:        Keyword,
	token.KwGroup:      Keyword,
	token.KwBy:         Keyword,
	token.KwUsing:      Keyword,
	token.KwProc:       Keyword,
	token.KwRec:        Keyword,
	token.KwUnit:       Keyword,
	token.KwSignature:  Keyword,
	token.KwDependency: Keyword,
	token.KwUnderscore: Keyword,

	token.DotDot:        Symbol,
	token.Colon:         Symbol,
	token.DColon:        Symbol,
	token.Equal:         Symbol,
	token.Lambda:        Symbol,
	token.Bar:           Symbol,
	token.LeftArrow:     Symbol,
	token.RightArrow:    Symbol,
	token.At:            Symbol,
	token.Tilde:         Symbol,
	token.DArrow:        Symbol,
	token.Minus:         Operator,
	token.Dot:           Operator,
	token.Semi:          Symbol,
	token.Comma:         Symbol,
	token.Backquote:     Symbol,
	token.LParen:        Symbol,
	token.RParen:        Symbol,
	token.LBracket:      Symbol,
	token.RBracket:      Symbol,
	token.LBrace:        Symbol,
	token.RBrace:        Symbol,
	token.UnboxedLParen: Symbol,
	token.UnboxedRParen: Symbol,
	token.SimpleQuote:   Symbol,

	token.CharLit:       Char,
	token.PrimCharLit:   Char,
	token.StringLit:     String,
	token.PrimStringLit: String,
	token.IntLit:        Integer,
	token.PrimIntLit:    Integer,
	token.PrimWordLit:   Integer,
	token.RationalLit:   Rational,
	token.PrimFloatLit:  Rational,
	token.PrimDoubleLit: Rational,

	token.LineComment:     Comment,
	token.BlockComment:    Comment,
	token.DocCommentNext:  Comment,
	token.DocCommentPrev:  Comment,
	token.DocCommentNamed: Comment,
	token.DocSection:      Comment,
	token.DocOptions:      Comment,

	token.PragmaLanguage:   Pragma,
	token.PragmaOptionsGhc: Pragma,
	token.PragmaInline:     Pragma,
	token.PragmaSpecialise: Pragma,
	token.PragmaRules:      Pragma,
	token.PragmaDeprecated: Pragma,
	token.PragmaWarning:    Pragma,
	token.PragmaUnpack:     Pragma,
	token.PragmaSource:     Pragma,
	token.PragmaComplete:   Pragma,
	token.PragmaGeneric:    Pragma,

	token.OpenExpQuote: Symbol,
	token.OpenPatQuote: Symbol,
	token.OpenDecQuote: Symbol,
	token.OpenTypQuote: Symbol,
	token.CloseQuote:   Symbol,
	token.QuasiQuote:   Symbol,
	token.Dollar:       Symbol,
	token.DollarDollar: Symbol,

	token.VLBrace: Symbol,
	token.VRBrace: Symbol,
	token.VSemi:   Symbol,
}

// Classify returns the presentation category of a token kind. It is total:
// every kind, unknown values included, maps to some category.
func Classify(k token.Kind) Category {
	if int(k) >= len(categoryOf) {
		return Other
	}
	if c := categoryOf[k]; c.Valid() {
		return c
	}
	return Other
}
