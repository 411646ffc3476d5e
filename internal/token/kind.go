package token

// Kind identifies the lexical class of a source token.
type Kind uint8

const (
	// Invalid indicates an erroneous token.
	Invalid Kind = iota
	// EOF marks the end of the source input.
	EOF

	// VarId represents a lowercase-led identifier (foo, foo', _go).
	VarId
	// QVarId represents a qualified lowercase identifier (Data.List.map).
	QVarId
	// ConId represents an uppercase-led identifier (Maybe).
	ConId
	// QConId represents a qualified uppercase identifier (Data.Maybe.Just).
	QConId
	// VarSym represents a symbolic identifier (<$>, >>=).
	VarSym
	// QVarSym represents a qualified symbolic identifier (M.<$>).
	QVarSym
	// ConSym represents a constructor operator (:+:).
	ConSym
	// QConSym represents a qualified constructor operator (M.:+:).
	QConSym
	// LabelId represents an overloaded label (#label).
	LabelId
	// ImplicitId represents an implicit parameter (?param).
	ImplicitId

	// KwCase represents the 'case' keyword.
	KwCase // case
	// KwClass represents the 'class' keyword.
	KwClass // class
	// KwData represents the 'data' keyword.
	KwData // data
	// KwDefault represents the 'default' keyword.
	KwDefault // default
	// KwDeriving represents the 'deriving' keyword.
	KwDeriving // deriving
	// KwDo represents the 'do' keyword.
	KwDo // do
	// KwElse represents the 'else' keyword.
	KwElse // else
	// KwForeign represents the 'foreign' keyword.
	KwForeign // foreign
	// KwIf represents the 'if' keyword.
	KwIf // if
	// KwImport represents the 'import' keyword.
	KwImport // import
	// KwIn represents the 'in' keyword.
	KwIn // in
	// KwInfix represents the 'infix' keyword.
	KwInfix // infix
	// KwInfixl represents the 'infixl' keyword.
	KwInfixl // infixl
	// KwInfixr represents the 'infixr' keyword.
	KwInfixr // infixr
	// KwInstance represents the 'instance' keyword.
	KwInstance // instance
	// KwLet represents the 'let' keyword.
	KwLet // let
	// KwModule represents the 'module' keyword.
	KwModule // module
	// KwNewtype represents the 'newtype' keyword.
	KwNewtype // newtype
	// KwOf represents the 'of' keyword.
	KwOf // of
	// KwThen represents the 'then' keyword.
	KwThen // then
	// KwType represents the 'type' keyword.
	KwType // type
	// KwWhere represents the 'where' keyword.
	KwWhere // where
	// KwForall represents the 'forall' keyword (ExplicitForAll).
	KwForall // forall
	// KwMdo represents the 'mdo' keyword (RecursiveDo).
	KwMdo // mdo
	// KwFamily represents the 'family' keyword (TypeFamilies).
	KwFamily // family
	// KwRole represents the 'role' keyword (RoleAnnotations).
	KwRole // role
	// KwPattern represents the 'pattern' keyword (PatternSynonyms).
	KwPattern // pattern
	// KwStatic represents the 'static' keyword (StaticPointers).
	KwStatic // static
	// KwStock represents the 'stock' keyword (DerivingStrategies).
	KwStock // stock
	// KwAnyclass represents the 'anyclass' keyword (DeriveAnyClass).
	KwAnyclass // anyclass
	// KwVia represents the 'via' keyword (DerivingVia).
	KwVia // via
	// KwGroup represents the 'group' keyword (TransformListComp).
	KwGroup // group
	// KwBy represents the 'by' keyword (TransformListComp).
	KwBy // by
	// KwUsing represents the 'using' keyword (TransformListComp).
	KwUsing // using
	// KwProc represents the 'proc' keyword (Arrows).
	KwProc // proc
	// KwRec represents the 'rec' keyword (Arrows, RecursiveDo).
	KwRec // rec
	// KwUnit represents the 'unit' keyword (Backpack).
	KwUnit // unit
	// KwSignature represents the 'signature' keyword (Backpack).
	KwSignature // signature
	// KwDependency represents the 'dependency' keyword (Backpack).
	KwDependency // dependency
	// KwUnderscore represents the reserved '_' wildcard.
	KwUnderscore // _

	// DotDot represents the '..' reserved symbol.
	DotDot // ..
	// Colon represents the ':' reserved symbol.
	Colon // :
	// DColon represents the '::' reserved symbol.
	DColon // ::
	// Equal represents the '=' reserved symbol.
	Equal // =
	// Lambda represents the '\' reserved symbol.
	Lambda // \
	// Bar represents the '|' guard bar.
	Bar // |
	// LeftArrow represents the '<-' reserved symbol.
	LeftArrow // <-
	// RightArrow represents the '->' reserved symbol.
	RightArrow // ->
	// At represents the '@' as-pattern / type-application marker.
	At // @
	// Tilde represents the '~' lazy-pattern marker.
	Tilde // ~
	// DArrow represents the '=>' context arrow.
	DArrow // =>
	// Minus represents '-' lexed as a reserved symbol.
	Minus // -
	// Dot represents '.' lexed as a reserved symbol (forall dot).
	Dot // .
	// Semi represents the ';' separator.
	Semi // ;
	// Comma represents the ',' separator.
	Comma // ,
	// Backquote represents the '`' infix quote.
	Backquote // `
	// LParen represents '('.
	LParen // (
	// RParen represents ')'.
	RParen // )
	// LBracket represents '['.
	LBracket // [
	// RBracket represents ']'.
	RBracket // ]
	// LBrace represents '{'.
	LBrace // {
	// RBrace represents '}'.
	RBrace // }
	// UnboxedLParen represents '(#' (UnboxedTuples).
	UnboxedLParen // (#
	// UnboxedRParen represents '#)' (UnboxedTuples).
	UnboxedRParen // #)
	// SimpleQuote represents a promotion/name quote "'" (DataKinds, TH).
	SimpleQuote // '

	// CharLit represents a character literal.
	CharLit // 'a'
	// StringLit represents a string literal.
	StringLit // "..."
	// IntLit represents an integer literal.
	IntLit // 42, 0x2A, 0o52, 0b101010
	// RationalLit represents a fractional literal.
	RationalLit // 3.14, 6.02e23
	// PrimCharLit represents an unboxed character literal (MagicHash).
	PrimCharLit // 'a'#
	// PrimStringLit represents an unboxed string literal (MagicHash).
	PrimStringLit // "..."#
	// PrimIntLit represents an unboxed integer literal (MagicHash).
	PrimIntLit // 3#
	// PrimWordLit represents an unboxed word literal (MagicHash).
	PrimWordLit // 3##
	// PrimFloatLit represents an unboxed float literal (MagicHash).
	PrimFloatLit // 3.0#
	// PrimDoubleLit represents an unboxed double literal (MagicHash).
	PrimDoubleLit // 3.0##

	// LineComment represents an ordinary '--' comment.
	LineComment
	// BlockComment represents a '{- -}' comment, nesting included.
	BlockComment
	// DocCommentNext documents the next declaration ('-- |').
	DocCommentNext
	// DocCommentPrev documents the previous declaration ('-- ^').
	DocCommentPrev
	// DocCommentNamed is a named documentation chunk ('-- $name').
	DocCommentNamed
	// DocSection is a documentation section heading ('-- *').
	DocSection
	// DocOptions carries haddock options ({-# OPTIONS_HADDOCK ... #-}).
	DocOptions

	// PragmaLanguage represents a {-# LANGUAGE ... #-} pragma.
	PragmaLanguage
	// PragmaOptionsGhc represents a {-# OPTIONS_GHC ... #-} pragma.
	PragmaOptionsGhc
	// PragmaInline represents INLINE/NOINLINE/INLINABLE pragmas.
	PragmaInline
	// PragmaSpecialise represents SPECIALISE/SPECIALIZE pragmas.
	PragmaSpecialise
	// PragmaRules represents a {-# RULES ... #-} pragma.
	PragmaRules
	// PragmaDeprecated represents a {-# DEPRECATED ... #-} pragma.
	PragmaDeprecated
	// PragmaWarning represents a {-# WARNING ... #-} pragma.
	PragmaWarning
	// PragmaUnpack represents a {-# UNPACK #-} pragma.
	PragmaUnpack
	// PragmaSource represents a {-# SOURCE #-} pragma.
	PragmaSource
	// PragmaComplete represents a {-# COMPLETE ... #-} pragma.
	PragmaComplete
	// PragmaGeneric represents any other {-# ... #-} pragma.
	PragmaGeneric

	// OpenExpQuote represents '[|' or '[e|' (TemplateHaskell).
	OpenExpQuote // [|
	// OpenPatQuote represents '[p|' (TemplateHaskell).
	OpenPatQuote // [p|
	// OpenDecQuote represents '[d|' (TemplateHaskell).
	OpenDecQuote // [d|
	// OpenTypQuote represents '[t|' (TemplateHaskell).
	OpenTypQuote // [t|
	// CloseQuote represents '|]' (TemplateHaskell).
	CloseQuote // |]
	// QuasiQuote represents a whole [name| ... |] quasi-quotation.
	QuasiQuote
	// Dollar represents a '$' splice prefix (TemplateHaskell).
	Dollar // $
	// DollarDollar represents a '$$' typed splice prefix.
	DollarDollar // $$

	// VLBrace is a layout-synthesized open brace; it has no real source
	// location and never reaches highlighted output.
	VLBrace
	// VRBrace is a layout-synthesized close brace.
	VRBrace
	// VSemi is a layout-synthesized semicolon.
	VSemi

	kindCount // sentinel, keep last
)

// KindCount is the number of defined token kinds, the sentinel excluded.
const KindCount = int(kindCount)

var kindNames = [...]string{
	Invalid:          "Invalid",
	EOF:              "EOF",
	VarId:            "VarId",
	QVarId:           "QVarId",
	ConId:            "ConId",
	QConId:           "QConId",
	VarSym:           "VarSym",
	QVarSym:          "QVarSym",
	ConSym:           "ConSym",
	QConSym:          "QConSym",
	LabelId:          "LabelId",
	ImplicitId:       "ImplicitId",
	KwCase:           "KwCase",
	KwClass:          "KwClass",
	KwData:           "KwData",
	KwDefault:        "KwDefault",
	KwDeriving:       "KwDeriving",
	KwDo:             "KwDo",
	KwElse:           "KwElse",
	KwForeign:        "KwForeign",
	KwIf:             "KwIf",
	KwImport:         "KwImport",
	KwIn:             "KwIn",
	KwInfix:          "KwInfix",
	KwInfixl:         "KwInfixl",
	KwInfixr:         "KwInfixr",
	KwInstance:       "KwInstance",
	KwLet:            "KwLet",
	KwModule:         "KwModule",
	KwNewtype:        "KwNewtype",
	KwOf:             "KwOf",
	KwThen:           "KwThen",
	KwType:           "KwType",
	KwWhere:          "KwWhere",
	KwForall:         "KwForall",
	KwMdo:            "KwMdo",
	KwFamily:         "KwFamily",
	KwRole:           "KwRole",
	KwPattern:        "KwPattern",
	KwStatic:         "KwStatic",
	KwStock:          "KwStock",
	KwAnyclass:       "KwAnyclass",
	KwVia:            "KwVia",
	KwGroup:          "KwGroup",
	KwBy:             "KwBy",
	KwUsing:          "KwUsing",
	KwProc:           "KwProc",
	KwRec:            "KwRec",
	KwUnit:           "KwUnit",
	KwSignature:      "KwSignature",
	KwDependency:     "KwDependency",
	KwUnderscore:     "KwUnderscore",
	DotDot:           "DotDot",
	Colon:            "Colon",
	DColon:           "DColon",
	Equal:            "Equal",
	Lambda:           "Lambda",
	Bar:              "Bar",
	LeftArrow:        "LeftArrow",
	RightArrow:       "RightArrow",
	At:               "At",
	Tilde:            "Tilde",
	DArrow:           "DArrow",
	Minus:            "Minus",
	Dot:              "Dot",
	Semi:             "Semi",
	Comma:            "Comma",
	Backquote:        "Backquote",
	LParen:           "LParen",
	RParen:           "RParen",
	LBracket:         "LBracket",
	RBracket:         "RBracket",
	LBrace:           "LBrace",
	RBrace:           "RBrace",
	UnboxedLParen:    "UnboxedLParen",
	UnboxedRParen:    "UnboxedRParen",
	SimpleQuote:      "SimpleQuote",
	CharLit:          "CharLit",
	StringLit:        "StringLit",
	IntLit:           "IntLit",
	RationalLit:      "RationalLit",
	PrimCharLit:      "PrimCharLit",
	PrimStringLit:    "PrimStringLit",
	PrimIntLit:       "PrimIntLit",
	PrimWordLit:      "PrimWordLit",
	PrimFloatLit:     "PrimFloatLit",
	PrimDoubleLit:    "PrimDoubleLit",
	LineComment:      "LineComment",
	BlockComment:     "BlockComment",
	DocCommentNext:   "DocCommentNext",
	DocCommentPrev:   "DocCommentPrev",
	DocCommentNamed:  "DocCommentNamed",
	DocSection:       "DocSection",
	DocOptions:       "DocOptions",
	PragmaLanguage:   "PragmaLanguage",
	PragmaOptionsGhc: "PragmaOptionsGhc",
	PragmaInline:     "PragmaInline",
	PragmaSpecialise: "PragmaSpecialise",
	PragmaRules:      "PragmaRules",
	PragmaDeprecated: "PragmaDeprecated",
	PragmaWarning:    "PragmaWarning",
	PragmaUnpack:     "PragmaUnpack",
	PragmaSource:     "PragmaSource",
	PragmaComplete:   "PragmaComplete",
	PragmaGeneric:    "PragmaGeneric",
	OpenExpQuote:     "OpenExpQuote",
	OpenPatQuote:     "OpenPatQuote",
	OpenDecQuote:     "OpenDecQuote",
	OpenTypQuote:     "OpenTypQuote",
	CloseQuote:       "CloseQuote",
	QuasiQuote:       "QuasiQuote",
	Dollar:           "Dollar",
	DollarDollar:     "DollarDollar",
	VLBrace:          "VLBrace",
	VRBrace:          "VRBrace",
	VSemi:            "VSemi",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) && kindNames[k] != "" {
		return kindNames[k]
	}
	return "Kind(?)"
}
