package token

// Every reserved word the lexer recognizes, extension keywords included.
// The lexer runs permissively (every extension accepted), so extension
// keywords are always reserved here.
var keywords = map[string]Kind{
	"case":       KwCase,
	"class":      KwClass,
	"data":       KwData,
	"default":    KwDefault,
	"deriving":   KwDeriving,
	"do":         KwDo,
	"else":       KwElse,
	"foreign":    KwForeign,
	"if":         KwIf,
	"import":     KwImport,
	"in":         KwIn,
	"infix":      KwInfix,
	"infixl":     KwInfixl,
	"infixr":     KwInfixr,
	"instance":   KwInstance,
	"let":        KwLet,
	"module":     KwModule,
	"newtype":    KwNewtype,
	"of":         KwOf,
	"then":       KwThen,
	"type":       KwType,
	"where":      KwWhere,
	"forall":     KwForall,
	"mdo":        KwMdo,
	"family":     KwFamily,
	"role":       KwRole,
	"pattern":    KwPattern,
	"static":     KwStatic,
	"stock":      KwStock,
	"anyclass":   KwAnyclass,
	"via":        KwVia,
	"group":      KwGroup,
	"by":         KwBy,
	"using":      KwUsing,
	"proc":       KwProc,
	"rec":        KwRec,
	"unit":       KwUnit,
	"signature":  KwSignature,
	"dependency": KwDependency,
}

// LookupKeyword reports whether ident is a reserved word and which one.
// Keywords are case-sensitive; only the lowercase spellings are reserved.
func LookupKeyword(ident string) (Kind, bool) {
	k, ok := keywords[ident]
	return k, ok
}

// pragmaWords maps the first word inside a pragma bracket to its kind.
// Anything unlisted lexes as PragmaGeneric.
var pragmaWords = map[string]Kind{
	"LANGUAGE":        PragmaLanguage,
	"OPTIONS_GHC":     PragmaOptionsGhc,
	"OPTIONS_HADDOCK": DocOptions,
	"INLINE":          PragmaInline,
	"NOINLINE":        PragmaInline,
	"INLINABLE":       PragmaInline,
	"INLINEABLE":      PragmaInline,
	"SPECIALISE":      PragmaSpecialise,
	"SPECIALIZE":      PragmaSpecialise,
	"RULES":           PragmaRules,
	"DEPRECATED":      PragmaDeprecated,
	"WARNING":         PragmaWarning,
	"UNPACK":          PragmaUnpack,
	"SOURCE":          PragmaSource,
	"COMPLETE":        PragmaComplete,
}

// LookupPragma returns the token kind for a pragma whose first word is word.
func LookupPragma(word string) Kind {
	if k, ok := pragmaWords[word]; ok {
		return k
	}
	return PragmaGeneric
}
