package token

import (
	"testing"
)

func TestLookupKeyword_Positive(t *testing.T) {
	cases := map[string]Kind{
		"case":       KwCase,
		"where":      KwWhere,
		"module":     KwModule,
		"newtype":    KwNewtype,
		"forall":     KwForall,
		"mdo":        KwMdo,
		"proc":       KwProc,
		"rec":        KwRec,
		"pattern":    KwPattern,
		"role":       KwRole,
		"via":        KwVia,
		"dependency": KwDependency,
	}

	for lexeme, want := range cases {
		got, ok := LookupKeyword(lexeme)
		if !ok {
			t.Fatalf("LookupKeyword(%q) = !ok, want %v", lexeme, want)
		}
		if got != want {
			t.Fatalf("LookupKeyword(%q) = %v, want %v", lexeme, got, want)
		}
	}
}

func TestLookupKeyword_Negative(t *testing.T) {
	notKw := []string{
		"Case", "WHERE", "Module", // case matters
		"maybe", "otherwise", "main", // ordinary varids
		"return", "pure", // functions, not reserved words
	}
	for _, s := range notKw {
		if _, ok := LookupKeyword(s); ok {
			t.Fatalf("LookupKeyword(%q) returned ok=true, want false", s)
		}
	}
}

func TestLookupPragma(t *testing.T) {
	cases := map[string]Kind{
		"LANGUAGE":        PragmaLanguage,
		"OPTIONS_GHC":     PragmaOptionsGhc,
		"OPTIONS_HADDOCK": DocOptions,
		"INLINE":          PragmaInline,
		"NOINLINE":        PragmaInline,
		"SPECIALISE":      PragmaSpecialise,
		"SPECIALIZE":      PragmaSpecialise,
		"RULES":           PragmaRules,
		"UNPACK":          PragmaUnpack,
		"SOURCE":          PragmaSource,
		"COMPLETE":        PragmaComplete,
		"SCC":             PragmaGeneric,
		"whatever":        PragmaGeneric,
	}
	for word, want := range cases {
		if got := LookupPragma(word); got != want {
			t.Fatalf("LookupPragma(%q) = %v, want %v", word, got, want)
		}
	}
}
