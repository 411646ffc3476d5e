package lexer

import (
	"hslight/internal/diag"
	"hslight/internal/token"
)

// reservedSyms maps exact operator runs onto their reserved kinds. Anything
// else shaped like an operator is a varsym (or consym when it starts with ':').
var reservedSyms = map[string]token.Kind{
	"..": token.DotDot,
	":":  token.Colon,
	"::": token.DColon,
	"=":  token.Equal,
	"\\": token.Lambda,
	"|":  token.Bar,
	"<-": token.LeftArrow,
	"->": token.RightArrow,
	"@":  token.At,
	"~":  token.Tilde,
	"=>": token.DArrow,
	"-":  token.Minus,
	".":  token.Dot,
}

// scanOperatorOrPunct scans everything that starts with punctuation: fixed
// bracket tokens, Template Haskell quotes, splice dollars, and maximal
// operator runs.
func (lx *Lexer) scanOperatorOrPunct() token.Token {
	start := lx.cursor.Mark()

	switch b := lx.cursor.Peek(); b {
	case '(':
		if lx.try2('(', '#') {
			return lx.mk(token.UnboxedLParen, start)
		}
		lx.cursor.Bump()
		return lx.mk(token.LParen, start)

	case ')':
		lx.cursor.Bump()
		return lx.mk(token.RParen, start)

	case '[':
		return lx.scanBracketOrQuote()

	case ']':
		lx.cursor.Bump()
		return lx.mk(token.RBracket, start)

	case '{':
		lx.cursor.Bump()
		return lx.mk(token.LBrace, start)

	case '}':
		lx.cursor.Bump()
		return lx.mk(token.RBrace, start)

	case ';':
		lx.cursor.Bump()
		return lx.mk(token.Semi, start)

	case ',':
		lx.cursor.Bump()
		return lx.mk(token.Comma, start)

	case '`':
		lx.cursor.Bump()
		return lx.mk(token.Backquote, start)

	case '|':
		if lx.try2('|', ']') {
			return lx.mk(token.CloseQuote, start)
		}

	case '#':
		if lx.try2('#', ')') {
			return lx.mk(token.UnboxedRParen, start)
		}

	case '$':
		// A dollar glued to a splice body is a splice; '$ ' is an operator.
		if tok, ok := lx.tryScanSplice(start); ok {
			return tok
		}
	}

	sym := lx.bumpSymbolRun()
	if sym == "" {
		// Not an operator character at all.
		lx.bumpRune()
		sp := lx.cursor.SpanFrom(start)
		lx.errLex(diag.LexUnknownChar, sp, "character cannot start a token")
		return token.Token{Kind: token.Invalid, Span: sp, Text: lx.text(sp)}
	}

	if k, ok := reservedSyms[sym]; ok {
		return lx.mk(k, start)
	}
	if sym[0] == ':' {
		return lx.mk(token.ConSym, start)
	}
	return lx.mk(token.VarSym, start)
}

// scanBracketOrQuote distinguishes '[' from Template Haskell quotation
// openers: [| [e| [p| [d| [t| and quasi-quotes [name| ... |].
func (lx *Lexer) scanBracketOrQuote() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // '['

	if lx.cursor.Peek() == '|' {
		lx.cursor.Bump()
		return lx.mk(token.OpenExpQuote, start)
	}

	// One-letter quote heads.
	if b0, b1, ok := lx.cursor.Peek2(); ok && b1 == '|' {
		switch b0 {
		case 'e':
			lx.cursor.Bump()
			lx.cursor.Bump()
			return lx.mk(token.OpenExpQuote, start)
		case 'p':
			lx.cursor.Bump()
			lx.cursor.Bump()
			return lx.mk(token.OpenPatQuote, start)
		case 'd':
			lx.cursor.Bump()
			lx.cursor.Bump()
			return lx.mk(token.OpenDecQuote, start)
		case 't':
			lx.cursor.Bump()
			lx.cursor.Bump()
			return lx.mk(token.OpenTypQuote, start)
		}
	}

	// Quasi-quote: [varid| raw text |]. The whole form is one token.
	if isVarStartByte(lx.cursor.Peek()) && lx.cursor.Peek() != '_' {
		mark := lx.cursor.Mark()
		lx.bumpIdent()
		if lx.cursor.Eat('|') {
			return lx.scanQuasiQuoteBody(start)
		}
		lx.cursor.Reset(mark)
	}

	return lx.mk(token.LBracket, start)
}

// scanQuasiQuoteBody consumes raw quasi-quote text up to and including '|]'.
func (lx *Lexer) scanQuasiQuoteBody(start Mark) token.Token {
	for !lx.cursor.EOF() {
		if lx.try2('|', ']') {
			return lx.mk(token.QuasiQuote, start)
		}
		lx.cursor.Bump()
	}
	sp := lx.cursor.SpanFrom(start)
	lx.errLex(diag.LexUnterminatedQuasiQuote, sp, "unterminated quasi-quotation")
	return token.Token{Kind: token.Invalid, Span: sp, Text: lx.text(sp)}
}

// tryScanSplice recognizes '$(' / '$x' as an expression splice and
// '$$(' / '$$x' as a typed splice. '$' followed by anything else stays an
// ordinary operator run.
func (lx *Lexer) tryScanSplice(start Mark) (token.Token, bool) {
	dollars := uint32(1)
	if lx.cursor.PeekAt(1) == '$' {
		dollars = 2
	}
	next := lx.cursor.PeekAt(dollars)
	if next != '(' && !isVarStartByte(next) {
		return token.Token{}, false
	}

	lx.cursor.Bump()
	kind := token.Dollar
	if dollars == 2 {
		lx.cursor.Bump()
		kind = token.DollarDollar
	}
	return lx.mk(kind, start), true
}

func (lx *Lexer) mk(kind token.Kind, start Mark) token.Token {
	sp := lx.cursor.SpanFrom(start)
	return token.Token{Kind: kind, Span: sp, Text: lx.text(sp)}
}
