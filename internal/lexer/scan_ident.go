package lexer

import (
	"hslight/internal/token"
)

// scanVarId scans a lowercase-led identifier and checks LookupKeyword.
// Keywords are case-sensitive. Token.Text is exactly the source slice.
func (lx *Lexer) scanVarId() token.Token {
	start := lx.cursor.Mark()
	lx.bumpIdent()

	sp := lx.cursor.SpanFrom(start)
	text := lx.text(sp)

	if k, ok := token.LookupKeyword(text); ok {
		return token.Token{Kind: k, Span: sp, Text: text}
	}
	return token.Token{Kind: token.VarId, Span: sp, Text: text}
}

// scanConIdOrQualified scans an uppercase-led identifier and follows
// qualification chains: A.B.c, A.B.C, A.B.+, A.B.:+:. The final segment
// decides the kind. A trailing '.' that cannot start a segment is left for
// the operator scanner, so "Prelude." lexes as ConId then Dot.
func (lx *Lexer) scanConIdOrQualified() token.Token {
	start := lx.cursor.Mark()
	lx.bumpIdent()

	qualified := false
	kind := token.ConId

	for lx.cursor.Peek() == '.' {
		sepMark := lx.cursor.Mark()
		lx.cursor.Bump() // '.'

		switch b := lx.cursor.Peek(); {
		case isConStartByte(b) || (b >= utf8RuneSelf && lx.peekIsConStart()):
			lx.bumpIdent()
			qualified = true
			kind = token.ConId
			continue

		case isVarStartByte(b) || (b >= utf8RuneSelf && lx.peekIsVarStart()):
			// Keywords do not survive qualification: "Data.case" lexes the
			// final segment as a plain varid.
			lx.bumpIdent()
			qualified = true
			kind = token.VarId

		case b == ':' || isSymbolByte(b) && b != '.':
			sym := lx.bumpSymbolRun()
			qualified = true
			if sym[0] == ':' {
				kind = token.ConSym
			} else {
				kind = token.VarSym
			}

		default:
			// The dot was not a qualifier; rewind it.
			lx.cursor.Reset(sepMark)
		}
		break
	}

	sp := lx.cursor.SpanFrom(start)
	text := lx.text(sp)

	if qualified {
		switch kind {
		case token.ConId:
			kind = token.QConId
		case token.VarId:
			kind = token.QVarId
		case token.VarSym:
			kind = token.QVarSym
		case token.ConSym:
			kind = token.QConSym
		}
	}
	return token.Token{Kind: kind, Span: sp, Text: text}
}

// scanLabel scans an overloaded label: '#' followed by a varid.
func (lx *Lexer) scanLabel() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // '#'
	lx.bumpIdent()
	sp := lx.cursor.SpanFrom(start)
	return token.Token{Kind: token.LabelId, Span: sp, Text: lx.text(sp)}
}

// scanImplicit scans an implicit parameter: '?' followed by a varid.
func (lx *Lexer) scanImplicit() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // '?'
	lx.bumpIdent()
	sp := lx.cursor.SpanFrom(start)
	return token.Token{Kind: token.ImplicitId, Span: sp, Text: lx.text(sp)}
}

// bumpIdent consumes one identifier segment: a leading letter or underscore
// and then letters, digits, underscores, and primes.
func (lx *Lexer) bumpIdent() {
	if b := lx.cursor.Peek(); b < utf8RuneSelf {
		lx.cursor.Bump()
	} else {
		lx.bumpRune()
	}
	for {
		b := lx.cursor.Peek()
		if b < utf8RuneSelf {
			if !isIdentContinueByte(b) || lx.cursor.EOF() {
				return
			}
			lx.cursor.Bump()
			continue
		}
		r, sz := lx.peekRune()
		if sz == 0 || !isIdentContinueRune(r) {
			return
		}
		lx.bumpRune()
	}
}

// bumpSymbolRun consumes a maximal run of operator characters and returns
// its text.
func (lx *Lexer) bumpSymbolRun() string {
	start := lx.cursor.Mark()
	for {
		b := lx.cursor.Peek()
		if b < utf8RuneSelf {
			if lx.cursor.EOF() || !isSymbolByte(b) {
				break
			}
			lx.cursor.Bump()
			continue
		}
		r, sz := lx.peekRune()
		if sz == 0 || !isSymbolRune(r) {
			break
		}
		lx.bumpRune()
	}
	return lx.text(lx.cursor.SpanFrom(start))
}

func (lx *Lexer) peekIsVarStart() bool {
	r, sz := lx.peekRune()
	return sz > 0 && isVarStartRune(r)
}

func (lx *Lexer) peekIsConStart() bool {
	r, sz := lx.peekRune()
	return sz > 0 && isConStartRune(r)
}
