package lexer

import (
	"hslight/internal/diag"
	"hslight/internal/token"
)

// scanString scans a string literal. Escapes are consumed but not decoded
// (output slices must reproduce the source byte-for-byte), string gaps
// (backslash, whitespace, backslash) may span lines. A trailing '#' makes
// the literal primitive (MagicHash).
func (lx *Lexer) scanString() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // opening '"'
	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()

		if b == '"' {
			lx.cursor.Bump()
			kind := token.StringLit
			if lx.cursor.Eat('#') {
				kind = token.PrimStringLit
			}
			sp := lx.cursor.SpanFrom(start)
			return token.Token{Kind: kind, Span: sp, Text: lx.text(sp)}
		}

		if b == '\\' {
			lx.cursor.Bump()
			if lx.cursor.EOF() {
				break
			}
			if isSpaceByte(lx.cursor.Peek()) {
				// String gap: whitespace between two backslashes, newlines
				// included. The closing backslash is required.
				for !lx.cursor.EOF() && isSpaceByte(lx.cursor.Peek()) {
					lx.cursor.Bump()
				}
				if !lx.cursor.Eat('\\') {
					sp := lx.cursor.SpanFrom(start)
					lx.errLex(diag.LexBadEscape, sp, "string gap must end with a backslash")
					return token.Token{Kind: token.Invalid, Span: sp, Text: lx.text(sp)}
				}
				continue
			}
			// Ordinary escape: consume the escape head; numeric and
			// mnemonic escapes continue with alphanumerics.
			lx.cursor.Bump()
			for isIdentContinueByte(lx.cursor.Peek()) && lx.cursor.Peek() != '\'' {
				lx.cursor.Bump()
			}
			continue
		}

		if b == '\n' {
			// Unescaped newline never belongs to a string literal.
			sp := lx.cursor.SpanFrom(start)
			lx.errLex(diag.LexUnterminatedString, sp, "newline in string literal")
			return token.Token{Kind: token.Invalid, Span: sp, Text: lx.text(sp)}
		}

		lx.cursor.Bump()
	}

	sp := lx.cursor.SpanFrom(start)
	lx.errLex(diag.LexUnterminatedString, sp, "unterminated string literal")
	return token.Token{Kind: token.Invalid, Span: sp, Text: lx.text(sp)}
}

// scanCharOrQuote decides between a character literal ('a', '\n', '\x41'#)
// and a lone promotion/name quote ('True). The attempt is made with
// a mark so a failed character parse falls back cleanly.
func (lx *Lexer) scanCharOrQuote() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // opening '\''

	if tok, ok := lx.tryFinishCharLit(start); ok {
		return tok
	}

	// Not a character literal: a DataKinds promotion or TH name quote.
	lx.cursor.Reset(start)
	lx.cursor.Bump()
	sp := lx.cursor.SpanFrom(start)
	return token.Token{Kind: token.SimpleQuote, Span: sp, Text: lx.text(sp)}
}

func (lx *Lexer) tryFinishCharLit(start Mark) (token.Token, bool) {
	switch b := lx.cursor.Peek(); {
	case lx.cursor.EOF() || b == '\n':
		return token.Token{}, false

	case b == '\\':
		lx.cursor.Bump()
		if lx.cursor.EOF() {
			sp := lx.cursor.SpanFrom(start)
			lx.errLex(diag.LexUnterminatedChar, sp, "unterminated character literal")
			return token.Token{Kind: token.Invalid, Span: sp, Text: lx.text(sp)}, true
		}
		lx.cursor.Bump() // escape head
		for isIdentContinueByte(lx.cursor.Peek()) && lx.cursor.Peek() != '\'' {
			lx.cursor.Bump()
		}

	case b == '\'':
		// '' is never a character literal.
		return token.Token{}, false

	default:
		if b < utf8RuneSelf {
			lx.cursor.Bump()
		} else {
			lx.bumpRune()
		}
	}

	if !lx.cursor.Eat('\'') {
		return token.Token{}, false
	}

	kind := token.CharLit
	if lx.cursor.Eat('#') {
		kind = token.PrimCharLit
	}
	sp := lx.cursor.SpanFrom(start)
	return token.Token{Kind: kind, Span: sp, Text: lx.text(sp)}, true
}
