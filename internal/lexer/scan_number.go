package lexer

import (
	"hslight/internal/diag"
	"hslight/internal/token"
)

// scanNumber scans integer and fractional literals:
//
//	42  0x2A  0o52  0b101010  1_000_000
//	3.14  6.02e23  1e-9
//
// MagicHash suffixes turn a literal into its primitive counterpart:
// 3# (Int#), 3## (Word#), 3.0# (Float#), 3.0## (Double#).
func (lx *Lexer) scanNumber() token.Token {
	start := lx.cursor.Mark()
	isRational := false

	if lx.cursor.Peek() == '0' {
		switch lx.cursor.PeekAt(1) {
		case 'x', 'X':
			lx.cursor.Bump()
			lx.cursor.Bump()
			if !lx.bumpDigits(isHex) {
				sp := lx.cursor.SpanFrom(start)
				lx.errLex(diag.LexBadNumber, sp, "hexadecimal literal needs digits")
				return token.Token{Kind: token.Invalid, Span: sp, Text: lx.text(sp)}
			}
			return lx.finishInt(start)
		case 'o', 'O':
			lx.cursor.Bump()
			lx.cursor.Bump()
			if !lx.bumpDigits(isOct) {
				sp := lx.cursor.SpanFrom(start)
				lx.errLex(diag.LexBadNumber, sp, "octal literal needs digits")
				return token.Token{Kind: token.Invalid, Span: sp, Text: lx.text(sp)}
			}
			return lx.finishInt(start)
		case 'b', 'B':
			lx.cursor.Bump()
			lx.cursor.Bump()
			if !lx.bumpDigits(isBin) {
				sp := lx.cursor.SpanFrom(start)
				lx.errLex(diag.LexBadNumber, sp, "binary literal needs digits")
				return token.Token{Kind: token.Invalid, Span: sp, Text: lx.text(sp)}
			}
			return lx.finishInt(start)
		}
	}

	lx.bumpDigits(isDec)

	// Fraction: '.' directly followed by a digit. "1..2" keeps the range
	// operator intact, "xs !! 1." keeps the trailing dot an operator.
	if b0, b1, ok := lx.cursor.Peek2(); ok && b0 == '.' && isDec(b1) {
		lx.cursor.Bump() // '.'
		lx.bumpDigits(isDec)
		isRational = true
	}

	// Exponent: e/E with optional sign and mandatory digits.
	if b := lx.cursor.Peek(); b == 'e' || b == 'E' {
		mark := lx.cursor.Mark()
		lx.cursor.Bump()
		if b := lx.cursor.Peek(); b == '+' || b == '-' {
			lx.cursor.Bump()
		}
		if lx.bumpDigits(isDec) {
			isRational = true
		} else {
			// "12elems" — the e belongs to an identifier, not an exponent.
			lx.cursor.Reset(mark)
		}
	}

	if isRational {
		return lx.finishRational(start)
	}
	return lx.finishInt(start)
}

// bumpDigits consumes a run of digits with optional '_' separators.
// Returns false when not a single digit was consumed.
func (lx *Lexer) bumpDigits(class func(byte) bool) bool {
	seen := false
	for {
		b := lx.cursor.Peek()
		switch {
		case class(b):
			seen = true
			lx.cursor.Bump()
		case b == '_' && seen && class(lx.cursor.PeekAt(1)):
			lx.cursor.Bump()
		default:
			return seen
		}
	}
}

func (lx *Lexer) finishInt(start Mark) token.Token {
	kind := token.IntLit
	if lx.cursor.Eat('#') {
		if lx.cursor.Eat('#') {
			kind = token.PrimWordLit
		} else {
			kind = token.PrimIntLit
		}
	}
	sp := lx.cursor.SpanFrom(start)
	return token.Token{Kind: kind, Span: sp, Text: lx.text(sp)}
}

func (lx *Lexer) finishRational(start Mark) token.Token {
	kind := token.RationalLit
	if lx.cursor.Eat('#') {
		if lx.cursor.Eat('#') {
			kind = token.PrimDoubleLit
		} else {
			kind = token.PrimFloatLit
		}
	}
	sp := lx.cursor.SpanFrom(start)
	return token.Token{Kind: kind, Span: sp, Text: lx.text(sp)}
}
