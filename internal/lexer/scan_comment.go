package lexer

import (
	"hslight/internal/diag"
	"hslight/internal/token"
)

// scanLineComment scans a dash comment to the end of the line, the newline
// excluded. Haddock markers directly after the dashes select the doc kind:
//
//	-- |  documents the next declaration
//	-- ^  documents the previous declaration
//	-- *  section heading (any number of stars)
//	-- $name  named documentation chunk
func (lx *Lexer) scanLineComment() token.Token {
	start := lx.cursor.Mark()
	for lx.cursor.Peek() == '-' {
		lx.cursor.Bump()
	}

	kind := token.LineComment
	probe := uint32(0)
	for lx.cursor.PeekAt(probe) == ' ' {
		probe++
	}
	switch lx.cursor.PeekAt(probe) {
	case '|':
		kind = token.DocCommentNext
	case '^':
		kind = token.DocCommentPrev
	case '*':
		kind = token.DocSection
	case '$':
		if isVarStartByte(lx.cursor.PeekAt(probe + 1)) {
			kind = token.DocCommentNamed
		}
	}

	for !lx.cursor.EOF() && lx.cursor.Peek() != '\n' {
		lx.cursor.Bump()
	}
	sp := lx.cursor.SpanFrom(start)
	return token.Token{Kind: kind, Span: sp, Text: lx.text(sp)}
}

// scanBlockCommentOrPragma scans '{-' forms: pragmas ({-# ... #-}), doc
// blocks ({-| and {-^), and plain block comments with nesting.
func (lx *Lexer) scanBlockCommentOrPragma() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // '{'
	lx.cursor.Bump() // '-'

	switch lx.cursor.Peek() {
	case '#':
		lx.cursor.Bump()
		return lx.scanPragma(start)
	case '|':
		return lx.scanBlockCommentBody(start, token.DocCommentNext)
	case '^':
		return lx.scanBlockCommentBody(start, token.DocCommentPrev)
	default:
		return lx.scanBlockCommentBody(start, token.BlockComment)
	}
}

// scanBlockCommentBody consumes a (possibly nested) block comment, the
// opener already behind the cursor.
func (lx *Lexer) scanBlockCommentBody(start Mark, kind token.Kind) token.Token {
	depth := 1
	for !lx.cursor.EOF() && depth > 0 {
		if b0, b1, ok := lx.cursor.Peek2(); ok {
			if b0 == '{' && b1 == '-' {
				lx.cursor.Bump()
				lx.cursor.Bump()
				depth++
				continue
			}
			if b0 == '-' && b1 == '}' {
				lx.cursor.Bump()
				lx.cursor.Bump()
				depth--
				continue
			}
		}
		lx.cursor.Bump()
	}
	sp := lx.cursor.SpanFrom(start)
	if depth > 0 {
		lx.errLex(diag.LexUnterminatedBlockComment, sp, "unterminated block comment")
		return token.Token{Kind: token.Invalid, Span: sp, Text: lx.text(sp)}
	}
	return token.Token{Kind: kind, Span: sp, Text: lx.text(sp)}
}

// scanPragma consumes '{-#' up to '#-}' as one token. The first word inside
// the bracket picks the pragma kind; unknown words fall back to a generic
// pragma so the mapping stays total.
func (lx *Lexer) scanPragma(start Mark) token.Token {
	for !lx.cursor.EOF() && isSpaceByte(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}
	wordMark := lx.cursor.Mark()
	for {
		b := lx.cursor.Peek()
		if b == '_' || (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z') || isDec(b) {
			lx.cursor.Bump()
			continue
		}
		break
	}
	kind := token.LookupPragma(lx.text(lx.cursor.SpanFrom(wordMark)))

	for !lx.cursor.EOF() {
		if lx.try3('#', '-', '}') {
			sp := lx.cursor.SpanFrom(start)
			return token.Token{Kind: kind, Span: sp, Text: lx.text(sp)}
		}
		lx.cursor.Bump()
	}

	sp := lx.cursor.SpanFrom(start)
	lx.errLex(diag.LexUnterminatedPragma, sp, "unterminated pragma")
	return token.Token{Kind: token.Invalid, Span: sp, Text: lx.text(sp)}
}
