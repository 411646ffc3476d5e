package lexer

import (
	"hslight/internal/diag"
	"hslight/internal/source"
	"hslight/internal/token"
)

// Lexer produces the raw token stream for one source file. Whitespace is
// never reported: the highlighting layer reconstructs gaps from spans, so
// the lexer only moves past it. Comments and pragmas are ordinary tokens.
type Lexer struct {
	file   *source.File
	cursor Cursor
	opts   Options
	look   *token.Token // 1-element lookahead buffer
	layout layoutState
}

func New(file *source.File, opts Options) *Lexer {
	return &Lexer{
		file:   file,
		cursor: NewCursor(file),
		opts:   opts,
		look:   nil,
	}
}

// Next returns the next token. After EOF it always returns EOF. With
// Options.Layout enabled, virtual layout tokens are interleaved with the
// concrete stream.
func (lx *Lexer) Next() token.Token {
	if lx.look != nil {
		tok := *lx.look
		lx.look = nil
		return tok
	}
	if lx.opts.Layout {
		return lx.layoutNext()
	}
	return lx.scanNext()
}

// Peek returns the next token without consuming it.
func (lx *Lexer) Peek() token.Token {
	t := lx.Next()
	lx.look = &t
	return t
}

// scanNext skips whitespace and scans one concrete token.
func (lx *Lexer) scanNext() token.Token {
	lx.skipSpace()

	if lx.cursor.EOF() {
		return token.Token{
			Kind: token.EOF,
			Span: lx.emptySpan(),
			Text: "",
		}
	}

	ch := lx.cursor.Peek()

	switch {
	case ch == '-' && lx.isLineCommentStart():
		return lx.scanLineComment()

	case ch == '{' && lx.cursor.PeekAt(1) == '-':
		return lx.scanBlockCommentOrPragma()

	case ch == '_':
		// A lone '_' is the reserved wildcard; '_foo' is a varid.
		if isIdentContinueByte(lx.cursor.PeekAt(1)) {
			return lx.scanVarId()
		}
		return lx.scanUnderscore()

	case isVarStartByte(ch):
		return lx.scanVarId()

	case isConStartByte(ch):
		return lx.scanConIdOrQualified()

	case ch >= utf8RuneSelf:
		return lx.scanUnicode()

	case isDec(ch):
		return lx.scanNumber()

	case ch == '"':
		return lx.scanString()

	case ch == '\'':
		return lx.scanCharOrQuote()

	case ch == '#' && isVarStartByte(lx.cursor.PeekAt(1)):
		return lx.scanLabel()

	case ch == '?' && isVarStartByte(lx.cursor.PeekAt(1)):
		return lx.scanImplicit()

	default:
		return lx.scanOperatorOrPunct()
	}
}

func (lx *Lexer) skipSpace() {
	for !lx.cursor.EOF() && isSpaceByte(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}
}

// isLineCommentStart recognizes a dash run that is a comment rather than an
// operator: "--" possibly followed by more dashes, with no trailing symbol
// character ("-->" stays an operator).
func (lx *Lexer) isLineCommentStart() bool {
	if lx.cursor.PeekAt(1) != '-' {
		return false
	}
	n := uint32(2)
	for lx.cursor.PeekAt(n) == '-' {
		n++
	}
	next := lx.cursor.PeekAt(n)
	return next == 0 || !isSymbolByte(next)
}

func (lx *Lexer) scanUnderscore() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump()
	sp := lx.cursor.SpanFrom(start)
	return token.Token{Kind: token.KwUnderscore, Span: sp, Text: lx.text(sp)}
}

// scanUnicode dispatches a non-ASCII leading rune.
func (lx *Lexer) scanUnicode() token.Token {
	r, _ := lx.peekRune()
	switch {
	case isVarStartRune(r):
		return lx.scanVarId()
	case isConStartRune(r):
		return lx.scanConIdOrQualified()
	case isSymbolRune(r):
		return lx.scanOperatorOrPunct()
	default:
		start := lx.cursor.Mark()
		lx.bumpRune()
		sp := lx.cursor.SpanFrom(start)
		lx.errLex(diag.LexUnknownChar, sp, "character cannot start a token")
		return token.Token{Kind: token.Invalid, Span: sp, Text: lx.text(sp)}
	}
}

func (lx *Lexer) text(sp source.Span) string {
	return string(lx.file.Content[sp.Start:sp.End])
}

func (lx *Lexer) emptySpan() source.Span {
	return source.Span{File: lx.file.ID, Start: lx.cursor.Off, End: lx.cursor.Off}
}
