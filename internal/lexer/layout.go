package lexer

import (
	"hslight/internal/source"
	"hslight/internal/token"
)

// layoutState implements a simplified offside rule. After a layout keyword
// (where, let, do, of, mdo) that is not followed by an explicit '{', a
// virtual open brace is synthesized and the column of the next token opens
// a context. A later token at that exact column gets a virtual semicolon in
// front of it; a token left of it closes the context.
//
// Virtual tokens carry no real source location (Virtual=true, empty Span):
// consumers interested only in concrete text drop them.
type layoutState struct {
	queue      []token.Token
	stack      []uint32
	expectOpen bool
	lastLine   uint32
}

func layoutKeyword(k token.Kind) bool {
	switch k {
	case token.KwWhere, token.KwLet, token.KwDo, token.KwOf, token.KwMdo:
		return true
	default:
		return false
	}
}

func (lx *Lexer) layoutNext() token.Token {
	st := &lx.layout
	if len(st.queue) > 0 {
		return st.popQueue()
	}

	t := lx.scanNext()

	if t.Kind == token.EOF {
		for range st.stack {
			st.queue = append(st.queue, lx.virtualToken(token.VRBrace))
		}
		st.stack = st.stack[:0]
		st.queue = append(st.queue, t)
		return st.popQueue()
	}

	// Comments are transparent to layout: GHC's layout machinery never
	// sees them either.
	if t.IsComment() || t.IsPragma() {
		return t
	}

	pos := lx.file.ExpandedLineColAt(t.Span.Start)

	switch {
	case st.expectOpen:
		st.expectOpen = false
		if t.Kind != token.LBrace {
			st.stack = append(st.stack, pos.Col)
			st.queue = append(st.queue, lx.virtualToken(token.VLBrace))
		}

	case st.lastLine != 0 && pos.Line > st.lastLine:
		for n := len(st.stack); n > 0 && pos.Col < st.stack[n-1]; n = len(st.stack) {
			st.stack = st.stack[:n-1]
			st.queue = append(st.queue, lx.virtualToken(token.VRBrace))
		}
		if n := len(st.stack); n > 0 && pos.Col == st.stack[n-1] {
			st.queue = append(st.queue, lx.virtualToken(token.VSemi))
		}
	}

	st.lastLine = pos.Line
	if layoutKeyword(t.Kind) {
		st.expectOpen = true
	}

	st.queue = append(st.queue, t)
	return st.popQueue()
}

func (st *layoutState) popQueue() token.Token {
	t := st.queue[0]
	st.queue = st.queue[1:]
	return t
}

func (lx *Lexer) virtualToken(kind token.Kind) token.Token {
	return token.Token{
		Kind:    kind,
		Span:    source.Span{File: lx.file.ID, Start: lx.cursor.Off, End: lx.cursor.Off},
		Virtual: true,
	}
}
