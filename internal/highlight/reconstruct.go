package highlight

import (
	"fmt"
	"unicode/utf8"

	"hslight/internal/source"
)

// Token is one entry of highlighted output. Text is always an exact,
// contiguous slice of the original input.
type Token struct {
	Category Category
	Text     string
}

// SpanToken is a classified token boundary expressed in display
// coordinates, ready for reconstruction.
type SpanToken struct {
	Category Category
	Start    source.LineCol
	End      source.LineCol
}

// cursor is the traversal state of the reconstruction walk. It is a value:
// advanceTo returns the moved cursor together with the consumed slice, the
// receiver stays untouched.
type cursor struct {
	line uint32
	col  uint32
	rest string
}

func newCursor(input string) cursor {
	return cursor{line: 1, col: 1, rest: input}
}

// advanceTo consumes runes while the current position still precedes
// target, that is while line < target.Line || col < target.Col. The
// disjunction deliberately does not gate the column comparison on line
// equality; with monotonic in-bounds spans the two forms agree, and the
// ungated one is what the output format is pinned to.
//
// A newline moves to the start of the next line, a tab advances the column
// to the next multiple-of-TabWidth stop, anything else adds one column.
func (c cursor) advanceTo(target source.LineCol) (cursor, string) {
	line, col := c.line, c.col
	i := 0
	for i < len(c.rest) {
		if line >= target.Line && col >= target.Col {
			break
		}
		r, size := utf8.DecodeRuneInString(c.rest[i:])
		switch r {
		case '\n':
			line++
			col = 1
		case '\t':
			col += source.TabWidth - ((col - 1) % source.TabWidth)
		default:
			col++
		}
		i += size
	}
	moved := cursor{line: line, col: col, rest: c.rest[i:]}
	return moved, c.rest[:i]
}

func (c cursor) at() source.LineCol {
	return source.LineCol{Line: c.line, Col: c.col}
}

// Stream is a lazy, forward-only sequence of output tokens. Each Next call
// computes one token; a consumed stream cannot be replayed.
type Stream struct {
	cur     cursor
	pending []SpanToken
	prevEnd source.LineCol
}

// Reconstruct pairs classified spans with the exact text they cover,
// emitting one Space token for every non-empty gap between them. Spans
// must be monotonic and within bounds of the input; Next panics on a span
// that starts before the end of its predecessor.
func Reconstruct(input string, spans []SpanToken) *Stream {
	return &Stream{
		cur:     newCursor(input),
		pending: spans,
		prevEnd: source.LineCol{Line: 1, Col: 1},
	}
}

// Next returns the next output token. The second result is false once the
// span sequence is exhausted; trailing input after the last span is left
// unconsumed.
func (s *Stream) Next() (Token, bool) {
	if len(s.pending) == 0 {
		return Token{}, false
	}
	sp := s.pending[0]
	if sp.Start.Before(s.prevEnd) {
		panic(fmt.Sprintf("highlight: span %v..%v precedes position %v",
			sp.Start, sp.End, s.prevEnd))
	}

	moved, gap := s.cur.advanceTo(sp.Start)
	if len(gap) > 0 {
		s.cur = moved
		return Token{Category: Space, Text: gap}, true
	}

	moved, text := s.cur.advanceTo(sp.End)
	s.cur = moved
	s.prevEnd = sp.End
	s.pending = s.pending[1:]
	return Token{Category: sp.Category, Text: text}, true
}

// Collect drains the stream into a slice.
func (s *Stream) Collect() []Token {
	var out []Token
	for {
		t, ok := s.Next()
		if !ok {
			return out
		}
		out = append(out, t)
	}
}
