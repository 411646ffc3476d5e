package theme

import (
	"io"
	"strings"

	"hslight/internal/highlight"
)

// Render writes every token from the stream to w, styled by the theme.
// Rendering stops on the first write error.
func (t *Theme) Render(w io.Writer, stream *highlight.Stream) error {
	for {
		tok, ok := stream.Next()
		if !ok {
			return nil
		}
		if _, err := io.WriteString(w, t.Sprint(tok)); err != nil {
			return err
		}
	}
}

// RenderString renders a token slice into one string.
func (t *Theme) RenderString(tokens []highlight.Token) string {
	var b strings.Builder
	for _, tok := range tokens {
		b.WriteString(t.Sprint(tok))
	}
	return b.String()
}
