package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/mattn/go-runewidth"
	"github.com/vmihailenco/msgpack/v5"

	"hslight/internal/highlight"
	"hslight/internal/source"
	"hslight/internal/token"
)

// TokenOutput is the serialized shape of one raw token.
type TokenOutput struct {
	Kind     string `json:"kind" msgpack:"kind"`
	Category string `json:"category" msgpack:"category"`
	Text     string `json:"text,omitempty" msgpack:"text"`
	Line     uint32 `json:"line" msgpack:"line"`
	Col      uint32 `json:"col" msgpack:"col"`
	EndLine  uint32 `json:"endLine" msgpack:"endLine"`
	EndCol   uint32 `json:"endCol" msgpack:"endCol"`
	Virtual  bool   `json:"virtual,omitempty" msgpack:"virtual,omitempty"`
}

func tokenOutputs(tokens []token.Token, fs *source.FileSet) []TokenOutput {
	out := make([]TokenOutput, 0, len(tokens))
	for _, tok := range tokens {
		if tok.Kind == token.EOF {
			break
		}
		entry := TokenOutput{
			Kind:     tok.Kind.String(),
			Category: highlight.Classify(tok.Kind).String(),
			Text:     tok.Text,
			Virtual:  tok.Virtual,
		}
		if !tok.Virtual {
			start, end := fs.ResolveExpanded(tok.Span)
			entry.Line, entry.Col = start.Line, start.Col
			entry.EndLine, entry.EndCol = end.Line, end.Col
		}
		out = append(out, entry)
	}
	return out
}

// FormatTokensPretty writes an aligned, human-readable token listing.
// Kind columns pad by display width so that non-ASCII token text further
// right stays aligned.
func FormatTokensPretty(w io.Writer, tokens []token.Token, fs *source.FileSet) error {
	for i, entry := range tokenOutputs(tokens, fs) {
		kind := runewidth.FillRight(entry.Kind, 16)
		if _, err := fmt.Fprintf(w, "%4d: %s %-12s", i+1, kind, entry.Category); err != nil {
			return err
		}
		if entry.Virtual {
			_, err := fmt.Fprintln(w, " (layout)")
			if err != nil {
				return err
			}
			continue
		}
		if entry.Text != "" {
			if _, err := fmt.Fprintf(w, " %q", entry.Text); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(w, " at %d:%d-%d:%d\n",
			entry.Line, entry.Col, entry.EndLine, entry.EndCol); err != nil {
			return err
		}
	}
	return nil
}

// FormatTokensJSON writes the token listing as a JSON array.
func FormatTokensJSON(w io.Writer, tokens []token.Token, fs *source.FileSet) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(tokenOutputs(tokens, fs))
}

// FormatTokensMsgpack writes the token listing as a msgpack array, the
// compact form for tooling that post-processes dumps.
func FormatTokensMsgpack(w io.Writer, tokens []token.Token, fs *source.FileSet) error {
	return msgpack.NewEncoder(w).Encode(tokenOutputs(tokens, fs))
}

// HighlightOutput is the serialized shape of one highlighted token.
type HighlightOutput struct {
	Category string `json:"category" msgpack:"category"`
	Text     string `json:"text" msgpack:"text"`
}

// FormatHighlightJSON writes reconstructed output tokens as a JSON array.
func FormatHighlightJSON(w io.Writer, tokens []highlight.Token) error {
	out := make([]HighlightOutput, 0, len(tokens))
	for _, tok := range tokens {
		out = append(out, HighlightOutput{Category: tok.Category.String(), Text: tok.Text})
	}
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(out)
}
