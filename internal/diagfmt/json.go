package diagfmt

import (
	"encoding/json"
	"io"

	"hslight/internal/diag"
	"hslight/internal/source"
)

type positionOutput struct {
	Line uint32 `json:"line"`
	Col  uint32 `json:"col"`
}

type noteOutput struct {
	Message string          `json:"message"`
	Start   *positionOutput `json:"start,omitempty"`
}

// DiagnosticOutput is the JSON shape of one diagnostic.
type DiagnosticOutput struct {
	Severity string          `json:"severity"`
	Code     string          `json:"code"`
	Message  string          `json:"message"`
	Path     string          `json:"path,omitempty"`
	Start    *positionOutput `json:"start,omitempty"`
	End      *positionOutput `json:"end,omitempty"`
	Notes    []noteOutput    `json:"notes,omitempty"`
}

// DiagnosticsJSON writes bag contents as a JSON array.
func DiagnosticsJSON(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts JSONOpts) error {
	items := bag.Items()
	if opts.Max > 0 && len(items) > opts.Max {
		items = items[:opts.Max]
	}

	out := make([]DiagnosticOutput, 0, len(items))
	for _, d := range items {
		entry := DiagnosticOutput{
			Severity: d.Severity.String(),
			Code:     d.Code.ID(),
			Message:  d.Message,
		}
		if !d.Primary.Empty() {
			entry.Path = formatPath(fs, d.Primary.File, opts.PathMode)
			if opts.IncludePositions {
				start, end := fs.ResolveExpanded(d.Primary)
				entry.Start = &positionOutput{Line: start.Line, Col: start.Col}
				entry.End = &positionOutput{Line: end.Line, Col: end.Col}
			}
		}
		if opts.IncludeNotes {
			for _, n := range d.Notes {
				no := noteOutput{Message: n.Msg}
				if opts.IncludePositions && !n.Span.Empty() {
					start, _ := fs.ResolveExpanded(n.Span)
					no.Start = &positionOutput{Line: start.Line, Col: start.Col}
				}
				entry.Notes = append(entry.Notes, no)
			}
		}
		out = append(out, entry)
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(out)
}
