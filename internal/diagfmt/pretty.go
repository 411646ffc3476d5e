package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"hslight/internal/diag"
	"hslight/internal/source"
)

var (
	errorColor   = color.New(color.FgRed, color.Bold)
	warningColor = color.New(color.FgYellow, color.Bold)
	infoColor    = color.New(color.FgCyan)
	gutterColor  = color.New(color.FgHiBlack)
	caretColor   = color.New(color.FgRed, color.Bold)
)

// Pretty renders diagnostics in a human-readable form, one entry per
// diagnostic:
//
//	<path>:<line>:<col>: <sev>[<code>]: <message>
//	   3 | x = "oops
//	     |     ^~~~~
//
// followed by indented notes when opts.ShowNotes is set. Call bag.Sort()
// first for a stable order.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	noColor := !opts.Color
	for _, d := range bag.Items() {
		writeHeader(w, fs, d, opts, noColor)
		if !d.Primary.Empty() {
			writeContext(w, fs, d.Primary, noColor)
		}
		if opts.ShowNotes {
			for _, note := range d.Notes {
				loc := ""
				if !note.Span.Empty() {
					start, _ := fs.ResolveExpanded(note.Span)
					loc = fmt.Sprintf("%s:%d:%d: ", formatPath(fs, note.Span.File, opts.PathMode), start.Line, start.Col)
				}
				fmt.Fprintf(w, "  note: %s%s\n", loc, note.Msg)
			}
		}
	}
}

func writeHeader(w io.Writer, fs *source.FileSet, d diag.Diagnostic, opts PrettyOpts, noColor bool) {
	sev := severityColor(d.Severity)
	label := fmt.Sprintf("%s[%s]", d.Severity, d.Code.ID())
	if !noColor {
		label = sev.Sprint(label)
	}
	if d.Primary.Empty() {
		fmt.Fprintf(w, "%s: %s\n", label, d.Message)
		return
	}
	start, _ := fs.ResolveExpanded(d.Primary)
	path := formatPath(fs, d.Primary.File, opts.PathMode)
	fmt.Fprintf(w, "%s:%d:%d: %s: %s\n", path, start.Line, start.Col, label, d.Message)
}

// writeContext prints the primary line with tabs expanded to spaces and a
// caret underline in display columns.
func writeContext(w io.Writer, fs *source.FileSet, sp source.Span, noColor bool) {
	f := fs.Get(sp.File)
	start, end := fs.ResolveExpanded(sp)
	line := expandTabs(f.GetLine(start.Line))

	gutter := fmt.Sprintf("%4d | ", start.Line)
	blank := strings.Repeat(" ", len(gutter)-2) + "| "
	if !noColor {
		gutter = gutterColor.Sprint(gutter)
		blank = gutterColor.Sprint(blank)
	}
	fmt.Fprintf(w, "%s%s\n", gutter, line)

	underlineEnd := end.Col
	if end.Line != start.Line {
		// Multi-line span: underline to the end of the first line.
		underlineEnd = uint32(runewidth.StringWidth(line)) + 2
	}
	width := int(underlineEnd) - int(start.Col)
	if width < 1 {
		width = 1
	}
	marks := "^" + strings.Repeat("~", width-1)
	if !noColor {
		marks = caretColor.Sprint(marks)
	}
	fmt.Fprintf(w, "%s%s%s\n", blank, strings.Repeat(" ", int(start.Col)-1), marks)
}

func expandTabs(line string) string {
	if !strings.Contains(line, "\t") {
		return line
	}
	var b strings.Builder
	col := 1
	for _, r := range line {
		if r == '\t' {
			n := source.TabWidth - ((col - 1) % source.TabWidth)
			b.WriteString(strings.Repeat(" ", n))
			col += n
			continue
		}
		b.WriteRune(r)
		col++
	}
	return b.String()
}

func severityColor(sev diag.Severity) *color.Color {
	switch sev {
	case diag.SevError:
		return errorColor
	case diag.SevWarning:
		return warningColor
	default:
		return infoColor
	}
}

func formatPath(fs *source.FileSet, id source.FileID, mode PathMode) string {
	f := fs.Get(id)
	switch mode {
	case PathModeBasename:
		return source.BaseName(f.Path)
	case PathModeAbsolute:
		if abs, err := source.AbsolutePath(f.Path); err == nil {
			return abs
		}
		return f.Path
	default:
		if rel, err := source.RelativePath(f.Path, fs.BaseDir()); err == nil {
			return rel
		}
		return f.Path
	}
}
