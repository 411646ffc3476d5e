package source

import (
	"path/filepath"
	"slices"
	"unicode/utf8"
)

// TabWidth is the display width of a tab stop. A tab advances the display
// column to the next multiple-of-TabWidth boundary.
const TabWidth = 8

// normalizeCRLF replaces every \r\n with \n, leaving lone \r untouched.
// Returns the new slice and whether at least one replacement happened.
func normalizeCRLF(content []byte) ([]byte, bool) {
	// Fast path: no \r at all.
	if !slices.Contains(content, '\r') {
		return content, false
	}

	out := make([]byte, 0, len(content))
	changed := false

	i := 0
	for i < len(content) {
		if content[i] == '\r' && i+1 < len(content) && content[i+1] == '\n' {
			out = append(out, '\n')
			i += 2
			changed = true
		} else {
			out = append(out, content[i])
			i++
		}
	}
	return out, changed
}

func removeBOM(content []byte) ([]byte, bool) {
	if len(content) < 3 {
		return content, false
	}

	if content[0] == 0xEF && content[1] == 0xBB && content[2] == 0xBF {
		return content[3:], true
	}

	return content, false
}

func buildLineIndex(content []byte) []uint32 {
	out := make([]uint32, 0, len(content)/16)
	for i, b := range content {
		if b == '\n' {
			out = append(out, uint32(i))
		}
	}
	return out
}

// lineStart finds the 1-based line containing off and the byte offset of
// that line's first character. Binary search for the last newline strictly
// before off; the newline itself counts as the final character of its line.
func lineStart(lineIdx []uint32, off uint32) (line, start uint32) {
	lo, hi := 0, len(lineIdx)-1
	for lo <= hi {
		mid := (lo + hi) >> 1
		if lineIdx[mid] < off {
			lo = mid + 1
		} else {
			hi = mid - 1
		}
	}
	if hi < 0 {
		return 1, 0
	}
	return uint32(hi) + 2, lineIdx[hi] + 1
}

func toLineCol(lineIdx []uint32, off uint32) LineCol {
	line, start := lineStart(lineIdx, off)
	return LineCol{Line: line, Col: off - start + 1}
}

// toExpandedLineCol resolves off to a display-column position: the column is
// found by walking the line prefix rune by rune, expanding tabs to the next
// TabWidth stop.
func toExpandedLineCol(content []byte, lineIdx []uint32, off uint32) LineCol {
	line, start := lineStart(lineIdx, off)

	col := uint32(1)
	for i := start; i < off; {
		r, sz := utf8.DecodeRune(content[i:])
		if r == '\t' {
			col += TabWidth - ((col - 1) % TabWidth)
		} else {
			col++
		}
		i += uint32(sz)
	}
	return LineCol{Line: line, Col: col}
}

func normalizePath(p string) string {
	// one canonical form for cross-platform diffs
	return filepath.ToSlash(filepath.Clean(p))
}

// AbsolutePath returns the absolute form of p.
func AbsolutePath(p string) (string, error) {
	abs, err := filepath.Abs(p)
	if err != nil {
		return "", err
	}
	return normalizePath(abs), nil
}

// RelativePath returns p relative to base. Paths outside base fall back to
// the absolute form.
func RelativePath(p, base string) (string, error) {
	rel, err := filepath.Rel(base, p)
	if err != nil || len(rel) >= 2 && rel[0] == '.' && rel[1] == '.' {
		return AbsolutePath(p)
	}
	return normalizePath(rel), nil
}

// BaseName returns the final path element of p.
func BaseName(p string) string {
	return filepath.Base(p)
}
