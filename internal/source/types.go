package source

type (
	// FileID uniquely identifies a source file within a FileSet.
	FileID uint32
	// FileFlags encodes metadata about a source file.
	FileFlags uint8
)

const (
	// FileVirtual indicates the file was added from memory (test, stdin, etc.).
	FileVirtual FileFlags = 1 << iota
	FileHadBOM
	FileNormalizedCRLF
)

// File captures metadata and content for a single source file.
type File struct {
	ID      FileID
	Path    string
	Content []byte
	LineIdx []uint32
	Hash    [32]byte
	Flags   FileFlags
}

// LineCol represents a human-readable position in a source file.
// Columns are display columns when produced by ResolveExpanded: a tab
// advances to the next multiple-of-8 tab stop, not to col+1.
type LineCol struct {
	Line uint32 // 1-based
	Col  uint32 // 1-based
}

// Before reports whether p comes strictly before q in reading order.
func (p LineCol) Before(q LineCol) bool {
	return p.Line < q.Line || (p.Line == q.Line && p.Col < q.Col)
}
