package driver

import (
	"hslight/internal/highlight"
	"hslight/internal/source"
)

// HighlightResult is one fully highlighted source unit.
type HighlightResult struct {
	FileSet *source.FileSet
	File    *source.File
	Tokens  []highlight.Token
}

// HighlightFile loads path and runs the whole pipeline over it. A lexical
// error fails the call with *highlight.LexError and no tokens; the result
// still carries the FileSet so callers can render diagnostics.
func HighlightFile(path string) (*HighlightResult, error) {
	fs := source.NewFileSet()
	fileID, err := fs.Load(path)
	if err != nil {
		return nil, err
	}
	return highlightFile(fs, fileID)
}

// HighlightSource highlights in-memory content under the given name.
func HighlightSource(name string, content []byte) (*HighlightResult, error) {
	fs := source.NewFileSet()
	return highlightFile(fs, fs.AddVirtual(name, content))
}

func highlightFile(fs *source.FileSet, fileID source.FileID) (*HighlightResult, error) {
	file := fs.Get(fileID)
	stream, err := highlight.Tokenize(file)
	if err != nil {
		return &HighlightResult{FileSet: fs, File: file}, err
	}
	return &HighlightResult{
		FileSet: fs,
		File:    file,
		Tokens:  stream.Collect(),
	}, nil
}
