package driver

import (
	"hslight/internal/diag"
	"hslight/internal/lexer"
	"hslight/internal/source"
	"hslight/internal/token"
)

type TokenizeResult struct {
	FileSet *source.FileSet
	File    *source.File
	Tokens  []token.Token
	Bag     *diag.Bag
}

// TokenizeOptions controls raw token dumps.
type TokenizeOptions struct {
	MaxDiagnostics int
	// Layout includes virtual layout tokens in the dump.
	Layout bool
}

// Tokenize loads one file and runs the lexer over it, collecting every
// token up to and including EOF. Lexical errors land in the bag, the token
// slice covers whatever was scanned.
func Tokenize(path string, opts TokenizeOptions) (*TokenizeResult, error) {
	fs := source.NewFileSet()
	fileID, err := fs.Load(path)
	if err != nil {
		return nil, err
	}
	return tokenizeFile(fs, fileID, opts), nil
}

// TokenizeSource tokenizes in-memory content under the given name.
func TokenizeSource(name string, content []byte, opts TokenizeOptions) *TokenizeResult {
	fs := source.NewFileSet()
	return tokenizeFile(fs, fs.AddVirtual(name, content), opts)
}

func tokenizeFile(fs *source.FileSet, fileID source.FileID, opts TokenizeOptions) *TokenizeResult {
	file := fs.Get(fileID)
	bag := diag.NewBag(opts.MaxDiagnostics)

	reporter := (&lexer.ReporterAdapter{Bag: bag}).Reporter()
	lx := lexer.New(file, lexer.Options{
		Reporter: reporter,
		Layout:   opts.Layout,
	})

	var tokens []token.Token
	for {
		tok := lx.Next()
		tokens = append(tokens, tok)
		if tok.Kind == token.EOF {
			break
		}
	}

	return &TokenizeResult{
		FileSet: fs,
		File:    file,
		Tokens:  tokens,
		Bag:     bag,
	}
}
