package driver

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"
)

// CheckResult reports whether one file tokenizes cleanly.
type CheckResult struct {
	Path string
	Err  error // nil on success; *highlight.LexError on lexical failure
}

// Ok reports a clean file.
func (r CheckResult) Ok() bool {
	return r.Err == nil
}

// CheckOptions controls parallel directory checking.
type CheckOptions struct {
	// Jobs caps worker goroutines; 0 means GOMAXPROCS.
	Jobs int
	// Observer, when set, is called once per finished file from worker
	// goroutines. It must be safe for concurrent use.
	Observer func(CheckResult)
}

// ListHaskellFiles returns a sorted list of all *.hs files under dir. A
// path that is itself a file is returned as-is.
func ListHaskellFiles(dir string) ([]string, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return []string{dir}, nil
	}

	var files []string
	err = filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(path, ".hs") {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	// Deterministic order regardless of walk internals.
	sort.Strings(files)
	return files, nil
}

// CheckDir tokenizes every *.hs file under dir in parallel and reports
// per-file outcomes in path order. Lexical failures are results, not
// errors; the returned error is reserved for walk failures and
// cancellation.
func CheckDir(ctx context.Context, dir string, opts CheckOptions) ([]CheckResult, error) {
	files, err := ListHaskellFiles(dir)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, nil
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	// Indices are unique per goroutine, no mutex needed.
	results := make([]CheckResult, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(files)))

	for i, path := range files {
		i, path := i, path
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = checkOne(path)
			if opts.Observer != nil {
				opts.Observer(results[i])
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func checkOne(path string) CheckResult {
	_, err := HighlightFile(path)
	return CheckResult{Path: path, Err: err}
}
