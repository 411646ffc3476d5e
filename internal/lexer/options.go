package lexer

import (
	"hslight/internal/diag"
	"hslight/internal/source"
)

type Options struct {
	// Reporter may be nil, in which case diagnostics are dropped (lexing
	// still proceeds so spans stay contiguous).
	Reporter diag.Reporter
	// Layout enables synthesis of virtual layout tokens (VLBrace, VRBrace,
	// VSemi). They carry no real source location; consumers that only care
	// about concrete text filter them out.
	Layout bool
}

func (lx *Lexer) errLex(code diag.Code, sp source.Span, msg string) {
	if lx.opts.Reporter != nil {
		lx.opts.Reporter.Report(code, diag.SevError, sp, msg, nil)
	}
}
