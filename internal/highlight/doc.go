// Package highlight turns source text into an ordered sequence of
// (category, text) pairs suitable for syntax highlighting.
//
// The pipeline has three stages. The lexer produces raw tokens with byte
// spans. Classify maps every token kind to one of thirteen presentation
// categories. Reconstruct walks the original text once, slicing out the
// exact substring each token covers and synthesizing a single Space token
// for every non-empty gap in between, so that concatenating all output
// texts reproduces the input.
//
// Coverage ends at the last reported token: any text after it, most
// commonly a final newline, is not emitted. Callers that need the full
// input back must re-append the tail themselves.
//
// Tokenization is all-or-nothing. If the lexer reports an error anywhere
// in the input, no tokens are produced at all and the caller is expected
// to fall back to rendering the input as plain text.
package highlight
