// Package token defines lexical token kinds for the highlighting lexer.
// Invariants:
//   - Token.Text is the exact source substring covered by Token.Span.
//   - Token.Span is byte-addressed and half-open (Start..End).
//   - Virtual tokens (layout braces and semicolons) carry an empty Span and
//     Virtual=true; they exist only so that downstream filtering has a
//     well-defined contract and are never emitted as highlighted output.
//   - Pragma brackets lex as one token covering the whole {-# ... #-} form;
//     the word after the opener selects the pragma kind.
package token
