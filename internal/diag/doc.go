// Package diag defines the diagnostic model shared by the lexer and driver.
//
//   - Deterministic, serialisable structures capturing lexical findings.
//   - Light-weight utilities (Reporter, Bag) letting producers emit
//     diagnostics without coupling to storage or formatting layers.
//
// Rendering lives in internal/diagfmt; package diag does no IO.
package diag
