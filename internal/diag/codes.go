package diag

import (
	"fmt"
)

type Code uint16

const (
	// UnknownCode is the zero fallback.
	UnknownCode Code = 0

	// Lexical codes. Any error in this range fails the whole tokenization:
	// the lexer has an all-or-nothing contract.
	LexInfo                     Code = 1000
	LexUnknownChar              Code = 1001
	LexUnterminatedString       Code = 1002
	LexUnterminatedChar         Code = 1003
	LexUnterminatedBlockComment Code = 1004
	LexUnterminatedPragma       Code = 1005
	LexUnterminatedQuasiQuote   Code = 1006
	LexBadNumber                Code = 1007
	LexBadEscape                Code = 1008

	// IO / driver codes.
	IOInfo       Code = 4000
	IOReadFailed Code = 4001
	IOWalkFailed Code = 4002
	IONotHaskell Code = 4003
)

var codeDescription = map[Code]string{
	UnknownCode:                 "unknown failure",
	LexInfo:                     "lexical note",
	LexUnknownChar:              "character cannot start a token",
	LexUnterminatedString:       "unterminated string literal",
	LexUnterminatedChar:         "unterminated character literal",
	LexUnterminatedBlockComment: "unterminated block comment",
	LexUnterminatedPragma:       "unterminated pragma",
	LexUnterminatedQuasiQuote:   "unterminated quasi-quotation",
	LexBadNumber:                "malformed numeric literal",
	LexBadEscape:                "malformed escape sequence",
	IOInfo:                      "driver note",
	IOReadFailed:                "cannot read source file",
	IOWalkFailed:                "cannot walk directory",
	IONotHaskell:                "not a Haskell source file",
}

func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("LEX%04d", ic)
	case ic >= 4000 && ic < 5000:
		return fmt.Sprintf("IO%04d", ic)
	}
	return "E0000"
}

func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[UnknownCode]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
