package lexer

import (
	"fmt"
	"unicode"
	"unicode/utf8"

	"fortio.org/safecast"
)

const utf8RuneSelf = 0x80

// ===== Rune access on top of Cursor =====

// peekRune reads the current position as a rune.
func (lx *Lexer) peekRune() (r rune, size int) {
	if lx.cursor.EOF() {
		return utf8.RuneError, 0
	}
	b := lx.cursor.Peek()
	if b < utf8.RuneSelf { // fast-path ASCII
		return rune(b), 1
	}
	r, sz := utf8.DecodeRune(lx.file.Content[lx.cursor.Off:])
	return r, sz
}

// bumpRune advances the cursor by the size of the current rune.
func (lx *Lexer) bumpRune() {
	_, sz := lx.peekRune()
	if sz == 0 {
		return
	}
	usz, err := safecast.Conv[uint32](sz)
	if err != nil {
		panic(fmt.Errorf("bumpRune overflow: %w", err))
	}
	lx.cursor.Off += usz
}

// ===== Character classes =====

// ASCII fast-paths; Unicode goes through the rune classifiers below.
func isVarStartByte(b byte) bool {
	return b == '_' || (b >= 'a' && b <= 'z')
}

func isConStartByte(b byte) bool {
	return b >= 'A' && b <= 'Z'
}

func isIdentContinueByte(b byte) bool {
	return b == '_' || b == '\'' ||
		(b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z') ||
		(b >= '0' && b <= '9')
}

func isVarStartRune(r rune) bool {
	return r == '_' || unicode.IsLower(r)
}

func isConStartRune(r rune) bool {
	return unicode.IsUpper(r)
}

func isIdentContinueRune(r rune) bool {
	return r == '_' || r == '\'' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

// asciiSymbols is the ASCII operator alphabet. ':' is included: it starts
// constructor operators.
const asciiSymbols = "!#$%&*+./<=>?@\\^|-~:"

func isSymbolByte(b byte) bool {
	for i := 0; i < len(asciiSymbols); i++ {
		if asciiSymbols[i] == b {
			return true
		}
	}
	return false
}

func isSymbolRune(r rune) bool {
	if r < utf8RuneSelf {
		return isSymbolByte(byte(r))
	}
	return unicode.IsSymbol(r) || unicode.IsPunct(r) &&
		!unicode.In(r, unicode.Ps, unicode.Pe, unicode.Pi, unicode.Pf)
}

func isDec(b byte) bool { return b >= '0' && b <= '9' }
func isOct(b byte) bool { return b >= '0' && b <= '7' }
func isBin(b byte) bool { return b == '0' || b == '1' }
func isHex(b byte) bool {
	return (b >= '0' && b <= '9') ||
		(b >= 'a' && b <= 'f') ||
		(b >= 'A' && b <= 'F')
}

func isSpaceByte(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r' || b == '\f' || b == '\v'
}

// ===== Greedy operator matchers =====

// try2/try3 consume 2/3 bytes when they match exactly.
func (lx *Lexer) try3(a, b, c byte) bool {
	b0, b1, b2, ok := lx.cursor.Peek3()
	if !ok || b0 != a || b1 != b || b2 != c {
		return false
	}
	lx.cursor.Bump()
	lx.cursor.Bump()
	lx.cursor.Bump()
	return true
}

func (lx *Lexer) try2(a, b byte) bool {
	b0, b1, ok := lx.cursor.Peek2()
	if !ok || b0 != a || b1 != b {
		return false
	}
	lx.cursor.Bump()
	lx.cursor.Bump()
	return true
}
