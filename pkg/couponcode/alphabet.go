package couponcode

import (
	"strings"
	"unicode"
)

// symbols is the 32-character code alphabet: the digits plus the uppercase
// letters excluding I, O, S and Z, which are reserved as confusable forms of
// 1, 0, 5 and 2.
const symbols = "0123456789ABCDEFGHJKLMNPQRTUVWXY"

// symbolIndex maps an ASCII byte to its alphabet index, or -1 when the byte
// is not an alphabet symbol.
var symbolIndex [128]int8

func init() {
	for i := range symbolIndex {
		symbolIndex[i] = -1
	}
	for i := 0; i < len(symbols); i++ {
		symbolIndex[symbols[i]] = int8(i)
	}
}

// foldConfusable maps the characters commonly mistyped for alphabet symbols
// to their canonical forms: O→0, I→1, Z→2, S→5. Every other rune passes
// through unchanged.
func foldConfusable(r rune) rune {
	switch r {
	case 'O':
		return '0'
	case 'I':
		return '1'
	case 'Z':
		return '2'
	case 'S':
		return '5'
	}
	return r
}

// normalize canonicalizes arbitrary user input: uppercases it, folds the four
// confusable characters and drops everything outside 0-9A-Z. The result
// consists solely of alphabet symbols, since the only letters missing from
// the alphabet are exactly the four that were folded away.
func normalize(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		r = foldConfusable(unicode.ToUpper(r))
		if (r >= '0' && r <= '9') || (r >= 'A' && r <= 'Z') {
			b.WriteRune(r)
		}
	}
	return b.String()
}
