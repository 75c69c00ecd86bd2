package couponcode

import (
	"fmt"
	"regexp"
	"strings"
)

// defaultBadWords is the built-in forbidden word list, stored under the
// Obfuscate cipher so the source carries no literal profanity.
var defaultBadWords = []string{
	"SHPX", "PHAG", "JNAX", "JNAT", "CVFF", "PBPX", "FUVG",
	"GJNG", "GVGF", "SNEG", "URYY", "ZHSS", "QVPX", "XABO",
	"NEFR", "FUNT", "GBFF", "FYHG", "GHEQ", "FYNT", "PENC",
	"CBBC", "OHGG", "SRPX", "OBBO", "WVFZ", "WVMM", "CUNG",
}

// confusableClass maps each symbol with a lookalike to a character class
// matching either written form, so a bad word is caught no matter which of
// the two confusable spellings a part happens to use.
var confusableClass = map[rune]string{
	'0': "[0O]", 'O': "[0O]",
	'1': "[1I]", 'I': "[1I]",
	'2': "[2Z]", 'Z': "[2Z]",
	'5': "[5S]", 'S': "[5S]",
}

// Obfuscate applies the shift-by-13 substitution cipher used to store bad
// words without their literal text: letters rotate 13 positions within their
// case-preserving 26-letter alphabet, everything else passes through.
// Applying it twice returns the original string, so the same function both
// obfuscates and decodes.
func Obfuscate(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case r >= 'A' && r <= 'Z':
			b.WriteRune('A' + (r-'A'+13)%26)
		case r >= 'a' && r <= 'z':
			b.WriteRune('a' + (r-'a'+13)%26)
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// compileBadWords decodes the obfuscated word list and builds a single
// whole-word matcher over it. Each word is uppercased and stripped to
// alphanumerics before its confusable characters are widened to classes.
// An entry with no alphanumeric characters at all can never match anything
// and is treated as a configuration mistake. An empty list yields a nil
// matcher, which disables filtering.
func compileBadWords(words []string) (*regexp.Regexp, error) {
	if len(words) == 0 {
		return nil, nil
	}
	patterns := make([]string, 0, len(words))
	for _, w := range words {
		var pat strings.Builder
		n := 0
		for _, r := range strings.ToUpper(Obfuscate(w)) {
			if (r < '0' || r > '9') && (r < 'A' || r > 'Z') {
				continue
			}
			n++
			if class, ok := confusableClass[r]; ok {
				pat.WriteString(class)
			} else {
				pat.WriteRune(r)
			}
		}
		if n == 0 {
			return nil, fmt.Errorf("%w: %q has no alphanumeric characters", ErrInvalidBadWord, w)
		}
		patterns = append(patterns, pat.String())
	}
	return regexp.Compile(`\b(?:` + strings.Join(patterns, "|") + `)\b`)
}
