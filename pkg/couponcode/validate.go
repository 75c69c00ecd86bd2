package couponcode

import "strings"

// Validate checks a user-entered code against the expected shape and the
// per-part checkdigits. Input handling is forgiving: any case, any run (or
// absence) of separator characters and the four confusable characters
// (o→0, i→1, z→2, s→5) are all accepted. On success it returns the canonical
// form of the code — uppercase, folded and re-joined with "-" — which is the
// form to store and compare against.
//
// The two failure kinds carry position-specific detail:
// *PartsCountMismatchError when the normalized input does not split into the
// expected number of parts, and *PartInvalidError naming the zero-based index
// of the first part whose checkdigit does not verify. Both match their
// sentinel under errors.Is. A trailing group shorter than the part length is
// discarded before counting.
func Validate(code string, opts ...Option) (string, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	if err := cfg.validate(); err != nil {
		return "", err
	}

	norm := normalize(code)
	count := len(norm) / cfg.partLength
	if count != cfg.parts {
		return "", &PartsCountMismatchError{Actual: count, Expected: cfg.parts}
	}

	parts := make([]string, cfg.parts)
	data := make([]int, cfg.partLength-1)
	for p := 0; p < cfg.parts; p++ {
		part := norm[p*cfg.partLength : (p+1)*cfg.partLength]

		// normalize emits only alphabet symbols, so the lookups cannot miss;
		// the guard keeps an out-of-alphabet symbol from panicking and fails
		// the part instead.
		ok := true
		for i := 0; i < len(part)-1; i++ {
			idx := symbolIndex[part[i]]
			if idx < 0 {
				ok = false
				break
			}
			data[i] = int(idx)
		}
		check := symbolIndex[part[len(part)-1]]
		if !ok || check < 0 || checkdigit(data, p+1) != int(check) {
			return "", &PartInvalidError{PartIndex: p}
		}
		parts[p] = part
	}
	return strings.Join(parts, delimiter), nil
}
