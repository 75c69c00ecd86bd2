// Package couponcode generates and validates short alphanumeric codes meant
// to be read over the phone or typed from a postcard, in the style of
// "1K7Q-CTFM-LMTC". Codes are built to survive the mistakes humans actually
// make when transcribing them.
//
// Each code is a sequence of fixed-length parts joined by dashes. The last
// symbol of every part is a checkdigit computed over the preceding data
// symbols and the part's position, so single-symbol corruption, swapped
// adjacent symbols and reordered parts are all caught at validation time.
// The 32-symbol alphabet omits the letters I, O, S and Z; when a user types
// them anyway they are folded to 1, 0, 5 and 2 before checking. Candidate
// parts that would spell an offensive word, even through lookalike
// characters, are rejected during generation, as are parts whose checkdigit
// would still verify after an adjacent-symbol swap.
//
// # Usage
//
// Import the package:
//
//	import "github.com/FrancisMurillo/coupon-code-ex/pkg/couponcode"
//
// Generate a code with the default shape (3 parts of 4 symbols):
//
//	code, err := couponcode.Generate()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	// e.g. "55G2-DHM0-50NN"
//
// Check what a user typed, in whatever shape they typed it:
//
//	canonical, err := couponcode.Validate("i9oD/v467/8dsz")
//	if err != nil {
//	    var partErr *couponcode.PartInvalidError
//	    if errors.As(err, &partErr) {
//	        // tell the user which group to re-enter
//	    }
//	}
//	// canonical == "190D-V467-8D52"
//
// Store and compare the canonical string returned by Validate, never the raw
// user input.
//
// # Determinism
//
// Passing WithSeed makes Generate a pure function of the seed and the code
// shape, which is how tests and idempotent batch jobs get reproducible codes:
//
//	code, _ := couponcode.Generate(couponcode.WithSeed([]byte("1234567890")))
//	// always "1K7Q-CTFM-LMTC"
//
// Without a seed, each call draws fresh bytes from crypto/rand.
//
// # Bad words
//
// The built-in forbidden word list ships ROT13-obfuscated, and a replacement
// list passed through WithBadWords is expected in the same form so that
// configuration files never contain the literal words. Obfuscate is its own
// inverse and serves both directions:
//
//	couponcode.Generate(couponcode.WithBadWords(couponcode.Obfuscate("GRUMP")))
//
// Rejection sampling has no retry cap: a list that forbids most of the part
// space can stall generation indefinitely. Keep lists short.
//
// # Concurrency
//
// The package holds no mutable state. Every call builds its own byte stream
// and matcher, so concurrent use needs no coordination.
package couponcode
