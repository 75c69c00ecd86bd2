package couponcode

import "fmt"

// Bounds and defaults for code shape.
const (
	MinPartLength = 2
	MaxPartLength = 20

	DefaultParts      = 3
	DefaultPartLength = 4
)

const (
	// delimiter joins parts into the canonical code form.
	delimiter = "-"

	// randomSeedLength is how many cryptographically random bytes seed the
	// stream when no explicit seed is supplied.
	randomSeedLength = 8
)

// Option configures code generation and validation behavior.
type Option func(*config)

type config struct {
	parts      int
	partLength int
	seed       []byte
	seedSet    bool
	badWords   []string
}

func defaultConfig() *config {
	return &config{
		parts:      DefaultParts,
		partLength: DefaultPartLength,
		badWords:   defaultBadWords,
	}
}

// WithParts sets how many delimiter-separated parts the code has.
// Default is 3.
func WithParts(n int) Option {
	return func(c *config) {
		c.parts = n
	}
}

// WithPartLength sets the number of symbols per part, checkdigit included.
// Default is 4.
func WithPartLength(n int) Option {
	return func(c *config) {
		c.partLength = n
	}
}

// WithSeed makes generation deterministic: the same seed, part count and part
// length always produce the same code. Without a seed every call draws fresh
// cryptographic randomness. Validation ignores the seed.
func WithSeed(seed []byte) Option {
	return func(c *config) {
		c.seed = seed
		c.seedSet = true
	}
}

// WithBadWords replaces the built-in forbidden word list. Words are supplied
// in the Obfuscate-ciphered form so configuration never carries their literal
// text. Calling it with no words disables filtering entirely. Validation
// ignores the list.
func WithBadWords(words ...string) Option {
	return func(c *config) {
		c.badWords = words
	}
}

// validate rejects out-of-range configuration before any algorithmic work.
func (c *config) validate() error {
	if c.parts < 1 {
		return fmt.Errorf("%w: got %d", ErrPartsOutOfRange, c.parts)
	}
	if c.partLength < MinPartLength || c.partLength > MaxPartLength {
		return fmt.Errorf("%w: got %d", ErrPartLengthOutOfRange, c.partLength)
	}
	if c.seedSet && len(c.seed) == 0 {
		return ErrEmptySeed
	}
	return nil
}
