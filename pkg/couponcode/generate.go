package couponcode

import (
	"crypto/rand"
	"errors"
	"strings"
)

// Generate produces a coupon code: delimiter-joined parts of alphabet symbols
// where the last symbol of each part is a positional checkdigit over the
// preceding data symbols. Parts that spell a forbidden word or that would
// survive an adjacent-symbol transposition are rejected and regenerated from
// a rehashed stream.
//
// With WithSeed the output is a pure function of seed, part count and part
// length; otherwise each call draws 8 bytes of cryptographic randomness.
//
// There is no retry cap: a pathological bad-word list that forbids most of
// the part space can keep the rejection loop running for a long time. With
// the built-in list expected retries are negligible.
func Generate(opts ...Option) (string, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	if err := cfg.validate(); err != nil {
		return "", err
	}

	matcher, err := compileBadWords(cfg.badWords)
	if err != nil {
		return "", err
	}

	seed := cfg.seed
	if !cfg.seedSet {
		seed = make([]byte, randomSeedLength)
		if _, err := rand.Read(seed); err != nil {
			return "", errors.Join(ErrFailedToGenerateSeed, err)
		}
	}

	stream := newByteStream(seed)
	parts := make([]string, 0, cfg.parts)
	data := make([]int, cfg.partLength-1)

	// One iteration per attempt. A rejected part rehashes the unconsumed
	// stream so its bytes are never replayed, then the same position is
	// tried again; an accepted part advances to the next position with the
	// stream as consumption left it.
	for pos := 1; pos <= cfg.parts; {
		for i, b := range stream.take(cfg.partLength - 1) {
			data[i] = int(b) % len(symbols)
		}
		check := checkdigit(data, pos)

		part := renderPart(data, check)
		if (matcher != nil && matcher.MatchString(part)) || transposable(data, pos, check) {
			stream.rehash()
			continue
		}

		parts = append(parts, part)
		pos++
	}
	return strings.Join(parts, delimiter), nil
}

// renderPart maps the data indices plus the checkdigit index to their
// symbols.
func renderPart(data []int, check int) string {
	var b strings.Builder
	b.Grow(len(data) + 1)
	for _, i := range data {
		b.WriteByte(symbols[i])
	}
	b.WriteByte(symbols[check])
	return b.String()
}
