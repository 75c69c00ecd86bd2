package couponcode

import (
	"crypto/sha1"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAlphabet(t *testing.T) {
	t.Parallel()

	require.Len(t, symbols, 32)

	seen := make(map[byte]bool, len(symbols))
	for i := 0; i < len(symbols); i++ {
		c := symbols[i]
		assert.False(t, seen[c], "duplicate symbol %q", c)
		seen[c] = true
		assert.EqualValues(t, i, symbolIndex[c])
	}

	// The confusable targets are not part of the alphabet.
	for _, c := range "IOSZ" {
		assert.EqualValues(t, -1, symbolIndex[c], "symbol %q", c)
	}
}

func TestCheckdigit(t *testing.T) {
	t.Parallel()

	// Hand-computed folds for the parts of the known code 1K7Q-CTFM-LMTC.
	tests := []struct {
		data []int
		pos  int
		want int
	}{
		{[]int{1, 19, 7}, 1, 24},   // 1K7 → Q
		{[]int{12, 26, 15}, 2, 21}, // CTF → M
		{[]int{20, 21, 26}, 3, 12}, // LMT → C
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, checkdigit(tt.data, tt.pos))
	}

	// Pure: identical inputs always fold to the identical digit.
	for i := 0; i < 100; i++ {
		assert.Equal(t, 24, checkdigit([]int{1, 19, 7}, 1))
	}

	// The position seeds the fold, so moving a part invalidates it.
	assert.NotEqual(t, checkdigit([]int{1, 19, 7}, 1), checkdigit([]int{1, 19, 7}, 2))
}

func TestTransposable(t *testing.T) {
	t.Parallel()

	data := []int{1, 19, 7}
	check := checkdigit(data, 1)
	assert.False(t, transposable(data, 1, check))
	assert.Equal(t, []int{1, 19, 7}, data, "data must be restored after probing")

	// Equal adjacent symbols make the swap a no-op, which always verifies.
	dup := []int{3, 3, 9}
	assert.True(t, transposable(dup, 1, checkdigit(dup, 1)))

	// Indices 0 and 31 are congruent modulo 31, so swapping the symbols
	// 0 and Y is undetectable and such a part must be rejected.
	tricky := []int{0, 31}
	assert.True(t, transposable(tricky, 1, checkdigit(tricky, 1)))
}

func TestByteStream(t *testing.T) {
	t.Parallel()

	seed := []byte("stream-seed")
	first := sha1.Sum(seed)

	s := newByteStream(seed)
	assert.Equal(t, first[:3], s.take(3))
	assert.Equal(t, first[3:6], s.take(3))

	// Identical seeds replay the identical stream.
	s2 := newByteStream(seed)
	assert.Equal(t, first[:6], s2.take(6))

	// Exhaustion rehashes the short remainder instead of splitting it
	// across two digests.
	s3 := newByteStream(seed)
	assert.Equal(t, first[:19], s3.take(19))
	second := sha1.Sum(first[19:])
	assert.Equal(t, second[:4], s3.take(4))

	// A rejection rehash replaces only the unconsumed bytes.
	s4 := newByteStream(seed)
	_ = s4.take(3)
	s4.rehash()
	want := sha1.Sum(first[3:])
	assert.Equal(t, want[:5], s4.take(5))
}

func TestNormalize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{"i9oD-V467-8Dsz", "190DV4678D52"},
		{"  1k7q / ctfm / lmtc  ", "1K7QCTFMLMTC"},
		{"o0-ii-zz-ss", "00112255"},
		{"", ""},
		{"!@#$", ""},
		{"café", "CAF"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, normalize(tt.in), "input %q", tt.in)
	}
}

func TestCompileBadWords(t *testing.T) {
	t.Parallel()

	m, err := compileBadWords(nil)
	require.NoError(t, err)
	assert.Nil(t, m)

	// Obfuscate("ZONK") == "MBAX"; Z and O widen to confusable classes.
	m, err = compileBadWords([]string{"MBAX"})
	require.NoError(t, err)
	require.NotNil(t, m)
	assert.True(t, m.MatchString("ZONK"))
	assert.True(t, m.MatchString("20NK"))
	assert.True(t, m.MatchString("Z0NK"))
	assert.False(t, m.MatchString("X20NKX"), "no word boundary inside a part")
	assert.False(t, m.MatchString("20N"))

	_, err = compileBadWords([]string{"..."})
	assert.ErrorIs(t, err, ErrInvalidBadWord)
}
