package couponcode_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/FrancisMurillo/coupon-code-ex/pkg/couponcode"
)

func TestObfuscate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"uppercase", "HELLO", "URYYB"},
		{"mixed case preserved", "Hello", "Uryyb"},
		{"punctuation passes through", "hello, world!", "uryyb, jbeyq!"},
		{"digits pass through", "1K7Q", "1X7D"},
		{"digits only", "12345", "12345"},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, couponcode.Obfuscate(tt.in))
		})
	}
}

func TestObfuscate_Involution(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"HELLO", "Uryyb", "1K7Q-CTFM-LMTC", "", "The quick brown fox; 42!",
	}
	for _, in := range inputs {
		assert.Equal(t, in, couponcode.Obfuscate(couponcode.Obfuscate(in)), "input %q", in)
	}
}
