package couponcode_test

import (
	"testing"

	"github.com/FrancisMurillo/coupon-code-ex/pkg/couponcode"
)

func BenchmarkGenerate(b *testing.B) {
	for i := 0; i < b.N; i++ {
		if _, err := couponcode.Generate(); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkGenerate_Seeded(b *testing.B) {
	seed := couponcode.WithSeed([]byte("benchmark-seed"))

	for i := 0; i < b.N; i++ {
		if _, err := couponcode.Generate(seed); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkGenerate_LongCode(b *testing.B) {
	opts := []couponcode.Option{
		couponcode.WithSeed([]byte("benchmark-seed")),
		couponcode.WithParts(10),
		couponcode.WithPartLength(12),
	}

	for i := 0; i < b.N; i++ {
		if _, err := couponcode.Generate(opts...); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkValidate(b *testing.B) {
	code, err := couponcode.Generate(couponcode.WithSeed([]byte("benchmark-seed")))
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := couponcode.Validate(code); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkValidate_Messy(b *testing.B) {
	// Canonicalization cost: lowercase input with confusables and noise.
	const code = "  i9od / v467 / 8dsz  "

	for i := 0; i < b.N; i++ {
		if _, err := couponcode.Validate(code); err != nil {
			b.Fatal(err)
		}
	}
}
