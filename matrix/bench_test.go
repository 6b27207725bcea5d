package matrix_test

import (
	"testing"

	"github.com/katalvlaran/cspath/matrix"
)

func BenchmarkValidateNonNegative(b *testing.B) {
	m, err := matrix.NewSquare(512)
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err = matrix.ValidateNonNegative(m); err != nil {
			b.Fatal(err)
		}
	}
}
