package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/matcache/matrix"
)

// newRandomDense fills an n×n Dense with reproducible pseudorandoms and a
// dominant diagonal so the matrix stays comfortably invertible.
func newRandomDense(b *testing.B, n int, seed int64) *matrix.Dense {
	b.Helper()
	m, err := matrix.NewDense(n, n)
	if err != nil {
		b.Fatalf("NewDense: %v", err)
	}
	rng := rand.New(rand.NewSource(seed))
	var i, j int // loop iterators
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			v := rng.Float64()*2 - 1
			if i == j {
				v += float64(n) // diagonal dominance
			}
			if err = m.Set(i, j, v); err != nil {
				b.Fatalf("Set(%d,%d): %v", i, j, err)
			}
		}
	}

	return m
}

func BenchmarkMul_32(b *testing.B) {
	x := newRandomDense(b, 32, 1)
	y := newRandomDense(b, 32, 2)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := matrix.Mul(x, y); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkInverse_32(b *testing.B) {
	x := newRandomDense(b, 32, 3)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := matrix.Inverse(x); err != nil {
			b.Fatal(err)
		}
	}
}
