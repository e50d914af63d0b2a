// SPDX-License-Identifier: MIT
// Package matrix_test: shared deterministic helpers for the matrix tests.
// All helpers call t.Helper() and fail fast via t.Fatalf so call sites stay
// single-line.

package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/matcache/matrix"
)

// hide wraps a Matrix to conceal its concrete type and force the generic
// interface path inside kernels.
type hide struct{ matrix.Matrix }

// MustDense allocates an r×c Dense or fails the test.
func MustDense(t *testing.T, r, c int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(r, c)
	if err != nil {
		t.Fatalf("NewDense(%d,%d): %v", r, c, err)
	}

	return m
}

// NewFilledDense builds an r×c Dense from flat row-major data.
func NewFilledDense(t *testing.T, r, c int, flat []float64) *matrix.Dense {
	t.Helper()
	if len(flat) != r*c {
		t.Fatalf("NewFilledDense: len(flat)=%d; want %d", len(flat), r*c)
	}
	m := MustDense(t, r, c)
	var i, j int // loop iterators
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			MustSet(t, m, i, j, flat[i*c+j])
		}
	}

	return m
}

// MustSet assigns m[i,j] = v or fails the test.
func MustSet(t *testing.T, m matrix.Matrix, i, j int, v float64) {
	t.Helper()
	if err := m.Set(i, j, v); err != nil {
		t.Fatalf("Set(%d,%d): %v", i, j, err)
	}
}

// MustAt reads m[i,j] or fails the test.
func MustAt(t *testing.T, m matrix.Matrix, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	if err != nil {
		t.Fatalf("At(%d,%d): %v", i, j, err)
	}

	return v
}

// CompareExact asserts that m matches want element for element. Intended
// for integer-like fixtures; use CompareClose for float results.
func CompareExact(t *testing.T, want [][]float64, m matrix.Matrix) {
	t.Helper()
	r, c := m.Rows(), m.Cols()
	if len(want) != r {
		t.Fatalf("CompareExact: Rows = %d; want %d", r, len(want))
	}
	var i, j int // loop iterators
	var v float64
	for i = 0; i < r; i++ {
		if len(want[i]) != c {
			t.Fatalf("CompareExact: Cols[%d] = %d; want %d", i, c, len(want[i]))
		}
		for j = 0; j < c; j++ {
			if v = MustAt(t, m, i, j); v != want[i][j] {
				t.Fatalf("m[%d,%d]=%v; want %v", i, j, v, want[i][j])
			}
		}
	}
}

// CompareClose asserts AllClose(got, want) under (rtol, atol).
func CompareClose(t *testing.T, got, want matrix.Matrix, rtol, atol float64) {
	t.Helper()
	ok, err := matrix.AllClose(got, want, rtol, atol)
	if err != nil {
		t.Fatalf("AllClose: %v", err)
	}
	if !ok {
		t.Fatalf("matrices differ beyond rtol=%g atol=%g:\ngot:\n%v\nwant:\n%v", rtol, atol, got, want)
	}
}

// Identity builds the n×n identity Dense.
func Identity(t *testing.T, n int) *matrix.Dense {
	t.Helper()
	m := MustDense(t, n, n)
	for i := 0; i < n; i++ {
		MustSet(t, m, i, i, 1.0)
	}

	return m
}

// InDelta reports whether |got-want| <= delta, treating NaN as a mismatch.
func InDelta(got, want, delta float64) bool {
	return !math.IsNaN(got) && math.Abs(got-want) <= delta
}
