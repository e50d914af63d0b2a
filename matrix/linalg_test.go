// Package matrix_test contains unit tests for the linear-algebra kernels.
package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/matcache/matrix"
)

// ---------- Mul ----------

func TestMul_Errors(t *testing.T) {
	t.Parallel()

	var err error

	_, err = matrix.Mul(nil, MustDense(t, 2, 2))
	assert.ErrorIs(t, err, matrix.ErrNilMatrix, "nil left operand")

	_, err = matrix.Mul(MustDense(t, 2, 2), nil)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix, "nil right operand")

	// inner dimension mismatch: (2×3) × (2×2)
	_, err = matrix.Mul(MustDense(t, 2, 3), MustDense(t, 2, 2))
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch, "inner dims must agree")
}

func TestMul_Known2x2(t *testing.T) {
	t.Parallel()

	a := NewFilledDense(t, 2, 2, []float64{1, 2, 3, 4})
	b := NewFilledDense(t, 2, 2, []float64{5, 6, 7, 8})

	c, err := matrix.Mul(a, b)
	if err != nil {
		t.Fatalf("matrix.Mul: %v", err)
	}
	CompareExact(t, [][]float64{{19, 22}, {43, 50}}, c)
}

// TestMul_InterfaceHiding_Fallback ensures that hiding the concrete type
// forces the interface fallback path and produces the same result as the
// Dense fast-path.
func TestMul_InterfaceHiding_Fallback(t *testing.T) {
	t.Parallel()

	a := NewFilledDense(t, 2, 3, []float64{1, 0, -2, 4, 5, 6})
	b := NewFilledDense(t, 3, 2, []float64{7, 8, 0, 1, 2, -3})

	fast, err := matrix.Mul(a, b)
	if err != nil {
		t.Fatalf("matrix.Mul(dense): %v", err)
	}
	slow, err := matrix.Mul(hide{a}, b)
	if err != nil {
		t.Fatalf("matrix.Mul(wrapped): %v", err)
	}
	CompareClose(t, slow, fast, 0, 0)
}

// ---------- LU ----------

func TestLU_Errors(t *testing.T) {
	t.Parallel()

	var err error

	_, _, err = matrix.LU(nil)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)

	_, _, err = matrix.LU(MustDense(t, 3, 4))
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	// zero leading pivot without pivoting → ErrSingular
	zeroPivot := NewFilledDense(t, 2, 2, []float64{0, 1, 1, 0})
	_, _, err = matrix.LU(zeroPivot)
	assert.ErrorIs(t, err, matrix.ErrSingular)
}

// LU must reconstruct: L*U ≈ A, L unit lower triangular, U upper triangular.
func TestLU_Reconstruction(t *testing.T) {
	t.Parallel()

	A := NewFilledDense(t, 3, 3, []float64{4, 7, 2, 3, 6, 1, 2, 5, 3})

	L, U, err := matrix.LU(A)
	if err != nil {
		t.Fatalf("matrix.LU: %v", err)
	}

	var i, j int // loop iterators
	for i = 0; i < 3; i++ {
		if v := MustAt(t, L, i, i); v != 1.0 {
			t.Fatalf("L[%d,%d]=%v; want unit diagonal", i, i, v)
		}
		for j = i + 1; j < 3; j++ {
			if v := MustAt(t, L, i, j); v != 0.0 {
				t.Fatalf("L[%d,%d]=%v; want 0 above the diagonal", i, j, v)
			}
			if v := MustAt(t, U, j, i); v != 0.0 {
				t.Fatalf("U[%d,%d]=%v; want 0 below the diagonal", j, i, v)
			}
		}
	}

	LU, err := matrix.Mul(L, U)
	if err != nil {
		t.Fatalf("matrix.Mul(L,U): %v", err)
	}
	CompareClose(t, LU, A, 1e-12, 1e-12)
}

// ---------- Inverse ----------

func TestInverse_Errors(t *testing.T) {
	t.Parallel()

	var err error

	// nil → ErrNilMatrix
	_, err = matrix.Inverse(nil)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)

	// non-square → ErrDimensionMismatch
	_, err = matrix.Inverse(MustDense(t, 3, 4))
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	// singular (two linearly dependent rows) → ErrSingular
	sing := NewFilledDense(t, 3, 3, []float64{1, 2, 3, 1, 2, 3, 0, 1, 4})
	_, err = matrix.Inverse(sing)
	assert.ErrorIs(t, err, matrix.ErrSingular)
}

// Known 3×3 matrix with det=9. Check the numerical values of the inverse
// (adj(A)/det) and that A*A^{-1}≈I and A^{-1}*A≈I.
func TestInverse_Known3x3_Adjugate(t *testing.T) {
	t.Parallel()

	A := NewFilledDense(t, 3, 3, []float64{4, 7, 2, 3, 6, 1, 2, 5, 3})

	Inv, err := matrix.Inverse(A)
	if err != nil {
		t.Fatalf("matrix.Inverse(A): %v", err)
	}

	// adj(A)/9, where adj(A)^T = cofactors:
	want := [][]float64{
		{13.0 / 9.0, -11.0 / 9.0, -5.0 / 9.0},
		{-7.0 / 9.0, 8.0 / 9.0, 2.0 / 9.0},
		{3.0 / 9.0, -6.0 / 9.0, 3.0 / 9.0},
	}

	var i, j int // loop iterators
	var got float64
	for i = 0; i < 3; i++ {
		for j = 0; j < 3; j++ {
			got = MustAt(t, Inv, i, j)
			if !InDelta(got, want[i][j], 1e-12) {
				t.Fatalf("Inv[%d,%d]=%.6g; want %.6g within 1e-12", i, j, got, want[i][j])
			}
		}
	}

	// Check A*Inv≈I and Inv*A≈I
	Ileft, err := matrix.Mul(A, Inv)
	if err != nil {
		t.Fatalf("matrix.Mul(A, Inv): %v", err)
	}
	Iright, err := matrix.Mul(Inv, A)
	if err != nil {
		t.Fatalf("matrix.Mul(Inv, A): %v", err)
	}
	CompareClose(t, Ileft, Identity(t, 3), 0, 1e-12)
	CompareClose(t, Iright, Identity(t, 3), 0, 1e-12)
}

// A wrapped (non-Dense) input must still invert through the generic path.
func TestInverse_WrappedInput_MatchesDense(t *testing.T) {
	t.Parallel()

	A := NewFilledDense(t, 2, 2, []float64{4, 7, 2, 6})

	fast, err := matrix.Inverse(A)
	if err != nil {
		t.Fatalf("matrix.Inverse(dense): %v", err)
	}
	slow, err := matrix.Inverse(hide{A})
	if err != nil {
		t.Fatalf("matrix.Inverse(wrapped): %v", err)
	}
	CompareClose(t, slow, fast, 0, 1e-15)
}

// ---------- AllClose ----------

func TestAllClose(t *testing.T) {
	t.Parallel()

	a := NewFilledDense(t, 2, 2, []float64{1, 2, 3, 4})
	b := NewFilledDense(t, 2, 2, []float64{1, 2, 3, 4 + 1e-13})

	ok, err := matrix.AllClose(a, b, 0, 1e-12)
	assert.NoError(t, err)
	assert.True(t, ok, "difference below atol must compare close")

	ok, err = matrix.AllClose(a, b, 0, 1e-14)
	assert.NoError(t, err)
	assert.False(t, ok, "difference above atol must not compare close")

	_, err = matrix.AllClose(a, MustDense(t, 2, 3), 0, 0)
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch, "shape mismatch must error")

	_, err = matrix.AllClose(nil, b, 0, 0)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)
}
