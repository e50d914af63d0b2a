// Package matrix provides the dense linear-algebra primitives backing
// matcache: a minimal Matrix interface, a row-major Dense implementation,
// and the deterministic kernels the cache layer delegates to.
//
// The package provides:
//
//   - Matrix interface (Rows/Cols/At/Set/Clone) with error-returning
//     indexers — no panics on user input.
//   - Dense: contiguous row-major float64 storage, built via NewDense or
//     NewDenseFromRows.
//   - Kernels: Mul, LU (Doolittle, no pivoting), Inverse (LU + triangular
//     solves), AllClose for tolerant comparison.
//
// All kernels validate fail-fast through the central validators and report
// failures as package sentinels (ErrSingular, ErrDimensionMismatch, ...)
// wrapped with an operation tag, so callers match with errors.Is.
//
// Determinism: every kernel uses fixed loop orders and no pivoting, so
// identical inputs produce bit-identical outputs across runs.
package matrix
