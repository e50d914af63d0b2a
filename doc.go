// Package matcache memoizes expensive matrix inversion behind a mutable
// handle: invert once, reuse the result until the underlying matrix is
// replaced.
//
// 🚀 What is matcache?
//
//	A small, deterministic library for the classic invert-heavy interactive
//	workflow — repeatedly asking for the inverse of "the same" matrix:
//		• cache/  — the single-slot caching Handle and the Solve operation
//		• matrix/ — Matrix interface, row-major Dense, and the default
//		  inversion kernel (Doolittle LU, no pivoting)
//
// ✨ Why matcache?
//
//   - At-most-once guarantee — between any two replacements of the matrix,
//     the O(n³) inversion runs at most once, even with concurrent callers
//   - Observable — cache hits log a diagnostic line and show up in Stats
//   - Pluggable — swap the inversion routine via cache.WithInverter
//   - Honest errors — singular input surfaces as matrix.ErrSingular,
//     checked with errors.Is; nothing is retried or swallowed
//
// Quick example:
//
//	m, _ := matrix.NewDenseFromRows([][]float64{{4, 7}, {2, 6}})
//	h := cache.New(m)
//	inv, _ := cache.Solve(h) // computed
//	inv, _ = cache.Solve(h)  // cached
//
// Dive into the cache package documentation for the full contract.
//
//	go get github.com/katalvlaran/matcache
package matcache
