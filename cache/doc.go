// Package cache implements a single-slot memoizing wrapper around matrix
// inversion: a Handle owns one matrix and the (optional) cached inverse of
// it, and Solve returns that inverse while guaranteeing the expensive
// inversion runs at most once between any two replacements of the matrix.
//
// 🚀 What is a Handle?
//
//	A Handle is the single point of mutation for its matrix. Because every
//	replacement goes through SetValue, the Handle can clear the cached
//	inverse at exactly the right moment — that invalidation rule is the
//	whole design:
//	  • New(m)            — wrap a matrix; cache starts absent
//	  • SetValue(m)       — replace the matrix; cache cleared unconditionally
//	  • Solve(h)          — cached inverse if present, else invert and store
//
// ✨ Key features:
//   - single-slot cache with manual invalidation — no LRU, no eviction policy
//   - pluggable inversion routine (WithInverter); matrix.Inverse by default
//   - cache hits are observable: a diagnostic line is logged on every hit
//     (WithLogger to redirect), and Stats reports hit/miss counters
//   - safe for concurrent use: the check-invert-store sequence is
//     serialized per Handle
//
// ⚙️ Usage:
//
//	import (
//	  "github.com/katalvlaran/matcache/cache"
//	  "github.com/katalvlaran/matcache/matrix"
//	)
//
//	m, _ := matrix.NewDenseFromRows([][]float64{{4, 7}, {2, 6}})
//	h := cache.New(m)
//
//	inv, err := cache.Solve(h) // computes and caches
//	inv, err = cache.Solve(h)  // served from cache, logs "using cached inverse"
//
//	h.SetValue(other)          // cache cleared, next Solve recomputes
//
// Failed inversions (singular input, matrix.ErrSingular) propagate to the
// caller and leave the cache empty; a corrected SetValue + Solve succeeds.
//
// See example_test.go for runnable examples.
package cache
