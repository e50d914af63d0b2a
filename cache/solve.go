// SPDX-License-Identifier: MIT
// Package cache: the Solve operation over a Handle.

package cache

import "github.com/katalvlaran/matcache/matrix"

// Solve returns the inverse of the handle's current matrix, computing it
// only when necessary.
//
// Stage 1 (Hit check): read the cached inverse; if present, log the
// cache-hit diagnostic and return it immediately — no recomputation, no
// access to the wrapped value.
// Stage 2 (Miss): capture the value and its generation, then invoke the
// configured Inverter on it. Failure (singular, non-square, nil value)
// propagates to the caller unrecovered and the cache stays empty.
// Stage 3 (Store): on success, store the result — unless a SetValue landed
// while the inversion was in flight, in which case the invalidation wins,
// the slot stays empty, and the computed inverse is only returned to this
// caller (it belongs to the value that was current when the inversion
// started).
//
// The whole sequence is serialized per Handle, so concurrent Solve calls
// perform at most one inversion between value replacements; later callers
// observe the populated cache.
//
// Errors:
//   - ErrNilHandle          (h == nil).
//   - matrix.ErrSingular    (default inverter, singular value).
//   - matrix.ErrNilMatrix   (default inverter, no matrix set yet).
//   - matrix.ErrDimensionMismatch (default inverter, non-square value).
//
// Complexity: O(1) on a hit; the inverter's cost (O(n^3) for the default)
// on a miss.
func Solve(h *Handle, opts ...Option) (matrix.Matrix, error) {
	if h == nil {
		return nil, ErrNilHandle
	}
	o := gatherOptions(opts...)

	// Serialize check-invert-store so the inversion runs at most once
	// between any two SetValue calls, even under concurrent solvers.
	h.solveMu.Lock()
	defer h.solveMu.Unlock()

	// Hit: one critical section covers the slot check and the counter;
	// the wrapped value is never touched.
	if inv, ok := h.takeHit(); ok {
		o.logger.Info(msgCacheHit, "rows", inv.Rows(), "cols", inv.Cols())

		return inv, nil
	}

	// Miss: the counter, the value, and its generation come from the same
	// critical section, so a concurrent SetValue is detectable below.
	val, gen := h.takeMiss()
	o.logger.Debug("cache empty, inverting")
	inv, err := o.inverter(val)
	if err != nil {
		// No partial cache entry is stored; the slot remains empty.
		return nil, err
	}

	// Populate the slot only if the value is still the one that was
	// inverted; a SetValue issued mid-inversion already cleared the slot
	// and must not be overwritten with a stale inverse.
	if !h.storeIfCurrent(inv, gen) {
		o.logger.Debug("value replaced during inversion, result not cached")
	}

	return inv, nil
}
