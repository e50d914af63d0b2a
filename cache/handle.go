// SPDX-License-Identifier: MIT
// Package cache: the Handle type and its raw accessors.
//
// Invariant: whenever the cached inverse is present, it equals the inverse
// of the wrapped value at the time it was computed. The only way to replace
// the value is SetValue, and SetValue always clears the cache. A generation
// counter ties every cache store to the value it was computed from, so an
// invalidation issued while an inversion is in flight wins over the late
// store and the invariant cannot be violated through this API.

package cache

import (
	"reflect"
	"sync"

	"github.com/katalvlaran/matcache/matrix"
)

// Handle wraps one matrix value together with a single-slot cache holding
// its inverse. The zero value is not usable; construct via New.
//
// Field access is guarded by mu; solveMu serializes the whole
// check-invert-store sequence in Solve so that concurrent callers trigger
// at most one inversion between value replacements.
type Handle struct {
	mu      sync.RWMutex
	solveMu sync.Mutex

	value   matrix.Matrix // current wrapped matrix; may be nil until set
	inverse matrix.Matrix // cached inverse of value, nil = absent
	gen     uint64        // bumped on every SetValue; stale stores are dropped

	hits   uint64 // Solve calls served from the cache
	misses uint64 // Solve calls that invoked the inverter
}

// New constructs a Handle wrapping initial, with an absent cached inverse.
// initial may be nil: such a handle is invalid input for inversion until
// SetValue is called, and Solve surfaces the inverter's own nil-input
// failure. Invertibility is never validated at construction time.
// Complexity: O(1).
func New(initial matrix.Matrix) *Handle {
	return &Handle{value: initial}
}

// Value returns the current wrapped matrix. The matrix is returned as-is
// (no defensive copy); callers mutating it behind the Handle's back forfeit
// the cache invariant, same as sharing any mutable value.
// Complexity: O(1).
func (h *Handle) Value() matrix.Matrix {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return h.value
}

// SetValue replaces the wrapped matrix and unconditionally clears the
// cached inverse — even when m is equal to the current value. The
// invalidation is deliberate: equality of matrices is not checked, a set
// call is the signal that the data may have changed. Bumping the generation
// makes any inversion already in flight land in a dropped store instead of
// repopulating the just-cleared slot. Clearing an already absent cache is a
// benign no-op.
// Complexity: O(1).
func (h *Handle) SetValue(m matrix.Matrix) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.value = m
	h.inverse = nil // sole invalidation rule
	h.gen++
}

// CachedInverse returns the cached inverse and whether it is present.
// Absent means no inversion succeeded since construction or the last
// SetValue. Does not mutate state.
// Complexity: O(1).
func (h *Handle) CachedInverse() (matrix.Matrix, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return h.inverse, h.inverse != nil
}

// SetCachedInverse stores inv into the cache slot unconditionally. This is
// the raw cache-write primitive, not a computation: no dimension check
// against the wrapped value is performed, the caller is trusted to supply a
// matching inverse. Storing nil — including a typed-nil implementation
// wrapped in the interface — clears the slot, so the hit path never sees a
// present-but-nil inverse.
// Complexity: O(1).
func (h *Handle) SetCachedInverse(inv matrix.Matrix) {
	if isNilMatrix(inv) {
		inv = nil
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	h.inverse = inv
}

// Stats reports lifetime Solve counters: hits were served from the cache,
// misses invoked the inverter (successfully or not). Counters survive
// SetValue; they describe the Handle, not the current cache generation.
// Complexity: O(1).
func (h *Handle) Stats() (hits, misses uint64) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return h.hits, h.misses
}

// takeHit checks the slot and bumps the hit counter in one critical
// section; ok reports whether the slot was populated.
func (h *Handle) takeHit() (inv matrix.Matrix, ok bool) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.inverse == nil {
		return nil, false
	}
	h.hits++

	return h.inverse, true
}

// takeMiss bumps the miss counter and returns the current value together
// with its generation, all in one critical section, so a later
// storeIfCurrent can detect an intervening SetValue.
func (h *Handle) takeMiss() (matrix.Matrix, uint64) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.misses++

	return h.value, h.gen
}

// storeIfCurrent stores inv only when gen still matches the handle's
// generation, i.e. no SetValue happened since the matching takeMiss.
// Reports whether the store took place.
func (h *Handle) storeIfCurrent(inv matrix.Matrix, gen uint64) bool {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.gen != gen {
		return false // invalidation wins over the in-flight result
	}
	h.inverse = inv

	return true
}

// isNilMatrix reports whether m is nil or a typed-nil value wrapped in the
// Matrix interface. Calling methods on such a value would panic, so the
// cache slot normalizes it to plain nil.
func isNilMatrix(m matrix.Matrix) bool {
	if m == nil {
		return true
	}
	v := reflect.ValueOf(m)
	switch v.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Func, reflect.Interface:
		return v.IsNil()
	default:
		return false
	}
}
