// SPDX-License-Identifier: MIT
// Package cache: sentinel error set. Tests MUST check these via errors.Is.
// Inversion failures are not redeclared here: matrix.ErrSingular (and any
// error from a caller-supplied inverter) propagates through Solve unchanged.

package cache

import "errors"

// ErrNilHandle indicates that a nil *Handle was passed to Solve.
var ErrNilHandle = errors.New("cache: nil handle")
