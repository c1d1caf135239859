// SPDX-License-Identifier: MIT
// Package grid: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the grid
// package. All operations MUST return these sentinels and tests MUST check them
// via errors.Is. No operation should panic on user-triggered error conditions.
// Panics are reserved for programmer errors in private helpers (if any).

package grid

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "grid: ..." for consistency and to allow
// easy grepping across logs. DO NOT %w wrap these sentinels when returning
// directly; if context is essential, wrap with fmt.Errorf("ctx: %w", ErrX)
// at the outer boundary; callers will still use errors.Is to match.
//
// ERROR PRIORITY (documented, enforced in tests):
// shape/size -> index bounds -> numeric policy.

var (
	// ErrNegativeSize is returned when a requested shape has a negative row or
	// column count. Zero-sized shapes (0×N, N×0, 0×0) are legal and never error.
	ErrNegativeSize = errors.New("grid: dimensions must be non-negative")

	// ErrOutOfRange indicates that an index (row or column) is outside the
	// current bounds. Public indexers (At/Set) MUST return this, not panic.
	ErrOutOfRange = errors.New("grid: index out of range")

	// ErrNegativeIndex indicates a negative row or column passed to a growing
	// write (GrowTo). Growth has no meaningful target below zero, so this is a
	// caller contract violation rather than a bounds miss.
	ErrNegativeIndex = errors.New("grid: index must be non-negative")

	// ErrRagged indicates a nested input whose rows differ in length where a
	// strictly rectangular shape is required (FromCells ingestion).
	ErrRagged = errors.New("grid: all rows must have the same length")

	// ErrNotFinite signals a NaN or ±Inf value was encountered where finite
	// values are required by the numeric policy (Set/FromCells/Apply).
	ErrNotFinite = errors.New("grid: NaN or Inf encountered")
)

// BACKWARD-COMPATIBILITY ALIASES (kept to avoid breaking current callers).
// They are semantically identical sentinels; errors.Is matches through either.

// ErrIndexOutOfBounds historically named the same condition as ErrOutOfRange.
// Keep it as an alias so errors.Is(err, ErrIndexOutOfBounds) remains true.
var ErrIndexOutOfBounds = ErrOutOfRange // Deprecated: use ErrOutOfRange.
