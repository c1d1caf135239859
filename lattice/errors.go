// SPDX-License-Identifier: MIT
// Package lattice: sentinel error set (unified, consistent).
// This file defines the package-level sentinel errors used across the lattice
// package. All operations MUST return these sentinels and tests MUST check them
// via errors.Is. No operation should panic on user-triggered error conditions;
// panics are reserved for nonsensical option-constructor arguments.

package lattice

import (
	"errors"

	"github.com/katalvlaran/neurogrid/grid"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every lattice-owned message is prefixed with "lattice: ..." for consistency
// and to allow easy grepping across logs. DO NOT %w wrap these sentinels when
// returning directly; if context is essential, wrap with
// fmt.Errorf("ctx: %w", ErrX) at the outer boundary; callers will still use
// errors.Is to match.
//
// ERROR PRIORITY (documented, enforced in tests):
// argument validation (negative index/size, ragged, nil transform)
// -> node lookup (not found) -> cell bounds -> numeric policy.

var (
	// ErrNodeNotFound indicates a read referenced an address with no node.
	// Only read accessors (At/Cells) raise it; writes create nodes lazily and
	// Shape answers (0,0) for unknown addresses instead of failing.
	ErrNodeNotFound = errors.New("lattice: node not found")

	// ErrNilTransform indicates Sweep was handed a nil Transform.
	ErrNilTransform = errors.New("lattice: transform is nil")
)

// GRID SENTINEL ALIASES
// ---------------------
// Cell-level conditions are detected inside the grid package and surface
// through Store methods. The grid sentinels are re-exported under lattice
// names so callers can match with errors.Is against either package without
// importing both. They are semantically identical sentinels, not copies.

var (
	// ErrOutOfRange aliases grid.ErrOutOfRange: an index outside the current
	// shape on a read path (reads never grow).
	ErrOutOfRange = grid.ErrOutOfRange

	// ErrNegativeIndex aliases grid.ErrNegativeIndex: a negative row/col on a
	// growing write, where expansion has no meaningful target.
	ErrNegativeIndex = grid.ErrNegativeIndex

	// ErrNegativeSize aliases grid.ErrNegativeSize: a negative dimension
	// passed to Ensure.
	ErrNegativeSize = grid.ErrNegativeSize

	// ErrRagged aliases grid.ErrRagged: a SetGrid input whose rows differ in
	// length.
	ErrRagged = grid.ErrRagged

	// ErrNotFinite aliases grid.ErrNotFinite: NaN/±Inf rejected under the
	// finite-only policy (see WithFiniteOnly).
	ErrNotFinite = grid.ErrNotFinite
)
