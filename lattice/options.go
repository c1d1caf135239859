// SPDX-License-Identifier: MIT

// Package lattice: functional configuration for the Store. This file defines:
//   - StoreOption (functional options applied by NewStore),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values).
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
package lattice

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultCapacityHint is the pre-sizing hint for the node index when none
	// is supplied. Zero means "let the runtime grow the map as needed".
	DefaultCapacityHint = 0
)

// The numeric-policy default lives with the policy owner: grid.DefaultFiniteOnly.
// A zero-value Store matches it (finite-only off; every float64 is storable).

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicCapacityNegative = "lattice: WithCapacityHint: hint must be non-negative"
)

// ---------- Public option type (functional) ----------

// StoreOption configures behavior of a Store before creation.
// Constructors MUST panic only on nonsensical values (programmer error).
type StoreOption func(s *Store)

// WithFiniteOnly makes every write path reject NaN/±Inf with ErrNotFinite.
// Implementation:
//   - Stage 1: set finiteOnly=true; grids created by this store inherit it.
//
// Behavior highlights:
//   - Policy is enforced BEFORE any allocation or growth, so a rejected write
//     leaves the store exactly as it was.
//   - Off by default: under defaults a growing Set never fails for
//     non-negative indices.
//
// Returns:
//   - StoreOption: functional setter.
//
// Complexity:
//   - Time O(1), Space O(1).
//
// Notes:
//   - Applies to grids created after the option; NewStore applies it to all.
//
// AI-Hints:
//   - Enable when downstream statistics (inspect package) assume finite data.
func WithFiniteOnly() StoreOption {
	return func(s *Store) { s.finiteOnly = true }
}

// WithCapacityHint pre-sizes the node index for an expected node count.
// Implementation:
//   - Stage 1: validate hint >= 0 (panic on negatives).
//   - Stage 2: return a setter that records the hint for NewStore allocation.
//
// Behavior highlights:
//   - Purely an allocation hint; never bounds the store.
//
// Inputs:
//   - hint: expected number of nodes; must be non-negative.
//
// Returns:
//   - StoreOption: functional setter.
//
// Errors:
//   - Panics with a stable message when hint is negative.
//
// Complexity:
//   - Time O(1), Space O(1).
//
// AI-Hints:
//   - Useful when ingesting a known field of nodes in one pass.
func WithCapacityHint(hint int) StoreOption {
	if hint < 0 {
		panic(panicCapacityNegative)
	}

	// Assign validated hint
	return func(s *Store) { s.capHint = hint }
}
