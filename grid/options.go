// SPDX-License-Identifier: MIT

// Package grid: functional configuration for the numeric policy. This file
// defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors,
//   - gatherOptions helper (internal) that enforces invariants.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Reusability: Options fields are unexported; public APIs consume ...Option.
package grid

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultFiniteOnly toggles strict finite-value validation on Set,
	// FromCells ingestion, and Apply transforms.
	//
	// IMPORTANT:
	//   - The default is OFF: a growing write never fails for a non-negative
	//     index, which keeps auto-expansion unconditional.
	//   - Enable WithFiniteOnly() in data-clean pipelines where NaN/±Inf must
	//     never enter storage.
	DefaultFiniteOnly = false
)

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// It is intentionally opaque to prevent external mutation; public entry
// points accept `...Option` and internally resolve them via gatherOptions.
type Options struct {
	finiteOnly bool // DefaultFiniteOnly; reject NaN/±Inf on writes when true
}

// ---------- Constructors (WithX) ----------

// WithFiniteOnly enables strict finite-value validation.
// Implementation:
//   - Stage 1: set finiteOnly=true.
//
// Behavior highlights:
//   - When enabled, NaN and ±Inf are rejected by Set/FromCells/Apply with
//     ErrNotFinite; the grid is left unchanged by the rejected write.
//
// Returns:
//   - Option: functional setter.
//
// Complexity:
//   - Time O(1), Space O(1).
//
// Notes:
//   - The flag propagates on creation and is preserved by Clone.
//
// AI-Hints:
//   - Keep this enabled when downstream statistics assume finite data.
func WithFiniteOnly() Option {
	return func(o *Options) { o.finiteOnly = true }
}

// WithAnyValue disables finite-value validation (the default).
// Implementation:
//   - Stage 1: set finiteOnly=false.
//
// Behavior highlights:
//   - NaN/±Inf pass through on writes; growth semantics are unaffected.
//
// Returns:
//   - Option: functional setter.
//
// Complexity:
//   - Time O(1), Space O(1).
//
// AI-Hints:
//   - Combine with a later Apply pass if external data needs sanitizing.
func WithAnyValue() Option {
	return func(o *Options) { o.finiteOnly = false }
}

// --------------------------- Option Resolution ---------------------------

// gatherOptions applies user-provided Option setters on top of defaults.
// This is the canonical internal entry for constructors.
// Implementation:
//   - Stage 1: start from documented defaults (single source of truth).
//   - Stage 2: apply setters in order (last-writer-wins).
//
// Behavior highlights:
//   - Pure function; no side effects beyond producing a value.
//
// Inputs:
//   - user: sequence of Option setters.
//
// Returns:
//   - Options: fully resolved configuration.
//
// Determinism:
//   - Stable for a given sequence of setters.
//
// Complexity:
//   - Time O(k), Space O(1) for k=len(user).
//
// AI-Hints:
//   - Prefer gatherOptions(...) over ad-hoc defaulting in callers.
func gatherOptions(user ...Option) Options {
	o := Options{
		finiteOnly: DefaultFiniteOnly,
	}
	for _, set := range user {
		set(&o) // apply in order; last-writer-wins semantics
	}

	return o
}
