// SPDX-License-Identifier: MIT

// File: sweep.go
// Role: Whole-store per-cell transform pass.
//
// Determinism:
//   - Nodes are visited in creation order; cells row-major within each node.
//
// Concurrency:
//   - Sweep holds the write lock for the whole pass: it observes and produces
//     a single consistent generation of the store.
//
// AI-Hints (file):
//   - Transform is the substitution point for real gating policies; the store
//     itself ships only the shape of the hook and the Constant placeholder.
package lattice

// Transform computes a cell's next value during a Sweep.
//
// It receives the owning node's address and the cell's coordinates so a policy
// can act on position, not just on the current value. Transforms should be
// pure: Sweep applies them in a fixed order and capturing mutable state makes
// the pass order-dependent.
type Transform func(addr Address, row, col int, v float64) float64

// Constant returns a Transform that writes v into every visited cell,
// ignoring the previous value.
//
// Constant(1) is the reference sweep behavior: an unconditional whole-store
// rewrite with no gating decision. Real policies replace it without any
// change to the store.
// Complexity: O(1) per cell.
func Constant(v float64) Transform {
	return func(Address, int, int, float64) float64 { return v }
}

// Sweep applies fn to every cell of every node.
//
// Implementation:
//   - Stage 1: Reject a nil Transform (ErrNilTransform) before locking.
//   - Stage 2: Under the write lock, walk nodes in creation order and apply
//     fn row-major within each grid via grid.Apply.
//
// Behavior highlights:
//   - Shapes never change: Sweep rewrites values, it neither grows nor
//     shrinks any grid.
//   - Deterministic order: creation order across nodes, row-major within.
//   - Under WithFiniteOnly a transform that produces NaN/±Inf aborts the
//     pass; cells written before the abort remain updated (same contract as
//     grid.Apply).
//
// Inputs:
//   - fn: per-cell transform; see Transform.
//
// Returns:
//   - error: nil on success; otherwise a sentinel.
//
// Errors:
//   - ErrNilTransform: fn is nil.
//   - ErrNotFinite: fn produced NaN/±Inf under WithFiniteOnly (wrapped with
//     the offending node's address).
//
// Determinism:
//   - Fixed node and cell order; a pure fn yields a reproducible result.
//
// Complexity:
//   - Time O(total cells), Space O(1).
//
// Notes:
//   - For all-or-nothing semantics under the strict policy, sweep a staging
//     store and swap at the caller level.
//
// AI-Hints:
//   - Keep transforms pure; position-dependent policies get (addr,row,col)
//     for free.
func (s *Store) Sweep(fn Transform) error {
	// Stage 1: a nil transform is a caller contract violation.
	if fn == nil {
		return ErrNilTransform
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// Stage 2: creation-order walk; row-major within each node.
	var addr Address
	var n *Node
	for _, addr = range s.order {
		n = s.nodes[addr]
		bound := addr // fix the address for the per-cell closure
		if err := n.grid.Apply(func(row, col int, v float64) float64 {
			return fn(bound, row, col, v)
		}); err != nil {
			return storeErrorf(ctxSweep, addr, err)
		}
	}

	return nil
}
