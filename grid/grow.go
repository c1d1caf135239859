// SPDX-License-Identifier: MIT

// Package grid - on-demand shape expansion.
//
// Purpose:
//   - Grow a grid to cover a target (row,col) while preserving every value
//     already written and re-establishing strict rectangularity.
//
// The growth contract (the one property owners rely on):
//   - monotonic: row and column counts never decrease;
//   - value-preserving: existing cells keep their exact values;
//   - uniform: after growth every row has the same width again;
//   - idempotent: growing to an in-bounds target is a no-op.

package grid

// GrowTo expands the grid so that (row,col) becomes a valid index.
// MAIN DESCRIPTION:
//   - Auto-expansion primitive: append zero-filled rows, then widen all rows
//     uniformly, so the target cell lands inside the rectangular shape.
//
// Implementation:
//   - Stage 1: reject negative targets (ErrNegativeIndex); growth has no
//     meaning below zero.
//   - Stage 2: while the row count is ≤ row, append a fresh zero-filled row at
//     the pre-growth width. Existing rows are untouched; new rows go at the end.
//   - Stage 3: if col is ≥ the canonical width, extend EVERY row (old and newly
//     appended) with zero cells until its length exceeds col, then record the
//     new width. Uniform extension restores rectangularity.
//
// Behavior highlights:
//   - No-op when (row,col) is already in bounds: shape and values are unchanged.
//   - Never truncates, never reorders rows, never loses a written value.
//   - Repeated calls with the same target are idempotent.
//
// Inputs:
//   - row, col: zero-based target coordinates to be covered.
//
// Returns:
//   - error: nil on success; ErrNegativeIndex for negative targets.
//
// Errors:
//   - ErrNegativeIndex (wrapped with coordinates).
//
// Determinism:
//   - Fixed order: rows first, then columns; fixed zero fill.
//
// Complexity:
//   - Time O(added cells) amortized, Space O(added cells).
//
// Notes:
//   - New rows are allocated at the width BEFORE column growth, then widened
//     together with the old ones; this keeps the uniform-extension step the
//     single place where the canonical width changes.
//   - Growth is unbounded: a far-out target allocates the full covering
//     shape. Owners document this resource characteristic instead of
//     silently capping it.
//
// AI-Hints:
//   - Compose with Set for write-beyond-bounds semantics (grow, then write).
func (g *Grid) GrowTo(row, col int) error {
	// Stage 1: negative targets are a caller contract violation.
	if row < 0 || col < 0 {
		return gridErrorf(ctxGrow, row, col, ErrNegativeIndex)
	}

	// Stage 2: append zero-filled rows at the pre-growth width until row fits.
	for g.r <= row {
		g.cells = append(g.cells, make([]float64, g.c)) // fresh row, current width
		g.r++
	}

	// Stage 3: widen every row uniformly until col fits, then fix the width.
	if g.c <= col {
		var i int
		for i = 0; i < g.r; i++ { // all rows, old and newly appended
			for len(g.cells[i]) <= col {
				g.cells[i] = append(g.cells[i], 0) // zero cell at the row end
			}
		}
		g.c = col + 1 // new canonical width
	}

	return nil
}
