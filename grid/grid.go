// SPDX-License-Identifier: MIT

// Package grid - growable rectangular storage (nested rows) & safe accessors.
//
// Purpose:
//   - Provide a row-nested [][]float64 container whose shape can grow on demand (see grow.go).
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Keep traversal determinism (fixed loop orders, no map iteration).
//   - Enforce a numeric policy (optional rejection of NaN/Inf) from a single source of truth.
//
// AI-Hints:
//   - Rows are independent slices so row growth is an append, not a buffer re-layout.
//   - Use Do to accumulate statistics without temporary allocations.
//   - Use Cells/Clone when the caller needs an independent lifetime; At/Set touch live storage.
//   - DefaultFiniteOnly is off; enable WithFiniteOnly() upstream for data-clean pipelines.
//
// Complexity quicksheet:
//   - New/FromCells: O(r*c); At/Set: O(1); Clone/Cells: O(r*c); GrowTo: O(added cells).

package grid

import (
	"fmt"
	"math"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt    = "At"        // method tag used in error wrappers
	ctxSet   = "Set"       // method tag used in error wrappers
	ctxGrow  = "GrowTo"    // method tag used in error wrappers
	ctxApply = "Apply"     // method tag used in error wrappers
	ctxFrom  = "FromCells" // ctor tag for FromCells
)

// ---------- Formatting literals ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// gridErrorf wraps an error with a uniform Grid context and callsite indices.
// MAIN DESCRIPTION:
//   - Attach method context and coordinates to a sentinel error for diagnostics.
//
// Implementation:
//   - Stage 1: format "Grid.<method>(row,col): %w".
//   - Stage 2: return wrapped error.
//
// Behavior highlights:
//   - Stable, human-friendly messages; preserves sentinel via %w.
//
// Inputs:
//   - method: context tag (ctxAt/ctxSet/ctxGrow/...)
//   - row, col: coordinates
//   - err: sentinel (e.g., ErrOutOfRange, ErrNotFinite)
//
// Returns:
//   - error: wrapped with context
//
// Complexity:
//   - Time O(1), Space O(1).
//
// Notes:
//   - Keep tags in constants for grep-ability and consistency.
//
// AI-Hints:
//   - Prefer to wrap at the nearest detection site for precise coordinates.
func gridErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Grid.%s(%d,%d): %w", method, row, col, err)
}

// isNonFinite reports whether v is NaN or ±Inf.
// Complexity: O(1).
func isNonFinite(v float64) bool { return math.IsNaN(v) || math.IsInf(v, 0) }

// Grid is a rectangular, row-nested container of float64 cells.
//   - r,c hold dimensions (rows, cols); zero is legal on either axis.
//   - cells holds one slice per row; len(cells)==r and len(cells[i])==c for every i.
//   - finiteOnly enables optional NaN/Inf rejection on writes (policy default from options.go).
//
// A Grid is NOT goroutine-safe on its own; owners provide synchronization.
type Grid struct {
	r, c       int         // row and column counts (>=0; zero-sized shapes carry no cells)
	cells      [][]float64 // nested row storage, each row exactly c wide
	finiteOnly bool        // numeric guard: reject NaN/Inf on writes when true
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Grid)(nil)

// New creates an r×c zero grid using row-nested storage.
// MAIN DESCRIPTION:
//   - Public constructor for Grid with shape validation and default numeric policy.
//
// Implementation:
//   - Stage 1: validate rows>=0 && cols>=0; else ErrNegativeSize.
//   - Stage 2: resolve options (numeric policy).
//   - Stage 3: allocate one zero-filled slice per row.
//
// Behavior highlights:
//   - No panics on user errors; returns sentinel errors.
//   - Zero-sized shapes (0×N, N×0, 0×0) are legal; growth fills them in later.
//
// Inputs:
//   - rows: non-negative number of rows
//   - cols: non-negative number of columns
//   - opts: optional numeric policy setters (WithFiniteOnly, ...)
//
// Returns:
//   - *Grid: newly allocated grid.
//
// Errors:
//   - ErrNegativeSize (shape contract violation).
//
// Determinism:
//   - Always allocates the same layout for given (rows, cols).
//   - Fixed zero initialization; no randomness.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
//
// Notes:
//   - Unlike fixed-shape matrices, empty dimensions are allowed on purpose:
//     a grid usually starts empty and grows under writes.
//
// AI-Hints:
//   - Prefer this ctor for blank grids; use FromCells to ingest existing data.
func New(rows, cols int, opts ...Option) (*Grid, error) {
	// Validate shape.
	if rows < 0 || cols < 0 {
		return nil, ErrNegativeSize
	}
	// Resolve numeric policy from defaults + setters.
	o := gatherOptions(opts...)

	// Allocate nested rows; make() zero-fills each row deterministically.
	buf := make([][]float64, rows)
	var i int
	for i = 0; i < rows; i++ {
		buf[i] = make([]float64, cols)
	}

	return &Grid{
		r:          rows,
		c:          cols,
		cells:      buf,
		finiteOnly: o.finiteOnly,
	}, nil
}

// FromCells builds a Grid by deep-copying a rectangular nested slice.
// MAIN DESCRIPTION:
//   - Ingestion constructor with strict rectangularity validation and policy checks.
//
// Implementation:
//   - Stage 1: resolve options; handle the zero-row case (legal 0×0).
//   - Stage 2: take the first row's length as the canonical width.
//   - Stage 3: validate each row's length (ErrRagged) and, under the finite-only
//     policy, each value (ErrNotFinite); copy rows into fresh storage.
//
// Behavior highlights:
//   - Input is never aliased: the Grid owns an independent deep copy.
//   - A ragged input is rejected as a whole; no partial ingestion occurs.
//
// Inputs:
//   - cells: nested rows; all rows must share one length (zero rows ⇒ 0×0).
//   - opts: optional numeric policy setters.
//
// Returns:
//   - *Grid: independent grid holding a copy of cells.
//
// Errors:
//   - ErrRagged (rows of differing lengths).
//   - ErrNotFinite (NaN/±Inf under WithFiniteOnly).
//
// Determinism:
//   - Fixed row-major validation and copy order.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
//
// Notes:
//   - An input of N empty rows yields a legal N×0 grid.
//
// AI-Hints:
//   - Validate-then-copy keeps rejected inputs from leaking into storage.
func FromCells(cells [][]float64, opts ...Option) (*Grid, error) {
	o := gatherOptions(opts...)

	rows := len(cells)
	if rows == 0 {
		// Legal empty grid; canonical width is zero.
		return &Grid{r: 0, c: 0, cells: make([][]float64, 0), finiteOnly: o.finiteOnly}, nil
	}
	cols := len(cells[0]) // canonical width taken from the first row

	buf := make([][]float64, rows)
	var i, j int
	for i = 0; i < rows; i++ {
		if len(cells[i]) != cols {
			return nil, fmt.Errorf("Grid.%s: row %d: %w", ctxFrom, i, ErrRagged)
		}
		if o.finiteOnly {
			for j = 0; j < cols; j++ {
				if isNonFinite(cells[i][j]) {
					return nil, gridErrorf(ctxFrom, i, j, ErrNotFinite)
				}
			}
		}
		// Deep copy the validated row.
		buf[i] = make([]float64, cols)
		copy(buf[i], cells[i])
	}

	return &Grid{
		r:          rows,
		c:          cols,
		cells:      buf,
		finiteOnly: o.finiteOnly,
	}, nil
}

// Rows returns the row count. No side effects.
// Complexity: O(1).
func (g *Grid) Rows() int { return g.r }

// Cols returns the column count. No side effects.
// Complexity: O(1).
func (g *Grid) Cols() int { return g.c }

// Shape packs Rows() and Cols() into a single call for convenience.
// Complexity: O(1).
func (g *Grid) Shape() (rows, cols int) { return g.r, g.c }

// IsEmpty reports whether the grid holds no cells (zero rows or zero columns).
// Complexity: O(1).
func (g *Grid) IsEmpty() bool { return g.r == 0 || g.c == 0 }

// checkIndex validates (row,col) against current bounds or returns ErrOutOfRange.
// MAIN DESCRIPTION:
//   - Bounds-check (row,col) for the row-nested storage.
//
// Implementation:
//   - Stage 1: validate 0 ≤ row < g.r.
//   - Stage 2: validate 0 ≤ col < g.c.
//
// Behavior highlights:
//   - Returns a sentinel (ErrOutOfRange) without adding context; public
//     methods (At/Set) will wrap with coordinates and method name.
//
// Inputs:
//   - row, col: coordinates.
//
// Returns:
//   - nil on success; ErrOutOfRange otherwise.
//
// Errors:
//   - ErrOutOfRange when indices are invalid
//
// Complexity:
//   - Time O(1), Space O(1).
//
// Notes:
//   - Keep unexported to avoid accidental panics at public surface.
//
// AI-Hints:
//   - Reuse in At/Set to keep identical bound semantics.
func (g *Grid) checkIndex(row, col int) error {
	if row < 0 || row >= g.r {
		return ErrOutOfRange
	}
	if col < 0 || col >= g.c {
		return ErrOutOfRange
	}

	return nil
}

// At returns the value at (row, col) or ErrOutOfRange.
// MAIN DESCRIPTION:
//   - Safe element read at coordinates; reads never grow the grid.
//
// Implementation:
//   - Stage 1: bounds check via checkIndex.
//   - Stage 2: load from the row slice.
//
// Behavior highlights:
//   - Never panics on out-of-range; returns sentinel error.
//
// Inputs:
//   - row, col: zero-based indices.
//
// Returns:
//   - (value, nil) on success; (0, ErrOutOfRange) on invalid indices.
//
// Errors:
//   - ErrOutOfRange when out of bounds
//
// Determinism:
//   - Stable access cost; no allocations.
//
// Complexity:
//   - Time O(1), Space O(1).
//
// AI-Hints:
//   - Prefer At in external code; internal hot paths may index directly.
func (g *Grid) At(row, col int) (float64, error) {
	if err := g.checkIndex(row, col); err != nil {
		return 0, gridErrorf(ctxAt, row, col, err) // wrap with context
	}

	return g.cells[row][col], nil
}

// Set stores v at (row, col) or returns an error (bounds or numeric policy).
// MAIN DESCRIPTION:
//   - Safe in-bounds element write with optional finite-only policy.
//
// Implementation:
//   - Stage 1: bounds check via checkIndex.
//   - Stage 2: enforce numeric policy (reject NaN/±Inf when enabled).
//   - Stage 3: write into the row slice.
//
// Behavior highlights:
//   - Never panics; returns sentinel errors.
//   - Set does NOT grow: call GrowTo first for out-of-bounds targets.
//   - Numeric policy is a per-instance flag preserved by Clone.
//
// Inputs:
//   - row, col: element coordinates.
//   - v      : value to store.
//
// Returns:
//   - nil on success; errors on invalid indices or rejected values.
//
// Errors:
//   - ErrOutOfRange for bounds; ErrNotFinite for invalid numbers
//
// Determinism:
//   - Direct write; no side-effects beyond the cell.
//
// Complexity:
//   - Time O(1), Space O(1).
//
// Notes:
//   - Policy flag is carried by Clone/FromCells (single source of truth).
//
// AI-Hints:
//   - Compose GrowTo+Set in owners that want write-beyond-bounds semantics.
func (g *Grid) Set(row, col int, v float64) error {
	if err := g.checkIndex(row, col); err != nil {
		return gridErrorf(ctxSet, row, col, err) // wrap with context
	}
	// Numeric policy: optional finite-only enforcement.
	if g.finiteOnly && isNonFinite(v) {
		return gridErrorf(ctxSet, row, col, ErrNotFinite)
	}
	g.cells[row][col] = v // direct write

	return nil
}

// Cells returns a deep copy of the full contents (snapshot, never a view).
// MAIN DESCRIPTION:
//   - Export the grid as an independent nested slice.
//
// Implementation:
//   - Stage 1: allocate the outer slice (possibly zero-length).
//   - Stage 2: copy each row into fresh storage.
//
// Behavior highlights:
//   - Mutating the returned slices never touches grid storage, and vice versa.
//
// Returns:
//   - [][]float64: r rows of c values each; non-nil even when empty.
//
// Determinism:
//   - Fixed row order.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
//
// AI-Hints:
//   - Use At for single values; Cells allocates the full shape.
func (g *Grid) Cells() [][]float64 {
	out := make([][]float64, g.r)
	var i int
	for i = 0; i < g.r; i++ {
		out[i] = make([]float64, g.c)
		copy(out[i], g.cells[i])
	}

	return out
}

// Clone returns a deep copy (new storage, same numeric policy).
// MAIN DESCRIPTION:
//   - Produce an independent Grid with identical shape/data/policy.
//
// Implementation:
//   - Stage 1: deep copy rows via Cells.
//   - Stage 2: rebuild the Grid around the copy, carrying flags.
//
// Behavior highlights:
//   - Independence: mutations do not affect the original.
//
// Returns:
//   - *Grid: independent copy.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
//
// AI-Hints:
//   - For structural copy with transform, consider Apply on a clone.
func (g *Grid) Clone() *Grid {
	return &Grid{
		r:          g.r,
		c:          g.c,
		cells:      g.Cells(),    // deep copy rows
		finiteOnly: g.finiteOnly, // preserve guard policy
	}
}

// String provides a readable row-wise dump for diagnostics.
// Implementation:
//   - Stage 1: iterate rows/cols deterministically.
//   - Stage 2: write values into strings.Builder with standard delimiters.
//
// Behavior highlights:
//   - Not for hot paths; intended for logs and debugging.
//
// Returns:
//   - string: multi-line representation, one "[v, v, ...]" line per row.
//
// Determinism:
//   - Fixed traversal order.
//
// Complexity:
//   - Time O(r*c), Space O(r*c) for formatting.
//
// AI-Hints:
//   - For large grids prefer printing a few rows or summarize.
func (g *Grid) String() string {
	var b strings.Builder
	var i, j int
	for i = 0; i < g.r; i++ { // iterate rows deterministically
		b.WriteString(_fmtRowOpen) // open row
		for j = 0; j < g.c; j++ { // iterate cols
			b.WriteString(fmt.Sprintf("%g", g.cells[i][j]))
			if j+1 < g.c {
				b.WriteString(_fmtSep) // separate values with comma + space
			}
		}
		b.WriteString(_fmtRowClose) // close row
	}

	return b.String()
}

// Do visits each element (row,col) in row-major order and calls f(row,col,v).
// MAIN DESCRIPTION:
//   - Read-only visitor; stops early when f returns false.
//
// Implementation:
//   - Stage 1: nested loops - double for-loop over rows then cols.
//   - Stage 2: call f on each element; stop when f returns false.
//
// Behavior highlights:
//   - Read-only with respect to the callback; no allocations; deterministic order.
//
// Inputs:
//   - f: callback returning continue/stop flag (false to stop early).
//
// Determinism:
//   - Fixed row→col order.
//
// Complexity:
//   - Time O(r*c), Space O(1).
//
// AI-Hints:
//   - Use to accumulate stats without temporary allocations.
func (g *Grid) Do(f func(row, col int, v float64) bool) {
	var i, j int  // predeclare loop counters
	var v float64 // temporary for current value

	for i = 0; i < g.r; i++ { // iterate rows deterministically
		for j = 0; j < g.c; j++ { // iterate columns
			v = g.cells[i][j] // read current element
			if !f(i, j, v) {  // invoke callback; stop if it returns false
				return // early exit requested by caller
			}
		}
	}
}

// Apply replaces each element with f(row,col,v) in-place.
// MAIN DESCRIPTION:
//   - In-place map with policy enforcement and deterministic order.
//
// Implementation:
//   - Stage 1: nested loops - double for-loop over rows then cols.
//   - Stage 2: compute new value; reject NaN/Inf if policy enabled.
//   - Stage 3: write back.
//
// Behavior highlights:
//   - Deterministic row-major order; no extra allocations.
//   - Respects finiteOnly (rejects NaN/±Inf when enabled).
//   - Early error aborts; elements written before the error remain updated.
//
// Inputs:
//   - f: transformer from (row,col,v) to new value.
//
// Returns:
//   - error: ErrNotFinite when the transformer produced non-finite (if policy ON).
//
// Determinism:
//   - Fixed row→col order; side effects are predictable.
//
// Complexity:
//   - Time O(r*c), Space O(1).
//
// Notes:
//   - For all-or-nothing semantics, transform into a clone and swap on success.
//
// AI-Hints:
//   - Keep transforms pure; avoid capturing external mutable state.
func (g *Grid) Apply(f func(row, col int, v float64) float64) error {
	var i, j int      // predeclare loop counters
	var v, nv float64 // old and new values

	for i = 0; i < g.r; i++ { // iterate rows
		for j = 0; j < g.c; j++ { // iterate columns
			v = g.cells[i][j]                 // read current value
			nv = f(i, j, v)                   // compute new value
			if g.finiteOnly && isNonFinite(nv) { // enforce numeric policy if enabled
				return gridErrorf(ctxApply, i, j, ErrNotFinite) // wrap with coordinates
			}
			g.cells[i][j] = nv // write back new value
		}
	}

	return nil // success
}
