// SPDX-License-Identifier: MIT

// File: store.go
// Role: Store lifecycle, node creation, and all cell access paths.
//
// Determinism:
//   - Addresses() returns creation order, stable across the store's lifetime.
//   - All per-node traversal is row-major with fixed loop order.
//
// Concurrency:
//   - One sync.RWMutex guards the node index, the order slice, and every grid:
//     write lock for Ensure/SetGrid/Set/Sweep, read lock for At/Cells/Shape/
//     HasNode/NodeCount/Addresses. Readers run concurrently with each other,
//     never with a mutation.
//
// AI-Hints (file):
//   - Argument validation happens before the lock and before any allocation,
//     so a rejected call leaves the store untouched.
//   - Addresses() is the stable enumeration surface; rely on it for
//     reproducible sweeps and reports.
package lattice

import (
	"fmt"
	"math"
	"sync"

	"github.com/katalvlaran/neurogrid/grid"
)

// ---------- error context tags ----------

const (
	ctxEnsure  = "Ensure"  // method tag used in error wrappers
	ctxSetGrid = "SetGrid" // method tag used in error wrappers
	ctxCells   = "Cells"   // method tag used in error wrappers
	ctxAt      = "At"      // method tag used in error wrappers
	ctxSet     = "Set"     // method tag used in error wrappers
	ctxSweep   = "Sweep"   // method tag used in error wrappers
)

// storeErrorf wraps an error with a uniform Store context and the target address.
// MAIN DESCRIPTION:
//   - Attach method context and the node address to a sentinel error.
//
// Implementation:
//   - Stage 1: format "Store.<method>((x,y,z)): %w".
//   - Stage 2: return wrapped error.
//
// Behavior highlights:
//   - Stable, human-friendly messages; preserves sentinel via %w.
//
// Inputs:
//   - method: context tag (ctxEnsure/ctxAt/...)
//   - addr: target address
//   - err: sentinel or an already-wrapped grid error
//
// Returns:
//   - error: wrapped with context
//
// Complexity:
//   - Time O(1), Space O(1).
//
// AI-Hints:
//   - Cell-indexed sites add [row,col] inline for precise coordinates.
func storeErrorf(method string, addr Address, err error) error {
	return fmt.Errorf("Store.%s(%s): %w", method, addr, err)
}

// Store is the sparse, addressable collection of nodes.
//
// It owns the address→node index, an auxiliary creation-order list used for
// stable enumeration, and the numeric policy inherited by every grid it
// creates. Nodes are created lazily by writes and never deleted.
// mu protects all three; see the file header for the locking discipline.
type Store struct {
	mu sync.RWMutex // guards nodes, order, and every node's grid

	// Configuration flags
	finiteOnly bool // reject NaN/±Inf on writes when true
	capHint    int  // pre-sizing hint for the node index

	// Storage
	nodes map[Address]*Node // address → node (structured composite key)
	order []Address         // addresses in creation order (stable enumeration)
}

// NewStore creates an empty Store with the given options.
// By default the store accepts any float64 value and starts unsized.
// Complexity: O(1)
func NewStore(opts ...StoreOption) *Store {
	s := &Store{}
	// Apply options
	for _, opt := range opts {
		opt(s)
	}
	s.nodes = make(map[Address]*Node, s.capHint)
	s.order = make([]Address, 0, s.capHint)

	return s
}

// gridOpts translates the store's policy into grid constructor options.
// Complexity: O(1).
func (s *Store) gridOpts() []grid.Option {
	if s.finiteOnly {
		return []grid.Option{grid.WithFiniteOnly()}
	}

	return nil
}

// Ensure returns the node at addr, creating it with a rows×cols zero grid if
// absent (idempotent).
//
// Implementation:
//   - Stage 1: Under the write lock, return the existing node if present.
//   - Stage 2: Otherwise build a zero grid (shape validated by grid.New),
//     register the node in the index, and append addr to the creation order.
//
// Behavior highlights:
//   - Idempotent: an existing node is returned as-is; the requested shape is
//     ignored for it (no resize, no merge).
//   - Zero shapes (0×N, N×0, 0×0) are legal and yield an empty grid.
//   - The returned handle exposes the immutable address only; cell access
//     flows through Store methods so the locking discipline holds.
//
// Inputs:
//   - addr: target address.
//   - rows, cols: initial shape for a newly created node; must be non-negative.
//
// Returns:
//   - *Node: the (possibly new) node at addr.
//   - error: nil on success; otherwise a sentinel.
//
// Errors:
//   - ErrNegativeSize: rows or cols is negative (store unchanged).
//
// Determinism:
//   - Creation order is observable via Addresses() and never reshuffles.
//
// Complexity:
//   - Time O(rows*cols) for a new node, O(1) for an existing one.
//
// Notes:
//   - Ensure is the only way to obtain a *Node handle; reads by address
//     (At/Cells/Shape) never create nodes.
//
// AI-Hints:
//   - Prefer Ensure in setup when you want explicit node presence before
//     writing cells; plain Set also creates nodes lazily.
func (s *Store) Ensure(addr Address, rows, cols int) (*Node, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Stage 1: existing node wins; requested shape is ignored.
	if n, exists := s.nodes[addr]; exists {
		return n, nil // no-op for existing node
	}

	// Stage 2: build the zero grid; grid.New validates the shape.
	g, err := grid.New(rows, cols, s.gridOpts()...)
	if err != nil {
		return nil, storeErrorf(ctxEnsure, addr, err)
	}

	n := &Node{addr: addr, grid: g}
	s.nodes[addr] = n
	s.order = append(s.order, addr)

	return n, nil
}

// SetGrid unconditionally replaces the entire grid at addr, creating the node
// first if absent.
//
// Implementation:
//   - Stage 1: Validate and deep-copy the input via grid.FromCells BEFORE
//     taking the lock (ragged or non-finite input never touches state).
//   - Stage 2: Under the write lock, swap the node's grid, or register a new
//     node sized exactly to the input.
//
// Behavior highlights:
//   - Overwrite semantics: prior contents and growth history are discarded;
//     this is the one path where a node's shape may shrink.
//   - The input is copied, never aliased; later caller mutations are invisible.
//   - An empty input ([][]float64{} or nil) yields a legal 0×0 grid.
//
// Inputs:
//   - addr: target address.
//   - cells: rectangular nested rows (rows = len(cells), cols = len(cells[0])).
//
// Returns:
//   - error: nil on success; otherwise a sentinel.
//
// Errors:
//   - ErrRagged: rows of differing lengths (store unchanged).
//   - ErrNotFinite: NaN/±Inf under WithFiniteOnly (store unchanged).
//
// Determinism:
//   - A first-time SetGrid appends to the creation order exactly like Ensure.
//
// Complexity:
//   - Time O(rows*cols), Space O(rows*cols).
//
// Notes:
//   - Rectangularity is enforced here so subsequent single-cell growth always
//     starts from a uniform width.
//
// AI-Hints:
//   - Use SetGrid for bulk ingestion; use Set for sparse single-cell writes.
func (s *Store) SetGrid(addr Address, cells [][]float64) error {
	// Stage 1: validate-then-copy outside the lock; rejected input is a no-op.
	g, err := grid.FromCells(cells, s.gridOpts()...)
	if err != nil {
		return storeErrorf(ctxSetGrid, addr, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// Stage 2: swap or register.
	if n, exists := s.nodes[addr]; exists {
		n.grid = g // full overwrite; prior shape and values are discarded

		return nil
	}
	s.nodes[addr] = &Node{addr: addr, grid: g}
	s.order = append(s.order, addr)

	return nil
}

// Cells returns a deep-copy snapshot of the full grid at addr.
//
// Implementation:
//   - Stage 1: Under the read lock, look up the node (ErrNodeNotFound).
//   - Stage 2: Export an independent copy via grid.Cells.
//
// Behavior highlights:
//   - Snapshot, never a live view: mutating the result cannot bypass the
//     store's growth invariants or locking.
//
// Inputs:
//   - addr: target address.
//
// Returns:
//   - [][]float64: rows×cols copy, non-nil even when the grid is empty.
//   - error: nil on success; otherwise a sentinel.
//
// Errors:
//   - ErrNodeNotFound: no node was ever created at addr.
//
// Determinism:
//   - Fixed row order.
//
// Complexity:
//   - Time O(rows*cols), Space O(rows*cols).
//
// AI-Hints:
//   - Prefer At for single cells; Cells allocates the full shape.
func (s *Store) Cells(addr Address) ([][]float64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	n, exists := s.nodes[addr]
	if !exists {
		return nil, storeErrorf(ctxCells, addr, ErrNodeNotFound)
	}

	return n.grid.Cells(), nil
}

// At returns the value of one cell at addr.
//
// Implementation:
//   - Stage 1: Under the read lock, look up the node (ErrNodeNotFound).
//   - Stage 2: Bounds-checked read via grid.At; reads never grow.
//
// Behavior highlights:
//   - Strict by bounds: any index outside the current shape (negatives
//     included) answers ErrOutOfRange; no implicit growth on read.
//
// Inputs:
//   - addr: target address.
//   - row, col: zero-based cell coordinates.
//
// Returns:
//   - float64: the cell value.
//   - error: nil on success; otherwise a sentinel.
//
// Errors:
//   - ErrNodeNotFound: no node at addr.
//   - ErrOutOfRange: (row,col) outside the node's current shape.
//
// Determinism:
//   - Pure query; no side effects.
//
// Complexity:
//   - Time O(1), Space O(1).
//
// AI-Hints:
//   - Pair with Shape when probing unknown nodes; Shape never fails.
func (s *Store) At(addr Address, row, col int) (float64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	n, exists := s.nodes[addr]
	if !exists {
		return 0, storeErrorf(ctxAt, addr, ErrNodeNotFound)
	}

	v, err := n.grid.At(row, col)
	if err != nil {
		return 0, storeErrorf(ctxAt, addr, err)
	}

	return v, nil
}

// Set writes one cell at addr, creating the node and growing its grid as
// needed so the write always lands.
//
// Implementation:
//   - Stage 1: Validate the coordinates (ErrNegativeIndex) and, under the
//     finite-only policy, the value (ErrNotFinite), both BEFORE any lock,
//     allocation, or growth.
//   - Stage 2: Under the write lock, create an absent node sized exactly
//     (row+1)×(col+1), or grow an existing grid via GrowTo.
//   - Stage 3: Perform the now-in-bounds write.
//
// Behavior highlights:
//   - Never fails for non-negative coordinates under the default policy:
//     the grid expands monotonically to cover the target.
//   - Fail-fast ordering: a rejected write leaves the store exactly as it
//     was (no node created, no growth performed).
//   - Growth preserves every previously written value (see grid.GrowTo).
//
// Inputs:
//   - addr: target address.
//   - row, col: zero-based cell coordinates; must be non-negative.
//   - v: value to store.
//
// Returns:
//   - error: nil on success; otherwise a sentinel.
//
// Errors:
//   - ErrNegativeIndex: row or col is negative.
//   - ErrNotFinite: NaN/±Inf under WithFiniteOnly.
//
// Determinism:
//   - A first-time Set appends to the creation order exactly like Ensure.
//
// Complexity:
//   - Time O(added cells) when growing, O(1) in bounds.
//
// Notes:
//   - Far-out targets allocate the full covering shape; growth is unbounded
//     and documented as a resource characteristic.
//
// AI-Hints:
//   - For bulk loads prefer SetGrid; repeated far-out Sets re-walk rows.
func (s *Store) Set(addr Address, row, col int, v float64) error {
	// Stage 1: argument validation before any state is touched.
	if row < 0 || col < 0 {
		return fmt.Errorf("Store.%s(%s)[%d,%d]: %w", ctxSet, addr, row, col, ErrNegativeIndex)
	}
	if s.finiteOnly && (math.IsNaN(v) || math.IsInf(v, 0)) {
		return fmt.Errorf("Store.%s(%s)[%d,%d]: %w", ctxSet, addr, row, col, ErrNotFinite)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// Stage 2: create the minimal covering node, or grow the existing grid.
	n, exists := s.nodes[addr]
	if !exists {
		g, err := grid.New(row+1, col+1, s.gridOpts()...)
		if err != nil {
			return storeErrorf(ctxSet, addr, err)
		}
		n = &Node{addr: addr, grid: g}
		s.nodes[addr] = n
		s.order = append(s.order, addr)
	} else if err := n.grid.GrowTo(row, col); err != nil {
		return storeErrorf(ctxSet, addr, err)
	}

	// Stage 3: in-bounds write (policy re-checked by the grid, already passed).
	if err := n.grid.Set(row, col, v); err != nil {
		return storeErrorf(ctxSet, addr, err)
	}

	return nil
}

// Shape returns the current grid shape at addr, or (0,0) for an unknown
// address.
//
// Implementation:
//   - Stage 1: Acquire the read lock and look up the node.
//   - Stage 2: Missing node answers the lenient (0,0); otherwise grid.Shape.
//
// Behavior highlights:
//   - Lenient by contract: unlike At/Cells, Shape never fails; probing an
//     address that was never written is an ordinary query.
//
// Returns:
//   - rows, cols: current shape, or (0,0) when no node exists.
//
// Errors:
//   - None (pure query).
//
// Complexity:
//   - Time O(1), Space O(1).
//
// AI-Hints:
//   - "(0,0) and HasNode()==false" distinguishes absent from present-but-empty.
func (s *Store) Shape(addr Address) (rows, cols int) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	n, exists := s.nodes[addr]
	if !exists {
		return 0, 0
	}

	return n.grid.Shape()
}

// HasNode reports whether a node exists at addr.
//
// Implementation:
//   - Stage 1: Acquire the read lock and check index membership.
//
// Returns:
//   - bool: true iff a node was created at addr.
//
// Errors:
//   - None (pure query).
//
// Complexity:
//   - Time O(1), Space O(1).
//
// AI-Hints:
//   - Cheap admission check before reads that must not auto-create.
func (s *Store) HasNode(addr Address) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, exists := s.nodes[addr]

	return exists
}

// NodeCount returns the current number of nodes in the store.
//
// Implementation:
//   - Stage 1: Acquire the read lock.
//   - Stage 2: Return len(nodes).
//
// Returns:
//   - int: number of nodes.
//
// Errors:
//   - None (pure query).
//
// Complexity:
//   - Time O(1), Space O(1).
//
// AI-Hints:
//   - Prefer NodeCount() over len(Addresses()) to avoid the copy.
func (s *Store) NodeCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.nodes)
}

// Addresses returns all node addresses in creation order.
//
// Implementation:
//   - Stage 1: Acquire the read lock.
//   - Stage 2: Copy the order slice so callers can retain it lock-free.
//
// Behavior highlights:
//   - Stable enumeration surface: creation order, never reshuffled, because
//     consumers (sweeps, reports, renderers) depend on predictable order.
//
// Returns:
//   - []Address: copy of the creation-order list.
//
// Errors:
//   - None (pure query).
//
// Determinism:
//   - Deterministic output order (creation order, not sorted).
//
// Complexity:
//   - Time O(n), Space O(n).
//
// AI-Hints:
//   - Use Addresses() for reproducible traversal seeds and stable test
//     assertions.
func (s *Store) Addresses() []Address {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Address, len(s.order))
	copy(out, s.order)

	return out
}
