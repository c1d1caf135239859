// Package grid provides a growable rectangular 2D container of float64 cells,
// the storage unit behind every addressable node.
//
// What:
//
//   - Grid wraps row-nested [][]float64 storage with an explicit (rows, cols) shape.
//   - At/Set give bounds-checked access; out-of-range reads fail, they never grow.
//   - GrowTo expands the shape on demand: zero-filled rows first, then a uniform
//     column extension across every row, preserving all written values.
//   - FromCells ingests existing data with strict rectangularity validation.
//   - Do/Apply traverse cells in fixed row-major order (visit and in-place map).
//
// Why:
//
//   - Sparse write patterns: callers write wherever they like and the shape follows.
//   - Snapshot discipline: Cells/Clone hand out deep copies, never live views.
//   - Numeric hygiene: an opt-in finite-only policy rejects NaN/±Inf at the door.
//
// Complexity:
//
//   - At/Set: O(1);  GrowTo: O(added cells);  Do/Apply/Cells/Clone: O(r×c).
//
// Options:
//
//   - WithFiniteOnly: reject NaN/±Inf on Set/FromCells/Apply (ErrNotFinite).
//   - WithAnyValue: accept every float64 (the default).
//
// Errors:
//
//   - ErrNegativeSize: a constructor received a negative dimension.
//   - ErrOutOfRange: At/Set index outside the current shape.
//   - ErrNegativeIndex: GrowTo target below zero.
//   - ErrRagged: FromCells rows have differing lengths.
//   - ErrNotFinite: NaN/±Inf rejected under the finite-only policy.
//
// A Grid is not goroutine-safe on its own; owners serialize access.
package grid
