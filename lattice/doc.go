// Package lattice implements the sparse, addressable store of growable grids:
// nodes keyed by 3-coordinate integer addresses, created lazily by writes,
// each holding one rectangular grid that expands on demand.
//
// What:
//
//   - Address is the (X,Y,Z) composite key; the space is sparse and unbounded.
//   - Store owns the address→node index plus a creation-order list for stable
//     enumeration; nodes are never deleted.
//   - Ensure creates-or-returns a node with an initial zero grid (idempotent).
//   - SetGrid replaces a node's whole grid (the one legal shrink path).
//   - Set writes one cell anywhere: absent nodes appear, small grids grow,
//     previously written values survive intact.
//   - At/Cells read strictly (ErrNodeNotFound/ErrOutOfRange); Shape answers
//     (0,0) for unknown addresses and never fails.
//   - Sweep applies a Transform to every cell of every node in a fixed order;
//     Constant(v) is the placeholder policy.
//
// Why:
//
//   - Sparse spatial fields: write wherever activity lands, pay only for
//     touched nodes.
//   - Reproducible pipelines: creation-order enumeration and row-major sweeps
//     make whole-store passes deterministic.
//   - Honest placeholder: the gating hook has the right shape without
//     inventing update semantics the substrate does not define.
//
// Complexity:
//
//   - Ensure/Set (in bounds)/At/Shape/HasNode/NodeCount: O(1) map work.
//   - Set (growing): O(added cells).   SetGrid/Cells: O(r×c).
//   - Sweep: O(total cells across all nodes).
//
// Concurrency:
//
//   - One RWMutex for the whole store: mutations (Ensure/SetGrid/Set/Sweep)
//     take the write lock; queries (At/Cells/Shape/HasNode/NodeCount/
//     Addresses) share the read lock. There is no cancellation, timeout, or
//     retry anywhere: every operation completes deterministically.
//
// Options:
//
//   - WithFiniteOnly: reject NaN/±Inf on every write path (ErrNotFinite).
//   - WithCapacityHint: pre-size the node index (panics on negative hints).
//
// Errors:
//
//   - ErrNodeNotFound: At/Cells on an address with no node.
//   - ErrOutOfRange: At outside the node's current shape (alias of grid's).
//   - ErrNegativeIndex: Set/GrowTo target below zero (alias of grid's).
//   - ErrNegativeSize: Ensure with a negative dimension (alias of grid's).
//   - ErrRagged: SetGrid input rows of differing lengths (alias of grid's).
//   - ErrNotFinite: NaN/±Inf under WithFiniteOnly (alias of grid's).
//   - ErrNilTransform: Sweep(nil).
//
// See the examples in this package and the inspect package for usage patterns.
package lattice
