// Package neurogrid is an in-memory substrate for sparse, growable 2D
// state: nodes addressed by integer triples, each carrying a rectangular
// float grid that stretches on demand.
//
// 🚀 What is neurogrid?
//
//	A small, thread-safe storage core that brings together:
//		• Addressable nodes: (x,y,z) keys, created lazily by the first write
//		• Growable grids: out-of-bounds writes stretch the rectangle, values stay put
//		• Whole-field sweeps: rewrite every cell of every node with one transform
//		• Read-only reports: per-node statistics and occupancy region labelling
//
// ✨ Why choose neurogrid?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Rock-solid guarantees – R/W locks, sentinel errors, deterministic enumeration
//   - Predictable growth – one documented expansion rule, idempotent and lossless
//   - Extensible – plug any Transform into Sweep for custom cell logic
//
// Under the hood, everything is organized under three subpackages:
//
//	grid/    – the growable rectangular container and its expansion rule
//	lattice/ – the addressable Store: nodes, writes, growth, sweeps
//	inspect/ – read-only statistics and occupancy regions over a Store
//
// Quick ASCII example:
//
//	    (0,0,0) before         (0,0,0) after Set(5,5,42)
//	    ┌───────┐              ┌──────────────┐
//	    │ 1 2 3 │              │ 1 2 3 0 0 0  │
//	    │ 4 5 6 │              │ 4 5 6 0 0 0  │
//	    └───────┘              │ 0 0 0 0 0 0  │
//	                           │ 0 0 0 0 0 0  │
//	                           │ 0 0 0 0 0 0  │
//	                           │ 0 0 0 0 0 42 │
//	                           └──────────────┘
//
//	a single far write grows the node; everything already written survives.
//
// Dive into README.md for full examples and the growth-rule walkthrough.
//
//	go get github.com/katalvlaran/neurogrid
package neurogrid
