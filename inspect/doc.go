// Package inspect derives read-only reports from a lattice.Store: per-node
// summary statistics and contiguous occupancy regions.
//
// What:
//
//   - Summarize walks every node in creation order and returns shape,
//     occupancy and value statistics per node.
//   - Occupancy reports the fraction of non-zero cells in one node.
//   - Regions labels contiguous groups of non-zero cells under Conn4 or
//     Conn8 connectivity.
//
// Why:
//
//   - Rendering layers need cheap snapshots without reaching into the store.
//   - Debugging sparse growth: see which nodes exist and how full they are.
//   - Region labelling turns raw activation grids into reportable clusters.
//
// Complexity:
//
//   - Summarize: O(total cells across all nodes).
//   - Occupancy: O(R×C) for the addressed node.
//   - Regions:   O(R×C×d), Memory: O(R×C)    (d = number of neighbors, 4 or 8).
//
// Every function here consumes only the exported read surface of lattice;
// nothing in this package mutates the store.
package inspect
