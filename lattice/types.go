// SPDX-License-Identifier: MIT

// Package lattice - address and node types.
//
// This file declares Address (the 3-coordinate key space) and Node (one
// addressable unit of storage). The Store that owns them lives in store.go.

package lattice

import (
	"fmt"

	"github.com/katalvlaran/neurogrid/grid"
)

// Address is the ordered integer triple that uniquely identifies a node.
//
// Addresses are unbounded (negative, zero, and positive coordinates are all
// valid) and the space is sparse: nothing exists at an address until a write
// targets it. Address is a comparable value type and is used directly as the
// map key inside the Store: a structured composite key, never a formatted
// string.
type Address struct {
	// X is the first coordinate.
	X int

	// Y is the second coordinate.
	Y int

	// Z is the third coordinate.
	Z int
}

// Addr is a convenience constructor for Address literals at call sites.
// Complexity: O(1).
func Addr(x, y, z int) Address { return Address{X: x, Y: y, Z: z} }

// String renders the address as "(x,y,z)" for diagnostics and error context.
// Complexity: O(1).
func (a Address) String() string { return fmt.Sprintf("(%d,%d,%d)", a.X, a.Y, a.Z) }

// Node is a single addressable unit of storage: one address, one rectangular
// grid of cells.
//
// Nodes are created lazily by Store writes and are never deleted. The address
// is immutable for the node's lifetime and safe to read at any time. Cell
// access flows through Store methods only, so the store's locking discipline
// cannot be bypassed through a retained handle.
type Node struct {
	addr Address    // immutable identity within the owning store
	grid *grid.Grid // owned cell storage; guarded by the store's lock
}

// Address returns the node's immutable address.
// Complexity: O(1).
func (n *Node) Address() Address { return n.addr }
