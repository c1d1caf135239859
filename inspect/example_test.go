// File: inspect/example_test.go
package inspect_test

import (
	"fmt"

	"github.com/katalvlaran/neurogrid/inspect"
	"github.com/katalvlaran/neurogrid/lattice"
)

////////////////////////////////////////////////////////////////////////////////
// Example: Regions
////////////////////////////////////////////////////////////////////////////////

// ExampleRegions demonstrates how to identify contiguous clusters of
// occupied cells inside one node.
// Scenario:
//
//   - Cell values: 0 = vacant, anything else = occupied activation.
//   - Conn4: 4-directional adjacency (N/E/S/W).
//   - Expect two clusters: one of four cells, one of three.
//
// Complexity: O(R·C·4), Memory: O(R·C)
func ExampleRegions() {
	st := lattice.NewStore()
	addr := lattice.Addr(0, 0, 0)
	_ = st.SetGrid(addr, [][]float64{
		{0, 5, 5, 0},
		{5, 5, 0, 0},
		{0, 0, 0, 3},
		{0, 0, 3, 3},
	})

	regions, _ := inspect.Regions(st, addr, inspect.Conn4)
	fmt.Println("regions:", len(regions))
	for i, region := range regions {
		fmt.Printf("region %d:", i)
		for _, c := range region {
			fmt.Printf(" (%d,%d)", c.Row, c.Col)
		}
		fmt.Println()
	}

	// Output:
	// regions: 2
	// region 0: (0,1) (0,2) (1,1) (1,0)
	// region 1: (2,3) (3,3) (3,2)
}

////////////////////////////////////////////////////////////////////////////////
// Example: Summarize
////////////////////////////////////////////////////////////////////////////////

// ExampleSummarize demonstrates the per-node statistics report in node
// creation order.
// Scenario:
//
//   - Two nodes: a seeded 2x2 grid and a 1x1 grid created by a single write.
//   - Each line shows shape, occupancy and mean.
//
// Complexity: O(total cells)
func ExampleSummarize() {
	st := lattice.NewStore()
	_ = st.SetGrid(lattice.Addr(0, 0, 0), [][]float64{{0, 0}, {0, 4}})
	_ = st.Set(lattice.Addr(1, 0, 0), 0, 0, 7)

	for _, s := range inspect.Summarize(st) {
		fmt.Printf("%s %dx%d occupied=%d mean=%.2f\n", s.Addr, s.Rows, s.Cols, s.Occupied, s.Mean)
	}

	// Output:
	// (0,0,0) 2x2 occupied=1 mean=1.00
	// (1,0,0) 1x1 occupied=1 mean=7.00
}
