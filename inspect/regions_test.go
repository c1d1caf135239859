package inspect_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/katalvlaran/neurogrid/inspect"
	"github.com/katalvlaran/neurogrid/lattice"
)

//----------------------------------------------------------------------------//
// Regions Error and Edge Tests
//----------------------------------------------------------------------------//

// TestRegions_NotFound verifies that a missing node surfaces the store's
// not-found sentinel rather than an empty result.
func TestRegions_NotFound(t *testing.T) {
	st := lattice.NewStore()
	_, err := inspect.Regions(st, lattice.Addr(1, 2, 3), inspect.Conn4)
	if !errors.Is(err, lattice.ErrNodeNotFound) {
		t.Errorf("Regions on missing node error = %v; want ErrNodeNotFound", err)
	}
}

// TestRegions_NoOccupiedCells covers zero-sized and all-zero nodes.
func TestRegions_NoOccupiedCells(t *testing.T) {
	cases := []struct {
		name  string
		cells [][]float64
	}{
		{"ZeroSized", nil},
		{"AllZero", [][]float64{{0, 0}, {0, 0}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			st := lattice.NewStore()
			addr := lattice.Addr(0, 0, 0)
			if err := st.SetGrid(addr, tc.cells); err != nil {
				t.Fatalf("SetGrid error: %v", err)
			}
			regions, err := inspect.Regions(st, addr, inspect.Conn4)
			if err != nil {
				t.Fatalf("Regions error: %v", err)
			}
			if len(regions) != 0 {
				t.Errorf("Regions = %v; want none", regions)
			}
		})
	}
}

//----------------------------------------------------------------------------//
// Connectivity Tests
//----------------------------------------------------------------------------//

// TestRegions_ConnectivityCounts verifies that a diagonal pair splits under
// Conn4 and merges under Conn8, and that unknown connectivity acts as Conn4.
func TestRegions_ConnectivityCounts(t *testing.T) {
	cases := []struct {
		name string
		conn inspect.Connectivity
		want int
	}{
		{"Conn4SplitsDiagonal", inspect.Conn4, 2},
		{"Conn8BridgesDiagonal", inspect.Conn8, 1},
		{"UnknownFallsBackToConn4", inspect.Connectivity(99), 2},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			st := lattice.NewStore()
			addr := lattice.Addr(0, 0, 0)
			if err := st.SetGrid(addr, [][]float64{{1, 0}, {0, 1}}); err != nil {
				t.Fatalf("SetGrid error: %v", err)
			}
			regions, err := inspect.Regions(st, addr, tc.conn)
			if err != nil {
				t.Fatalf("Regions error: %v", err)
			}
			if len(regions) != tc.want {
				t.Errorf("Regions count = %d; want %d", len(regions), tc.want)
			}
		})
	}
}

// TestRegions_ValuesMerge confirms that differing non-zero values belong to
// one region when adjacent; occupancy ignores the magnitude.
func TestRegions_ValuesMerge(t *testing.T) {
	st := lattice.NewStore()
	addr := lattice.Addr(0, 0, 0)
	if err := st.SetGrid(addr, [][]float64{{1, 3}, {0, 0}}); err != nil {
		t.Fatalf("SetGrid error: %v", err)
	}
	regions, err := inspect.Regions(st, addr, inspect.Conn4)
	if err != nil {
		t.Fatalf("Regions error: %v", err)
	}
	if len(regions) != 1 {
		t.Fatalf("Regions count = %d; want 1", len(regions))
	}
	want := []inspect.Cell{
		{Row: 0, Col: 0, Value: 1},
		{Row: 0, Col: 1, Value: 3},
	}
	if diff := cmp.Diff(want, regions[0]); diff != "" {
		t.Errorf("region cells (-want +got):\n%s", diff)
	}
}

//----------------------------------------------------------------------------//
// Visit Order Tests
//----------------------------------------------------------------------------//

// TestRegions_ScanAndVisitOrder pins the full deterministic output: regions
// appear in row-major discovery order, cells within a region in BFS order
// with neighbors explored N, E, S, W.
func TestRegions_ScanAndVisitOrder(t *testing.T) {
	st := lattice.NewStore()
	addr := lattice.Addr(0, 0, 0)
	cells := [][]float64{
		{1, 1, 0, 0},
		{0, 1, 0, 2},
		{0, 0, 0, 2},
	}
	if err := st.SetGrid(addr, cells); err != nil {
		t.Fatalf("SetGrid error: %v", err)
	}

	regions, err := inspect.Regions(st, addr, inspect.Conn4)
	if err != nil {
		t.Fatalf("Regions error: %v", err)
	}
	want := [][]inspect.Cell{
		{
			{Row: 0, Col: 0, Value: 1},
			{Row: 0, Col: 1, Value: 1},
			{Row: 1, Col: 1, Value: 1},
		},
		{
			{Row: 1, Col: 3, Value: 2},
			{Row: 2, Col: 3, Value: 2},
		},
	}
	if diff := cmp.Diff(want, regions); diff != "" {
		t.Errorf("regions (-want +got):\n%s", diff)
	}
}
