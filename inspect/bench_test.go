package inspect_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/neurogrid/inspect"
	"github.com/katalvlaran/neurogrid/lattice"
)

// BenchmarkRegions measures region labelling on a randomly occupied
// 512×512 node with roughly 40% occupancy.
// Complexity: O(R×C×d)
func BenchmarkRegions(b *testing.B) {
	const side = 512
	// Setup: deterministic random occupancy
	rng := rand.New(rand.NewSource(42))
	cells := make([][]float64, side)
	for r := 0; r < side; r++ {
		row := make([]float64, side)
		for c := 0; c < side; c++ {
			if rng.Intn(5) < 2 { // 2 in 5 cells occupied
				row[c] = float64(rng.Intn(9) + 1)
			}
		}
		cells[r] = row
	}
	st := lattice.NewStore()
	addr := lattice.Addr(0, 0, 0)
	if err := st.SetGrid(addr, cells); err != nil {
		b.Fatalf("setup SetGrid failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := inspect.Regions(st, addr, inspect.Conn4); err != nil {
			b.Fatalf("Regions failed: %v", err)
		}
	}
}

// BenchmarkSummarize measures the statistics pass over 50 nodes of 64×64 cells.
// Complexity: O(total cells)
func BenchmarkSummarize(b *testing.B) {
	const nodes = 50
	const side = 64
	rng := rand.New(rand.NewSource(42))
	st := lattice.NewStore(lattice.WithCapacityHint(nodes))
	for i := 0; i < nodes; i++ {
		cells := make([][]float64, side)
		for r := 0; r < side; r++ {
			row := make([]float64, side)
			for c := 0; c < side; c++ {
				row[c] = rng.Float64()
			}
			cells[r] = row
		}
		if err := st.SetGrid(lattice.Addr(i, 0, 0), cells); err != nil {
			b.Fatalf("setup SetGrid failed: %v", err)
		}
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = inspect.Summarize(st)
	}
}
