package lattice_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/neurogrid/lattice"
)

// BenchmarkSet_SparseGrowth measures scattered writes into a fresh store:
// every write may create a node or grow an existing grid.
// Complexity per write: amortized O(rows·cols) of the touched node.
func BenchmarkSet_SparseGrowth(b *testing.B) {
	const writes = 200
	// Setup: deterministic scatter of addresses and cell targets.
	rng := rand.New(rand.NewSource(42))
	addrs := make([]lattice.Address, writes)
	rows := make([]int, writes)
	cols := make([]int, writes)
	for i := 0; i < writes; i++ {
		addrs[i] = lattice.Addr(rng.Intn(8), rng.Intn(8), rng.Intn(4))
		rows[i] = rng.Intn(64)
		cols[i] = rng.Intn(64)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		st := lattice.NewStore(lattice.WithCapacityHint(256))
		for j := 0; j < writes; j++ {
			if err := st.Set(addrs[j], rows[j], cols[j], float64(j)); err != nil {
				b.Fatalf("Set failed: %v", err)
			}
		}
	}
}

// BenchmarkSweep measures one constant sweep across 100 nodes of 32×32 cells.
// Complexity: O(total cells) per sweep.
func BenchmarkSweep(b *testing.B) {
	const nodes = 100
	const side = 32
	st := lattice.NewStore(lattice.WithCapacityHint(nodes))
	for i := 0; i < nodes; i++ {
		if _, err := st.Ensure(lattice.Addr(i, 0, 0), side, side); err != nil {
			b.Fatalf("setup Ensure failed: %v", err)
		}
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := st.Sweep(lattice.Constant(1)); err != nil {
			b.Fatalf("Sweep failed: %v", err)
		}
	}
}

// BenchmarkAt measures random single-cell reads from one 256×256 node.
// Complexity: O(1) per read plus lock traffic.
func BenchmarkAt(b *testing.B) {
	const side = 256
	st := lattice.NewStore()
	addr := lattice.Addr(0, 0, 0)
	if _, err := st.Ensure(addr, side, side); err != nil {
		b.Fatalf("setup Ensure failed: %v", err)
	}
	// Setup: deterministic read coordinates.
	rng := rand.New(rand.NewSource(42))
	coords := make([][2]int, 1024)
	for i := range coords {
		coords[i] = [2]int{rng.Intn(side), rng.Intn(side)}
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		k := i & 1023 // cycle through pre-generated coordinates
		if _, err := st.At(addr, coords[k][0], coords[k][1]); err != nil {
			b.Fatalf("At failed: %v", err)
		}
	}
}
