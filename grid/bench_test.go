package grid_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/neurogrid/grid"
)

// BenchmarkGrowTo_FromEmpty measures growing a blank grid out to 256×256,
// the worst case where every cell is allocated by the growth path.
// Complexity: O(added cells)
func BenchmarkGrowTo_FromEmpty(b *testing.B) {
	const n = 256
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		g, err := grid.New(0, 0)
		if err != nil {
			b.Fatalf("setup New failed: %v", err)
		}
		if err = g.GrowTo(n-1, n-1); err != nil {
			b.Fatalf("GrowTo failed: %v", err)
		}
	}
}

// BenchmarkGrowTo_NoOp measures the idempotent fast path: the target is
// already in bounds, so GrowTo must return without touching storage.
// Complexity: O(1)
func BenchmarkGrowTo_NoOp(b *testing.B) {
	g, err := grid.New(256, 256)
	if err != nil {
		b.Fatalf("setup New failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.GrowTo(100, 100)
	}
}

// BenchmarkSetInBounds measures plain in-bounds writes on a pre-grown grid
// filled from a deterministic random source.
// Complexity: O(1) per write
func BenchmarkSetInBounds(b *testing.B) {
	const n = 512
	// Setup: deterministic random coordinates
	rnd := rand.New(rand.NewSource(42))
	g, err := grid.New(n, n)
	if err != nil {
		b.Fatalf("setup New failed: %v", err)
	}
	rows := make([]int, 1024)
	cols := make([]int, 1024)
	for i := range rows {
		rows[i] = rnd.Intn(n)
		cols[i] = rnd.Intn(n)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		k := i & 1023
		_ = g.Set(rows[k], cols[k], float64(i))
	}
}

// BenchmarkApply measures a full in-place transform pass on a 512×512 grid.
// Complexity: O(r×c)
func BenchmarkApply(b *testing.B) {
	const n = 512
	g, err := grid.New(n, n)
	if err != nil {
		b.Fatalf("setup New failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.Apply(func(row, col int, v float64) float64 { return v + 1 })
	}
}
