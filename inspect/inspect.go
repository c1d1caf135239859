package inspect

import (
	"github.com/katalvlaran/neurogrid/lattice"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// NodeSummary captures the shape and value statistics of a single node.
// Statistics cover the full rectangle, zeros included; a node without cells
// reports zero for every statistic.
type NodeSummary struct {
	Addr     lattice.Address // node address within the store
	Rows     int             // current row count
	Cols     int             // current column count
	Cells    int             // Rows × Cols
	Occupied int             // number of non-zero cells
	Min      float64         // smallest cell value
	Max      float64         // largest cell value
	Mean     float64         // arithmetic mean over all cells
	StdDev   float64         // sample standard deviation (0 below 2 cells)
}

// Summarize computes one NodeSummary per node, in node creation order.
// Time: O(total cells), Memory: O(largest node).
func Summarize(st *lattice.Store) []NodeSummary {
	addrs := st.Addresses()
	out := make([]NodeSummary, 0, len(addrs))
	for _, addr := range addrs {
		cells, err := st.Cells(addr)
		if err != nil {
			continue // raced reads stay best-effort; nodes are never removed
		}
		out = append(out, summarize(addr, cells))
	}

	return out
}

// summarize flattens one snapshot and runs the statistics over it.
func summarize(addr lattice.Address, cells [][]float64) NodeSummary {
	rows := len(cells)
	cols := 0
	if rows > 0 {
		cols = len(cells[0])
	}
	s := NodeSummary{Addr: addr, Rows: rows, Cols: cols, Cells: rows * cols}
	if s.Cells == 0 {
		return s // zero-sized shapes carry no statistics
	}

	flat := make([]float64, 0, s.Cells)
	for _, row := range cells {
		for _, v := range row {
			if v != 0 {
				s.Occupied++
			}
			flat = append(flat, v)
		}
	}
	s.Min = floats.Min(flat)
	s.Max = floats.Max(flat)
	s.Mean = stat.Mean(flat, nil)
	if len(flat) > 1 {
		s.StdDev = stat.StdDev(flat, nil) // sample variance needs n ≥ 2
	}

	return s
}

// Occupancy reports the fraction of non-zero cells in the node at addr.
// A missing or zero-sized node yields 0.
// Time: O(R×C).
func Occupancy(st *lattice.Store, addr lattice.Address) float64 {
	cells, err := st.Cells(addr)
	if err != nil {
		return 0
	}
	total, occupied := 0, 0
	for _, row := range cells {
		for _, v := range row {
			total++
			if v != 0 {
				occupied++
			}
		}
	}
	if total == 0 {
		return 0
	}

	return float64(occupied) / float64(total)
}
