package inspect

import (
	"github.com/katalvlaran/neurogrid/lattice"
)

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

// Cell pinpoints one occupied grid cell inside a region.
type Cell struct {
	Row, Col int     // coordinates within the node's grid
	Value    float64 // cell value at (Row, Col)
}

// neighborOffsets returns the (dRow,dCol) offset table for conn.
// Unknown connectivity values fall back to Conn4.
func neighborOffsets(conn Connectivity) [][2]int {
	if conn == Conn8 {
		return [][2]int{{-1, 0}, {-1, 1}, {0, 1}, {1, 1}, {1, 0}, {1, -1}, {0, -1}, {-1, -1}}
	}

	return [][2]int{{-1, 0}, {0, 1}, {1, 0}, {0, -1}}
}

// Regions finds all contiguous groups of occupied (non-zero) cells in the
// node at addr, according to conn connectivity. Any non-zero value counts as
// occupied; adjacent cells merge into one region regardless of their values.
// Regions are discovered in row-major scan order; each region lists its
// cells in BFS visit order. Returns a wrapped lattice.ErrNodeNotFound when
// no node exists at addr.
//
// Time:   O(R·C·d), where d = 4 or 8.
// Memory: O(R·C) for visited flags and output.
func Regions(st *lattice.Store, addr lattice.Address, conn Connectivity) ([][]Cell, error) {
	cells, err := st.Cells(addr)
	if err != nil {
		return nil, err
	}
	rows := len(cells)
	cols := 0
	if rows > 0 {
		cols = len(cells[0])
	}
	seen := make([]bool, rows*cols)
	var regions [][]Cell
	offsets := neighborOffsets(conn)

	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			if cells[r][c] == 0 {
				continue // vacant
			}
			i0 := r*cols + c
			if seen[i0] {
				continue
			}
			// BFS to collect the region
			queue := []int{i0}
			seen[i0] = true
			var region []Cell

			for qi := 0; qi < len(queue); qi++ {
				u := queue[qi]
				ur, uc := u/cols, u%cols
				region = append(region, Cell{Row: ur, Col: uc, Value: cells[ur][uc]})
				for _, d := range offsets {
					vr, vc := ur+d[0], uc+d[1]
					if vr < 0 || vr >= rows || vc < 0 || vc >= cols || cells[vr][vc] == 0 {
						continue
					}
					vi := vr*cols + vc
					if !seen[vi] {
						seen[vi] = true
						queue = append(queue, vi)
					}
				}
			}
			regions = append(regions, region)
		}
	}

	return regions, nil
}
