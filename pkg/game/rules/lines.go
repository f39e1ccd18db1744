package rules

import (
	"fmt"
	"sort"

	"github.com/danhquyen2004/Block-Blast/pkg/game/board"
	"github.com/danhquyen2004/Block-Blast/pkg/game/shapes"
	"github.com/kamstrup/intmap"
)

// Lines lists completed row and column indices in ascending order.
type Lines struct {
	Rows    []int `json:"rows"`
	Columns []int `json:"columns"`
}

// Count is the number of completed lines, rows and columns counted separately.
func (l Lines) Count() int {
	return len(l.Rows) + len(l.Columns)
}

func (l Lines) Empty() bool {
	return l.Count() == 0
}

// FindCompletedLines scans the live board for full rows and columns.
func FindCompletedLines(b *board.Board) Lines {
	return completedLines(b.SnapshotOccupancy(), b.Width(), b.Height())
}

// SimulateAfterPlacement reports the lines that would complete if shape were
// placed at anchor. The board is not modified. Shape cells that fall off the
// board are ignored.
func SimulateAfterPlacement(b *board.Board, shape shapes.Shape, anchor board.Coord) Lines {
	w, h := b.Width(), b.Height()
	occupancy := b.SnapshotOccupancy()
	for _, c := range AbsoluteCells(shape, anchor) {
		if b.InBounds(c.X, c.Y) {
			occupancy[c.Y*w+c.X] = 1
		}
	}
	return completedLines(occupancy, w, h)
}

func completedLines(occupancy []uint8, w, h int) Lines {
	lines := Lines{Rows: []int{}, Columns: []int{}}
	for y := 0; y < h; y++ {
		full := true
		for x := 0; x < w; x++ {
			if occupancy[y*w+x] == 0 {
				full = false
				break
			}
		}
		if full {
			lines.Rows = append(lines.Rows, y)
		}
	}
	for x := 0; x < w; x++ {
		full := true
		for y := 0; y < h; y++ {
			if occupancy[y*w+x] == 0 {
				full = false
				break
			}
		}
		if full {
			lines.Columns = append(lines.Columns, x)
		}
	}
	return lines
}

// CellsToClear returns the union of all cells in lines, each cell once, in
// row-major order. Out-of-range indices are skipped.
func CellsToClear(b *board.Board, lines Lines) []board.Coord {
	w, h := b.Width(), b.Height()
	seen := intmap.NewSet[int](lines.Count()*max(w, h) + 1)
	var indices []int
	add := func(x, y int) {
		i := y*w + x
		if seen.Has(i) {
			return
		}
		seen.Add(i)
		indices = append(indices, i)
	}
	for _, y := range lines.Rows {
		if y < 0 || y >= h {
			continue
		}
		for x := 0; x < w; x++ {
			add(x, y)
		}
	}
	for _, x := range lines.Columns {
		if x < 0 || x >= w {
			continue
		}
		for y := 0; y < h; y++ {
			add(x, y)
		}
	}
	sort.Ints(indices)

	cells := make([]board.Coord, len(indices))
	for n, i := range indices {
		cells[n] = board.Coord{X: i % w, Y: i / w}
	}
	return cells
}

// Clear empties every given cell. It is idempotent and order-independent.
func Clear(b *board.Board, cells []board.Coord) error {
	for _, c := range cells {
		if err := b.Clear(c.X, c.Y); err != nil {
			return fmt.Errorf("failed to clear cell: %w", err)
		}
	}
	return nil
}
