package board

import (
	"errors"
	"fmt"
)

// ErrOutOfBounds is returned for any coordinate outside [0,W)x[0,H).
var ErrOutOfBounds = errors.New("coordinate out of bounds")

// OutOfBoundsError carries the offending coordinate. It matches ErrOutOfBounds with errors.Is.
type OutOfBoundsError struct {
	X, Y          int
	Width, Height int
}

func (e *OutOfBoundsError) Error() string {
	return fmt.Sprintf("coordinate (%d,%d) out of bounds for %dx%d board", e.X, e.Y, e.Width, e.Height)
}

func (e *OutOfBoundsError) Is(target error) bool {
	return target == ErrOutOfBounds
}

// Coord is a grid coordinate. X is the column, Y is the row.
type Coord struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Add returns the coordinate translated by dx, dy.
func (c Coord) Add(dx, dy int) Coord {
	return Coord{X: c.X + dx, Y: c.Y + dy}
}

// Cell is a single board cell. Tag identifies the piece variant that filled it
// and has no effect on the rules.
type Cell struct {
	Filled bool `json:"filled"`
	Tag    int  `json:"tag"`
}

// Board is a fixed width x height grid stored row-major (index = y*width + x).
type Board struct {
	width  int
	height int
	cells  []Cell
}

// New creates an empty board. Both dimensions must be positive.
func New(width, height int) (*Board, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid board dimensions %dx%d", width, height)
	}
	return &Board{
		width:  width,
		height: height,
		cells:  make([]Cell, width*height),
	}, nil
}

func (b *Board) Width() int {
	return b.width
}

func (b *Board) Height() int {
	return b.height
}

// InBounds reports whether x, y addresses a cell on the board.
func (b *Board) InBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

func (b *Board) index(x, y int) (int, error) {
	if !b.InBounds(x, y) {
		return 0, &OutOfBoundsError{X: x, Y: y, Width: b.width, Height: b.height}
	}
	return y*b.width + x, nil
}

// Cell returns the cell at x, y.
func (b *Board) Cell(x, y int) (Cell, error) {
	i, err := b.index(x, y)
	if err != nil {
		return Cell{}, err
	}
	return b.cells[i], nil
}

// IsFilled reports whether the cell at x, y is occupied.
func (b *Board) IsFilled(x, y int) (bool, error) {
	i, err := b.index(x, y)
	if err != nil {
		return false, err
	}
	return b.cells[i].Filled, nil
}

// Fill marks the cell at x, y as occupied by tag.
func (b *Board) Fill(x, y int, tag int) error {
	i, err := b.index(x, y)
	if err != nil {
		return err
	}
	b.cells[i] = Cell{Filled: true, Tag: tag}
	return nil
}

// Clear empties the cell at x, y. Clearing an empty cell is a no-op.
func (b *Board) Clear(x, y int) error {
	i, err := b.index(x, y)
	if err != nil {
		return err
	}
	b.cells[i] = Cell{}
	return nil
}

// ForEachCell visits every cell in row-major order.
func (b *Board) ForEachCell(visit func(x, y int, c Cell)) {
	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			visit(x, y, b.cells[y*b.width+x])
		}
	}
}

// SnapshotOccupancy returns a row-major copy of the occupancy grid (1 = filled).
func (b *Board) SnapshotOccupancy() []uint8 {
	out := make([]uint8, len(b.cells))
	for i, c := range b.cells {
		if c.Filled {
			out[i] = 1
		}
	}
	return out
}

// SnapshotTags returns a row-major copy of the occupant tags, 0 for empty cells.
func (b *Board) SnapshotTags() []int {
	out := make([]int, len(b.cells))
	for i, c := range b.cells {
		if c.Filled {
			out[i] = c.Tag
		}
	}
	return out
}

// FilledCount returns the number of occupied cells.
func (b *Board) FilledCount() int {
	n := 0
	for _, c := range b.cells {
		if c.Filled {
			n++
		}
	}
	return n
}

// Reset empties every cell.
func (b *Board) Reset() {
	for i := range b.cells {
		b.cells[i] = Cell{}
	}
}

// Copy returns a deep copy of the board.
func (b *Board) Copy() *Board {
	cells := make([]Cell, len(b.cells))
	copy(cells, b.cells)
	return &Board{
		width:  b.width,
		height: b.height,
		cells:  cells,
	}
}
