package rules

import (
	"testing"

	"github.com/danhquyen2004/Block-Blast/pkg/game/board"
	"github.com/danhquyen2004/Block-Blast/pkg/game/shapes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	shapeSingle = 0
	shapeBar2H  = 1
	shapeBar3H  = 3
	shapeBar3V  = 4
	shapeSquare = 5
	shapeL      = 6
)

func newBoard(t *testing.T) *board.Board {
	t.Helper()
	b, err := board.New(8, 8)
	require.NoError(t, err)
	return b
}

func shapeAt(t *testing.T, i int) shapes.Shape {
	t.Helper()
	s, err := shapes.DefaultCatalog().ShapeAt(i)
	require.NoError(t, err)
	return s
}

func fillRow(t *testing.T, b *board.Board, y int, skip ...int) {
	t.Helper()
	for x := 0; x < b.Width(); x++ {
		if containsInt(skip, x) {
			continue
		}
		require.NoError(t, b.Fill(x, y, 1))
	}
}

func fillColumn(t *testing.T, b *board.Board, x int, skip ...int) {
	t.Helper()
	for y := 0; y < b.Height(); y++ {
		if containsInt(skip, y) {
			continue
		}
		require.NoError(t, b.Fill(x, y, 1))
	}
}

func containsInt(s []int, v int) bool {
	for _, x := range s {
		if x == v {
			return true
		}
	}
	return false
}

func TestCanPlace(t *testing.T) {
	tests := []struct {
		name   string
		shape  int
		anchor board.Coord
		filled []board.Coord
		want   bool
	}{
		{name: "empty board origin", shape: shapeSquare, anchor: board.Coord{X: 0, Y: 0}, want: true},
		{name: "bottom right corner fits", shape: shapeSquare, anchor: board.Coord{X: 6, Y: 6}, want: true},
		{name: "off right edge", shape: shapeSquare, anchor: board.Coord{X: 7, Y: 0}, want: false},
		{name: "off bottom edge", shape: shapeBar3V, anchor: board.Coord{X: 0, Y: 6}, want: false},
		{name: "negative anchor", shape: shapeSingle, anchor: board.Coord{X: -1, Y: 0}, want: false},
		{name: "fully off board", shape: shapeSingle, anchor: board.Coord{X: 20, Y: 20}, want: false},
		{name: "overlaps filled cell", shape: shapeL, anchor: board.Coord{X: 2, Y: 2}, filled: []board.Coord{{X: 3, Y: 4}}, want: false},
		{name: "adjacent to filled cell", shape: shapeL, anchor: board.Coord{X: 2, Y: 2}, filled: []board.Coord{{X: 3, Y: 3}}, want: true},
		{name: "bar3 at (5,0)", shape: shapeBar3H, anchor: board.Coord{X: 5, Y: 0}, want: true},
		{name: "bar3 at (6,0)", shape: shapeBar3H, anchor: board.Coord{X: 6, Y: 0}, want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := newBoard(t)
			for _, c := range tt.filled {
				require.NoError(t, b.Fill(c.X, c.Y, 1))
			}
			before := b.SnapshotOccupancy()
			assert.Equal(t, tt.want, CanPlace(b, shapeAt(t, tt.shape), tt.anchor))
			assert.Equal(t, before, b.SnapshotOccupancy())
		})
	}
}

// Every (shape, anchor) pair over a partially filled board agrees with a
// direct bounds-and-occupancy check.
func TestCanPlace_Exhaustive(t *testing.T) {
	b := newBoard(t)
	for _, c := range []board.Coord{{X: 1, Y: 1}, {X: 4, Y: 2}, {X: 7, Y: 7}, {X: 0, Y: 5}, {X: 5, Y: 5}} {
		require.NoError(t, b.Fill(c.X, c.Y, 1))
	}
	for _, s := range shapes.DefaultCatalog().AllShapes() {
		for y := -3; y < 11; y++ {
			for x := -3; x < 11; x++ {
				want := true
				for _, c := range AbsoluteCells(s, board.Coord{X: x, Y: y}) {
					if !b.InBounds(c.X, c.Y) {
						want = false
						break
					}
					if filled, _ := b.IsFilled(c.X, c.Y); filled {
						want = false
						break
					}
				}
				assert.Equal(t, want, CanPlace(b, s, board.Coord{X: x, Y: y}), "%s at (%d,%d)", s.Name(), x, y)
			}
		}
	}
}

func TestCommit(t *testing.T) {
	b := newBoard(t)
	cells, err := Commit(b, shapeAt(t, shapeL), board.Coord{X: 1, Y: 2}, 3)
	require.NoError(t, err)
	assert.Equal(t, []board.Coord{{X: 1, Y: 2}, {X: 1, Y: 3}, {X: 1, Y: 4}, {X: 2, Y: 4}}, cells)
	assert.Equal(t, 4, b.FilledCount())
	c, err := b.Cell(2, 4)
	require.NoError(t, err)
	assert.Equal(t, board.Cell{Filled: true, Tag: 3}, c)

	_, err = Commit(b, shapeAt(t, shapeBar3H), board.Coord{X: 7, Y: 0}, 1)
	assert.ErrorIs(t, err, board.ErrOutOfBounds)
}

func TestFindCompletedLines_AfterCommit(t *testing.T) {
	b := newBoard(t)
	fillRow(t, b, 3, 5, 6)

	shape := shapeAt(t, shapeBar2H)
	anchor := board.Coord{X: 5, Y: 3}
	require.True(t, CanPlace(b, shape, anchor))
	_, err := Commit(b, shape, anchor, 2)
	require.NoError(t, err)

	lines := FindCompletedLines(b)
	assert.Equal(t, []int{3}, lines.Rows)
	assert.Equal(t, []int{}, lines.Columns)
	assert.Equal(t, 1, lines.Count())
}

func TestScenario_RowZeroFilledByPlacements(t *testing.T) {
	b := newBoard(t)
	bar3 := shapeAt(t, shapeBar3H)

	require.True(t, CanPlace(b, bar3, board.Coord{X: 5, Y: 0}))
	_, err := Commit(b, bar3, board.Coord{X: 5, Y: 0}, 1)
	require.NoError(t, err)
	assert.True(t, FindCompletedLines(b).Empty())

	require.True(t, CanPlace(b, bar3, board.Coord{X: 0, Y: 0}))
	_, err = Commit(b, bar3, board.Coord{X: 0, Y: 0}, 1)
	require.NoError(t, err)
	assert.True(t, FindCompletedLines(b).Empty())

	bar2 := shapeAt(t, shapeBar2H)
	require.True(t, CanPlace(b, bar2, board.Coord{X: 3, Y: 0}))
	_, err = Commit(b, bar2, board.Coord{X: 3, Y: 0}, 1)
	require.NoError(t, err)

	lines := FindCompletedLines(b)
	assert.Equal(t, []int{0}, lines.Rows)
	assert.Empty(t, lines.Columns)
}

func TestFindCompletedLines_RowAndColumn(t *testing.T) {
	b := newBoard(t)
	fillRow(t, b, 2)
	fillColumn(t, b, 6)
	fillColumn(t, b, 0)

	lines := FindCompletedLines(b)
	assert.Equal(t, []int{2}, lines.Rows)
	assert.Equal(t, []int{0, 6}, lines.Columns)
	assert.Equal(t, 3, lines.Count())
}

func TestSimulateAfterPlacement(t *testing.T) {
	b := newBoard(t)
	fillRow(t, b, 7, 0)
	fillColumn(t, b, 0, 5, 6, 7)

	before := b.SnapshotOccupancy()
	beforeTags := b.SnapshotTags()

	lines := SimulateAfterPlacement(b, shapeAt(t, shapeBar3V), board.Coord{X: 0, Y: 5})
	assert.Equal(t, []int{7}, lines.Rows)
	assert.Equal(t, []int{0}, lines.Columns)

	assert.Equal(t, before, b.SnapshotOccupancy())
	assert.Equal(t, beforeTags, b.SnapshotTags())
	assert.Equal(t, []int{}, FindCompletedLines(b).Rows)

	none := SimulateAfterPlacement(b, shapeAt(t, shapeSingle), board.Coord{X: 3, Y: 3})
	assert.True(t, none.Empty())

	// cells off the board are ignored by the overlay
	partial := SimulateAfterPlacement(b, shapeAt(t, shapeBar2H), board.Coord{X: -1, Y: 7})
	assert.Equal(t, []int{7}, partial.Rows)
	assert.Equal(t, before, b.SnapshotOccupancy())
}

func TestCellsToClear_Deduplicates(t *testing.T) {
	b := newBoard(t)
	cells := CellsToClear(b, Lines{Rows: []int{2}, Columns: []int{5}})
	assert.Len(t, cells, 8+8-1)

	seen := map[board.Coord]int{}
	for _, c := range cells {
		seen[c]++
	}
	assert.Equal(t, 1, seen[board.Coord{X: 5, Y: 2}])
	for c, n := range seen {
		assert.Equal(t, 1, n, "cell %v", c)
	}
	assert.Equal(t, board.Coord{X: 5, Y: 0}, cells[0])

	assert.Empty(t, CellsToClear(b, Lines{}))
	assert.Len(t, CellsToClear(b, Lines{Rows: []int{0, 1}, Columns: []int{0, 1}}), 16+16-4)
}

func TestClear_Idempotent(t *testing.T) {
	b := newBoard(t)
	fillRow(t, b, 4)
	fillColumn(t, b, 1)
	require.NoError(t, b.Fill(6, 6, 9))

	lines := FindCompletedLines(b)
	cells := CellsToClear(b, lines)

	once := b.Copy()
	require.NoError(t, Clear(once, cells))

	twice := b.Copy()
	require.NoError(t, Clear(twice, cells))
	require.NoError(t, Clear(twice, cells))

	reversed := b.Copy()
	rev := make([]board.Coord, len(cells))
	for i, c := range cells {
		rev[len(cells)-1-i] = c
	}
	require.NoError(t, Clear(reversed, rev))

	assert.Equal(t, once.SnapshotOccupancy(), twice.SnapshotOccupancy())
	assert.Equal(t, once.SnapshotOccupancy(), reversed.SnapshotOccupancy())
	assert.Equal(t, 1, once.FilledCount())

	assert.ErrorIs(t, Clear(b, []board.Coord{{X: 9, Y: 0}}), board.ErrOutOfBounds)
}

func TestHasAnyMove(t *testing.T) {
	catalog := shapes.DefaultCatalog()

	empty := newBoard(t)
	for _, s := range catalog.AllShapes() {
		assert.True(t, HasAnyMove(empty, []shapes.Shape{s}), s.Name())
	}

	full := newBoard(t)
	for y := 0; y < 8; y++ {
		fillRow(t, full, y)
	}
	assert.False(t, HasAnyMove(full, catalog.AllShapes()))
	assert.False(t, HasAnyMove(empty, nil))

	// one free cell: only the single fits
	oneHole := newBoard(t)
	for y := 0; y < 8; y++ {
		if y == 4 {
			fillRow(t, oneHole, y, 4)
			continue
		}
		fillRow(t, oneHole, y)
	}
	assert.False(t, HasAnyMove(oneHole, []shapes.Shape{shapeAt(t, shapeSquare), shapeAt(t, shapeBar2H)}))
	assert.True(t, HasAnyMove(oneHole, []shapes.Shape{shapeAt(t, shapeSquare), shapeAt(t, shapeSingle)}))

	anchor, ok := FindMove(oneHole, shapeAt(t, shapeSingle))
	require.True(t, ok)
	assert.Equal(t, board.Coord{X: 4, Y: 4}, anchor)
}

func TestFindMove_NegativeOffsets(t *testing.T) {
	b := newBoard(t)
	for y := 0; y < 8; y++ {
		fillRow(t, b, y)
	}
	require.NoError(t, b.Clear(0, 0))
	require.NoError(t, b.Clear(1, 0))

	s, err := shapes.NewShape("left-bar", shapes.Offset{DX: -1, DY: 0}, shapes.Offset{DX: 0, DY: 0})
	require.NoError(t, err)
	anchor, ok := FindMove(b, s)
	require.True(t, ok)
	assert.Equal(t, board.Coord{X: 1, Y: 0}, anchor)
}
