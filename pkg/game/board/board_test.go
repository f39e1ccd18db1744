package board

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		width   int
		height  int
		wantErr bool
	}{
		{name: "standard", width: 8, height: 8},
		{name: "rectangular", width: 10, height: 4},
		{name: "zero width", width: 0, height: 8, wantErr: true},
		{name: "negative height", width: 8, height: -1, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := New(tt.width, tt.height)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.width, b.Width())
			assert.Equal(t, tt.height, b.Height())
			assert.Equal(t, 0, b.FilledCount())
		})
	}
}

func TestBoard_FillAndClear(t *testing.T) {
	b, err := New(8, 8)
	require.NoError(t, err)

	require.NoError(t, b.Fill(2, 3, 5))
	filled, err := b.IsFilled(2, 3)
	require.NoError(t, err)
	assert.True(t, filled)

	c, err := b.Cell(2, 3)
	require.NoError(t, err)
	assert.Equal(t, Cell{Filled: true, Tag: 5}, c)

	require.NoError(t, b.Clear(2, 3))
	require.NoError(t, b.Clear(2, 3))
	filled, err = b.IsFilled(2, 3)
	require.NoError(t, err)
	assert.False(t, filled)

	c, err = b.Cell(2, 3)
	require.NoError(t, err)
	assert.Equal(t, Cell{}, c)
}

func TestBoard_OutOfBounds(t *testing.T) {
	b, err := New(8, 8)
	require.NoError(t, err)

	coords := []Coord{{-1, 0}, {0, -1}, {8, 0}, {0, 8}, {100, 100}}
	for _, c := range coords {
		_, err := b.IsFilled(c.X, c.Y)
		assert.True(t, errors.Is(err, ErrOutOfBounds), "IsFilled(%d,%d)", c.X, c.Y)
		assert.ErrorIs(t, b.Fill(c.X, c.Y, 1), ErrOutOfBounds)
		assert.ErrorIs(t, b.Clear(c.X, c.Y), ErrOutOfBounds)

		var oob *OutOfBoundsError
		require.ErrorAs(t, b.Fill(c.X, c.Y, 1), &oob)
		assert.Equal(t, c.X, oob.X)
		assert.Equal(t, c.Y, oob.Y)
	}
	assert.Equal(t, 0, b.FilledCount())
}

func TestBoard_SnapshotRowMajor(t *testing.T) {
	b, err := New(3, 2)
	require.NoError(t, err)
	require.NoError(t, b.Fill(1, 0, 4))
	require.NoError(t, b.Fill(2, 1, 7))

	assert.Equal(t, []uint8{0, 1, 0, 0, 0, 1}, b.SnapshotOccupancy())
	assert.Equal(t, []int{0, 4, 0, 0, 0, 7}, b.SnapshotTags())

	var visited []Coord
	b.ForEachCell(func(x, y int, c Cell) {
		visited = append(visited, Coord{X: x, Y: y})
	})
	assert.Equal(t, []Coord{{0, 0}, {1, 0}, {2, 0}, {0, 1}, {1, 1}, {2, 1}}, visited)
}

func TestBoard_CopyIsIndependent(t *testing.T) {
	b, err := New(4, 4)
	require.NoError(t, err)
	require.NoError(t, b.Fill(0, 0, 1))

	c := b.Copy()
	require.NoError(t, c.Fill(1, 1, 2))
	require.NoError(t, c.Clear(0, 0))

	assert.Equal(t, 1, b.FilledCount())
	filled, _ := b.IsFilled(0, 0)
	assert.True(t, filled)

	b.Reset()
	assert.Equal(t, 0, b.FilledCount())
	assert.Equal(t, 1, c.FilledCount())
}
