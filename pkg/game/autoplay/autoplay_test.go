package autoplay

import (
	"testing"

	"github.com/danhquyen2004/Block-Blast/pkg/game/board"
	"github.com/danhquyen2004/Block-Blast/pkg/game/shapes"
	"github.com/danhquyen2004/Block-Blast/pkg/game/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	shapeSingle = 0
	shapeBar3H  = 3
	shapeSquare = 5
)

func TestBestMove_PrefersClearingPlacement(t *testing.T) {
	b, err := board.New(8, 8)
	require.NoError(t, err)
	// row 4 is missing only its last three cells
	for x := 0; x < 5; x++ {
		require.NoError(t, b.Fill(x, 4, 1))
	}

	pending := types.PendingSet{
		{ShapeIndex: shapeSquare, Variant: 1},
		{ShapeIndex: shapeBar3H, Variant: 1},
		{ShapeIndex: shapeSingle, Variant: 1},
	}
	move, ok, err := BestMove(b, shapes.DefaultCatalog(), pending)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 1, move.Slot)
	assert.Equal(t, board.Coord{X: 5, Y: 4}, move.Anchor)
	assert.Equal(t, []int{4}, move.Lines.Rows)
	assert.Equal(t, 1, move.Lines.Count())
}

func TestBestMove_LargestPieceWithoutClears(t *testing.T) {
	b, err := board.New(8, 8)
	require.NoError(t, err)
	pending := types.PendingSet{
		{ShapeIndex: shapeSingle, Variant: 1},
		{ShapeIndex: shapeSquare, Variant: 1},
		types.AbsentPiece,
	}
	move, ok, err := BestMove(b, shapes.DefaultCatalog(), pending)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 1, move.Slot)
	assert.Equal(t, board.Coord{X: 0, Y: 0}, move.Anchor)
	assert.Equal(t, 4, move.Cells)
}

func TestBestMove_NoMove(t *testing.T) {
	b, err := board.New(2, 2)
	require.NoError(t, err)
	require.NoError(t, b.Fill(0, 0, 1))
	require.NoError(t, b.Fill(1, 1, 1))

	_, ok, err := BestMove(b, shapes.DefaultCatalog(), types.PendingSet{{ShapeIndex: shapeSquare, Variant: 1}})
	require.NoError(t, err)
	assert.False(t, ok)

	_, ok, err = BestMove(b, shapes.DefaultCatalog(), types.PendingSet{types.AbsentPiece})
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestBestMove_InvalidShapeIndex(t *testing.T) {
	b, err := board.New(8, 8)
	require.NoError(t, err)
	_, _, err = BestMove(b, shapes.DefaultCatalog(), types.PendingSet{{ShapeIndex: 99, Variant: 1}})
	assert.Error(t, err)
}
