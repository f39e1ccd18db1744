package rules

import (
	"github.com/danhquyen2004/Block-Blast/pkg/game/board"
	"github.com/danhquyen2004/Block-Blast/pkg/game/shapes"
)

// FindMove returns the first anchor, in row-major order, where shape can be
// placed. Anchors range wide enough to cover shapes with negative offsets;
// CanPlace rejects the ones that push cells off the board.
func FindMove(b *board.Board, shape shapes.Shape) (board.Coord, bool) {
	if shape.CellCount() == 0 {
		return board.Coord{}, false
	}
	minDX, minDY, maxDX, maxDY := shape.Bounds()
	for y := -maxDY; y < b.Height()-minDY; y++ {
		for x := -maxDX; x < b.Width()-minDX; x++ {
			anchor := board.Coord{X: x, Y: y}
			if CanPlace(b, shape, anchor) {
				return anchor, true
			}
		}
	}
	return board.Coord{}, false
}

// HasAnyMove reports whether at least one of the pending shapes fits somewhere.
func HasAnyMove(b *board.Board, pending []shapes.Shape) bool {
	for _, s := range pending {
		if _, ok := FindMove(b, s); ok {
			return true
		}
	}
	return false
}
