// Package rules holds the stateless game rules: placement legality, line
// completion and clearing, and move availability.
package rules

import (
	"fmt"

	"github.com/danhquyen2004/Block-Blast/pkg/game/board"
	"github.com/danhquyen2004/Block-Blast/pkg/game/shapes"
)

// AbsoluteCells returns the board cells shape covers when placed at anchor.
func AbsoluteCells(shape shapes.Shape, anchor board.Coord) []board.Coord {
	cells := make([]board.Coord, 0, shape.CellCount())
	shape.ForEachOffset(func(o shapes.Offset) {
		cells = append(cells, anchor.Add(o.DX, o.DY))
	})
	return cells
}

// CanPlace reports whether every cell of shape at anchor is on the board and empty.
func CanPlace(b *board.Board, shape shapes.Shape, anchor board.Coord) bool {
	if shape.CellCount() == 0 {
		return false
	}
	for _, c := range AbsoluteCells(shape, anchor) {
		if !b.InBounds(c.X, c.Y) {
			return false
		}
		// bounds already checked
		if filled, _ := b.IsFilled(c.X, c.Y); filled {
			return false
		}
	}
	return true
}

// Commit fills the cells of shape at anchor with tag and returns them.
// It does not re-validate; callers must check CanPlace first.
func Commit(b *board.Board, shape shapes.Shape, anchor board.Coord, tag int) ([]board.Coord, error) {
	cells := AbsoluteCells(shape, anchor)
	for _, c := range cells {
		if err := b.Fill(c.X, c.Y, tag); err != nil {
			return nil, fmt.Errorf("failed to commit %s at (%d,%d): %w", shape.Name(), anchor.X, anchor.Y, err)
		}
	}
	return cells, nil
}
