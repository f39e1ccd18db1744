// Package autoplay picks placements for a headless player.
package autoplay

import (
	"fmt"

	"github.com/danhquyen2004/Block-Blast/pkg/game/board"
	"github.com/danhquyen2004/Block-Blast/pkg/game/rules"
	"github.com/danhquyen2004/Block-Blast/pkg/game/shapes"
	"github.com/danhquyen2004/Block-Blast/pkg/game/types"
)

// Move is a candidate placement.
type Move struct {
	Slot   int
	Anchor board.Coord
	Lines  rules.Lines
	Cells  int
}

func (m Move) value() int {
	return m.Lines.Count()*100 + m.Cells
}

// BestMove returns the legal placement that completes the most lines, then
// fills the most cells. Ties keep the lowest slot and the first anchor in
// row-major order. It reports false when no pending piece fits.
func BestMove(b *board.Board, catalog *shapes.Catalog, pending types.PendingSet) (Move, bool, error) {
	var best Move
	found := false
	for _, slot := range pending.Active() {
		shape, err := catalog.ShapeAt(pending[slot].ShapeIndex)
		if err != nil {
			return Move{}, false, fmt.Errorf("failed to get shape for slot %d: %v", slot, err)
		}
		minDX, minDY, maxDX, maxDY := shape.Bounds()
		for y := -maxDY; y < b.Height()-minDY; y++ {
			for x := -maxDX; x < b.Width()-minDX; x++ {
				anchor := board.Coord{X: x, Y: y}
				if !rules.CanPlace(b, shape, anchor) {
					continue
				}
				candidate := Move{
					Slot:   slot,
					Anchor: anchor,
					Lines:  rules.SimulateAfterPlacement(b, shape, anchor),
					Cells:  shape.CellCount(),
				}
				if !found || candidate.value() > best.value() {
					best = candidate
					found = true
				}
			}
		}
	}
	return best, found, nil
}
