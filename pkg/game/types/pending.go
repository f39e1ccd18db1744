package types

// Piece is one of the pieces offered to the player. ShapeIndex refers to the
// shape catalog; Variant is a cosmetic tag copied onto the cells it fills.
type Piece struct {
	ShapeIndex int  `json:"shapeIndex"`
	Variant    int  `json:"variantTag"`
	Placed     bool `json:"isPlaced"`
}

// Absent reports whether the slot holds no playable piece.
func (p Piece) Absent() bool {
	return p.Placed || p.ShapeIndex < 0
}

// AbsentPiece fills an empty pending slot.
var AbsentPiece = Piece{ShapeIndex: -1, Placed: true}

// PendingSet is the fixed-size group of pieces offered at once.
type PendingSet []Piece

// Active returns the indices of slots that still hold a piece.
func (s PendingSet) Active() []int {
	var active []int
	for i, p := range s {
		if !p.Absent() {
			active = append(active, i)
		}
	}
	return active
}

// AllAbsent reports whether every slot has been used up.
func (s PendingSet) AllAbsent() bool {
	return len(s.Active()) == 0
}

// Copy returns an independent copy.
func (s PendingSet) Copy() PendingSet {
	c := make(PendingSet, len(s))
	copy(c, s)
	return c
}
