// Package snapshot converts live game state to and from its persisted form.
//
// A Snapshot is always a copy: capturing never aliases the live board or
// pending set, and restoring builds fresh objects. Live state is never merged
// with a snapshot piecemeal.
package snapshot

import (
	"errors"
	"fmt"

	"github.com/danhquyen2004/Block-Blast/pkg/game/board"
	"github.com/danhquyen2004/Block-Blast/pkg/game/score"
	"github.com/danhquyen2004/Block-Blast/pkg/game/shapes"
	"github.com/danhquyen2004/Block-Blast/pkg/game/types"
)

// ErrCorruptSnapshot is returned when a snapshot is malformed or incomplete.
var ErrCorruptSnapshot = errors.New("corrupt snapshot")

type CorruptSnapshotError struct {
	Reason string
}

func (e *CorruptSnapshotError) Error() string {
	return fmt.Sprintf("corrupt snapshot: %s", e.Reason)
}

func (e *CorruptSnapshotError) Is(target error) bool {
	return target == ErrCorruptSnapshot
}

func corrupt(format string, args ...interface{}) error {
	return &CorruptSnapshotError{Reason: fmt.Sprintf(format, args...)}
}

type PendingPiece struct {
	ShapeIndex int  `json:"shapeIndex"`
	VariantTag int  `json:"variantTag"`
	IsPlaced   bool `json:"isPlaced"`
}

// Snapshot is the persisted game state. Board slices are row-major (y*width + x).
type Snapshot struct {
	Width               int            `json:"width,omitempty"`
	Height              int            `json:"height,omitempty"`
	CurrentScore        int            `json:"currentScore"`
	BestScore           int            `json:"bestScore"`
	CurrentCombo        int            `json:"currentCombo"`
	MovesSinceLastClear int            `json:"movesSinceLastClear"`
	BoardOccupancy      []int          `json:"boardOccupancy"`
	BoardOccupantTags   []int          `json:"boardOccupantTags"`
	PendingPieces       []PendingPiece `json:"pendingPieces"`
}

// Capture copies the board, score state and pending pieces into a new Snapshot.
func Capture(b *board.Board, state score.State, pending types.PendingSet) *Snapshot {
	occupancy := b.SnapshotOccupancy()
	occ := make([]int, len(occupancy))
	for i, v := range occupancy {
		occ[i] = int(v)
	}

	pieces := make([]PendingPiece, len(pending))
	for i, p := range pending {
		pieces[i] = PendingPiece{
			ShapeIndex: p.ShapeIndex,
			VariantTag: p.Variant,
			IsPlaced:   p.Placed,
		}
	}

	return &Snapshot{
		Width:               b.Width(),
		Height:              b.Height(),
		CurrentScore:        state.CurrentScore,
		BestScore:           state.BestScore,
		CurrentCombo:        state.CurrentCombo,
		MovesSinceLastClear: state.MovesSinceLastClear,
		BoardOccupancy:      occ,
		BoardOccupantTags:   b.SnapshotTags(),
		PendingPieces:       pieces,
	}
}

// Copy returns a deep copy.
func (s *Snapshot) Copy() *Snapshot {
	c := *s
	c.BoardOccupancy = append([]int(nil), s.BoardOccupancy...)
	c.BoardOccupantTags = append([]int(nil), s.BoardOccupantTags...)
	c.PendingPieces = append([]PendingPiece(nil), s.PendingPieces...)
	return &c
}

// RestoreOptions supplies defaults for snapshots written without dimensions.
type RestoreOptions struct {
	DefaultWidth  int
	DefaultHeight int
	PendingCount  int
}

// Restored is the live state rebuilt from a snapshot.
type Restored struct {
	Board   *board.Board
	Score   score.State
	Pending types.PendingSet
}

// AllAbsent reports whether no usable pending piece survived the restore, in
// which case the caller must generate a fresh set.
func (r *Restored) AllAbsent() bool {
	return r.Pending.AllAbsent()
}

func (s *Snapshot) dimensions(opts RestoreOptions) (int, int) {
	if s.Width == 0 && s.Height == 0 {
		return opts.DefaultWidth, opts.DefaultHeight
	}
	return s.Width, s.Height
}

// Validate checks structural integrity without building live objects.
func (s *Snapshot) Validate(opts RestoreOptions) error {
	if s == nil {
		return corrupt("snapshot is nil")
	}
	w, h := s.dimensions(opts)
	if w <= 0 || h <= 0 {
		return corrupt("invalid board dimensions %dx%d", w, h)
	}
	if len(s.BoardOccupancy) != w*h {
		return corrupt("board occupancy has %d cells, want %d", len(s.BoardOccupancy), w*h)
	}
	if len(s.BoardOccupantTags) != w*h {
		return corrupt("board occupant tags has %d cells, want %d", len(s.BoardOccupantTags), w*h)
	}
	for i, v := range s.BoardOccupancy {
		if v != 0 && v != 1 {
			return corrupt("board occupancy[%d] = %d", i, v)
		}
	}
	if s.CurrentScore < 0 || s.CurrentCombo < 0 || s.MovesSinceLastClear < 0 {
		return corrupt("negative score state")
	}
	if opts.PendingCount > 0 && len(s.PendingPieces) > opts.PendingCount {
		return corrupt("%d pending pieces, want at most %d", len(s.PendingPieces), opts.PendingCount)
	}
	return nil
}

// Restore rebuilds board, score state and pending pieces. A pending piece
// with an out-of-range shape index or that is already placed is restored as
// absent. BestScore is returned as stored but callers keep their own.
func Restore(s *Snapshot, catalog *shapes.Catalog, opts RestoreOptions) (*Restored, error) {
	if err := s.Validate(opts); err != nil {
		return nil, err
	}
	w, h := s.dimensions(opts)
	b, err := board.New(w, h)
	if err != nil {
		return nil, corrupt("%v", err)
	}
	for i, v := range s.BoardOccupancy {
		if v == 0 {
			continue
		}
		if err := b.Fill(i%w, i/w, s.BoardOccupantTags[i]); err != nil {
			return nil, corrupt("%v", err)
		}
	}

	count := opts.PendingCount
	if count <= 0 {
		count = len(s.PendingPieces)
	}
	pending := make(types.PendingSet, count)
	for i := range pending {
		pending[i] = types.AbsentPiece
		if i >= len(s.PendingPieces) {
			continue
		}
		p := s.PendingPieces[i]
		if _, err := catalog.ShapeAt(p.ShapeIndex); err != nil {
			continue
		}
		pending[i] = types.Piece{
			ShapeIndex: p.ShapeIndex,
			Variant:    p.VariantTag,
			Placed:     p.IsPlaced,
		}
	}

	return &Restored{
		Board: b,
		Score: score.State{
			CurrentScore:        s.CurrentScore,
			BestScore:           s.BestScore,
			CurrentCombo:        s.CurrentCombo,
			MovesSinceLastClear: s.MovesSinceLastClear,
		},
		Pending: pending,
	}, nil
}
