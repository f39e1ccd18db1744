package types

import "github.com/danhquyen2004/Block-Blast/pkg/game/board"

// Event is a notification produced by a game session. The host drains them
// after each call instead of subscribing to callbacks.
type Event interface {
	EventType() string
}

const (
	EventTypePiecePlaced      = "piecePlaced"
	EventTypeLinesCleared     = "linesCleared"
	EventTypeScoreChanged     = "scoreChanged"
	EventTypeComboChanged     = "comboChanged"
	EventTypeBestScoreChanged = "bestScoreChanged"
	EventTypePendingRefilled  = "pendingRefilled"
	EventTypeGameOver         = "gameOver"
)

type PiecePlacedEvent struct {
	Slot   int           `json:"slot"`
	Piece  Piece         `json:"piece"`
	Anchor board.Coord   `json:"anchor"`
	Cells  []board.Coord `json:"cells"`
}

func (PiecePlacedEvent) EventType() string { return EventTypePiecePlaced }

type LinesClearedEvent struct {
	Rows    []int         `json:"rows"`
	Columns []int         `json:"columns"`
	Cells   []board.Coord `json:"cells"`
}

func (LinesClearedEvent) EventType() string { return EventTypeLinesCleared }

type ScoreChangedEvent struct {
	Points int `json:"points"`
	Score  int `json:"score"`
}

func (ScoreChangedEvent) EventType() string { return EventTypeScoreChanged }

type ComboChangedEvent struct {
	Combo int `json:"combo"`
}

func (ComboChangedEvent) EventType() string { return EventTypeComboChanged }

type BestScoreChangedEvent struct {
	BestScore int `json:"bestScore"`
}

func (BestScoreChangedEvent) EventType() string { return EventTypeBestScoreChanged }

type PendingRefilledEvent struct {
	Pending PendingSet `json:"pending"`
}

func (PendingRefilledEvent) EventType() string { return EventTypePendingRefilled }

type GameOverEvent struct {
	Score     int `json:"score"`
	BestScore int `json:"bestScore"`
}

func (GameOverEvent) EventType() string { return EventTypeGameOver }
