package messages

import (
	"encoding/json"
	"fmt"

	"github.com/danhquyen2004/Block-Blast/pkg/game/board"
	"github.com/danhquyen2004/Block-Blast/pkg/game/score"
	"github.com/danhquyen2004/Block-Blast/pkg/game/shapes"
	"github.com/danhquyen2004/Block-Blast/pkg/game/types"
)

const (
	// MessageBufferSize represents the maximum size of a socket frame
	MessageBufferSize = 16 * 1024
)

// Socket frame types
const (
	MessageTypeClientPlace   = "place"
	MessageTypeClientPreview = "preview"
	MessageTypeClientView    = "view"
	MessageTypeServerView    = "view"
	MessageTypeServerPreview = "preview"
	MessageTypeServerTurn    = "turn"
	MessageTypeServerEvent   = "event"
	MessageTypeServerError   = "error"
)

// Message is one socket frame.
type Message struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// NewMessage marshals payload into a frame of the given type.
func NewMessage(messageType string, payload interface{}) (*Message, error) {
	if payload == nil {
		return &Message{Type: messageType}, nil
	}
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal %s payload: %v", messageType, err)
	}
	return &Message{Type: messageType, Payload: b}, nil
}

// EventPayload wraps a game event with its type name.
type EventPayload struct {
	Event string      `json:"event"`
	Data  types.Event `json:"data"`
}

// NewEventMessage builds an event frame.
func NewEventMessage(e types.Event) (*Message, error) {
	return NewMessage(MessageTypeServerEvent, &EventPayload{Event: e.EventType(), Data: e})
}

// PlacementRequest selects a pending slot and the board cell its shape's
// origin should land on.
type PlacementRequest struct {
	Slot int `json:"slot"`
	X    int `json:"x"`
	Y    int `json:"y"`
}

func (r PlacementRequest) Anchor() board.Coord {
	return board.Coord{X: r.X, Y: r.Y}
}

type ErrorResponse struct {
	Error string `json:"error"`
}

// PieceView describes one pending slot.
type PieceView struct {
	Slot       int             `json:"slot"`
	ShapeIndex int             `json:"shapeIndex"`
	ShapeName  string          `json:"shapeName,omitempty"`
	VariantTag int             `json:"variantTag"`
	IsPlaced   bool            `json:"isPlaced"`
	Offsets    []shapes.Offset `json:"offsets,omitempty"`
}

// SessionView is the full client-visible state of a session.
type SessionView struct {
	SessionID string      `json:"sessionID"`
	PlayerID  string      `json:"playerID"`
	Width     int         `json:"width"`
	Height    int         `json:"height"`
	Occupancy []int       `json:"occupancy"`
	Tags      []int       `json:"tags"`
	Pending   []PieceView `json:"pending"`
	Score     score.State `json:"score"`
	GameOver  bool        `json:"gameOver"`
}

// PreviewResult reports whether a placement is legal and what it would clear.
type PreviewResult struct {
	Valid      bool          `json:"valid"`
	Cells      []board.Coord `json:"cells"`
	Rows       []int         `json:"rows"`
	Columns    []int         `json:"columns"`
	ClearCells []board.Coord `json:"clearCells"`
}

// TurnResult is the outcome of one placement attempt. Placed is false when
// the placement was illegal; nothing else changed in that case.
type TurnResult struct {
	Placed   bool          `json:"placed"`
	Points   int           `json:"points"`
	Rows     []int         `json:"rows"`
	Columns  []int         `json:"columns"`
	Cleared  []board.Coord `json:"cleared"`
	Score    score.State   `json:"score"`
	Refilled bool          `json:"refilled"`
	GameOver bool          `json:"gameOver"`
}

// BestScoreResponse is returned by the best-score endpoint.
type BestScoreResponse struct {
	PlayerID  string `json:"playerID"`
	BestScore int    `json:"bestScore"`
}

// ShapeView describes a catalog entry.
type ShapeView struct {
	Index   int             `json:"index"`
	Name    string          `json:"name"`
	Offsets []shapes.Offset `json:"offsets"`
}
