package game

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/danhquyen2004/Block-Blast/pkg/game/board"
	"github.com/danhquyen2004/Block-Blast/pkg/game/constants"
	"github.com/danhquyen2004/Block-Blast/pkg/game/rules"
	"github.com/danhquyen2004/Block-Blast/pkg/game/score"
	"github.com/danhquyen2004/Block-Blast/pkg/game/shapes"
	"github.com/danhquyen2004/Block-Blast/pkg/game/snapshot"
	"github.com/danhquyen2004/Block-Blast/pkg/game/types"
	"github.com/danhquyen2004/Block-Blast/pkg/log"
	"github.com/danhquyen2004/Block-Blast/pkg/messages"
	"github.com/danhquyen2004/Block-Blast/pkg/queue"
	"github.com/danhquyen2004/Block-Blast/pkg/workers"
)

var (
	ErrGameOver           = errors.New("game is over")
	ErrInvalidSlot        = errors.New("invalid pending slot")
	ErrPieceAlreadyPlaced = errors.New("piece already placed")
)

// Rules are the per-session game parameters.
type Rules struct {
	BoardWidth   int
	BoardHeight  int
	PendingCount int
	VariantCount int
	Score        score.Config
}

func DefaultRules() Rules {
	return Rules{
		BoardWidth:   constants.BoardWidth,
		BoardHeight:  constants.BoardHeight,
		PendingCount: constants.PendingCount,
		VariantCount: constants.VariantCount,
		Score:        score.DefaultConfig(),
	}
}

func (r Rules) restoreOptions() snapshot.RestoreOptions {
	return snapshot.RestoreOptions{
		DefaultWidth:  r.BoardWidth,
		DefaultHeight: r.BoardHeight,
		PendingCount:  r.PendingCount,
	}
}

// Session is one running game. All methods are safe for concurrent use;
// turns are applied one at a time.
type Session struct {
	mu sync.Mutex

	id       string
	playerID string
	rules    Rules
	catalog  *shapes.Catalog
	rnd      shapes.RandomSource

	board    *board.Board
	score    *score.Engine
	pending  types.PendingSet
	gameOver bool

	events       queue.Queue[types.Event]
	saveRequests chan<- workers.SaveRequest
	lastActive   time.Time
	logger       *log.Logger
}

// NewSessionOptions contains options for creating a new Session.
type NewSessionOptions struct {
	ID       string
	PlayerID string
	Rules    Rules
	Catalog  *shapes.Catalog
	Random   shapes.RandomSource
	// SaveRequests receives autosaves and best-score writes. It may be nil.
	SaveRequests chan<- workers.SaveRequest
	// Events defaults to an in-memory queue.
	Events queue.Queue[types.Event]
}

// NewSession creates a session with an empty board. Call StartNewGame or
// Resume before playing.
func NewSession(opts NewSessionOptions) (*Session, error) {
	if opts.Catalog == nil {
		opts.Catalog = shapes.DefaultCatalog()
	}
	if opts.Random == nil {
		return nil, fmt.Errorf("random source is required")
	}
	if opts.Rules.PendingCount <= 0 || opts.Rules.VariantCount <= 0 {
		return nil, fmt.Errorf("invalid rules: %d pending, %d variants", opts.Rules.PendingCount, opts.Rules.VariantCount)
	}
	b, err := board.New(opts.Rules.BoardWidth, opts.Rules.BoardHeight)
	if err != nil {
		return nil, fmt.Errorf("failed to create board: %w", err)
	}
	if opts.Events == nil {
		opts.Events = queue.NewInMemoryQueue[types.Event](queue.QueueBufferSize)
	}

	pending := make(types.PendingSet, opts.Rules.PendingCount)
	for i := range pending {
		pending[i] = types.AbsentPiece
	}

	return &Session{
		id:           opts.ID,
		playerID:     opts.PlayerID,
		rules:        opts.Rules,
		catalog:      opts.Catalog,
		rnd:          opts.Random,
		board:        b,
		score:        score.NewEngine(opts.Rules.Score),
		pending:      pending,
		events:       opts.Events,
		saveRequests: opts.SaveRequests,
		lastActive:   time.Now(),
		logger:       log.With("session", opts.ID).With("player", opts.PlayerID),
	}, nil
}

func (s *Session) ID() string {
	return s.id
}

func (s *Session) PlayerID() string {
	return s.playerID
}

// LastActive is the time of the last state-changing call.
func (s *Session) LastActive() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastActive
}

func (s *Session) IsGameOver() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.gameOver
}

// SetBestScore raises the session's best score, typically from the stored
// value when the session is created.
func (s *Session) SetBestScore(best int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.score.SetBestScore(best)
}

// StartNewGame clears the board and score and deals a fresh pending set.
// The best score is kept.
func (s *Session) StartNewGame() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.board.Reset()
	s.score.Reset()
	s.gameOver = false
	s.lastActive = time.Now()

	state := s.score.State()
	s.emit(types.ScoreChangedEvent{Points: 0, Score: state.CurrentScore})
	s.emit(types.ComboChangedEvent{Combo: state.CurrentCombo})
	s.refill()
	if !s.checkGameOver() {
		s.requestSave(workers.SaveRequest{
			Kind:     workers.SaveKindGame,
			PlayerID: s.playerID,
			Snapshot: s.capture(),
		})
	}
	s.logger.Debug("Started new game")
}

// Resume replaces the live state with a saved snapshot. A corrupt snapshot
// leaves the session untouched. The stored best score is ignored in favour
// of the session's own.
func (s *Session) Resume(snap *snapshot.Snapshot) error {
	restored, err := snapshot.Restore(snap, s.catalog, s.rules.restoreOptions())
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.board = restored.Board
	s.score.Load(restored.Score)
	s.pending = restored.Pending
	s.gameOver = false
	s.lastActive = time.Now()

	if restored.AllAbsent() {
		s.refill()
	} else {
		s.emit(types.PendingRefilledEvent{Pending: s.pending.Copy()})
	}
	s.checkGameOver()
	s.logger.Debug("Resumed game with score %d", s.score.State().CurrentScore)
	return nil
}

// pieceAt returns the active piece in slot and its shape.
func (s *Session) pieceAt(slot int) (types.Piece, shapes.Shape, error) {
	if slot < 0 || slot >= len(s.pending) {
		return types.Piece{}, shapes.Shape{}, fmt.Errorf("%w: %d", ErrInvalidSlot, slot)
	}
	piece := s.pending[slot]
	if piece.Absent() {
		return types.Piece{}, shapes.Shape{}, fmt.Errorf("%w: slot %d", ErrPieceAlreadyPlaced, slot)
	}
	shape, err := s.catalog.ShapeAt(piece.ShapeIndex)
	if err != nil {
		return types.Piece{}, shapes.Shape{}, err
	}
	return piece, shape, nil
}

// Preview reports whether the piece in slot fits at anchor and which lines it
// would complete. The board is not modified.
func (s *Session) Preview(slot int, anchor board.Coord) (*messages.PreviewResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.gameOver {
		return nil, ErrGameOver
	}
	_, shape, err := s.pieceAt(slot)
	if err != nil {
		return nil, err
	}

	result := &messages.PreviewResult{
		Valid:      rules.CanPlace(s.board, shape, anchor),
		Cells:      rules.AbsoluteCells(shape, anchor),
		Rows:       []int{},
		Columns:    []int{},
		ClearCells: []board.Coord{},
	}
	if result.Valid {
		lines := rules.SimulateAfterPlacement(s.board, shape, anchor)
		result.Rows = lines.Rows
		result.Columns = lines.Columns
		result.ClearCells = rules.CellsToClear(s.board, lines)
	}
	return result, nil
}

// Place plays the piece in slot at anchor. An illegal placement is not an
// error: the result has Placed set to false and nothing changes.
func (s *Session) Place(slot int, anchor board.Coord) (*messages.TurnResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.gameOver {
		return nil, ErrGameOver
	}
	piece, shape, err := s.pieceAt(slot)
	if err != nil {
		return nil, err
	}

	result := &messages.TurnResult{
		Rows:    []int{},
		Columns: []int{},
		Cleared: []board.Coord{},
	}
	if !rules.CanPlace(s.board, shape, anchor) {
		result.Score = s.score.State()
		return result, nil
	}

	cells, err := rules.Commit(s.board, shape, anchor, piece.Variant)
	if err != nil {
		return nil, err
	}
	s.lastActive = time.Now()
	result.Placed = true
	s.emit(types.PiecePlacedEvent{Slot: slot, Piece: piece, Anchor: anchor, Cells: cells})

	placed := s.score.OnBlockPlaced(len(cells))
	result.Points += placed.Points
	s.emit(types.ScoreChangedEvent{Points: placed.Points, Score: placed.Score})

	lines := rules.FindCompletedLines(s.board)
	if !lines.Empty() {
		cleared := rules.CellsToClear(s.board, lines)
		if err := rules.Clear(s.board, cleared); err != nil {
			return nil, err
		}
		result.Rows = lines.Rows
		result.Columns = lines.Columns
		result.Cleared = cleared
		s.emit(types.LinesClearedEvent{Rows: lines.Rows, Columns: lines.Columns, Cells: cleared})
	}

	clearedDelta := s.score.OnLinesCleared(lines.Count())
	result.Points += clearedDelta.Points
	if clearedDelta.Points > 0 {
		s.emit(types.ScoreChangedEvent{Points: clearedDelta.Points, Score: clearedDelta.Score})
	}
	if clearedDelta.ComboChanged {
		s.emit(types.ComboChangedEvent{Combo: clearedDelta.Combo})
	}
	if placed.BestScoreChanged || clearedDelta.BestScoreChanged {
		s.emit(types.BestScoreChangedEvent{BestScore: clearedDelta.BestScore})
		s.requestSave(workers.SaveRequest{
			Kind:      workers.SaveKindBestScore,
			PlayerID:  s.playerID,
			BestScore: clearedDelta.BestScore,
		})
	}

	s.pending[slot].Placed = true
	if s.pending.AllAbsent() {
		s.refill()
		result.Refilled = true
	}

	if s.checkGameOver() {
		result.GameOver = true
	} else {
		s.requestSave(workers.SaveRequest{
			Kind:     workers.SaveKindGame,
			PlayerID: s.playerID,
			Snapshot: s.capture(),
		})
	}

	result.Score = s.score.State()
	s.logger.Trace("Placed slot %d at (%d,%d) for %d points", slot, anchor.X, anchor.Y, result.Points)
	return result, nil
}

// refill deals a new piece into every slot.
func (s *Session) refill() {
	for i := range s.pending {
		index, _ := s.catalog.RandomShape(s.rnd)
		s.pending[i] = types.Piece{
			ShapeIndex: index,
			Variant:    s.rnd.Intn(s.rules.VariantCount) + 1,
		}
	}
	s.emit(types.PendingRefilledEvent{Pending: s.pending.Copy()})
}

// checkGameOver ends the game when no active pending piece fits anywhere.
// Ending the game removes the player's save.
func (s *Session) checkGameOver() bool {
	var active []shapes.Shape
	for _, i := range s.pending.Active() {
		if shape, err := s.catalog.ShapeAt(s.pending[i].ShapeIndex); err == nil {
			active = append(active, shape)
		}
	}
	if rules.HasAnyMove(s.board, active) {
		return false
	}

	s.gameOver = true
	state := s.score.State()
	s.emit(types.GameOverEvent{Score: state.CurrentScore, BestScore: state.BestScore})
	s.requestSave(workers.SaveRequest{Kind: workers.SaveKindDelete, PlayerID: s.playerID})
	s.logger.Info("Game over with score %d (best %d)", state.CurrentScore, state.BestScore)
	return true
}

func (s *Session) capture() *snapshot.Snapshot {
	return snapshot.Capture(s.board, s.score.State(), s.pending)
}

// Snapshot captures a copy of the current state.
func (s *Session) Snapshot() *snapshot.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.capture()
}

// View returns the client-visible state.
func (s *Session) View() *messages.SessionView {
	s.mu.Lock()
	defer s.mu.Unlock()

	pending := make([]messages.PieceView, len(s.pending))
	for i, p := range s.pending {
		view := messages.PieceView{
			Slot:       i,
			ShapeIndex: p.ShapeIndex,
			VariantTag: p.Variant,
			IsPlaced:   p.Placed,
		}
		if shape, err := s.catalog.ShapeAt(p.ShapeIndex); err == nil {
			view.ShapeName = shape.Name()
			view.Offsets = shape.Offsets()
		}
		pending[i] = view
	}

	occupancy := make([]int, 0, s.board.Width()*s.board.Height())
	for _, v := range s.board.SnapshotOccupancy() {
		occupancy = append(occupancy, int(v))
	}

	return &messages.SessionView{
		SessionID: s.id,
		PlayerID:  s.playerID,
		Width:     s.board.Width(),
		Height:    s.board.Height(),
		Occupancy: occupancy,
		Tags:      s.board.SnapshotTags(),
		Pending:   pending,
		Score:     s.score.State(),
		GameOver:  s.gameOver,
	}
}

// Events drains and returns the notifications queued since the last call.
func (s *Session) Events() []types.Event {
	return s.events.ReadAllMessages()
}

func (s *Session) emit(e types.Event) {
	if err := s.events.Enqueue(e); err != nil {
		s.logger.Warn("Failed to queue %s event: %v", e.EventType(), err)
	}
}

// requestSave hands a save to the worker without blocking the turn.
func (s *Session) requestSave(req workers.SaveRequest) {
	if s.saveRequests == nil || s.playerID == "" {
		return
	}
	select {
	case s.saveRequests <- req:
	default:
		s.logger.Warn("Save queue is full, dropping %s save", req.Kind)
	}
}
