package workers

import (
	"context"
	"time"

	"github.com/danhquyen2004/Block-Blast/pkg/game/snapshot"
	"github.com/danhquyen2004/Block-Blast/pkg/log"
	"github.com/danhquyen2004/Block-Blast/pkg/repositories"
)

type SaveKind int

const (
	// SaveKindGame replaces the player's saved game with Snapshot
	SaveKindGame SaveKind = iota
	// SaveKindDelete removes the player's saved game
	SaveKindDelete
	// SaveKindBestScore raises the player's stored best score to BestScore
	SaveKindBestScore
)

func (k SaveKind) String() string {
	switch k {
	case SaveKindGame:
		return "game"
	case SaveKindDelete:
		return "delete"
	case SaveKindBestScore:
		return "best-score"
	default:
		return "unknown"
	}
}

// SaveRequest carries a captured copy of state. The sender must not keep a
// reference to Snapshot after sending.
type SaveRequest struct {
	Kind      SaveKind
	PlayerID  string
	Snapshot  *snapshot.Snapshot
	BestScore int
}

type SaveWorker struct {
	repository repositories.Repository
	requests   <-chan SaveRequest
	timeout    time.Duration
}

type NewSaveWorkerOptions struct {
	Repository repositories.Repository
	Requests   <-chan SaveRequest
	// Timeout bounds each repository call. Zero means no timeout.
	Timeout time.Duration
}

// NewSaveWorker creates a new SaveWorker.
// The worker writes save requests from game sessions to the repository
// one at a time, in the order they were sent.
func NewSaveWorker(opts NewSaveWorkerOptions) *SaveWorker {
	return &SaveWorker{
		repository: opts.Repository,
		requests:   opts.Requests,
		timeout:    opts.Timeout,
	}
}

// Start processes requests until ctx is cancelled or the request channel is
// closed. Requests still buffered when ctx is cancelled are discarded.
func (w *SaveWorker) Start(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case req, ok := <-w.requests:
			if !ok {
				return
			}
			if ctx.Err() != nil {
				return
			}
			w.handle(ctx, req)
		}
	}
}

func (w *SaveWorker) handle(ctx context.Context, req SaveRequest) {
	if w.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, w.timeout)
		defer cancel()
	}

	var err error
	switch req.Kind {
	case SaveKindGame:
		err = w.repository.SaveGame(ctx, req.PlayerID, req.Snapshot)
	case SaveKindDelete:
		err = w.repository.DeleteGame(ctx, req.PlayerID)
	case SaveKindBestScore:
		err = w.repository.SaveBestScore(ctx, req.PlayerID, req.BestScore)
	default:
		log.Error("Unknown save request kind: %d", req.Kind)
		return
	}
	if err != nil {
		log.Error("Failed to process %s save for player %s: %v", req.Kind, req.PlayerID, err)
		return
	}
	log.Trace("Processed %s save for player %s", req.Kind, req.PlayerID)
}
