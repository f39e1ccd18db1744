package workers

import (
	"context"
	"time"

	"github.com/danhquyen2004/Block-Blast/pkg/log"
)

// IdleSessionRemover drops sessions that have been idle for too long.
type IdleSessionRemover interface {
	RemoveIdle(maxIdle time.Duration) int
}

type ReaperWorker struct {
	sessions IdleSessionRemover
	maxIdle  time.Duration
	interval time.Duration
}

type NewReaperWorkerOptions struct {
	Sessions IdleSessionRemover
	MaxIdle  time.Duration
	Interval time.Duration
}

// NewReaperWorker creates a new ReaperWorker.
// The worker periodically forgets sessions nobody has played for MaxIdle.
// Their last autosave stays in the repository and can be resumed.
func NewReaperWorker(opts NewReaperWorkerOptions) *ReaperWorker {
	return &ReaperWorker{
		sessions: opts.Sessions,
		maxIdle:  opts.MaxIdle,
		interval: opts.Interval,
	}
}

func (w *ReaperWorker) Start(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			w.reap()
		}
	}
}

func (w *ReaperWorker) reap() {
	if removed := w.sessions.RemoveIdle(w.maxIdle); removed > 0 {
		log.Info("Removed %d idle sessions", removed)
	}
}
