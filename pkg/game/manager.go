package game

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/danhquyen2004/Block-Blast/pkg/game/shapes"
	"github.com/danhquyen2004/Block-Blast/pkg/log"
	"github.com/danhquyen2004/Block-Blast/pkg/repositories"
	"github.com/danhquyen2004/Block-Blast/pkg/workers"
	"github.com/google/uuid"
)

// ErrNoSavedGame is returned by ResumeGame when the player has nothing to resume.
var ErrNoSavedGame = errors.New("no saved game")

// SessionManager tracks the running sessions by ID.
type SessionManager struct {
	lock            sync.RWMutex
	sessions        map[string]*Session
	repository      repositories.Repository
	rules           Rules
	catalog         *shapes.Catalog
	saveRequests    chan<- workers.SaveRequest
	newRandomSource func() shapes.RandomSource
}

// NewSessionManagerOptions contains options for creating a new SessionManager.
type NewSessionManagerOptions struct {
	Repository   repositories.Repository
	Rules        Rules
	Catalog      *shapes.Catalog
	SaveRequests chan<- workers.SaveRequest
	// NewRandomSource creates the piece generator for each session. Defaults
	// to a time-seeded math/rand source.
	NewRandomSource func() shapes.RandomSource
}

func NewSessionManager(opts NewSessionManagerOptions) *SessionManager {
	if opts.Catalog == nil {
		opts.Catalog = shapes.DefaultCatalog()
	}
	if opts.NewRandomSource == nil {
		opts.NewRandomSource = func() shapes.RandomSource {
			return rand.New(rand.NewSource(time.Now().UnixNano()))
		}
	}
	return &SessionManager{
		sessions:        make(map[string]*Session),
		repository:      opts.Repository,
		rules:           opts.Rules,
		catalog:         opts.Catalog,
		saveRequests:    opts.SaveRequests,
		newRandomSource: opts.NewRandomSource,
	}
}

func (m *SessionManager) Catalog() *shapes.Catalog {
	return m.catalog
}

func (m *SessionManager) Rules() Rules {
	return m.rules
}

func (m *SessionManager) newSession(ctx context.Context, playerID string) (*Session, error) {
	if playerID == "" {
		return nil, fmt.Errorf("player id must not be empty")
	}
	best, err := m.BestScore(ctx, playerID)
	if err != nil {
		return nil, err
	}
	session, err := NewSession(NewSessionOptions{
		ID:           uuid.NewString(),
		PlayerID:     playerID,
		Rules:        m.rules,
		Catalog:      m.catalog,
		Random:       m.newRandomSource(),
		SaveRequests: m.saveRequests,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}
	session.SetBestScore(best)
	return session, nil
}

// NewGame starts a fresh game for playerID, carrying over the stored best score.
func (m *SessionManager) NewGame(ctx context.Context, playerID string) (*Session, error) {
	session, err := m.newSession(ctx, playerID)
	if err != nil {
		return nil, err
	}
	session.StartNewGame()
	m.add(session)
	log.Debug("Created session %s for player %s", session.ID(), playerID)
	return session, nil
}

// ResumeGame continues the player's saved game. It returns ErrNoSavedGame
// when there is no save, and an error matching snapshot.ErrCorruptSnapshot
// when the save cannot be restored.
func (m *SessionManager) ResumeGame(ctx context.Context, playerID string) (*Session, error) {
	snap, err := m.repository.LoadGame(ctx, playerID)
	if err != nil {
		if repositories.IsNotFound(err) {
			return nil, fmt.Errorf("%w for player %s", ErrNoSavedGame, playerID)
		}
		return nil, fmt.Errorf("failed to load saved game: %w", err)
	}

	session, err := m.newSession(ctx, playerID)
	if err != nil {
		return nil, err
	}
	if err := session.Resume(snap); err != nil {
		return nil, fmt.Errorf("failed to resume saved game: %w", err)
	}
	m.add(session)
	log.Debug("Resumed session %s for player %s", session.ID(), playerID)
	return session, nil
}

// BestScore returns the stored best score for playerID.
func (m *SessionManager) BestScore(ctx context.Context, playerID string) (int, error) {
	best, err := m.repository.LoadBestScore(ctx, playerID)
	if err != nil {
		return 0, fmt.Errorf("failed to load best score: %w", err)
	}
	return best, nil
}

func (m *SessionManager) add(session *Session) {
	m.lock.Lock()
	defer m.lock.Unlock()
	m.sessions[session.ID()] = session
}

func (m *SessionManager) Get(sessionID string) (*Session, bool) {
	m.lock.RLock()
	defer m.lock.RUnlock()
	session, ok := m.sessions[sessionID]
	return session, ok
}

// Remove forgets a session. Its last autosave stays in the repository.
func (m *SessionManager) Remove(sessionID string) bool {
	m.lock.Lock()
	defer m.lock.Unlock()
	if _, ok := m.sessions[sessionID]; !ok {
		return false
	}
	delete(m.sessions, sessionID)
	return true
}

func (m *SessionManager) Len() int {
	m.lock.RLock()
	defer m.lock.RUnlock()
	return len(m.sessions)
}

// RemoveIdle forgets every session inactive for longer than maxIdle and
// returns how many were removed.
func (m *SessionManager) RemoveIdle(maxIdle time.Duration) int {
	cutoff := time.Now().Add(-maxIdle)

	m.lock.Lock()
	defer m.lock.Unlock()
	removed := 0
	for id, session := range m.sessions {
		if session.LastActive().Before(cutoff) {
			delete(m.sessions, id)
			removed++
		}
	}
	return removed
}
