package game

import (
	"context"
	"errors"
	"testing"
	"time"

	mocks "github.com/danhquyen2004/Block-Blast/mocks/github.com/danhquyen2004/Block-Blast/pkg/repositories"
	"github.com/danhquyen2004/Block-Blast/pkg/game/board"
	"github.com/danhquyen2004/Block-Blast/pkg/game/score"
	"github.com/danhquyen2004/Block-Blast/pkg/game/shapes"
	"github.com/danhquyen2004/Block-Blast/pkg/game/snapshot"
	"github.com/danhquyen2004/Block-Blast/pkg/game/types"
	"github.com/danhquyen2004/Block-Blast/pkg/repositories"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestManager(repo repositories.Repository) *SessionManager {
	return NewSessionManager(NewSessionManagerOptions{
		Repository: repo,
		Rules:      DefaultRules(),
		NewRandomSource: func() shapes.RandomSource {
			return &scriptedRandom{values: []int{0}}
		},
	})
}

func TestSessionManager_NewGame(t *testing.T) {
	ctx := context.Background()
	repo := repositories.NewInMemoryRepository()
	require.NoError(t, repo.SaveBestScore(ctx, "p1", 250))
	m := newTestManager(repo)

	s1, err := m.NewGame(ctx, "p1")
	require.NoError(t, err)
	s2, err := m.NewGame(ctx, "p1")
	require.NoError(t, err)

	assert.NotEqual(t, s1.ID(), s2.ID())
	assert.Equal(t, 2, m.Len())
	assert.Equal(t, 250, s1.View().Score.BestScore)
	assert.Equal(t, "p1", s1.PlayerID())

	got, ok := m.Get(s1.ID())
	require.True(t, ok)
	assert.Same(t, s1, got)

	assert.True(t, m.Remove(s1.ID()))
	assert.False(t, m.Remove(s1.ID()))
	_, ok = m.Get(s1.ID())
	assert.False(t, ok)
	assert.Equal(t, 1, m.Len())

	_, err = m.NewGame(ctx, "")
	assert.Error(t, err)
}

func TestSessionManager_ResumeGame(t *testing.T) {
	ctx := context.Background()
	repo := repositories.NewInMemoryRepository()
	m := newTestManager(repo)

	_, err := m.ResumeGame(ctx, "p1")
	assert.ErrorIs(t, err, ErrNoSavedGame)

	b, err := board.New(8, 8)
	require.NoError(t, err)
	require.NoError(t, b.Fill(2, 2, 5))
	saved := snapshot.Capture(b, score.State{CurrentScore: 30, BestScore: 30, CurrentCombo: 2}, types.PendingSet{
		{ShapeIndex: shapeSquare, Variant: 1},
		{ShapeIndex: shapeSingle, Variant: 2, Placed: true},
		{ShapeIndex: shapeBar3H, Variant: 3},
	})
	require.NoError(t, repo.SaveGame(ctx, "p1", saved))
	require.NoError(t, repo.SaveBestScore(ctx, "p1", 80))

	s, err := m.ResumeGame(ctx, "p1")
	require.NoError(t, err)
	view := s.View()
	assert.Equal(t, score.State{CurrentScore: 30, BestScore: 80, CurrentCombo: 2}, view.Score)
	assert.Equal(t, 1, view.Occupancy[2*8+2])
	assert.Equal(t, 5, view.Tags[2*8+2])
	assert.True(t, view.Pending[1].IsPlaced)

	best, err := m.BestScore(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, 80, best)
}

func TestSessionManager_ResumeCorrupt(t *testing.T) {
	ctx := context.Background()
	repo := repositories.NewInMemoryRepository()
	m := newTestManager(repo)

	require.NoError(t, repo.SaveGame(ctx, "p1", &snapshot.Snapshot{BoardOccupancy: []int{1}}))
	_, err := m.ResumeGame(ctx, "p1")
	assert.ErrorIs(t, err, snapshot.ErrCorruptSnapshot)
	assert.Equal(t, 0, m.Len())
}

func TestSessionManager_RepositoryErrors(t *testing.T) {
	ctx := context.Background()
	repo := mocks.NewRepository(t)
	m := newTestManager(repo)

	repo.EXPECT().LoadBestScore(mock.Anything, "p1").Return(0, errors.New("connection refused")).Once()
	_, err := m.NewGame(ctx, "p1")
	assert.Error(t, err)

	repo.EXPECT().LoadGame(mock.Anything, "p2").Return(nil, errors.New("connection refused")).Once()
	_, err = m.ResumeGame(ctx, "p2")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrNoSavedGame)

	assert.Equal(t, 0, m.Len())
}

func TestSessionManager_RemoveIdle(t *testing.T) {
	ctx := context.Background()
	m := newTestManager(repositories.NewInMemoryRepository())
	_, err := m.NewGame(ctx, "p1")
	require.NoError(t, err)
	_, err = m.NewGame(ctx, "p2")
	require.NoError(t, err)

	assert.Equal(t, 0, m.RemoveIdle(time.Hour))
	assert.Equal(t, 2, m.Len())

	time.Sleep(5 * time.Millisecond)
	assert.Equal(t, 2, m.RemoveIdle(time.Millisecond))
	assert.Equal(t, 0, m.Len())
}
