package score

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEngine_OnBlockPlaced(t *testing.T) {
	e := NewEngine(DefaultConfig())
	d := e.OnBlockPlaced(4)
	assert.Equal(t, 4, d.Points)
	assert.Equal(t, 4, e.State().CurrentScore)
	assert.Equal(t, 0, e.State().CurrentCombo)
	assert.Equal(t, 0, e.State().MovesSinceLastClear)
	assert.True(t, d.BestScoreChanged)
	assert.Equal(t, 4, d.BestScore)
}

func TestEngine_OnLinesCleared(t *testing.T) {
	e := NewEngine(DefaultConfig())
	d := e.OnLinesCleared(2)
	assert.Equal(t, 16, d.Points)
	assert.Equal(t, 16, e.State().CurrentScore)
	assert.Equal(t, 2, e.State().CurrentCombo)
	assert.True(t, d.ComboChanged)

	// multiplier 1 + 2*0.1 = 1.2, 1*8*1.2 = 9.6 -> 10
	d = e.OnLinesCleared(1)
	assert.Equal(t, 10, d.Points)
	assert.Equal(t, 26, d.Score)
	assert.Equal(t, 3, d.Combo)
}

func TestEngine_ComboPerPlacement(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ComboPerLine = false
	e := NewEngine(cfg)
	e.OnLinesCleared(3)
	assert.Equal(t, 1, e.State().CurrentCombo)
	e.OnLinesCleared(2)
	assert.Equal(t, 2, e.State().CurrentCombo)
}

func TestEngine_ComboDecay(t *testing.T) {
	e := NewEngine(DefaultConfig())
	e.OnLinesCleared(1)
	assert.Equal(t, 1, e.State().CurrentCombo)

	d := e.OnLinesCleared(0)
	assert.Equal(t, 1, d.Combo)
	assert.False(t, d.ComboChanged)
	assert.Equal(t, 1, e.State().MovesSinceLastClear)

	d = e.OnLinesCleared(0)
	assert.Equal(t, 1, d.Combo, "combo must survive the second miss")
	assert.Equal(t, 2, e.State().MovesSinceLastClear)

	d = e.OnLinesCleared(0)
	assert.Equal(t, 0, d.Combo, "combo resets on the third miss")
	assert.True(t, d.ComboChanged)
	assert.Equal(t, 3, e.State().MovesSinceLastClear)

	d = e.OnLinesCleared(0)
	assert.False(t, d.ComboChanged)
	assert.Equal(t, 4, e.State().MovesSinceLastClear)
}

func TestEngine_ClearResetsMoveCounter(t *testing.T) {
	e := NewEngine(DefaultConfig())
	e.OnLinesCleared(1)
	e.OnLinesCleared(0)
	e.OnLinesCleared(0)
	e.OnLinesCleared(1)
	assert.Equal(t, 0, e.State().MovesSinceLastClear)
	assert.Equal(t, 2, e.State().CurrentCombo)
	e.OnLinesCleared(0)
	e.OnLinesCleared(0)
	assert.Equal(t, 2, e.State().CurrentCombo)
}

func TestLinePoints_RoundHalfToEven(t *testing.T) {
	tests := []struct {
		name       string
		lines      int
		base       int
		multiplier float64
		want       int
	}{
		{name: "exact", lines: 2, base: 8, multiplier: 1.0, want: 16},
		{name: "round up", lines: 1, base: 8, multiplier: 1.1, want: 9},
		{name: "half to even up", lines: 1, base: 5, multiplier: 1.5, want: 8},
		{name: "half to even down", lines: 1, base: 5, multiplier: 2.5, want: 12},
		{name: "round down", lines: 1, base: 8, multiplier: 1.3, want: 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, LinePoints(tt.lines, tt.base, tt.multiplier))
		})
	}
}

func TestEngine_HalfPointCombo(t *testing.T) {
	e := NewEngine(Config{BasePerCell: 1, BasePerLine: 5, ComboMultiplier: 0.5, ComboDecayThreshold: 3, ComboPerLine: true})
	assert.Equal(t, 5, e.OnLinesCleared(1).Points)  // combo 0: 5*1.0
	assert.Equal(t, 8, e.OnLinesCleared(1).Points)  // combo 1: 5*1.5 = 7.5 -> 8
	assert.Equal(t, 10, e.OnLinesCleared(1).Points) // combo 2: 5*2.0
	assert.Equal(t, 12, e.OnLinesCleared(1).Points) // combo 3: 5*2.5 = 12.5 -> 12
}

func TestEngine_BestScore(t *testing.T) {
	e := NewEngine(DefaultConfig())
	e.SetBestScore(50)
	d := e.OnBlockPlaced(4)
	assert.False(t, d.BestScoreChanged)
	assert.Equal(t, 50, d.BestScore)

	e.Reset()
	assert.Equal(t, State{BestScore: 50}, e.State())

	e.SetBestScore(10)
	assert.Equal(t, 50, e.State().BestScore)

	for i := 0; i < 6; i++ {
		e.OnLinesCleared(1)
	}
	assert.Greater(t, e.State().CurrentScore, 50)
	assert.Equal(t, e.State().CurrentScore, e.State().BestScore)
}

func TestEngine_ScoreMonotonic(t *testing.T) {
	e := NewEngine(DefaultConfig())
	last := 0
	for i := 0; i < 40; i++ {
		e.OnBlockPlaced(i % 5)
		e.OnLinesCleared(i % 3)
		assert.GreaterOrEqual(t, e.State().CurrentScore, last)
		assert.GreaterOrEqual(t, e.State().BestScore, e.State().CurrentScore)
		last = e.State().CurrentScore
	}
}

func TestEngine_LoadKeepsBestScore(t *testing.T) {
	e := NewEngine(DefaultConfig())
	e.SetBestScore(100)
	e.Load(State{CurrentScore: 40, BestScore: 999, CurrentCombo: 2, MovesSinceLastClear: 1})
	assert.Equal(t, State{CurrentScore: 40, BestScore: 100, CurrentCombo: 2, MovesSinceLastClear: 1}, e.State())

	e.Load(State{CurrentScore: 120})
	assert.Equal(t, State{CurrentScore: 120, BestScore: 100}, e.State())

	// live scoring still raises it
	delta := e.OnBlockPlaced(1)
	assert.True(t, delta.BestScoreChanged)
	assert.Equal(t, 121, e.State().BestScore)
}
