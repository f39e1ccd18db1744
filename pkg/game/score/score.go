// Package score implements the score and combo state machine.
//
// The combo is "active" while CurrentCombo > 0. Each clearing placement adds
// to it; ComboDecayThreshold consecutive non-clearing placements reset it.
package score

import (
	"math"

	"github.com/danhquyen2004/Block-Blast/pkg/game/constants"
)

// Config holds the scoring rules.
type Config struct {
	// BasePerCell is awarded per cell of every placed piece.
	BasePerCell int `json:"basePerCell"`
	// BasePerLine is awarded per cleared row or column before the combo multiplier.
	BasePerLine int `json:"basePerLine"`
	// ComboMultiplier scales the line award: 1 + combo*ComboMultiplier.
	ComboMultiplier float64 `json:"comboMultiplier"`
	// ComboDecayThreshold is the number of consecutive non-clearing placements
	// after which an active combo resets.
	ComboDecayThreshold int `json:"comboDecayThreshold"`
	// ComboPerLine adds one combo step per cleared line when true, and one
	// step per clearing placement when false.
	ComboPerLine bool `json:"comboPerLine"`
}

// DefaultConfig returns the standard scoring rules.
func DefaultConfig() Config {
	return Config{
		BasePerCell:         constants.BasePerCell,
		BasePerLine:         constants.BasePerLine,
		ComboMultiplier:     constants.ComboMultiplier,
		ComboDecayThreshold: constants.ComboDecayThreshold,
		ComboPerLine:        true,
	}
}

// State is the externally visible score state.
type State struct {
	CurrentScore        int `json:"currentScore"`
	BestScore           int `json:"bestScore"`
	CurrentCombo        int `json:"currentCombo"`
	MovesSinceLastClear int `json:"movesSinceLastClear"`
}

// Delta describes the outcome of one scoring call.
type Delta struct {
	Points           int  `json:"points"`
	Score            int  `json:"score"`
	Combo            int  `json:"combo"`
	BestScore        int  `json:"bestScore"`
	ComboChanged     bool `json:"comboChanged"`
	BestScoreChanged bool `json:"bestScoreChanged"`
}

// Engine owns a State and mutates it only through OnBlockPlaced and
// OnLinesCleared (plus the Reset/Load lifecycle calls).
type Engine struct {
	config Config
	state  State
}

func NewEngine(config Config) *Engine {
	return &Engine{config: config}
}

func (e *Engine) Config() Config {
	return e.config
}

func (e *Engine) State() State {
	return e.state
}

// OnBlockPlaced awards cellCount * BasePerCell. The combo is not touched.
func (e *Engine) OnBlockPlaced(cellCount int) Delta {
	points := cellCount * e.config.BasePerCell
	e.state.CurrentScore += points
	return e.finish(points, false)
}

// OnLinesCleared applies the line award and combo transition for one placement.
func (e *Engine) OnLinesCleared(lineCount int) Delta {
	if lineCount > 0 {
		multiplier := 1 + float64(e.state.CurrentCombo)*e.config.ComboMultiplier
		points := LinePoints(lineCount, e.config.BasePerLine, multiplier)
		e.state.CurrentScore += points
		if e.config.ComboPerLine {
			e.state.CurrentCombo += lineCount
		} else {
			e.state.CurrentCombo++
		}
		e.state.MovesSinceLastClear = 0
		return e.finish(points, true)
	}

	e.state.MovesSinceLastClear++
	comboChanged := false
	if e.state.MovesSinceLastClear >= e.config.ComboDecayThreshold && e.state.CurrentCombo > 0 {
		e.state.CurrentCombo = 0
		comboChanged = true
	}
	return e.finish(0, comboChanged)
}

// LinePoints computes round(lineCount * basePerLine * multiplier) with ties
// rounded to the nearest even integer.
func LinePoints(lineCount, basePerLine int, multiplier float64) int {
	return int(math.RoundToEven(float64(lineCount*basePerLine) * multiplier))
}

func (e *Engine) finish(points int, comboChanged bool) Delta {
	bestChanged := false
	if e.state.CurrentScore > e.state.BestScore {
		e.state.BestScore = e.state.CurrentScore
		bestChanged = true
	}
	return Delta{
		Points:           points,
		Score:            e.state.CurrentScore,
		Combo:            e.state.CurrentCombo,
		BestScore:        e.state.BestScore,
		ComboChanged:     comboChanged,
		BestScoreChanged: bestChanged,
	}
}

// Reset starts a new session. BestScore is kept.
func (e *Engine) Reset() {
	e.state.CurrentScore = 0
	e.state.CurrentCombo = 0
	e.state.MovesSinceLastClear = 0
}

// Load replaces the per-session fields from a saved state. BestScore is not
// taken from the save; it only moves through SetBestScore or live scoring.
func (e *Engine) Load(s State) {
	e.state.CurrentScore = max(s.CurrentScore, 0)
	e.state.CurrentCombo = max(s.CurrentCombo, 0)
	e.state.MovesSinceLastClear = max(s.MovesSinceLastClear, 0)
}

// SetBestScore raises the best score to at least best.
func (e *Engine) SetBestScore(best int) {
	if best > e.state.BestScore {
		e.state.BestScore = best
	}
}
