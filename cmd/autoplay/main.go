package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/danhquyen2004/Block-Blast/pkg/config"
	"github.com/danhquyen2004/Block-Blast/pkg/game"
	"github.com/danhquyen2004/Block-Blast/pkg/game/autoplay"
	"github.com/danhquyen2004/Block-Blast/pkg/game/shapes"
	"github.com/danhquyen2004/Block-Blast/pkg/game/snapshot"
	"github.com/danhquyen2004/Block-Blast/pkg/log"
)

func main() {
	seed := flag.Int64("seed", time.Now().UnixNano(), "Random seed for piece generation")
	maxTurns := flag.Int("max-turns", 10000, "Stop after this many placements")
	logLevel := flag.String("log-level", "warn", "Log level")
	flag.Parse()

	parsedLogLevel, err := log.ParseLogLevel(*logLevel)
	if err != nil {
		panic(fmt.Sprintf("Failed to parse log level: %v", err))
	}
	log.SetDefaultLogger(log.New(os.Stderr, "", log.DefaultLoggerFlag, parsedLogLevel))

	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}
	rules := cfg.Game.Rules()
	catalog := shapes.DefaultCatalog()

	session, err := game.NewSession(game.NewSessionOptions{
		ID:       "autoplay",
		PlayerID: "autoplay",
		Rules:    rules,
		Catalog:  catalog,
		Random:   rand.New(rand.NewSource(*seed)),
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to create session: %v", err))
	}
	session.StartNewGame()

	restoreOpts := snapshot.RestoreOptions{
		DefaultWidth:  rules.BoardWidth,
		DefaultHeight: rules.BoardHeight,
		PendingCount:  rules.PendingCount,
	}

	turns, cleared := 0, 0
	for turns < *maxTurns && !session.IsGameOver() {
		state, err := snapshot.Restore(session.Snapshot(), catalog, restoreOpts)
		if err != nil {
			panic(fmt.Sprintf("Failed to read session state: %v", err))
		}
		move, ok, err := autoplay.BestMove(state.Board, catalog, state.Pending)
		if err != nil {
			panic(fmt.Sprintf("Failed to pick a move: %v", err))
		}
		if !ok {
			break
		}
		result, err := session.Place(move.Slot, move.Anchor)
		if err != nil {
			panic(fmt.Sprintf("Failed to place slot %d at %v: %v", move.Slot, move.Anchor, err))
		}
		if !result.Placed {
			panic(fmt.Sprintf("Planned move for slot %d at %v was rejected", move.Slot, move.Anchor))
		}
		turns++
		cleared += len(result.Rows) + len(result.Columns)
		log.Debug("Turn %d: slot %d at %v, +%d points, combo %d", turns, move.Slot, move.Anchor, result.Points, result.Score.CurrentCombo)
		session.Events()
	}

	final := session.View()
	fmt.Printf("seed=%d turns=%d lines=%d score=%d gameOver=%t\n", *seed, turns, cleared, final.Score.CurrentScore, final.GameOver)
}
