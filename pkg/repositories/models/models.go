package models

import "github.com/danhquyen2004/Block-Blast/pkg/game/snapshot"

// SavedGame is a player's save slot.
type SavedGame struct {
	PlayerID  string             `json:"playerID"`
	UpdatedAt int64              `json:"updatedAt"`
	Snapshot  *snapshot.Snapshot `json:"snapshot"`
}

// BestScore is a player's best score, stored apart from the save slot so that
// deleting a finished game keeps it.
type BestScore struct {
	PlayerID  string `json:"playerID"`
	BestScore int    `json:"bestScore"`
	UpdatedAt int64  `json:"updatedAt"`
}
