package repositories

import (
	"errors"
	"fmt"
)

type ErrNotFound struct {
	PlayerID string
}

func (e *ErrNotFound) Error() string {
	if e.PlayerID == "" {
		return "not found"
	}
	return fmt.Sprintf("no saved game for player %s", e.PlayerID)
}

func IsNotFound(err error) bool {
	var target *ErrNotFound
	return errors.As(err, &target)
}

func validatePlayerID(playerID string) error {
	if playerID == "" {
		return fmt.Errorf("player id must not be empty")
	}
	return nil
}
