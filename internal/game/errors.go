package game

import (
	"errors"
	"fmt"
)

var (
	// ErrGameFinished is returned by every mutating command once the game
	// has left the playing status. Only NewGame is accepted afterwards.
	ErrGameFinished = errors.New("game finished")
	ErrGameOver     = fmt.Errorf("%w: lab accident", ErrGameFinished)
	ErrVictory      = fmt.Errorf("%w: boss defeated", ErrGameFinished)

	ErrInvalidRules = errors.New("invalid rules")
)
