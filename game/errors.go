package game

import (
	"errors"
	"fmt"
)

// GameError is a problem with the player's input. The game reports it and
// keeps going.
type GameError struct {
	msg string
}

func NewGameError(format string, args ...interface{}) *GameError {
	return &GameError{msg: fmt.Sprintf(format, args...)}
}

func (e *GameError) Error() string {
	return e.msg
}

func IsGameError(err error) bool {
	var gameErr *GameError
	return errors.As(err, &gameErr)
}

var (
	errGameFinished = errors.New("game finished")
	errInputFailed  = errors.New("reading input failed")
)
