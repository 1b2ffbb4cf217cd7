package models

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalidLevel = errors.New("invalid level")
	ErrUnknownLevel = errors.New("unknown level")
)

// Level holds the board dimensions and the number of mines to place.
type Level struct {
	Name  string
	Rows  int
	Cols  int
	Mines int
}

func (l Level) Validate() error {
	if l.Rows <= 0 || l.Cols <= 0 {
		return fmt.Errorf("%w: board must be at least 1x1, got %dx%d", ErrInvalidLevel, l.Rows, l.Cols)
	}
	if l.Mines <= 0 || l.Mines >= l.Rows*l.Cols {
		return fmt.Errorf("%w: mines must be in (0, %d), got %d", ErrInvalidLevel, l.Rows*l.Cols, l.Mines)
	}
	return nil
}

func (l Level) String() string {
	return fmt.Sprintf("%s %dx%d, %d mines", l.Name, l.Rows, l.Cols, l.Mines)
}

var (
	VeryBeginner = Level{Name: "very-beginner", Rows: 4, Cols: 5, Mines: 2}
	Beginner     = Level{Name: "beginner", Rows: 8, Cols: 10, Mines: 10}
	Middle       = Level{Name: "middle", Rows: 14, Cols: 18, Mines: 40}
	Advanced     = Level{Name: "advanced", Rows: 20, Cols: 24, Mines: 99}
)

var namedLevels = []Level{VeryBeginner, Beginner, Middle, Advanced}

// LevelByNumber returns one of the square presets numbered 1 to 5.
func LevelByNumber(level int) (Level, error) {
	switch level {
	case 1:
		return Level{Name: "level-1", Rows: 10, Cols: 10, Mines: 10}, nil // 10x10 board with 10 mines
	case 2:
		return Level{Name: "level-2", Rows: 15, Cols: 15, Mines: 40}, nil // 15x15 board with 40 mines
	case 3:
		return Level{Name: "level-3", Rows: 20, Cols: 20, Mines: 80}, nil // 20x20 board with 80 mines
	case 4:
		return Level{Name: "level-4", Rows: 25, Cols: 25, Mines: 125}, nil // 25x25 board with 125 mines
	case 5:
		return Level{Name: "level-5", Rows: 30, Cols: 30, Mines: 180}, nil // 30x30 board with 180 mines
	default:
		return Level{}, fmt.Errorf("%w: %d (expected 1-5)", ErrUnknownLevel, level)
	}
}

func LevelByName(name string) (Level, error) {
	for _, l := range namedLevels {
		if strings.EqualFold(l.Name, name) {
			return l, nil
		}
	}
	return Level{}, fmt.Errorf("%w: %q", ErrUnknownLevel, name)
}
