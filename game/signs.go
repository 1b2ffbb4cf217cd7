package game

import (
	"strconv"

	"github.com/gdamore/tcell/v2"

	"github.com/dimaq12/minesweeper/models"
)

const (
	EmptySign     = "■"
	MineSign      = "☼"
	FlagSign      = "⚑"
	UncheckedSign = "□"
)

// CellSign returns the glyph drawn for a snapshot.
func CellSign(s models.Snapshot) string {
	switch s.Status {
	case models.EmptyRevealed:
		return EmptySign
	case models.Flagged:
		return FlagSign
	case models.MineRevealed:
		return MineSign
	case models.Number:
		return strconv.Itoa(s.NearbyMines)
	default:
		return UncheckedSign
	}
}

var numberColors = [...]tcell.Color{
	tcell.ColorWhite,
	tcell.ColorBlue,
	tcell.ColorGreen,
	tcell.ColorRed,
	tcell.ColorNavy,
	tcell.ColorMaroon,
	tcell.ColorTeal,
	tcell.ColorYellow,
	tcell.ColorGray,
}

func cellColor(s models.Snapshot) tcell.Color {
	switch s.Status {
	case models.Number:
		if s.NearbyMines < len(numberColors) {
			return numberColors[s.NearbyMines]
		}
		return tcell.ColorWhite
	case models.Flagged:
		return tcell.ColorOrange
	case models.MineRevealed:
		return tcell.ColorRed
	default:
		return tcell.ColorWhite
	}
}
