package game

import (
	"strconv"
	"strings"

	"github.com/dimaq12/minesweeper/models"
)

type UserAction int

const (
	ActionUnknown UserAction = iota
	ActionOpen
	ActionFlag
)

func (a UserAction) String() string {
	switch a {
	case ActionOpen:
		return "open"
	case ActionFlag:
		return "flag"
	default:
		return "unknown"
	}
}

// maxColumnLetters keeps column labels from overflowing int.
const maxColumnLetters = 3

// ParseUserAction maps "1" to open and "2" to flag.
func ParseUserAction(input string) UserAction {
	switch strings.TrimSpace(input) {
	case "1":
		return ActionOpen
	case "2":
		return ActionFlag
	default:
		return ActionUnknown
	}
}

// ParseCellPosition reads coordinates such as "a1" or "ab12": letters name
// the column, digits the 1-based row. It does not know the board size.
func ParseCellPosition(input string) (models.Position, error) {
	s := strings.ToLower(strings.TrimSpace(input))

	split := strings.IndexFunc(s, func(r rune) bool { return r < 'a' || r > 'z' })
	if split <= 0 || split > maxColumnLetters {
		return models.Position{}, NewGameError("invalid input: %q", input)
	}
	letters, digits := s[:split], s[split:]

	row, err := strconv.Atoi(digits)
	if err != nil || row < 1 || strings.HasPrefix(digits, "+") {
		return models.Position{}, NewGameError("invalid input: %q", input)
	}

	col := 0
	for _, r := range letters {
		col = col*26 + int(r-'a') + 1
	}

	return models.Position{Row: row - 1, Col: col - 1}, nil
}

// ColumnLabel is the inverse of the column part of ParseCellPosition:
// 0 is "a", 25 is "z", 26 is "aa".
func ColumnLabel(col int) string {
	var label []byte
	for n := col + 1; n > 0; n = (n - 1) / 26 {
		label = append([]byte{byte('a' + (n-1)%26)}, label...)
	}
	return string(label)
}
