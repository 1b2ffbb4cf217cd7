package models

import "fmt"

// Position addresses a single cell on the board by row and column.
type Position struct {
	Row int
	Col int
}

// Offset is a relative step from one position to another.
type Offset struct {
	DeltaRow int
	DeltaCol int
}

// SurroundingOffsets are the eight compass steps around a cell.
var SurroundingOffsets = [8]Offset{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// Project moves p by o. The second result is false when either resulting
// coordinate would be negative. Upper bounds are left to the caller.
func (p Position) Project(o Offset) (Position, bool) {
	row, col := p.Row+o.DeltaRow, p.Col+o.DeltaCol
	if row < 0 || col < 0 {
		return Position{}, false
	}
	return Position{Row: row, Col: col}, true
}

// Neighbors returns the positions around p that fit inside a rows x cols grid.
func (p Position) Neighbors(rows, cols int) []Position {
	neighbors := make([]Position, 0, len(SurroundingOffsets))
	for _, offset := range SurroundingOffsets {
		next, ok := p.Project(offset)
		if !ok {
			continue
		}
		if next.IsRowAtLeast(rows) || next.IsColAtLeast(cols) {
			continue
		}
		neighbors = append(neighbors, next)
	}
	return neighbors
}

func (p Position) IsRowAtLeast(rows int) bool {
	return p.Row >= rows
}

func (p Position) IsColAtLeast(cols int) bool {
	return p.Col >= cols
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}
