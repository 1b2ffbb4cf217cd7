package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dimaq12/minesweeper/models"
)

func TestParseCellPosition(t *testing.T) {
	tests := []struct {
		input string
		want  models.Position
	}{
		{"a1", models.Position{Row: 0, Col: 0}},
		{"b3", models.Position{Row: 2, Col: 1}},
		{" J10 ", models.Position{Row: 9, Col: 9}},
		{"z1", models.Position{Row: 0, Col: 25}},
		{"aa1", models.Position{Row: 0, Col: 26}},
		{"ad30", models.Position{Row: 29, Col: 29}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseCellPosition(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseCellPositionRejectsMalformedInput(t *testing.T) {
	for _, input := range []string{"", "a", "1", "1a", "a0", "a-1", "a+1", "a1b", "abcd1", "é1"} {
		_, err := ParseCellPosition(input)
		assert.True(t, IsGameError(err), "input %q: %v", input, err)
	}
}

func TestColumnLabelRoundTrip(t *testing.T) {
	assert.Equal(t, "a", ColumnLabel(0))
	assert.Equal(t, "z", ColumnLabel(25))
	assert.Equal(t, "aa", ColumnLabel(26))
	assert.Equal(t, "az", ColumnLabel(51))
	assert.Equal(t, "ba", ColumnLabel(52))

	for col := 0; col < 800; col++ {
		p, err := ParseCellPosition(ColumnLabel(col) + "1")
		require.NoError(t, err)
		assert.Equal(t, col, p.Col)
	}
}

func TestParseUserAction(t *testing.T) {
	assert.Equal(t, ActionOpen, ParseUserAction("1"))
	assert.Equal(t, ActionFlag, ParseUserAction(" 2\n"))
	assert.Equal(t, ActionUnknown, ParseUserAction("3"))
	assert.Equal(t, ActionUnknown, ParseUserAction(""))
}

func TestCellSign(t *testing.T) {
	assert.Equal(t, UncheckedSign, CellSign(models.UncheckedSnapshot()))
	assert.Equal(t, FlagSign, CellSign(models.FlaggedSnapshot()))
	assert.Equal(t, EmptySign, CellSign(models.EmptySnapshot()))
	assert.Equal(t, MineSign, CellSign(models.MineSnapshot()))
	assert.Equal(t, "3", CellSign(models.NumberSnapshot(3)))
}
