package game

import (
	"bufio"
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dimaq12/minesweeper/models"
)

// newFixedBoard builds a board with mines exactly at the given positions.
func newFixedBoard(t *testing.T, rows, cols int, mines ...models.Position) *models.Board {
	t.Helper()
	logger, _ := test.NewNullLogger()

	b, err := models.NewBoard(
		models.Level{Name: "test", Rows: rows, Cols: cols, Mines: len(mines)},
		models.WithPlacer(models.FixedPlacer(mines)),
		models.WithLogger(logger),
	)
	require.NoError(t, err)
	b.InitializeGame()
	return b
}

func playConsole(t *testing.T, board *models.Board, input string) string {
	t.Helper()
	var out bytes.Buffer
	s := NewConsoleService(board, bufio.NewScanner(strings.NewReader(input)), &out)
	require.NoError(t, s.Run(context.Background()))
	return out.String()
}

func TestConsoleShowBoard(t *testing.T) {
	board := newFixedBoard(t, 1, 3, models.Position{Row: 0, Col: 2})
	board.OpenAt(models.Position{Row: 0, Col: 0})

	var out bytes.Buffer
	NewConsoleRenderer(&out).ShowBoard(board)

	assert.Equal(t, "   a b c\n1  ■ 1 □\n\n", out.String())
}

func TestConsoleShowBoardPadsWideBoards(t *testing.T) {
	board := newFixedBoard(t, 10, 27, models.Position{Row: 0, Col: 0})

	var out bytes.Buffer
	NewConsoleRenderer(&out).ShowBoard(board)

	lines := strings.Split(out.String(), "\n")
	assert.True(t, strings.HasPrefix(lines[0], "    a  b "), lines[0])
	assert.True(t, strings.HasSuffix(lines[0], "z  aa"), lines[0])
	assert.True(t, strings.HasPrefix(lines[1], " 1  □  □ "), lines[1])
	assert.True(t, strings.HasPrefix(lines[10], "10  □ "), lines[10])
}

func TestConsoleWinByFlagging(t *testing.T) {
	board := newFixedBoard(t, 1, 3, models.Position{Row: 0, Col: 2})

	out := playConsole(t, board, "a1\n1\nc1\n2\n")

	assert.Contains(t, out, "Minesweeper game start!")
	assert.Contains(t, out, "1  ■ 1 ⚑")
	assert.Contains(t, out, "GAME CLEAR!")
	assert.True(t, board.IsWon())
}

func TestConsoleLoseOnMine(t *testing.T) {
	board := newFixedBoard(t, 1, 3, models.Position{Row: 0, Col: 2})

	out := playConsole(t, board, "c1\n1\n")

	assert.Contains(t, out, "1  □ □ ☼")
	assert.Contains(t, out, "GAME OVER!")
	assert.True(t, board.IsLost())
}

func TestConsoleReportsInputErrorsAndContinues(t *testing.T) {
	board := newFixedBoard(t, 1, 3, models.Position{Row: 0, Col: 2})

	out := playConsole(t, board, "d1\nzz\nb1\n3\nc1\n1\n")

	assert.Contains(t, out, "invalid coordinate selected: d1")
	assert.Contains(t, out, `invalid input: "zz"`)
	assert.Contains(t, out, "invalid action selected")
	assert.Contains(t, out, "GAME OVER!")
}

func TestConsoleStopsAtEndOfInput(t *testing.T) {
	board := newFixedBoard(t, 2, 2, models.Position{Row: 0, Col: 0})

	out := playConsole(t, board, "b2\n1\n")

	assert.True(t, board.IsInProgress())
	assert.NotContains(t, out, "GAME")
}

func TestConsoleCancelledContext(t *testing.T) {
	board := newFixedBoard(t, 2, 2, models.Position{Row: 0, Col: 0})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out bytes.Buffer
	s := NewConsoleService(board, bufio.NewScanner(strings.NewReader("a1\n1\n")), &out)
	assert.ErrorIs(t, s.Run(ctx), context.Canceled)
	assert.True(t, board.IsInProgress())
}

type panickingReader struct {
	LineReader
	panicked bool
}

func (r *panickingReader) Text() string {
	if !r.panicked {
		r.panicked = true
		panic("broken terminal")
	}
	return r.LineReader.Text()
}

func TestConsoleRecoversFromUnexpectedFaults(t *testing.T) {
	hook := test.NewGlobal()
	defer hook.Reset()

	board := newFixedBoard(t, 1, 3, models.Position{Row: 0, Col: 2})
	in := &panickingReader{LineReader: bufio.NewScanner(strings.NewReader("x\nc1\n1\n"))}

	var out bytes.Buffer
	require.NoError(t, NewConsoleService(board, in, &out).Run(context.Background()))

	assert.Contains(t, out.String(), "A problem occurred in the program.")
	assert.Contains(t, out.String(), "GAME OVER!")

	var logged bool
	for _, e := range hook.AllEntries() {
		if e.Level == logrus.ErrorLevel && e.Message == "turn failed" {
			logged = true
		}
	}
	assert.True(t, logged)
}

func TestConsoleStopsWhenInputFails(t *testing.T) {
	board := newFixedBoard(t, 1, 3, models.Position{Row: 0, Col: 2})
	in := bufio.NewScanner(strings.NewReader(strings.Repeat("a", 70000) + "\nc1\n1\n"))

	var out bytes.Buffer
	done := make(chan error, 1)
	go func() { done <- NewConsoleService(board, in, &out).Run(context.Background()) }()

	select {
	case err := <-done:
		assert.ErrorIs(t, err, bufio.ErrTooLong)
	case <-time.After(5 * time.Second):
		t.Fatal("Run kept looping after the reader failed")
	}
	assert.NotContains(t, out.String(), "A problem occurred in the program.")
	assert.True(t, board.IsInProgress())
}
