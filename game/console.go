package game

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
	log "github.com/sirupsen/logrus"

	"github.com/dimaq12/minesweeper/models"
)

// LineReader is satisfied by *bufio.Scanner.
type LineReader interface {
	Scan() bool
	Text() string
	Err() error
}

type ConsoleRenderer struct {
	out io.Writer
}

func NewConsoleRenderer(out io.Writer) *ConsoleRenderer {
	return &ConsoleRenderer{out: out}
}

func (r *ConsoleRenderer) ShowGameStartComments() {
	fmt.Fprintln(r.out, ">>>>>>>>>>>>>>>>>>>>>>>>>>>>>>>>>>")
	fmt.Fprintln(r.out, "Minesweeper game start!")
	fmt.Fprintln(r.out, ">>>>>>>>>>>>>>>>>>>>>>>>>>>>>>>>>>")
}

func (r *ConsoleRenderer) ShowBoard(board *models.Board) {
	cellWidth := len(ColumnLabel(board.ColSize() - 1))
	rowWidth := len(fmt.Sprint(board.RowSize()))

	labels := make([]string, board.ColSize())
	for col := range labels {
		labels[col] = runewidth.FillRight(ColumnLabel(col), cellWidth)
	}
	fmt.Fprintf(r.out, "%s  %s\n", strings.Repeat(" ", rowWidth), strings.Join(labels, " "))

	for row := 0; row < board.RowSize(); row++ {
		signs := make([]string, board.ColSize())
		for col := range signs {
			snapshot := board.Snapshot(models.Position{Row: row, Col: col})
			signs[col] = runewidth.FillRight(CellSign(snapshot), cellWidth)
		}
		fmt.Fprintf(r.out, "%*d  %s\n", rowWidth, row+1, strings.Join(signs, " "))
	}

	fmt.Fprintln(r.out)
}

func (r *ConsoleRenderer) ShowGameWinningComment() {
	fmt.Fprintln(r.out, "You found all the mines. GAME CLEAR!")
}

func (r *ConsoleRenderer) ShowGameLosingComment() {
	fmt.Fprintln(r.out, "You stepped on a mine. GAME OVER!")
}

func (r *ConsoleRenderer) ShowCommentForCellSelection() {
	fmt.Fprintln(r.out, "Enter the coordinate to select. (e.g. a1)")
}

func (r *ConsoleRenderer) ShowCommentForUserAction() {
	fmt.Fprintln(r.out, "Choose an action for the selected cell. (1: open, 2: flag)")
}

func (r *ConsoleRenderer) ShowErrorMessage(err error) {
	fmt.Fprintln(r.out, err.Error())
}

func (r *ConsoleRenderer) ShowSimpleMessage(msg string) {
	fmt.Fprintln(r.out, msg)
}

// ConsoleService plays one game in a read-evaluate-print loop.
type ConsoleService struct {
	board    *models.Board
	in       LineReader
	renderer *ConsoleRenderer
}

func NewConsoleService(board *models.Board, in LineReader, out io.Writer) *ConsoleService {
	return &ConsoleService{
		board:    board,
		in:       in,
		renderer: NewConsoleRenderer(out),
	}
}

// Run loops until the game is won or lost, the input ends or ctx is done.
// Input errors and unexpected faults are reported and the loop goes on.
// A failed reader can't produce more lines, so its error ends the game.
func (s *ConsoleService) Run(ctx context.Context) error {
	s.renderer.ShowGameStartComments()

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		err := s.turn()
		switch {
		case err == nil:
		case errors.Is(err, errGameFinished):
			return nil
		case errors.Is(err, io.EOF):
			log.Debug("input closed")
			return nil
		case errors.Is(err, errInputFailed):
			log.WithError(err).Error("reading input failed")
			return err
		case IsGameError(err):
			s.renderer.ShowErrorMessage(err)
		default:
			log.WithError(err).Error("turn failed")
			s.renderer.ShowSimpleMessage("A problem occurred in the program.")
		}
	}
}

func (s *ConsoleService) turn() (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("recovered: %v", r)
		}
	}()

	s.renderer.ShowBoard(s.board)

	if s.board.IsWon() {
		s.renderer.ShowGameWinningComment()
		return errGameFinished
	}
	if s.board.IsLost() {
		s.renderer.ShowGameLosingComment()
		return errGameFinished
	}

	position, err := s.readCellPosition()
	if err != nil {
		return err
	}
	action, err := s.readUserAction()
	if err != nil {
		return err
	}

	return s.actOnCell(position, action)
}

func (s *ConsoleService) actOnCell(position models.Position, action UserAction) error {
	log.WithFields(log.Fields{
		"position": position,
		"action":   action,
	}).Debug("acting on cell")

	switch action {
	case ActionFlag:
		s.board.FlagAt(position)
	case ActionOpen:
		s.board.OpenAt(position)
	default:
		return NewGameError("invalid action selected")
	}
	return nil
}

func (s *ConsoleService) readCellPosition() (models.Position, error) {
	s.renderer.ShowCommentForCellSelection()
	line, err := s.readLine()
	if err != nil {
		return models.Position{}, err
	}

	position, err := ParseCellPosition(line)
	if err != nil {
		return models.Position{}, err
	}
	if s.board.IsInvalidCellPosition(position) {
		return models.Position{}, NewGameError("invalid coordinate selected: %s", strings.TrimSpace(line))
	}
	return position, nil
}

func (s *ConsoleService) readUserAction() (UserAction, error) {
	s.renderer.ShowCommentForUserAction()
	line, err := s.readLine()
	if err != nil {
		return ActionUnknown, err
	}
	return ParseUserAction(line), nil
}

func (s *ConsoleService) readLine() (string, error) {
	if !s.in.Scan() {
		if err := s.in.Err(); err != nil {
			return "", fmt.Errorf("%w: %w", errInputFailed, err)
		}
		return "", io.EOF
	}
	return s.in.Text(), nil
}
