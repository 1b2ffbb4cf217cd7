package models

import (
	"math/rand"

	"github.com/sirupsen/logrus"
)

// Board owns the grid of cells, the mine budget and the game status.
// It is not safe for concurrent use.
//
// Board operations expect in-bounds positions. Callers check input with
// IsInvalidCellPosition, RowSize and ColSize before calling OpenAt or FlagAt.
type Board struct {
	cells     [][]*Cell
	rows      int
	cols      int
	mineCount int
	status    Status

	placer MinePlacer
	log    logrus.FieldLogger
}

type Option func(*Board)

// WithPlacer overrides how mines are chosen.
func WithPlacer(placer MinePlacer) Option {
	return func(b *Board) {
		b.placer = placer
	}
}

// WithRand places mines at random using r.
func WithRand(r *rand.Rand) Option {
	return func(b *Board) {
		b.placer = NewRandomPlacer(r)
	}
}

func WithLogger(log logrus.FieldLogger) Option {
	return func(b *Board) {
		b.log = log
	}
}

// NewBoard allocates a concealed, mine-free board for level.
// InitializeGame must be called before play.
func NewBoard(level Level, opts ...Option) (*Board, error) {
	if err := level.Validate(); err != nil {
		return nil, err
	}

	b := &Board{
		rows:      level.Rows,
		cols:      level.Cols,
		mineCount: level.Mines,
		status:    InProgress,
		log:       logrus.StandardLogger(),
	}
	for _, opt := range opts {
		opt(b)
	}
	if b.placer == nil {
		b.placer = NewRandomPlacer(nil)
	}

	b.initializeEmptyCells(b.positions())
	return b, nil
}

// InitializeGame resets the board: every cell is concealed again, mines are
// placed on distinct positions and the nearby counts are computed.
func (b *Board) InitializeGame() {
	b.status = InProgress

	positions := b.positions()
	b.initializeEmptyCells(positions)

	mines := b.placer.Place(positions, b.mineCount)
	if len(mines) != b.mineCount {
		b.log.WithFields(logrus.Fields{
			"wanted": b.mineCount,
			"placed": len(mines),
		}).Warn("placer returned a different number of mines")
	}
	for _, p := range mines {
		b.findCell(p).setMine()
	}

	for _, p := range positions {
		cell := b.findCell(p)
		if cell.IsMine() {
			continue
		}
		cell.setNearbyMines(b.countNearbyMines(p))
	}

	b.log.WithFields(logrus.Fields{
		"rows":  b.rows,
		"cols":  b.cols,
		"mines": len(mines),
	}).Debug("board initialized")
}

// OpenAt opens the cell at p. Opening a mine loses the game and opens
// nothing else. Opening any other cell reveals the connected area of empty
// cells and its numbered border.
func (b *Board) OpenAt(p Position) {
	if b.findCell(p).IsMine() {
		b.findCell(p).Open()
		b.changeStatus(Lost)
		return
	}

	b.openSurroundedCells(p)
	b.checkIfGameIsOver()
}

// FlagAt toggles the flag at p. A flag can complete the game.
func (b *Board) FlagAt(p Position) {
	b.findCell(p).Flag()
	b.checkIfGameIsOver()
}

func (b *Board) Snapshot(p Position) Snapshot {
	return b.findCell(p).Snapshot()
}

// Snapshots returns the display state of the whole board, row by row.
func (b *Board) Snapshots() [][]Snapshot {
	grid := make([][]Snapshot, b.rows)
	for row := range grid {
		grid[row] = make([]Snapshot, b.cols)
		for col := range grid[row] {
			grid[row][col] = b.cells[row][col].Snapshot()
		}
	}
	return grid
}

func (b *Board) IsInvalidCellPosition(p Position) bool {
	return p.Row < 0 || p.Col < 0 || p.IsRowAtLeast(b.rows) || p.IsColAtLeast(b.cols)
}

func (b *Board) RowSize() int { return b.rows }
func (b *Board) ColSize() int { return b.cols }
func (b *Board) MineCount() int { return b.mineCount }

func (b *Board) Status() Status { return b.status }
func (b *Board) IsInProgress() bool { return b.status == InProgress }
func (b *Board) IsWon() bool { return b.status == Won }
func (b *Board) IsLost() bool { return b.status == Lost }

func (b *Board) positions() []Position {
	positions := make([]Position, 0, b.rows*b.cols)
	for row := 0; row < b.rows; row++ {
		for col := 0; col < b.cols; col++ {
			positions = append(positions, Position{Row: row, Col: col})
		}
	}
	return positions
}

func (b *Board) initializeEmptyCells(positions []Position) {
	b.cells = make([][]*Cell, b.rows)
	for i := range b.cells {
		b.cells[i] = make([]*Cell, b.cols)
	}
	for _, p := range positions {
		b.cells[p.Row][p.Col] = NewCell()
	}
}

func (b *Board) countNearbyMines(p Position) int {
	count := 0
	for _, n := range p.Neighbors(b.rows, b.cols) {
		if b.findCell(n).IsMine() {
			count++
		}
	}
	return count
}

// openSurroundedCells is an iterative flood fill. Every popped position is
// either skipped or becomes opened, so the stack drains after at most
// 8*rows*cols pushes.
func (b *Board) openSurroundedCells(start Position) {
	stack := []Position{start}
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		cell := b.findCell(p)
		if cell.IsOpened() || cell.IsMine() {
			continue
		}
		cell.Open()

		// numbered cells are the border of the reveal
		if cell.HasNearbyMines() {
			continue
		}
		stack = append(stack, p.Neighbors(b.rows, b.cols)...)
	}
}

func (b *Board) checkIfGameIsOver() {
	if b.isAllCellChecked() {
		b.changeStatus(Won)
	}
}

func (b *Board) isAllCellChecked() bool {
	for _, row := range b.cells {
		for _, cell := range row {
			if !cell.IsChecked() {
				return false
			}
		}
	}
	return true
}

func (b *Board) changeStatus(status Status) {
	if b.status != InProgress {
		return
	}
	b.status = status
	b.log.WithField("status", status).Debug("game over")
}

func (b *Board) findCell(p Position) *Cell {
	return b.cells[p.Row][p.Col]
}
