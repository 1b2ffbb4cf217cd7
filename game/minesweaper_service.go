package game

import (
	"context"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	log "github.com/sirupsen/logrus"

	"github.com/dimaq12/minesweeper/models"
)

type TaskType int

const (
	RenderTaskType TaskType = iota
	OpenTaskType
	FlagTaskType
	RestartTaskType
)

func (t TaskType) String() string {
	switch t {
	case RenderTaskType:
		return "render"
	case OpenTaskType:
		return "open"
	case FlagTaskType:
		return "flag"
	case RestartTaskType:
		return "restart"
	default:
		return "n/a"
	}
}

type Task struct {
	Type TaskType
	Row  int
	Col  int
}

func NewTask(taskType TaskType, row, col int) *Task {
	return &Task{Type: taskType, Row: row, Col: col}
}

const taskQueueSize = 16

// GameService runs one game session until it ends.
type GameService interface {
	Run(ctx context.Context) error
}

// MinesweeperService is the full-screen front-end. Key presses become tasks;
// the task pipeline is the only goroutine that touches the board and hands
// snapshot grids to the UI goroutine for drawing.
type MinesweeperService struct {
	board    *models.Board
	renderer *Renderer
	app      *tview.Application
	tasks    chan *Task
	draw     func(func())
	stopped  chan struct{}
}

func NewMinesweeperService(board *models.Board) *MinesweeperService {
	return &MinesweeperService{
		board:    board,
		renderer: NewRenderer(),
		stopped:  make(chan struct{}),
	}
}

func (s *MinesweeperService) Run(ctx context.Context) error {
	s.app = tview.NewApplication()
	s.draw = s.queueDraw
	s.tasks = make(chan *Task, taskQueueSize)

	s.renderer.DrawBoard(s.board.Snapshots())
	s.renderer.ShowStatus(s.board.Status(), s.board.MineCount())
	s.app.SetRoot(s.renderer.layout(), true)

	done := make(chan struct{})
	go s.taskPipeline(done)
	go func() {
		select {
		case <-ctx.Done():
			s.app.Stop()
		case <-done:
		}
	}()

	s.handleInput()

	err := s.app.Run()
	close(s.stopped)
	close(s.tasks)
	<-done
	return err
}

// queueDraw hands f to the UI goroutine. Nothing drains the update queue once
// the application has stopped, so later draws are dropped.
func (s *MinesweeperService) queueDraw(f func()) {
	select {
	case <-s.stopped:
		return
	default:
	}
	s.app.QueueUpdateDraw(f)
}

func (s *MinesweeperService) taskPipeline(done chan<- struct{}) {
	defer close(done)
	for task := range s.tasks {
		s.handleTask(task)
	}
}

func (s *MinesweeperService) handleTask(task *Task) {
	position := models.Position{Row: task.Row, Col: task.Col}

	switch task.Type {
	case OpenTaskType, FlagTaskType:
		if s.board.IsInvalidCellPosition(position) {
			log.WithField("position", position).Warn("ignoring task outside the board")
			return
		}
		if !s.board.IsInProgress() {
			break
		}
		if task.Type == OpenTaskType {
			s.board.OpenAt(position)
		} else {
			s.board.FlagAt(position)
		}
	case RestartTaskType:
		s.board.InitializeGame()
	case RenderTaskType:
	}

	log.WithFields(log.Fields{
		"task":   task.Type,
		"row":    task.Row,
		"col":    task.Col,
		"status": s.board.Status(),
	}).Debug("task handled")

	grid := s.board.Snapshots()
	status := s.board.Status()
	mines := s.board.MineCount()
	s.draw(func() {
		s.renderer.DrawBoard(grid)
		s.renderer.ShowStatus(status, mines)
	})
}

func (s *MinesweeperService) submit(task *Task) {
	select {
	case s.tasks <- task:
	default:
		log.WithField("task", task.Type).Warn("task queue full, dropping task")
	}
}

func (s *MinesweeperService) handleInput() {
	s.renderer.boardTable.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		row, col := s.renderer.boardTable.GetSelection()

		switch event.Key() {
		case tcell.KeyEnter:
			s.submit(NewTask(OpenTaskType, row, col))
			return nil
		case tcell.KeyEscape:
			s.app.Stop()
			return nil
		case tcell.KeyRune:
			switch event.Rune() {
			case 'f', 'F':
				s.submit(NewTask(FlagTaskType, row, col))
				return nil
			case 'r', 'R':
				s.submit(NewTask(RestartTaskType, row, col))
				return nil
			case 'q', 'Q':
				s.app.Stop()
				return nil
			}
		}

		return event
	})
}
