package game

import (
	"fmt"

	"github.com/rivo/tview"

	"github.com/dimaq12/minesweeper/models"
)

type Renderer struct {
	boardTable *tview.Table
	statusView *tview.TextView
}

func NewRenderer() *Renderer {
	return &Renderer{
		boardTable: tview.NewTable(),
		statusView: tview.NewTextView(),
	}
}

func (r *Renderer) DrawBoard(grid [][]models.Snapshot) {
	for row := range grid {
		for col := range grid[row] {
			r.RenderCell(row, col, grid[row][col])
		}
	}

	r.boardTable.SetSelectable(true, true)
}

func (r *Renderer) RenderCell(row, col int, s models.Snapshot) {
	r.boardTable.SetCell(row, col, tview.NewTableCell(CellSign(s)).
		SetTextColor(cellColor(s)).
		SetAlign(tview.AlignCenter))
}

func (r *Renderer) ShowStatus(status models.Status, mines int) {
	switch status {
	case models.Won:
		r.statusView.SetText("You found all the mines. GAME CLEAR! (r: restart, q: quit)")
	case models.Lost:
		r.statusView.SetText("You stepped on a mine. GAME OVER! (r: restart, q: quit)")
	default:
		r.statusView.SetText(fmt.Sprintf("%d mines. enter: open, f: flag, r: restart, q: quit", mines))
	}
}

func (r *Renderer) layout() tview.Primitive {
	return tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(r.boardTable, 0, 1, true).
		AddItem(r.statusView, 1, 0, false)
}
