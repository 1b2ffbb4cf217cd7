package models

// Cell is one slot of the board. A cell is always exactly one of
// concealed, concealed and flagged, or revealed. Mine presence and the
// adjacent count are written once while the board initializes.
type Cell struct {
	concealed   bool
	flagged     bool
	mine        bool
	nearbyMines int
}

func NewCell() *Cell {
	return &Cell{concealed: true}
}

// Open reveals the cell. Opening a revealed cell does nothing.
// The flag bit is left as is and is ignored once the cell is revealed.
func (c *Cell) Open() {
	c.concealed = false
}

// Flag toggles the flag on a concealed cell. Revealed cells can't be flagged.
func (c *Cell) Flag() {
	if !c.concealed {
		return
	}
	c.flagged = !c.flagged
}

func (c *Cell) setMine() {
	c.mine = true
}

func (c *Cell) setNearbyMines(count int) {
	c.nearbyMines = count
}

// IsChecked reports whether the cell is revealed or flagged.
// The win condition requires every cell to be checked.
func (c *Cell) IsChecked() bool {
	return !c.concealed || c.flagged
}

func (c *Cell) IsOpened() bool {
	return !c.concealed
}

func (c *Cell) IsMine() bool {
	return c.mine
}

func (c *Cell) HasNearbyMines() bool {
	return !c.mine && c.nearbyMines > 0
}

func (c *Cell) NearbyMines() int {
	return c.nearbyMines
}

// Snapshot derives the display state of the cell.
func (c *Cell) Snapshot() Snapshot {
	switch {
	case c.concealed && c.flagged:
		return FlaggedSnapshot()
	case c.concealed:
		return UncheckedSnapshot()
	case c.mine:
		return MineSnapshot()
	case c.nearbyMines == 0:
		return EmptySnapshot()
	default:
		return NumberSnapshot(c.nearbyMines)
	}
}
