package models

import "fmt"

type SnapshotStatus int

const (
	Unchecked SnapshotStatus = iota
	Flagged
	EmptyRevealed
	Number
	MineRevealed
)

func (s SnapshotStatus) String() string {
	switch s {
	case Unchecked:
		return "unchecked"
	case Flagged:
		return "flagged"
	case EmptyRevealed:
		return "empty"
	case Number:
		return "number"
	case MineRevealed:
		return "mine"
	default:
		return fmt.Sprintf("n/a:%d", int(s))
	}
}

// Snapshot is a read-only view of a cell for renderers.
// NearbyMines is only set for Number snapshots.
type Snapshot struct {
	Status      SnapshotStatus
	NearbyMines int
}

func UncheckedSnapshot() Snapshot { return Snapshot{Status: Unchecked} }

func FlaggedSnapshot() Snapshot { return Snapshot{Status: Flagged} }

func EmptySnapshot() Snapshot { return Snapshot{Status: EmptyRevealed} }

func MineSnapshot() Snapshot { return Snapshot{Status: MineRevealed} }

func NumberSnapshot(nearbyMines int) Snapshot {
	return Snapshot{Status: Number, NearbyMines: nearbyMines}
}

func (s Snapshot) Is(status SnapshotStatus) bool {
	return s.Status == status
}

// Status is the state of a game. InProgress moves to Won or Lost and never back.
type Status int

const (
	InProgress Status = iota
	Won
	Lost
)

func (s Status) String() string {
	switch s {
	case InProgress:
		return "in progress"
	case Won:
		return "won"
	case Lost:
		return "lost"
	default:
		return fmt.Sprintf("n/a:%d", int(s))
	}
}
