package models

import (
	"math/rand"
	"time"
)

// MinePlacer picks count distinct positions out of candidates.
type MinePlacer interface {
	Place(candidates []Position, count int) []Position
}

// RandomPlacer samples without replacement by shuffling the candidates
// and taking a prefix.
type RandomPlacer struct {
	rand *rand.Rand
}

func NewRandomPlacer(r *rand.Rand) *RandomPlacer {
	if r == nil {
		r = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &RandomPlacer{rand: r}
}

func (p *RandomPlacer) Place(candidates []Position, count int) []Position {
	shuffled := make([]Position, len(candidates))
	copy(shuffled, candidates)

	// Fisher-Yates shuffle
	// https://en.wikipedia.org/wiki/Fisher–Yates_shuffle
	p.rand.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	if count > len(shuffled) {
		count = len(shuffled)
	}
	return shuffled[:count]
}

// FixedPlacer always places mines at the same positions.
// Duplicates and positions that are not candidates are dropped.
type FixedPlacer []Position

func (f FixedPlacer) Place(candidates []Position, count int) []Position {
	allowed := make(map[Position]bool, len(candidates))
	for _, c := range candidates {
		allowed[c] = true
	}

	placed := make([]Position, 0, count)
	for _, p := range f {
		if len(placed) == count {
			break
		}
		if !allowed[p] {
			continue
		}
		allowed[p] = false
		placed = append(placed, p)
	}
	return placed
}
