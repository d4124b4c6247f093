package engine

import (
	"fmt"
	"math/rand"
)

// Strategy picks the next coordinate to fire at from the shots already fired
// at the target board. It must not return a coordinate present in history.
type Strategy func(history []Shot, rng *rand.Rand) (Coord, error)

// NextShot is the computer's targeting strategy.
//
// While a hit belongs to a ship that is not sunk yet, it hunts: it picks at
// random among the unfired orthogonal neighbours of the most recent such hit
// (falling back to older pending hits when a hit is boxed in). Otherwise it
// searches: it picks uniformly among all unfired coordinates.
func NextShot(history []Shot, rng *rand.Rand) (Coord, error) {
	var fired [Size][Size]bool
	sunk := make(map[ShipID]bool)
	for _, s := range history {
		if !s.Coord.Valid() {
			return Coord{}, fmt.Errorf("%w: %s in history", ErrInvalidCoordinate, s.Coord)
		}
		fired[s.Coord.Row][s.Coord.Col] = true
		if s.Outcome.Result == ResultSunk {
			sunk[s.Outcome.Ship] = true
		}
	}

	for i := len(history) - 1; i >= 0; i-- {
		s := history[i]
		if s.Outcome.Result != ResultHit || sunk[s.Outcome.Ship] {
			continue
		}
		var targets []Coord
		for _, n := range s.Coord.Neighbours() {
			if !fired[n.Row][n.Col] {
				targets = append(targets, n)
			}
		}
		if len(targets) > 0 {
			return targets[rng.Intn(len(targets))], nil
		}
	}

	var open []Coord
	for _, c := range AllCoords() {
		if !fired[c.Row][c.Col] {
			open = append(open, c)
		}
	}
	if len(open) == 0 {
		return Coord{}, ErrNoTargets
	}
	return open[rng.Intn(len(open))], nil
}
