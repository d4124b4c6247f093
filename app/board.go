package app

import (
	"fmt"
	"strings"

	gui "github.com/grupawp/warships-gui/v2"

	"github.com/wojtekolesinski/battleships/engine"
)

// Board holds warships-gui states indexed [column][row].
type Board [engine.Size][engine.Size]gui.State

// newBoard converts an engine view into drawable states. Ships that were not
// hit are only shown when reveal is set.
func newBoard(view engine.View, reveal bool) Board {
	var b Board
	for r := range view.Cells {
		for c, cell := range view.Cells[r] {
			b[c][r] = cellState(cell, reveal)
		}
	}
	return b
}

func cellState(cell engine.Cell, reveal bool) gui.State {
	switch cell.Kind {
	case engine.Occupied:
		if reveal {
			return gui.Ship
		}
	case engine.Hit, engine.Sunk:
		return gui.Hit
	case engine.Miss:
		return gui.Miss
	}
	return gui.Empty
}

// accuracy is the share of shots that struck a ship, in percent.
func accuracy(shots []engine.Shot) float32 {
	if len(shots) == 0 {
		return 0
	}
	var hits int
	for _, s := range shots {
		if s.Outcome.Result != engine.ResultMiss {
			hits++
		}
	}
	return float32(hits) / float32(len(shots)) * 100
}

func fleetStatus(ships []engine.ShipStatus) string {
	parts := make([]string, 0, len(ships))
	for _, s := range ships {
		state := "afloat"
		if s.Sunk {
			state = "sunk"
		}
		parts = append(parts, fmt.Sprintf("%s (%d): %s", s.Kind, s.Kind.Size(), state))
	}
	return strings.Join(parts, ", ")
}

func describeShot(who string, c engine.Coord, out engine.Outcome, view engine.View) string {
	switch out.Result {
	case engine.ResultHit:
		return fmt.Sprintf("%s fired at %s: hit", who, c)
	case engine.ResultSunk:
		for _, s := range view.Ships {
			if s.ID == out.Ship {
				return fmt.Sprintf("%s fired at %s: %s sunk", who, c, s.Kind)
			}
		}
		return fmt.Sprintf("%s fired at %s: sunk", who, c)
	}
	return fmt.Sprintf("%s fired at %s: miss", who, c)
}

// orientationOf derives the orientation from the bow cell and a second cell
// to its right (horizontal) or below it (vertical).
func orientationOf(bow, next engine.Coord) (engine.Orientation, bool) {
	switch {
	case next.Row == bow.Row && next.Col > bow.Col:
		return engine.Horizontal, true
	case next.Col == bow.Col && next.Row > bow.Row:
		return engine.Vertical, true
	}
	return engine.Horizontal, false
}
