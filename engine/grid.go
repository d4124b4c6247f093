package engine

import (
	"fmt"
	"strings"
)

type CellKind uint8

const (
	Empty CellKind = iota
	Occupied
	Hit
	Miss
	Sunk
)

func (k CellKind) String() string {
	switch k {
	case Empty:
		return "empty"
	case Occupied:
		return "occupied"
	case Hit:
		return "hit"
	case Miss:
		return "miss"
	case Sunk:
		return "sunk"
	}
	return fmt.Sprintf("CellKind(%d)", uint8(k))
}

// Cell is the state of one square. Ship is set for Occupied, Hit and Sunk
// cells and is zero otherwise.
type Cell struct {
	Kind CellKind
	Ship ShipID
}

// Grid is a 10x10 collection of cells addressed by Coord only.
type Grid struct {
	cells [Size][Size]Cell
}

func (g *Grid) At(c Coord) (Cell, error) {
	if !c.Valid() {
		return Cell{}, fmt.Errorf("%w: %s", ErrInvalidCoordinate, c)
	}
	return g.cells[c.Row][c.Col], nil
}

func (g *Grid) Set(c Coord, cell Cell) error {
	if !c.Valid() {
		return fmt.Errorf("%w: %s", ErrInvalidCoordinate, c)
	}
	g.cells[c.Row][c.Col] = cell
	return nil
}

// Cells returns a copy of the whole grid indexed [row][col].
func (g *Grid) Cells() [Size][Size]Cell {
	return g.cells
}

// String draws the grid as text, '#' ship, 'X' hit, 'O' miss, '*' sunk.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.WriteString("   A B C D E F G H I J \n")
	for r, row := range g.cells {
		fmt.Fprintf(&sb, "%02d ", r+1)
		for _, cell := range row {
			switch cell.Kind {
			case Occupied:
				sb.WriteByte('#')
			case Hit:
				sb.WriteByte('X')
			case Miss:
				sb.WriteByte('O')
			case Sunk:
				sb.WriteByte('*')
			default:
				sb.WriteByte(' ')
			}
			sb.WriteByte(' ')
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
