package engine

import (
	"fmt"
	"strconv"
	"strings"
)

// Size is the side length of every board.
const Size = 10

// Coord addresses a single cell. Row and Col are zero based.
type Coord struct {
	Row int
	Col int
}

func NewCoord(row, col int) (Coord, error) {
	c := Coord{Row: row, Col: col}
	if !c.Valid() {
		return Coord{}, fmt.Errorf("%w: row %d, col %d", ErrInvalidCoordinate, row, col)
	}
	return c, nil
}

// ParseCoord reads the human notation: a column letter A-J followed by a
// row number 1-10, e.g. "A1" or "j10". Leading zeros in the number are accepted.
func ParseCoord(s string) (Coord, error) {
	if len(s) < 2 {
		return Coord{}, fmt.Errorf("%w: %q", ErrInvalidCoordinate, s)
	}
	letter := strings.ToUpper(s[:1])[0]
	if letter < 'A' || letter >= 'A'+Size {
		return Coord{}, fmt.Errorf("%w: %q", ErrInvalidCoordinate, s)
	}
	digits := s[1:]
	for _, r := range digits {
		if r < '0' || r > '9' {
			return Coord{}, fmt.Errorf("%w: %q", ErrInvalidCoordinate, s)
		}
	}
	n, err := strconv.Atoi(digits)
	if err != nil || n < 1 || n > Size {
		return Coord{}, fmt.Errorf("%w: %q", ErrInvalidCoordinate, s)
	}
	return Coord{Row: n - 1, Col: int(letter - 'A')}, nil
}

func (c Coord) Valid() bool {
	return c.Row >= 0 && c.Row < Size && c.Col >= 0 && c.Col < Size
}

func (c Coord) String() string {
	if !c.Valid() {
		return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
	}
	return fmt.Sprintf("%c%d", 'A'+c.Col, c.Row+1)
}

var offsets = []Coord{
	{-1, 0},
	{1, 0},
	{0, -1},
	{0, 1},
}

// Neighbours returns the orthogonal neighbours of c that lie on the board.
func (c Coord) Neighbours() []Coord {
	res := make([]Coord, 0, len(offsets))
	for _, o := range offsets {
		n := Coord{c.Row + o.Row, c.Col + o.Col}
		if n.Valid() {
			res = append(res, n)
		}
	}
	return res
}

// AllCoords lists every coordinate of the board in row-major order.
func AllCoords() []Coord {
	res := make([]Coord, 0, Size*Size)
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			res = append(res, Coord{r, c})
		}
	}
	return res
}
