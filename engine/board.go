package engine

import (
	"fmt"
	"math/rand"
)

type Result uint8

const (
	ResultMiss Result = iota
	ResultHit
	ResultSunk
)

func (r Result) String() string {
	switch r {
	case ResultHit:
		return "hit"
	case ResultSunk:
		return "sunk"
	}
	return "miss"
}

// Outcome is the result of a shot. Ship is zero on a miss.
type Outcome struct {
	Result Result
	Ship   ShipID
}

// Shot is one entry of a board's append-only shot history.
type Shot struct {
	Coord   Coord
	Outcome Outcome
}

// randomPlacementAttempts bounds how many full fleet layouts PlaceRandom tries
// before giving up.
const randomPlacementAttempts = 100

// Board is one player's grid together with the ships placed on it.
//
// A board starts in placement. Once the whole fleet is deployed (or
// FinishPlacement is called on a complete fleet) it is frozen: it accepts
// shots and rejects further placement.
type Board struct {
	grid    Grid
	ships   []*Ship
	frozen  bool
	history []Shot
	fired   [Size][Size]bool
}

func NewBoard() *Board {
	return &Board{}
}

// Place deploys a ship of the given kind with its bow at origin. Ships may not
// overlap nor touch each other, diagonals included. On error the board is left
// untouched.
func (b *Board) Place(kind ShipKind, origin Coord, o Orientation) (ShipID, error) {
	if b.frozen {
		return 0, ErrPlacementClosed
	}
	if !origin.Valid() {
		return 0, fmt.Errorf("%w: %s", ErrInvalidCoordinate, origin)
	}
	if !b.remaining(kind) {
		return 0, fmt.Errorf("%w: %s", ErrShipNotInFleet, kind)
	}
	coords, err := shipCoords(kind.Size(), origin, o)
	if err != nil {
		return 0, err
	}
	for _, c := range coords {
		if b.crowded(c) {
			return 0, fmt.Errorf("%w: %s at %s", ErrOverlap, kind, c)
		}
	}

	s := &Ship{
		id:          ShipID(len(b.ships) + 1),
		kind:        kind,
		origin:      origin,
		orientation: o,
	}
	b.ships = append(b.ships, s)
	for _, c := range coords {
		b.grid.cells[c.Row][c.Col] = Cell{Kind: Occupied, Ship: s.id}
	}
	if len(b.ships) == len(Fleet()) {
		b.frozen = true
	}
	return s.id, nil
}

// crowded reports whether c or any of its eight surrounding cells holds a ship.
func (b *Board) crowded(c Coord) bool {
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			n := Coord{c.Row + dr, c.Col + dc}
			if n.Valid() && b.grid.cells[n.Row][n.Col].Ship != 0 {
				return true
			}
		}
	}
	return false
}

func (b *Board) remaining(kind ShipKind) bool {
	if kind.Size() == 0 {
		return false
	}
	for _, s := range b.ships {
		if s.kind == kind {
			return false
		}
	}
	return true
}

// Remaining lists the fleet kinds that are not deployed yet, in fleet order.
func (b *Board) Remaining() []ShipKind {
	var res []ShipKind
	for _, k := range Fleet() {
		if b.remaining(k) {
			res = append(res, k)
		}
	}
	return res
}

// FinishPlacement freezes the board. It fails while the fleet is incomplete and
// is a no-op on a frozen board.
func (b *Board) FinishPlacement() error {
	if b.frozen {
		return nil
	}
	if left := b.Remaining(); len(left) > 0 {
		return fmt.Errorf("%w: %d ships left", ErrFleetIncomplete, len(left))
	}
	b.frozen = true
	return nil
}

// PlaceRandom deploys every remaining kind at a random legal position and
// freezes the board. Either the whole rest of the fleet is placed or nothing is.
func (b *Board) PlaceRandom(rng *rand.Rand) error {
	if b.frozen {
		return ErrPlacementClosed
	}
	for attempt := 0; attempt < randomPlacementAttempts; attempt++ {
		trial := b.clone()
		if trial.placeRemaining(rng) {
			*b = *trial
			return b.FinishPlacement()
		}
	}
	return fmt.Errorf("%w: no room left for the fleet", ErrOverlap)
}

func (b *Board) placeRemaining(rng *rand.Rand) bool {
	type slot struct {
		origin Coord
		o      Orientation
	}
	for _, kind := range b.Remaining() {
		var slots []slot
		for _, c := range AllCoords() {
			for _, o := range []Orientation{Horizontal, Vertical} {
				if b.fits(kind, c, o) {
					slots = append(slots, slot{c, o})
				}
			}
		}
		if len(slots) == 0 {
			return false
		}
		s := slots[rng.Intn(len(slots))]
		if _, err := b.Place(kind, s.origin, s.o); err != nil {
			return false
		}
	}
	return true
}

func (b *Board) fits(kind ShipKind, origin Coord, o Orientation) bool {
	coords, err := shipCoords(kind.Size(), origin, o)
	if err != nil {
		return false
	}
	for _, c := range coords {
		if b.crowded(c) {
			return false
		}
	}
	return true
}

func (b *Board) clone() *Board {
	c := *b
	c.ships = make([]*Ship, len(b.ships))
	for i, s := range b.ships {
		cp := *s
		c.ships[i] = &cp
	}
	c.history = append([]Shot(nil), b.history...)
	return &c
}

func (b *Board) Frozen() bool {
	return b.frozen
}

// Fire resolves a shot against this board and records it in the history.
func (b *Board) Fire(c Coord) (Outcome, error) {
	if !c.Valid() {
		return Outcome{}, fmt.Errorf("%w: %s", ErrInvalidCoordinate, c)
	}
	if !b.frozen {
		return Outcome{}, ErrPlacementOpen
	}
	if b.fired[c.Row][c.Col] {
		return Outcome{}, fmt.Errorf("%w: %s", ErrAlreadyShot, c)
	}

	var out Outcome
	cell := b.grid.cells[c.Row][c.Col]
	switch cell.Kind {
	case Occupied:
		s := b.ships[cell.Ship-1]
		s.hit()
		b.grid.cells[c.Row][c.Col] = Cell{Kind: Hit, Ship: s.id}
		out = Outcome{Result: ResultHit, Ship: s.id}
		if s.Sunk() {
			for _, sc := range s.Coords() {
				b.grid.cells[sc.Row][sc.Col] = Cell{Kind: Sunk, Ship: s.id}
			}
			out.Result = ResultSunk
		}
	default:
		b.grid.cells[c.Row][c.Col] = Cell{Kind: Miss}
		out = Outcome{Result: ResultMiss}
	}

	b.fired[c.Row][c.Col] = true
	b.history = append(b.history, Shot{Coord: c, Outcome: out})
	return out, nil
}

// Fired reports whether c has already been shot at.
func (b *Board) Fired(c Coord) bool {
	return c.Valid() && b.fired[c.Row][c.Col]
}

// History returns a copy of the shots fired at this board, oldest first.
func (b *Board) History() []Shot {
	return append([]Shot(nil), b.history...)
}

func (b *Board) At(c Coord) (Cell, error) {
	return b.grid.At(c)
}

func (b *Board) Cells() [Size][Size]Cell {
	return b.grid.Cells()
}

// Ships returns snapshots of the placed ships in id order.
func (b *Board) Ships() []ShipStatus {
	res := make([]ShipStatus, 0, len(b.ships))
	for _, s := range b.ships {
		res = append(res, s.status())
	}
	return res
}

// Ship returns the ship with the given id.
func (b *Board) Ship(id ShipID) (ShipStatus, bool) {
	if id < 1 || int(id) > len(b.ships) {
		return ShipStatus{}, false
	}
	return b.ships[id-1].status(), true
}

// AllSunk reports whether the board has ships and all of them are sunk.
func (b *Board) AllSunk() bool {
	if len(b.ships) == 0 {
		return false
	}
	for _, s := range b.ships {
		if !s.Sunk() {
			return false
		}
	}
	return true
}

func (b *Board) String() string {
	return b.grid.String()
}
