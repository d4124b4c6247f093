package engine

import "fmt"

type Orientation uint8

const (
	Horizontal Orientation = iota
	Vertical
)

func (o Orientation) String() string {
	if o == Vertical {
		return "vertical"
	}
	return "horizontal"
}

// ShipKind is one of the five vessels of the standard fleet.
type ShipKind uint8

const (
	AircraftCarrier ShipKind = iota
	Battleship
	Cruiser
	Submarine
	Destroyer
)

// Fleet returns the standard fleet in deployment order.
func Fleet() []ShipKind {
	return []ShipKind{AircraftCarrier, Battleship, Cruiser, Submarine, Destroyer}
}

func (k ShipKind) Size() int {
	switch k {
	case AircraftCarrier:
		return 5
	case Battleship:
		return 4
	case Cruiser, Submarine:
		return 3
	case Destroyer:
		return 2
	}
	return 0
}

func (k ShipKind) String() string {
	switch k {
	case AircraftCarrier:
		return "Aircraft Carrier"
	case Battleship:
		return "Battleship"
	case Cruiser:
		return "Cruiser"
	case Submarine:
		return "Submarine"
	case Destroyer:
		return "Destroyer"
	}
	return fmt.Sprintf("ShipKind(%d)", uint8(k))
}

// ShipID identifies a ship within its board. Ids start at 1; zero means no ship.
type ShipID int

// Ship is a placed vessel. Its position never changes after placement;
// only the hit count moves, and only through Board.Fire.
type Ship struct {
	id          ShipID
	kind        ShipKind
	origin      Coord
	orientation Orientation
	hits        int
}

func (s *Ship) ID() ShipID {
	return s.id
}

func (s *Ship) Kind() ShipKind {
	return s.kind
}

func (s *Ship) Len() int {
	return s.kind.Size()
}

func (s *Ship) Origin() Coord {
	return s.origin
}

func (s *Ship) Orientation() Orientation {
	return s.orientation
}

func (s *Ship) Hits() int {
	return s.hits
}

// Sunk reports whether every segment of the ship has been hit.
func (s *Ship) Sunk() bool {
	return s.hits == s.Len()
}

func (s *Ship) Coords() []Coord {
	coords, _ := shipCoords(s.Len(), s.origin, s.orientation)
	return coords
}

// ShipStatus is a read-only snapshot of a ship.
type ShipStatus struct {
	ID          ShipID
	Kind        ShipKind
	Origin      Coord
	Orientation Orientation
	Coords      []Coord
	Hits        int
	Sunk        bool
}

func (s *Ship) status() ShipStatus {
	return ShipStatus{
		ID:          s.id,
		Kind:        s.kind,
		Origin:      s.origin,
		Orientation: s.orientation,
		Coords:      s.Coords(),
		Hits:        s.hits,
		Sunk:        s.Sunk(),
	}
}

func (s *Ship) hit() {
	if s.hits < s.Len() {
		s.hits++
	}
}

func shipCoords(length int, origin Coord, o Orientation) ([]Coord, error) {
	if !origin.Valid() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidCoordinate, origin)
	}
	coords := make([]Coord, 0, length)
	for i := 0; i < length; i++ {
		c := origin
		if o == Vertical {
			c.Row += i
		} else {
			c.Col += i
		}
		if !c.Valid() {
			return nil, fmt.Errorf("%w: %d cells %s from %s", ErrOutOfBounds, length, o, origin)
		}
		coords = append(coords, c)
	}
	return coords, nil
}
