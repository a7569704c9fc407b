package battleship

import (
	cerr "github.com/mtthwcmpbll/battleship/internal/error"
)

type Orientation uint8

const (
	OrientationHorizontal Orientation = iota
	OrientationVertical
)

func (o Orientation) String() string {
	switch o {
	case OrientationHorizontal:
		return "horizontal"
	case OrientationVertical:
		return "vertical"
	default:
		return "unknown"
	}
}

type ShipState uint8

const (
	ShipStateUndamaged ShipState = iota
	ShipStateDamaged
)

// Ship is a straight line of cells starting at origin. For a horizontal
// ship the origin is its lowest x, for a vertical one its lowest y.
// Segment 0 is the origin cell.
type Ship struct {
	origin      Coordinates
	length      int
	orientation Orientation
	damage      []bool
	// set once a board takes the ship
	placed bool
}

func NewShip(x, y, length int, orientation Orientation) (*Ship, error) {
	if length < 1 || length > MaxGridSize {
		return nil, cerr.ErrShipLength(length)
	}
	if x < 0 || y < 0 {
		return nil, cerr.ErrShipOrigin(x, y)
	}
	if orientation != OrientationHorizontal && orientation != OrientationVertical {
		return nil, cerr.ErrOrientation(uint8(orientation))
	}

	return &Ship{
		origin:      NewCoordinates(x, y),
		length:      length,
		orientation: orientation,
		damage:      make([]bool, length),
	}, nil
}

func (sh *Ship) Origin() Coordinates {
	return sh.origin
}

// Placed reports whether a board holds the ship.
func (sh *Ship) Placed() bool {
	return sh.placed
}

func (sh *Ship) Length() int {
	return sh.length
}

func (sh *Ship) Orientation() Orientation {
	return sh.orientation
}

// End returns the last cell the ship occupies.
func (sh *Ship) End() Coordinates {
	if sh.orientation == OrientationHorizontal {
		return NewCoordinates(sh.origin.X+sh.length-1, sh.origin.Y)
	}
	return NewCoordinates(sh.origin.X, sh.origin.Y+sh.length-1)
}

// Cells lists the occupied cells in segment order.
func (sh *Ship) Cells() []Coordinates {
	cells := make([]Coordinates, 0, sh.length)
	for i := 0; i < sh.length; i++ {
		if sh.orientation == OrientationHorizontal {
			cells = append(cells, NewCoordinates(sh.origin.X+i, sh.origin.Y))
		} else {
			cells = append(cells, NewCoordinates(sh.origin.X, sh.origin.Y+i))
		}
	}
	return cells
}

func (sh *Ship) Damage(index int) error {
	if index < 0 || index >= sh.length {
		return cerr.ErrDamageIndex(index, sh.length)
	}
	sh.damage[index] = true
	return nil
}

func (sh *Ship) IsDamaged(index int) bool {
	if index < 0 || index >= sh.length {
		return false
	}
	return sh.damage[index]
}

// DamagedSegments returns the indexes of damaged segments in ascending order.
func (sh *Ship) DamagedSegments() []int {
	damaged := make([]int, 0, sh.length)
	for i, hit := range sh.damage {
		if hit {
			damaged = append(damaged, i)
		}
	}
	return damaged
}

// span returns the half-open interval [start, end) the ship covers along
// the given axis, and its fixed coordinate on the other one.
func (sh *Ship) span() (start, end, fixed int) {
	if sh.orientation == OrientationHorizontal {
		return sh.origin.X, sh.origin.X + sh.length, sh.origin.Y
	}
	return sh.origin.Y, sh.origin.Y + sh.length, sh.origin.X
}

func (sh *Ship) Overlaps(other *Ship) bool {
	if other == nil {
		return false
	}

	if sh.orientation == other.orientation {
		start, end, fixed := sh.span()
		otherStart, otherEnd, otherFixed := other.span()
		return fixed == otherFixed && start < otherEnd && otherStart < end
	}

	horizontal, vertical := sh, other
	if sh.orientation == OrientationVertical {
		horizontal, vertical = other, sh
	}
	xStart, xEnd, row := horizontal.span()
	yStart, yEnd, column := vertical.span()

	return row >= yStart && row < yEnd && column >= xStart && column < xEnd
}

// State reports the state of the segment at (x, y). The boolean is false
// when the ship does not occupy that cell.
func (sh *Ship) State(x, y int) (ShipState, bool) {
	start, end, fixed := sh.span()

	along, across := x, y
	if sh.orientation == OrientationVertical {
		along, across = y, x
	}
	if across != fixed || along < start || along >= end {
		return ShipStateUndamaged, false
	}

	if sh.damage[along-start] {
		return ShipStateDamaged, true
	}
	return ShipStateUndamaged, true
}
