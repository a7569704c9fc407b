package battleship

import (
	"fmt"
	"strconv"
	"strings"

	cerr "github.com/mtthwcmpbll/battleship/internal/error"
)

type BoardState uint8

const (
	BoardStateIncomplete BoardState = iota
	BoardStateComplete
)

func (s BoardState) String() string {
	if s == BoardStateComplete {
		return "complete"
	}
	return "incomplete"
}

// OverlapError is returned when a ship cannot be placed because it shares
// at least one cell with a ship already on the board.
type OverlapError struct {
	Ship     *Ship
	Conflict *Ship
	// Index of Conflict in the board's placement order.
	Index int
}

func (e *OverlapError) Error() string {
	return fmt.Sprintf(
		"%s\tship origin: %s\tconflicting ship origin: %s",
		cerr.ErrShipOverlap,
		label(e.Ship.Origin()),
		label(e.Conflict.Origin()),
	)
}

func (e *OverlapError) Unwrap() error {
	return cerr.ErrShipOverlap
}

type Board struct {
	width     int
	height    int
	fleetSize int
	state     BoardState
	ships     []*Ship
}

type BoardOption func(*Board) error

func WithSize(width, height int) BoardOption {
	return func(b *Board) error {
		if width < 1 || height < 1 || width > MaxGridSize || height > MaxGridSize {
			return cerr.ErrGridSize(width, height)
		}
		b.width = width
		b.height = height
		return nil
	}
}

// WithFleetSize sets how many ships complete the board.
func WithFleetSize(size int) BoardOption {
	return func(b *Board) error {
		if size < 1 {
			return cerr.ErrFleetSize(size)
		}
		b.fleetSize = size
		return nil
	}
}

func NewBoard(opts ...BoardOption) (*Board, error) {
	board := Board{
		width:     DefaultGridSize,
		height:    DefaultGridSize,
		fleetSize: DefaultFleetSize,
		state:     BoardStateIncomplete,
	}
	for _, opt := range opts {
		if err := opt(&board); err != nil {
			return nil, err
		}
	}

	board.ships = make([]*Ship, 0, board.fleetSize)
	return &board, nil
}

func (b *Board) Width() int {
	return b.width
}

func (b *Board) Height() int {
	return b.height
}

func (b *Board) FleetSize() int {
	return b.fleetSize
}

func (b *Board) State() BoardState {
	return b.state
}

// Ships returns the placed ships in insertion order. The slice is a copy;
// the ships are not.
func (b *Board) Ships() []*Ship {
	ships := make([]*Ship, len(b.ships))
	copy(ships, b.ships)
	return ships
}

func (b *Board) ShipCount() int {
	return len(b.ships)
}

func (b *Board) InBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// WithShip places ship on the board and returns the board so placements
// can be chained. The board takes ownership of the ship: a ship already
// held by any board is rejected. On error the board is left unchanged.
func (b *Board) WithShip(ship *Ship) (*Board, error) {
	if ship == nil {
		return b, cerr.ErrNilShip
	}
	if ship.placed {
		return b, cerr.ErrShipPlaced(ship.origin.X, ship.origin.Y)
	}
	if b.state == BoardStateComplete {
		return b, cerr.ErrFleetComplete(b.fleetSize)
	}

	end := ship.End()
	if !b.InBounds(end.X, end.Y) {
		return b, cerr.ErrXorYOutOfGridBound(end.X, end.Y)
	}

	for i, placed := range b.ships {
		if ship.Overlaps(placed) {
			return b, &OverlapError{Ship: ship, Conflict: placed, Index: i}
		}
	}

	ship.placed = true
	b.ships = append(b.ships, ship)
	if len(b.ships) == b.fleetSize {
		b.state = BoardStateComplete
	}
	return b, nil
}

func (b *Board) CoordStatus(x, y int) CellState {
	for _, ship := range b.ships {
		state, ok := ship.State(x, y)
		if !ok {
			continue
		}
		if state == ShipStateDamaged {
			return CellStateDamagedShip
		}
		return CellStateUndamagedShip
	}
	return CellStateOpenWater
}

// Render draws the board as text:
//
//	"       A  B  C"
//	"     __________"
//	" 1  |  . [ ][X] "
//
// Row numbers are right aligned to at least two digits.
func (b *Board) Render() string {
	numWidth := len(strconv.Itoa(b.height))
	if numWidth < 2 {
		numWidth = 2
	}

	var sb strings.Builder

	header := strings.Repeat(" ", numWidth+4)
	for w := 0; w < b.width; w++ {
		header += fmt.Sprintf(" %-2s", ColumnLabel(w))
	}
	sb.WriteString(strings.TrimRight(header, " "))
	sb.WriteString("\n")

	sb.WriteString(strings.Repeat(" ", numWidth+3))
	sb.WriteString(strings.Repeat("_", 3*b.width+1))
	sb.WriteString("\n")

	for h := 0; h < b.height; h++ {
		sb.WriteString(fmt.Sprintf("%*d  | ", numWidth, h+1))
		for w := 0; w < b.width; w++ {
			sb.WriteString(b.CoordStatus(w, h).Glyph())
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

func (b *Board) String() string {
	return b.Render()
}

// label formats a cell the way the board shows it, e.g. D3.
func label(c Coordinates) string {
	return ColumnLabel(c.X) + strconv.Itoa(c.Y+1)
}
