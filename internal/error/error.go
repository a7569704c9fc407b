package error

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidShipLength   = errors.New("ship length must be between 1 and the max grid size")
	ErrNegativeCoordinates = errors.New("coordinates must not be negative")
	ErrInvalidOrientation  = errors.New("unknown ship orientation")
	ErrInvalidIndex        = errors.New("segment index out of range")
	ErrInvalidGridSize     = errors.New("grid width and height must be between 1 and the max grid size")
	ErrInvalidFleetSize    = errors.New("fleet size must be at least 1")
	ErrShipOutOfGridBound  = errors.New("ship is out of game grid bound")
	ErrShipOverlap         = errors.New("ship overlaps an already placed ship")
	ErrNilShip             = errors.New("ship must not be nil")
	ErrShipAlreadyPlaced   = errors.New("ship is already placed on a board")
	ErrBoardComplete       = errors.New("board already holds its full fleet")
	ErrGameNotExists       = errors.New("game does not exist")
	ErrPlayerNotExist      = errors.New("player does not exist")
	ErrSnapshotNotFound    = errors.New("no snapshot stored for game")
)

func ErrShipLength(length int) error {
	return fmt.Errorf("%w\tlength: %d", ErrInvalidShipLength, length)
}

func ErrShipOrigin(x, y int) error {
	return fmt.Errorf("%w\tx: %d\ty: %d", ErrNegativeCoordinates, x, y)
}

func ErrOrientation(orientation uint8) error {
	return fmt.Errorf("%w: %d", ErrInvalidOrientation, orientation)
}

func ErrDamageIndex(index, length int) error {
	return fmt.Errorf("%w\tindex: %d\tlength: %d", ErrInvalidIndex, index, length)
}

func ErrGridSize(width, height int) error {
	return fmt.Errorf("%w\twidth: %d\theight: %d", ErrInvalidGridSize, width, height)
}

func ErrFleetSize(size int) error {
	return fmt.Errorf("%w\tsize: %d", ErrInvalidFleetSize, size)
}

func ErrXorYOutOfGridBound(x, y int) error {
	return fmt.Errorf("%w\tx: %d\ty: %d", ErrShipOutOfGridBound, x, y)
}

func ErrShipPlaced(x, y int) error {
	return fmt.Errorf("%w\tx: %d\ty: %d", ErrShipAlreadyPlaced, x, y)
}

func ErrFleetComplete(fleetSize int) error {
	return fmt.Errorf("%w\tfleet size: %d", ErrBoardComplete, fleetSize)
}

func ErrGameNotFound(gameUuid string) error {
	return fmt.Errorf("%w\tuuid: %s", ErrGameNotExists, gameUuid)
}

func ErrPlayerNotFound(playerUuid string) error {
	return fmt.Errorf("%w\tuuid: %s", ErrPlayerNotExist, playerUuid)
}

func ErrNoSnapshot(gameUuid string) error {
	return fmt.Errorf("%w\tuuid: %s", ErrSnapshotNotFound, gameUuid)
}
