package battleship

import (
	"github.com/google/uuid"
)

type Player struct {
	uuid  string
	name  string
	board *Board
}

func NewPlayer(name string, opts ...BoardOption) (*Player, error) {
	board, err := NewBoard(opts...)
	if err != nil {
		return nil, err
	}

	return &Player{
		uuid:  uuid.NewString()[:10],
		name:  name,
		board: board,
	}, nil
}

func (p *Player) Uuid() string {
	return p.uuid
}

func (p *Player) Name() string {
	return p.name
}

func (p *Player) Board() *Board {
	return p.board
}

func (p *Player) PlaceShip(ship *Ship) error {
	_, err := p.board.WithShip(ship)
	return err
}

// A player is ready once the whole fleet is on the board.
func (p *Player) IsReady() bool {
	return p.board.State() == BoardStateComplete
}
