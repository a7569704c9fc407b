package battleship

import (
	"fmt"
	"strings"

	cerr "github.com/mtthwcmpbll/battleship/internal/error"

	"github.com/google/uuid"
)

const displayBanner = "=================================="

type Game struct {
	uuid    string
	turn    int
	player1 *Player
	player2 *Player
}

// NewGame creates a game for two players. Both boards are built with opts.
func NewGame(name1, name2 string, opts ...BoardOption) (*Game, error) {
	player1, err := NewPlayer(name1, opts...)
	if err != nil {
		return nil, err
	}
	player2, err := NewPlayer(name2, opts...)
	if err != nil {
		return nil, err
	}

	return newGame(uuid.NewString()[:6], player1, player2), nil
}

func newGame(gameUuid string, player1, player2 *Player) *Game {
	return &Game{
		uuid:    gameUuid,
		turn:    1,
		player1: player1,
		player2: player2,
	}
}

func (g *Game) Uuid() string {
	return g.uuid
}

// Turn stays at 1; no move operation advances it yet.
func (g *Game) Turn() int {
	return g.turn
}

// returns a slice of players in the order of player 1 then player 2.
func (g *Game) Players() []*Player {
	return []*Player{g.player1, g.player2}
}

func (g *Game) FindPlayer(playerUuid string) (*Player, error) {
	for _, player := range g.Players() {
		if player.Uuid() == playerUuid {
			return player, nil
		}
	}
	return nil, cerr.ErrPlayerNotFound(playerUuid)
}

func (g *Game) IsReadyToStart() bool {
	return g.player1.IsReady() && g.player2.IsReady()
}

func (g *Game) Display() string {
	var sb strings.Builder
	sb.WriteString(displayBanner + "\n")
	sb.WriteString(fmt.Sprintf("TURN: %d\n\n", g.turn))

	for i, player := range g.Players() {
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(player.Name() + ":\n")
		sb.WriteString(player.Board().Render())
	}

	return sb.String()
}
