package battleship

import (
	"log"
	"sync"

	cerr "github.com/mtthwcmpbll/battleship/internal/error"
)

// GameManager keeps games reachable by uuid. Boards are not safe for
// concurrent use, so every mutation goes through the manager. Games
// returned by CreateGame and GetGame are shared: callers must only read
// them and place ships through PlaceShip.
type GameManager interface {
	CreateGame(name1, name2 string, opts ...BoardOption) (*Game, error)
	GetGame(gameUuid string) (*Game, error)
	TerminateGame(gameUuid string)
	PlaceShip(gameUuid, playerUuid string, ship *Ship) error
	Display(gameUuid string) (string, error)
	GameCount() int
}

type BattleshipGameManager struct {
	games map[string]*Game
	mu    sync.RWMutex
}

var _ GameManager = (*BattleshipGameManager)(nil)

func NewBattleshipGameManager() *BattleshipGameManager {
	return &BattleshipGameManager{
		games: make(map[string]*Game, 10),
	}
}

func (bgm *BattleshipGameManager) CreateGame(name1, name2 string, opts ...BoardOption) (*Game, error) {
	game, err := NewGame(name1, name2, opts...)
	if err != nil {
		return nil, err
	}

	bgm.mu.Lock()
	bgm.games[game.Uuid()] = game
	bgm.mu.Unlock()

	log.Printf("game created: %s\tplayers: %s, %s", game.Uuid(), name1, name2)
	return game, nil
}

func (bgm *BattleshipGameManager) GetGame(gameUuid string) (*Game, error) {
	bgm.mu.RLock()
	game, prs := bgm.games[gameUuid]
	bgm.mu.RUnlock()
	if !prs {
		return nil, cerr.ErrGameNotFound(gameUuid)
	}

	return game, nil
}

func (bgm *BattleshipGameManager) TerminateGame(gameUuid string) {
	bgm.mu.Lock()
	_, prs := bgm.games[gameUuid]
	delete(bgm.games, gameUuid)
	bgm.mu.Unlock()
	if !prs {
		return
	}
	log.Printf("game terminated: %s", gameUuid)
}

func (bgm *BattleshipGameManager) PlaceShip(gameUuid, playerUuid string, ship *Ship) error {
	bgm.mu.Lock()
	defer bgm.mu.Unlock()

	game, prs := bgm.games[gameUuid]
	if !prs {
		return cerr.ErrGameNotFound(gameUuid)
	}

	player, err := game.FindPlayer(playerUuid)
	if err != nil {
		return err
	}

	return player.PlaceShip(ship)
}

// Display renders the game under the read lock so it never observes a
// half finished placement.
func (bgm *BattleshipGameManager) Display(gameUuid string) (string, error) {
	bgm.mu.RLock()
	defer bgm.mu.RUnlock()

	game, prs := bgm.games[gameUuid]
	if !prs {
		return "", cerr.ErrGameNotFound(gameUuid)
	}
	return game.Display(), nil
}

func (bgm *BattleshipGameManager) GameCount() int {
	bgm.mu.RLock()
	defer bgm.mu.RUnlock()
	return len(bgm.games)
}
