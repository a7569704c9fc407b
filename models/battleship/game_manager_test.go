package battleship

import (
	"bytes"
	"errors"
	"log"
	"os"
	"strings"
	"sync"
	"testing"

	cerr "github.com/mtthwcmpbll/battleship/internal/error"
)

func TestGameManagerLifecycle(t *testing.T) {
	bgm := NewBattleshipGameManager()

	game, err := bgm.CreateGame("host", "join")
	if err != nil {
		t.Fatal(err)
	}
	if bgm.GameCount() != 1 {
		t.Fatalf("expected games: %d\tgot: %d", 1, bgm.GameCount())
	}

	found, err := bgm.GetGame(game.Uuid())
	if err != nil {
		t.Fatal(err)
	}
	if found != game {
		t.Fatal("manager returned a different game")
	}

	display, err := bgm.Display(game.Uuid())
	if err != nil {
		t.Fatal(err)
	}
	if display != game.Display() {
		t.Fatal("manager display differs from game display")
	}

	bgm.TerminateGame(game.Uuid())
	if _, err := bgm.GetGame(game.Uuid()); !errors.Is(err, cerr.ErrGameNotExists) {
		t.Fatalf("expected error: %v\tgot: %v", cerr.ErrGameNotExists, err)
	}
	if _, err := bgm.Display(game.Uuid()); !errors.Is(err, cerr.ErrGameNotExists) {
		t.Fatalf("expected error: %v\tgot: %v", cerr.ErrGameNotExists, err)
	}
}

func TestGameManagerPlaceShip(t *testing.T) {
	bgm := NewBattleshipGameManager()
	game, err := bgm.CreateGame("host", "join", WithSize(6, 6))
	if err != nil {
		t.Fatal(err)
	}
	host := game.Players()[0]

	tests := []struct {
		name        string
		gameUuid    string
		playerUuid  string
		ship        *Ship
		expectedErr error
	}{
		{
			name:       "valid placement",
			gameUuid:   game.Uuid(),
			playerUuid: host.Uuid(),
			ship:       mustShip(t, 0, 0, 3, OrientationHorizontal),
		},
		{
			name:        "overlapping placement",
			gameUuid:    game.Uuid(),
			playerUuid:  host.Uuid(),
			ship:        mustShip(t, 1, 0, 3, OrientationVertical),
			expectedErr: cerr.ErrShipOverlap,
		},
		{
			name:        "ship already placed",
			gameUuid:    game.Uuid(),
			playerUuid:  game.Players()[1].Uuid(),
			expectedErr: cerr.ErrShipAlreadyPlaced,
		},
		{
			name:        "nil ship",
			gameUuid:    game.Uuid(),
			playerUuid:  host.Uuid(),
			expectedErr: cerr.ErrNilShip,
		},
		{
			name:        "unknown game",
			gameUuid:    "nope",
			playerUuid:  host.Uuid(),
			ship:        mustShip(t, 0, 4, 2, OrientationHorizontal),
			expectedErr: cerr.ErrGameNotExists,
		},
		{
			name:        "unknown player",
			gameUuid:    game.Uuid(),
			playerUuid:  "nobody",
			ship:        mustShip(t, 0, 4, 2, OrientationHorizontal),
			expectedErr: cerr.ErrPlayerNotExist,
		},
	}

	// the same ship handed to the other player after host took it
	tests[2].ship = tests[0].ship

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			err := bgm.PlaceShip(test.gameUuid, test.playerUuid, test.ship)
			if test.expectedErr == nil && err != nil {
				t.Fatal(err)
			}
			if test.expectedErr != nil && !errors.Is(err, test.expectedErr) {
				t.Fatalf("expected error: %v\tgot: %v", test.expectedErr, err)
			}
		})
	}

	if host.Board().ShipCount() != 1 {
		t.Fatalf("expected ships: %d\tgot: %d", 1, host.Board().ShipCount())
	}
	if join := game.Players()[1]; join.Board().ShipCount() != 0 {
		t.Fatalf("expected ships: %d\tgot: %d", 0, join.Board().ShipCount())
	}
}

func TestTerminateUnknownGame(t *testing.T) {
	var buf bytes.Buffer
	log.SetOutput(&buf)
	defer log.SetOutput(os.Stderr)

	bgm := NewBattleshipGameManager()
	game, err := bgm.CreateGame("host", "join")
	if err != nil {
		t.Fatal(err)
	}

	bgm.TerminateGame("nope")
	if bgm.GameCount() != 1 {
		t.Fatalf("expected games: %d\tgot: %d", 1, bgm.GameCount())
	}
	if strings.Contains(buf.String(), "game terminated") {
		t.Fatalf("unexpected log for unknown game: %q", buf.String())
	}

	bgm.TerminateGame(game.Uuid())
	if !strings.Contains(buf.String(), "game terminated: "+game.Uuid()) {
		t.Fatalf("expected termination log\tgot: %q", buf.String())
	}
}

func TestGameManagerConcurrentPlacement(t *testing.T) {
	bgm := NewBattleshipGameManager()
	game, err := bgm.CreateGame("host", "join", WithFleetSize(10))
	if err != nil {
		t.Fatal(err)
	}
	host := game.Players()[0]

	// every goroutine tries the same row, only one can win it
	var wg sync.WaitGroup
	errs := make(chan error, 20)
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(row int) {
			defer wg.Done()
			ship, err := NewShip(0, row%10, 10, OrientationHorizontal)
			if err != nil {
				errs <- err
				return
			}
			err = bgm.PlaceShip(game.Uuid(), host.Uuid(), ship)
			if err != nil && !errors.Is(err, cerr.ErrShipOverlap) && !errors.Is(err, cerr.ErrBoardComplete) {
				errs <- err
			}
			_, _ = bgm.Display(game.Uuid())
		}(i)
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		t.Fatal(err)
	}
	if host.Board().ShipCount() != 10 {
		t.Fatalf("expected ships: %d\tgot: %d", 10, host.Board().ShipCount())
	}
	if !host.IsReady() {
		t.Fatal("expected full fleet to complete the board")
	}
}
