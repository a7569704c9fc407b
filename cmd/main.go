package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"

	"github.com/mtthwcmpbll/battleship/db"
	"github.com/mtthwcmpbll/battleship/db/sqlc"
	"github.com/mtthwcmpbll/battleship/internal/config"
	"github.com/mtthwcmpbll/battleship/internal/view"
	mb "github.com/mtthwcmpbll/battleship/models/battleship"
)

type app struct {
	cfg   config.Config
	games mb.GameManager
	// nil when DATABASE_URL is not set
	snapshots *sqlc.SnapshotManager
	out       io.Writer
}

func (a *app) run(ctx context.Context) error {
	game, err := a.games.CreateGame(a.cfg.Player1Name, a.cfg.Player2Name, a.cfg.BoardOptions()...)
	if err != nil {
		return err
	}
	defer a.games.TerminateGame(game.Uuid())

	if a.snapshots != nil {
		saveCtx, cancel := context.WithTimeout(ctx, sqlc.QuerierCtxTimeout)
		snapshot, err := a.snapshots.SaveGame(saveCtx, game)
		cancel()
		if err != nil {
			// for now not stopping the game for it
			log.Println(err)
		} else {
			log.Printf("snapshot stored: %d\tgame: %s", snapshot.ID, game.Uuid())
		}
	}

	if a.cfg.DisplayMode == config.DisplayModeTui {
		return a.runTui(ctx, game.Uuid())
	}

	display, err := a.games.Display(game.Uuid())
	if err != nil {
		return err
	}
	_, err = fmt.Fprint(a.out, display)
	return err
}

func (a *app) runTui(ctx context.Context, gameUuid string) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	return view.NewViewer(screen).Run(ctx, func() string {
		display, err := a.games.Display(gameUuid)
		if err != nil {
			return err.Error()
		}
		return display
	})
}

func main() {
	if err := config.LoadDotEnv(".env"); err != nil {
		log.Println("no .env loaded:", err)
	}
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	a := &app{
		cfg:   cfg,
		games: mb.NewBattleshipGameManager(),
		out:   os.Stdout,
	}
	if cfg.DatabaseUrl != "" {
		conn := db.MustConnectToDb(cfg.DatabaseUrl)
		defer conn.Close()
		a.snapshots = sqlc.NewDbManager(sqlc.New(conn)).Snapshots
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := a.run(ctx); err != nil {
		log.Println(err)
		stop()
		os.Exit(1)
	}
}
