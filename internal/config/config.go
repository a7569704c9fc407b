package config

import (
	"fmt"
	"os"
	"strconv"

	mb "github.com/mtthwcmpbll/battleship/models/battleship"

	"github.com/joho/godotenv"
)

const (
	StageProd = "prod"
	StageDev  = "dev"

	DisplayModeText = "text"
	DisplayModeTui  = "tui"

	defaultPlayer1Name = "player 1"
	defaultPlayer2Name = "player 2"
)

type Config struct {
	Stage       string
	BoardWidth  int
	BoardHeight int
	FleetSize   int
	Player1Name string
	Player2Name string

	// Empty disables snapshot storage.
	DatabaseUrl string
	DisplayMode string
}

// LoadDotEnv loads the env file outside of production. Variables already
// set in the environment win over the file.
func LoadDotEnv(path string) error {
	if os.Getenv("STAGE") == StageProd {
		return nil
	}
	return godotenv.Load(path)
}

func Load() (Config, error) {
	cfg := Config{
		Stage:       getenv("STAGE", StageDev),
		Player1Name: getenv("PLAYER1_NAME", defaultPlayer1Name),
		Player2Name: getenv("PLAYER2_NAME", defaultPlayer2Name),
		DatabaseUrl: os.Getenv("DATABASE_URL"),
		DisplayMode: getenv("DISPLAY_MODE", DisplayModeText),
	}

	if cfg.Stage != StageDev && cfg.Stage != StageProd {
		return Config{}, fmt.Errorf("stage must be either dev or prod: %s", cfg.Stage)
	}
	if cfg.DisplayMode != DisplayModeText && cfg.DisplayMode != DisplayModeTui {
		return Config{}, fmt.Errorf("display mode must be either text or tui: %s", cfg.DisplayMode)
	}

	var err error
	if cfg.BoardWidth, err = getenvInt("BOARD_WIDTH", mb.DefaultGridSize); err != nil {
		return Config{}, err
	}
	if cfg.BoardHeight, err = getenvInt("BOARD_HEIGHT", mb.DefaultGridSize); err != nil {
		return Config{}, err
	}
	if cfg.FleetSize, err = getenvInt("FLEET_SIZE", mb.DefaultFleetSize); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func (c Config) BoardOptions() []mb.BoardOption {
	return []mb.BoardOption{
		mb.WithSize(c.BoardWidth, c.BoardHeight),
		mb.WithFleetSize(c.FleetSize),
	}
}

func getenv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getenvInt(key string, fallback int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return fallback, nil
	}

	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer: %w", key, err)
	}
	return n, nil
}
