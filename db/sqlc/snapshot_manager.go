package sqlc

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	cerr "github.com/mtthwcmpbll/battleship/internal/error"
	mb "github.com/mtthwcmpbll/battleship/models/battleship"

	"github.com/sqlc-dev/pqtype"
)

// ShipRecord is the stored form of a placed ship.
type ShipRecord struct {
	Origin      mb.Coordinates `json:"origin"`
	Length      int            `json:"length"`
	Orientation string         `json:"orientation"`
	Damaged     []int          `json:"damaged"`
}

type FleetRecord struct {
	PlayerUuid string       `json:"player_uuid"`
	Name       string       `json:"name"`
	Width      int          `json:"width"`
	Height     int          `json:"height"`
	State      string       `json:"state"`
	Ships      []ShipRecord `json:"ships"`
}

type SnapshotManager struct {
	queries Querier
}

func NewSnapshotManager(queries Querier) *SnapshotManager {
	return &SnapshotManager{queries: queries}
}

func NewFleetRecords(game *mb.Game) []FleetRecord {
	players := game.Players()
	fleets := make([]FleetRecord, 0, len(players))

	for _, player := range players {
		board := player.Board()
		fleet := FleetRecord{
			PlayerUuid: player.Uuid(),
			Name:       player.Name(),
			Width:      board.Width(),
			Height:     board.Height(),
			State:      board.State().String(),
			Ships:      make([]ShipRecord, 0, board.ShipCount()),
		}
		for _, ship := range board.Ships() {
			fleet.Ships = append(fleet.Ships, ShipRecord{
				Origin:      ship.Origin(),
				Length:      ship.Length(),
				Orientation: ship.Orientation().String(),
				Damaged:     ship.DamagedSegments(),
			})
		}
		fleets = append(fleets, fleet)
	}
	return fleets
}

// SaveGame stores the rendered display of game along with both fleets.
func (s *SnapshotManager) SaveGame(ctx context.Context, game *mb.Game) (GameSnapshot, error) {
	fleets, err := json.Marshal(NewFleetRecords(game))
	if err != nil {
		return GameSnapshot{}, err
	}

	return s.queries.CreateGameSnapshot(ctx, CreateGameSnapshotParams{
		GameUuid: game.Uuid(),
		Turn:     int32(game.Turn()),
		Display:  game.Display(),
		Fleets:   pqtype.NullRawMessage{RawMessage: fleets, Valid: true},
	})
}

func (s *SnapshotManager) LatestDisplay(ctx context.Context, gameUuid string) (string, error) {
	snapshot, err := s.queries.GetLatestGameSnapshot(ctx, gameUuid)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", cerr.ErrNoSnapshot(gameUuid)
		}
		return "", err
	}
	return snapshot.Display, nil
}

func (s *SnapshotManager) LatestFleets(ctx context.Context, gameUuid string) ([]FleetRecord, error) {
	snapshot, err := s.queries.GetLatestGameSnapshot(ctx, gameUuid)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, cerr.ErrNoSnapshot(gameUuid)
		}
		return nil, err
	}
	if !snapshot.Fleets.Valid {
		return nil, nil
	}

	var fleets []FleetRecord
	if err := json.Unmarshal(snapshot.Fleets.RawMessage, &fleets); err != nil {
		return nil, err
	}
	return fleets, nil
}

func (s *SnapshotManager) SnapshotCount(ctx context.Context, gameUuid string) (int64, error) {
	return s.queries.CountGameSnapshots(ctx, gameUuid)
}
