package sqlc

import "time"

const (
	QuerierCtxTimeout = time.Second * 10
)

type DbManager struct {
	Snapshots *SnapshotManager
}

func NewDbManager(queries Querier) DbManager {
	return DbManager{
		Snapshots: NewSnapshotManager(queries),
	}
}
