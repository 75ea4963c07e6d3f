package catalog

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
)

// ActivityLog appends and retrieves the immutable mutation trail of a
// playlist. Records are never updated or deleted on their own; only a
// cascading playlist delete removes them.
type ActivityLog struct {
	store Store
}

func NewActivityLog(store Store) *ActivityLog {
	return &ActivityLog{store: store}
}

// Record appends exactly one event. An insert that yields no generated
// id signals a storage inconsistency and is reported as an invariant
// violation.
func (l *ActivityLog) Record(ctx context.Context, playlistID, songID, userID, action string) (string, error) {
	id, err := l.store.InsertActivity(ctx, playlistID, songID, userID, action)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", &InvariantError{Msg: "failed to record activity"}
	}
	if err != nil {
		return "", err
	}
	if id == "" {
		return "", &InvariantError{Msg: "failed to record activity"}
	}
	return id, nil
}

// List returns the playlist's events in the order they were recorded.
// A playlist with zero activity rows is reported as not found; clients
// see the same response for "no playlist" and "no history".
func (l *ActivityLog) List(ctx context.Context, playlistID string) ([]Activity, error) {
	activities, err := l.store.ListActivities(ctx, playlistID)
	if err != nil {
		return nil, err
	}
	if len(activities) == 0 {
		return nil, &NotFoundError{Msg: "playlist not found"}
	}
	return activities, nil
}
