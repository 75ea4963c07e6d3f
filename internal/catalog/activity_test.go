package catalog

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestActivityRecord(t *testing.T) {
	ctx := context.Background()

	t.Run("success returns generated id", func(t *testing.T) {
		store := new(MockStore)
		store.On("InsertActivity", mock.Anything, "pl-1", "song-1", "user-1", actionAdd).
			Return("activity-abc", nil)

		l := NewActivityLog(store)
		id, err := l.Record(ctx, "pl-1", "song-1", "user-1", actionAdd)

		assert.NoError(t, err)
		assert.Equal(t, "activity-abc", id)
		store.AssertExpectations(t)
	})

	t.Run("insert without generated id is an invariant violation", func(t *testing.T) {
		store := new(MockStore)
		store.On("InsertActivity", mock.Anything, "pl-1", "song-1", "user-1", actionDelete).
			Return("", pgx.ErrNoRows)

		l := NewActivityLog(store)
		_, err := l.Record(ctx, "pl-1", "song-1", "user-1", actionDelete)

		var inv *InvariantError
		assert.ErrorAs(t, err, &inv)
	})

	t.Run("storage error propagates untyped", func(t *testing.T) {
		store := new(MockStore)
		store.On("InsertActivity", mock.Anything, "pl-1", "song-1", "user-1", actionAdd).
			Return("", errors.New("db boom"))

		l := NewActivityLog(store)
		_, err := l.Record(ctx, "pl-1", "song-1", "user-1", actionAdd)

		assert.Error(t, err)
		var inv *InvariantError
		assert.False(t, errors.As(err, &inv))
	})
}

func TestActivityList(t *testing.T) {
	ctx := context.Background()

	t.Run("events come back in recorded order", func(t *testing.T) {
		now := time.Now()
		trail := []Activity{
			{Username: "owner", Title: "First Song", Action: actionAdd, CreatedAt: now},
			{Username: "collab", Title: "Second Song", Action: actionAdd, CreatedAt: now.Add(time.Second)},
			{Username: "owner", Title: "First Song", Action: actionDelete, CreatedAt: now.Add(2 * time.Second)},
		}
		store := new(MockStore)
		store.On("ListActivities", mock.Anything, "pl-1").Return(trail, nil)

		l := NewActivityLog(store)
		got, err := l.List(ctx, "pl-1")

		assert.NoError(t, err)
		assert.Equal(t, trail, got)
	})

	t.Run("empty trail reported as not found", func(t *testing.T) {
		store := new(MockStore)
		store.On("ListActivities", mock.Anything, "pl-empty").Return([]Activity{}, nil)

		l := NewActivityLog(store)
		_, err := l.List(ctx, "pl-empty")

		var nf *NotFoundError
		assert.ErrorAs(t, err, &nf)
	})

	t.Run("storage error propagates", func(t *testing.T) {
		store := new(MockStore)
		store.On("ListActivities", mock.Anything, "pl-1").Return(nil, errors.New("db boom"))

		l := NewActivityLog(store)
		_, err := l.List(ctx, "pl-1")

		assert.Error(t, err)
	})
}
