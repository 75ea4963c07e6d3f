package catalog

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
)

// LikeCounter maintains the per-album like counter as a cache-aside
// derived value. The cache is never the system of record: the count is
// always reconstructible from user_album_likes, so every write only
// invalidates and the next read repopulates.
type LikeCounter struct {
	store Store
	cache LikeCache
}

func NewLikeCounter(store Store, cache LikeCache) *LikeCounter {
	return &LikeCounter{store: store, cache: cache}
}

// Like records a like by userID on albumID and invalidates the cached
// counter. The existence pre-check is an early exit only; two
// concurrent likes can both pass it, so the unique constraint's
// violation maps to the same invariant error.
func (c *LikeCounter) Like(ctx context.Context, albumID, userID string) (string, error) {
	exists, err := c.store.AlbumExists(ctx, albumID)
	if err != nil {
		return "", err
	}
	if !exists {
		return "", &NotFoundError{Msg: "album not found"}
	}

	liked, err := c.store.HasLike(ctx, albumID, userID)
	if err != nil {
		return "", err
	}
	if liked {
		return "", &InvariantError{Msg: "album is already liked"}
	}

	id, err := c.store.InsertLike(ctx, albumID, userID)
	if errors.Is(err, ErrUniqueViolation) {
		return "", &InvariantError{Msg: "album is already liked"}
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return "", &InvariantError{Msg: "failed to add like"}
	}
	if err != nil {
		return "", err
	}

	c.cache.Invalidate(ctx, albumID)
	return id, nil
}

// Unlike removes the like and invalidates the cached counter.
func (c *LikeCounter) Unlike(ctx context.Context, albumID, userID string) error {
	err := c.store.DeleteLike(ctx, albumID, userID)
	if errors.Is(err, pgx.ErrNoRows) {
		return &NotFoundError{Msg: "like not found"}
	}
	if err != nil {
		return err
	}

	c.cache.Invalidate(ctx, albumID)
	return nil
}

// GetCount reads the counter cache-aside: a hit is served as-is, a
// miss or an unavailable cache both fall through to a COUNT(*) over
// the like rows, which then repopulates the cache.
func (c *LikeCounter) GetCount(ctx context.Context, albumID string) (*LikeCount, error) {
	if lookup := c.cache.GetCount(ctx, albumID); lookup.State == CacheHit {
		return &LikeCount{Likes: lookup.Count, Source: sourceCache}, nil
	}

	exists, err := c.store.AlbumExists(ctx, albumID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, &NotFoundError{Msg: "album not found"}
	}

	count, err := c.store.CountLikes(ctx, albumID)
	if err != nil {
		return nil, err
	}

	c.cache.SetCount(ctx, albumID, count)
	return &LikeCount{Likes: count, Source: sourceDatabase}, nil
}
