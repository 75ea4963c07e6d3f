package catalog

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
)

// Decision is the outcome of resolving a principal's rights over a
// playlist.
type Decision int

const (
	Granted Decision = iota
	DeniedNotFound
	DeniedForbidden
)

// AccessResolver decides whether a principal may read or mutate a
// playlist. Ownership is checked first; collaboration only ever acts
// as a fallback for playlists that exist.
type AccessResolver struct {
	store Store
}

func NewAccessResolver(store Store) *AccessResolver {
	return &AccessResolver{store: store}
}

// Resolve returns the access decision for userID on playlistID.
// A non-nil error is a storage failure, not a denial.
func (r *AccessResolver) Resolve(ctx context.Context, playlistID, userID string) (Decision, error) {
	ownerID, err := r.store.GetPlaylistOwner(ctx, playlistID)
	if errors.Is(err, pgx.ErrNoRows) {
		// Missing playlist fails fast: collaboration rows are never
		// consulted for a playlist that does not exist.
		return DeniedNotFound, nil
	}
	if err != nil {
		return DeniedForbidden, err
	}
	if ownerID == userID {
		return Granted, nil
	}

	collaborator, err := r.store.HasCollaboration(ctx, playlistID, userID)
	if err != nil {
		return DeniedForbidden, err
	}
	if collaborator {
		return Granted, nil
	}
	return DeniedForbidden, nil
}

// VerifyOwnership succeeds only for the playlist's owner.
func (r *AccessResolver) VerifyOwnership(ctx context.Context, playlistID, userID string) error {
	ownerID, err := r.store.GetPlaylistOwner(ctx, playlistID)
	if errors.Is(err, pgx.ErrNoRows) {
		return &NotFoundError{Msg: "playlist not found"}
	}
	if err != nil {
		return err
	}
	if ownerID != userID {
		return &ForbiddenError{Msg: "you are not allowed to access this resource"}
	}
	return nil
}

// VerifyCollaboration succeeds only when a collaboration row exists.
// Absence is treated as an access denial, not a missing resource.
func (r *AccessResolver) VerifyCollaboration(ctx context.Context, playlistID, userID string) error {
	collaborator, err := r.store.HasCollaboration(ctx, playlistID, userID)
	if err != nil {
		return err
	}
	if !collaborator {
		return &InvariantError{Msg: "failed to verify collaboration"}
	}
	return nil
}

// VerifyAccess grants owners and collaborators. When both checks deny,
// the ownership denial is surfaced so callers always see the same
// owner-centric error regardless of which fallback failed.
func (r *AccessResolver) VerifyAccess(ctx context.Context, playlistID, userID string) error {
	decision, err := r.Resolve(ctx, playlistID, userID)
	if err != nil {
		return err
	}
	switch decision {
	case Granted:
		return nil
	case DeniedNotFound:
		return &NotFoundError{Msg: "playlist not found"}
	default:
		return &ForbiddenError{Msg: "you are not allowed to access this resource"}
	}
}
