package catalog

import (
	"context"

	"github.com/stretchr/testify/mock"
)

type MockStore struct {
	mock.Mock
}

func (m *MockStore) CreateUser(ctx context.Context, username, passwordHash, fullname string) (string, error) {
	args := m.Called(ctx, username, passwordHash, fullname)
	return args.String(0), args.Error(1)
}

func (m *MockStore) GetUserByID(ctx context.Context, id string) (*User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*User), args.Error(1)
}

func (m *MockStore) CreateAlbum(ctx context.Context, name string, year int) (string, error) {
	args := m.Called(ctx, name, year)
	return args.String(0), args.Error(1)
}

func (m *MockStore) ListAlbums(ctx context.Context) ([]Album, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Album), args.Error(1)
}

func (m *MockStore) GetAlbum(ctx context.Context, id string) (*Album, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Album), args.Error(1)
}

func (m *MockStore) UpdateAlbum(ctx context.Context, id, name string, year int) error {
	args := m.Called(ctx, id, name, year)
	return args.Error(0)
}

func (m *MockStore) DeleteAlbum(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockStore) AlbumExists(ctx context.Context, id string) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockStore) CreateSong(ctx context.Context, s *Song) (string, error) {
	args := m.Called(ctx, s)
	return args.String(0), args.Error(1)
}

func (m *MockStore) ListSongs(ctx context.Context, title, performer string) ([]Song, error) {
	args := m.Called(ctx, title, performer)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Song), args.Error(1)
}

func (m *MockStore) GetSong(ctx context.Context, id string) (*Song, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Song), args.Error(1)
}

func (m *MockStore) UpdateSong(ctx context.Context, id string, s *Song) error {
	args := m.Called(ctx, id, s)
	return args.Error(0)
}

func (m *MockStore) DeleteSong(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockStore) ListSongsByAlbum(ctx context.Context, albumID string) ([]Song, error) {
	args := m.Called(ctx, albumID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Song), args.Error(1)
}

func (m *MockStore) ListSongsByPlaylist(ctx context.Context, playlistID string) ([]Song, error) {
	args := m.Called(ctx, playlistID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Song), args.Error(1)
}

func (m *MockStore) CreatePlaylist(ctx context.Context, name, ownerID string) (string, error) {
	args := m.Called(ctx, name, ownerID)
	return args.String(0), args.Error(1)
}

func (m *MockStore) ListPlaylists(ctx context.Context, userID string) ([]Playlist, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Playlist), args.Error(1)
}

func (m *MockStore) GetPlaylist(ctx context.Context, id string) (*Playlist, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Playlist), args.Error(1)
}

func (m *MockStore) DeletePlaylist(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockStore) GetPlaylistOwner(ctx context.Context, id string) (string, error) {
	args := m.Called(ctx, id)
	return args.String(0), args.Error(1)
}

func (m *MockStore) AddPlaylistSong(ctx context.Context, playlistID, songID string) (string, error) {
	args := m.Called(ctx, playlistID, songID)
	return args.String(0), args.Error(1)
}

func (m *MockStore) RemovePlaylistSong(ctx context.Context, playlistID, songID string) error {
	args := m.Called(ctx, playlistID, songID)
	return args.Error(0)
}

func (m *MockStore) AddCollaboration(ctx context.Context, playlistID, userID string) (string, error) {
	args := m.Called(ctx, playlistID, userID)
	return args.String(0), args.Error(1)
}

func (m *MockStore) RemoveCollaboration(ctx context.Context, playlistID, userID string) error {
	args := m.Called(ctx, playlistID, userID)
	return args.Error(0)
}

func (m *MockStore) HasCollaboration(ctx context.Context, playlistID, userID string) (bool, error) {
	args := m.Called(ctx, playlistID, userID)
	return args.Bool(0), args.Error(1)
}

func (m *MockStore) InsertActivity(ctx context.Context, playlistID, songID, userID, action string) (string, error) {
	args := m.Called(ctx, playlistID, songID, userID, action)
	return args.String(0), args.Error(1)
}

func (m *MockStore) ListActivities(ctx context.Context, playlistID string) ([]Activity, error) {
	args := m.Called(ctx, playlistID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Activity), args.Error(1)
}

func (m *MockStore) InsertLike(ctx context.Context, albumID, userID string) (string, error) {
	args := m.Called(ctx, albumID, userID)
	return args.String(0), args.Error(1)
}

func (m *MockStore) DeleteLike(ctx context.Context, albumID, userID string) error {
	args := m.Called(ctx, albumID, userID)
	return args.Error(0)
}

func (m *MockStore) CountLikes(ctx context.Context, albumID string) (int, error) {
	args := m.Called(ctx, albumID)
	return args.Int(0), args.Error(1)
}

func (m *MockStore) HasLike(ctx context.Context, albumID, userID string) (bool, error) {
	args := m.Called(ctx, albumID, userID)
	return args.Bool(0), args.Error(1)
}
