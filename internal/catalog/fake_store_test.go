package catalog

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/jackc/pgx/v5"
)

// fakeStore is a stateful in-memory Store for end-to-end tests. It
// enforces the same uniqueness rules the real schema does.
type fakeStore struct {
	mu sync.Mutex

	seq int

	users          map[string]User
	albums         map[string]Album
	songs          map[string]Song
	playlists      map[string]Playlist
	playlistSongs  map[string]map[string]bool // playlist id -> song id set
	collaborations map[string]map[string]bool // playlist id -> user id set
	likes          map[string]map[string]bool // album id -> user id set

	activities []fakeActivity
}

type fakeActivity struct {
	playlistID string
	songID     string
	userID     string
	action     string
	createdAt  time.Time
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		users:          map[string]User{},
		albums:         map[string]Album{},
		songs:          map[string]Song{},
		playlists:      map[string]Playlist{},
		playlistSongs:  map[string]map[string]bool{},
		collaborations: map[string]map[string]bool{},
		likes:          map[string]map[string]bool{},
	}
}

func (f *fakeStore) nextID(prefix string) string {
	f.seq++
	return fmt.Sprintf("%s-%d", prefix, f.seq)
}

func (f *fakeStore) CreateUser(ctx context.Context, username, passwordHash, fullname string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.Username == username {
			return "", ErrUniqueViolation
		}
	}
	id := f.nextID("user")
	f.users[id] = User{ID: id, Username: username, Fullname: fullname}
	return id, nil
}

func (f *fakeStore) GetUserByID(ctx context.Context, id string) (*User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return &u, nil
}

func (f *fakeStore) CreateAlbum(ctx context.Context, name string, year int) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	id := f.nextID("album")
	f.albums[id] = Album{ID: id, Name: name, Year: year}
	return id, nil
}

func (f *fakeStore) ListAlbums(ctx context.Context) ([]Album, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	albums := []Album{}
	for _, a := range f.albums {
		albums = append(albums, a)
	}
	return albums, nil
}

func (f *fakeStore) GetAlbum(ctx context.Context, id string) (*Album, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	a, ok := f.albums[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return &a, nil
}

func (f *fakeStore) UpdateAlbum(ctx context.Context, id, name string, year int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.albums[id]; !ok {
		return pgx.ErrNoRows
	}
	f.albums[id] = Album{ID: id, Name: name, Year: year}
	return nil
}

func (f *fakeStore) DeleteAlbum(ctx context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.albums[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(f.albums, id)
	delete(f.likes, id)
	return nil
}

func (f *fakeStore) AlbumExists(ctx context.Context, id string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	_, ok := f.albums[id]
	return ok, nil
}

func (f *fakeStore) CreateSong(ctx context.Context, s *Song) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	id := f.nextID("song")
	song := *s
	song.ID = id
	f.songs[id] = song
	return id, nil
}

func (f *fakeStore) ListSongs(ctx context.Context, title, performer string) ([]Song, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	songs := []Song{}
	for _, s := range f.songs {
		if title != "" && !strings.Contains(strings.ToLower(s.Title), strings.ToLower(title)) {
			continue
		}
		if performer != "" && !strings.Contains(strings.ToLower(s.Performer), strings.ToLower(performer)) {
			continue
		}
		songs = append(songs, s)
	}
	return songs, nil
}

func (f *fakeStore) GetSong(ctx context.Context, id string) (*Song, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	s, ok := f.songs[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return &s, nil
}

func (f *fakeStore) UpdateSong(ctx context.Context, id string, s *Song) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.songs[id]; !ok {
		return pgx.ErrNoRows
	}
	song := *s
	song.ID = id
	f.songs[id] = song
	return nil
}

func (f *fakeStore) DeleteSong(ctx context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.songs[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(f.songs, id)
	return nil
}

func (f *fakeStore) ListSongsByAlbum(ctx context.Context, albumID string) ([]Song, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	songs := []Song{}
	for _, s := range f.songs {
		if s.AlbumID != nil && *s.AlbumID == albumID {
			songs = append(songs, s)
		}
	}
	return songs, nil
}

func (f *fakeStore) ListSongsByPlaylist(ctx context.Context, playlistID string) ([]Song, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	songs := []Song{}
	for songID := range f.playlistSongs[playlistID] {
		if s, ok := f.songs[songID]; ok {
			songs = append(songs, s)
		}
	}
	sort.Slice(songs, func(i, j int) bool { return songs[i].ID < songs[j].ID })
	return songs, nil
}

func (f *fakeStore) CreatePlaylist(ctx context.Context, name, ownerID string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	id := f.nextID("playlist")
	username := ""
	if u, ok := f.users[ownerID]; ok {
		username = u.Username
	}
	f.playlists[id] = Playlist{ID: id, Name: name, OwnerID: ownerID, Username: username}
	return id, nil
}

func (f *fakeStore) ListPlaylists(ctx context.Context, userID string) ([]Playlist, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	playlists := []Playlist{}
	for id, pl := range f.playlists {
		if pl.OwnerID == userID || f.collaborations[id][userID] {
			playlists = append(playlists, pl)
		}
	}
	return playlists, nil
}

func (f *fakeStore) GetPlaylist(ctx context.Context, id string) (*Playlist, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	pl, ok := f.playlists[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return &pl, nil
}

func (f *fakeStore) DeletePlaylist(ctx context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.playlists[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(f.playlists, id)
	delete(f.playlistSongs, id)
	delete(f.collaborations, id)
	kept := f.activities[:0]
	for _, a := range f.activities {
		if a.playlistID != id {
			kept = append(kept, a)
		}
	}
	f.activities = kept
	return nil
}

func (f *fakeStore) GetPlaylistOwner(ctx context.Context, id string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	pl, ok := f.playlists[id]
	if !ok {
		return "", pgx.ErrNoRows
	}
	return pl.OwnerID, nil
}

func (f *fakeStore) AddPlaylistSong(ctx context.Context, playlistID, songID string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.playlistSongs[playlistID] == nil {
		f.playlistSongs[playlistID] = map[string]bool{}
	}
	if f.playlistSongs[playlistID][songID] {
		return "", ErrUniqueViolation
	}
	f.playlistSongs[playlistID][songID] = true
	return f.nextID("playlist_songs"), nil
}

func (f *fakeStore) RemovePlaylistSong(ctx context.Context, playlistID, songID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if !f.playlistSongs[playlistID][songID] {
		return pgx.ErrNoRows
	}
	delete(f.playlistSongs[playlistID], songID)
	return nil
}

func (f *fakeStore) AddCollaboration(ctx context.Context, playlistID, userID string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.collaborations[playlistID] == nil {
		f.collaborations[playlistID] = map[string]bool{}
	}
	if f.collaborations[playlistID][userID] {
		return "", ErrUniqueViolation
	}
	f.collaborations[playlistID][userID] = true
	return f.nextID("collab"), nil
}

func (f *fakeStore) RemoveCollaboration(ctx context.Context, playlistID, userID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if !f.collaborations[playlistID][userID] {
		return pgx.ErrNoRows
	}
	delete(f.collaborations[playlistID], userID)
	return nil
}

func (f *fakeStore) HasCollaboration(ctx context.Context, playlistID, userID string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.collaborations[playlistID][userID], nil
}

func (f *fakeStore) InsertActivity(ctx context.Context, playlistID, songID, userID, action string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.activities = append(f.activities, fakeActivity{
		playlistID: playlistID,
		songID:     songID,
		userID:     userID,
		action:     action,
		createdAt:  time.Now(),
	})
	return f.nextID("activity"), nil
}

func (f *fakeStore) ListActivities(ctx context.Context, playlistID string) ([]Activity, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	activities := []Activity{}
	for _, a := range f.activities {
		if a.playlistID != playlistID {
			continue
		}
		username := ""
		if u, ok := f.users[a.userID]; ok {
			username = u.Username
		}
		title := ""
		if s, ok := f.songs[a.songID]; ok {
			title = s.Title
		}
		activities = append(activities, Activity{
			Username:  username,
			Title:     title,
			Action:    a.action,
			CreatedAt: a.createdAt,
		})
	}
	return activities, nil
}

func (f *fakeStore) InsertLike(ctx context.Context, albumID, userID string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.likes[albumID] == nil {
		f.likes[albumID] = map[string]bool{}
	}
	if f.likes[albumID][userID] {
		return "", ErrUniqueViolation
	}
	f.likes[albumID][userID] = true
	return f.nextID("like"), nil
}

func (f *fakeStore) DeleteLike(ctx context.Context, albumID, userID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if !f.likes[albumID][userID] {
		return pgx.ErrNoRows
	}
	delete(f.likes[albumID], userID)
	return nil
}

func (f *fakeStore) CountLikes(ctx context.Context, albumID string) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.likes[albumID]), nil
}

func (f *fakeStore) HasLike(ctx context.Context, albumID, userID string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.likes[albumID][userID], nil
}
