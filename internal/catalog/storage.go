package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// DB is the interface for database operations.
// It is implemented by *pgxpool.Pool and can be mocked for testing.
type DB interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// ErrUniqueViolation is returned when an insert hits a unique
// constraint. The application-level duplicate checks are an early
// exit only; the constraint is the authority.
var ErrUniqueViolation = errors.New("unique constraint violation")

type Store interface {
	// Users
	CreateUser(ctx context.Context, username, passwordHash, fullname string) (string, error)
	GetUserByID(ctx context.Context, id string) (*User, error)

	// Albums
	CreateAlbum(ctx context.Context, name string, year int) (string, error)
	ListAlbums(ctx context.Context) ([]Album, error)
	GetAlbum(ctx context.Context, id string) (*Album, error)
	UpdateAlbum(ctx context.Context, id, name string, year int) error
	DeleteAlbum(ctx context.Context, id string) error
	AlbumExists(ctx context.Context, id string) (bool, error)

	// Songs
	CreateSong(ctx context.Context, s *Song) (string, error)
	ListSongs(ctx context.Context, title, performer string) ([]Song, error)
	GetSong(ctx context.Context, id string) (*Song, error)
	UpdateSong(ctx context.Context, id string, s *Song) error
	DeleteSong(ctx context.Context, id string) error
	ListSongsByAlbum(ctx context.Context, albumID string) ([]Song, error)
	ListSongsByPlaylist(ctx context.Context, playlistID string) ([]Song, error)

	// Playlists
	CreatePlaylist(ctx context.Context, name, ownerID string) (string, error)
	ListPlaylists(ctx context.Context, userID string) ([]Playlist, error)
	GetPlaylist(ctx context.Context, id string) (*Playlist, error)
	DeletePlaylist(ctx context.Context, id string) error
	GetPlaylistOwner(ctx context.Context, id string) (string, error)
	AddPlaylistSong(ctx context.Context, playlistID, songID string) (string, error)
	RemovePlaylistSong(ctx context.Context, playlistID, songID string) error

	// Collaborations
	AddCollaboration(ctx context.Context, playlistID, userID string) (string, error)
	RemoveCollaboration(ctx context.Context, playlistID, userID string) error
	HasCollaboration(ctx context.Context, playlistID, userID string) (bool, error)

	// Activities
	InsertActivity(ctx context.Context, playlistID, songID, userID, action string) (string, error)
	ListActivities(ctx context.Context, playlistID string) ([]Activity, error)

	// Album likes
	InsertLike(ctx context.Context, albumID, userID string) (string, error)
	DeleteLike(ctx context.Context, albumID, userID string) error
	CountLikes(ctx context.Context, albumID string) (int, error)
	HasLike(ctx context.Context, albumID, userID string) (bool, error)
}

type PostgresStore struct {
	db DB
}

func NewPostgresStore(db DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func newID(prefix string) string {
	return prefix + "-" + uuid.NewString()
}

func translateUnique(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return ErrUniqueViolation
	}
	return err
}

// --- Users ---

func (s *PostgresStore) CreateUser(ctx context.Context, username, passwordHash, fullname string) (string, error) {
	var id string
	err := s.db.QueryRow(ctx, `
        INSERT INTO users (id, username, password, fullname)
        VALUES ($1, $2, $3, $4)
        RETURNING id
    `, newID("user"), username, passwordHash, fullname).Scan(&id)
	if err != nil {
		return "", translateUnique(err)
	}
	return id, nil
}

func (s *PostgresStore) GetUserByID(ctx context.Context, id string) (*User, error) {
	var u User
	err := s.db.QueryRow(ctx, `
        SELECT id, username, fullname FROM users WHERE id = $1
    `, id).Scan(&u.ID, &u.Username, &u.Fullname)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// --- Albums ---

func (s *PostgresStore) CreateAlbum(ctx context.Context, name string, year int) (string, error) {
	var id string
	err := s.db.QueryRow(ctx, `
        INSERT INTO albums (id, name, year)
        VALUES ($1, $2, $3)
        RETURNING id
    `, newID("album"), name, year).Scan(&id)
	return id, err
}

func (s *PostgresStore) ListAlbums(ctx context.Context) ([]Album, error) {
	rows, err := s.db.Query(ctx, `SELECT id, name, year FROM albums ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	albums := []Album{}
	for rows.Next() {
		var a Album
		if err := rows.Scan(&a.ID, &a.Name, &a.Year); err != nil {
			return nil, err
		}
		albums = append(albums, a)
	}
	return albums, rows.Err()
}

func (s *PostgresStore) GetAlbum(ctx context.Context, id string) (*Album, error) {
	var a Album
	err := s.db.QueryRow(ctx, `
        SELECT id, name, year FROM albums WHERE id = $1
    `, id).Scan(&a.ID, &a.Name, &a.Year)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (s *PostgresStore) UpdateAlbum(ctx context.Context, id, name string, year int) error {
	res, err := s.db.Exec(ctx, `
        UPDATE albums SET name = $2, year = $3, updated_at = now() WHERE id = $1
    `, id, name, year)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (s *PostgresStore) DeleteAlbum(ctx context.Context, id string) error {
	res, err := s.db.Exec(ctx, `DELETE FROM albums WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (s *PostgresStore) AlbumExists(ctx context.Context, id string) (bool, error) {
	var exists bool
	err := s.db.QueryRow(ctx, `
        SELECT EXISTS(SELECT 1 FROM albums WHERE id = $1)
    `, id).Scan(&exists)
	return exists, err
}

// --- Songs ---

func (s *PostgresStore) CreateSong(ctx context.Context, song *Song) (string, error) {
	var id string
	err := s.db.QueryRow(ctx, `
        INSERT INTO songs (id, title, year, genre, performer, duration, album_id)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        RETURNING id
    `, newID("song"), song.Title, song.Year, song.Genre, song.Performer, song.Duration, song.AlbumID).Scan(&id)
	return id, err
}

func (s *PostgresStore) ListSongs(ctx context.Context, title, performer string) ([]Song, error) {
	query := `SELECT id, title, performer FROM songs`
	args := []any{}

	if title != "" {
		args = append(args, "%"+title+"%")
		query += fmt.Sprintf(" WHERE LOWER(title) LIKE LOWER($%d)", len(args))
	}
	if performer != "" {
		args = append(args, "%"+performer+"%")
		if len(args) > 1 {
			query += fmt.Sprintf(" AND LOWER(performer) LIKE LOWER($%d)", len(args))
		} else {
			query += fmt.Sprintf(" WHERE LOWER(performer) LIKE LOWER($%d)", len(args))
		}
	}

	rows, err := s.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	songs := []Song{}
	for rows.Next() {
		var sg Song
		if err := rows.Scan(&sg.ID, &sg.Title, &sg.Performer); err != nil {
			return nil, err
		}
		songs = append(songs, sg)
	}
	return songs, rows.Err()
}

func (s *PostgresStore) GetSong(ctx context.Context, id string) (*Song, error) {
	var sg Song
	err := s.db.QueryRow(ctx, `
        SELECT id, title, year, genre, performer, duration, album_id
        FROM songs WHERE id = $1
    `, id).Scan(&sg.ID, &sg.Title, &sg.Year, &sg.Genre, &sg.Performer, &sg.Duration, &sg.AlbumID)
	if err != nil {
		return nil, err
	}
	return &sg, nil
}

func (s *PostgresStore) UpdateSong(ctx context.Context, id string, song *Song) error {
	res, err := s.db.Exec(ctx, `
        UPDATE songs
        SET title = $2, year = $3, genre = $4, performer = $5, duration = $6, album_id = $7, updated_at = now()
        WHERE id = $1
    `, id, song.Title, song.Year, song.Genre, song.Performer, song.Duration, song.AlbumID)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (s *PostgresStore) DeleteSong(ctx context.Context, id string) error {
	res, err := s.db.Exec(ctx, `DELETE FROM songs WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (s *PostgresStore) ListSongsByAlbum(ctx context.Context, albumID string) ([]Song, error) {
	rows, err := s.db.Query(ctx, `
        SELECT id, title, performer FROM songs WHERE album_id = $1
    `, albumID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	songs := []Song{}
	for rows.Next() {
		var sg Song
		if err := rows.Scan(&sg.ID, &sg.Title, &sg.Performer); err != nil {
			return nil, err
		}
		songs = append(songs, sg)
	}
	return songs, rows.Err()
}

func (s *PostgresStore) ListSongsByPlaylist(ctx context.Context, playlistID string) ([]Song, error) {
	rows, err := s.db.Query(ctx, `
        SELECT s.id, s.title, s.performer
        FROM songs s
        JOIN playlist_songs ps ON s.id = ps.song_id
        WHERE ps.playlist_id = $1
    `, playlistID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	songs := []Song{}
	for rows.Next() {
		var sg Song
		if err := rows.Scan(&sg.ID, &sg.Title, &sg.Performer); err != nil {
			return nil, err
		}
		songs = append(songs, sg)
	}
	return songs, rows.Err()
}

// --- Playlists ---

func (s *PostgresStore) CreatePlaylist(ctx context.Context, name, ownerID string) (string, error) {
	var id string
	err := s.db.QueryRow(ctx, `
        INSERT INTO playlists (id, name, user_id)
        VALUES ($1, $2, $3)
        RETURNING id
    `, newID("playlist"), name, ownerID).Scan(&id)
	return id, err
}

// ListPlaylists returns playlists the user owns plus playlists shared
// with them through a collaboration row.
func (s *PostgresStore) ListPlaylists(ctx context.Context, userID string) ([]Playlist, error) {
	rows, err := s.db.Query(ctx, `
        SELECT DISTINCT p.id, p.name, p.user_id, u.username
        FROM playlists p
        JOIN users u ON u.id = p.user_id
        LEFT JOIN collaborations c ON c.playlist_id = p.id AND c.user_id = $1
        WHERE p.user_id = $1 OR c.user_id = $1
    `, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	playlists := []Playlist{}
	for rows.Next() {
		var pl Playlist
		if err := rows.Scan(&pl.ID, &pl.Name, &pl.OwnerID, &pl.Username); err != nil {
			return nil, err
		}
		playlists = append(playlists, pl)
	}
	return playlists, rows.Err()
}

func (s *PostgresStore) GetPlaylist(ctx context.Context, id string) (*Playlist, error) {
	var pl Playlist
	err := s.db.QueryRow(ctx, `
        SELECT p.id, p.name, p.user_id, u.username
        FROM playlists p
        JOIN users u ON u.id = p.user_id
        WHERE p.id = $1
    `, id).Scan(&pl.ID, &pl.Name, &pl.OwnerID, &pl.Username)
	if err != nil {
		return nil, err
	}
	return &pl, nil
}

func (s *PostgresStore) DeletePlaylist(ctx context.Context, id string) error {
	res, err := s.db.Exec(ctx, `DELETE FROM playlists WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (s *PostgresStore) GetPlaylistOwner(ctx context.Context, id string) (string, error) {
	var ownerID string
	err := s.db.QueryRow(ctx, `
        SELECT user_id FROM playlists WHERE id = $1
    `, id).Scan(&ownerID)
	return ownerID, err
}

func (s *PostgresStore) AddPlaylistSong(ctx context.Context, playlistID, songID string) (string, error) {
	var id string
	err := s.db.QueryRow(ctx, `
        INSERT INTO playlist_songs (id, playlist_id, song_id)
        VALUES ($1, $2, $3)
        RETURNING id
    `, newID("playlist_songs"), playlistID, songID).Scan(&id)
	if err != nil {
		return "", translateUnique(err)
	}
	return id, nil
}

func (s *PostgresStore) RemovePlaylistSong(ctx context.Context, playlistID, songID string) error {
	res, err := s.db.Exec(ctx, `
        DELETE FROM playlist_songs WHERE playlist_id = $1 AND song_id = $2
    `, playlistID, songID)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

// --- Collaborations ---

func (s *PostgresStore) AddCollaboration(ctx context.Context, playlistID, userID string) (string, error) {
	var id string
	err := s.db.QueryRow(ctx, `
        INSERT INTO collaborations (id, playlist_id, user_id)
        VALUES ($1, $2, $3)
        RETURNING id
    `, newID("collab"), playlistID, userID).Scan(&id)
	if err != nil {
		return "", translateUnique(err)
	}
	return id, nil
}

func (s *PostgresStore) RemoveCollaboration(ctx context.Context, playlistID, userID string) error {
	res, err := s.db.Exec(ctx, `
        DELETE FROM collaborations WHERE playlist_id = $1 AND user_id = $2
    `, playlistID, userID)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (s *PostgresStore) HasCollaboration(ctx context.Context, playlistID, userID string) (bool, error) {
	var exists bool
	err := s.db.QueryRow(ctx, `
        SELECT EXISTS(SELECT 1 FROM collaborations WHERE playlist_id = $1 AND user_id = $2)
    `, playlistID, userID).Scan(&exists)
	return exists, err
}

// --- Activities ---

func (s *PostgresStore) InsertActivity(ctx context.Context, playlistID, songID, userID, action string) (string, error) {
	var id string
	err := s.db.QueryRow(ctx, `
        INSERT INTO playlist_song_activities (id, playlist_id, song_id, user_id, action)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id
    `, newID("activity"), playlistID, songID, userID, action).Scan(&id)
	return id, err
}

func (s *PostgresStore) ListActivities(ctx context.Context, playlistID string) ([]Activity, error) {
	rows, err := s.db.Query(ctx, `
        SELECT u.username, s.title, pa.action, pa.created_at
        FROM playlist_song_activities pa
        JOIN users u ON u.id = pa.user_id
        JOIN songs s ON s.id = pa.song_id
        WHERE pa.playlist_id = $1
        ORDER BY pa.created_at ASC
    `, playlistID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	activities := []Activity{}
	for rows.Next() {
		var a Activity
		if err := rows.Scan(&a.Username, &a.Title, &a.Action, &a.CreatedAt); err != nil {
			return nil, err
		}
		activities = append(activities, a)
	}
	return activities, rows.Err()
}

// --- Album likes ---

func (s *PostgresStore) InsertLike(ctx context.Context, albumID, userID string) (string, error) {
	var id string
	err := s.db.QueryRow(ctx, `
        INSERT INTO user_album_likes (id, user_id, album_id)
        VALUES ($1, $2, $3)
        RETURNING id
    `, newID("like"), userID, albumID).Scan(&id)
	if err != nil {
		return "", translateUnique(err)
	}
	return id, nil
}

func (s *PostgresStore) DeleteLike(ctx context.Context, albumID, userID string) error {
	res, err := s.db.Exec(ctx, `
        DELETE FROM user_album_likes WHERE album_id = $1 AND user_id = $2
    `, albumID, userID)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (s *PostgresStore) CountLikes(ctx context.Context, albumID string) (int, error) {
	var total int
	err := s.db.QueryRow(ctx, `
        SELECT COUNT(*) FROM user_album_likes WHERE album_id = $1
    `, albumID).Scan(&total)
	return total, err
}

func (s *PostgresStore) HasLike(ctx context.Context, albumID, userID string) (bool, error) {
	var exists bool
	err := s.db.QueryRow(ctx, `
        SELECT EXISTS(SELECT 1 FROM user_album_likes WHERE album_id = $1 AND user_id = $2)
    `, albumID, userID).Scan(&exists)
	return exists, err
}
