package catalog

import "time"

const (
	actionAdd    = "add"
	actionDelete = "delete"
)

// User is the registered account a principal id resolves to.
type User struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Fullname string `json:"fullname"`
}

type Album struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Year  int    `json:"year"`
	Songs []Song `json:"songs,omitempty"`
}

type Song struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Year      int    `json:"year"`
	Genre     string `json:"genre"`
	Performer string `json:"performer"`
	Duration  *int   `json:"duration,omitempty"`
	AlbumID   *string `json:"albumId,omitempty"`
}

// Playlist is owned exclusively by its creator; collaborators get
// read/write access to its songs but never ownership.
type Playlist struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	OwnerID  string `json:"ownerId"`
	Username string `json:"username,omitempty"`
}

type Collaboration struct {
	ID         string `json:"id"`
	PlaylistID string `json:"playlistId"`
	UserID     string `json:"userId"`
}

// Activity is an immutable record of a song mutation on a playlist.
// Rows are append-only and returned in insertion order.
type Activity struct {
	Username  string    `json:"username"`
	Title     string    `json:"title"`
	Action    string    `json:"action"`
	CreatedAt time.Time `json:"created_at"`
}

// LikeCount carries the counter together with where it was read from,
// "cache" or "database".
type LikeCount struct {
	Likes  int
	Source string
}

const (
	sourceCache    = "cache"
	sourceDatabase = "database"
)
