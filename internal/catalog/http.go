package catalog

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/redis/go-redis/v9"
)

type Server struct {
	store    Store
	resolver *AccessResolver
	activity *ActivityLog
	likes    *LikeCounter
	rdb      *redis.Client
}

func NewServer(store Store, cache LikeCache, rdb *redis.Client) *Server {
	return &Server{
		store:    store,
		resolver: NewAccessResolver(store),
		activity: NewActivityLog(store),
		likes:    NewLikeCounter(store, cache),
		rdb:      rdb,
	}
}

func (s *Server) Router(middlewares ...func(http.Handler) http.Handler) chi.Router {
	r := chi.NewRouter()

	for _, mw := range middlewares {
		r.Use(mw)
	}

	r.Get("/health", s.handleHealth)

	r.Post("/users", s.handleCreateUser)
	r.Get("/users/{id}", s.handleGetUser)

	r.Post("/albums", s.handleCreateAlbum)
	r.Get("/albums", s.handleListAlbums)
	r.Get("/albums/{id}", s.handleGetAlbum)
	r.Put("/albums/{id}", s.handleUpdateAlbum)
	r.Delete("/albums/{id}", s.handleDeleteAlbum)

	r.Post("/albums/{id}/likes", s.handleLikeAlbum)
	r.Delete("/albums/{id}/likes", s.handleUnlikeAlbum)
	r.Get("/albums/{id}/likes", s.handleGetAlbumLikes)

	r.Post("/songs", s.handleCreateSong)
	r.Get("/songs", s.handleListSongs)
	r.Get("/songs/{id}", s.handleGetSong)
	r.Put("/songs/{id}", s.handleUpdateSong)
	r.Delete("/songs/{id}", s.handleDeleteSong)

	r.Post("/playlists", s.handleCreatePlaylist)
	r.Get("/playlists", s.handleListPlaylists)
	r.Delete("/playlists/{id}", s.handleDeletePlaylist)

	r.Post("/playlists/{id}/songs", s.handleAddPlaylistSong)
	r.Get("/playlists/{id}/songs", s.handleGetPlaylistSongs)
	r.Delete("/playlists/{id}/songs", s.handleRemovePlaylistSong)

	r.Get("/playlists/{id}/activities", s.handleListActivities)

	r.Post("/collaborations", s.handleAddCollaboration)
	r.Delete("/collaborations", s.handleDeleteCollaboration)

	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":  "ok",
		"service": "catalog-service",
	})
}
