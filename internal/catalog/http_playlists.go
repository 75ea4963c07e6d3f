package catalog

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5"
)

func (s *Server) handleCreatePlaylist(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	ownerID := r.Header.Get("X-User-Id")
	if ownerID == "" {
		writeError(w, http.StatusUnauthorized, "missing user context")
		return
	}

	var body struct {
		Name string `json:"name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	body.Name = strings.TrimSpace(body.Name)
	if body.Name == "" || len(body.Name) > 200 {
		writeError(w, http.StatusBadRequest, "name must be between 1 and 200 characters")
		return
	}

	id, err := s.store.CreatePlaylist(ctx, body.Name, ownerID)
	if err != nil {
		log.Printf("catalog-service: create playlist: %v", err)
		writeError(w, http.StatusInternalServerError, "database error")
		return
	}

	s.publishEvent(ctx, "playlist.created", map[string]string{
		"playlistId": id,
		"ownerId":    ownerID,
	})
	writeJSON(w, http.StatusCreated, map[string]string{"playlistId": id})
}

func (s *Server) handleListPlaylists(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := r.Header.Get("X-User-Id")
	if userID == "" {
		writeError(w, http.StatusUnauthorized, "missing user context")
		return
	}

	playlists, err := s.store.ListPlaylists(ctx, userID)
	if err != nil {
		log.Printf("catalog-service: list playlists: %v", err)
		writeError(w, http.StatusInternalServerError, "database error")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"playlists": playlists})
}

// handleDeletePlaylist deletes a playlist. Only the owner can delete;
// collaborators never hold destructive rights.
func (s *Server) handleDeletePlaylist(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := r.Header.Get("X-User-Id")
	if userID == "" {
		writeError(w, http.StatusUnauthorized, "missing user context")
		return
	}
	playlistID := chi.URLParam(r, "id")

	if err := s.resolver.VerifyOwnership(ctx, playlistID, userID); err != nil {
		writeDomainError(w, "delete playlist ownership", err)
		return
	}

	err := s.store.DeletePlaylist(ctx, playlistID)
	if errors.Is(err, pgx.ErrNoRows) {
		writeError(w, http.StatusNotFound, "playlist not found")
		return
	}
	if err != nil {
		log.Printf("catalog-service: delete playlist: %v", err)
		writeError(w, http.StatusInternalServerError, "database error")
		return
	}

	s.publishEvent(ctx, "playlist.deleted", map[string]string{"playlistId": playlistID})
	writeJSON(w, http.StatusOK, map[string]string{"message": "playlist deleted"})
}

// handleAddPlaylistSong adds a song to the playlist and records the
// mutation in the activity trail. The two writes are sequential, not
// atomic; a crash between them loses the audit row.
func (s *Server) handleAddPlaylistSong(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := r.Header.Get("X-User-Id")
	if userID == "" {
		writeError(w, http.StatusUnauthorized, "missing user context")
		return
	}
	playlistID := chi.URLParam(r, "id")

	var body struct {
		SongID string `json:"songId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if strings.TrimSpace(body.SongID) == "" {
		writeError(w, http.StatusBadRequest, "songId is required")
		return
	}

	if err := s.resolver.VerifyAccess(ctx, playlistID, userID); err != nil {
		writeDomainError(w, "add playlist song access", err)
		return
	}

	if _, err := s.store.GetSong(ctx, body.SongID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			writeError(w, http.StatusNotFound, "song not found")
			return
		}
		log.Printf("catalog-service: add playlist song fetch song: %v", err)
		writeError(w, http.StatusInternalServerError, "database error")
		return
	}

	id, err := s.store.AddPlaylistSong(ctx, playlistID, body.SongID)
	if errors.Is(err, ErrUniqueViolation) {
		writeError(w, http.StatusBadRequest, "song is already on this playlist")
		return
	}
	if err != nil {
		log.Printf("catalog-service: add playlist song: %v", err)
		writeError(w, http.StatusInternalServerError, "database error")
		return
	}

	if _, err := s.activity.Record(ctx, playlistID, body.SongID, userID, actionAdd); err != nil {
		writeDomainError(w, "record add activity", err)
		return
	}

	s.publishEvent(ctx, "playlist.song_added", map[string]string{
		"playlistId": playlistID,
		"songId":     body.SongID,
		"userId":     userID,
	})
	writeJSON(w, http.StatusCreated, map[string]string{"id": id})
}

func (s *Server) handleGetPlaylistSongs(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := r.Header.Get("X-User-Id")
	if userID == "" {
		writeError(w, http.StatusUnauthorized, "missing user context")
		return
	}
	playlistID := chi.URLParam(r, "id")

	if err := s.resolver.VerifyAccess(ctx, playlistID, userID); err != nil {
		writeDomainError(w, "get playlist songs access", err)
		return
	}

	playlist, err := s.store.GetPlaylist(ctx, playlistID)
	if errors.Is(err, pgx.ErrNoRows) {
		writeError(w, http.StatusNotFound, "playlist not found")
		return
	}
	if err != nil {
		log.Printf("catalog-service: get playlist: %v", err)
		writeError(w, http.StatusInternalServerError, "database error")
		return
	}

	songs, err := s.store.ListSongsByPlaylist(ctx, playlistID)
	if err != nil {
		log.Printf("catalog-service: list playlist songs: %v", err)
		writeError(w, http.StatusInternalServerError, "database error")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"playlist": playlist,
		"songs":    songs,
	})
}

// handleRemovePlaylistSong removes a song and records the mutation,
// mirroring handleAddPlaylistSong.
func (s *Server) handleRemovePlaylistSong(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := r.Header.Get("X-User-Id")
	if userID == "" {
		writeError(w, http.StatusUnauthorized, "missing user context")
		return
	}
	playlistID := chi.URLParam(r, "id")

	var body struct {
		SongID string `json:"songId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if strings.TrimSpace(body.SongID) == "" {
		writeError(w, http.StatusBadRequest, "songId is required")
		return
	}

	if err := s.resolver.VerifyAccess(ctx, playlistID, userID); err != nil {
		writeDomainError(w, "remove playlist song access", err)
		return
	}

	err := s.store.RemovePlaylistSong(ctx, playlistID, body.SongID)
	if errors.Is(err, pgx.ErrNoRows) {
		writeError(w, http.StatusNotFound, "song is not on this playlist")
		return
	}
	if err != nil {
		log.Printf("catalog-service: remove playlist song: %v", err)
		writeError(w, http.StatusInternalServerError, "database error")
		return
	}

	if _, err := s.activity.Record(ctx, playlistID, body.SongID, userID, actionDelete); err != nil {
		writeDomainError(w, "record delete activity", err)
		return
	}

	s.publishEvent(ctx, "playlist.song_removed", map[string]string{
		"playlistId": playlistID,
		"songId":     body.SongID,
		"userId":     userID,
	})
	writeJSON(w, http.StatusOK, map[string]string{"message": "song removed from playlist"})
}

func (s *Server) handleListActivities(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := r.Header.Get("X-User-Id")
	if userID == "" {
		writeError(w, http.StatusUnauthorized, "missing user context")
		return
	}
	playlistID := chi.URLParam(r, "id")

	if err := s.resolver.VerifyAccess(ctx, playlistID, userID); err != nil {
		writeDomainError(w, "list activities access", err)
		return
	}

	activities, err := s.activity.List(ctx, playlistID)
	if err != nil {
		writeDomainError(w, "list activities", err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"playlistId": playlistID,
		"activities": activities,
	})
}
