package catalog

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5"
)

func validateAlbumPayload(name string, year int) string {
	if strings.TrimSpace(name) == "" {
		return "name is required"
	}
	if year < 1900 || year > time.Now().Year()+1 {
		return "year is out of range"
	}
	return ""
}

func (s *Server) handleCreateAlbum(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var body struct {
		Name string `json:"name"`
		Year int    `json:"year"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if msg := validateAlbumPayload(body.Name, body.Year); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}

	id, err := s.store.CreateAlbum(ctx, strings.TrimSpace(body.Name), body.Year)
	if err != nil {
		log.Printf("catalog-service: create album: %v", err)
		writeError(w, http.StatusInternalServerError, "database error")
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{"albumId": id})
}

func (s *Server) handleListAlbums(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	albums, err := s.store.ListAlbums(ctx)
	if err != nil {
		log.Printf("catalog-service: list albums: %v", err)
		writeError(w, http.StatusInternalServerError, "database error")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"albums": albums})
}

func (s *Server) handleGetAlbum(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	albumID := chi.URLParam(r, "id")

	album, err := s.store.GetAlbum(ctx, albumID)
	if errors.Is(err, pgx.ErrNoRows) {
		writeError(w, http.StatusNotFound, "album not found")
		return
	}
	if err != nil {
		log.Printf("catalog-service: get album: %v", err)
		writeError(w, http.StatusInternalServerError, "database error")
		return
	}

	songs, err := s.store.ListSongsByAlbum(ctx, albumID)
	if err != nil {
		log.Printf("catalog-service: get album songs: %v", err)
		writeError(w, http.StatusInternalServerError, "database error")
		return
	}
	album.Songs = songs

	writeJSON(w, http.StatusOK, map[string]any{"album": album})
}

func (s *Server) handleUpdateAlbum(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	albumID := chi.URLParam(r, "id")

	var body struct {
		Name string `json:"name"`
		Year int    `json:"year"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if msg := validateAlbumPayload(body.Name, body.Year); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}

	err := s.store.UpdateAlbum(ctx, albumID, strings.TrimSpace(body.Name), body.Year)
	if errors.Is(err, pgx.ErrNoRows) {
		writeError(w, http.StatusNotFound, "album not found")
		return
	}
	if err != nil {
		log.Printf("catalog-service: update album: %v", err)
		writeError(w, http.StatusInternalServerError, "database error")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "album updated"})
}

func (s *Server) handleDeleteAlbum(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	albumID := chi.URLParam(r, "id")

	err := s.store.DeleteAlbum(ctx, albumID)
	if errors.Is(err, pgx.ErrNoRows) {
		writeError(w, http.StatusNotFound, "album not found")
		return
	}
	if err != nil {
		log.Printf("catalog-service: delete album: %v", err)
		writeError(w, http.StatusInternalServerError, "database error")
		return
	}

	s.publishEvent(ctx, "album.deleted", map[string]string{"albumId": albumID})
	writeJSON(w, http.StatusOK, map[string]string{"message": "album deleted"})
}

func (s *Server) handleLikeAlbum(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := r.Header.Get("X-User-Id")
	if userID == "" {
		writeError(w, http.StatusUnauthorized, "missing user context")
		return
	}
	albumID := chi.URLParam(r, "id")

	if _, err := s.likes.Like(ctx, albumID, userID); err != nil {
		writeDomainError(w, "like album", err)
		return
	}

	s.publishEvent(ctx, "album.liked", map[string]string{
		"albumId": albumID,
		"userId":  userID,
	})
	writeJSON(w, http.StatusCreated, map[string]string{"message": "album liked"})
}

func (s *Server) handleUnlikeAlbum(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := r.Header.Get("X-User-Id")
	if userID == "" {
		writeError(w, http.StatusUnauthorized, "missing user context")
		return
	}
	albumID := chi.URLParam(r, "id")

	if err := s.likes.Unlike(ctx, albumID, userID); err != nil {
		writeDomainError(w, "unlike album", err)
		return
	}

	s.publishEvent(ctx, "album.unliked", map[string]string{
		"albumId": albumID,
		"userId":  userID,
	})
	writeJSON(w, http.StatusOK, map[string]string{"message": "like removed"})
}

func (s *Server) handleGetAlbumLikes(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	albumID := chi.URLParam(r, "id")

	count, err := s.likes.GetCount(ctx, albumID)
	if err != nil {
		writeDomainError(w, "get album likes", err)
		return
	}

	w.Header().Set("X-Data-Source", count.Source)
	writeJSON(w, http.StatusOK, map[string]any{"likes": count.Likes})
}
