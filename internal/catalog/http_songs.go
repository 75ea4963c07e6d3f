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

type songPayload struct {
	Title     string  `json:"title"`
	Year      int     `json:"year"`
	Genre     string  `json:"genre"`
	Performer string  `json:"performer"`
	Duration  *int    `json:"duration"`
	AlbumID   *string `json:"albumId"`
}

func (p *songPayload) validate() string {
	if strings.TrimSpace(p.Title) == "" {
		return "title is required"
	}
	if p.Year < 1900 || p.Year > time.Now().Year()+1 {
		return "year is out of range"
	}
	if strings.TrimSpace(p.Genre) == "" {
		return "genre is required"
	}
	if strings.TrimSpace(p.Performer) == "" {
		return "performer is required"
	}
	if p.Duration != nil && *p.Duration < 0 {
		return "duration must not be negative"
	}
	return ""
}

func (p *songPayload) toSong() *Song {
	return &Song{
		Title:     strings.TrimSpace(p.Title),
		Year:      p.Year,
		Genre:     strings.TrimSpace(p.Genre),
		Performer: strings.TrimSpace(p.Performer),
		Duration:  p.Duration,
		AlbumID:   p.AlbumID,
	}
}

func (s *Server) handleCreateSong(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var body songPayload
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if msg := body.validate(); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}

	id, err := s.store.CreateSong(ctx, body.toSong())
	if err != nil {
		log.Printf("catalog-service: create song: %v", err)
		writeError(w, http.StatusInternalServerError, "database error")
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{"songId": id})
}

func (s *Server) handleListSongs(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	title := r.URL.Query().Get("title")
	performer := r.URL.Query().Get("performer")

	songs, err := s.store.ListSongs(ctx, title, performer)
	if err != nil {
		log.Printf("catalog-service: list songs: %v", err)
		writeError(w, http.StatusInternalServerError, "database error")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"songs": songs})
}

func (s *Server) handleGetSong(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	songID := chi.URLParam(r, "id")

	song, err := s.store.GetSong(ctx, songID)
	if errors.Is(err, pgx.ErrNoRows) {
		writeError(w, http.StatusNotFound, "song not found")
		return
	}
	if err != nil {
		log.Printf("catalog-service: get song: %v", err)
		writeError(w, http.StatusInternalServerError, "database error")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"song": song})
}

func (s *Server) handleUpdateSong(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	songID := chi.URLParam(r, "id")

	var body songPayload
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if msg := body.validate(); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}

	err := s.store.UpdateSong(ctx, songID, body.toSong())
	if errors.Is(err, pgx.ErrNoRows) {
		writeError(w, http.StatusNotFound, "song not found")
		return
	}
	if err != nil {
		log.Printf("catalog-service: update song: %v", err)
		writeError(w, http.StatusInternalServerError, "database error")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "song updated"})
}

func (s *Server) handleDeleteSong(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	songID := chi.URLParam(r, "id")

	err := s.store.DeleteSong(ctx, songID)
	if errors.Is(err, pgx.ErrNoRows) {
		writeError(w, http.StatusNotFound, "song not found")
		return
	}
	if err != nil {
		log.Printf("catalog-service: delete song: %v", err)
		writeError(w, http.StatusInternalServerError, "database error")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "song deleted"})
}
