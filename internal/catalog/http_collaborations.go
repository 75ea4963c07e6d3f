package catalog

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/jackc/pgx/v5"
)

type collaborationPayload struct {
	PlaylistID string `json:"playlistId"`
	UserID     string `json:"userId"`
}

func (p *collaborationPayload) validate() string {
	if strings.TrimSpace(p.PlaylistID) == "" {
		return "playlistId is required"
	}
	if strings.TrimSpace(p.UserID) == "" {
		return "userId is required"
	}
	return ""
}

// handleAddCollaboration grants a user read/write access to a
// playlist. Only the owner can manage collaborators.
func (s *Server) handleAddCollaboration(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := r.Header.Get("X-User-Id")
	if userID == "" {
		writeError(w, http.StatusUnauthorized, "missing user context")
		return
	}

	var body collaborationPayload
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if msg := body.validate(); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}

	if err := s.resolver.VerifyOwnership(ctx, body.PlaylistID, userID); err != nil {
		writeDomainError(w, "add collaboration ownership", err)
		return
	}

	if _, err := s.store.GetUserByID(ctx, body.UserID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			writeError(w, http.StatusNotFound, "user not found")
			return
		}
		log.Printf("catalog-service: add collaboration fetch user: %v", err)
		writeError(w, http.StatusInternalServerError, "database error")
		return
	}

	id, err := s.store.AddCollaboration(ctx, body.PlaylistID, body.UserID)
	if errors.Is(err, ErrUniqueViolation) {
		writeError(w, http.StatusBadRequest, "user is already a collaborator")
		return
	}
	if err != nil {
		log.Printf("catalog-service: add collaboration: %v", err)
		writeError(w, http.StatusInternalServerError, "database error")
		return
	}

	s.publishEvent(ctx, "collaboration.added", map[string]string{
		"playlistId": body.PlaylistID,
		"userId":     body.UserID,
	})
	writeJSON(w, http.StatusCreated, map[string]string{"collaborationId": id})
}

func (s *Server) handleDeleteCollaboration(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := r.Header.Get("X-User-Id")
	if userID == "" {
		writeError(w, http.StatusUnauthorized, "missing user context")
		return
	}

	var body collaborationPayload
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if msg := body.validate(); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}

	if err := s.resolver.VerifyOwnership(ctx, body.PlaylistID, userID); err != nil {
		writeDomainError(w, "delete collaboration ownership", err)
		return
	}

	err := s.store.RemoveCollaboration(ctx, body.PlaylistID, body.UserID)
	if errors.Is(err, pgx.ErrNoRows) {
		writeError(w, http.StatusBadRequest, "failed to remove collaborator")
		return
	}
	if err != nil {
		log.Printf("catalog-service: delete collaboration: %v", err)
		writeError(w, http.StatusInternalServerError, "database error")
		return
	}

	s.publishEvent(ctx, "collaboration.removed", map[string]string{
		"playlistId": body.PlaylistID,
		"userId":     body.UserID,
	})
	writeJSON(w, http.StatusOK, map[string]string{"message": "collaborator removed"})
}
