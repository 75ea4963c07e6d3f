package catalog

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5"
	"golang.org/x/crypto/bcrypt"
)

func (s *Server) handleCreateUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var body struct {
		Username string `json:"username"`
		Password string `json:"password"`
		Fullname string `json:"fullname"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	body.Username = strings.TrimSpace(body.Username)
	body.Fullname = strings.TrimSpace(body.Fullname)
	if body.Username == "" || len(body.Username) > 50 {
		writeError(w, http.StatusBadRequest, "username must be between 1 and 50 characters")
		return
	}
	if body.Password == "" {
		writeError(w, http.StatusBadRequest, "password is required")
		return
	}
	if body.Fullname == "" {
		writeError(w, http.StatusBadRequest, "fullname is required")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(body.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("catalog-service: hash password: %v", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	id, err := s.store.CreateUser(ctx, body.Username, string(hash), body.Fullname)
	if errors.Is(err, ErrUniqueViolation) {
		writeError(w, http.StatusBadRequest, "username is already taken")
		return
	}
	if err != nil {
		log.Printf("catalog-service: create user: %v", err)
		writeError(w, http.StatusInternalServerError, "database error")
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{"userId": id})
}

func (s *Server) handleGetUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := chi.URLParam(r, "id")

	user, err := s.store.GetUserByID(ctx, userID)
	if errors.Is(err, pgx.ErrNoRows) {
		writeError(w, http.StatusNotFound, "user not found")
		return
	}
	if err != nil {
		log.Printf("catalog-service: get user: %v", err)
		writeError(w, http.StatusInternalServerError, "database error")
		return
	}

	writeJSON(w, http.StatusOK, user)
}
