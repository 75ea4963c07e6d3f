package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
)

func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{
		"error": msg,
	})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeDomainError maps typed domain errors to their status code.
// Anything unclassified is a storage failure: logged, surfaced as a
// generic 500.
func writeDomainError(w http.ResponseWriter, op string, err error) {
	var nf *NotFoundError
	if errors.As(err, &nf) {
		writeError(w, http.StatusNotFound, nf.Msg)
		return
	}
	var inv *InvariantError
	if errors.As(err, &inv) {
		writeError(w, http.StatusBadRequest, inv.Msg)
		return
	}
	var fb *ForbiddenError
	if errors.As(err, &fb) {
		writeError(w, http.StatusForbidden, fb.Msg)
		return
	}
	log.Printf("catalog-service: %s: %v", op, err)
	writeError(w, http.StatusInternalServerError, "database error")
}

// publishEvent notifies downstream consumers (export jobs, realtime)
// best-effort over the broadcast channel.
func (s *Server) publishEvent(ctx context.Context, eventType string, payload any) {
	if s.rdb == nil {
		return
	}
	data, err := json.Marshal(map[string]any{
		"type":    eventType,
		"payload": payload,
	})
	if err != nil {
		log.Printf("catalog-service: marshal event: %v", err)
		return
	}
	if err := s.rdb.Publish(ctx, "broadcast", string(data)).Err(); err != nil {
		log.Printf("catalog-service: publish event: %v", err)
	}
}
