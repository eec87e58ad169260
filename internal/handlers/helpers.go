package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"event-admission-platform/internal/models"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("failed to encode response: %v", err)
	}
}

// writeError maps domain errors to HTTP statuses. Crypto and decode
// failures surface as 400s with the sentinel's message only; internal
// detail never reaches the caller.
func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, models.ErrEventNotFound),
		errors.Is(err, models.ErrTicketNotFound):
		writeJSON(w, http.StatusNotFound, errorResponse{Error: err.Error()})
	case errors.Is(err, models.ErrInsufficientCapacity),
		errors.Is(err, models.ErrInvalidCiphertext),
		errors.Is(err, models.ErrMalformedPayload),
		errors.Is(err, models.ErrTicketModified),
		errors.Is(err, models.ErrPayloadTooLarge),
		errors.Is(err, models.ErrInvalidInput):
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
	default:
		log.Printf("internal error: %v", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal server error"})
	}
}
