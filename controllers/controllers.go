package controllers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"peerfinder_server/services"
)

// writeJSON writes a JSON response with the given status code
func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf("Failed to encode response: %v", err)
	}
}

// writeServiceError maps service errors onto the API's status codes and
// legacy error envelopes
func writeServiceError(w http.ResponseWriter, err error) {
	var validationErr *services.ValidationError
	switch {
	case errors.As(err, &validationErr):
		writeJSON(w, http.StatusBadRequest, map[string]interface{}{"success": false, "error": validationErr.Error()})
	case errors.Is(err, services.ErrParticipantNotFound):
		writeJSON(w, http.StatusNotFound, map[string]interface{}{"error": "Not found"})
	case errors.Is(err, services.ErrAlreadyMatched):
		writeJSON(w, http.StatusBadRequest, map[string]interface{}{"error": "Already matched"})
	case errors.Is(err, services.ErrManualPairTooFew):
		writeJSON(w, http.StatusBadRequest, map[string]interface{}{"error": "Select 2+"})
	case errors.Is(err, services.ErrNotMatched):
		writeJSON(w, http.StatusBadRequest, map[string]interface{}{"error": "Not matched to a group"})
	case errors.Is(err, services.ErrStoreUnavailable):
		log.Printf("Store error: %v", err)
		writeJSON(w, http.StatusServiceUnavailable, map[string]interface{}{"success": false, "error": "Database connection failed"})
	default:
		log.Printf("Unexpected error: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]interface{}{"success": false, "error": "Server Error"})
	}
}
