package controllers

import (
	"encoding/json"
	"net/http"

	"peerfinder_server/models"
	"peerfinder_server/services"
)

// RegistrationController handles HTTP requests for participant registration
type RegistrationController struct {
	Service *services.RegistrationService
}

// NewRegistrationController creates a new RegistrationController instance
func NewRegistrationController(service *services.RegistrationService) *RegistrationController {
	return &RegistrationController{Service: service}
}

// Register handles new participant registration
func (rc *RegistrationController) Register(w http.ResponseWriter, r *http.Request) {
	var req models.RegistrationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]interface{}{"success": false, "error": "Invalid JSON body"})
		return
	}

	result, err := rc.Service.Register(r.Context(), req)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	if result.Duplicate {
		writeJSON(w, http.StatusOK, map[string]interface{}{
			"success":         false,
			"is_duplicate":    true,
			"user_id":         result.ParticipantID,
			"already_matched": result.AlreadyMatched,
		})
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"user_id": result.ParticipantID,
	})
}
