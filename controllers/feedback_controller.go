package controllers

import (
	"encoding/json"
	"net/http"

	"peerfinder_server/services"
)

// FeedbackController handles HTTP requests for feedback submission
type FeedbackController struct {
	Service *services.FeedbackService
}

// NewFeedbackController creates a new FeedbackController instance
func NewFeedbackController(service *services.FeedbackService) *FeedbackController {
	return &FeedbackController{Service: service}
}

// Submit records one anonymous feedback entry
func (fc *FeedbackController) Submit(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Rating  int    `json:"rating"`
		Comment string `json:"comment"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]interface{}{"success": false, "error": "Invalid JSON body"})
		return
	}

	if err := fc.Service.Submit(r.Context(), req.Rating, req.Comment); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"success": true})
}
