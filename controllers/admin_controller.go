package controllers

import (
	"encoding/json"
	"net/http"

	"peerfinder_server/services"
)

// AdminController handles password-gated administrative operations
type AdminController struct {
	Admin    *services.AdminService
	Feedback *services.FeedbackService
	Password string
}

// NewAdminController creates a new AdminController instance
func NewAdminController(admin *services.AdminService, feedback *services.FeedbackService, password string) *AdminController {
	return &AdminController{Admin: admin, Feedback: feedback, Password: password}
}

type adminRequest struct {
	Password string   `json:"password"`
	UserID   string   `json:"user_id"`
	UserIDs  []string `json:"user_ids"`
	Reason   string   `json:"reason"`
}

// authorize decodes the request body and checks the admin password
func (ac *AdminController) authorize(w http.ResponseWriter, r *http.Request) (*adminRequest, bool) {
	var req adminRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]interface{}{"success": false, "error": "Invalid JSON body"})
		return nil, false
	}
	if ac.Password == "" || req.Password != ac.Password {
		writeJSON(w, http.StatusUnauthorized, map[string]interface{}{"error": "Unauthorized"})
		return nil, false
	}
	return &req, true
}

// GetData returns dataset stats and the full participant listing
func (ac *AdminController) GetData(w http.ResponseWriter, r *http.Request) {
	if _, ok := ac.authorize(w, r); !ok {
		return
	}
	learners, stats, err := ac.Admin.Snapshot(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success":  true,
		"stats":    stats,
		"learners": learners,
	})
}

// RandomPair force-pairs the target with random program peers
func (ac *AdminController) RandomPair(w http.ResponseWriter, r *http.Request) {
	req, ok := ac.authorize(w, r)
	if !ok {
		return
	}
	result, err := ac.Admin.ForceRandomPair(r.Context(), req.UserID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if !result.Matched {
		writeJSON(w, http.StatusOK, map[string]interface{}{"success": false, "message": "Not enough learners"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"success": true, "message": "Matched!", "group_id": result.GroupID})
}

// ManualPair groups an explicitly named set of participants
func (ac *AdminController) ManualPair(w http.ResponseWriter, r *http.Request) {
	req, ok := ac.authorize(w, r)
	if !ok {
		return
	}
	result, err := ac.Admin.ManualPair(r.Context(), req.UserIDs)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"success": true, "message": "Paired!", "group_id": result.GroupID})
}

// Unpair returns a participant to the unmatched state
func (ac *AdminController) Unpair(w http.ResponseWriter, r *http.Request) {
	req, ok := ac.authorize(w, r)
	if !ok {
		return
	}
	reason := req.Reason
	if reason == "" {
		reason = "Admin Unpaired"
	}
	if err := ac.Admin.Match.Unpair(r.Context(), req.UserID, reason); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"success": true})
}

// Download streams the participant dataset as CSV
func (ac *AdminController) Download(w http.ResponseWriter, r *http.Request) {
	if _, ok := ac.authorize(w, r); !ok {
		return
	}
	data, err := ac.Admin.ExportCSV(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	w.Header().Set("Content-Type", "text/csv")
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}

// DownloadFeedback streams the feedback log as CSV
func (ac *AdminController) DownloadFeedback(w http.ResponseWriter, r *http.Request) {
	if _, ok := ac.authorize(w, r); !ok {
		return
	}
	data, err := ac.Feedback.ExportCSV(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	w.Header().Set("Content-Type", "text/csv")
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}
