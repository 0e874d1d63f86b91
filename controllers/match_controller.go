package controllers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"peerfinder_server/services"
)

// MatchController handles HTTP requests for matching and match status
type MatchController struct {
	MatchService *services.MatchService
}

// NewMatchController creates a new MatchController instance
func NewMatchController(matchService *services.MatchService) *MatchController {
	return &MatchController{MatchService: matchService}
}

// RequestMatch runs one matching attempt for the posted participant
func (mc *MatchController) RequestMatch(w http.ResponseWriter, r *http.Request) {
	var req struct {
		UserID string `json:"user_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.UserID == "" {
		writeJSON(w, http.StatusBadRequest, map[string]interface{}{"success": false, "error": "user_id is required"})
		return
	}

	result, err := mc.MatchService.RequestMatch(r.Context(), req.UserID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	response := map[string]interface{}{"matched": result.Matched}
	if result.GroupID != "" {
		response["group_id"] = result.GroupID
	}
	writeJSON(w, http.StatusOK, response)
}

// GetStatus returns a participant's match state and, when matched, the
// contact roster of their group
func (mc *MatchController) GetStatus(w http.ResponseWriter, r *http.Request) {
	participantID := mux.Vars(r)["id"]

	status, err := mc.MatchService.GetStatus(r.Context(), participantID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	response := map[string]interface{}{
		"matched": status.Matched,
		"user": map[string]string{
			"name":    status.Participant.Name,
			"program": status.Participant.Program,
			"cohort":  status.Participant.Cohort,
		},
	}
	if len(status.Group) > 0 {
		group := make([]map[string]string, 0, len(status.Group))
		for _, m := range status.Group {
			group = append(group, map[string]string{
				"name":            m.Name,
				"email":           m.Email,
				"phone":           m.Phone,
				"connection_type": m.ConnectionType,
			})
		}
		response["group"] = group
	}
	writeJSON(w, http.StatusOK, response)
}

// LeaveGroup handles a voluntary unpair request
func (mc *MatchController) LeaveGroup(w http.ResponseWriter, r *http.Request) {
	var req struct {
		UserID string `json:"user_id"`
		Reason string `json:"reason"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.UserID == "" {
		writeJSON(w, http.StatusBadRequest, map[string]interface{}{"success": false, "error": "user_id is required"})
		return
	}
	if req.Reason == "" {
		req.Reason = "User Requested"
	}

	if err := mc.MatchService.Unpair(r.Context(), req.UserID, req.Reason); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"success": true})
}
