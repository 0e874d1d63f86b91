package controllers

import (
	"encoding/json"
	"net/http"

	"peerfinder_server/services"
)

// ChatController handles HTTP requests for group message boards
type ChatController struct {
	ChatService *services.ChatService
}

// NewChatController creates a new ChatController instance
func NewChatController(chatService *services.ChatService) *ChatController {
	return &ChatController{ChatService: chatService}
}

// SendMessage posts a message to the sender's group board
func (cc *ChatController) SendMessage(w http.ResponseWriter, r *http.Request) {
	var req struct {
		UserID  string `json:"user_id"`
		Content string `json:"content"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.UserID == "" || req.Content == "" {
		writeJSON(w, http.StatusBadRequest, map[string]interface{}{"success": false, "error": "user_id and content are required"})
		return
	}

	msg, err := cc.ChatService.SendMessage(r.Context(), req.UserID, req.Content)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"success": true, "message": msg})
}

// GetMessages returns the participant's group board
func (cc *ChatController) GetMessages(w http.ResponseWriter, r *http.Request) {
	participantID := r.URL.Query().Get("userId")
	if participantID == "" {
		writeJSON(w, http.StatusBadRequest, map[string]interface{}{"success": false, "error": "userId is required"})
		return
	}

	messages, err := cc.ChatService.GetMessages(r.Context(), participantID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"messages": messages})
}
