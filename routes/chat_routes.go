package routes

import (
	"peerfinder_server/controllers"
	"peerfinder_server/services"

	"github.com/gorilla/mux"
)

// RegisterChatRoutes sets up routes for group message boards under /api/chat
func RegisterChatRoutes(r *mux.Router, chatService *services.ChatService) {
	controller := controllers.NewChatController(chatService)

	chatRouter := r.PathPrefix("/api/chat").Subrouter()
	chatRouter.HandleFunc("/send", controller.SendMessage).Methods("POST")
	chatRouter.HandleFunc("/messages", controller.GetMessages).Methods("GET")
}
