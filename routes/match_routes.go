package routes

import (
	"peerfinder_server/controllers"
	"peerfinder_server/services"

	"github.com/gorilla/mux"
)

// RegisterMatchRoutes sets up routes for matching, status and leave-group
func RegisterMatchRoutes(r *mux.Router, matchService *services.MatchService) {
	controller := controllers.NewMatchController(matchService)

	r.HandleFunc("/api/match", controller.RequestMatch).Methods("POST")
	r.HandleFunc("/api/status/{id}", controller.GetStatus).Methods("GET")
	r.HandleFunc("/api/leave-group", controller.LeaveGroup).Methods("POST")
}
