package routes

import (
	"peerfinder_server/controllers"
	"peerfinder_server/services"

	"github.com/gorilla/mux"
)

// RegisterFeedbackRoutes sets up the feedback route under /api
func RegisterFeedbackRoutes(r *mux.Router, feedbackService *services.FeedbackService) {
	controller := controllers.NewFeedbackController(feedbackService)

	r.HandleFunc("/api/feedback", controller.Submit).Methods("POST")
}
