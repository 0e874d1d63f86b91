package routes

import (
	"peerfinder_server/controllers"
	"peerfinder_server/services"

	"github.com/gorilla/mux"
)

// RegisterAdminRoutes sets up the password-gated admin routes under /api/admin
func RegisterAdminRoutes(r *mux.Router, adminService *services.AdminService, feedbackService *services.FeedbackService, password string) {
	controller := controllers.NewAdminController(adminService, feedbackService, password)

	adminRouter := r.PathPrefix("/api/admin").Subrouter()
	adminRouter.HandleFunc("/data", controller.GetData).Methods("POST")
	adminRouter.HandleFunc("/random-pair", controller.RandomPair).Methods("POST")
	adminRouter.HandleFunc("/manual-pair", controller.ManualPair).Methods("POST")
	adminRouter.HandleFunc("/unpair", controller.Unpair).Methods("POST")
	adminRouter.HandleFunc("/download", controller.Download).Methods("POST")
	adminRouter.HandleFunc("/download-feedback", controller.DownloadFeedback).Methods("POST")
}
