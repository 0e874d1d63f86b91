package routes

import (
	"peerfinder_server/controllers"
	"peerfinder_server/services"

	"github.com/gorilla/mux"
)

// RegisterRegistrationRoutes sets up the registration route under /api
func RegisterRegistrationRoutes(r *mux.Router, registrationService *services.RegistrationService) {
	controller := controllers.NewRegistrationController(registrationService)

	r.HandleFunc("/api/register", controller.Register).Methods("POST")
}
