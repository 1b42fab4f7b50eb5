package routes

import (
	"github.com/gorilla/mux"

	"github.com/nashaat90ahmed-commits/True-love-app-5/controllers"
	"github.com/nashaat90ahmed-commits/True-love-app-5/events"
	"github.com/nashaat90ahmed-commits/True-love-app-5/services"
)

// RegisterUserRoutes sets up routes for user status changes under /api/users
func RegisterUserRoutes(r *mux.Router, store *services.DynamoService, dispatcher *events.Dispatcher) {
	controller := controllers.NewUserController(store, dispatcher)

	userRouter := r.PathPrefix("/api/users").Subrouter()
	userRouter.HandleFunc("/{userId}/status", controller.HandleUpdateStatus).Methods("PATCH")
}
