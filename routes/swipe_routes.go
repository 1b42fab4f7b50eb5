package routes

import (
	"github.com/gorilla/mux"

	"github.com/nashaat90ahmed-commits/True-love-app-5/controllers"
	"github.com/nashaat90ahmed-commits/True-love-app-5/events"
	"github.com/nashaat90ahmed-commits/True-love-app-5/services"
)

// RegisterSwipeRoutes sets up routes for swipe creation under /api/swipes
func RegisterSwipeRoutes(r *mux.Router, store *services.DynamoService, dispatcher *events.Dispatcher) {
	controller := controllers.NewSwipeController(store, dispatcher)

	swipeRouter := r.PathPrefix("/api/swipes").Subrouter()
	swipeRouter.HandleFunc("", controller.HandleCreateSwipe).Methods("POST")
}
