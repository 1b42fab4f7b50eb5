package routes

import (
	"github.com/gorilla/mux"

	"github.com/nashaat90ahmed-commits/True-love-app-5/controllers"
	"github.com/nashaat90ahmed-commits/True-love-app-5/events"
	"github.com/nashaat90ahmed-commits/True-love-app-5/services"
)

// RegisterPostRoutes sets up routes for community posts under /api/posts
func RegisterPostRoutes(r *mux.Router, store *services.DynamoService, dispatcher *events.Dispatcher) {
	controller := controllers.NewPostController(store, dispatcher)

	postRouter := r.PathPrefix("/api/posts").Subrouter()
	postRouter.HandleFunc("", controller.HandleCreatePost).Methods("POST")
}
