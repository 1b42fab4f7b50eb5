package routes

import (
	"github.com/gorilla/mux"

	"github.com/nashaat90ahmed-commits/True-love-app-5/controllers"
	"github.com/nashaat90ahmed-commits/True-love-app-5/events"
	"github.com/nashaat90ahmed-commits/True-love-app-5/services"
)

// RegisterReportRoutes sets up routes for abuse reports under /api/reports
func RegisterReportRoutes(r *mux.Router, store *services.DynamoService, dispatcher *events.Dispatcher) {
	controller := controllers.NewReportController(store, dispatcher)

	reportRouter := r.PathPrefix("/api/reports").Subrouter()
	reportRouter.HandleFunc("", controller.HandleCreateReport).Methods("POST")
}
