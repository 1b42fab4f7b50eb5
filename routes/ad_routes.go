package routes

import (
	"github.com/gorilla/mux"

	"github.com/nashaat90ahmed-commits/True-love-app-5/controllers"
	"github.com/nashaat90ahmed-commits/True-love-app-5/services"
)

// RegisterAdRoutes sets up the ad metrics entry point under /api/ads
func RegisterAdRoutes(r *mux.Router, ads *services.AdService) {
	controller := controllers.NewAdController(ads)

	adRouter := r.PathPrefix("/api/ads").Subrouter()
	adRouter.HandleFunc("/track", controller.HandleTrackAdMetrics).Methods("POST")
}
