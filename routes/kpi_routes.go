package routes

import (
	"github.com/gorilla/mux"

	"github.com/nashaat90ahmed-commits/True-love-app-5/controllers"
	"github.com/nashaat90ahmed-commits/True-love-app-5/middleware"
	"github.com/nashaat90ahmed-commits/True-love-app-5/services"
)

// RegisterKPIRoutes sets up the admin-only KPI export under /api/kpis
func RegisterKPIRoutes(r *mux.Router, kpis *services.KPIService, jwtSecret string) {
	controller := controllers.NewKPIController(kpis)

	kpiRouter := r.PathPrefix("/api/kpis").Subrouter()
	kpiRouter.HandleFunc("/export", middleware.RequireAdmin(jwtSecret, controller.HandleExportKPIs)).Methods("POST")
}
