package controllers

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/nashaat90ahmed-commits/True-love-app-5/services"
)

// KPIController handles the admin-only KPI export entry point
type KPIController struct {
	KPIs *services.KPIService
}

// NewKPIController creates a new KPIController instance
func NewKPIController(kpis *services.KPIService) *KPIController {
	return &KPIController{KPIs: kpis}
}

// HandleExportKPIs aggregates and returns the daily KPI snapshot. The admin
// gate is applied by the route's middleware.
func (kc *KPIController) HandleExportKPIs(w http.ResponseWriter, r *http.Request) {
	snapshot, err := kc.KPIs.Export(r.Context(), time.Now().UTC())
	if err != nil {
		log.Println("Error exporting KPIs:", err)
		http.Error(w, "Failed to export KPIs", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(snapshot)
}
