package controllers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/nashaat90ahmed-commits/True-love-app-5/models"
	"github.com/nashaat90ahmed-commits/True-love-app-5/services"
)

// AdController handles the trackAdMetrics entry point
type AdController struct {
	Ads *services.AdService
}

// NewAdController creates a new AdController instance
func NewAdController(ads *services.AdService) *AdController {
	return &AdController{Ads: ads}
}

// HandleTrackAdMetrics logs one ad interaction
func (ac *AdController) HandleTrackAdMetrics(w http.ResponseWriter, r *http.Request) {
	var request struct {
		UserID  string  `json:"userId"`
		AdType  string  `json:"adType"`
		Action  string  `json:"action"`
		Revenue float64 `json:"revenue"`
	}

	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}

	err := ac.Ads.Track(r.Context(), request.UserID, request.AdType, request.Action, request.Revenue)
	if err != nil {
		if models.IsValidation(err) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		log.Println("Error tracking ad metrics:", err)
		http.Error(w, "Failed to track ad metrics", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]bool{"success": true})
}
