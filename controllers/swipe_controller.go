package controllers

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/google/uuid"

	"github.com/nashaat90ahmed-commits/True-love-app-5/events"
	"github.com/nashaat90ahmed-commits/True-love-app-5/models"
	"github.com/nashaat90ahmed-commits/True-love-app-5/services"
)

// SwipeController handles HTTP requests for swipe creation
type SwipeController struct {
	Store      *services.DynamoService
	Dispatcher *events.Dispatcher
}

// NewSwipeController creates a new SwipeController instance
func NewSwipeController(store *services.DynamoService, dispatcher *events.Dispatcher) *SwipeController {
	return &SwipeController{Store: store, Dispatcher: dispatcher}
}

// HandleCreateSwipe records a swipe and triggers the match engine
func (sc *SwipeController) HandleCreateSwipe(w http.ResponseWriter, r *http.Request) {
	var request struct {
		UserID       string `json:"userId"`
		TargetUserID string `json:"targetUserId"`
		Type         string `json:"type"`
	}

	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}

	swipe := models.Swipe{
		ID:           uuid.NewString(),
		UserID:       request.UserID,
		TargetUserID: request.TargetUserID,
		Type:         request.Type,
		CreatedAt:    time.Now().UTC(),
	}

	if err := services.ValidateSwipe(swipe); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := sc.Store.PutItem(r.Context(), models.SwipesTable, swipe); err != nil {
		log.Println("Error storing swipe:", err)
		http.Error(w, "Failed to record swipe", http.StatusInternalServerError)
		return
	}

	item, err := attributevalue.MarshalMap(swipe)
	if err != nil {
		log.Println("Error marshalling swipe event:", err)
		http.Error(w, "Failed to record swipe", http.StatusInternalServerError)
		return
	}
	sc.Dispatcher.EmitCreate(r.Context(), models.SwipesTable, item)

	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(map[string]string{"swipeId": swipe.ID})
}
