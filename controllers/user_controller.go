package controllers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/gorilla/mux"

	"github.com/nashaat90ahmed-commits/True-love-app-5/events"
	"github.com/nashaat90ahmed-commits/True-love-app-5/models"
	"github.com/nashaat90ahmed-commits/True-love-app-5/services"
)

// UserController handles HTTP requests for user status changes
type UserController struct {
	Store      *services.DynamoService
	Dispatcher *events.Dispatcher
}

// NewUserController creates a new UserController instance
func NewUserController(store *services.DynamoService, dispatcher *events.Dispatcher) *UserController {
	return &UserController{Store: store, Dispatcher: dispatcher}
}

// HandleUpdateStatus flips a user's isActive flag and triggers the status
// transition handler with before/after images
func (uc *UserController) HandleUpdateStatus(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userId"]
	if userID == "" {
		http.Error(w, "userId is required", http.StatusBadRequest)
		return
	}

	var request struct {
		IsActive bool `json:"isActive"`
	}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}

	before, err := uc.Store.GetItem(r.Context(), models.UsersTable, services.StringKey("id", userID))
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			http.Error(w, "User not found", http.StatusNotFound)
			return
		}
		log.Println("Error loading user:", err)
		http.Error(w, "Failed to update user status", http.StatusInternalServerError)
		return
	}

	after, err := uc.Store.UpdateItem(r.Context(), models.UsersTable,
		"SET isActive = :active",
		services.StringKey("id", userID),
		map[string]types.AttributeValue{":active": &types.AttributeValueMemberBOOL{Value: request.IsActive}},
		nil,
	)
	if err != nil {
		log.Println("Error updating user status:", err)
		http.Error(w, "Failed to update user status", http.StatusInternalServerError)
		return
	}

	uc.Dispatcher.EmitUpdate(r.Context(), models.UsersTable, before, after)

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]interface{}{"userId": userID, "isActive": request.IsActive})
}
