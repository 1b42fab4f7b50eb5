package controllers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/nashaat90ahmed-commits/True-love-app-5/models"
	"github.com/nashaat90ahmed-commits/True-love-app-5/services"
)

// NotificationController handles the callable sendNotification entry point
type NotificationController struct {
	Notifications *services.NotificationService
}

// NewNotificationController creates a new NotificationController instance
func NewNotificationController(notifications *services.NotificationService) *NotificationController {
	return &NotificationController{Notifications: notifications}
}

// HandleSendNotification dispatches one push to one user
func (nc *NotificationController) HandleSendNotification(w http.ResponseWriter, r *http.Request) {
	var request struct {
		UserID string            `json:"userId"`
		Title  string            `json:"title"`
		Body   string            `json:"body"`
		Type   string            `json:"type"`
		Data   map[string]string `json:"data"`
	}

	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}

	if request.UserID == "" || request.Title == "" {
		http.Error(w, "UserId and title are required", http.StatusBadRequest)
		return
	}

	err := nc.Notifications.Send(r.Context(), request.UserID, request.Title, request.Body, request.Type, request.Data)
	if err != nil {
		if errors.Is(err, models.ErrTokenNotFound) || errors.Is(err, models.ErrNotFound) {
			http.Error(w, "User token not found", http.StatusNotFound)
			return
		}
		log.Println("Error sending notification:", err)
		http.Error(w, "Failed to send notification", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]bool{"success": true})
}
