package routes

import (
	"github.com/gorilla/mux"

	"github.com/nashaat90ahmed-commits/True-love-app-5/controllers"
	"github.com/nashaat90ahmed-commits/True-love-app-5/services"
)

// RegisterNotificationRoutes sets up the callable notification entry point
func RegisterNotificationRoutes(r *mux.Router, notifications *services.NotificationService) {
	controller := controllers.NewNotificationController(notifications)

	notificationRouter := r.PathPrefix("/api/notifications").Subrouter()
	notificationRouter.HandleFunc("", controller.HandleSendNotification).Methods("POST")
}
