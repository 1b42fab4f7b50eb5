package routes

import (
	"github.com/gorilla/mux"

	"github.com/nashaat90ahmed-commits/True-love-app-5/controllers"
	"github.com/nashaat90ahmed-commits/True-love-app-5/services"
)

// RegisterS3Routes sets up presigned URL routes under /api/s3
func RegisterS3Routes(r *mux.Router, s3 *services.S3Service) {
	controller := controllers.NewS3Controller(s3)

	s3Router := r.PathPrefix("/api/s3").Subrouter()
	s3Router.HandleFunc("/upload-url", controller.GeneratePresignedURL).Methods("POST")
	s3Router.HandleFunc("/read-url", controller.GetPresignedReadURL).Methods("POST")
}
