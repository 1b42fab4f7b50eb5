package main

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/cors"

	"github.com/nashaat90ahmed-commits/True-love-app-5/config"
	"github.com/nashaat90ahmed-commits/True-love-app-5/events"
	"github.com/nashaat90ahmed-commits/True-love-app-5/models"
	"github.com/nashaat90ahmed-commits/True-love-app-5/routes"
	"github.com/nashaat90ahmed-commits/True-love-app-5/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize DynamoDB client and service
	log.Println("Initializing DynamoDB client...")
	dynamoClient := services.InitializeDynamoDBClient(cfg.AWS.Region)
	dynamoService := &services.DynamoService{Client: dynamoClient}
	log.Println("DynamoDB client initialized.")

	// Initialize Services
	notificationService := &services.NotificationService{
		Store:      dynamoService,
		Dispatcher: services.NewHTTPDispatcher(cfg.Push),
	}
	matchService := &services.MatchService{
		Store:         dynamoService,
		Notifications: notificationService,
	}
	reportService := &services.ReportService{
		Store:         dynamoService,
		Notifications: notificationService,
	}
	moderationService := &services.ModerationService{
		Store:         dynamoService,
		Classifier:    services.NewHTTPClassifier(cfg.Classifier),
		Notifications: notificationService,
		Config:        cfg.Moderation,
	}
	statusService := &services.StatusService{Store: dynamoService}
	decayService := &services.DecayService{Store: dynamoService, Config: cfg.Decay}
	cleanupService := &services.CleanupService{Store: dynamoService, Config: cfg.Cleanup}
	broadcastService := &services.BroadcastService{
		Store:      dynamoService,
		Dispatcher: notificationService.Dispatcher,
		Config:     cfg.Broadcast,
	}
	kpiService := &services.KPIService{Store: dynamoService}
	adService := &services.AdService{Store: dynamoService}
	s3Service := services.NewS3Service(cfg.AWS.Region, cfg.AWS.S3Bucket)

	// Register document triggers
	dispatcher := events.NewDispatcher()
	dispatcher.OnCreate(models.SwipesTable, matchService.OnSwipeCreated)
	dispatcher.OnCreate(models.ReportsTable, reportService.OnReportCreated)
	dispatcher.OnCreate(models.CommunityPostsTable, moderationService.OnPostCreated)
	dispatcher.OnUpdate(models.UsersTable, statusService.OnUserUpdated)

	// Start the recurring jobs
	scheduler, err := services.StartSchedulers(cfg, decayService, cleanupService, broadcastService)
	if err != nil {
		log.Fatalf("Failed to start schedulers: %v", err)
	}
	defer func() { _ = scheduler.Shutdown() }()
	log.Println("Schedulers started.")

	// Initialize the router
	r := mux.NewRouter()

	// Register a welcome route
	r.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintln(w, "Welcome to True Love")
	}).Methods("GET")

	// Register a health check endpoint
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		response := map[string]string{"status": "healthy"}
		json.NewEncoder(w).Encode(response)
	}).Methods("GET")

	// Register routes
	routes.RegisterSwipeRoutes(r, dynamoService, dispatcher)
	routes.RegisterReportRoutes(r, dynamoService, dispatcher)
	routes.RegisterPostRoutes(r, dynamoService, dispatcher)
	routes.RegisterUserRoutes(r, dynamoService, dispatcher)
	routes.RegisterNotificationRoutes(r, notificationService)
	routes.RegisterKPIRoutes(r, kpiService, cfg.Auth.JWTSecret)
	routes.RegisterAdRoutes(r, adService)
	routes.RegisterS3Routes(r, s3Service)

	// Add CORS middleware
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"}, // Adjust for specific domains if needed
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	}).Handler(r)

	// Start the HTTP server
	log.Printf("Starting server on port %s...\n", cfg.App.Port)
	log.Fatal(http.ListenAndServe(":"+cfg.App.Port, corsHandler))
}
