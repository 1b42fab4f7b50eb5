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

// ReportController handles HTTP requests for abuse reports
type ReportController struct {
	Store      *services.DynamoService
	Dispatcher *events.Dispatcher
}

// NewReportController creates a new ReportController instance
func NewReportController(store *services.DynamoService, dispatcher *events.Dispatcher) *ReportController {
	return &ReportController{Store: store, Dispatcher: dispatcher}
}

// HandleCreateReport records a report and triggers the abuse tracker
func (rc *ReportController) HandleCreateReport(w http.ResponseWriter, r *http.Request) {
	var request struct {
		ReportedUserID string `json:"reportedUserId"`
		ReporterID     string `json:"reporterId"`
		Reason         string `json:"reason"`
	}

	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}

	report := models.Report{
		ID:             uuid.NewString(),
		ReportedUserID: request.ReportedUserID,
		ReporterID:     request.ReporterID,
		Reason:         request.Reason,
		CreatedAt:      time.Now().UTC(),
	}

	if err := services.ValidateReport(report); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := rc.Store.PutItem(r.Context(), models.ReportsTable, report); err != nil {
		log.Println("Error storing report:", err)
		http.Error(w, "Failed to record report", http.StatusInternalServerError)
		return
	}

	item, err := attributevalue.MarshalMap(report)
	if err != nil {
		log.Println("Error marshalling report event:", err)
		http.Error(w, "Failed to record report", http.StatusInternalServerError)
		return
	}
	rc.Dispatcher.EmitCreate(r.Context(), models.ReportsTable, item)

	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(map[string]string{"reportId": report.ID})
}
