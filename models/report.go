package models

import "time"

// Report is an append-only abuse report against a user.
type Report struct {
	ID             string    `dynamodbav:"id" json:"id"` // ✅ Partition Key
	ReportedUserID string    `dynamodbav:"reportedUserId" json:"reportedUserId"`
	ReporterID     string    `dynamodbav:"reporterId" json:"reporterId"`
	Reason         string    `dynamodbav:"reason,omitempty" json:"reason,omitempty"`
	CreatedAt      time.Time `dynamodbav:"createdAt" json:"createdAt"`
}

// ReportsTable is the DynamoDB table name for report documents
const ReportsTable = "Reports"

// ReportedUserIndex is the GSI keyed on reportedUserId, used for the
// cumulative report count.
const ReportedUserIndex = "reported-user-index"

// Report thresholds. Counts are cumulative over all time; the highest
// threshold met decides the single action taken per new report.
const (
	ReportWarningThreshold    = 3
	ReportSuspensionThreshold = 5
)

// SuspensionDuration is how long a threshold suspension lasts, measured from
// the report that triggered it.
const SuspensionDuration = 24 * time.Hour
