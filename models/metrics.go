package models

import "time"

// AdMetric is a single logged ad interaction.
type AdMetric struct {
	ID        string    `dynamodbav:"id" json:"id"` // ✅ Partition Key
	UserID    string    `dynamodbav:"userId" json:"userId"`
	AdType    string    `dynamodbav:"adType" json:"adType"`
	Action    string    `dynamodbav:"action" json:"action"` // impression, click, reward
	Revenue   float64   `dynamodbav:"revenue" json:"revenue"`
	CreatedAt time.Time `dynamodbav:"createdAt" json:"createdAt"`
}

// AdMetricsTable is the DynamoDB table name for ad interaction logs
const AdMetricsTable = "AdMetrics"

// KPISnapshot is the persisted daily aggregate, keyed by date (YYYY-MM-DD).
type KPISnapshot struct {
	Date        string        `dynamodbav:"date" json:"date"` // ✅ Partition Key
	Users       UserKPIs      `dynamodbav:"users" json:"users"`
	Engagement  EngageKPIs    `dynamodbav:"engagement" json:"engagement"`
	Community   CommunityKPIs `dynamodbav:"community" json:"community"`
	Period      string        `dynamodbav:"period" json:"period"`
	GeneratedAt time.Time     `dynamodbav:"generatedAt" json:"generatedAt"`
}

type UserKPIs struct {
	Total  int `dynamodbav:"total" json:"total"`
	Active int `dynamodbav:"active" json:"active"`
	New    int `dynamodbav:"new" json:"new"`
}

type EngageKPIs struct {
	Swipes   int `dynamodbav:"swipes" json:"swipes"`
	Matches  int `dynamodbav:"matches" json:"matches"`
	Messages int `dynamodbav:"messages" json:"messages"`
}

type CommunityKPIs struct {
	Posts   int `dynamodbav:"posts" json:"posts"`
	Reports int `dynamodbav:"reports" json:"reports"`
}

// KPISnapshotsTable is the DynamoDB table name for daily KPI snapshots
const KPISnapshotsTable = "KPISnapshots"
