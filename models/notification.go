package models

// Push is a single push notification to one registered device.
type Push struct {
	Title string            `json:"title"`
	Body  string            `json:"body"`
	Type  string            `json:"type"`
	Data  map[string]string `json:"data,omitempty"`

	Android AndroidConfig `json:"android"`
	APNS    APNSConfig    `json:"apns"`
}

// AndroidConfig mirrors the FCM android section of the push payload.
type AndroidConfig struct {
	Priority  string `json:"priority"`
	ChannelID string `json:"channelId"`
	Icon      string `json:"icon"`
	Color     string `json:"color"`
}

// APNSConfig mirrors the FCM apns section of the push payload.
type APNSConfig struct {
	Sound string `json:"sound"`
}

// Notification types
const (
	NotificationTypeGeneral    = "general"
	NotificationTypeMatch      = "match"
	NotificationTypeModeration = "moderation"
	NotificationTypeWarning    = "warning"
	NotificationTypeSuspension = "suspension"
	NotificationTypeSuperHour  = "super_hour"
)
