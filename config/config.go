package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config aggregates runtime configuration for the service.
type Config struct {
	App        AppConfig
	AWS        AWSConfig
	Auth       AuthConfig
	Decay      DecayConfig
	Moderation ModerationConfig
	Cleanup    CleanupConfig
	Broadcast  BroadcastConfig
	Push       PushConfig
	Classifier ClassifierConfig
}

// AppConfig controls server level behavior.
type AppConfig struct {
	Port string
}

// AWSConfig holds AWS client values.
type AWSConfig struct {
	Region   string
	S3Bucket string
}

// AuthConfig defines authentication parameters for callable endpoints.
type AuthConfig struct {
	JWTSecret string
}

// DecayConfig drives the reputation decay pass.
type DecayConfig struct {
	Interval            time.Duration // cadence of the scheduled pass
	InactivityThreshold time.Duration // users idle longer than this decay
	Factor              float64       // multiplicative decay per pass
	Floor               float64       // scores never drop below this
	BatchLimit          int           // max users updated per pass
}

// ModerationConfig holds the thresholds a classification result is judged by.
type ModerationConfig struct {
	SentimentThreshold float64 // sentiment scores below this are violations
}

// CleanupConfig drives the daily retention job.
type CleanupConfig struct {
	Cron       string
	Retention  time.Duration
	BatchLimit int // max documents deleted per collection per run
}

// BroadcastConfig drives the weekly super-hour announcement.
type BroadcastConfig struct {
	Cron      string
	Timezone  string
	ChunkSize int // tokens per multicast request
}

// PushConfig points at the push delivery service.
type PushConfig struct {
	Endpoint string
	APIKey   string
}

// ClassifierConfig points at the content classification service.
type ClassifierConfig struct {
	Endpoint string
	APIKey   string
}

// Load reads .env when present and builds the Config from environment
// variables, applying defaults for everything optional.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		App: AppConfig{
			Port: getEnv("PORT", "8080"),
		},
		AWS: AWSConfig{
			Region:   getEnv("AWS_REGION", "us-east-1"),
			S3Bucket: os.Getenv("S3_BUCKET_NAME"),
		},
		Auth: AuthConfig{
			JWTSecret: os.Getenv("JWT_SECRET"),
		},
		Decay: DecayConfig{
			Interval:            getEnvDuration("DECAY_INTERVAL", 72*time.Hour),
			InactivityThreshold: getEnvDuration("DECAY_INACTIVITY_THRESHOLD", 72*time.Hour),
			Factor:              getEnvFloat("DECAY_FACTOR", 0.95),
			Floor:               getEnvFloat("DECAY_FLOOR", 800),
			BatchLimit:          getEnvInt("DECAY_BATCH_LIMIT", 1000),
		},
		Moderation: ModerationConfig{
			SentimentThreshold: getEnvFloat("MODERATION_SENTIMENT_THRESHOLD", -0.6),
		},
		Cleanup: CleanupConfig{
			Cron:       getEnv("CLEANUP_CRON", "0 3 * * *"),
			Retention:  getEnvDuration("CLEANUP_RETENTION", 30*24*time.Hour),
			BatchLimit: getEnvInt("CLEANUP_BATCH_LIMIT", 1000),
		},
		Broadcast: BroadcastConfig{
			Cron:      getEnv("SUPER_HOUR_CRON", "30 19 * * 4"),
			Timezone:  getEnv("SUPER_HOUR_TIMEZONE", "Africa/Cairo"),
			ChunkSize: getEnvInt("BROADCAST_CHUNK_SIZE", 500),
		},
		Push: PushConfig{
			Endpoint: os.Getenv("PUSH_ENDPOINT"),
			APIKey:   os.Getenv("PUSH_API_KEY"),
		},
		Classifier: ClassifierConfig{
			Endpoint: os.Getenv("CLASSIFIER_ENDPOINT"),
			APIKey:   os.Getenv("CLASSIFIER_API_KEY"),
		},
	}

	if cfg.Decay.Factor <= 0 || cfg.Decay.Factor >= 1 {
		return nil, fmt.Errorf("DECAY_FACTOR must be in (0, 1), got %v", cfg.Decay.Factor)
	}
	if cfg.Decay.BatchLimit <= 0 {
		return nil, fmt.Errorf("DECAY_BATCH_LIMIT must be positive, got %d", cfg.Decay.BatchLimit)
	}
	if cfg.Cleanup.BatchLimit <= 0 {
		return nil, fmt.Errorf("CLEANUP_BATCH_LIMIT must be positive, got %d", cfg.Cleanup.BatchLimit)
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
