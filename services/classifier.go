package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/nashaat90ahmed-commits/True-love-app-5/config"
)

// HTTPClassifier calls the external content-classification service for
// sentiment and image-safety verdicts. The models are entirely remote; only
// the threshold checks on their outputs are local.
type HTTPClassifier struct {
	Endpoint string
	APIKey   string
	Client   *http.Client
}

// NewHTTPClassifier builds a classifier client from config.
func NewHTTPClassifier(cfg config.ClassifierConfig) *HTTPClassifier {
	return &HTTPClassifier{
		Endpoint: cfg.Endpoint,
		APIKey:   cfg.APIKey,
		Client:   &http.Client{Timeout: 15 * time.Second},
	}
}

// AnalyzeSentiment returns the document sentiment score in [-1, 1].
func (c *HTTPClassifier) AnalyzeSentiment(ctx context.Context, text string) (float64, error) {
	var result struct {
		Score float64 `json:"score"`
	}
	err := c.post(ctx, "/analyzeSentiment", map[string]string{"content": text}, &result)
	if err != nil {
		return 0, err
	}
	return result.Score, nil
}

// SafeSearch returns per-category likelihood labels for an image.
func (c *HTTPClassifier) SafeSearch(ctx context.Context, imageURL string) (SafeSearchResult, error) {
	var result SafeSearchResult
	err := c.post(ctx, "/safeSearch", map[string]string{"imageUrl": imageURL}, &result)
	return result, err
}

func (c *HTTPClassifier) post(ctx context.Context, path string, payload interface{}, out interface{}) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal classifier payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.Endpoint+path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build classifier request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.APIKey)

	resp, err := c.Client.Do(req)
	if err != nil {
		return fmt.Errorf("classifier request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("classifier returned %d: %s", resp.StatusCode, detail)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode classifier response: %w", err)
	}
	return nil
}
