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
	"github.com/nashaat90ahmed-commits/True-love-app-5/models"
)

// HTTPDispatcher delivers push payloads to the external push service over
// its REST API. Delivery itself (FCM fan-out, token management) lives on the
// other side of this call.
type HTTPDispatcher struct {
	Endpoint string
	APIKey   string
	Client   *http.Client
}

// NewHTTPDispatcher builds a dispatcher from config with a bounded client.
func NewHTTPDispatcher(cfg config.PushConfig) *HTTPDispatcher {
	return &HTTPDispatcher{
		Endpoint: cfg.Endpoint,
		APIKey:   cfg.APIKey,
		Client:   &http.Client{Timeout: 10 * time.Second},
	}
}

type pushRequest struct {
	Token  string      `json:"token,omitempty"`
	Tokens []string    `json:"tokens,omitempty"`
	Push   models.Push `json:"message"`
}

// Send delivers one push to one device token.
func (d *HTTPDispatcher) Send(ctx context.Context, token string, push models.Push) error {
	return d.post(ctx, "/send", pushRequest{Token: token, Push: push})
}

// SendMulticast delivers one push to a batch of device tokens.
func (d *HTTPDispatcher) SendMulticast(ctx context.Context, tokens []string, push models.Push) error {
	return d.post(ctx, "/sendMulticast", pushRequest{Tokens: tokens, Push: push})
}

func (d *HTTPDispatcher) post(ctx context.Context, path string, payload pushRequest) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal push payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, d.Endpoint+path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build push request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+d.APIKey)

	resp, err := d.Client.Do(req)
	if err != nil {
		return fmt.Errorf("push request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("push service returned %d: %s", resp.StatusCode, detail)
	}
	return nil
}
