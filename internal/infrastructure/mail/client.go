package mail

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/medicare-companion/adherence-api/internal/config"
)

// Message is the transport payload: a single HTML email.
type Message struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html"`
}

// Sender delivers transactional email and returns the provider's message id.
type Sender interface {
	Send(ctx context.Context, msg Message) (string, error)
}

type client struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

// NewClient builds a Sender for a Resend-compatible REST API
// (POST {base}/emails with a bearer key). The HTTP client carries its own
// timeout so a hung provider surfaces as a per-send failure.
func NewClient(cfg *config.Config) Sender {
	return &client{
		baseURL: strings.TrimRight(cfg.MailAPIURL, "/"),
		apiKey:  cfg.MailAPIKey,
		http:    &http.Client{Timeout: 15 * time.Second},
	}
}

func (c *client) Send(ctx context.Context, msg Message) (string, error) {
	body, err := json.Marshal(msg)
	if err != nil {
		return "", fmt.Errorf("marshal mail payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/emails", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("mail API request: %w", err)
	}
	defer resp.Body.Close()

	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("mail API returned %d: %s", resp.StatusCode, strings.TrimSpace(string(raw)))
	}

	var out struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return "", fmt.Errorf("decode mail API response: %w", err)
	}
	return out.ID, nil
}
