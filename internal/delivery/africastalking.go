package delivery

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	// DefaultBaseURL is the production messaging endpoint. The sandbox
	// URL can be set through config for testing against the simulator.
	DefaultBaseURL = "https://api.africastalking.com"

	defaultTimeout = 15 * time.Second
)

// Config holds Africa's Talking credentials.
type Config struct {
	BaseURL  string
	Username string
	APIKey   string
	SenderID string
	Timeout  time.Duration
}

// AfricasTalkingClient implements Sender over the Africa's Talking
// bulk messaging REST API.
type AfricasTalkingClient struct {
	httpClient *http.Client
	baseURL    string
	username   string
	apiKey     string
	senderID   string
}

// NewAfricasTalking builds a gateway client from config.
func NewAfricasTalking(cfg Config) (*AfricasTalkingClient, error) {
	if strings.TrimSpace(cfg.Username) == "" || strings.TrimSpace(cfg.APIKey) == "" {
		return nil, fmt.Errorf("delivery: username and api key are required")
	}
	base := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if base == "" {
		base = DefaultBaseURL
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return &AfricasTalkingClient{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    base,
		username:   strings.TrimSpace(cfg.Username),
		apiKey:     strings.TrimSpace(cfg.APIKey),
		senderID:   strings.TrimSpace(cfg.SenderID),
	}, nil
}

// atResponse mirrors the slice of the gateway response we act on.
type atResponse struct {
	SMSMessageData struct {
		Recipients []struct {
			Number     string `json:"number"`
			Status     string `json:"status"`
			StatusCode int    `json:"statusCode"`
		} `json:"Recipients"`
	} `json:"SMSMessageData"`
}

// Send posts one message to the gateway and returns an error when the
// gateway rejects it. Callers treat any error as log-and-continue.
func (c *AfricasTalkingClient) Send(ctx context.Context, phone, text string) error {
	form := url.Values{}
	form.Set("username", c.username)
	form.Set("to", phone)
	form.Set("message", text)
	if c.senderID != "" {
		form.Set("from", c.senderID)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/version1/messaging", strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("apiKey", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("post message: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return fmt.Errorf("gateway returned status %d", resp.StatusCode)
	}

	var body atResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return fmt.Errorf("decode gateway response: %w", err)
	}
	for _, r := range body.SMSMessageData.Recipients {
		// 100-102 cover Processed/Sent/Queued.
		if r.StatusCode < 100 || r.StatusCode > 102 {
			return fmt.Errorf("gateway rejected %s: %s (%d)", r.Number, r.Status, r.StatusCode)
		}
	}
	return nil
}
