package resend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"site-contact/pkg/models"
)

const defaultBaseURL = "https://api.resend.com"

// Client defines the interface for interacting with the Resend API
type Client interface {
	SendEmail(ctx context.Context, email models.NotificationEmail) (string, error)
}

// APIError is returned when Resend answers with a non-2xx status
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("error from Resend API: status %d: %s", e.StatusCode, e.Body)
}

type clientImpl struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	logger     *zap.Logger
}

// Option configures a Resend client
type Option func(*clientImpl)

// WithBaseURL points the client at a different API host
func WithBaseURL(baseURL string) Option {
	return func(c *clientImpl) {
		c.baseURL = strings.TrimRight(baseURL, "/")
	}
}

// WithHTTPClient replaces the underlying HTTP client
func WithHTTPClient(hc *http.Client) Option {
	return func(c *clientImpl) {
		c.httpClient = hc
	}
}

// WithLogger sets the logger used for request logging
func WithLogger(l *zap.Logger) Option {
	return func(c *clientImpl) {
		c.logger = l
	}
}

// NewClient creates a new Resend client
func NewClient(apiKey string, opts ...Option) Client {
	c := &clientImpl{
		apiKey:     apiKey,
		baseURL:    defaultBaseURL,
		httpClient: &http.Client{Timeout: 30 * time.Second},
		logger:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SendEmail submits one message and returns the id Resend assigned to it
func (c *clientImpl) SendEmail(ctx context.Context, email models.NotificationEmail) (string, error) {
	jsonPayload, err := json.Marshal(email)
	if err != nil {
		return "", fmt.Errorf("error creating payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/emails", bytes.NewReader(jsonPayload))
	if err != nil {
		return "", fmt.Errorf("error creating request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("error sending email: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("error reading response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", &APIError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	var response struct {
		ID string `json:"id"`
	}

	if err := json.Unmarshal(body, &response); err != nil {
		return "", fmt.Errorf("error parsing response: %w", err)
	}

	c.logger.Debug("Sent email via Resend", zap.String("email_id", response.ID))
	return response.ID, nil
}
