package sanity

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"
)

// Client defines the interface for writing documents to a Sanity dataset
type Client interface {
	CreateDocument(ctx context.Context, doc interface{}) (string, error)
}

// APIError is returned when the mutate endpoint answers with a non-2xx status
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("error from Sanity API: status %d: %s", e.StatusCode, e.Body)
}

type clientImpl struct {
	projectID  string
	dataset    string
	apiVersion string
	token      string
	baseURL    string
	httpClient *http.Client
	logger     *zap.Logger
}

// Option configures a Sanity client
type Option func(*clientImpl)

// WithBaseURL points the client at a different API host. The default is
// https://{projectID}.api.sanity.io
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

// NewClient creates a new Sanity client using a write token
func NewClient(projectID, dataset, apiVersion, token string, opts ...Option) Client {
	c := &clientImpl{
		projectID:  projectID,
		dataset:    dataset,
		apiVersion: strings.TrimPrefix(apiVersion, "v"),
		token:      token,
		baseURL:    fmt.Sprintf("https://%s.api.sanity.io", projectID),
		httpClient: &http.Client{Timeout: 30 * time.Second},
		logger:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// CreateDocument creates one document and returns the id Sanity assigned to it
func (c *clientImpl) CreateDocument(ctx context.Context, doc interface{}) (string, error) {
	endpoint := fmt.Sprintf("%s/v%s/data/mutate/%s?returnIds=true",
		c.baseURL, c.apiVersion, url.PathEscape(c.dataset))

	payload := map[string]interface{}{
		"mutations": []map[string]interface{}{
			{"create": doc},
		},
	}

	jsonPayload, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("error creating payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(jsonPayload))
	if err != nil {
		return "", fmt.Errorf("error creating request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("error creating Sanity document: %w", err)
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
		TransactionID string `json:"transactionId"`
		Results       []struct {
			ID        string `json:"id"`
			Operation string `json:"operation"`
		} `json:"results"`
	}

	if err := json.Unmarshal(body, &response); err != nil {
		return "", fmt.Errorf("error parsing response: %w", err)
	}

	var id string
	if len(response.Results) > 0 {
		id = response.Results[0].ID
	}

	c.logger.Debug("Created Sanity document",
		zap.String("dataset", c.dataset),
		zap.String("document_id", id),
		zap.String("transaction_id", response.TransactionID),
	)
	return id, nil
}
