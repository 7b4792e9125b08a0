// Package form is a client for the contact endpoint that mirrors the state
// of the website's contact form: four text fields, a submitting flag and a
// submitted flag.
//
// By default a finished submit always lands in the submitted state, matching
// the site's form. WithFailureState makes an unsuccessful submit land in a
// separate failed state instead so callers can show an error.
package form

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"site-contact/pkg/models"
)

// State is the form's display state
type State int

const (
	StateIdle State = iota
	StateSubmitting
	StateSubmitted
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateSubmitting:
		return "submitting"
	case StateSubmitted:
		return "submitted"
	case StateFailed:
		return "failed"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

var (
	ErrUnknownField     = errors.New("unknown form field")
	ErrSubmitInProgress = errors.New("submission already in progress")
	ErrAlreadySubmitted = errors.New("form already submitted")
)

// ResponseError is returned by Submit when the endpoint answers with a
// non-2xx status
type ResponseError struct {
	StatusCode int
	Message    string
}

func (e *ResponseError) Error() string {
	return fmt.Sprintf("contact endpoint returned %d: %s", e.StatusCode, e.Message)
}

// Form holds the field values and submit state of one contact form
type Form struct {
	endpoint     string
	httpClient   *http.Client
	failureState bool

	mu         sync.Mutex
	fields     models.SubmissionRequest
	submitting bool
	submitted  bool
	failed     bool
	message    string
	err        error
}

// Option configures a Form
type Option func(*Form)

// WithHTTPClient replaces the HTTP client used to submit
func WithHTTPClient(hc *http.Client) Option {
	return func(f *Form) {
		f.httpClient = hc
	}
}

// WithFailureState makes unsuccessful submits end in StateFailed
func WithFailureState() Option {
	return func(f *Form) {
		f.failureState = true
	}
}

// New creates an empty form that posts to endpoint
func New(endpoint string, opts ...Option) *Form {
	f := &Form{
		endpoint:   endpoint,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Set updates one field by its input name, leaving the others untouched
func (f *Form) Set(name, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	switch name {
	case "name":
		f.fields.Name = value
	case "email":
		f.fields.Email = value
	case "subject":
		f.fields.Subject = value
	case "message":
		f.fields.Message = value
	default:
		return fmt.Errorf("%w: %q", ErrUnknownField, name)
	}
	return nil
}

// Fields returns a copy of the current field values
func (f *Form) Fields() models.SubmissionRequest {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.fields
}

// Submitting reports whether a submit is in flight. The submit control is
// disabled while this is true.
func (f *Form) Submitting() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.submitting
}

// Submitted reports whether the confirmation should be shown instead of the form
func (f *Form) Submitted() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.submitted
}

// State returns the current display state
func (f *Form) State() State {
	f.mu.Lock()
	defer f.mu.Unlock()

	switch {
	case f.submitting:
		return StateSubmitting
	case f.submitted:
		return StateSubmitted
	case f.failed:
		return StateFailed
	default:
		return StateIdle
	}
}

// Message returns the message from the last response, if any
func (f *Form) Message() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.message
}

// Err returns the error from the last submit, if any
func (f *Form) Err() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.err
}

// Submit posts the current fields. It returns the endpoint's outcome; the
// form's state is updated whatever the outcome is.
func (f *Form) Submit(ctx context.Context) error {
	f.mu.Lock()
	if f.submitting {
		f.mu.Unlock()
		return ErrSubmitInProgress
	}
	if f.submitted {
		f.mu.Unlock()
		return ErrAlreadySubmitted
	}
	f.submitting = true
	f.failed = false
	fields := f.fields
	f.mu.Unlock()

	message, err := f.post(ctx, fields)

	f.mu.Lock()
	defer f.mu.Unlock()
	f.submitting = false
	f.message = message
	f.err = err
	if err != nil && f.failureState {
		f.failed = true
	} else {
		f.submitted = true
	}
	return err
}

// Reset clears the fields and returns the form to StateIdle. It fails with
// ErrSubmitInProgress while a submit is in flight.
func (f *Form) Reset() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.submitting {
		return ErrSubmitInProgress
	}

	f.fields = models.SubmissionRequest{}
	f.submitted = false
	f.failed = false
	f.message = ""
	f.err = nil
	return nil
}

func (f *Form) post(ctx context.Context, fields models.SubmissionRequest) (string, error) {
	jsonPayload, err := json.Marshal(fields)
	if err != nil {
		return "", fmt.Errorf("error creating payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, f.endpoint, bytes.NewReader(jsonPayload))
	if err != nil {
		return "", fmt.Errorf("error creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("error submitting form: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("error reading response: %w", err)
	}

	var response models.ContactResponse
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// a proxy error page is not JSON; the status code is enough then
		_ = json.Unmarshal(body, &response)
		return response.Message, &ResponseError{StatusCode: resp.StatusCode, Message: response.Message}
	}

	if err := json.Unmarshal(body, &response); err != nil {
		return "", fmt.Errorf("error parsing response: %w", err)
	}
	return response.Message, nil
}
