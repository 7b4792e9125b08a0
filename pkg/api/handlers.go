package api

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"site-contact/pkg/config"
	"site-contact/pkg/logger"
	"site-contact/pkg/metrics"
	"site-contact/pkg/services"
)

// Messages returned to the browser. None of them carry internal detail.
const (
	MsgSuccess          = "Message sent successfully!"
	MsgMisconfigured    = "Server misconfiguration. Please try again later."
	MsgInvalidJSON      = "Invalid JSON payload."
	MsgMissingFields    = "All fields are required."
	MsgInvalidEmail     = "Please provide a valid email address."
	MsgServerError      = "Something went wrong. Please try again later."
	MsgMethodNotAllowed = "Method Not Allowed"
	MsgNotFound         = "Not Found"
)

// Handlers contains all HTTP handlers for the API
type Handlers struct {
	submissionService services.ContactSubmissionService
	config            *config.Config
	logger            *zap.Logger
}

// NewHandlers creates a new Handlers instance
func NewHandlers(submissionService services.ContactSubmissionService, cfg *config.Config, l *zap.Logger) *Handlers {
	return &Handlers{
		submissionService: submissionService,
		config:            cfg,
		logger:            l,
	}
}

// HealthCheck handler for monitoring
func (h *Handlers) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
	})
}

// HandleContact validates a contact form submission, stores it and emails
// the site owner
func (h *Handlers) HandleContact(c *gin.Context) {
	log := logger.FromContext(c.Request.Context(), h.logger)

	if missing := h.config.MissingKeys(); len(missing) > 0 {
		log.Error("Contact endpoint is missing configuration", zap.Strings("missing_keys", missing))
		metrics.IncrementSubmission(metrics.ResultMisconfigured)
		respond(c, http.StatusInternalServerError, MsgMisconfigured)
		return
	}

	limit := h.config.MaxBodyBytes
	if limit <= 0 {
		limit = config.DefaultMaxBodyBytes
	}
	body, err := io.ReadAll(http.MaxBytesReader(c.Writer, c.Request.Body, limit))
	if err != nil {
		log.Warn("Error reading request body", zap.Error(err))
		metrics.IncrementSubmission(metrics.ResultInvalid)
		respond(c, http.StatusBadRequest, MsgInvalidJSON)
		return
	}

	req, err := services.ParseSubmission(body)
	if err != nil {
		metrics.IncrementSubmission(metrics.ResultInvalid)
		switch {
		case errors.Is(err, services.ErrInvalidJSON):
			respond(c, http.StatusBadRequest, MsgInvalidJSON)
		case errors.Is(err, services.ErrMissingFields):
			respond(c, http.StatusBadRequest, MsgMissingFields)
		case errors.Is(err, services.ErrInvalidEmail):
			respond(c, http.StatusBadRequest, MsgInvalidEmail)
		default:
			log.Error("Unexpected error parsing submission", zap.Error(err))
			respond(c, http.StatusInternalServerError, MsgServerError)
		}
		return
	}

	if err := h.submissionService.ProcessSubmission(c.Request.Context(), req); err != nil {
		fields := []zap.Field{zap.Error(err)}
		var upErr *services.UpstreamError
		if errors.As(err, &upErr) {
			fields = append(fields, zap.String("upstream", upErr.Upstream))
		}
		log.Error("Error processing contact submission", fields...)
		metrics.IncrementSubmission(metrics.ResultFailed)
		respond(c, http.StatusInternalServerError, MsgServerError)
		return
	}

	metrics.IncrementSubmission(metrics.ResultSent)
	respond(c, http.StatusOK, MsgSuccess)
}

// MethodNotAllowed answers requests to a known path with the wrong method
func (h *Handlers) MethodNotAllowed(c *gin.Context) {
	respond(c, http.StatusMethodNotAllowed, MsgMethodNotAllowed)
}

// NotFound answers requests to unknown paths
func (h *Handlers) NotFound(c *gin.Context) {
	respond(c, http.StatusNotFound, MsgNotFound)
}

func respond(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"message": message})
}
