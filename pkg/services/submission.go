package services

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"site-contact/pkg/clients/resend"
	"site-contact/pkg/clients/sanity"
	"site-contact/pkg/config"
	"site-contact/pkg/logger"
	"site-contact/pkg/metrics"
	"site-contact/pkg/models"
	"site-contact/pkg/utils"
)

const (
	UpstreamSanity = "sanity"
	UpstreamResend = "resend"
)

// UpstreamError is returned when the document store or the email API fails
type UpstreamError struct {
	Upstream string
	Err      error
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("%s call failed: %v", e.Upstream, e.Err)
}

func (e *UpstreamError) Unwrap() error { return e.Err }

// ContactSubmissionService defines the interface for handling contact form submissions
type ContactSubmissionService interface {
	ProcessSubmission(ctx context.Context, req models.SubmissionRequest) error
}

type contactSubmissionServiceImpl struct {
	sanityClient sanity.Client
	resendClient resend.Client
	config       *config.Config
	logger       *zap.Logger
	now          func() time.Time
}

// NewContactSubmissionService creates a new submission service
func NewContactSubmissionService(
	sanityClient sanity.Client,
	resendClient resend.Client,
	config *config.Config,
	logger *zap.Logger,
) ContactSubmissionService {
	return &contactSubmissionServiceImpl{
		sanityClient: sanityClient,
		resendClient: resendClient,
		config:       config,
		logger:       logger,
		now:          time.Now,
	}
}

// ProcessSubmission stores the submission and then notifies the site owner.
// The record is written first so it exists even when the email fails.
func (s *contactSubmissionServiceImpl) ProcessSubmission(ctx context.Context, req models.SubmissionRequest) error {
	log := logger.FromContext(ctx, s.logger).With(zap.String("submitter", utils.HashString(req.Email)))

	record := models.NewSubmissionRecord(req, s.now())

	var documentID string
	err := s.call(ctx, UpstreamSanity, func(ctx context.Context) error {
		var err error
		documentID, err = s.sanityClient.CreateDocument(ctx, record)
		return err
	})
	if err != nil {
		return err
	}
	log.Info("Stored contact submission", zap.String("document_id", documentID))

	email := BuildNotificationEmail(s.config.ResendFromEmail, s.config.ContactEmailRecipient, req)

	var emailID string
	err = s.call(ctx, UpstreamResend, func(ctx context.Context) error {
		var err error
		emailID, err = s.resendClient.SendEmail(ctx, email)
		return err
	})
	if err != nil {
		return err
	}
	log.Info("Sent contact notification", zap.String("email_id", emailID))

	return nil
}

// call runs one upstream request under the configured timeout and records its latency
func (s *contactSubmissionServiceImpl) call(ctx context.Context, upstream string, fn func(context.Context) error) error {
	if s.config.UpstreamTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.config.UpstreamTimeout)
		defer cancel()
	}

	start := time.Now()
	err := fn(ctx)
	metrics.RecordUpstreamCall(upstream, err, time.Since(start))

	if err != nil {
		return &UpstreamError{Upstream: upstream, Err: err}
	}
	return nil
}
