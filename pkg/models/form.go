package models

import "time"

// SubmissionDocumentType is the document type tag of stored submissions
const SubmissionDocumentType = "submission"

// Represents the data structure coming from the website contact form
type SubmissionRequest struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required"`
	Subject string `json:"subject" validate:"required"`
	Message string `json:"message" validate:"required"`
}

// SubmissionRecord is the document created in the document store for each
// accepted submission. Field values are stored exactly as sanitized, never escaped.
type SubmissionRecord struct {
	Type        string `json:"_type"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	Subject     string `json:"subject"`
	Message     string `json:"message"`
	SubmittedAt string `json:"submittedAt"`
}

// NewSubmissionRecord stamps a request with its submission time
func NewSubmissionRecord(req SubmissionRequest, now time.Time) SubmissionRecord {
	return SubmissionRecord{
		Type:        SubmissionDocumentType,
		Name:        req.Name,
		Email:       req.Email,
		Subject:     req.Subject,
		Message:     req.Message,
		SubmittedAt: now.UTC().Format(time.RFC3339Nano),
	}
}

// NotificationEmail is the message handed to the email delivery API
type NotificationEmail struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	ReplyTo string   `json:"reply_to"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html"`
}

// ContactResponse is the body of every response from the contact endpoint
type ContactResponse struct {
	Message string `json:"message"`
}
