package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"

	"site-contact/pkg/models"
)

var (
	ErrInvalidJSON   = errors.New("invalid JSON payload")
	ErrMissingFields = errors.New("missing required fields")
	ErrInvalidEmail  = errors.New("invalid email address")
)

// local part, "@", domain, ".", tld; none may contain whitespace or "@"
var emailPattern = regexp.MustCompile(`^[^\s\p{Z}@]+@[^\s\p{Z}@]+\.[^\s\p{Z}@]+$`)

var validate = validator.New()

// ParseSubmission turns a raw request body into a sanitized, validated
// SubmissionRequest. It fails with ErrInvalidJSON, ErrMissingFields or
// ErrInvalidEmail, checked in that order.
func ParseSubmission(body []byte) (models.SubmissionRequest, error) {
	var raw map[string]interface{}
	if err := json.Unmarshal(body, &raw); err != nil {
		return models.SubmissionRequest{}, fmt.Errorf("%w: %v", ErrInvalidJSON, err)
	}
	// "null" decodes without error
	if raw == nil {
		return models.SubmissionRequest{}, fmt.Errorf("%w: body is not an object", ErrInvalidJSON)
	}

	req := models.SubmissionRequest{
		Name:    sanitize(raw["name"]),
		Email:   sanitize(raw["email"]),
		Subject: sanitize(raw["subject"]),
		Message: sanitize(raw["message"]),
	}

	if err := validate.Struct(req); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			fields := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				fields = append(fields, fe.Field())
			}
			return req, fmt.Errorf("%w: %s", ErrMissingFields, strings.Join(fields, ", "))
		}
		return req, err
	}

	if !IsValidEmail(req.Email) {
		return req, ErrInvalidEmail
	}

	return req, nil
}

// IsValidEmail reports whether s looks like an email address
func IsValidEmail(s string) bool {
	if strings.IndexFunc(s, isSpace) >= 0 {
		return false
	}
	return emailPattern.MatchString(s)
}

// isSpace covers Unicode white space plus the byte order mark
func isSpace(r rune) bool {
	return unicode.IsSpace(r) || r == '\uFEFF'
}

// sanitize coerces a decoded JSON value to a trimmed string. Anything that
// is not a string becomes "".
func sanitize(v interface{}) string {
	s, ok := v.(string)
	if !ok {
		return ""
	}
	return strings.TrimFunc(s, isSpace)
}
