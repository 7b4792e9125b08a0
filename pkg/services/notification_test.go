package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"site-contact/pkg/models"
)

func TestBuildNotificationEmail(t *testing.T) {
	req := models.SubmissionRequest{
		Name:    "Ann <Admin>",
		Email:   "a@b.com",
		Subject: "Hi & bye",
		Message: `<script>&"'`,
	}

	email := BuildNotificationEmail("Contact Form <onboarding@resend.dev>", "owner@example.com", req)

	assert.Equal(t, "Contact Form <onboarding@resend.dev>", email.From)
	assert.Equal(t, []string{"owner@example.com"}, email.To)
	assert.Equal(t, "a@b.com", email.ReplyTo)
	assert.Equal(t, "New Form Submission: Hi & bye", email.Subject)
	assert.Contains(t, email.HTML, "&lt;script&gt;&amp;&quot;&#39;")
	assert.Contains(t, email.HTML, "Ann &lt;Admin&gt;")
	assert.Contains(t, email.HTML, "Hi &amp; bye")
	assert.NotContains(t, email.HTML, "<script>")
}
