package services

import (
	"fmt"

	"site-contact/pkg/models"
	"site-contact/pkg/utils"
)

const notificationSubjectPrefix = "New Form Submission: "

// BuildNotificationEmail renders the message sent to the site owner for one
// submission. Field values are HTML-escaped in the body only.
func BuildNotificationEmail(from, to string, req models.SubmissionRequest) models.NotificationEmail {
	html := fmt.Sprintf(`<h1>New Contact Form Submission</h1>
<p><strong>Name:</strong> %s</p>
<p><strong>Email:</strong> %s</p>
<p><strong>Subject:</strong> %s</p>
<p><strong>Message:</strong></p>
<p>%s</p>`,
		utils.EscapeHTML(req.Name),
		utils.EscapeHTML(req.Email),
		utils.EscapeHTML(req.Subject),
		utils.EscapeHTML(req.Message),
	)

	return models.NotificationEmail{
		From:    from,
		To:      []string{to},
		ReplyTo: req.Email,
		Subject: notificationSubjectPrefix + req.Subject,
		HTML:    html,
	}
}
