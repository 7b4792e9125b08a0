package utils

import "strings"

var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#39;",
)

// EscapeHTML replaces the five HTML-special characters with entities.
// Everything else passes through unchanged.
func EscapeHTML(s string) string {
	return htmlEscaper.Replace(s)
}
