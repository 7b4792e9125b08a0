package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEscapeHTML(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "Hello there", "Hello there"},
		{"script", `<script>&"'`, "&lt;script&gt;&amp;&quot;&#39;"},
		{"already escaped", "&amp;", "&amp;amp;"},
		{"unicode", "héllo — ✓", "héllo — ✓"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, EscapeHTML(tt.in))
		})
	}
}

func TestHashString(t *testing.T) {
	h := HashString("a@b.com")

	assert.Len(t, h, 64)
	assert.Equal(t, h, HashString("a@b.com"))
	assert.NotEqual(t, h, HashString("A@b.com"))
}
