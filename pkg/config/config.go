package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	DefaultSanityAPIVersion = "2023-05-03"
	DefaultPort             = "8080"
	DefaultUpstreamTimeout  = 10 * time.Second
	DefaultMaxBodyBytes     = 64 << 10
)

// Config holds all application configuration values
type Config struct {
	SanityProjectID       string
	SanityDataset         string
	SanityAPIVersion      string
	SanityAPIToken        string
	ResendAPIKey          string
	ResendFromEmail       string
	ContactEmailRecipient string

	Port            string
	GinMode         string
	LogLevel        string
	AllowedOrigins  []string
	UpstreamTimeout time.Duration
	MaxBodyBytes    int64
}

// LoadConfig reads configuration from environment variables
func LoadConfig() *Config {
	return &Config{
		SanityProjectID:       os.Getenv("SANITY_PROJECT_ID"),
		SanityDataset:         os.Getenv("SANITY_DATASET"),
		SanityAPIVersion:      getEnv("SANITY_API_VERSION", DefaultSanityAPIVersion),
		SanityAPIToken:        os.Getenv("SANITY_API_TOKEN"),
		ResendAPIKey:          os.Getenv("RESEND_API_KEY"),
		ResendFromEmail:       os.Getenv("RESEND_FROM_EMAIL"),
		ContactEmailRecipient: os.Getenv("CONTACT_EMAIL_RECIPIENT"),

		Port:            getEnv("PORT", DefaultPort),
		GinMode:         ginMode(os.Getenv("GIN_MODE")),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		AllowedOrigins:  splitList(getEnv("CORS_ALLOWED_ORIGINS", "*")),
		UpstreamTimeout: getDuration("UPSTREAM_TIMEOUT", DefaultUpstreamTimeout),
		MaxBodyBytes:    getInt64("MAX_BODY_BYTES", DefaultMaxBodyBytes),
	}
}

// MissingKeys returns the environment names of the required settings that are
// empty. The contact endpoint refuses to run while this is non-empty.
func (c *Config) MissingKeys() []string {
	required := []struct {
		key   string
		value string
	}{
		{"SANITY_PROJECT_ID", c.SanityProjectID},
		{"SANITY_DATASET", c.SanityDataset},
		{"SANITY_API_VERSION", c.SanityAPIVersion},
		{"SANITY_API_TOKEN", c.SanityAPIToken},
		{"RESEND_API_KEY", c.ResendAPIKey},
		{"RESEND_FROM_EMAIL", c.ResendFromEmail},
		{"CONTACT_EMAIL_RECIPIENT", c.ContactEmailRecipient},
	}

	var missing []string
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			missing = append(missing, r.key)
		}
	}
	return missing
}

// Complete reports whether every required setting is present
func (c *Config) Complete() bool {
	return len(c.MissingKeys()) == 0
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// ginMode falls back to release for anything gin.SetMode would reject
func ginMode(mode string) string {
	switch mode {
	case "debug", "release", "test":
		return mode
	default:
		return "release"
	}
}

func getDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil && d > 0 {
			return d
		}
	}
	return defaultValue
}

func getInt64(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.ParseInt(value, 10, 64); err == nil && n > 0 {
			return n
		}
	}
	return defaultValue
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
