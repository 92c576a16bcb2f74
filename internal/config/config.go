package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/fcoelho/salesnav-outreach/internal/infra/integration/hubspot"
)

type Config struct {
	Port string

	OpenAIAPIKey   string
	HubSpotToken   string
	HubSpotBaseURL string

	PasswordHash string
	SessionTTL   time.Duration

	AllowedOrigins []string
}

// Load reads configuration from the environment. The three secrets are
// mandatory: without them the process must not start.
func Load() (*Config, error) {
	cfg := &Config{
		Port:           getEnv("PORT", "8080"),
		OpenAIAPIKey:   os.Getenv("OPENAI_API_KEY"),
		HubSpotToken:   os.Getenv("HUBSPOT_API_KEY"),
		HubSpotBaseURL: getEnv("HUBSPOT_BASE_URL", hubspot.DefaultBaseURL),
		PasswordHash:   os.Getenv("APP_PASSWORD_HASH"),
		SessionTTL:     sessionTTL(),
		AllowedOrigins: allowedOrigins(),
	}

	var missing []string
	if cfg.OpenAIAPIKey == "" {
		missing = append(missing, "OPENAI_API_KEY")
	}
	if cfg.HubSpotToken == "" {
		missing = append(missing, "HUBSPOT_API_KEY")
	}
	if cfg.PasswordHash == "" {
		missing = append(missing, "APP_PASSWORD_HASH")
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("missing required configuration: %s", strings.Join(missing, ", "))
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func sessionTTL() time.Duration {
	hours, err := strconv.Atoi(getEnv("SESSION_TTL_HOURS", "12"))
	if err != nil || hours <= 0 {
		hours = 12
	}
	return time.Duration(hours) * time.Hour
}

func allowedOrigins() []string {
	raw := getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173")
	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	return origins
}
