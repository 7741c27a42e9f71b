package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/imabhi25/apex-freight-brokerage/internal/utils"
)

type Env struct {
	AppAddr string
	GinMode string

	CORSAllowedOrigins []string

	ResendAPIKey    string
	ResendFromEmail string
	ResendToEmail   string

	ZipLookupBaseURL string
	ZipLookupTimeout time.Duration
}

func LoadEnv() Env {
	appAddr := utils.FirstNonEmpty(utils.TrimOrEmpty(os.Getenv("APP_ADDR")), ":8080")
	fromEmail := utils.FirstNonEmpty(utils.TrimOrEmpty(os.Getenv("RESEND_FROM_EMAIL")), "noreply@apexfreightbrokerage.com")
	toEmail := utils.FirstNonEmpty(utils.TrimOrEmpty(os.Getenv("RESEND_TO_EMAIL")), "info@apexfreightbrokerage.com")

	timeout := 5 * time.Second
	if raw := strings.TrimSpace(os.Getenv("ZIP_LOOKUP_TIMEOUT_MS")); raw != "" {
		if ms, err := strconv.Atoi(raw); err == nil && ms > 0 {
			timeout = time.Duration(ms) * time.Millisecond
		}
	}

	return Env{
		AppAddr:            appAddr,
		GinMode:            strings.TrimSpace(os.Getenv("GIN_MODE")),
		CORSAllowedOrigins: splitOrigins(os.Getenv("CORS_ALLOWED_ORIGINS")),
		ResendAPIKey:       strings.TrimSpace(os.Getenv("RESEND_API_KEY")),
		ResendFromEmail:    fromEmail,
		ResendToEmail:      toEmail,
		ZipLookupBaseURL:   strings.TrimSpace(os.Getenv("ZIP_LOOKUP_BASE_URL")),
		ZipLookupTimeout:   timeout,
	}
}

func splitOrigins(raw string) []string {
	defaults := []string{
		"http://localhost:3000",
		"http://127.0.0.1:3000",
		"http://localhost:5173",
		"http://127.0.0.1:5173",
	}
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return defaults
	}
	var out []string
	for _, o := range strings.Split(raw, ",") {
		o = strings.TrimSpace(o)
		if o != "" {
			out = append(out, o)
		}
	}
	if len(out) == 0 {
		return defaults
	}
	return out
}
