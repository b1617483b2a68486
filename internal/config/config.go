package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds runtime configuration parsed from environment variables.
type Config struct {
	HTTPAddr          string
	ShutdownTimeout   time.Duration
	TaxRate           float64
	ConfirmResetDelay time.Duration
	StrictCashCheck   bool
	MetricsEnabled    bool
	CORSOrigins       []string
}

// FromEnv builds Config with defaults, overridden by environment variables.
func FromEnv() Config {
	return Config{
		HTTPAddr:          envOrDefault("HTTP_ADDR", ":8080"),
		ShutdownTimeout:   envSeconds("SHUTDOWN_TIMEOUT_SECONDS", 10*time.Second),
		TaxRate:           envFloat("TAX_RATE", 0.11),
		ConfirmResetDelay: envSeconds("CONFIRM_RESET_SECONDS", 2*time.Second),
		StrictCashCheck:   envBool("STRICT_CASH_CHECK", false),
		MetricsEnabled:    envBool("METRICS_ENABLED", false),
		CORSOrigins:       envList("CORS_ORIGINS", []string{"http://localhost:3000"}),
	}
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envSeconds(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		seconds, err := strconv.Atoi(v)
		if err == nil {
			return time.Duration(seconds) * time.Second
		}
	}
	return def
}

func envFloat(key string, def float64) float64 {
	if v := os.Getenv(key); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err == nil && f >= 0 {
			return f
		}
	}
	return def
}

func envBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return def
}

func envList(key string, def []string) []string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	var out []string
	for _, item := range strings.Split(v, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	if len(out) == 0 {
		return def
	}
	return out
}
