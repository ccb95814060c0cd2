// README: Config loader with env defaults for the remote ride API, gateway HTTP, Redis, Postgres and auth.
package config

import (
	"errors"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"
)

// DefaultAPIBaseURL is the ride service the mobile app shipped against.
const DefaultAPIBaseURL = "https://xd5zl5kk2yltomvw5fb37y3bm40vsyrx.lambda-url.sa-east-1.on.aws"

var ErrInvalidBaseURL = errors.New("invalid ride api base url")

type APIConfig struct {
	BaseURL string
	Timeout time.Duration
}

type SessionConfig struct {
	TTL             time.Duration
	ConfirmDebounce time.Duration
}

type Config struct {
	API  APIConfig
	HTTP struct {
		Addr string
	}
	DB struct {
		DSN string
	}
	Redis struct {
		Addr string
	}
	Session  SessionConfig
	Firebase struct {
		ProjectID       string
		CredentialsFile string
	}
	Log struct {
		Level string
	}
}

func Load() (Config, error) {
	var cfg Config
	cfg.API.BaseURL = strings.TrimRight(envOrDefault("RIDEAPP_API_BASE_URL", DefaultAPIBaseURL), "/")
	cfg.API.Timeout = envOrDefaultDuration("RIDEAPP_API_TIMEOUT", 30*time.Second)
	cfg.HTTP.Addr = envOrDefault("RIDEAPP_HTTP_ADDR", ":8080")
	cfg.DB.DSN = os.Getenv("RIDEAPP_DB_DSN")
	cfg.Redis.Addr = os.Getenv("RIDEAPP_REDIS_ADDR")
	cfg.Session.TTL = envOrDefaultDuration("RIDEAPP_SESSION_TTL", 30*time.Minute)
	cfg.Session.ConfirmDebounce = envOrDefaultDuration("RIDEAPP_CONFIRM_DEBOUNCE", time.Second)
	cfg.Firebase.ProjectID = os.Getenv("RIDEAPP_FIREBASE_PROJECT_ID")
	cfg.Firebase.CredentialsFile = os.Getenv("RIDEAPP_FIREBASE_CREDENTIALS")
	cfg.Log.Level = strings.ToUpper(envOrDefault("RIDEAPP_LOG_LEVEL", "INFO"))

	if err := ValidateBaseURL(cfg.API.BaseURL); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// ValidateBaseURL requires an absolute http(s) URL.
func ValidateBaseURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return ErrInvalidBaseURL
	}
	return nil
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envOrDefaultInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func envOrDefaultDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
		// bare numbers are seconds
		if n := envOrDefaultInt(key, -1); n >= 0 {
			return time.Duration(n) * time.Second
		}
	}
	return def
}
