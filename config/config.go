package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds everything the process needs, resolved once at startup.
// Values come from the environment (a .env file is honored when present)
// with working defaults for everything except the API credentials, which
// the remote clients report as fetch errors when missing.
type Config struct {
	ListenAddr     string
	DatabasePath   string
	LogFile        string // empty disables file logging
	TMDBBaseURL    string // empty uses the public TMDB v3 base
	TMDBAPIKey     string
	Language       string
	VideoSearchURL string
	VideoSearchKey string
	RequestTimeout time.Duration
}

const defaultVideoSearchURL = "https://www.googleapis.com/youtube/v3/search"

// Load reads configuration from the environment.
func Load() (*Config, error) {
	// Missing .env is fine; the environment may already be populated
	_ = godotenv.Load()

	timeoutSeconds, err := getEnvInt("REQUEST_TIMEOUT_SECONDS", 10)
	if err != nil {
		return nil, err
	}

	return &Config{
		ListenAddr:     getEnv("LISTEN_ADDR", ":8080"),
		DatabasePath:   getEnv("DATABASE_PATH", "data/reelvault.db"),
		LogFile:        os.Getenv("LOG_FILE"),
		TMDBBaseURL:    os.Getenv("TMDB_BASE_URL"),
		TMDBAPIKey:     os.Getenv("TMDB_API_KEY"),
		Language:       getEnv("TMDB_LANGUAGE", "en-US"),
		VideoSearchURL: getEnv("VIDEO_SEARCH_URL", defaultVideoSearchURL),
		VideoSearchKey: os.Getenv("VIDEO_SEARCH_KEY"),
		RequestTimeout: time.Duration(timeoutSeconds) * time.Second,
	}, nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return fallback, nil
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return parsed, nil
}
