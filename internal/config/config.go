package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/Koushikkd07/Soil-Buddy/internal/logger"
)

type AppConfig struct {
	// Gardens to poll and seed.
	Gardens []string

	// PollInterval controls how often sensors are polled for each garden.
	PollInterval time.Duration
	// SeedDays of synthetic history are generated for gardens without data (0 = none).
	SeedDays int

	// Optional HTTP sensor gateway; the simulated sensor is used when empty.
	SensorGatewayURL   string
	SensorGatewayToken string
	HTTPTimeout        time.Duration

	// In-memory store retention.
	StoreMaxHistory int           // max number of daily samples per garden (0 = unlimited)
	StoreMaxAge     time.Duration // max age of samples (0 = unlimited)

	// Chat assistant.
	GeminiAPIKey   string
	GeminiModel    string
	ChatTimeout    time.Duration
	ChatRateLimit  int
	ChatRateWindow time.Duration

	Port     string
	LogLevel string
	LogFile  string
}

// Load reads configuration from environment with sensible defaults.
// A .env file in the working directory is loaded first when present.
func Load() (*AppConfig, error) {
	if err := godotenv.Load(); err != nil {
		logger.Log.Infof("no .env file found or error loading it: %v", err)
	}
	cfg := &AppConfig{}

	var err error
	if cfg.PollInterval, err = getenvDuration("POLL_INTERVAL", "15m"); err != nil {
		return nil, err
	}
	if cfg.HTTPTimeout, err = getenvDuration("HTTP_TIMEOUT", "10s"); err != nil {
		return nil, err
	}
	if cfg.StoreMaxAge, err = getenvDuration("STORE_MAX_AGE", "2160h"); err != nil { // 90 days
		return nil, err
	}
	if cfg.ChatTimeout, err = getenvDuration("CHAT_TIMEOUT", "20s"); err != nil {
		return nil, err
	}
	if cfg.ChatRateWindow, err = getenvDuration("CHAT_RATE_WINDOW", "1m"); err != nil {
		return nil, err
	}

	cfg.SeedDays = getenvInt("SEED_DAYS", 90)
	cfg.StoreMaxHistory = getenvInt("STORE_MAX_HISTORY", 365)
	cfg.ChatRateLimit = getenvInt("CHAT_RATE_LIMIT", 10)
	if cfg.ChatRateLimit <= 0 {
		return nil, fmt.Errorf("invalid CHAT_RATE_LIMIT: must be positive")
	}

	cfg.SensorGatewayURL = os.Getenv("SENSOR_GATEWAY_URL")
	cfg.SensorGatewayToken = os.Getenv("SENSOR_GATEWAY_TOKEN")

	cfg.GeminiAPIKey = os.Getenv("GEMINI_API_KEY")
	cfg.GeminiModel = getenvDefault("GEMINI_MODEL", "gemini-2.0-flash")

	cfg.Port = getenvDefault("PORT", "8080")
	cfg.LogLevel = getenvDefault("LOG_LEVEL", "info")
	cfg.LogFile = os.Getenv("LOG_FILE")

	cfg.Gardens = parseList(getenvDefault("GARDENS", "home"))

	return cfg, nil
}

// parseList splits a comma-separated value, dropping blanks and duplicates.
func parseList(v string) []string {
	var out []string
	seen := make(map[string]bool)
	for _, item := range strings.Split(v, ",") {
		item = strings.TrimSpace(item)
		if item == "" || seen[item] {
			continue
		}
		seen[item] = true
		out = append(out, item)
	}
	return out
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		n, err := strconv.Atoi(v)
		if err == nil {
			return n
		}
	}
	return def
}

func getenvDuration(key, def string) (time.Duration, error) {
	d, err := time.ParseDuration(getenvDefault(key, def))
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return d, nil
}
