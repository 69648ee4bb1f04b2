package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	Port           string
	AllowedOrigins []string
	LogLevel       string

	// Record source
	SourceURL       string
	SourceTimeout   time.Duration
	RefreshInterval time.Duration

	// Analytics defaults
	DefaultPeriod string
	RankingLimit  int
	HideInactive  bool

	// WebSocket timing
	WSReadTimeout  time.Duration
	WSWriteTimeout time.Duration
	PingPeriod     time.Duration
	PongWait       time.Duration
	WriteWait      time.Duration
	MaxMessageSize int64
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Try to load .env file (ignore error if it doesn't exist)
	_ = godotenv.Load()

	config := &Config{
		Port:           getEnv("PORT", "8080"),
		AllowedOrigins: strings.Split(getEnv("ALLOWED_ORIGINS", "http://localhost:5173"), ","),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		SourceURL:      getEnv("SOURCE_URL", ""),
		DefaultPeriod:  getEnv("DEFAULT_PERIOD", "last7Days"),
		HideInactive:   getEnv("HIDE_INACTIVE_OPERATORS", "false") == "true",
	}

	sourceTimeout, err := strconv.Atoi(getEnv("SOURCE_TIMEOUT", "30"))
	if err != nil {
		return nil, fmt.Errorf("invalid SOURCE_TIMEOUT: %w", err)
	}
	config.SourceTimeout = time.Duration(sourceTimeout) * time.Second

	refreshInterval, err := strconv.Atoi(getEnv("REFRESH_INTERVAL", "300"))
	if err != nil {
		return nil, fmt.Errorf("invalid REFRESH_INTERVAL: %w", err)
	}
	config.RefreshInterval = time.Duration(refreshInterval) * time.Second

	rankingLimit, err := strconv.Atoi(getEnv("RANKING_LIMIT", "10"))
	if err != nil {
		return nil, fmt.Errorf("invalid RANKING_LIMIT: %w", err)
	}
	config.RankingLimit = rankingLimit

	// Parse WebSocket timeouts
	wsReadTimeout, err := strconv.Atoi(getEnv("WS_READ_TIMEOUT", "60"))
	if err != nil {
		return nil, fmt.Errorf("invalid WS_READ_TIMEOUT: %w", err)
	}
	config.WSReadTimeout = time.Duration(wsReadTimeout) * time.Second

	wsWriteTimeout, err := strconv.Atoi(getEnv("WS_WRITE_TIMEOUT", "10"))
	if err != nil {
		return nil, fmt.Errorf("invalid WS_WRITE_TIMEOUT: %w", err)
	}
	config.WSWriteTimeout = time.Duration(wsWriteTimeout) * time.Second

	// Calculate WebSocket constants
	config.PongWait = config.WSReadTimeout
	config.PingPeriod = (config.PongWait * 9) / 10 // Must be less than pongWait
	config.WriteWait = config.WSWriteTimeout
	config.MaxMessageSize = 512

	// Trim spaces from allowed origins
	for i, origin := range config.AllowedOrigins {
		config.AllowedOrigins[i] = strings.TrimSpace(origin)
	}

	return config, nil
}

// getEnv gets an environment variable with a fallback default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
