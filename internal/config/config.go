package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	// Server
	Port string

	// JWT
	JWTSecret        string
	JWTExpirationDur time.Duration

	// Voice uploads
	VoiceDir          string
	MaxVoiceFileBytes int64

	// Chat escalation window: how many of the user's most recent events
	// are scanned when counting repeated mistakes.
	EventWindow int
}

var appConfig *Config

// Load loads configuration from environment variables. JWT_SECRET is
// required: the process refuses to start with an unset signing secret
// rather than falling back to a known default.
func Load() (*Config, error) {
	// Load .env file if not already loaded
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return nil, fmt.Errorf("JWT_SECRET must be set")
	}

	config := &Config{
		Port:              getEnv("PORT", "8080"),
		JWTSecret:         secret,
		VoiceDir:          getEnv("VOICE_DIR", "static/mom_voices"),
		MaxVoiceFileBytes: 10 << 20, // 10 MiB per file
		EventWindow:       5,
	}

	// Parse JWT expiration duration
	expStr := getEnv("JWT_EXPIRES_IN", "24h")
	expDur, err := time.ParseDuration(expStr)
	if err != nil {
		log.Printf("Warning: invalid JWT_EXPIRES_IN value '%s', falling back to 24h\n", expStr)
		expDur = 24 * time.Hour
	}
	config.JWTExpirationDur = expDur

	if windowStr := os.Getenv("EVENT_WINDOW"); windowStr != "" {
		window, err := strconv.Atoi(windowStr)
		if err != nil || window < 1 {
			log.Printf("Warning: invalid EVENT_WINDOW value '%s', falling back to 5\n", windowStr)
		} else {
			config.EventWindow = window
		}
	}

	appConfig = config
	return config, nil
}

// Get returns the application configuration
func Get() *Config {
	if appConfig == nil {
		var err error
		appConfig, err = Load()
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}
	}
	return appConfig
}

// Set replaces the application configuration. Intended for tests.
func Set(cfg *Config) {
	appConfig = cfg
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
