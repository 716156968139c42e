package app

import (
	"os"
	"strings"
)

type AppConfig struct {
	// Path of the JSON data file backing the record store
	DataFile *string

	// Logging configuration
	LogLevel *string

	// HTTP server configuration
	Port *string

	// CORS configuration; empty means every origin is allowed
	AllowOrigins *[]string
}

func NewAppConfig() *AppConfig {
	config := &AppConfig{}

	// Data file path (default: data.json in the working directory)
	dataFile := getEnvWithDefault("DATA_FILE", "data.json")
	config.DataFile = &dataFile

	// HTTP server port (default: 3001)
	port := getEnvWithDefault("PORT", "3001")
	config.Port = &port

	// Log level (default: debug)
	// Available levels: "trace", "debug", "info", "warn", "error", "fatal", "panic", "disabled"
	logLevel := getEnvWithDefault("LOG_LEVEL", "debug")
	config.LogLevel = &logLevel

	loadCORSConfig(config)

	return config
}

// loadCORSConfig parses ALLOW_ORIGINS as a comma-separated list. When the
// variable is unset the list stays empty and the server allows every
// origin, which is the product's default posture.
func loadCORSConfig(config *AppConfig) {
	var allowOrigins []string

	if allowOriginsStr := os.Getenv("ALLOW_ORIGINS"); allowOriginsStr != "" {
		for _, origin := range strings.Split(allowOriginsStr, ",") {
			origin = strings.TrimSpace(origin)
			if origin != "" {
				allowOrigins = append(allowOrigins, origin)
			}
		}
	}

	config.AllowOrigins = &allowOrigins
}

// getEnvWithDefault returns environment variable value or default if not set
func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
