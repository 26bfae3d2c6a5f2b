package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// ServerConfig holds configuration for the feedback/payroll API server
type ServerConfig struct {
	Port        int
	DatabaseURL string
	CORSOrigin  string
	LogLevel    string
	// MemoryStore runs the feedback store in-process, without postgres.
	MemoryStore bool
}

// LoadServerConfig reads server configuration from the environment. A
// .env file is honored when present.
func LoadServerConfig() (*ServerConfig, error) {
	// Absence of a .env file is fine; the environment still applies.
	_ = godotenv.Load()

	port, err := strconv.Atoi(getEnv("PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid PORT: %w", err)
	}

	return &ServerConfig{
		Port:        port,
		DatabaseURL: getEnv("DATABASE_URL", ""),
		CORSOrigin:  getEnv("CORS_ORIGIN", "http://localhost:3000"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		MemoryStore: getEnv("FEEDBACK_STORE", "postgres") == "memory",
	}, nil
}

// Validate checks that the configuration is runnable.
func (cfg *ServerConfig) Validate() error {
	if !cfg.MemoryStore && cfg.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL is required unless the feedback store is in-memory")
	}
	return nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}
