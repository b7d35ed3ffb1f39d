package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	Server       ServerConfig
	Database     DatabaseConfig
	CORS         CORSConfig
	ExchangeRate ExchangeRateConfig
	Scheduler    SchedulerConfig
}

// ServerConfig holds server-specific configuration
type ServerConfig struct {
	Port string
	Host string
	Addr string // Combined host:port for convenience
}

// DatabaseConfig holds database-specific configuration
type DatabaseConfig struct {
	Path string
}

// CORSConfig holds CORS-specific configuration
type CORSConfig struct {
	AllowedOrigins []string
}

// ExchangeRateConfig holds configuration for the exchange-rate provider.
// APIKey is what the provider issued; it is stored fernet-encrypted in the
// provider_setting table using SecretKey (a base64 fernet key).
type ExchangeRateConfig struct {
	BaseURL   string
	APIKey    string
	SecretKey string
}

// SchedulerConfig holds the cron schedule for the periodic rate refresh.
// An empty schedule disables the scheduler; refresh stays caller-initiated.
type SchedulerConfig struct {
	RateRefreshSchedule string
}

// Load reads configuration from environment variables and .env file
func Load() (*Config, error) {
	// Try to load .env file (ignore error if it doesn't exist)
	_ = godotenv.Load()

	config := &Config{
		Server: ServerConfig{
			Port: getEnv("SERVER_PORT", "5001"),
			Host: getEnv("SERVER_HOST", "localhost"),
		},
		Database: DatabaseConfig{
			Path: getEnv("DB_PATH", "./data/savings_planner.db"),
		},
		CORS: CORSConfig{
			AllowedOrigins: []string{
				"http://localhost:3000",
				"http://localhost",
			},
		},
		ExchangeRate: ExchangeRateConfig{
			BaseURL:   getEnv("EXCHANGE_RATE_BASE_URL", "https://v6.exchangerate-api.com/v6"),
			APIKey:    os.Getenv("EXCHANGE_RATE_API_KEY"),
			SecretKey: os.Getenv("EXCHANGE_RATE_SECRET_KEY"),
		},
		Scheduler: SchedulerConfig{
			RateRefreshSchedule: getEnv("RATE_REFRESH_SCHEDULE", "@hourly"),
		},
	}

	// Combine host and port
	config.Server.Addr = fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port)

	return config, nil
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
