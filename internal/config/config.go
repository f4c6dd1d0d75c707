package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"ardata/internal/logger"
)

type Config struct {
	// Generation Configuration
	OutputDir     string
	RandomSeed    int64
	AsOfDate      string
	CustomerCount int

	// Logging Configuration
	LogLevel      string
	LogFormat     string
	LogTimeFormat string
	LogOutput     string
}

func Load() (*Config, error) {
	config := &Config{
		OutputDir:     getEnv("OUTPUT_DIR", "generated_data"),
		AsOfDate:      getEnv("AS_OF_DATE", ""),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		LogFormat:     getEnv("LOG_FORMAT", "console"),
		LogTimeFormat: getEnv("LOG_TIME_FORMAT", "2006-01-02T15:04:05Z07:00"),
		LogOutput:     getEnv("LOG_OUTPUT", "stdout"),
	}

	seed, err := getEnvInt64("RANDOM_SEED", 0)
	if err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	config.RandomSeed = seed

	customers, err := getEnvInt("CUSTOMER_COUNT", 0)
	if err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	config.CustomerCount = customers

	if err := config.validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return config, nil
}

func (c *Config) validate() error {
	if c.AsOfDate != "" {
		if _, err := time.Parse("2006-01-02", c.AsOfDate); err != nil {
			return fmt.Errorf("AS_OF_DATE must be YYYY-MM-DD: %w", err)
		}
	}
	if c.CustomerCount < 0 {
		return fmt.Errorf("CUSTOMER_COUNT must not be negative")
	}
	return nil
}

// GetLoggerConfig returns a logger configuration from the main config
func (c *Config) GetLoggerConfig() logger.LogConfig {
	return logger.LogConfig{
		Level:      c.LogLevel,
		Format:     c.LogFormat,
		TimeFormat: c.LogTimeFormat,
		Output:     c.LogOutput,
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer: %w", key, err)
	}
	return n, nil
}

func getEnvInt64(key string, defaultValue int64) (int64, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	n, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer: %w", key, err)
	}
	return n, nil
}
