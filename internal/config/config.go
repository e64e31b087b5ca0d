package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
// It is loaded once at process start and treated as read-only afterwards.
type Config struct {
	Environment string
	Port        string
	LogLevel    string
	Table       TableConfig
	Bucket      BucketConfig
}

// TableConfig holds the record-store table configuration
type TableConfig struct {
	Name   string
	Region string
}

// BucketConfig holds the object-store bucket configuration
type BucketConfig struct {
	Name   string
	Region string
}

// Load loads configuration from environment variables and an optional .env file
func Load() (*Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load()

	viper.AutomaticEnv()
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("ENVIRONMENT", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("USERS_TABLE", "users")
	viper.SetDefault("AWS_REGION", "us-east-1")

	config := &Config{
		Environment: viper.GetString("ENVIRONMENT"),
		Port:        viper.GetString("PORT"),
		LogLevel:    viper.GetString("LOG_LEVEL"),
		Table: TableConfig{
			Name:   viper.GetString("USERS_TABLE"),
			Region: viper.GetString("AWS_REGION"),
		},
		Bucket: BucketConfig{
			Name:   viper.GetString("BUCKET_NAME"),
			Region: viper.GetString("AWS_REGION"),
		},
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate checks that required settings are present
func (c *Config) Validate() error {
	if c.Table.Name == "" {
		return fmt.Errorf("USERS_TABLE must not be empty")
	}
	if c.Table.Region == "" {
		return fmt.Errorf("AWS_REGION must not be empty")
	}
	return nil
}

// GetEnv gets an environment variable with a fallback value
func GetEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

// GetEnvAsInt gets an environment variable as integer with a fallback value
func GetEnvAsInt(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return fallback
}

// GetEnvAsBool gets an environment variable as boolean with a fallback value
func GetEnvAsBool(key string, fallback bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return fallback
}
