package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Environment string
	Port        string
	Repository  RepositoryConfig
	DynamoDB    DynamoDBConfig
	Database    DatabaseConfig
}

// RepositoryConfig selects the storage backend
type RepositoryConfig struct {
	Driver string // "dynamodb", "sqlite" or "memory"
}

// DynamoDBConfig holds DynamoDB configuration
type DynamoDBConfig struct {
	TableName string
	Region    string
	Endpoint  string // optional, for local DynamoDB
}

// DatabaseConfig holds SQLite configuration for local deployments
type DatabaseConfig struct {
	Path           string
	MigrationsPath string
	MaxOpenConns   int
	MaxIdleConns   int
}

// Load loads configuration from environment variables and config files
func Load() (*Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load()

	viper.AutomaticEnv()
	viper.SetDefault("PORT", "8081")
	viper.SetDefault("ENVIRONMENT", "development")
	viper.SetDefault("REPOSITORY_DRIVER", "sqlite")
	viper.SetDefault("DYNAMODB_TABLE_NAME", "users_info")
	viper.SetDefault("AWS_REGION", "us-east-1")
	viper.SetDefault("DB_PATH", "./data/users.db")
	viper.SetDefault("DB_MIGRATIONS_PATH", "./migrations")
	viper.SetDefault("DB_MAX_OPEN_CONNS", 1)
	viper.SetDefault("DB_MAX_IDLE_CONNS", 1)

	config := &Config{
		Environment: viper.GetString("ENVIRONMENT"),
		Port:        viper.GetString("PORT"),
		Repository: RepositoryConfig{
			Driver: viper.GetString("REPOSITORY_DRIVER"),
		},
		DynamoDB: DynamoDBConfig{
			TableName: viper.GetString("DYNAMODB_TABLE_NAME"),
			Region:    viper.GetString("AWS_REGION"),
			Endpoint:  viper.GetString("DYNAMODB_ENDPOINT"),
		},
		Database: DatabaseConfig{
			Path:           viper.GetString("DB_PATH"),
			MigrationsPath: viper.GetString("DB_MIGRATIONS_PATH"),
			MaxOpenConns:   viper.GetInt("DB_MAX_OPEN_CONNS"),
			MaxIdleConns:   viper.GetInt("DB_MAX_IDLE_CONNS"),
		},
	}

	return config, nil
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
