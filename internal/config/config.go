package config

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Azure    AzureConfig
}

type ServerConfig struct {
	Port string
	Env  string
}

type DatabaseConfig struct {
	URL      string
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
}

type AzureConfig struct {
	Endpoint   string
	APIKey     string
	APIVersion string
	Model      string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found. Using default values.")
	}

	return &Config{
		Server: ServerConfig{
			Port: getEnv("PORT", "8000"),
			Env:  getEnv("ENV", "development"),
		},
		Database: DatabaseConfig{
			URL:      getEnv("DATABASE_URL", ""),
			Host:     getEnv("DB_HOST", ""),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", "postgres"),
			DBName:   getEnv("DB_NAME", "ats_resume_scorer"),
		},
		Azure: AzureConfig{
			Endpoint:   getEnv("AZURE_AI_ENDPOINT", ""),
			APIKey:     getEnv("AZURE_AI_KEY", ""),
			APIVersion: getEnv("AZURE_AI_VERSION", "2024-02-15-preview"),
			Model:      getEnv("AZURE_AI_MODEL", "gpt-4o"),
		},
	}
}

// GetDatabaseDSN returns the connection string for the evaluation store, or
// an empty string when no credentials were provided at all.
func (c *Config) GetDatabaseDSN() string {
	if c.Database.URL != "" {
		return c.Database.URL
	}

	if c.Database.Host == "" {
		return ""
	}

	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.DBName,
	)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
