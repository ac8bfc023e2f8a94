package config

import (
	"errors"
	"fmt"
	"log"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"alfredoptarigan/ats-resume-scorer/internal/models"
)

// ErrNoDatabaseCredentials means no store credentials were provided at
// process start. The server keeps running; persistence stays unavailable
// for the process lifetime.
var ErrNoDatabaseCredentials = errors.New("database credentials are not configured")

func InitDatabase(cfg *Config) (*gorm.DB, error) {
	dsn := cfg.GetDatabaseDSN()
	if dsn == "" {
		return nil, ErrNoDatabaseCredentials
	}

	logLevel := logger.Silent
	if cfg.Server.Env == "development" {
		logLevel = logger.Info
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	log.Println("✅ Database connected successfully")

	// Auto migrate
	if err := db.AutoMigrate(&models.ResumeEvaluation{}); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	log.Println("✅ Database migration completed")

	return db, nil
}
