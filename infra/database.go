// Package infra wires the persistence layer: database connection, GORM
// models and repository implementations.
package infra

import (
	"errors"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/finpal/finpal/infra/repository/model"
	"github.com/finpal/finpal/pkg/config"
)

// NewDBConnection opens a pooled GORM connection to Postgres.
func NewDBConnection(cnf config.DBConfig, appEnv string) (*gorm.DB, error) {
	databaseUrl := cnf.Url
	if databaseUrl == "" {
		return nil, errors.New("DATABASE_URL is not set")
	}

	var logMode logger.LogLevel
	if appEnv == "development" {
		logMode = logger.Info
	} else {
		logMode = logger.Silent
	}

	connection, err := gorm.Open(postgres.Open(databaseUrl), &gorm.Config{
		Logger:                 logger.Default.LogMode(logMode),
		SkipDefaultTransaction: true,
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := connection.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(25)
	sqlDB.SetConnMaxLifetime(1 * time.Hour)

	return connection, nil
}

// AutoMigrate creates or updates the subsystem's tables, including the
// unique index on purchases.transaction_id that keeps migration re-runs
// idempotent.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.Card{},
		&model.Category{},
		&model.Account{},
		&model.Goal{},
		&model.Transaction{},
		&model.Purchase{},
		&model.Bill{},
	)
}
