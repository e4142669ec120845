// Package infra wires the storage layer: the GORM connection and the
// schema migrations.
package infra

import (
	"errors"
	"time"

	"github.com/paisabank/paisabank/pkg/config"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDBConnection opens a GORM postgres connection with an explicitly
// sized pool. The handle is injected into the unit of work; nothing in
// this codebase reaches for a process-global connection.
func NewDBConnection(cfg *config.DB, appEnv string) (*gorm.DB, error) {
	if cfg.Url == "" {
		return nil, errors.New("DATABASE_URL is not set")
	}

	logMode := logger.Silent
	if appEnv == "development" {
		logMode = logger.Info
	}

	// TranslateError stays off: the ledger repository reads the violated
	// constraint name from the raw pgconn error to tell a resubmitted
	// transfer apart from a TXN id collision.
	conn, err := gorm.Open(postgres.Open(cfg.Url), &gorm.Config{
		Logger:                 logger.Default.LogMode(logMode),
		SkipDefaultTransaction: true,
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := conn.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(25)
	sqlDB.SetConnMaxLifetime(1 * time.Hour)

	return conn, nil
}
