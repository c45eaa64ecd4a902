package db

import (
	"fmt"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/workdesk/workdesk/internal/config"
	"github.com/workdesk/workdesk/internal/modules/model"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"gorm.io/plugin/opentelemetry/tracing"
)

const (
	DriverMemory   = "memory"
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

func New(cfg *config.Config) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch cfg.Database.Driver {
	case DriverPostgres:
		dialector = postgres.Open(cfg.Database.DSN)
	case DriverSQLite:
		dsn := cfg.Database.DSN
		if dsn == "" {
			dsn = "workdesk.db"
		}
		dialector = sqlite.Open(dsn)
	default:
		return nil, fmt.Errorf("database driver %q has no relational backend", cfg.Database.Driver)
	}

	d, err := gorm.Open(dialector, &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Warn),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", cfg.Database.Driver, err)
	}

	sqlDB, err := d.DB()
	if err != nil {
		return nil, err
	}
	if cfg.Database.Driver == DriverSQLite {
		// sqlite allows a single writer
		sqlDB.SetMaxOpenConns(1)
	} else {
		sqlDB.SetMaxOpenConns(cfg.Database.MaxOpen)
		sqlDB.SetMaxIdleConns(cfg.Database.MaxIdle)
		sqlDB.SetConnMaxLifetime(time.Hour)
	}
	return d, nil
}

// Migrate creates or alters the tables of every entity kind.
func Migrate(d *gorm.DB) error {
	return d.AutoMigrate(model.All()...)
}

// RegisterOpenTelemetryPlugin traces every query through the global tracer
// provider. Call it after tracing is set up.
func RegisterOpenTelemetryPlugin(d *gorm.DB) error {
	return d.Use(tracing.NewPlugin(tracing.WithoutMetrics()))
}
