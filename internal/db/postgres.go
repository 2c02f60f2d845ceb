package db

import (
	"fmt"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/vietanh2810/activities-api/internal/config"
)

// DSN renders the postgres section as a key/value connection string.
func DSN(conf *config.PostgresConfig) string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s TimeZone=UTC",
		conf.Host, conf.Port, conf.User, conf.Password, conf.DB, conf.SSLMode)
}

func OpenPostgres(conf *config.PostgresConfig, quiet bool) (*gorm.DB, error) {
	db, err := open(DSN(conf), quiet)
	if err != nil {
		return nil, err
	}

	if err := tunePool(db, conf); err != nil {
		return nil, err
	}

	return db, nil
}

func OpenPostgresWithURL(url string, conf *config.PostgresConfig, quiet bool) (*gorm.DB, error) {
	db, err := open(url, quiet)
	if err != nil {
		return nil, err
	}

	if err := tunePool(db, conf); err != nil {
		return nil, err
	}

	return db, nil
}

func open(dsn string, quiet bool) (*gorm.DB, error) {
	level := logger.Info
	if quiet {
		level = logger.Silent
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(level),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	})
	if err != nil {
		return nil, fmt.Errorf("gorm.Open -> %w", err)
	}

	return db, nil
}

func tunePool(db *gorm.DB, conf *config.PostgresConfig) error {
	if conf == nil {
		return nil
	}

	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("db.DB -> %w", err)
	}

	if conf.MaxIdleConns > 0 {
		sqlDB.SetMaxIdleConns(conf.MaxIdleConns)
	}
	if conf.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(conf.MaxOpenConns)
	}
	if conf.ConnMaxLifetime > 0 {
		sqlDB.SetConnMaxLifetime(conf.ConnMaxLifetime)
	}

	return nil
}
