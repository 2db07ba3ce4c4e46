package database

import (
	"log"
	"os"
	"strings"
	"time"

	"go-fichas-ws/internal/config"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Connect opens the store described by cfg. A postgres DSN in DATABASE_URL
// selects the postgres driver; anything else (including the empty default)
// is treated as a sqlite file path, which is how the packaged desktop build
// runs against a single database file.
func Connect(cfg *config.Config) (*gorm.DB, error) {
	newLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  true,
		},
	)

	dialector, isPostgres := selectDialector(cfg)

	db, err := gorm.Open(dialector, &gorm.Config{Logger: newLogger})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	if isPostgres {
		sqlDB.SetMaxIdleConns(10)
		sqlDB.SetMaxOpenConns(100)
		sqlDB.SetConnMaxLifetime(time.Hour)
	} else {
		// sqlite: a single writer avoids SQLITE_BUSY under concurrent requests
		sqlDB.SetMaxOpenConns(1)
	}

	return db, nil
}

func selectDialector(cfg *config.Config) (gorm.Dialector, bool) {
	dsn := cfg.DatabaseURL
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") || strings.HasPrefix(dsn, "host=") {
		return postgres.New(postgres.Config{
			DSN:                  dsn,
			PreferSimpleProtocol: true, // no implicit prepared statements behind transaction poolers
		}), true
	}

	path := dsn
	if path == "" {
		if err := os.MkdirAll(cfg.DataDir, 0o755); err == nil {
			path = cfg.SQLitePath()
		} else {
			path = "fichas.db"
		}
	}
	return sqlite.Open(path), false
}
