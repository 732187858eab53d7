package db

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// OpenSQLite opens (and creates, if needed) the application database and
// brings the schema up to date. Foreign keys are enforced so the plan
// catalog cascades stay intact, and the busy timeout covers concurrent
// writes from the weight and profile handlers.
func OpenSQLite(databasePath string) (*gorm.DB, error) {
	if err := os.MkdirAll(filepath.Dir(databasePath), 0o755); err != nil {
		return nil, fmt.Errorf("create database directory: %w", err)
	}

	dsn := fmt.Sprintf("%s?_foreign_keys=on&_busy_timeout=5000", databasePath)
	database, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: newDatabaseLogger(),
	})
	if err != nil {
		return nil, fmt.Errorf("open sqlite at %s: %w", databasePath, err)
	}

	if err := applyEmbeddedMigrations(database); err != nil {
		return nil, fmt.Errorf("apply embedded migrations: %w", err)
	}

	return database, nil
}

// newDatabaseLogger keeps gorm quiet in normal operation and surfaces slow
// queries and real errors with a recognizable prefix.
func newDatabaseLogger() gormlogger.Interface {
	return gormlogger.New(
		log.New(os.Stdout, "sloth/db ", log.LstdFlags),
		gormlogger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  gormlogger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  false,
		},
	)
}
