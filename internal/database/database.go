package database

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/ytkit/transcript-api/internal/models"
	apperrors "github.com/ytkit/transcript-api/pkg/errors"
)

// DB wraps a gorm handle to one transcript store file.
type DB struct {
	*gorm.DB

	closeOnce sync.Once
	closeErr  error
}

// Initialize opens (or creates) the transcript store at dbPath and ensures
// its schema. A path that doesn't exist yet becomes a new, empty,
// correctly shaped store; an existing file is reused without data loss.
func Initialize(dbPath string, verbose bool) (*DB, error) {
	dir := filepath.Dir(dbPath)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, apperrors.Storage("failed to create database directory", err)
		}
	}

	logLevel := logger.Error
	if verbose {
		logLevel = logger.Info
	}

	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	}

	db, err := gorm.Open(sqlite.Open(dbPath), gormConfig)
	if err != nil {
		return nil, apperrors.Storage(fmt.Sprintf("failed to open database at %s", dbPath), err)
	}

	if err := db.AutoMigrate(&models.Channel{}, &models.Video{}, &models.Segment{}); err != nil {
		return nil, apperrors.Storage("schema migration failed", err)
	}

	return &DB{DB: db}, nil
}

// Close closes the database connection. Safe to call more than once.
func (db *DB) Close() error {
	db.closeOnce.Do(func() {
		sqlDB, err := db.DB.DB()
		if err != nil {
			db.closeErr = apperrors.Storage("failed to get underlying SQL database", err)
			return
		}
		if err := sqlDB.Close(); err != nil {
			db.closeErr = apperrors.Storage("failed to close database", err)
		}
	})
	return db.closeErr
}

// HealthCheck verifies the database connection is working.
func (db *DB) HealthCheck() error {
	if db == nil || db.DB == nil {
		return apperrors.Storage("database not initialized", nil)
	}

	sqlDB, err := db.DB.DB()
	if err != nil {
		return apperrors.Storage("failed to get underlying SQL database", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 1*time.Second)
	defer cancel()

	if err := sqlDB.PingContext(ctx); err != nil {
		return apperrors.Storage("database ping failed", err)
	}

	return nil
}
