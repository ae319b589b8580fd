package storage

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

// kvEntry is the single table backing SQLiteKV
type kvEntry struct {
	Key       string `gorm:"primaryKey;column:kv_key"`
	Value     string `gorm:"type:text;not null"`
	UpdatedAt time.Time
}

func (kvEntry) TableName() string { return "kv_entries" }

// SQLiteKV stores values in a local SQLite database file through gorm.
type SQLiteKV struct {
	db *gorm.DB
}

// NewSQLiteKV opens (or creates) the database at dbPath and migrates the table.
func NewSQLiteKV(dbPath string) (*SQLiteKV, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, backendErr("sqlite", "mkdir", dbPath, err)
	}

	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, backendErr("sqlite", "open", dbPath, err)
	}

	if err := db.AutoMigrate(&kvEntry{}); err != nil {
		return nil, backendErr("sqlite", "migrate", "", err)
	}

	return &SQLiteKV{db: db}, nil
}

// Get retrieves a value.
func (s *SQLiteKV) Get(ctx context.Context, key string) (string, bool, error) {
	var entry kvEntry
	err := s.db.WithContext(ctx).Where("kv_key = ?", key).Take(&entry).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, backendErr("sqlite", "get", key, err)
	}
	return entry.Value, true, nil
}

// Set stores a value, updating it in place when the key exists.
func (s *SQLiteKV) Set(ctx context.Context, key, value string) error {
	entry := kvEntry{Key: key, Value: value, UpdatedAt: time.Now()}
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "kv_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&entry).Error
	return backendErr("sqlite", "set", key, err)
}

// Delete removes a value.
func (s *SQLiteKV) Delete(ctx context.Context, key string) error {
	err := s.db.WithContext(ctx).Where("kv_key = ?", key).Delete(&kvEntry{}).Error
	return backendErr("sqlite", "delete", key, err)
}

// Close closes the underlying database connection.
func (s *SQLiteKV) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return fmt.Errorf("get sql DB: %w", err)
	}
	if err := sqlDB.Close(); err != nil {
		return fmt.Errorf("close db: %w", err)
	}
	return nil
}

var _ KV = (*SQLiteKV)(nil)
