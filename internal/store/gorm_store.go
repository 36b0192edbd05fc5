package store

import (
	"encoding/json"
	"fmt"
	"log"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// kvRecord is the single table backing the store: one row per key, the value
// held as a JSON blob.
type kvRecord struct {
	Key   string `gorm:"primaryKey;type:varchar(64)"`
	Value []byte
}

func (kvRecord) TableName() string {
	return "kv_records"
}

// GORMStore is a GORM-backed implementation of KVStore.
type GORMStore struct {
	db *gorm.DB
}

// NewGORMStore creates a GORMStore on an existing connection and migrates the
// kv_records table.
func NewGORMStore(db *gorm.DB) (*GORMStore, error) {
	if err := db.AutoMigrate(&kvRecord{}); err != nil {
		return nil, fmt.Errorf("failed to migrate kv_records: %w", err)
	}
	return &GORMStore{db: db}, nil
}

// Open connects to the configured database and returns a migrated store.
// Supported drivers are "sqlite" (the default, on-device file) and "postgres".
func Open(driver, dsn string) (*GORMStore, error) {
	var dial gorm.Dialector
	switch driver {
	case "postgres":
		dial = postgres.Open(dsn)
	case "sqlite", "":
		dial = sqlite.Open(dsn)
	default:
		return nil, fmt.Errorf("unsupported DB driver %q", driver)
	}

	db, err := gorm.Open(dial, &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to open %s database: %w", driver, err)
	}
	return NewGORMStore(db)
}

// Get reads and unmarshals the value for key into dest. Read and decode
// failures are logged and reported as absent, per the store contract.
func (s *GORMStore) Get(key string, dest any) (bool, error) {
	var rec kvRecord
	if err := s.db.First(&rec, "key = ?", key).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return false, nil
		}
		log.Printf("store: failed to read key %q: %v", key, err)
		return false, nil
	}
	if err := json.Unmarshal(rec.Value, dest); err != nil {
		log.Printf("store: corrupt value for key %q: %v", key, err)
		return false, nil
	}
	return true, nil
}

// Set marshals value to JSON and replaces the row for key.
func (s *GORMStore) Set(key string, value any) error {
	body, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal value for key %q: %w", key, err)
	}
	rec := kvRecord{Key: key, Value: body}
	err = s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value"}),
	}).Create(&rec).Error
	if err != nil {
		return fmt.Errorf("failed to write key %q: %w", key, err)
	}
	return nil
}
