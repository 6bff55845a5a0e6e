package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"blockfix-backend/internal/apperr"
	"blockfix-backend/internal/model"
)

// Store is the durable, synchronous read/write surface for one named
// collection of JSON records. Repositories own the typed view; the store
// only moves raw payloads.
type Store interface {
	// Load returns the raw JSON payload of the collection. A collection
	// that was never written, or whose payload is not valid JSON, yields
	// nil with no error.
	Load(ctx context.Context, collection string) ([]byte, error)

	// Save overwrites the entire collection in a single upsert.
	Save(ctx context.Context, collection string, data []byte) error

	// EnsureSeeded writes seed only when the collection is absent or
	// empty. Calling it repeatedly never duplicates or alters records.
	EnsureSeeded(ctx context.Context, collection string, seed []byte) error

	// DB exposes the underlying handle for migrations and tests.
	DB() *gorm.DB
}

type gormStore struct {
	db *gorm.DB
}

// NewGormStore creates a GORM-backed store over the collections table.
func NewGormStore(db *gorm.DB) Store {
	return &gormStore{db: db}
}

func (s *gormStore) DB() *gorm.DB {
	return s.db
}

func (s *gormStore) Load(ctx context.Context, collection string) ([]byte, error) {
	var row model.Collection
	err := s.db.WithContext(ctx).Where("name = ?", collection).First(&row).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load collection %q: %w", collection, err)
	}

	// Corrupted payloads degrade to an absent collection instead of
	// failing every caller.
	if !json.Valid(row.Data) {
		return nil, nil
	}
	return []byte(row.Data), nil
}

func (s *gormStore) Save(ctx context.Context, collection string, data []byte) error {
	if !json.Valid(data) {
		return &apperr.StorageError{Collection: collection, Err: fmt.Errorf("payload is not valid JSON")}
	}

	row := model.Collection{
		Name:      collection,
		Data:      data,
		UpdatedAt: time.Now().UTC(),
	}
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoUpdates: clause.AssignmentColumns([]string{"data", "updated_at"}),
	}).Create(&row).Error
	if err != nil {
		return &apperr.StorageError{Collection: collection, Err: err}
	}
	return nil
}

func (s *gormStore) EnsureSeeded(ctx context.Context, collection string, seed []byte) error {
	data, err := s.Load(ctx, collection)
	if err != nil {
		return err
	}
	if !isEmptyPayload(data) {
		return nil
	}
	return s.Save(ctx, collection, seed)
}

// isEmptyPayload treats a missing row, an empty array and a JSON null as
// "never initialized".
func isEmptyPayload(data []byte) bool {
	if len(data) == 0 {
		return true
	}
	var probe any
	if err := json.Unmarshal(data, &probe); err != nil {
		return true
	}
	switch v := probe.(type) {
	case nil:
		return true
	case []any:
		return len(v) == 0
	}
	return false
}
