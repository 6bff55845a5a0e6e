// Package repo wraps the entity store with one typed repository per
// collection. Every write is a whole-collection read-modify-write,
// serialized by a per-repository mutex so that compound mutations (like
// request conversion) commit as a single save.
package repo

import (
	"context"
	"encoding/json"

	"blockfix-backend/internal/apperr"
	"blockfix-backend/internal/store"
)

// Collection names under which each entity type is persisted.
const (
	CollectionProperties    = "properties"
	CollectionMaintenance   = "maintenance-items"
	CollectionContractors   = "contractors"
	CollectionReports       = "reports"
	CollectionSettings      = "app-settings"
	CollectionSubscriptions = "push-subscriptions"
)

// loadAll reads and decodes a full collection. Missing or undecodable
// payloads degrade to an empty slice.
func loadAll[T any](ctx context.Context, s store.Store, collection string) ([]T, error) {
	data, err := s.Load(ctx, collection)
	if err != nil {
		return nil, err
	}
	if data == nil {
		return nil, nil
	}
	var records []T
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, nil
	}
	return records, nil
}

// saveAll encodes and persists a full collection in one save.
func saveAll[T any](ctx context.Context, s store.Store, collection string, records []T) error {
	if records == nil {
		records = []T{}
	}
	data, err := json.Marshal(records)
	if err != nil {
		return &apperr.StorageError{Collection: collection, Err: err}
	}
	return s.Save(ctx, collection, data)
}

// seedJSON marshals seed records for EnsureSeeded. Seed data is static,
// so a marshal failure is a programming error.
func seedJSON(v any) []byte {
	data, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}
	return data
}
