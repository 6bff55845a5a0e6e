package repo

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"blockfix-backend/internal/apperr"
	"blockfix-backend/internal/model"
	"blockfix-backend/internal/store"
)

// CreateMaintenanceInput is the caller-supplied part of a new maintenance
// item. Status is not accepted: new items always start Pending.
type CreateMaintenanceInput struct {
	Title       string                `json:"title"`
	Description string                `json:"description"`
	PropertyID  string                `json:"propertyId"`
	Property    string                `json:"property"`
	Priority    model.Priority        `json:"priority"`
	Type        model.MaintenanceType `json:"type"`
	RequestedBy string                `json:"requestedBy"`
}

// MaintenanceUpdate is a partial update; nil fields are left untouched.
// Identity, requestedDate, type and the conversion flag are immutable
// through this path.
type MaintenanceUpdate struct {
	Title       *string                  `json:"title"`
	Description *string                  `json:"description"`
	Priority    *model.Priority          `json:"priority"`
	Status      *model.MaintenanceStatus `json:"status"`
	RequestedBy *string                  `json:"requestedBy"`
}

// MaintenanceRepo owns the maintenance-items collection. Mutate gives the
// lifecycle engine an atomic read-modify-write over the whole collection.
type MaintenanceRepo struct {
	store store.Store
	mu    sync.Mutex
}

// NewMaintenanceRepo creates a maintenance repository over the given store.
func NewMaintenanceRepo(s store.Store) *MaintenanceRepo {
	return &MaintenanceRepo{store: s}
}

// Seed writes the sample items if the collection is empty.
func (r *MaintenanceRepo) Seed(ctx context.Context) error {
	return r.store.EnsureSeeded(ctx, CollectionMaintenance, seedJSON(seedMaintenanceItems()))
}

// List returns all maintenance items.
func (r *MaintenanceRepo) List(ctx context.Context) ([]model.MaintenanceItem, error) {
	return loadAll[model.MaintenanceItem](ctx, r.store, CollectionMaintenance)
}

// Get returns the item with the given id.
func (r *MaintenanceRepo) Get(ctx context.Context, id string) (model.MaintenanceItem, error) {
	items, err := r.List(ctx)
	if err != nil {
		return model.MaintenanceItem{}, err
	}
	for _, item := range items {
		if item.ID == id {
			return item, nil
		}
	}
	return model.MaintenanceItem{}, apperr.ErrNotFound
}

// Create validates the input, forces the Pending status, stamps identity
// and request date, and appends the item.
func (r *MaintenanceRepo) Create(ctx context.Context, input CreateMaintenanceInput) (model.MaintenanceItem, error) {
	if err := validateMaintenance(input); err != nil {
		return model.MaintenanceItem{}, err
	}

	item := model.MaintenanceItem{
		ID:            uuid.NewString(),
		Title:         input.Title,
		Description:   input.Description,
		PropertyID:    input.PropertyID,
		Property:      input.Property,
		Priority:      input.Priority,
		Status:        model.StatusPending,
		RequestedBy:   input.RequestedBy,
		RequestedDate: time.Now().UTC(),
		Type:          input.Type,
	}

	err := r.Mutate(ctx, func(items []model.MaintenanceItem) ([]model.MaintenanceItem, error) {
		return append(items, item), nil
	})
	if err != nil {
		return model.MaintenanceItem{}, err
	}
	return item, nil
}

// Update merges the non-nil fields of update into the stored item.
func (r *MaintenanceRepo) Update(ctx context.Context, id string, update MaintenanceUpdate) (model.MaintenanceItem, error) {
	var updated model.MaintenanceItem
	err := r.Mutate(ctx, func(items []model.MaintenanceItem) ([]model.MaintenanceItem, error) {
		for i := range items {
			if items[i].ID != id {
				continue
			}
			// Status only ever moves forward.
			if update.Status != nil {
				if model.StatusRank(*update.Status) < 0 {
					return nil, &apperr.ValidationError{Field: "status", Reason: "unknown status"}
				}
				if model.StatusRank(*update.Status) < model.StatusRank(items[i].Status) {
					return nil, &apperr.ValidationError{Field: "status", Reason: "status cannot move backwards"}
				}
			}
			applyMaintenanceUpdate(&items[i], update)
			updated = items[i]
			return items, nil
		}
		return nil, apperr.ErrNotFound
	})
	if err != nil {
		return model.MaintenanceItem{}, err
	}
	return updated, nil
}

// Delete removes the item. A missing id is a silent no-op.
func (r *MaintenanceRepo) Delete(ctx context.Context, id string) error {
	return r.Mutate(ctx, func(items []model.MaintenanceItem) ([]model.MaintenanceItem, error) {
		remaining := items[:0]
		for _, item := range items {
			if item.ID != id {
				remaining = append(remaining, item)
			}
		}
		return remaining, nil
	})
}

// Mutate runs fn over the full collection and persists its result in a
// single save. Calls are serialized, so fn always sees the latest state;
// returning an error aborts without writing.
func (r *MaintenanceRepo) Mutate(ctx context.Context, fn func([]model.MaintenanceItem) ([]model.MaintenanceItem, error)) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	items, err := r.List(ctx)
	if err != nil {
		return err
	}
	items, err = fn(items)
	if err != nil {
		return err
	}
	return saveAll(ctx, r.store, CollectionMaintenance, items)
}

func applyMaintenanceUpdate(item *model.MaintenanceItem, update MaintenanceUpdate) {
	if update.Title != nil {
		item.Title = *update.Title
	}
	if update.Description != nil {
		item.Description = *update.Description
	}
	if update.Priority != nil {
		item.Priority = *update.Priority
	}
	if update.Status != nil {
		item.Status = *update.Status
	}
	if update.RequestedBy != nil {
		item.RequestedBy = *update.RequestedBy
	}
}

func validateMaintenance(input CreateMaintenanceInput) error {
	if strings.TrimSpace(input.Title) == "" {
		return &apperr.ValidationError{Field: "title", Reason: "must not be empty"}
	}
	if !model.ValidPriority(input.Priority) {
		return &apperr.ValidationError{Field: "priority", Reason: "must be Low, Medium or High"}
	}
	if !model.ValidMaintenanceType(input.Type) {
		return &apperr.ValidationError{Field: "type", Reason: "must be request or workOrder"}
	}
	return nil
}
