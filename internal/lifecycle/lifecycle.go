// Package lifecycle implements the maintenance state machine: forward-only
// status progression and request-to-work-order conversion.
package lifecycle

import (
	"context"
	"time"

	"github.com/google/uuid"

	"blockfix-backend/internal/apperr"
	"blockfix-backend/internal/model"
	"blockfix-backend/internal/repo"
)

// Engine drives maintenance items through their lifecycle. All mutations
// go through the repository's atomic Mutate, so compound changes commit
// as one save and conversions cannot double-fire.
type Engine struct {
	items *repo.MaintenanceRepo
}

// NewEngine creates a lifecycle engine over the maintenance repository.
func NewEngine(items *repo.MaintenanceRepo) *Engine {
	return &Engine{items: items}
}

// Advance moves the item to the next status in the fixed order
// Pending -> In Progress -> Completed. Advancing a Completed item is a
// safe no-op. An unknown id yields apperr.ErrNotFound.
func (e *Engine) Advance(ctx context.Context, id string) (model.MaintenanceItem, error) {
	var advanced model.MaintenanceItem
	err := e.items.Mutate(ctx, func(items []model.MaintenanceItem) ([]model.MaintenanceItem, error) {
		for i := range items {
			if items[i].ID != id {
				continue
			}
			items[i].Status = model.NextStatus(items[i].Status)
			advanced = items[i]
			return items, nil
		}
		return nil, apperr.ErrNotFound
	})
	if err != nil {
		return model.MaintenanceItem{}, err
	}
	return advanced, nil
}

// Convert promotes a request into a work order: the source request is
// flagged convertedToWorkOrder (its status untouched) and a fresh Pending
// work order is appended, copying the request's descriptive fields. Both
// writes land in a single save. Converting a non-request or an
// already-converted request yields apperr.ErrNotApplicable; the eligibility
// check runs inside the same atomic mutate, so a second conversion of the
// same request can never produce a second work order.
func (e *Engine) Convert(ctx context.Context, requestID string) (model.MaintenanceItem, error) {
	var workOrder model.MaintenanceItem
	err := e.items.Mutate(ctx, func(items []model.MaintenanceItem) ([]model.MaintenanceItem, error) {
		for i := range items {
			if items[i].ID != requestID {
				continue
			}
			if items[i].Type != model.TypeRequest || items[i].ConvertedToWorkOrder {
				return nil, apperr.ErrNotApplicable
			}

			items[i].ConvertedToWorkOrder = true
			workOrder = model.MaintenanceItem{
				ID:            uuid.NewString(),
				Title:         items[i].Title,
				Description:   items[i].Description,
				PropertyID:    items[i].PropertyID,
				Property:      items[i].Property,
				Priority:      items[i].Priority,
				Status:        model.StatusPending,
				RequestedBy:   items[i].RequestedBy,
				RequestedDate: time.Now().UTC(),
				Type:          model.TypeWorkOrder,
			}
			return append(items, workOrder), nil
		}
		return nil, apperr.ErrNotFound
	})
	if err != nil {
		return model.MaintenanceItem{}, err
	}
	return workOrder, nil
}
