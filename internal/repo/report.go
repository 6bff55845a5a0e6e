package repo

import (
	"context"
	"sync"

	"blockfix-backend/internal/apperr"
	"blockfix-backend/internal/model"
	"blockfix-backend/internal/store"
)

// ReportRepo owns the reports collection. Reports are appended once with
// frozen data and never updated in place.
type ReportRepo struct {
	store store.Store
	mu    sync.Mutex
}

// NewReportRepo creates a report repository over the given store.
func NewReportRepo(s store.Store) *ReportRepo {
	return &ReportRepo{store: s}
}

// Seed writes the sample reports if the collection is empty.
func (r *ReportRepo) Seed(ctx context.Context) error {
	return r.store.EnsureSeeded(ctx, CollectionReports, seedJSON(seedReports()))
}

// List returns all reports.
func (r *ReportRepo) List(ctx context.Context) ([]model.Report, error) {
	return loadAll[model.Report](ctx, r.store, CollectionReports)
}

// Get returns the report with the given id.
func (r *ReportRepo) Get(ctx context.Context, id string) (model.Report, error) {
	reports, err := r.List(ctx)
	if err != nil {
		return model.Report{}, err
	}
	for _, report := range reports {
		if report.ID == id {
			return report, nil
		}
	}
	return model.Report{}, apperr.ErrNotFound
}

// Insert appends a fully-formed report snapshot.
func (r *ReportRepo) Insert(ctx context.Context, report model.Report) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	reports, err := r.List(ctx)
	if err != nil {
		return err
	}
	reports = append(reports, report)
	return saveAll(ctx, r.store, CollectionReports, reports)
}

// Delete removes the report. A missing id is a silent no-op.
func (r *ReportRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	reports, err := r.List(ctx)
	if err != nil {
		return err
	}
	remaining := reports[:0]
	for _, report := range reports {
		if report.ID != id {
			remaining = append(remaining, report)
		}
	}
	return saveAll(ctx, r.store, CollectionReports, remaining)
}
