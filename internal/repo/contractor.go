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

// CreateContractorInput is the caller-supplied part of a new contractor.
// CompletedJobs is not accepted: new contractors always start at zero.
type CreateContractorInput struct {
	Name         string             `json:"name"`
	Specialty    string             `json:"specialty"`
	Rating       int                `json:"rating"`
	Phone        string             `json:"phone"`
	Email        string             `json:"email"`
	Availability model.Availability `json:"availability"`
}

// ContractorUpdate is a partial update; nil fields are left untouched.
type ContractorUpdate struct {
	Name          *string             `json:"name"`
	Specialty     *string             `json:"specialty"`
	Rating        *int                `json:"rating"`
	Phone         *string             `json:"phone"`
	Email         *string             `json:"email"`
	Availability  *model.Availability `json:"availability"`
	CompletedJobs *int                `json:"completedJobs"`
}

// ContractorRepo owns the contractors collection.
type ContractorRepo struct {
	store store.Store
	mu    sync.Mutex
}

// NewContractorRepo creates a contractor repository over the given store.
func NewContractorRepo(s store.Store) *ContractorRepo {
	return &ContractorRepo{store: s}
}

// Seed writes the sample roster if the collection is empty.
func (r *ContractorRepo) Seed(ctx context.Context) error {
	return r.store.EnsureSeeded(ctx, CollectionContractors, seedJSON(seedContractors()))
}

// List returns all contractors.
func (r *ContractorRepo) List(ctx context.Context) ([]model.Contractor, error) {
	return loadAll[model.Contractor](ctx, r.store, CollectionContractors)
}

// Create validates the input, forces CompletedJobs to zero, stamps
// identity and join date, and appends the contractor.
func (r *ContractorRepo) Create(ctx context.Context, input CreateContractorInput) (model.Contractor, error) {
	if err := validateContractor(input); err != nil {
		return model.Contractor{}, err
	}

	contractor := model.Contractor{
		ID:           uuid.NewString(),
		Name:         input.Name,
		Specialty:    input.Specialty,
		Rating:       input.Rating,
		Phone:        input.Phone,
		Email:        input.Email,
		Availability: input.Availability,
		JoinedDate:   time.Now().UTC(),
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	contractors, err := r.List(ctx)
	if err != nil {
		return model.Contractor{}, err
	}
	contractors = append(contractors, contractor)
	if err := saveAll(ctx, r.store, CollectionContractors, contractors); err != nil {
		return model.Contractor{}, err
	}
	return contractor, nil
}

// Update merges the non-nil fields of update into the stored contractor.
func (r *ContractorRepo) Update(ctx context.Context, id string, update ContractorUpdate) (model.Contractor, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	contractors, err := r.List(ctx)
	if err != nil {
		return model.Contractor{}, err
	}
	for i := range contractors {
		if contractors[i].ID != id {
			continue
		}
		if err := applyContractorUpdate(&contractors[i], update); err != nil {
			return model.Contractor{}, err
		}
		if err := saveAll(ctx, r.store, CollectionContractors, contractors); err != nil {
			return model.Contractor{}, err
		}
		return contractors[i], nil
	}
	return model.Contractor{}, apperr.ErrNotFound
}

// Delete removes the contractor. A missing id is a silent no-op.
func (r *ContractorRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	contractors, err := r.List(ctx)
	if err != nil {
		return err
	}
	remaining := contractors[:0]
	for _, c := range contractors {
		if c.ID != id {
			remaining = append(remaining, c)
		}
	}
	return saveAll(ctx, r.store, CollectionContractors, remaining)
}

func applyContractorUpdate(c *model.Contractor, update ContractorUpdate) error {
	if update.Rating != nil && (*update.Rating < 0 || *update.Rating > 5) {
		return &apperr.ValidationError{Field: "rating", Reason: "must be between 0 and 5"}
	}
	if update.Availability != nil && !model.ValidAvailability(*update.Availability) {
		return &apperr.ValidationError{Field: "availability", Reason: "must be Available, Busy or Unavailable"}
	}
	if update.CompletedJobs != nil && *update.CompletedJobs < 0 {
		return &apperr.ValidationError{Field: "completedJobs", Reason: "must not be negative"}
	}
	if update.Name != nil {
		c.Name = *update.Name
	}
	if update.Specialty != nil {
		c.Specialty = *update.Specialty
	}
	if update.Rating != nil {
		c.Rating = *update.Rating
	}
	if update.Phone != nil {
		c.Phone = *update.Phone
	}
	if update.Email != nil {
		c.Email = *update.Email
	}
	if update.Availability != nil {
		c.Availability = *update.Availability
	}
	if update.CompletedJobs != nil {
		c.CompletedJobs = *update.CompletedJobs
	}
	return nil
}

func validateContractor(input CreateContractorInput) error {
	if strings.TrimSpace(input.Name) == "" {
		return &apperr.ValidationError{Field: "name", Reason: "must not be empty"}
	}
	if input.Rating < 0 || input.Rating > 5 {
		return &apperr.ValidationError{Field: "rating", Reason: "must be between 0 and 5"}
	}
	if !model.ValidAvailability(input.Availability) {
		return &apperr.ValidationError{Field: "availability", Reason: "must be Available, Busy or Unavailable"}
	}
	return nil
}
