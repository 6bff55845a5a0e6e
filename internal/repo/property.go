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

// CreatePropertyInput is the caller-supplied part of a new property.
type CreatePropertyInput struct {
	Name    string             `json:"name"`
	Address string             `json:"address"`
	Type    model.PropertyType `json:"type"`
	Size    int                `json:"size"`
}

// PropertyRepo owns the properties collection. Properties have no update
// or delete operation.
type PropertyRepo struct {
	store store.Store
	mu    sync.Mutex
}

// NewPropertyRepo creates a property repository over the given store.
func NewPropertyRepo(s store.Store) *PropertyRepo {
	return &PropertyRepo{store: s}
}

// Seed writes the sample properties if the collection is empty.
func (r *PropertyRepo) Seed(ctx context.Context) error {
	return r.store.EnsureSeeded(ctx, CollectionProperties, seedJSON(seedProperties()))
}

// List returns all properties.
func (r *PropertyRepo) List(ctx context.Context) ([]model.Property, error) {
	return loadAll[model.Property](ctx, r.store, CollectionProperties)
}

// Get returns the property with the given id.
func (r *PropertyRepo) Get(ctx context.Context, id string) (model.Property, error) {
	properties, err := r.List(ctx)
	if err != nil {
		return model.Property{}, err
	}
	for _, p := range properties {
		if p.ID == id {
			return p, nil
		}
	}
	return model.Property{}, apperr.ErrNotFound
}

// Create validates the input, assigns identity and defaults, and appends
// the property to the collection. A contract address is minted at
// creation; the mirror derives its summary from it on read.
func (r *PropertyRepo) Create(ctx context.Context, input CreatePropertyInput) (model.Property, error) {
	if err := validateProperty(input); err != nil {
		return model.Property{}, err
	}

	property := model.Property{
		ID:              uuid.NewString(),
		Name:            input.Name,
		Address:         input.Address,
		Type:            input.Type,
		Size:            input.Size,
		Status:          model.PropertyActive,
		CreatedAt:       time.Now().UTC(),
		ContractAddress: newContractAddress(),
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	properties, err := r.List(ctx)
	if err != nil {
		return model.Property{}, err
	}
	properties = append(properties, property)
	if err := saveAll(ctx, r.store, CollectionProperties, properties); err != nil {
		return model.Property{}, err
	}
	return property, nil
}

func validateProperty(input CreatePropertyInput) error {
	if strings.TrimSpace(input.Name) == "" {
		return &apperr.ValidationError{Field: "name", Reason: "must not be empty"}
	}
	if strings.TrimSpace(input.Address) == "" {
		return &apperr.ValidationError{Field: "address", Reason: "must not be empty"}
	}
	if !model.ValidPropertyType(input.Type) {
		return &apperr.ValidationError{Field: "type", Reason: "must be Commercial, Residential or Industrial"}
	}
	if input.Size <= 0 {
		return &apperr.ValidationError{Field: "size", Reason: "must be a positive square footage"}
	}
	return nil
}

// newContractAddress mints a demo contract reference the way the
// dashboard always has: a hex string derived from a fresh uuid.
func newContractAddress() string {
	return "0x" + strings.ReplaceAll(uuid.NewString(), "-", "")
}
