// Package mirror supplies the read-only contract summary for a property.
// The shipped client is a deterministic stand-in for a ledger query; a real
// implementation slots in behind the same interface.
package mirror

import (
	"context"
	"fmt"
	"hash/fnv"
	"time"

	"github.com/patrickmn/go-cache"

	"blockfix-backend/internal/model"
)

// Summary is the financial/activity projection for one property contract.
// It is recomputed on every fetch and never persisted.
type Summary struct {
	Address          string    `json:"address"`
	OwnerAddress     string    `json:"ownerAddress"`
	PropertyID       string    `json:"propertyId"`
	MaintenanceCount int       `json:"maintenanceCount"`
	TotalExpenses    int       `json:"totalExpenses"`
	LastUpdated      time.Time `json:"lastUpdated"`
}

// Client fetches the contract summary for a property. Implementations
// must honor ctx cancellation and define their own timeout policy.
type Client interface {
	FetchContractSummary(ctx context.Context, property model.Property) (Summary, error)
}

// MockClient derives summary figures from a hash of the property id after
// a simulated network delay, so repeated fetches of the same property
// agree with each other. Results are cached for the configured TTL.
type MockClient struct {
	latency time.Duration
	cache   *cache.Cache
}

// NewMockClient creates a mock mirror with the given simulated latency
// and summary cache TTL.
func NewMockClient(latency, cacheTTL time.Duration) *MockClient {
	return &MockClient{
		latency: latency,
		cache:   cache.New(cacheTTL, 2*cacheTTL),
	}
}

// FetchContractSummary returns the summary for the property's contract.
// Properties without a contract address yield an error.
func (c *MockClient) FetchContractSummary(ctx context.Context, property model.Property) (Summary, error) {
	if property.ContractAddress == "" {
		return Summary{}, fmt.Errorf("property %s has no contract address", property.ID)
	}

	if cached, found := c.cache.Get(property.ID); found {
		return cached.(Summary), nil
	}

	select {
	case <-time.After(c.latency):
	case <-ctx.Done():
		return Summary{}, ctx.Err()
	}

	h := fnv.New64a()
	h.Write([]byte(property.ID))
	seed := h.Sum64()

	summary := Summary{
		Address:          property.ContractAddress,
		OwnerAddress:     "0x1234567890abcdef1234567890abcdef12345678",
		PropertyID:       property.ID,
		MaintenanceCount: int(seed % 10),
		TotalExpenses:    int(seed % 100000),
		LastUpdated:      time.Now().UTC(),
	}

	c.cache.Set(property.ID, summary, cache.DefaultExpiration)
	return summary, nil
}
