package mirror

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blockfix-backend/internal/model"
)

func testProperty() model.Property {
	return model.Property{
		ID:              "prop-1",
		Name:            "Harbor View Offices",
		ContractAddress: "0x6f2c1d0e9b8a7c6d5e4f3a2b1c0d9e8f7a6b5c4d",
	}
}

func TestMockClient_FetchIsDeterministicPerProperty(t *testing.T) {
	ctx := context.Background()
	property := testProperty()

	first, err := NewMockClient(0, time.Minute).FetchContractSummary(ctx, property)
	require.NoError(t, err)

	// A fresh client with a cold cache derives the same figures.
	second, err := NewMockClient(0, time.Minute).FetchContractSummary(ctx, property)
	require.NoError(t, err)

	assert.Equal(t, first.MaintenanceCount, second.MaintenanceCount)
	assert.Equal(t, first.TotalExpenses, second.TotalExpenses)
	assert.Equal(t, property.ContractAddress, first.Address)
	assert.Equal(t, property.ID, first.PropertyID)
	assert.NotEmpty(t, first.OwnerAddress)
}

func TestMockClient_DifferentPropertiesDiffer(t *testing.T) {
	ctx := context.Background()
	client := NewMockClient(0, time.Minute)

	a := testProperty()
	b := testProperty()
	b.ID = "prop-2"

	sa, err := client.FetchContractSummary(ctx, a)
	require.NoError(t, err)
	sb, err := client.FetchContractSummary(ctx, b)
	require.NoError(t, err)

	assert.NotEqual(t,
		[2]int{sa.MaintenanceCount, sa.TotalExpenses},
		[2]int{sb.MaintenanceCount, sb.TotalExpenses})
}

func TestMockClient_RejectsMissingContractAddress(t *testing.T) {
	client := NewMockClient(0, time.Minute)

	property := testProperty()
	property.ContractAddress = ""

	_, err := client.FetchContractSummary(context.Background(), property)
	assert.Error(t, err)
}

func TestMockClient_HonorsContextCancellation(t *testing.T) {
	client := NewMockClient(time.Minute, time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := client.FetchContractSummary(ctx, testProperty())
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestMockClient_CacheSkipsLatency(t *testing.T) {
	client := NewMockClient(50*time.Millisecond, time.Minute)
	ctx := context.Background()
	property := testProperty()

	warm, err := client.FetchContractSummary(ctx, property)
	require.NoError(t, err)

	// The cached fetch must not pay the simulated latency again.
	start := time.Now()
	cached, err := client.FetchContractSummary(ctx, property)
	require.NoError(t, err)
	assert.Less(t, time.Since(start), 50*time.Millisecond)
	assert.Equal(t, warm, cached)
}
