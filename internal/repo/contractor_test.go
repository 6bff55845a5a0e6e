package repo

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blockfix-backend/internal/apperr"
	"blockfix-backend/internal/model"
)

func validContractor() CreateContractorInput {
	return CreateContractorInput{
		Name:         "Ada Reyes",
		Specialty:    "Roofing",
		Rating:       4,
		Phone:        "(555) 987-6543",
		Email:        "ada@example.com",
		Availability: model.Available,
	}
}

func TestContractorRepo_CreateForcesZeroCompletedJobs(t *testing.T) {
	r := NewContractorRepo(newTestStore(t))

	contractor, err := r.Create(context.Background(), validContractor())
	require.NoError(t, err)

	assert.Equal(t, 0, contractor.CompletedJobs)
	assert.NotEmpty(t, contractor.ID)
	assert.False(t, contractor.JoinedDate.IsZero())
}

func TestContractorRepo_CreateValidation(t *testing.T) {
	r := NewContractorRepo(newTestStore(t))
	ctx := context.Background()

	bad := validContractor()
	bad.Rating = 6
	_, err := r.Create(ctx, bad)
	assert.True(t, apperr.IsValidation(err))

	bad = validContractor()
	bad.Availability = "OnVacation"
	_, err = r.Create(ctx, bad)
	assert.True(t, apperr.IsValidation(err))

	bad = validContractor()
	bad.Name = ""
	_, err = r.Create(ctx, bad)
	assert.True(t, apperr.IsValidation(err))
}

func TestContractorRepo_UpdateAndDelete(t *testing.T) {
	r := NewContractorRepo(newTestStore(t))
	ctx := context.Background()

	contractor, err := r.Create(ctx, validContractor())
	require.NoError(t, err)

	busy := model.Busy
	jobs := 7
	updated, err := r.Update(ctx, contractor.ID, ContractorUpdate{Availability: &busy, CompletedJobs: &jobs})
	require.NoError(t, err)
	assert.Equal(t, model.Busy, updated.Availability)
	assert.Equal(t, 7, updated.CompletedJobs)
	assert.Equal(t, contractor.Name, updated.Name)

	badRating := 9
	_, err = r.Update(ctx, contractor.ID, ContractorUpdate{Rating: &badRating})
	assert.True(t, apperr.IsValidation(err))

	_, err = r.Update(ctx, "ghost", ContractorUpdate{Availability: &busy})
	assert.ErrorIs(t, err, apperr.ErrNotFound)

	assert.NoError(t, r.Delete(ctx, "ghost"))
	assert.NoError(t, r.Delete(ctx, contractor.ID))

	contractors, err := r.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, contractors)
}
