package analytics

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"blockfix-backend/internal/model"
	"blockfix-backend/internal/repo"
	"blockfix-backend/internal/store"
)

type generatorFixture struct {
	gen         *Generator
	properties  *repo.PropertyRepo
	items       *repo.MaintenanceRepo
	contractors *repo.ContractorRepo
	reports     *repo.ReportRepo
}

func newGenerator(t *testing.T) generatorFixture {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.Collection{}))

	s := store.NewGormStore(db)
	f := generatorFixture{
		properties:  repo.NewPropertyRepo(s),
		items:       repo.NewMaintenanceRepo(s),
		contractors: repo.NewContractorRepo(s),
		reports:     repo.NewReportRepo(s),
	}
	f.gen = NewGenerator(f.properties, f.items, f.contractors, f.reports)
	return f
}

func createItem(t *testing.T, items *repo.MaintenanceRepo, priority model.Priority) model.MaintenanceItem {
	t.Helper()
	item, err := items.Create(context.Background(), repo.CreateMaintenanceInput{
		Title:    "Task",
		Property: "Somewhere",
		Priority: priority,
		Type:     model.TypeRequest,
	})
	require.NoError(t, err)
	return item
}

func TestGenerator_MaintenanceReportAggregates(t *testing.T) {
	f := newGenerator(t)
	ctx := context.Background()

	// Three items with priorities High/Medium/Low and statuses
	// Pending/Completed/Pending.
	createItem(t, f.items, model.PriorityHigh)
	second := createItem(t, f.items, model.PriorityMedium)
	createItem(t, f.items, model.PriorityLow)

	completed := model.StatusCompleted
	_, err := f.items.Update(ctx, second.ID, repo.MaintenanceUpdate{Status: &completed})
	require.NoError(t, err)

	report, err := f.gen.Generate(ctx, model.CategoryMaintenance)
	require.NoError(t, err)

	require.NotNil(t, report.Data)
	require.NotNil(t, report.Data.Maintenance)
	assert.Nil(t, report.Data.Property)
	assert.Nil(t, report.Data.Contractor)

	summary := report.Data.Maintenance
	assert.Equal(t, 3, summary.Total)
	assert.Equal(t, 2, summary.Pending)
	assert.Equal(t, 1, summary.Completed)
	assert.Equal(t, map[string]int{"high": 1, "medium": 1, "low": 1}, summary.ByPriority)
}

func TestGenerator_ReportsAreFrozenSnapshots(t *testing.T) {
	f := newGenerator(t)
	ctx := context.Background()

	createItem(t, f.items, model.PriorityHigh)

	report, err := f.gen.Generate(ctx, model.CategoryMaintenance)
	require.NoError(t, err)
	require.Equal(t, 1, report.Data.Maintenance.Total)

	// New source data must not leak into the stored report.
	createItem(t, f.items, model.PriorityLow)

	reloaded, err := f.reports.Get(ctx, report.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, reloaded.Data.Maintenance.Total)

	// Regeneration appends a new independent snapshot.
	fresh, err := f.gen.Generate(ctx, model.CategoryMaintenance)
	require.NoError(t, err)
	assert.NotEqual(t, report.ID, fresh.ID)
	assert.Equal(t, 2, fresh.Data.Maintenance.Total)

	reports, err := f.reports.List(ctx)
	require.NoError(t, err)
	assert.Len(t, reports, 2)
}

func TestGenerator_PropertyReportAggregates(t *testing.T) {
	f := newGenerator(t)
	ctx := context.Background()

	inputs := []repo.CreatePropertyInput{
		{Name: "A", Address: "1 St", Type: model.PropertyCommercial, Size: 1000},
		{Name: "B", Address: "2 St", Type: model.PropertyResidential, Size: 2000},
		{Name: "C", Address: "3 St", Type: model.PropertyResidential, Size: 500},
	}
	for _, in := range inputs {
		_, err := f.properties.Create(ctx, in)
		require.NoError(t, err)
	}

	report, err := f.gen.Generate(ctx, model.CategoryProperty)
	require.NoError(t, err)

	summary := report.Data.Property
	require.NotNil(t, summary)
	assert.Equal(t, 3, summary.Total)
	assert.Equal(t, map[string]int{"commercial": 1, "residential": 2, "industrial": 0}, summary.ByType)
	assert.Equal(t, 3500, summary.TotalArea)
}

func TestGenerator_ContractorReportAggregates(t *testing.T) {
	f := newGenerator(t)
	ctx := context.Background()

	for _, rating := range []int{5, 4} {
		_, err := f.contractors.Create(ctx, repo.CreateContractorInput{
			Name:         "C",
			Rating:       rating,
			Availability: model.Available,
		})
		require.NoError(t, err)
	}

	report, err := f.gen.Generate(ctx, model.CategoryContractor)
	require.NoError(t, err)

	summary := report.Data.Contractor
	require.NotNil(t, summary)
	assert.Equal(t, 2, summary.Total)
	assert.InDelta(t, 4.5, summary.AverageRating, 0.0001)
}

func TestBuildContractorSummary_EmptyRoster(t *testing.T) {
	summary := BuildContractorSummary(nil)

	assert.Equal(t, 0, summary.Total)
	assert.Zero(t, summary.AverageRating, "empty roster must not divide by zero")
	assert.Zero(t, summary.TotalJobs)
}

func TestGenerator_UnknownCategory(t *testing.T) {
	f := newGenerator(t)

	_, err := f.gen.Generate(context.Background(), "Payroll")
	assert.Error(t, err)
}
