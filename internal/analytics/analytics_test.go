package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"blockfix-backend/internal/model"
)

func itemAt(status model.MaintenanceStatus, priority model.Priority, requested time.Time) model.MaintenanceItem {
	return model.MaintenanceItem{
		Status:        status,
		Priority:      priority,
		RequestedDate: requested,
		Type:          model.TypeRequest,
	}
}

func TestComputeDashboardStats(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

	properties := []model.Property{
		{Status: model.PropertyActive, Type: model.PropertyCommercial},
		{Status: model.PropertyActive, Type: model.PropertyResidential},
		{Status: model.PropertyInactive, Type: model.PropertyIndustrial},
		{Status: model.PropertyActive, Type: model.PropertyCommercial},
	}
	items := []model.MaintenanceItem{
		itemAt(model.StatusPending, model.PriorityHigh, now),
		itemAt(model.StatusCompleted, model.PriorityLow, now.AddDate(0, -1, 0)),
		itemAt(model.StatusInProgress, model.PriorityMedium, now.AddDate(0, -1, 0)),
		itemAt(model.StatusPending, model.PriorityLow, now),
	}

	stats := ComputeDashboardStats(properties, items, now)

	assert.Equal(t, 4, stats.Properties.Total)
	assert.Equal(t, 3, stats.Properties.Active)
	assert.InDelta(t, -25.0, stats.Properties.Trend, 0.0001)

	assert.Equal(t, 4, stats.Maintenance.Total)
	assert.Equal(t, 2, stats.Maintenance.Pending)
	// 2 items last month, 2 this month: no change.
	assert.InDelta(t, 0.0, stats.Maintenance.Trend, 0.0001)

	// 1 completed out of 4.
	assert.InDelta(t, 25.0, stats.Completion.Rate, 0.0001)
	assert.Zero(t, stats.Completion.Trend)
}

func TestComputeDashboardStats_EmptySnapshots(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

	stats := ComputeDashboardStats(nil, nil, now)

	assert.Zero(t, stats.Properties.Trend)
	assert.Zero(t, stats.Maintenance.Trend)
	assert.Zero(t, stats.Completion.Rate)
}

func TestComputeDashboardStats_TrendGuardsZeroLastMonth(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

	// 0 items last month, 5 this month: trend must be 0, not infinity.
	var items []model.MaintenanceItem
	for i := 0; i < 5; i++ {
		items = append(items, itemAt(model.StatusPending, model.PriorityLow, now))
	}

	stats := ComputeDashboardStats(nil, items, now)
	assert.Zero(t, stats.Maintenance.Trend)
}

func TestMonthlyTrend(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

	items := []model.MaintenanceItem{
		// Current month.
		itemAt(model.StatusPending, model.PriorityLow, time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)),
		itemAt(model.StatusPending, model.PriorityLow, time.Date(2024, 6, 30, 23, 59, 59, 0, time.UTC)),
		// Three months back.
		itemAt(model.StatusPending, model.PriorityLow, time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)),
		// Outside the window.
		itemAt(model.StatusPending, model.PriorityLow, time.Date(2023, 12, 31, 0, 0, 0, 0, time.UTC)),
		itemAt(model.StatusPending, model.PriorityLow, time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC)),
	}

	points := MonthlyTrend(items, now)

	assert.Equal(t, []TrendPoint{
		{Month: "Jan", Requests: 0},
		{Month: "Feb", Requests: 0},
		{Month: "Mar", Requests: 1},
		{Month: "Apr", Requests: 0},
		{Month: "May", Requests: 0},
		{Month: "Jun", Requests: 2},
	}, points)
}

func TestMonthlyTrend_YearBoundary(t *testing.T) {
	now := time.Date(2024, 2, 10, 0, 0, 0, 0, time.UTC)

	items := []model.MaintenanceItem{
		itemAt(model.StatusPending, model.PriorityLow, time.Date(2023, 9, 5, 0, 0, 0, 0, time.UTC)),
		itemAt(model.StatusPending, model.PriorityLow, time.Date(2023, 12, 25, 0, 0, 0, 0, time.UTC)),
	}

	points := MonthlyTrend(items, now)

	assert.Len(t, points, 6)
	assert.Equal(t, "Sep", points[0].Month)
	assert.Equal(t, 1, points[0].Requests)
	assert.Equal(t, "Dec", points[3].Month)
	assert.Equal(t, 1, points[3].Requests)
	assert.Equal(t, "Feb", points[5].Month)
}

func TestPropertyDistribution(t *testing.T) {
	properties := []model.Property{
		{Type: model.PropertyResidential},
		{Type: model.PropertyCommercial},
		{Type: model.PropertyResidential},
	}

	assert.Equal(t, []BreakdownPoint{
		{Name: "Commercial", Value: 1},
		{Name: "Residential", Value: 2},
	}, PropertyDistribution(properties))
}

func TestMaintenanceByType(t *testing.T) {
	items := []model.MaintenanceItem{
		{Type: model.TypeWorkOrder},
		{Type: model.TypeRequest},
		{Type: model.TypeRequest},
	}

	assert.Equal(t, []BreakdownPoint{
		{Name: "Work Orders", Value: 1},
		{Name: "Requests", Value: 2},
	}, MaintenanceByType(items))
}
