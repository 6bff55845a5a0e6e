// Package analytics computes dashboard statistics and report aggregates.
// Everything here is a pure function over repository snapshots; nothing is
// cached or persisted except the frozen report snapshots the Generator
// writes.
package analytics

import (
	"time"

	"blockfix-backend/internal/model"
)

// PropertyStats summarizes the property portfolio for the dashboard.
type PropertyStats struct {
	Total  int     `json:"total"`
	Active int     `json:"active"`
	Trend  float64 `json:"trend"`
}

// MaintenanceStats summarizes maintenance activity for the dashboard.
type MaintenanceStats struct {
	Pending int     `json:"pending"`
	Total   int     `json:"total"`
	Trend   float64 `json:"trend"`
}

// CompletionStats summarizes work completion for the dashboard.
type CompletionStats struct {
	Rate  float64 `json:"rate"`
	Trend float64 `json:"trend"`
}

// DashboardStats is the headline stat block of the dashboard.
type DashboardStats struct {
	Properties  PropertyStats    `json:"properties"`
	Maintenance MaintenanceStats `json:"maintenance"`
	Completion  CompletionStats  `json:"completion"`
}

// TrendPoint is one month of the maintenance trend series.
type TrendPoint struct {
	Month    string `json:"month"`
	Requests int    `json:"requests"`
}

// BreakdownPoint is one slice of a categorical breakdown.
type BreakdownPoint struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

// ComputeDashboardStats derives the dashboard stat block from the current
// snapshots. The property trend is the normalized active delta
// (active% - 100); the maintenance trend is month-over-month change of
// created items, reported as 0 when last month had none.
func ComputeDashboardStats(properties []model.Property, items []model.MaintenanceItem, now time.Time) DashboardStats {
	var stats DashboardStats

	stats.Properties.Total = len(properties)
	for _, p := range properties {
		if p.Status == model.PropertyActive {
			stats.Properties.Active++
		}
	}
	if stats.Properties.Total > 0 {
		active := float64(stats.Properties.Active)
		total := float64(stats.Properties.Total)
		stats.Properties.Trend = active/total*100 - 100
	}

	stats.Maintenance.Total = len(items)
	var completed int
	for _, item := range items {
		switch item.Status {
		case model.StatusPending:
			stats.Maintenance.Pending++
		case model.StatusCompleted:
			completed++
		}
	}

	thisMonth := countInMonth(items, now)
	lastMonth := countInMonth(items, monthStart(now).AddDate(0, -1, 0))
	if lastMonth > 0 {
		stats.Maintenance.Trend = float64(thisMonth-lastMonth) / float64(lastMonth) * 100
	}

	if stats.Maintenance.Total > 0 {
		stats.Completion.Rate = float64(completed) / float64(stats.Maintenance.Total) * 100
	}
	// A completion trend would need historical snapshots; it stays 0.

	return stats
}

// MonthlyTrend buckets items by creation month over the trailing six
// calendar months including the current one, oldest first.
func MonthlyTrend(items []model.MaintenanceItem, now time.Time) []TrendPoint {
	points := make([]TrendPoint, 0, 6)
	for i := 5; i >= 0; i-- {
		start := monthStart(now).AddDate(0, -i, 0)
		end := start.AddDate(0, 1, 0)

		point := TrendPoint{Month: start.Format("Jan")}
		for _, item := range items {
			d := item.RequestedDate
			if !d.Before(start) && d.Before(end) {
				point.Requests++
			}
		}
		points = append(points, point)
	}
	return points
}

// PropertyDistribution counts properties per type, in the fixed
// Commercial / Residential / Industrial order, skipping empty slices.
func PropertyDistribution(properties []model.Property) []BreakdownPoint {
	counts := make(map[model.PropertyType]int)
	for _, p := range properties {
		counts[p.Type]++
	}

	order := []model.PropertyType{model.PropertyCommercial, model.PropertyResidential, model.PropertyIndustrial}
	points := make([]BreakdownPoint, 0, len(order))
	for _, t := range order {
		if counts[t] > 0 {
			points = append(points, BreakdownPoint{Name: string(t), Value: counts[t]})
		}
	}
	return points
}

// MaintenanceByType splits items into work orders and requests.
func MaintenanceByType(items []model.MaintenanceItem) []BreakdownPoint {
	var workOrders, requests int
	for _, item := range items {
		if item.Type == model.TypeWorkOrder {
			workOrders++
		} else {
			requests++
		}
	}
	return []BreakdownPoint{
		{Name: "Work Orders", Value: workOrders},
		{Name: "Requests", Value: requests},
	}
}

func countInMonth(items []model.MaintenanceItem, ref time.Time) int {
	var n int
	for _, item := range items {
		d := item.RequestedDate
		if d.Year() == ref.Year() && d.Month() == ref.Month() {
			n++
		}
	}
	return n
}

func monthStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}
