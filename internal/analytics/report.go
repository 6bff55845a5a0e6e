package analytics

import (
	"context"
	"time"

	"github.com/google/uuid"

	"blockfix-backend/internal/apperr"
	"blockfix-backend/internal/model"
	"blockfix-backend/internal/repo"
)

// Generator builds category reports from the current repository snapshots
// and persists each one as an immutable point-in-time record.
type Generator struct {
	properties  *repo.PropertyRepo
	items       *repo.MaintenanceRepo
	contractors *repo.ContractorRepo
	reports     *repo.ReportRepo
}

// NewGenerator wires a report generator over the source repositories.
func NewGenerator(properties *repo.PropertyRepo, items *repo.MaintenanceRepo, contractors *repo.ContractorRepo, reports *repo.ReportRepo) *Generator {
	return &Generator{
		properties:  properties,
		items:       items,
		contractors: contractors,
		reports:     reports,
	}
}

// Generate computes the aggregate for the category, freezes it into a new
// report and appends it to the reports collection. Earlier reports of the
// same category are never touched.
func (g *Generator) Generate(ctx context.Context, category model.ReportCategory) (model.Report, error) {
	report := model.Report{
		ID:            uuid.NewString(),
		Type:          model.FormatPDF,
		Category:      category,
		GeneratedDate: time.Now().UTC(),
	}

	switch category {
	case model.CategoryMaintenance:
		items, err := g.items.List(ctx)
		if err != nil {
			return model.Report{}, err
		}
		report.Title = "Maintenance Summary"
		report.Description = "Overview of maintenance activities and status"
		report.Data = &model.ReportData{Maintenance: BuildMaintenanceSummary(items)}

	case model.CategoryProperty:
		properties, err := g.properties.List(ctx)
		if err != nil {
			return model.Report{}, err
		}
		report.Title = "Property Status Report"
		report.Description = "Overview of property portfolio and statistics"
		report.Data = &model.ReportData{Property: BuildPropertySummary(properties)}

	case model.CategoryContractor:
		contractors, err := g.contractors.List(ctx)
		if err != nil {
			return model.Report{}, err
		}
		report.Title = "Contractor Performance Report"
		report.Description = "Overview of contractor metrics and performance"
		report.Data = &model.ReportData{Contractor: BuildContractorSummary(contractors)}

	default:
		return model.Report{}, &apperr.ValidationError{Field: "category", Reason: "must be Maintenance, Property or Contractor"}
	}

	if err := g.reports.Insert(ctx, report); err != nil {
		return model.Report{}, err
	}
	return report, nil
}

// BuildMaintenanceSummary aggregates maintenance items by status and priority.
func BuildMaintenanceSummary(items []model.MaintenanceItem) *model.MaintenanceSummary {
	summary := &model.MaintenanceSummary{
		Total:      len(items),
		ByPriority: map[string]int{"high": 0, "medium": 0, "low": 0},
	}
	for _, item := range items {
		switch item.Status {
		case model.StatusPending:
			summary.Pending++
		case model.StatusCompleted:
			summary.Completed++
		}
		switch item.Priority {
		case model.PriorityHigh:
			summary.ByPriority["high"]++
		case model.PriorityMedium:
			summary.ByPriority["medium"]++
		case model.PriorityLow:
			summary.ByPriority["low"]++
		}
	}
	return summary
}

// BuildPropertySummary aggregates the portfolio by type and total area.
func BuildPropertySummary(properties []model.Property) *model.PropertySummary {
	summary := &model.PropertySummary{
		Total:  len(properties),
		ByType: map[string]int{"commercial": 0, "residential": 0, "industrial": 0},
	}
	for _, p := range properties {
		switch p.Type {
		case model.PropertyCommercial:
			summary.ByType["commercial"]++
		case model.PropertyResidential:
			summary.ByType["residential"]++
		case model.PropertyIndustrial:
			summary.ByType["industrial"]++
		}
		summary.TotalArea += p.Size
	}
	return summary
}

// BuildContractorSummary aggregates roster size, rating and job counts.
// An empty roster yields an average rating of 0 rather than dividing by
// zero.
func BuildContractorSummary(contractors []model.Contractor) *model.ContractorSummary {
	summary := &model.ContractorSummary{Total: len(contractors)}
	if len(contractors) == 0 {
		return summary
	}
	var ratingSum int
	for _, c := range contractors {
		ratingSum += c.Rating
		summary.TotalJobs += c.CompletedJobs
	}
	summary.AverageRating = float64(ratingSum) / float64(len(contractors))
	return summary
}
