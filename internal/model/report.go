package model

import "time"

// ReportCategory selects which aggregate a report snapshots.
type ReportCategory string

const (
	CategoryMaintenance ReportCategory = "Maintenance"
	CategoryProperty    ReportCategory = "Property"
	CategoryContractor  ReportCategory = "Contractor"
)

// ReportFormat is a display label only; no file rendering happens here.
type ReportFormat string

const (
	FormatPDF   ReportFormat = "PDF"
	FormatExcel ReportFormat = "Excel"
)

// MaintenanceSummary is the frozen aggregate for a Maintenance report.
type MaintenanceSummary struct {
	Total      int            `json:"total"`
	Pending    int            `json:"pending"`
	Completed  int            `json:"completed"`
	ByPriority map[string]int `json:"byPriority"`
}

// PropertySummary is the frozen aggregate for a Property report.
type PropertySummary struct {
	Total     int            `json:"total"`
	ByType    map[string]int `json:"byType"`
	TotalArea int            `json:"totalArea"`
}

// ContractorSummary is the frozen aggregate for a Contractor report.
type ContractorSummary struct {
	Total         int     `json:"total"`
	AverageRating float64 `json:"averageRating"`
	TotalJobs     int     `json:"totalJobs"`
}

// ReportData is a tagged union keyed by the owning report's category:
// exactly one field is non-nil.
type ReportData struct {
	Maintenance *MaintenanceSummary `json:"maintenance,omitempty"`
	Property    *PropertySummary    `json:"property,omitempty"`
	Contractor  *ContractorSummary  `json:"contractor,omitempty"`
}

// Report is a point-in-time snapshot. Data is computed once at generation
// and never recomputed on later reads.
type Report struct {
	ID            string         `json:"id"`
	Title         string         `json:"title"`
	Description   string         `json:"description"`
	Type          ReportFormat   `json:"type"`
	Category      ReportCategory `json:"category"`
	GeneratedDate time.Time      `json:"generatedDate"`
	Data          *ReportData    `json:"data"`
}

// ValidReportCategory reports whether c is a known category.
func ValidReportCategory(c ReportCategory) bool {
	switch c {
	case CategoryMaintenance, CategoryProperty, CategoryContractor:
		return true
	}
	return false
}
