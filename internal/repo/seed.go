package repo

import (
	"time"

	"blockfix-backend/internal/model"
)

// Sample records written to empty collections on first start so the
// dashboard is not blank.

func seedProperties() []model.Property {
	return []model.Property{
		{
			ID:              "1",
			Name:            "Downtown Office Complex",
			Address:         "123 Business Ave, Downtown, NY 10001",
			Type:            model.PropertyCommercial,
			Size:            25000,
			Status:          model.PropertyActive,
			CreatedAt:       time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
			ContractAddress: "0x742d35Cc6634C0532925a3b844Bc454e4438f44e",
		},
		{
			ID:              "2",
			Name:            "Riverside Apartments",
			Address:         "456 River Road, Riverside, NY 10002",
			Type:            model.PropertyResidential,
			Size:            15000,
			Status:          model.PropertyActive,
			CreatedAt:       time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC),
			ContractAddress: "0x123d35Cc6634C0532925a3b844Bc454e4438f123",
		},
		{
			ID:              "3",
			Name:            "Tech Park Warehouse",
			Address:         "789 Industrial Blvd, Tech Park, NY 10003",
			Type:            model.PropertyIndustrial,
			Size:            50000,
			Status:          model.PropertyActive,
			CreatedAt:       time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC),
			ContractAddress: "0x456d35Cc6634C0532925a3b844Bc454e4438f456",
		},
	}
}

func seedMaintenanceItems() []model.MaintenanceItem {
	return []model.MaintenanceItem{
		{
			ID:            "1",
			Title:         "AC Not Working",
			Description:   "The air conditioning unit in room 203 is not cooling properly",
			PropertyID:    "1",
			Property:      "Downtown Office Complex",
			Priority:      model.PriorityHigh,
			Status:        model.StatusPending,
			RequestedBy:   "John Doe",
			RequestedDate: time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
			Type:          model.TypeRequest,
		},
		{
			ID:            "2",
			Title:         "Leaking Pipe",
			Description:   "Water leaking from bathroom ceiling",
			PropertyID:    "2",
			Property:      "Riverside Apartments",
			Priority:      model.PriorityMedium,
			Status:        model.StatusInProgress,
			RequestedBy:   "Jane Smith",
			RequestedDate: time.Date(2024, 3, 14, 0, 0, 0, 0, time.UTC),
			Type:          model.TypeRequest,
		},
		{
			ID:            "3",
			Title:         "Monthly HVAC Maintenance",
			Description:   "Regular maintenance and inspection of HVAC systems",
			PropertyID:    "3",
			Property:      "Tech Park Warehouse",
			Priority:      model.PriorityLow,
			Status:        model.StatusCompleted,
			RequestedBy:   "Maintenance Team",
			RequestedDate: time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC),
			Type:          model.TypeWorkOrder,
		},
	}
}

func seedContractors() []model.Contractor {
	return []model.Contractor{
		{
			ID:            "1",
			Name:          "John Smith",
			Specialty:     "HVAC Specialist",
			Rating:        5,
			Phone:         "(555) 123-4567",
			Email:         "john.smith@example.com",
			Availability:  model.Available,
			CompletedJobs: 45,
			JoinedDate:    time.Date(2023, 1, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			ID:            "2",
			Name:          "Sarah Johnson",
			Specialty:     "Electrical Engineer",
			Rating:        4,
			Phone:         "(555) 234-5678",
			Email:         "sarah.j@example.com",
			Availability:  model.Available,
			CompletedJobs: 32,
			JoinedDate:    time.Date(2023, 3, 20, 0, 0, 0, 0, time.UTC),
		},
		{
			ID:            "3",
			Name:          "Mike Wilson",
			Specialty:     "Plumbing Expert",
			Rating:        5,
			Phone:         "(555) 345-6789",
			Email:         "mike.w@example.com",
			Availability:  model.Busy,
			CompletedJobs: 58,
			JoinedDate:    time.Date(2022, 11, 5, 0, 0, 0, 0, time.UTC),
		},
	}
}

func seedReports() []model.Report {
	return []model.Report{
		{
			ID:            "1",
			Title:         "Maintenance Summary",
			Description:   "Monthly overview of maintenance activities and costs",
			Type:          model.FormatPDF,
			Category:      model.CategoryMaintenance,
			GeneratedDate: time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC),
		},
		{
			ID:            "2",
			Title:         "Property Status",
			Description:   "Current status and compliance of all properties",
			Type:          model.FormatExcel,
			Category:      model.CategoryProperty,
			GeneratedDate: time.Date(2024, 3, 14, 15, 30, 0, 0, time.UTC),
		},
	}
}
