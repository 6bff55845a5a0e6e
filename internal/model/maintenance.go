package model

import "time"

// Priority levels for maintenance work.
type Priority string

const (
	PriorityLow    Priority = "Low"
	PriorityMedium Priority = "Medium"
	PriorityHigh   Priority = "High"
)

// MaintenanceStatus is the lifecycle state of a maintenance item.
type MaintenanceStatus string

const (
	StatusPending    MaintenanceStatus = "Pending"
	StatusInProgress MaintenanceStatus = "In Progress"
	StatusCompleted  MaintenanceStatus = "Completed"
)

// MaintenanceType distinguishes client-submitted requests from
// internally-initiated work orders.
type MaintenanceType string

const (
	TypeRequest   MaintenanceType = "request"
	TypeWorkOrder MaintenanceType = "workOrder"
)

// MaintenanceItem is a maintenance request or work order.
// PropertyID is the authoritative reference; Property keeps the display
// name as a denormalized copy filled in at creation time.
type MaintenanceItem struct {
	ID                   string            `json:"id"`
	Title                string            `json:"title"`
	Description          string            `json:"description"`
	PropertyID           string            `json:"propertyId,omitempty"`
	Property             string            `json:"property"`
	Priority             Priority          `json:"priority"`
	Status               MaintenanceStatus `json:"status"`
	RequestedBy          string            `json:"requestedBy,omitempty"`
	RequestedDate        time.Time         `json:"requestedDate"`
	Type                 MaintenanceType   `json:"type"`
	ConvertedToWorkOrder bool              `json:"convertedToWorkOrder,omitempty"`
}

// ValidPriority reports whether p is one of the known priority levels.
func ValidPriority(p Priority) bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// ValidMaintenanceType reports whether t is a known item type.
func ValidMaintenanceType(t MaintenanceType) bool {
	return t == TypeRequest || t == TypeWorkOrder
}

// StatusRank orders statuses along the forward-only lifecycle.
func StatusRank(s MaintenanceStatus) int {
	switch s {
	case StatusPending:
		return 0
	case StatusInProgress:
		return 1
	case StatusCompleted:
		return 2
	}
	return -1
}

// NextStatus maps a status to its successor in the fixed forward order.
// Completed maps to itself.
func NextStatus(s MaintenanceStatus) MaintenanceStatus {
	switch s {
	case StatusPending:
		return StatusInProgress
	case StatusInProgress:
		return StatusCompleted
	default:
		return StatusCompleted
	}
}
