package model

import "time"

// PropertyType classifies a managed property.
type PropertyType string

const (
	PropertyCommercial  PropertyType = "Commercial"
	PropertyResidential PropertyType = "Residential"
	PropertyIndustrial  PropertyType = "Industrial"
)

// PropertyStatus marks whether a property is under active management.
type PropertyStatus string

const (
	PropertyActive   PropertyStatus = "Active"
	PropertyInactive PropertyStatus = "Inactive"
)

// Property is a managed building. Properties are created once and never
// updated or deleted through the API surface.
type Property struct {
	ID              string         `json:"id"`
	Name            string         `json:"name"`
	Address         string         `json:"address"`
	Type            PropertyType   `json:"type"`
	Size            int            `json:"size"`
	Status          PropertyStatus `json:"status"`
	CreatedAt       time.Time      `json:"createdAt"`
	ContractAddress string         `json:"contractAddress,omitempty"`
}

// ValidPropertyType reports whether t is a known property type.
func ValidPropertyType(t PropertyType) bool {
	switch t {
	case PropertyCommercial, PropertyResidential, PropertyIndustrial:
		return true
	}
	return false
}
