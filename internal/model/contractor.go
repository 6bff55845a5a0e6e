package model

import "time"

// Availability describes a contractor's current capacity.
type Availability string

const (
	Available   Availability = "Available"
	Busy        Availability = "Busy"
	Unavailable Availability = "Unavailable"
)

// Contractor is a service provider on the company roster.
type Contractor struct {
	ID            string       `json:"id"`
	Name          string       `json:"name"`
	Specialty     string       `json:"specialty"`
	Rating        int          `json:"rating"`
	Phone         string       `json:"phone"`
	Email         string       `json:"email"`
	Availability  Availability `json:"availability"`
	CompletedJobs int          `json:"completedJobs"`
	JoinedDate    time.Time    `json:"joinedDate"`
}

// ValidAvailability reports whether a is a known availability state.
func ValidAvailability(a Availability) bool {
	switch a {
	case Available, Busy, Unavailable:
		return true
	}
	return false
}
