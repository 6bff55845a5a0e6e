package model

import (
	"time"

	"gorm.io/datatypes"
)

// Collection is the storage row backing one named entity collection.
// The whole collection is kept as a single JSON payload and rewritten on
// every save, mirroring the read-modify-write model the dashboard assumes.
type Collection struct {
	Name      string         `gorm:"primaryKey;size:128"`
	Data      datatypes.JSON `gorm:"type:json"`
	UpdatedAt time.Time      `gorm:"not null"`
}
