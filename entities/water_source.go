package entities

import "time"

type WaterSource struct {
	ID             uint           `gorm:"primaryKey" json:"id"`
	Code           string         `gorm:"size:50;not null;uniqueIndex" json:"code"`
	Name           string         `gorm:"size:255;not null" json:"name"`
	SourceType     string         `gorm:"size:30;not null;index" json:"source_type"` // river|canal|well|pond|reservoir|rainwater|irrigation_system|other
	CapacityValue  *float64       `json:"capacity_value"`
	CapacityUnitID *uint          `json:"capacity_unit_id"`
	WaterQuality   *string        `gorm:"size:20" json:"water_quality"`
	Latitude       *float64       `json:"latitude"`
	Longitude      *float64       `json:"longitude"`
	IsActive       bool           `gorm:"not null;index" json:"is_active"`
	Description    string         `json:"description"`
	CapacityUnit   *UnitOfMeasure `gorm:"foreignKey:CapacityUnitID" json:"capacity_unit,omitempty"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
}
