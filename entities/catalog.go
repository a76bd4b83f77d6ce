package entities

import (
	"time"

	"farmbook/pkg/dates"
)

type CropType struct {
	ID                      uint      `gorm:"primaryKey" json:"id"`
	Code                    string    `gorm:"size:50;not null;uniqueIndex" json:"code"`
	Name                    string    `gorm:"size:255;not null" json:"name"`
	ScientificName          string    `gorm:"size:255" json:"scientific_name"`
	Category                string    `gorm:"size:30;not null;index" json:"category"` // cereal|vegetable|fruit|legume|industrial|root_tuber|herb_spice|other
	TypicalGrowDurationDays *int      `json:"typical_grow_duration_days"`
	IsActive                bool      `gorm:"not null;index" json:"is_active"`
	Description             string    `json:"description"`
	CreatedAt               time.Time `json:"created_at"`
	UpdatedAt               time.Time `json:"updated_at"`
}

type SeasonDefinition struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Code        string    `gorm:"size:50;not null;uniqueIndex" json:"code"`
	Name        string    `gorm:"size:255;not null" json:"name"`
	StartMonth  *int      `json:"start_month"`
	EndMonth    *int      `json:"end_month"`
	IsActive    bool      `gorm:"not null;index" json:"is_active"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type Season struct {
	ID                 uint              `gorm:"primaryKey" json:"id"`
	Code               string            `gorm:"size:50;not null;uniqueIndex" json:"code"`
	Name               string            `gorm:"size:255;not null" json:"name"`
	SeasonDefinitionID *uint             `gorm:"index" json:"season_definition_id"`
	Year               *int              `json:"year"`
	StartDate          *dates.Date       `json:"start_date"`
	EndDate            *dates.Date       `json:"end_date"`
	IsActive           bool              `gorm:"not null;index" json:"is_active"`
	Description        string            `json:"description"`
	SeasonDefinition   *SeasonDefinition `gorm:"foreignKey:SeasonDefinitionID" json:"season_definition,omitempty"`
	CreatedAt          time.Time         `json:"created_at"`
	UpdatedAt          time.Time         `json:"updated_at"`
}

type ActivityType struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Code        string    `gorm:"size:50;not null;uniqueIndex" json:"code"`
	Name        string    `gorm:"size:255;not null" json:"name"`
	Category    string    `gorm:"size:30;not null;index" json:"category"` // land_preparation|planting|irrigation|fertilizing|pest_control|weeding|harvesting|post_harvest|maintenance|monitoring|other
	IsActive    bool      `gorm:"not null;index" json:"is_active"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
