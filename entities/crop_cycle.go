package entities

import (
	"time"

	"farmbook/pkg/dates"
)

const (
	CycleStatusPlanned   = "planned"
	CycleStatusActive    = "active"
	CycleStatusCompleted = "completed"
	CycleStatusFailed    = "failed"
	CycleStatusAbandoned = "abandoned"
)

const (
	QualityExcellent = "excellent"
	QualityGood      = "good"
	QualityAverage   = "average"
	QualityPoor      = "poor"
)

type CropCycle struct {
	ID                uint           `gorm:"primaryKey" json:"id"`
	CycleCode         string         `gorm:"size:50;not null;uniqueIndex" json:"cycle_code"`
	LandParcelID      uint           `gorm:"not null;index" json:"land_parcel_id"`
	CropTypeID        uint           `gorm:"not null;index" json:"crop_type_id"`
	SeasonID          uint           `gorm:"not null;index" json:"season_id"`
	Status            string         `gorm:"size:20;not null;index" json:"status"` // planned|active|completed|failed|abandoned
	PlannedStartDate  dates.Date     `gorm:"not null" json:"planned_start_date"`
	PlannedEndDate    dates.Date     `gorm:"not null" json:"planned_end_date"`
	ActualStartDate   *dates.Date    `json:"actual_start_date"`
	ActualEndDate     *dates.Date    `json:"actual_end_date"`
	YieldValue        *float64       `json:"yield_value"`
	YieldUnitID       *uint          `json:"yield_unit_id"`
	QualityRating     *string        `gorm:"size:20" json:"quality_rating"` // excellent|good|average|poor
	TerminationReason *string        `json:"termination_reason"`
	Notes             string         `json:"notes"`
	LandParcel        *LandParcel    `gorm:"foreignKey:LandParcelID" json:"land_parcel,omitempty"`
	CropType          *CropType      `gorm:"foreignKey:CropTypeID" json:"crop_type,omitempty"`
	Season            *Season        `gorm:"foreignKey:SeasonID" json:"season,omitempty"`
	YieldUnit         *UnitOfMeasure `gorm:"foreignKey:YieldUnitID" json:"yield_unit,omitempty"`

	Stages []CropCycleStage `gorm:"foreignKey:CropCycleID" json:"stages,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// IsCycleTerminal reports whether no further edits are accepted in status.
func IsCycleTerminal(status string) bool {
	switch status {
	case CycleStatusCompleted, CycleStatusFailed, CycleStatusAbandoned:
		return true
	}
	return false
}

func (c *CropCycle) IsTerminal() bool { return IsCycleTerminal(c.Status) }
