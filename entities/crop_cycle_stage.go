package entities

import (
	"time"

	"farmbook/pkg/dates"
)

const (
	StageStatusPending    = "pending"
	StageStatusInProgress = "in_progress"
	StageStatusCompleted  = "completed"
	StageStatusSkipped    = "skipped"
)

const (
	MinStageSequence = 1
	MaxStageSequence = 20
)

type CropCycleStage struct {
	ID               uint        `gorm:"primaryKey" json:"id"`
	CropCycleID      uint        `gorm:"not null;uniqueIndex:idx_stage_cycle_sequence" json:"crop_cycle_id"`
	StageName        string      `gorm:"size:100;not null" json:"stage_name"`
	SequenceOrder    int         `gorm:"not null;uniqueIndex:idx_stage_cycle_sequence" json:"sequence_order"`
	PlannedStartDate *dates.Date `json:"planned_start_date"`
	PlannedEndDate   *dates.Date `json:"planned_end_date"`
	ActualStartDate  *dates.Date `json:"actual_start_date"`
	ActualEndDate    *dates.Date `json:"actual_end_date"`
	Status           string      `gorm:"size:20;not null;index" json:"status"` // pending|in_progress|completed|skipped
	Description      string      `json:"description"`
	Notes            string      `json:"notes"`
	CropCycle        *CropCycle  `gorm:"foreignKey:CropCycleID" json:"crop_cycle,omitempty"`
	CreatedAt        time.Time   `json:"created_at"`
	UpdatedAt        time.Time   `json:"updated_at"`
}
