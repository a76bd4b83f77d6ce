package service

import (
	"context"

	"farmbook/entities"
	"farmbook/pkg/cropcycle/lifecycle"
	"farmbook/pkg/cropcycle/repository"
	"farmbook/pkg/store"
)

type CreateInput struct {
	CycleCode        *string `json:"cycle_code" validate:"omitempty,max=50"`
	LandParcelID     *uint   `json:"land_parcel_id" validate:"required"`
	CropTypeID       *uint   `json:"crop_type_id" validate:"required"`
	SeasonID         *uint   `json:"season_id" validate:"required"`
	PlannedStartDate *string `json:"planned_start_date" validate:"required,datetime=2006-01-02"`
	PlannedEndDate   *string `json:"planned_end_date" validate:"required,datetime=2006-01-02"`
	Notes            *string `json:"notes"`
}

// UpdateInput edits planning fields; status only moves through the actions.
type UpdateInput struct {
	CycleCode        *string `json:"cycle_code" validate:"omitempty,min=1,max=50"`
	LandParcelID     *uint   `json:"land_parcel_id"`
	CropTypeID       *uint   `json:"crop_type_id"`
	SeasonID         *uint   `json:"season_id"`
	PlannedStartDate *string `json:"planned_start_date" validate:"omitempty,datetime=2006-01-02"`
	PlannedEndDate   *string `json:"planned_end_date" validate:"omitempty,datetime=2006-01-02"`
	Notes            *string `json:"notes"`
}

type ActivateInput struct {
	Notes *string `json:"notes"`
}

type CompleteInput struct {
	ActualEndDate *string  `json:"actual_end_date" validate:"omitempty,datetime=2006-01-02"`
	YieldValue    *float64 `json:"yield_value" validate:"omitempty,gte=0"`
	YieldUnitID   *uint    `json:"yield_unit_id"`
	QualityRating *string  `json:"quality_rating" validate:"omitempty,oneof=excellent good average poor"`
	Notes         *string  `json:"notes"`
}

// TerminateInput carries the reason a cycle failed or was abandoned.
type TerminateInput struct {
	Reason string  `json:"reason" validate:"required,max=1000"`
	Notes  *string `json:"notes"`
}

type CropCycleService interface {
	List(ctx context.Context, f repository.Filter, page store.Page) ([]entities.CropCycle, int64, error)
	Get(ctx context.Context, id uint) (*entities.CropCycle, error)
	Create(ctx context.Context, in CreateInput) (*entities.CropCycle, error)
	Update(ctx context.Context, id uint, in UpdateInput) (*entities.CropCycle, error)
	Delete(ctx context.Context, id uint) error

	Activate(ctx context.Context, id uint, in ActivateInput) (*entities.CropCycle, error)
	Complete(ctx context.Context, id uint, in CompleteInput) (*entities.CropCycle, error)
	Fail(ctx context.Context, id uint, in TerminateInput) (*entities.CropCycle, error)
	Abandon(ctx context.Context, id uint, in TerminateInput) (*entities.CropCycle, error)

	Transitions() []lifecycle.StatusEntry
}

// TransitionRecorder is told about every committed status change.
type TransitionRecorder interface {
	Transition(to string)
}
