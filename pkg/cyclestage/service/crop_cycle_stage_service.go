package service

import (
	"context"

	"farmbook/entities"
	"farmbook/pkg/cyclestage/repository"
	"farmbook/pkg/store"
)

type CreateInput struct {
	CropCycleID      *uint   `json:"crop_cycle_id" validate:"required"`
	StageName        string  `json:"stage_name" validate:"required,max=100"`
	SequenceOrder    *int    `json:"sequence_order" validate:"required,min=1,max=20"`
	PlannedStartDate *string `json:"planned_start_date" validate:"omitempty,datetime=2006-01-02"`
	PlannedEndDate   *string `json:"planned_end_date" validate:"omitempty,datetime=2006-01-02"`
	Description      *string `json:"description"`
	Notes            *string `json:"notes"`
}

type UpdateInput struct {
	StageName        *string `json:"stage_name" validate:"omitempty,min=1,max=100"`
	SequenceOrder    *int    `json:"sequence_order" validate:"omitempty,min=1,max=20"`
	PlannedStartDate *string `json:"planned_start_date" validate:"omitempty,datetime=2006-01-02"`
	PlannedEndDate   *string `json:"planned_end_date" validate:"omitempty,datetime=2006-01-02"`
	Description      *string `json:"description"`
	Notes            *string `json:"notes"`
}

type StartInput struct {
	ActualStartDate *string `json:"actual_start_date" validate:"omitempty,datetime=2006-01-02"`
	Notes           *string `json:"notes"`
}

type CompleteInput struct {
	ActualEndDate *string `json:"actual_end_date" validate:"omitempty,datetime=2006-01-02"`
	Notes         *string `json:"notes"`
}

type SkipInput struct {
	Notes *string `json:"notes"`
}

type CropCycleStageService interface {
	List(ctx context.Context, f repository.Filter, page store.Page) ([]entities.CropCycleStage, int64, error)
	ListByCycle(ctx context.Context, cycleID uint) ([]entities.CropCycleStage, error)
	Get(ctx context.Context, id uint) (*entities.CropCycleStage, error)
	Create(ctx context.Context, in CreateInput) (*entities.CropCycleStage, error)
	Update(ctx context.Context, id uint, in UpdateInput) (*entities.CropCycleStage, error)
	Delete(ctx context.Context, id uint) error

	Start(ctx context.Context, id uint, in StartInput) (*entities.CropCycleStage, error)
	Complete(ctx context.Context, id uint, in CompleteInput) (*entities.CropCycleStage, error)
	Skip(ctx context.Context, id uint, in SkipInput) (*entities.CropCycleStage, error)

	// Generate creates the template stages for a cycle that has none.
	Generate(ctx context.Context, cycleID uint) ([]entities.CropCycleStage, error)
}
