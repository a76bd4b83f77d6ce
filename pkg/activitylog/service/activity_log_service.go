package service

import (
	"context"
	"io"

	"farmbook/entities"
	"farmbook/pkg/activitylog/repository"
	"farmbook/pkg/store"
)

// RecordInput and UpdateInput carry the same fields and convert into each
// other; only their rules differ.
type RecordInput struct {
	ActivityTypeID    *uint    `json:"activity_type_id" validate:"required"`
	CropCycleID       *uint    `json:"crop_cycle_id"`
	LandParcelID      *uint    `json:"land_parcel_id"`
	WaterSourceID     *uint    `json:"water_source_id"`
	ActivityDate      *string  `json:"activity_date" validate:"required,datetime=2006-01-02"`
	StartTime         *string  `json:"start_time"`
	EndTime           *string  `json:"end_time"`
	Description       *string  `json:"description"`
	QuantityValue     *float64 `json:"quantity_value" validate:"omitempty,gte=0"`
	QuantityUnitID    *uint    `json:"quantity_unit_id"`
	CostValue         *float64 `json:"cost_value" validate:"omitempty,gte=0"`
	CostUnitID        *uint    `json:"cost_unit_id"`
	PerformedBy       *string  `json:"performed_by" validate:"omitempty,max=255"`
	WeatherConditions *string  `json:"weather_conditions"`
}

type UpdateInput struct {
	ActivityTypeID    *uint    `json:"activity_type_id"`
	CropCycleID       *uint    `json:"crop_cycle_id"`
	LandParcelID      *uint    `json:"land_parcel_id"`
	WaterSourceID     *uint    `json:"water_source_id"`
	ActivityDate      *string  `json:"activity_date" validate:"omitempty,datetime=2006-01-02"`
	StartTime         *string  `json:"start_time"`
	EndTime           *string  `json:"end_time"`
	Description       *string  `json:"description"`
	QuantityValue     *float64 `json:"quantity_value" validate:"omitempty,gte=0"`
	QuantityUnitID    *uint    `json:"quantity_unit_id"`
	CostValue         *float64 `json:"cost_value" validate:"omitempty,gte=0"`
	CostUnitID        *uint    `json:"cost_unit_id"`
	PerformedBy       *string  `json:"performed_by" validate:"omitempty,max=255"`
	WeatherConditions *string  `json:"weather_conditions"`
}

type ActivityLogService interface {
	List(ctx context.Context, f repository.Filter, page store.Page) ([]entities.ActivityLog, int64, error)
	Get(ctx context.Context, id uint) (*entities.ActivityLog, error)
	Record(ctx context.Context, in RecordInput) (*entities.ActivityLog, error)
	Update(ctx context.Context, id uint, in UpdateInput) (*entities.ActivityLog, error)

	// Export writes the matching logs to w as an XLSX workbook.
	Export(ctx context.Context, f repository.Filter, w io.Writer) error
}
