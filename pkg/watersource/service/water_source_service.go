package service

import (
	"context"

	"farmbook/entities"
	"farmbook/pkg/store"
	"farmbook/pkg/watersource/repository"
)

type CreateInput struct {
	Code           *string  `json:"code" validate:"omitempty,max=50"`
	Name           string   `json:"name" validate:"required,max=255"`
	SourceType     string   `json:"source_type" validate:"required,oneof=river canal well pond reservoir rainwater irrigation_system other"`
	CapacityValue  *float64 `json:"capacity_value" validate:"omitempty,gt=0"`
	CapacityUnitID *uint    `json:"capacity_unit_id"`
	WaterQuality   *string  `json:"water_quality" validate:"omitempty,oneof=excellent good fair poor"`
	Latitude       *float64 `json:"latitude" validate:"omitempty,gte=-90,lte=90"`
	Longitude      *float64 `json:"longitude" validate:"omitempty,gte=-180,lte=180"`
	IsActive       *bool    `json:"is_active"`
	Description    *string  `json:"description"`
}

type UpdateInput struct {
	Code           *string  `json:"code" validate:"omitempty,min=1,max=50"`
	Name           *string  `json:"name" validate:"omitempty,min=1,max=255"`
	SourceType     *string  `json:"source_type" validate:"omitempty,oneof=river canal well pond reservoir rainwater irrigation_system other"`
	CapacityValue  *float64 `json:"capacity_value" validate:"omitempty,gt=0"`
	CapacityUnitID *uint    `json:"capacity_unit_id"`
	WaterQuality   *string  `json:"water_quality" validate:"omitempty,oneof=excellent good fair poor"`
	Latitude       *float64 `json:"latitude" validate:"omitempty,gte=-90,lte=90"`
	Longitude      *float64 `json:"longitude" validate:"omitempty,gte=-180,lte=180"`
	IsActive       *bool    `json:"is_active"`
	Description    *string  `json:"description"`
}

type WaterSourceService interface {
	List(ctx context.Context, f repository.Filter, page store.Page) ([]entities.WaterSource, int64, error)
	Get(ctx context.Context, id uint) (*entities.WaterSource, error)
	Create(ctx context.Context, in CreateInput) (*entities.WaterSource, error)
	Update(ctx context.Context, id uint, in UpdateInput) (*entities.WaterSource, error)
	Delete(ctx context.Context, id uint) error
}
