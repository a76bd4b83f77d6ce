package service

import (
	"context"

	"farmbook/entities"
	"farmbook/pkg/landparcel/repository"
	"farmbook/pkg/store"
)

type CreateInput struct {
	Code                *string  `json:"code" validate:"omitempty,max=50"`
	Name                string   `json:"name" validate:"required,max=255"`
	LandType            string   `json:"land_type" validate:"required,oneof=rice_paddy upland garden orchard greenhouse aquaculture other"`
	AreaValue           *float64 `json:"area_value" validate:"required,gt=0"`
	AreaUnitID          *uint    `json:"area_unit_id"`
	SoilType            *string  `json:"soil_type" validate:"omitempty,max=50"`
	LocationDescription *string  `json:"location_description"`
	Latitude            *float64 `json:"latitude" validate:"omitempty,gte=-90,lte=90"`
	Longitude           *float64 `json:"longitude" validate:"omitempty,gte=-180,lte=180"`
	IsActive            *bool    `json:"is_active"`
	Description         *string  `json:"description"`
}

type UpdateInput struct {
	Code                *string  `json:"code" validate:"omitempty,min=1,max=50"`
	Name                *string  `json:"name" validate:"omitempty,min=1,max=255"`
	LandType            *string  `json:"land_type" validate:"omitempty,oneof=rice_paddy upland garden orchard greenhouse aquaculture other"`
	AreaValue           *float64 `json:"area_value" validate:"omitempty,gt=0"`
	AreaUnitID          *uint    `json:"area_unit_id"`
	SoilType            *string  `json:"soil_type" validate:"omitempty,max=50"`
	LocationDescription *string  `json:"location_description"`
	Latitude            *float64 `json:"latitude" validate:"omitempty,gte=-90,lte=90"`
	Longitude           *float64 `json:"longitude" validate:"omitempty,gte=-180,lte=180"`
	IsActive            *bool    `json:"is_active"`
	Description         *string  `json:"description"`
}

type AttachInput struct {
	WaterSourceID   *uint  `json:"water_source_id" validate:"required"`
	Accessibility   string `json:"accessibility" validate:"required,oneof=direct pumped gravity_fed seasonal"`
	IsPrimarySource *bool  `json:"is_primary_source"`
}

type LandParcelService interface {
	List(ctx context.Context, f repository.Filter, page store.Page) ([]entities.LandParcel, int64, error)
	Get(ctx context.Context, id uint) (*entities.LandParcel, error)
	Create(ctx context.Context, in CreateInput) (*entities.LandParcel, error)
	Update(ctx context.Context, id uint, in UpdateInput) (*entities.LandParcel, error)
	Delete(ctx context.Context, id uint) error

	WaterSources(ctx context.Context, parcelID uint) ([]entities.LandParcelWaterSource, error)
	AttachWaterSource(ctx context.Context, parcelID uint, in AttachInput) (*entities.LandParcelWaterSource, error)
	DetachWaterSource(ctx context.Context, parcelID, waterSourceID uint) error
}
