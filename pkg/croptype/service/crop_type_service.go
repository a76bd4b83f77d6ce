package service

import (
	"context"

	"farmbook/entities"
	"farmbook/pkg/croptype/repository"
	"farmbook/pkg/store"
)

type CreateInput struct {
	Code                    *string `json:"code" validate:"omitempty,max=50"`
	Name                    string  `json:"name" validate:"required,max=255"`
	ScientificName          *string `json:"scientific_name" validate:"omitempty,max=255"`
	Category                string  `json:"category" validate:"required,oneof=cereal vegetable fruit legume industrial root_tuber herb_spice other"`
	TypicalGrowDurationDays *int    `json:"typical_grow_duration_days" validate:"omitempty,gt=0"`
	IsActive                *bool   `json:"is_active"`
	Description             *string `json:"description"`
}

type UpdateInput struct {
	Code                    *string `json:"code" validate:"omitempty,min=1,max=50"`
	Name                    *string `json:"name" validate:"omitempty,min=1,max=255"`
	ScientificName          *string `json:"scientific_name" validate:"omitempty,max=255"`
	Category                *string `json:"category" validate:"omitempty,oneof=cereal vegetable fruit legume industrial root_tuber herb_spice other"`
	TypicalGrowDurationDays *int    `json:"typical_grow_duration_days" validate:"omitempty,gt=0"`
	IsActive                *bool   `json:"is_active"`
	Description             *string `json:"description"`
}

type CropTypeService interface {
	List(ctx context.Context, f repository.Filter, page store.Page) ([]entities.CropType, int64, error)
	Get(ctx context.Context, id uint) (*entities.CropType, error)
	Create(ctx context.Context, in CreateInput) (*entities.CropType, error)
	Update(ctx context.Context, id uint, in UpdateInput) (*entities.CropType, error)
	Delete(ctx context.Context, id uint) error
}
