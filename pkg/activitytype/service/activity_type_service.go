package service

import (
	"context"

	"farmbook/entities"
	"farmbook/pkg/activitytype/repository"
	"farmbook/pkg/store"
)

type CreateInput struct {
	Code        *string `json:"code" validate:"omitempty,max=50"`
	Name        string  `json:"name" validate:"required,max=255"`
	Category    string  `json:"category" validate:"required,oneof=land_preparation planting irrigation fertilizing pest_control weeding harvesting post_harvest maintenance monitoring other"`
	IsActive    *bool   `json:"is_active"`
	Description *string `json:"description"`
}

type UpdateInput struct {
	Code        *string `json:"code" validate:"omitempty,min=1,max=50"`
	Name        *string `json:"name" validate:"omitempty,min=1,max=255"`
	Category    *string `json:"category" validate:"omitempty,oneof=land_preparation planting irrigation fertilizing pest_control weeding harvesting post_harvest maintenance monitoring other"`
	IsActive    *bool   `json:"is_active"`
	Description *string `json:"description"`
}

type ActivityTypeService interface {
	List(ctx context.Context, f repository.Filter, page store.Page) ([]entities.ActivityType, int64, error)
	Get(ctx context.Context, id uint) (*entities.ActivityType, error)
	Create(ctx context.Context, in CreateInput) (*entities.ActivityType, error)
	Update(ctx context.Context, id uint, in UpdateInput) (*entities.ActivityType, error)
	Delete(ctx context.Context, id uint) error
}
