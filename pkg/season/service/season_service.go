package service

import (
	"context"

	"farmbook/entities"
	"farmbook/pkg/season/repository"
	"farmbook/pkg/store"
)

type DefinitionInput struct {
	Code        *string `json:"code" validate:"omitempty,max=50"`
	Name        string  `json:"name" validate:"required,max=255"`
	StartMonth  *int    `json:"start_month" validate:"omitempty,gte=1,lte=12"`
	EndMonth    *int    `json:"end_month" validate:"omitempty,gte=1,lte=12"`
	IsActive    *bool   `json:"is_active"`
	Description *string `json:"description"`
}

type DefinitionPatch struct {
	Code        *string `json:"code" validate:"omitempty,min=1,max=50"`
	Name        *string `json:"name" validate:"omitempty,min=1,max=255"`
	StartMonth  *int    `json:"start_month" validate:"omitempty,gte=1,lte=12"`
	EndMonth    *int    `json:"end_month" validate:"omitempty,gte=1,lte=12"`
	IsActive    *bool   `json:"is_active"`
	Description *string `json:"description"`
}

type SeasonInput struct {
	Code               *string `json:"code" validate:"omitempty,max=50"`
	Name               string  `json:"name" validate:"required,max=255"`
	SeasonDefinitionID *uint   `json:"season_definition_id"`
	Year               *int    `json:"year" validate:"omitempty,gte=2000,lte=2100"`
	StartDate          *string `json:"start_date" validate:"omitempty,datetime=2006-01-02"`
	EndDate            *string `json:"end_date" validate:"omitempty,datetime=2006-01-02"`
	IsActive           *bool   `json:"is_active"`
	Description        *string `json:"description"`
}

type SeasonPatch struct {
	Code               *string `json:"code" validate:"omitempty,min=1,max=50"`
	Name               *string `json:"name" validate:"omitempty,min=1,max=255"`
	SeasonDefinitionID *uint   `json:"season_definition_id"`
	Year               *int    `json:"year" validate:"omitempty,gte=2000,lte=2100"`
	StartDate          *string `json:"start_date" validate:"omitempty,datetime=2006-01-02"`
	EndDate            *string `json:"end_date" validate:"omitempty,datetime=2006-01-02"`
	IsActive           *bool   `json:"is_active"`
	Description        *string `json:"description"`
}

type DefinitionService interface {
	List(ctx context.Context, f repository.DefinitionFilter, page store.Page) ([]entities.SeasonDefinition, int64, error)
	Get(ctx context.Context, id uint) (*entities.SeasonDefinition, error)
	Create(ctx context.Context, in DefinitionInput) (*entities.SeasonDefinition, error)
	Update(ctx context.Context, id uint, in DefinitionPatch) (*entities.SeasonDefinition, error)
	Delete(ctx context.Context, id uint) error
}

type SeasonService interface {
	List(ctx context.Context, f repository.SeasonFilter, page store.Page) ([]entities.Season, int64, error)
	Get(ctx context.Context, id uint) (*entities.Season, error)
	Create(ctx context.Context, in SeasonInput) (*entities.Season, error)
	Update(ctx context.Context, id uint, in SeasonPatch) (*entities.Season, error)
	Delete(ctx context.Context, id uint) error
}
