package service

import (
	"context"

	"farmbook/entities"
	"farmbook/pkg/store"
	"farmbook/pkg/unit/repository"
)

type CreateInput struct {
	Name                   string   `json:"name" validate:"required,max=100"`
	Abbreviation           string   `json:"abbreviation" validate:"required,max=20"`
	UnitType               string   `json:"unit_type" validate:"required,oneof=area weight volume quantity currency time"`
	ConversionFactorToBase *float64 `json:"conversion_factor_to_base" validate:"omitempty,gt=0"`
	IsBaseUnit             *bool    `json:"is_base_unit"`
	IsActive               *bool    `json:"is_active"`
	Description            *string  `json:"description"`
}

// UpdateInput applies only the fields that are present.
type UpdateInput struct {
	Name                   *string  `json:"name" validate:"omitempty,min=1,max=100"`
	Abbreviation           *string  `json:"abbreviation" validate:"omitempty,min=1,max=20"`
	UnitType               *string  `json:"unit_type" validate:"omitempty,oneof=area weight volume quantity currency time"`
	ConversionFactorToBase *float64 `json:"conversion_factor_to_base" validate:"omitempty,gt=0"`
	IsBaseUnit             *bool    `json:"is_base_unit"`
	IsActive               *bool    `json:"is_active"`
	Description            *string  `json:"description"`
}

type Conversion struct {
	Value     float64                `json:"value"`
	From      entities.UnitOfMeasure `json:"from"`
	To        entities.UnitOfMeasure `json:"to"`
	Result    float64                `json:"result"`
	BaseValue float64                `json:"base_value"`
	UnitType  string                 `json:"unit_type"`
}

type UnitService interface {
	List(ctx context.Context, f repository.Filter, page store.Page) ([]entities.UnitOfMeasure, int64, error)
	Get(ctx context.Context, id uint) (*entities.UnitOfMeasure, error)
	Create(ctx context.Context, in CreateInput) (*entities.UnitOfMeasure, error)
	Update(ctx context.Context, id uint, in UpdateInput) (*entities.UnitOfMeasure, error)
	Delete(ctx context.Context, id uint) error
	Convert(ctx context.Context, value float64, fromID, toID uint) (*Conversion, error)
}
