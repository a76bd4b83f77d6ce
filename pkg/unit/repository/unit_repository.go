package repository

import (
	"farmbook/entities"
	"farmbook/pkg/dbctx"
	"farmbook/pkg/store"
)

type Filter struct {
	UnitType string
	IsActive *bool
	Search   string
}

type UnitRepository interface {
	Create(dbc dbctx.Context, u *entities.UnitOfMeasure) error
	Update(dbc dbctx.Context, u *entities.UnitOfMeasure) error
	Delete(dbc dbctx.Context, id uint) error
	FindByID(dbc dbctx.Context, id uint) (*entities.UnitOfMeasure, error)
	List(dbc dbctx.Context, f Filter, page store.Page) ([]entities.UnitOfMeasure, int64, error)
	AbbreviationTaken(dbc dbctx.Context, abbr string, exceptID uint) (bool, error)
	Exists(dbc dbctx.Context, id uint) (bool, error)
	InUse(dbc dbctx.Context, id uint) (bool, error)
}
