package repository

import (
	"farmbook/entities"
	"farmbook/pkg/dbctx"
	"farmbook/pkg/store"
)

type Filter struct {
	Category string
	IsActive *bool
	Search   string
}

type CropTypeRepository interface {
	Create(dbc dbctx.Context, ct *entities.CropType) error
	Update(dbc dbctx.Context, ct *entities.CropType) error
	Delete(dbc dbctx.Context, id uint) error
	FindByID(dbc dbctx.Context, id uint) (*entities.CropType, error)
	List(dbc dbctx.Context, f Filter, page store.Page) ([]entities.CropType, int64, error)
	CodeTaken(dbc dbctx.Context, code string, exceptID uint) (bool, error)
	InUse(dbc dbctx.Context, id uint) (bool, error)
}
