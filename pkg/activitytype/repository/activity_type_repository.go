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

type ActivityTypeRepository interface {
	Create(dbc dbctx.Context, at *entities.ActivityType) error
	Update(dbc dbctx.Context, at *entities.ActivityType) error
	Delete(dbc dbctx.Context, id uint) error
	FindByID(dbc dbctx.Context, id uint) (*entities.ActivityType, error)
	List(dbc dbctx.Context, f Filter, page store.Page) ([]entities.ActivityType, int64, error)
	CodeTaken(dbc dbctx.Context, code string, exceptID uint) (bool, error)
	InUse(dbc dbctx.Context, id uint) (bool, error)
}
