package repository

import (
	"farmbook/entities"
	"farmbook/pkg/dbctx"
	"farmbook/pkg/store"
)

type Filter struct {
	SourceType   string
	WaterQuality string
	IsActive     *bool
	Search       string
}

type WaterSourceRepository interface {
	Create(dbc dbctx.Context, ws *entities.WaterSource) error
	Update(dbc dbctx.Context, ws *entities.WaterSource) error
	Delete(dbc dbctx.Context, id uint) error
	FindByID(dbc dbctx.Context, id uint) (*entities.WaterSource, error)
	List(dbc dbctx.Context, f Filter, page store.Page) ([]entities.WaterSource, int64, error)
	CodeTaken(dbc dbctx.Context, code string, exceptID uint) (bool, error)
	UnitExists(dbc dbctx.Context, id uint) (bool, error)
	InUse(dbc dbctx.Context, id uint) (bool, error)
}
