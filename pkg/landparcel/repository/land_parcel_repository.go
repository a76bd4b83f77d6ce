package repository

import (
	"farmbook/entities"
	"farmbook/pkg/dbctx"
	"farmbook/pkg/store"
)

type Filter struct {
	LandType string
	IsActive *bool
	Search   string
}

type LandParcelRepository interface {
	Create(dbc dbctx.Context, p *entities.LandParcel) error
	Update(dbc dbctx.Context, p *entities.LandParcel) error
	Delete(dbc dbctx.Context, id uint) error
	FindByID(dbc dbctx.Context, id uint) (*entities.LandParcel, error)
	List(dbc dbctx.Context, f Filter, page store.Page) ([]entities.LandParcel, int64, error)
	CodeTaken(dbc dbctx.Context, code string, exceptID uint) (bool, error)
	UnitExists(dbc dbctx.Context, id uint) (bool, error)
	InUse(dbc dbctx.Context, id uint) (bool, error)

	WaterSourceExists(dbc dbctx.Context, id uint) (bool, error)
	Attachments(dbc dbctx.Context, parcelID uint) ([]entities.LandParcelWaterSource, error)
	FindAttachment(dbc dbctx.Context, parcelID, waterSourceID uint) (*entities.LandParcelWaterSource, error)
	Attach(dbc dbctx.Context, a *entities.LandParcelWaterSource) error
	Detach(dbc dbctx.Context, parcelID, waterSourceID uint) error
	ClearPrimary(dbc dbctx.Context, parcelID, exceptWaterSourceID uint) error
}
