package repository

import (
	"farmbook/entities"
	"farmbook/pkg/dbctx"
	"farmbook/pkg/store"
)

type Filter struct {
	Status       string
	LandParcelID *uint
	CropTypeID   *uint
	SeasonID     *uint
	Search       string
}

type CropCycleRepository interface {
	Create(dbc dbctx.Context, c *entities.CropCycle) error
	Update(dbc dbctx.Context, c *entities.CropCycle) error
	Delete(dbc dbctx.Context, id uint) error
	FindByID(dbc dbctx.Context, id uint) (*entities.CropCycle, error)
	List(dbc dbctx.Context, f Filter, page store.Page) ([]entities.CropCycle, int64, error)
	CodeTaken(dbc dbctx.Context, code string, exceptID uint) (bool, error)

	// OpenOnParcel returns the planned or active cycles of a parcel other than exceptID.
	OpenOnParcel(dbc dbctx.Context, parcelID, exceptID uint) ([]entities.CropCycle, error)
	HasActivityLogs(dbc dbctx.Context, id uint) (bool, error)

	LandParcelActive(dbc dbctx.Context, id uint) (bool, error)
	CropTypeActive(dbc dbctx.Context, id uint) (bool, error)
	SeasonActive(dbc dbctx.Context, id uint) (bool, error)
	UnitExists(dbc dbctx.Context, id uint) (bool, error)
}
