package repository

import (
	"farmbook/entities"
	"farmbook/pkg/dates"
	"farmbook/pkg/dbctx"
	"farmbook/pkg/store"
)

type Filter struct {
	CropCycleID    *uint
	LandParcelID   *uint
	ActivityTypeID *uint
	DateFrom       *dates.Date
	DateTo         *dates.Date
}

// ActivityLogRepository has no Delete: logs are append and amend only.
type ActivityLogRepository interface {
	Create(dbc dbctx.Context, l *entities.ActivityLog) error
	Update(dbc dbctx.Context, l *entities.ActivityLog) error
	FindByID(dbc dbctx.Context, id uint) (*entities.ActivityLog, error)
	List(dbc dbctx.Context, f Filter, page store.Page) ([]entities.ActivityLog, int64, error)
	// Export returns up to limit matching logs, oldest first.
	Export(dbc dbctx.Context, f Filter, limit int) ([]entities.ActivityLog, error)

	ActivityTypeActive(dbc dbctx.Context, id uint) (bool, error)
	FindCycle(dbc dbctx.Context, id uint) (*entities.CropCycle, error)
	LandParcelExists(dbc dbctx.Context, id uint) (bool, error)
	WaterSourceExists(dbc dbctx.Context, id uint) (bool, error)
	UnitExists(dbc dbctx.Context, id uint) (bool, error)
}
