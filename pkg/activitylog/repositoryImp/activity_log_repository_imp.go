package repositoryImp

import (
	"gorm.io/gorm"

	"farmbook/entities"
	"farmbook/pkg/activitylog/repository"
	"farmbook/pkg/dbctx"
	"farmbook/pkg/store"
)

var preloads = []string{"ActivityType", "CropCycle", "LandParcel", "WaterSource", "QuantityUnit", "CostUnit"}

type activityLogRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.ActivityLogRepository { return &activityLogRepo{db} }

func (r *activityLogRepo) Create(dbc dbctx.Context, l *entities.ActivityLog) error {
	return store.Create(dbc.DB(r.db), l)
}

func (r *activityLogRepo) Update(dbc dbctx.Context, l *entities.ActivityLog) error {
	return store.Save(dbc.DB(r.db), l)
}

func (r *activityLogRepo) FindByID(dbc dbctx.Context, id uint) (*entities.ActivityLog, error) {
	return store.First[entities.ActivityLog](dbc.DB(r.db), "activity log", id, preloads...)
}

func (r *activityLogRepo) filter(dbc dbctx.Context, f repository.Filter) *gorm.DB {
	q := dbc.DB(r.db).Model(&entities.ActivityLog{})
	if f.CropCycleID != nil {
		q = q.Where("crop_cycle_id = ?", *f.CropCycleID)
	}
	if f.LandParcelID != nil {
		q = q.Where("land_parcel_id = ?", *f.LandParcelID)
	}
	if f.ActivityTypeID != nil {
		q = q.Where("activity_type_id = ?", *f.ActivityTypeID)
	}
	if f.DateFrom != nil {
		q = q.Where("activity_date >= ?", *f.DateFrom)
	}
	if f.DateTo != nil {
		q = q.Where("activity_date <= ?", *f.DateTo)
	}
	return q
}

func (r *activityLogRepo) List(dbc dbctx.Context, f repository.Filter, page store.Page) ([]entities.ActivityLog, int64, error) {
	return store.Paginate[entities.ActivityLog](r.filter(dbc, f), page, "activity_date DESC, id DESC", preloads...)
}

func (r *activityLogRepo) Export(dbc dbctx.Context, f repository.Filter, limit int) ([]entities.ActivityLog, error) {
	var out []entities.ActivityLog
	q := r.filter(dbc, f)
	for _, p := range preloads {
		q = q.Preload(p)
	}
	err := q.Order("activity_date ASC, id ASC").Limit(limit).Find(&out).Error
	return out, err
}

func (r *activityLogRepo) ActivityTypeActive(dbc dbctx.Context, id uint) (bool, error) {
	return store.Exists[entities.ActivityType](dbc.DB(r.db), id, true)
}

func (r *activityLogRepo) FindCycle(dbc dbctx.Context, id uint) (*entities.CropCycle, error) {
	return store.First[entities.CropCycle](dbc.DB(r.db), "crop cycle", id)
}

func (r *activityLogRepo) LandParcelExists(dbc dbctx.Context, id uint) (bool, error) {
	return store.Exists[entities.LandParcel](dbc.DB(r.db), id, false)
}

func (r *activityLogRepo) WaterSourceExists(dbc dbctx.Context, id uint) (bool, error) {
	return store.Exists[entities.WaterSource](dbc.DB(r.db), id, false)
}

func (r *activityLogRepo) UnitExists(dbc dbctx.Context, id uint) (bool, error) {
	return store.Exists[entities.UnitOfMeasure](dbc.DB(r.db), id, false)
}
