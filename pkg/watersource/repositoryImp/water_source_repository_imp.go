package repositoryImp

import (
	"gorm.io/gorm"

	"farmbook/entities"
	"farmbook/pkg/dbctx"
	"farmbook/pkg/store"
	"farmbook/pkg/watersource/repository"
)

type waterSourceRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.WaterSourceRepository { return &waterSourceRepo{db} }

func (r *waterSourceRepo) Create(dbc dbctx.Context, ws *entities.WaterSource) error {
	return store.Create(dbc.DB(r.db), ws)
}

func (r *waterSourceRepo) Update(dbc dbctx.Context, ws *entities.WaterSource) error {
	return store.Save(dbc.DB(r.db), ws)
}

func (r *waterSourceRepo) Delete(dbc dbctx.Context, id uint) error {
	return dbc.DB(r.db).Delete(&entities.WaterSource{}, id).Error
}

func (r *waterSourceRepo) FindByID(dbc dbctx.Context, id uint) (*entities.WaterSource, error) {
	return store.First[entities.WaterSource](dbc.DB(r.db), "water source", id, "CapacityUnit")
}

func (r *waterSourceRepo) List(dbc dbctx.Context, f repository.Filter, page store.Page) ([]entities.WaterSource, int64, error) {
	q := dbc.DB(r.db).Model(&entities.WaterSource{})
	if f.SourceType != "" {
		q = q.Where("source_type = ?", f.SourceType)
	}
	if f.WaterQuality != "" {
		q = q.Where("water_quality = ?", f.WaterQuality)
	}
	if f.IsActive != nil {
		q = q.Where("is_active = ?", *f.IsActive)
	}
	q = store.Search(q, f.Search, "name", "code")
	return store.Paginate[entities.WaterSource](q, page, "name ASC", "CapacityUnit")
}

func (r *waterSourceRepo) CodeTaken(dbc dbctx.Context, code string, exceptID uint) (bool, error) {
	return store.Taken[entities.WaterSource](dbc.DB(r.db), "code", code, exceptID)
}

func (r *waterSourceRepo) UnitExists(dbc dbctx.Context, id uint) (bool, error) {
	return store.Exists[entities.UnitOfMeasure](dbc.DB(r.db), id, false)
}

// InUse reports whether a parcel is attached to id or an activity log names it.
func (r *waterSourceRepo) InUse(dbc dbctx.Context, id uint) (bool, error) {
	db := dbc.DB(r.db)
	var n int64
	if err := db.Model(&entities.LandParcelWaterSource{}).Where("water_source_id = ?", id).Count(&n).Error; err != nil {
		return false, err
	}
	if n > 0 {
		return true, nil
	}
	if err := db.Model(&entities.ActivityLog{}).Where("water_source_id = ?", id).Count(&n).Error; err != nil {
		return false, err
	}
	return n > 0, nil
}
