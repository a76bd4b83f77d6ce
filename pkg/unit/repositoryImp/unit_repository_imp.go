package repositoryImp

import (
	"gorm.io/gorm"

	"farmbook/entities"
	"farmbook/pkg/dbctx"
	"farmbook/pkg/store"
	"farmbook/pkg/unit/repository"
)

type unitRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.UnitRepository { return &unitRepo{db} }

func (r *unitRepo) Create(dbc dbctx.Context, u *entities.UnitOfMeasure) error {
	return store.Create(dbc.DB(r.db), u)
}

func (r *unitRepo) Update(dbc dbctx.Context, u *entities.UnitOfMeasure) error {
	return store.Save(dbc.DB(r.db), u)
}

func (r *unitRepo) Delete(dbc dbctx.Context, id uint) error {
	return dbc.DB(r.db).Delete(&entities.UnitOfMeasure{}, id).Error
}

func (r *unitRepo) FindByID(dbc dbctx.Context, id uint) (*entities.UnitOfMeasure, error) {
	return store.First[entities.UnitOfMeasure](dbc.DB(r.db), "unit of measure", id)
}

func (r *unitRepo) List(dbc dbctx.Context, f repository.Filter, page store.Page) ([]entities.UnitOfMeasure, int64, error) {
	q := dbc.DB(r.db).Model(&entities.UnitOfMeasure{})
	if f.UnitType != "" {
		q = q.Where("unit_type = ?", f.UnitType)
	}
	if f.IsActive != nil {
		q = q.Where("is_active = ?", *f.IsActive)
	}
	q = store.Search(q, f.Search, "name", "abbreviation")
	return store.Paginate[entities.UnitOfMeasure](q, page, "unit_type ASC, name ASC")
}

func (r *unitRepo) AbbreviationTaken(dbc dbctx.Context, abbr string, exceptID uint) (bool, error) {
	return store.Taken[entities.UnitOfMeasure](dbc.DB(r.db), "abbreviation", abbr, exceptID)
}

func (r *unitRepo) Exists(dbc dbctx.Context, id uint) (bool, error) {
	return store.Exists[entities.UnitOfMeasure](dbc.DB(r.db), id, false)
}

// InUse reports whether any quantity, area, capacity or yield column points at id.
func (r *unitRepo) InUse(dbc dbctx.Context, id uint) (bool, error) {
	db := dbc.DB(r.db)
	checks := []struct {
		model any
		where string
		args  []any
	}{
		{&entities.LandParcel{}, "area_unit_id = ?", []any{id}},
		{&entities.WaterSource{}, "capacity_unit_id = ?", []any{id}},
		{&entities.CropCycle{}, "yield_unit_id = ?", []any{id}},
		{&entities.ActivityLog{}, "quantity_unit_id = ? OR cost_unit_id = ?", []any{id, id}},
	}
	for _, ch := range checks {
		var n int64
		if err := db.Model(ch.model).Where(ch.where, ch.args...).Count(&n).Error; err != nil {
			return false, err
		}
		if n > 0 {
			return true, nil
		}
	}
	return false, nil
}
