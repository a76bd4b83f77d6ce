package repositoryImp

import (
	"gorm.io/gorm"

	"farmbook/entities"
	"farmbook/pkg/cropcycle/repository"
	"farmbook/pkg/dbctx"
	"farmbook/pkg/store"
)

var preloads = []string{"LandParcel", "CropType", "Season", "YieldUnit"}

type cropCycleRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.CropCycleRepository { return &cropCycleRepo{db} }

func (r *cropCycleRepo) Create(dbc dbctx.Context, c *entities.CropCycle) error {
	return store.Create(dbc.DB(r.db), c)
}

func (r *cropCycleRepo) Update(dbc dbctx.Context, c *entities.CropCycle) error {
	return store.Save(dbc.DB(r.db), c)
}

// Delete removes the cycle and its stages.
func (r *cropCycleRepo) Delete(dbc dbctx.Context, id uint) error {
	db := dbc.DB(r.db)
	if err := db.Where("crop_cycle_id = ?", id).Delete(&entities.CropCycleStage{}).Error; err != nil {
		return err
	}
	return db.Delete(&entities.CropCycle{}, id).Error
}

func (r *cropCycleRepo) FindByID(dbc dbctx.Context, id uint) (*entities.CropCycle, error) {
	return store.First[entities.CropCycle](dbc.DB(r.db), "crop cycle", id, preloads...)
}

func (r *cropCycleRepo) List(dbc dbctx.Context, f repository.Filter, page store.Page) ([]entities.CropCycle, int64, error) {
	q := dbc.DB(r.db).Model(&entities.CropCycle{})
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	if f.LandParcelID != nil {
		q = q.Where("land_parcel_id = ?", *f.LandParcelID)
	}
	if f.CropTypeID != nil {
		q = q.Where("crop_type_id = ?", *f.CropTypeID)
	}
	if f.SeasonID != nil {
		q = q.Where("season_id = ?", *f.SeasonID)
	}
	q = store.Search(q, f.Search, "cycle_code", "notes")
	return store.Paginate[entities.CropCycle](q, page, "planned_start_date DESC, id DESC", preloads...)
}

func (r *cropCycleRepo) CodeTaken(dbc dbctx.Context, code string, exceptID uint) (bool, error) {
	return store.Taken[entities.CropCycle](dbc.DB(r.db), "cycle_code", code, exceptID)
}

func (r *cropCycleRepo) OpenOnParcel(dbc dbctx.Context, parcelID, exceptID uint) ([]entities.CropCycle, error) {
	var out []entities.CropCycle
	q := dbc.DB(r.db).
		Where("land_parcel_id = ?", parcelID).
		Where("status IN ?", []string{entities.CycleStatusPlanned, entities.CycleStatusActive})
	if exceptID != 0 {
		q = q.Where("id <> ?", exceptID)
	}
	err := q.Order("planned_start_date ASC").Find(&out).Error
	return out, err
}

func (r *cropCycleRepo) HasActivityLogs(dbc dbctx.Context, id uint) (bool, error) {
	var n int64
	err := dbc.DB(r.db).Model(&entities.ActivityLog{}).Where("crop_cycle_id = ?", id).Count(&n).Error
	return n > 0, err
}

func (r *cropCycleRepo) LandParcelActive(dbc dbctx.Context, id uint) (bool, error) {
	return store.Exists[entities.LandParcel](dbc.DB(r.db), id, true)
}

func (r *cropCycleRepo) CropTypeActive(dbc dbctx.Context, id uint) (bool, error) {
	return store.Exists[entities.CropType](dbc.DB(r.db), id, true)
}

func (r *cropCycleRepo) SeasonActive(dbc dbctx.Context, id uint) (bool, error) {
	return store.Exists[entities.Season](dbc.DB(r.db), id, true)
}

func (r *cropCycleRepo) UnitExists(dbc dbctx.Context, id uint) (bool, error) {
	return store.Exists[entities.UnitOfMeasure](dbc.DB(r.db), id, false)
}
