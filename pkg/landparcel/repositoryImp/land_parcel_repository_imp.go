package repositoryImp

import (
	"errors"

	"gorm.io/gorm"

	"farmbook/entities"
	"farmbook/pkg/apperr"
	"farmbook/pkg/dbctx"
	"farmbook/pkg/landparcel/repository"
	"farmbook/pkg/store"
)

type landParcelRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.LandParcelRepository { return &landParcelRepo{db} }

func (r *landParcelRepo) Create(dbc dbctx.Context, p *entities.LandParcel) error {
	return store.Create(dbc.DB(r.db), p)
}

func (r *landParcelRepo) Update(dbc dbctx.Context, p *entities.LandParcel) error {
	return store.Save(dbc.DB(r.db), p)
}

// Delete removes the parcel together with its water-source links.
func (r *landParcelRepo) Delete(dbc dbctx.Context, id uint) error {
	db := dbc.DB(r.db)
	if err := db.Where("land_parcel_id = ?", id).Delete(&entities.LandParcelWaterSource{}).Error; err != nil {
		return err
	}
	return db.Delete(&entities.LandParcel{}, id).Error
}

func (r *landParcelRepo) FindByID(dbc dbctx.Context, id uint) (*entities.LandParcel, error) {
	return store.First[entities.LandParcel](dbc.DB(r.db), "land parcel", id, "AreaUnit", "WaterSources.WaterSource")
}

func (r *landParcelRepo) List(dbc dbctx.Context, f repository.Filter, page store.Page) ([]entities.LandParcel, int64, error) {
	q := dbc.DB(r.db).Model(&entities.LandParcel{})
	if f.LandType != "" {
		q = q.Where("land_type = ?", f.LandType)
	}
	if f.IsActive != nil {
		q = q.Where("is_active = ?", *f.IsActive)
	}
	q = store.Search(q, f.Search, "name", "code")
	return store.Paginate[entities.LandParcel](q, page, "name ASC", "AreaUnit")
}

func (r *landParcelRepo) CodeTaken(dbc dbctx.Context, code string, exceptID uint) (bool, error) {
	return store.Taken[entities.LandParcel](dbc.DB(r.db), "code", code, exceptID)
}

func (r *landParcelRepo) UnitExists(dbc dbctx.Context, id uint) (bool, error) {
	return store.Exists[entities.UnitOfMeasure](dbc.DB(r.db), id, false)
}

// InUse reports whether a crop cycle or activity log references the parcel.
func (r *landParcelRepo) InUse(dbc dbctx.Context, id uint) (bool, error) {
	db := dbc.DB(r.db)
	var n int64
	if err := db.Model(&entities.CropCycle{}).Where("land_parcel_id = ?", id).Count(&n).Error; err != nil {
		return false, err
	}
	if n > 0 {
		return true, nil
	}
	if err := db.Model(&entities.ActivityLog{}).Where("land_parcel_id = ?", id).Count(&n).Error; err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *landParcelRepo) WaterSourceExists(dbc dbctx.Context, id uint) (bool, error) {
	return store.Exists[entities.WaterSource](dbc.DB(r.db), id, false)
}

func (r *landParcelRepo) Attachments(dbc dbctx.Context, parcelID uint) ([]entities.LandParcelWaterSource, error) {
	var out []entities.LandParcelWaterSource
	err := dbc.DB(r.db).
		Preload("WaterSource").
		Where("land_parcel_id = ?", parcelID).
		Order("is_primary_source DESC, id ASC").
		Find(&out).Error
	return out, err
}

func (r *landParcelRepo) FindAttachment(dbc dbctx.Context, parcelID, waterSourceID uint) (*entities.LandParcelWaterSource, error) {
	var a entities.LandParcelWaterSource
	err := dbc.DB(r.db).
		Preload("WaterSource").
		Where("land_parcel_id = ? AND water_source_id = ?", parcelID, waterSourceID).
		First(&a).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NotFound("water source attachment", waterSourceID)
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *landParcelRepo) Attach(dbc dbctx.Context, a *entities.LandParcelWaterSource) error {
	return store.Create(dbc.DB(r.db), a)
}

func (r *landParcelRepo) Detach(dbc dbctx.Context, parcelID, waterSourceID uint) error {
	return dbc.DB(r.db).
		Where("land_parcel_id = ? AND water_source_id = ?", parcelID, waterSourceID).
		Delete(&entities.LandParcelWaterSource{}).Error
}

func (r *landParcelRepo) ClearPrimary(dbc dbctx.Context, parcelID, exceptWaterSourceID uint) error {
	return dbc.DB(r.db).Model(&entities.LandParcelWaterSource{}).
		Where("land_parcel_id = ? AND water_source_id <> ?", parcelID, exceptWaterSourceID).
		Update("is_primary_source", false).Error
}
