package repositoryImp

import (
	"gorm.io/gorm"

	"farmbook/entities"
	"farmbook/pkg/croptype/repository"
	"farmbook/pkg/dbctx"
	"farmbook/pkg/store"
)

type cropTypeRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.CropTypeRepository { return &cropTypeRepo{db} }

func (r *cropTypeRepo) Create(dbc dbctx.Context, ct *entities.CropType) error {
	return store.Create(dbc.DB(r.db), ct)
}

func (r *cropTypeRepo) Update(dbc dbctx.Context, ct *entities.CropType) error {
	return store.Save(dbc.DB(r.db), ct)
}

func (r *cropTypeRepo) Delete(dbc dbctx.Context, id uint) error {
	return dbc.DB(r.db).Delete(&entities.CropType{}, id).Error
}

func (r *cropTypeRepo) FindByID(dbc dbctx.Context, id uint) (*entities.CropType, error) {
	return store.First[entities.CropType](dbc.DB(r.db), "crop type", id)
}

func (r *cropTypeRepo) List(dbc dbctx.Context, f repository.Filter, page store.Page) ([]entities.CropType, int64, error) {
	q := dbc.DB(r.db).Model(&entities.CropType{})
	if f.Category != "" {
		q = q.Where("category = ?", f.Category)
	}
	if f.IsActive != nil {
		q = q.Where("is_active = ?", *f.IsActive)
	}
	q = store.Search(q, f.Search, "name", "code", "scientific_name")
	return store.Paginate[entities.CropType](q, page, "name ASC")
}

func (r *cropTypeRepo) CodeTaken(dbc dbctx.Context, code string, exceptID uint) (bool, error) {
	return store.Taken[entities.CropType](dbc.DB(r.db), "code", code, exceptID)
}

func (r *cropTypeRepo) InUse(dbc dbctx.Context, id uint) (bool, error) {
	var n int64
	err := dbc.DB(r.db).Model(&entities.CropCycle{}).Where("crop_type_id = ?", id).Count(&n).Error
	return n > 0, err
}
