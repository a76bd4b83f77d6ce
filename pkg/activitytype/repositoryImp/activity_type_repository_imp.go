package repositoryImp

import (
	"gorm.io/gorm"

	"farmbook/entities"
	"farmbook/pkg/activitytype/repository"
	"farmbook/pkg/dbctx"
	"farmbook/pkg/store"
)

type activityTypeRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.ActivityTypeRepository { return &activityTypeRepo{db} }

func (r *activityTypeRepo) Create(dbc dbctx.Context, at *entities.ActivityType) error {
	return store.Create(dbc.DB(r.db), at)
}

func (r *activityTypeRepo) Update(dbc dbctx.Context, at *entities.ActivityType) error {
	return store.Save(dbc.DB(r.db), at)
}

func (r *activityTypeRepo) Delete(dbc dbctx.Context, id uint) error {
	return dbc.DB(r.db).Delete(&entities.ActivityType{}, id).Error
}

func (r *activityTypeRepo) FindByID(dbc dbctx.Context, id uint) (*entities.ActivityType, error) {
	return store.First[entities.ActivityType](dbc.DB(r.db), "activity type", id)
}

func (r *activityTypeRepo) List(dbc dbctx.Context, f repository.Filter, page store.Page) ([]entities.ActivityType, int64, error) {
	q := dbc.DB(r.db).Model(&entities.ActivityType{})
	if f.Category != "" {
		q = q.Where("category = ?", f.Category)
	}
	if f.IsActive != nil {
		q = q.Where("is_active = ?", *f.IsActive)
	}
	q = store.Search(q, f.Search, "name", "code")
	return store.Paginate[entities.ActivityType](q, page, "category ASC, name ASC")
}

func (r *activityTypeRepo) CodeTaken(dbc dbctx.Context, code string, exceptID uint) (bool, error) {
	return store.Taken[entities.ActivityType](dbc.DB(r.db), "code", code, exceptID)
}

func (r *activityTypeRepo) InUse(dbc dbctx.Context, id uint) (bool, error) {
	var n int64
	err := dbc.DB(r.db).Model(&entities.ActivityLog{}).Where("activity_type_id = ?", id).Count(&n).Error
	return n > 0, err
}
