package repositoryImp

import (
	"gorm.io/gorm"

	"farmbook/entities"
	"farmbook/pkg/dbctx"
	"farmbook/pkg/season/repository"
	"farmbook/pkg/store"
)

type definitionRepo struct{ db *gorm.DB }

func NewDefinitionRepository(db *gorm.DB) repository.DefinitionRepository {
	return &definitionRepo{db}
}

func (r *definitionRepo) Create(dbc dbctx.Context, d *entities.SeasonDefinition) error {
	return store.Create(dbc.DB(r.db), d)
}

func (r *definitionRepo) Update(dbc dbctx.Context, d *entities.SeasonDefinition) error {
	return store.Save(dbc.DB(r.db), d)
}

func (r *definitionRepo) Delete(dbc dbctx.Context, id uint) error {
	return dbc.DB(r.db).Delete(&entities.SeasonDefinition{}, id).Error
}

func (r *definitionRepo) FindByID(dbc dbctx.Context, id uint) (*entities.SeasonDefinition, error) {
	return store.First[entities.SeasonDefinition](dbc.DB(r.db), "season definition", id)
}

func (r *definitionRepo) List(dbc dbctx.Context, f repository.DefinitionFilter, page store.Page) ([]entities.SeasonDefinition, int64, error) {
	q := dbc.DB(r.db).Model(&entities.SeasonDefinition{})
	if f.IsActive != nil {
		q = q.Where("is_active = ?", *f.IsActive)
	}
	q = store.Search(q, f.Search, "name", "code")
	return store.Paginate[entities.SeasonDefinition](q, page, "start_month ASC, name ASC")
}

func (r *definitionRepo) CodeTaken(dbc dbctx.Context, code string, exceptID uint) (bool, error) {
	return store.Taken[entities.SeasonDefinition](dbc.DB(r.db), "code", code, exceptID)
}

func (r *definitionRepo) InUse(dbc dbctx.Context, id uint) (bool, error) {
	var n int64
	err := dbc.DB(r.db).Model(&entities.Season{}).Where("season_definition_id = ?", id).Count(&n).Error
	return n > 0, err
}

type seasonRepo struct{ db *gorm.DB }

func NewSeasonRepository(db *gorm.DB) repository.SeasonRepository { return &seasonRepo{db} }

func (r *seasonRepo) Create(dbc dbctx.Context, s *entities.Season) error {
	return store.Create(dbc.DB(r.db), s)
}

func (r *seasonRepo) Update(dbc dbctx.Context, s *entities.Season) error {
	return store.Save(dbc.DB(r.db), s)
}

func (r *seasonRepo) Delete(dbc dbctx.Context, id uint) error {
	return dbc.DB(r.db).Delete(&entities.Season{}, id).Error
}

func (r *seasonRepo) FindByID(dbc dbctx.Context, id uint) (*entities.Season, error) {
	return store.First[entities.Season](dbc.DB(r.db), "season", id, "SeasonDefinition")
}

func (r *seasonRepo) List(dbc dbctx.Context, f repository.SeasonFilter, page store.Page) ([]entities.Season, int64, error) {
	q := dbc.DB(r.db).Model(&entities.Season{})
	if f.SeasonDefinitionID != nil {
		q = q.Where("season_definition_id = ?", *f.SeasonDefinitionID)
	}
	if f.Year != nil {
		q = q.Where("year = ?", *f.Year)
	}
	if f.IsActive != nil {
		q = q.Where("is_active = ?", *f.IsActive)
	}
	q = store.Search(q, f.Search, "name", "code")
	return store.Paginate[entities.Season](q, page, "year DESC, start_date ASC, id ASC", "SeasonDefinition")
}

func (r *seasonRepo) CodeTaken(dbc dbctx.Context, code string, exceptID uint) (bool, error) {
	return store.Taken[entities.Season](dbc.DB(r.db), "code", code, exceptID)
}

func (r *seasonRepo) DefinitionExists(dbc dbctx.Context, id uint) (bool, error) {
	return store.Exists[entities.SeasonDefinition](dbc.DB(r.db), id, false)
}

func (r *seasonRepo) InUse(dbc dbctx.Context, id uint) (bool, error) {
	var n int64
	err := dbc.DB(r.db).Model(&entities.CropCycle{}).Where("season_id = ?", id).Count(&n).Error
	return n > 0, err
}
