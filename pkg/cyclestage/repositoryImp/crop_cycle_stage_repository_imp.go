package repositoryImp

import (
	"gorm.io/gorm"

	"farmbook/entities"
	"farmbook/pkg/cyclestage/repository"
	"farmbook/pkg/dbctx"
	"farmbook/pkg/store"
)

type stageRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.CropCycleStageRepository { return &stageRepo{db} }

func (r *stageRepo) Create(dbc dbctx.Context, s *entities.CropCycleStage) error {
	return store.Create(dbc.DB(r.db), s)
}

func (r *stageRepo) Update(dbc dbctx.Context, s *entities.CropCycleStage) error {
	return store.Save(dbc.DB(r.db), s)
}

func (r *stageRepo) Delete(dbc dbctx.Context, id uint) error {
	return dbc.DB(r.db).Delete(&entities.CropCycleStage{}, id).Error
}

func (r *stageRepo) FindByID(dbc dbctx.Context, id uint) (*entities.CropCycleStage, error) {
	return store.First[entities.CropCycleStage](dbc.DB(r.db), "crop cycle stage", id, "CropCycle")
}

func (r *stageRepo) List(dbc dbctx.Context, f repository.Filter, page store.Page) ([]entities.CropCycleStage, int64, error) {
	q := dbc.DB(r.db).Model(&entities.CropCycleStage{})
	if f.CropCycleID != nil {
		q = q.Where("crop_cycle_id = ?", *f.CropCycleID)
	}
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	return store.Paginate[entities.CropCycleStage](q, page, "crop_cycle_id ASC, sequence_order ASC")
}

func (r *stageRepo) ListByCycle(dbc dbctx.Context, cycleID uint) ([]entities.CropCycleStage, error) {
	out := []entities.CropCycleStage{}
	err := dbc.DB(r.db).Where("crop_cycle_id = ?", cycleID).Order("sequence_order ASC").Find(&out).Error
	return out, err
}

func (r *stageRepo) CountByCycle(dbc dbctx.Context, cycleID uint) (int64, error) {
	var n int64
	err := dbc.DB(r.db).Model(&entities.CropCycleStage{}).Where("crop_cycle_id = ?", cycleID).Count(&n).Error
	return n, err
}

func (r *stageRepo) SequenceTaken(dbc dbctx.Context, cycleID uint, seq int, exceptID uint) (bool, error) {
	var n int64
	q := dbc.DB(r.db).Model(&entities.CropCycleStage{}).
		Where("crop_cycle_id = ? AND sequence_order = ?", cycleID, seq)
	if exceptID != 0 {
		q = q.Where("id <> ?", exceptID)
	}
	if err := q.Count(&n).Error; err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *stageRepo) FindCycle(dbc dbctx.Context, id uint) (*entities.CropCycle, error) {
	return store.First[entities.CropCycle](dbc.DB(r.db), "crop cycle", id)
}
