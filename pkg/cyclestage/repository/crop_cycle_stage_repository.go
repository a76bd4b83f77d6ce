package repository

import (
	"farmbook/entities"
	"farmbook/pkg/dbctx"
	"farmbook/pkg/store"
)

type Filter struct {
	CropCycleID *uint
	Status      string
}

type CropCycleStageRepository interface {
	Create(dbc dbctx.Context, s *entities.CropCycleStage) error
	Update(dbc dbctx.Context, s *entities.CropCycleStage) error
	Delete(dbc dbctx.Context, id uint) error
	FindByID(dbc dbctx.Context, id uint) (*entities.CropCycleStage, error)
	List(dbc dbctx.Context, f Filter, page store.Page) ([]entities.CropCycleStage, int64, error)
	ListByCycle(dbc dbctx.Context, cycleID uint) ([]entities.CropCycleStage, error)
	CountByCycle(dbc dbctx.Context, cycleID uint) (int64, error)

	// SequenceTaken reports whether another stage of the cycle holds seq.
	SequenceTaken(dbc dbctx.Context, cycleID uint, seq int, exceptID uint) (bool, error)
	FindCycle(dbc dbctx.Context, id uint) (*entities.CropCycle, error)
}
