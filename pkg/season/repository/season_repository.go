package repository

import (
	"farmbook/entities"
	"farmbook/pkg/dbctx"
	"farmbook/pkg/store"
)

type DefinitionFilter struct {
	IsActive *bool
	Search   string
}

type SeasonFilter struct {
	SeasonDefinitionID *uint
	Year               *uint
	IsActive           *bool
	Search             string
}

type DefinitionRepository interface {
	Create(dbc dbctx.Context, d *entities.SeasonDefinition) error
	Update(dbc dbctx.Context, d *entities.SeasonDefinition) error
	Delete(dbc dbctx.Context, id uint) error
	FindByID(dbc dbctx.Context, id uint) (*entities.SeasonDefinition, error)
	List(dbc dbctx.Context, f DefinitionFilter, page store.Page) ([]entities.SeasonDefinition, int64, error)
	CodeTaken(dbc dbctx.Context, code string, exceptID uint) (bool, error)
	InUse(dbc dbctx.Context, id uint) (bool, error)
}

type SeasonRepository interface {
	Create(dbc dbctx.Context, s *entities.Season) error
	Update(dbc dbctx.Context, s *entities.Season) error
	Delete(dbc dbctx.Context, id uint) error
	FindByID(dbc dbctx.Context, id uint) (*entities.Season, error)
	List(dbc dbctx.Context, f SeasonFilter, page store.Page) ([]entities.Season, int64, error)
	CodeTaken(dbc dbctx.Context, code string, exceptID uint) (bool, error)
	DefinitionExists(dbc dbctx.Context, id uint) (bool, error)
	InUse(dbc dbctx.Context, id uint) (bool, error)
}
