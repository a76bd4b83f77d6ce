package serviceImp

import (
	"context"

	"gorm.io/gorm"

	"farmbook/entities"
	"farmbook/pkg/apperr"
	"farmbook/pkg/codegen"
	"farmbook/pkg/dbctx"
	"farmbook/pkg/season/repository"
	"farmbook/pkg/season/service"
	"farmbook/pkg/store"
	"farmbook/pkg/validate"
)

type definitionSvc struct {
	db *gorm.DB
	r  repository.DefinitionRepository
}

func NewDefinitionService(db *gorm.DB, r repository.DefinitionRepository) service.DefinitionService {
	return &definitionSvc{db: db, r: r}
}

func (s *definitionSvc) List(ctx context.Context, f repository.DefinitionFilter, page store.Page) ([]entities.SeasonDefinition, int64, error) {
	return s.r.List(dbctx.New(ctx), f, page)
}

func (s *definitionSvc) Get(ctx context.Context, id uint) (*entities.SeasonDefinition, error) {
	return s.r.FindByID(dbctx.New(ctx), id)
}

func (s *definitionSvc) Create(ctx context.Context, in service.DefinitionInput) (*entities.SeasonDefinition, error) {
	var out *entities.SeasonDefinition
	err := dbctx.Transaction(ctx, s.db, func(dbc dbctx.Context) error {
		ve := validate.Struct(in)
		code, err := codegen.Assign(ve, "code", "SD", in.Code, s.taken(dbc, 0))
		if err != nil {
			return err
		}
		if err := ve.OrNil(); err != nil {
			return err
		}
		d := &entities.SeasonDefinition{
			Code:       code,
			Name:       in.Name,
			StartMonth: in.StartMonth,
			EndMonth:   in.EndMonth,
			IsActive:   true,
		}
		if in.IsActive != nil {
			d.IsActive = *in.IsActive
		}
		if in.Description != nil {
			d.Description = *in.Description
		}
		if err := s.r.Create(dbc, d); err != nil {
			return err
		}
		out = d
		return nil
	})
	return out, err
}

func (s *definitionSvc) Update(ctx context.Context, id uint, in service.DefinitionPatch) (*entities.SeasonDefinition, error) {
	var out *entities.SeasonDefinition
	err := dbctx.Transaction(ctx, s.db, func(dbc dbctx.Context) error {
		cur, err := s.r.FindByID(dbc, id)
		if err != nil {
			return err
		}
		ve := validate.Struct(in)
		if in.Code != nil {
			if err := codegen.Check(ve, "code", *in.Code, s.taken(dbc, cur.ID)); err != nil {
				return err
			}
		}
		if err := ve.OrNil(); err != nil {
			return err
		}
		if in.Code != nil {
			cur.Code = *in.Code
		}
		if in.Name != nil {
			cur.Name = *in.Name
		}
		if in.StartMonth != nil {
			cur.StartMonth = in.StartMonth
		}
		if in.EndMonth != nil {
			cur.EndMonth = in.EndMonth
		}
		if in.IsActive != nil {
			cur.IsActive = *in.IsActive
		}
		if in.Description != nil {
			cur.Description = *in.Description
		}
		if err := s.r.Update(dbc, cur); err != nil {
			return err
		}
		out = cur
		return nil
	})
	return out, err
}

func (s *definitionSvc) Delete(ctx context.Context, id uint) error {
	return dbctx.Transaction(ctx, s.db, func(dbc dbctx.Context) error {
		if _, err := s.r.FindByID(dbc, id); err != nil {
			return err
		}
		used, err := s.r.InUse(dbc, id)
		if err != nil {
			return err
		}
		if used {
			return apperr.Conflict("The season definition has seasons and cannot be deleted.")
		}
		return s.r.Delete(dbc, id)
	})
}

func (s *definitionSvc) taken(dbc dbctx.Context, exceptID uint) codegen.TakenFunc {
	return func(code string) (bool, error) { return s.r.CodeTaken(dbc, code, exceptID) }
}
