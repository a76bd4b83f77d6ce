package serviceImp

import (
	"context"

	"gorm.io/gorm"

	"farmbook/entities"
	"farmbook/pkg/apperr"
	"farmbook/pkg/dbctx"
	"farmbook/pkg/store"
	"farmbook/pkg/unit/repository"
	"farmbook/pkg/unit/service"
	"farmbook/pkg/validate"
)

type unitSvc struct {
	db *gorm.DB
	r  repository.UnitRepository
}

func NewUnitService(db *gorm.DB, r repository.UnitRepository) service.UnitService {
	return &unitSvc{db: db, r: r}
}

func (s *unitSvc) List(ctx context.Context, f repository.Filter, page store.Page) ([]entities.UnitOfMeasure, int64, error) {
	return s.r.List(dbctx.New(ctx), f, page)
}

func (s *unitSvc) Get(ctx context.Context, id uint) (*entities.UnitOfMeasure, error) {
	return s.r.FindByID(dbctx.New(ctx), id)
}

func (s *unitSvc) Create(ctx context.Context, in service.CreateInput) (*entities.UnitOfMeasure, error) {
	var out *entities.UnitOfMeasure
	err := dbctx.Transaction(ctx, s.db, func(dbc dbctx.Context) error {
		ve := validate.Struct(in)
		if !ve.Has("abbreviation") {
			taken, err := s.r.AbbreviationTaken(dbc, in.Abbreviation, 0)
			if err != nil {
				return err
			}
			if taken {
				ve.Add("abbreviation", validate.Taken("abbreviation"))
			}
		}
		if err := ve.OrNil(); err != nil {
			return err
		}

		u := &entities.UnitOfMeasure{
			Name:                   in.Name,
			Abbreviation:           in.Abbreviation,
			UnitType:               in.UnitType,
			ConversionFactorToBase: 1,
			IsActive:               true,
		}
		if in.ConversionFactorToBase != nil {
			u.ConversionFactorToBase = *in.ConversionFactorToBase
		}
		if in.IsBaseUnit != nil {
			u.IsBaseUnit = *in.IsBaseUnit
		}
		if in.IsActive != nil {
			u.IsActive = *in.IsActive
		}
		if in.Description != nil {
			u.Description = *in.Description
		}
		if err := s.r.Create(dbc, u); err != nil {
			return err
		}
		out = u
		return nil
	})
	return out, err
}

func (s *unitSvc) Update(ctx context.Context, id uint, in service.UpdateInput) (*entities.UnitOfMeasure, error) {
	var out *entities.UnitOfMeasure
	err := dbctx.Transaction(ctx, s.db, func(dbc dbctx.Context) error {
		cur, err := s.r.FindByID(dbc, id)
		if err != nil {
			return err
		}
		ve := validate.Struct(in)
		if in.Abbreviation != nil && !ve.Has("abbreviation") {
			taken, err := s.r.AbbreviationTaken(dbc, *in.Abbreviation, cur.ID)
			if err != nil {
				return err
			}
			if taken {
				ve.Add("abbreviation", validate.Taken("abbreviation"))
			}
		}
		if err := ve.OrNil(); err != nil {
			return err
		}

		if in.Name != nil {
			cur.Name = *in.Name
		}
		if in.Abbreviation != nil {
			cur.Abbreviation = *in.Abbreviation
		}
		if in.UnitType != nil {
			cur.UnitType = *in.UnitType
		}
		if in.ConversionFactorToBase != nil {
			cur.ConversionFactorToBase = *in.ConversionFactorToBase
		}
		if in.IsBaseUnit != nil {
			cur.IsBaseUnit = *in.IsBaseUnit
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

func (s *unitSvc) Delete(ctx context.Context, id uint) error {
	return dbctx.Transaction(ctx, s.db, func(dbc dbctx.Context) error {
		if _, err := s.r.FindByID(dbc, id); err != nil {
			return err
		}
		used, err := s.r.InUse(dbc, id)
		if err != nil {
			return err
		}
		if used {
			return apperr.Conflict("The unit of measure is in use and cannot be deleted.")
		}
		return s.r.Delete(dbc, id)
	})
}

// Convert expresses value, given in fromID, in toID via the base unit of
// their shared type.
func (s *unitSvc) Convert(ctx context.Context, value float64, fromID, toID uint) (*service.Conversion, error) {
	dbc := dbctx.New(ctx)
	ve := apperr.NewValidation()
	from, err := s.r.FindByID(dbc, fromID)
	if err != nil {
		if !apperr.IsNotFound(err) {
			return nil, err
		}
		ve.Add("from_unit_id", validate.Invalid("from_unit_id"))
	}
	to, err := s.r.FindByID(dbc, toID)
	if err != nil {
		if !apperr.IsNotFound(err) {
			return nil, err
		}
		ve.Add("to_unit_id", validate.Invalid("to_unit_id"))
	}
	if from != nil && to != nil && from.UnitType != to.UnitType {
		ve.Add("to_unit_id", "The to unit id field must be a unit of type "+from.UnitType+".")
	}
	if err := ve.OrNil(); err != nil {
		return nil, err
	}
	base := from.ToBase(value)
	return &service.Conversion{
		Value:     value,
		From:      *from,
		To:        *to,
		Result:    base / to.ConversionFactorToBase,
		BaseValue: base,
		UnitType:  from.UnitType,
	}, nil
}
