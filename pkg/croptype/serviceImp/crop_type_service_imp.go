package serviceImp

import (
	"context"

	"gorm.io/gorm"

	"farmbook/entities"
	"farmbook/pkg/apperr"
	"farmbook/pkg/codegen"
	"farmbook/pkg/croptype/repository"
	"farmbook/pkg/croptype/service"
	"farmbook/pkg/dbctx"
	"farmbook/pkg/store"
	"farmbook/pkg/validate"
)

type cropTypeSvc struct {
	db *gorm.DB
	r  repository.CropTypeRepository
}

func NewCropTypeService(db *gorm.DB, r repository.CropTypeRepository) service.CropTypeService {
	return &cropTypeSvc{db: db, r: r}
}

func (s *cropTypeSvc) List(ctx context.Context, f repository.Filter, page store.Page) ([]entities.CropType, int64, error) {
	return s.r.List(dbctx.New(ctx), f, page)
}

func (s *cropTypeSvc) Get(ctx context.Context, id uint) (*entities.CropType, error) {
	return s.r.FindByID(dbctx.New(ctx), id)
}

func (s *cropTypeSvc) Create(ctx context.Context, in service.CreateInput) (*entities.CropType, error) {
	var out *entities.CropType
	err := dbctx.Transaction(ctx, s.db, func(dbc dbctx.Context) error {
		ve := validate.Struct(in)
		code, err := codegen.Assign(ve, "code", "CT", in.Code, s.taken(dbc, 0))
		if err != nil {
			return err
		}
		if err := ve.OrNil(); err != nil {
			return err
		}
		ct := &entities.CropType{
			Code:                    code,
			Name:                    in.Name,
			Category:                in.Category,
			TypicalGrowDurationDays: in.TypicalGrowDurationDays,
			IsActive:                true,
		}
		if in.ScientificName != nil {
			ct.ScientificName = *in.ScientificName
		}
		if in.IsActive != nil {
			ct.IsActive = *in.IsActive
		}
		if in.Description != nil {
			ct.Description = *in.Description
		}
		if err := s.r.Create(dbc, ct); err != nil {
			return err
		}
		out = ct
		return nil
	})
	return out, err
}

func (s *cropTypeSvc) Update(ctx context.Context, id uint, in service.UpdateInput) (*entities.CropType, error) {
	var out *entities.CropType
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
		if in.ScientificName != nil {
			cur.ScientificName = *in.ScientificName
		}
		if in.Category != nil {
			cur.Category = *in.Category
		}
		if in.TypicalGrowDurationDays != nil {
			cur.TypicalGrowDurationDays = in.TypicalGrowDurationDays
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

func (s *cropTypeSvc) Delete(ctx context.Context, id uint) error {
	return dbctx.Transaction(ctx, s.db, func(dbc dbctx.Context) error {
		if _, err := s.r.FindByID(dbc, id); err != nil {
			return err
		}
		used, err := s.r.InUse(dbc, id)
		if err != nil {
			return err
		}
		if used {
			return apperr.Conflict("The crop type is used by crop cycles and cannot be deleted.")
		}
		return s.r.Delete(dbc, id)
	})
}

func (s *cropTypeSvc) taken(dbc dbctx.Context, exceptID uint) codegen.TakenFunc {
	return func(code string) (bool, error) { return s.r.CodeTaken(dbc, code, exceptID) }
}
