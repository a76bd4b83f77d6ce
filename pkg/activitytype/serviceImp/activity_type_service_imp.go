package serviceImp

import (
	"context"

	"gorm.io/gorm"

	"farmbook/entities"
	"farmbook/pkg/activitytype/repository"
	"farmbook/pkg/activitytype/service"
	"farmbook/pkg/apperr"
	"farmbook/pkg/codegen"
	"farmbook/pkg/dbctx"
	"farmbook/pkg/store"
	"farmbook/pkg/validate"
)

type activityTypeSvc struct {
	db *gorm.DB
	r  repository.ActivityTypeRepository
}

func NewActivityTypeService(db *gorm.DB, r repository.ActivityTypeRepository) service.ActivityTypeService {
	return &activityTypeSvc{db: db, r: r}
}

func (s *activityTypeSvc) List(ctx context.Context, f repository.Filter, page store.Page) ([]entities.ActivityType, int64, error) {
	return s.r.List(dbctx.New(ctx), f, page)
}

func (s *activityTypeSvc) Get(ctx context.Context, id uint) (*entities.ActivityType, error) {
	return s.r.FindByID(dbctx.New(ctx), id)
}

func (s *activityTypeSvc) Create(ctx context.Context, in service.CreateInput) (*entities.ActivityType, error) {
	var out *entities.ActivityType
	err := dbctx.Transaction(ctx, s.db, func(dbc dbctx.Context) error {
		ve := validate.Struct(in)
		code, err := codegen.Assign(ve, "code", "AT", in.Code, s.taken(dbc, 0))
		if err != nil {
			return err
		}
		if err := ve.OrNil(); err != nil {
			return err
		}
		at := &entities.ActivityType{Code: code, Name: in.Name, Category: in.Category, IsActive: true}
		if in.IsActive != nil {
			at.IsActive = *in.IsActive
		}
		if in.Description != nil {
			at.Description = *in.Description
		}
		if err := s.r.Create(dbc, at); err != nil {
			return err
		}
		out = at
		return nil
	})
	return out, err
}

func (s *activityTypeSvc) Update(ctx context.Context, id uint, in service.UpdateInput) (*entities.ActivityType, error) {
	var out *entities.ActivityType
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
		if in.Category != nil {
			cur.Category = *in.Category
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

func (s *activityTypeSvc) Delete(ctx context.Context, id uint) error {
	return dbctx.Transaction(ctx, s.db, func(dbc dbctx.Context) error {
		if _, err := s.r.FindByID(dbc, id); err != nil {
			return err
		}
		used, err := s.r.InUse(dbc, id)
		if err != nil {
			return err
		}
		if used {
			return apperr.Conflict("The activity type has activity logs and cannot be deleted.")
		}
		return s.r.Delete(dbc, id)
	})
}

func (s *activityTypeSvc) taken(dbc dbctx.Context, exceptID uint) codegen.TakenFunc {
	return func(code string) (bool, error) { return s.r.CodeTaken(dbc, code, exceptID) }
}
