package serviceImp

import (
	"context"

	"gorm.io/gorm"

	"farmbook/entities"
	"farmbook/pkg/apperr"
	"farmbook/pkg/codegen"
	"farmbook/pkg/dbctx"
	"farmbook/pkg/store"
	"farmbook/pkg/validate"
	"farmbook/pkg/watersource/repository"
	"farmbook/pkg/watersource/service"
)

const codePrefix = "WS"

type waterSourceSvc struct {
	db *gorm.DB
	r  repository.WaterSourceRepository
}

func NewWaterSourceService(db *gorm.DB, r repository.WaterSourceRepository) service.WaterSourceService {
	return &waterSourceSvc{db: db, r: r}
}

func (s *waterSourceSvc) List(ctx context.Context, f repository.Filter, page store.Page) ([]entities.WaterSource, int64, error) {
	return s.r.List(dbctx.New(ctx), f, page)
}

func (s *waterSourceSvc) Get(ctx context.Context, id uint) (*entities.WaterSource, error) {
	return s.r.FindByID(dbctx.New(ctx), id)
}

func (s *waterSourceSvc) Create(ctx context.Context, in service.CreateInput) (*entities.WaterSource, error) {
	var out *entities.WaterSource
	err := dbctx.Transaction(ctx, s.db, func(dbc dbctx.Context) error {
		ve := validate.Struct(in)
		code, err := codegen.Assign(ve, "code", codePrefix, in.Code, s.taken(dbc, 0))
		if err != nil {
			return err
		}
		if err := s.checkUnit(dbc, ve, in.CapacityUnitID); err != nil {
			return err
		}
		if err := ve.OrNil(); err != nil {
			return err
		}

		ws := &entities.WaterSource{
			Code:           code,
			Name:           in.Name,
			SourceType:     in.SourceType,
			CapacityValue:  in.CapacityValue,
			CapacityUnitID: in.CapacityUnitID,
			WaterQuality:   in.WaterQuality,
			Latitude:       in.Latitude,
			Longitude:      in.Longitude,
			IsActive:       true,
		}
		if in.IsActive != nil {
			ws.IsActive = *in.IsActive
		}
		if in.Description != nil {
			ws.Description = *in.Description
		}
		if err := s.r.Create(dbc, ws); err != nil {
			return err
		}
		out, err = s.r.FindByID(dbc, ws.ID)
		return err
	})
	return out, err
}

func (s *waterSourceSvc) Update(ctx context.Context, id uint, in service.UpdateInput) (*entities.WaterSource, error) {
	var out *entities.WaterSource
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
		if err := s.checkUnit(dbc, ve, in.CapacityUnitID); err != nil {
			return err
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
		if in.SourceType != nil {
			cur.SourceType = *in.SourceType
		}
		if in.CapacityValue != nil {
			cur.CapacityValue = in.CapacityValue
		}
		if in.CapacityUnitID != nil {
			cur.CapacityUnitID = in.CapacityUnitID
		}
		if in.WaterQuality != nil {
			cur.WaterQuality = in.WaterQuality
		}
		if in.Latitude != nil {
			cur.Latitude = in.Latitude
		}
		if in.Longitude != nil {
			cur.Longitude = in.Longitude
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
		out, err = s.r.FindByID(dbc, cur.ID)
		return err
	})
	return out, err
}

func (s *waterSourceSvc) Delete(ctx context.Context, id uint) error {
	return dbctx.Transaction(ctx, s.db, func(dbc dbctx.Context) error {
		if _, err := s.r.FindByID(dbc, id); err != nil {
			return err
		}
		used, err := s.r.InUse(dbc, id)
		if err != nil {
			return err
		}
		if used {
			return apperr.Conflict("The water source is in use and cannot be deleted.")
		}
		return s.r.Delete(dbc, id)
	})
}

func (s *waterSourceSvc) taken(dbc dbctx.Context, exceptID uint) codegen.TakenFunc {
	return func(code string) (bool, error) { return s.r.CodeTaken(dbc, code, exceptID) }
}

func (s *waterSourceSvc) checkUnit(dbc dbctx.Context, ve *apperr.ValidationError, id *uint) error {
	if id == nil {
		return nil
	}
	ok, err := s.r.UnitExists(dbc, *id)
	if err != nil {
		return err
	}
	if !ok {
		ve.Add("capacity_unit_id", validate.Invalid("capacity_unit_id"))
	}
	return nil
}
