package serviceImp

import (
	"context"

	"gorm.io/gorm"

	"farmbook/entities"
	"farmbook/pkg/apperr"
	"farmbook/pkg/codegen"
	"farmbook/pkg/dates"
	"farmbook/pkg/dbctx"
	"farmbook/pkg/season/repository"
	"farmbook/pkg/season/service"
	"farmbook/pkg/store"
	"farmbook/pkg/validate"
)

type seasonSvc struct {
	db *gorm.DB
	r  repository.SeasonRepository
}

func NewSeasonService(db *gorm.DB, r repository.SeasonRepository) service.SeasonService {
	return &seasonSvc{db: db, r: r}
}

func (s *seasonSvc) List(ctx context.Context, f repository.SeasonFilter, page store.Page) ([]entities.Season, int64, error) {
	return s.r.List(dbctx.New(ctx), f, page)
}

func (s *seasonSvc) Get(ctx context.Context, id uint) (*entities.Season, error) {
	return s.r.FindByID(dbctx.New(ctx), id)
}

func (s *seasonSvc) Create(ctx context.Context, in service.SeasonInput) (*entities.Season, error) {
	var out *entities.Season
	err := dbctx.Transaction(ctx, s.db, func(dbc dbctx.Context) error {
		ve := validate.Struct(in)
		code, err := codegen.Assign(ve, "code", "SS", in.Code, s.taken(dbc, 0))
		if err != nil {
			return err
		}
		if err := s.checkDefinition(dbc, ve, in.SeasonDefinitionID); err != nil {
			return err
		}
		if ve.Has("start_date") || ve.Has("end_date") {
			return ve
		}
		start, _ := dates.ParsePtr(in.StartDate)
		end, _ := dates.ParsePtr(in.EndDate)
		checkRange(ve, start, end)
		if err := ve.OrNil(); err != nil {
			return err
		}

		ss := &entities.Season{
			Code:               code,
			Name:               in.Name,
			SeasonDefinitionID: in.SeasonDefinitionID,
			Year:               in.Year,
			StartDate:          start,
			EndDate:            end,
			IsActive:           true,
		}
		if in.IsActive != nil {
			ss.IsActive = *in.IsActive
		}
		if in.Description != nil {
			ss.Description = *in.Description
		}
		if err := s.r.Create(dbc, ss); err != nil {
			return err
		}
		out, err = s.r.FindByID(dbc, ss.ID)
		return err
	})
	return out, err
}

func (s *seasonSvc) Update(ctx context.Context, id uint, in service.SeasonPatch) (*entities.Season, error) {
	var out *entities.Season
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
		if err := s.checkDefinition(dbc, ve, in.SeasonDefinitionID); err != nil {
			return err
		}
		if ve.Has("start_date") || ve.Has("end_date") {
			return ve
		}
		start, end := cur.StartDate, cur.EndDate
		if in.StartDate != nil {
			start, _ = dates.ParsePtr(in.StartDate)
		}
		if in.EndDate != nil {
			end, _ = dates.ParsePtr(in.EndDate)
		}
		checkRange(ve, start, end)
		if err := ve.OrNil(); err != nil {
			return err
		}

		if in.Code != nil {
			cur.Code = *in.Code
		}
		if in.Name != nil {
			cur.Name = *in.Name
		}
		if in.SeasonDefinitionID != nil {
			cur.SeasonDefinitionID = in.SeasonDefinitionID
		}
		if in.Year != nil {
			cur.Year = in.Year
		}
		cur.StartDate, cur.EndDate = start, end
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

func (s *seasonSvc) Delete(ctx context.Context, id uint) error {
	return dbctx.Transaction(ctx, s.db, func(dbc dbctx.Context) error {
		if _, err := s.r.FindByID(dbc, id); err != nil {
			return err
		}
		used, err := s.r.InUse(dbc, id)
		if err != nil {
			return err
		}
		if used {
			return apperr.Conflict("The season is used by crop cycles and cannot be deleted.")
		}
		return s.r.Delete(dbc, id)
	})
}

func (s *seasonSvc) taken(dbc dbctx.Context, exceptID uint) codegen.TakenFunc {
	return func(code string) (bool, error) { return s.r.CodeTaken(dbc, code, exceptID) }
}

func (s *seasonSvc) checkDefinition(dbc dbctx.Context, ve *apperr.ValidationError, id *uint) error {
	if id == nil {
		return nil
	}
	ok, err := s.r.DefinitionExists(dbc, *id)
	if err != nil {
		return err
	}
	if !ok {
		ve.Add("season_definition_id", validate.Invalid("season_definition_id"))
	}
	return nil
}

func checkRange(ve *apperr.ValidationError, start, end *dates.Date) {
	if start != nil && end != nil && !end.After(*start) {
		ve.Add("end_date", validate.After("end_date", "start_date"))
	}
}
