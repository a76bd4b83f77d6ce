package serviceImp

import (
	"context"

	"gorm.io/gorm"

	"farmbook/entities"
	"farmbook/pkg/apperr"
	"farmbook/pkg/codegen"
	"farmbook/pkg/dbctx"
	"farmbook/pkg/landparcel/repository"
	"farmbook/pkg/landparcel/service"
	"farmbook/pkg/store"
	"farmbook/pkg/validate"
)

const codePrefix = "LP"

type landParcelSvc struct {
	db *gorm.DB
	r  repository.LandParcelRepository
}

func NewLandParcelService(db *gorm.DB, r repository.LandParcelRepository) service.LandParcelService {
	return &landParcelSvc{db: db, r: r}
}

func (s *landParcelSvc) List(ctx context.Context, f repository.Filter, page store.Page) ([]entities.LandParcel, int64, error) {
	return s.r.List(dbctx.New(ctx), f, page)
}

func (s *landParcelSvc) Get(ctx context.Context, id uint) (*entities.LandParcel, error) {
	return s.r.FindByID(dbctx.New(ctx), id)
}

func (s *landParcelSvc) Create(ctx context.Context, in service.CreateInput) (*entities.LandParcel, error) {
	var out *entities.LandParcel
	err := dbctx.Transaction(ctx, s.db, func(dbc dbctx.Context) error {
		ve := validate.Struct(in)
		code, err := codegen.Assign(ve, "code", codePrefix, in.Code, s.taken(dbc, 0))
		if err != nil {
			return err
		}
		if err := s.checkUnit(dbc, ve, in.AreaUnitID); err != nil {
			return err
		}
		if err := ve.OrNil(); err != nil {
			return err
		}

		p := &entities.LandParcel{
			Code:       code,
			Name:       in.Name,
			LandType:   in.LandType,
			AreaValue:  *in.AreaValue,
			AreaUnitID: in.AreaUnitID,
			Latitude:   in.Latitude,
			Longitude:  in.Longitude,
			IsActive:   true,
		}
		if in.SoilType != nil {
			p.SoilType = *in.SoilType
		}
		if in.LocationDescription != nil {
			p.LocationDescription = *in.LocationDescription
		}
		if in.IsActive != nil {
			p.IsActive = *in.IsActive
		}
		if in.Description != nil {
			p.Description = *in.Description
		}
		if err := s.r.Create(dbc, p); err != nil {
			return err
		}
		out, err = s.r.FindByID(dbc, p.ID)
		return err
	})
	return out, err
}

func (s *landParcelSvc) Update(ctx context.Context, id uint, in service.UpdateInput) (*entities.LandParcel, error) {
	var out *entities.LandParcel
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
		if err := s.checkUnit(dbc, ve, in.AreaUnitID); err != nil {
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
		if in.LandType != nil {
			cur.LandType = *in.LandType
		}
		if in.AreaValue != nil {
			cur.AreaValue = *in.AreaValue
		}
		if in.AreaUnitID != nil {
			cur.AreaUnitID = in.AreaUnitID
		}
		if in.SoilType != nil {
			cur.SoilType = *in.SoilType
		}
		if in.LocationDescription != nil {
			cur.LocationDescription = *in.LocationDescription
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

func (s *landParcelSvc) Delete(ctx context.Context, id uint) error {
	return dbctx.Transaction(ctx, s.db, func(dbc dbctx.Context) error {
		if _, err := s.r.FindByID(dbc, id); err != nil {
			return err
		}
		used, err := s.r.InUse(dbc, id)
		if err != nil {
			return err
		}
		if used {
			return apperr.Conflict("The land parcel has crop cycles or activity logs and cannot be deleted.")
		}
		return s.r.Delete(dbc, id)
	})
}

func (s *landParcelSvc) WaterSources(ctx context.Context, parcelID uint) ([]entities.LandParcelWaterSource, error) {
	dbc := dbctx.New(ctx)
	if _, err := s.r.FindByID(dbc, parcelID); err != nil {
		return nil, err
	}
	return s.r.Attachments(dbc, parcelID)
}

// AttachWaterSource links a water source to the parcel. Marking the link
// primary demotes every other link of the parcel.
func (s *landParcelSvc) AttachWaterSource(ctx context.Context, parcelID uint, in service.AttachInput) (*entities.LandParcelWaterSource, error) {
	var out *entities.LandParcelWaterSource
	err := dbctx.Transaction(ctx, s.db, func(dbc dbctx.Context) error {
		if _, err := s.r.FindByID(dbc, parcelID); err != nil {
			return err
		}
		ve := validate.Struct(in)
		if in.WaterSourceID != nil {
			ok, err := s.r.WaterSourceExists(dbc, *in.WaterSourceID)
			if err != nil {
				return err
			}
			if !ok {
				ve.Add("water_source_id", validate.Invalid("water_source_id"))
			} else if _, err := s.r.FindAttachment(dbc, parcelID, *in.WaterSourceID); err == nil {
				ve.Add("water_source_id", "The water source is already attached to this land parcel.")
			} else if !apperr.IsNotFound(err) {
				return err
			}
		}
		if err := ve.OrNil(); err != nil {
			return err
		}

		a := &entities.LandParcelWaterSource{
			LandParcelID:  parcelID,
			WaterSourceID: *in.WaterSourceID,
			Accessibility: in.Accessibility,
		}
		if in.IsPrimarySource != nil {
			a.IsPrimarySource = *in.IsPrimarySource
		}
		if a.IsPrimarySource {
			if err := s.r.ClearPrimary(dbc, parcelID, a.WaterSourceID); err != nil {
				return err
			}
		}
		if err := s.r.Attach(dbc, a); err != nil {
			return err
		}
		var err error
		out, err = s.r.FindAttachment(dbc, parcelID, a.WaterSourceID)
		return err
	})
	return out, err
}

func (s *landParcelSvc) DetachWaterSource(ctx context.Context, parcelID, waterSourceID uint) error {
	return dbctx.Transaction(ctx, s.db, func(dbc dbctx.Context) error {
		if _, err := s.r.FindByID(dbc, parcelID); err != nil {
			return err
		}
		if _, err := s.r.FindAttachment(dbc, parcelID, waterSourceID); err != nil {
			return err
		}
		return s.r.Detach(dbc, parcelID, waterSourceID)
	})
}

func (s *landParcelSvc) taken(dbc dbctx.Context, exceptID uint) codegen.TakenFunc {
	return func(code string) (bool, error) { return s.r.CodeTaken(dbc, code, exceptID) }
}

func (s *landParcelSvc) checkUnit(dbc dbctx.Context, ve *apperr.ValidationError, id *uint) error {
	if id == nil {
		return nil
	}
	ok, err := s.r.UnitExists(dbc, *id)
	if err != nil {
		return err
	}
	if !ok {
		ve.Add("area_unit_id", validate.Invalid("area_unit_id"))
	}
	return nil
}
