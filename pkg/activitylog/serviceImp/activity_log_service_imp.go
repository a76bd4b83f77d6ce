package serviceImp

import (
	"context"
	"io"

	"gorm.io/gorm"

	"farmbook/entities"
	"farmbook/pkg/activitylog/repository"
	"farmbook/pkg/activitylog/service"
	"farmbook/pkg/apperr"
	"farmbook/pkg/dates"
	"farmbook/pkg/dbctx"
	"farmbook/pkg/report"
	"farmbook/pkg/store"
	"farmbook/pkg/validate"
)

// ExportLimit caps the rows of one XLSX export.
const ExportLimit = 10000

type activityLogSvc struct {
	db *gorm.DB
	r  repository.ActivityLogRepository
}

func NewActivityLogService(db *gorm.DB, r repository.ActivityLogRepository) service.ActivityLogService {
	return &activityLogSvc{db: db, r: r}
}

func (s *activityLogSvc) List(ctx context.Context, f repository.Filter, page store.Page) ([]entities.ActivityLog, int64, error) {
	return s.r.List(dbctx.New(ctx), f, page)
}

func (s *activityLogSvc) Get(ctx context.Context, id uint) (*entities.ActivityLog, error) {
	return s.r.FindByID(dbctx.New(ctx), id)
}

func (s *activityLogSvc) Record(ctx context.Context, in service.RecordInput) (*entities.ActivityLog, error) {
	var out *entities.ActivityLog
	err := dbctx.Transaction(ctx, s.db, func(dbc dbctx.Context) error {
		ve := validate.Struct(in)
		l := &entities.ActivityLog{}
		if err := s.merge(dbc, ve, l, service.UpdateInput(in)); err != nil {
			return err
		}
		if err := ve.OrNil(); err != nil {
			return err
		}
		if err := s.r.Create(dbc, l); err != nil {
			return err
		}
		var err error
		out, err = s.r.FindByID(dbc, l.ID)
		return err
	})
	return out, err
}

func (s *activityLogSvc) Update(ctx context.Context, id uint, in service.UpdateInput) (*entities.ActivityLog, error) {
	var out *entities.ActivityLog
	err := dbctx.Transaction(ctx, s.db, func(dbc dbctx.Context) error {
		cur, err := s.r.FindByID(dbc, id)
		if err != nil {
			return err
		}
		ve := validate.Struct(in)
		if err := s.merge(dbc, ve, cur, in); err != nil {
			return err
		}
		if err := ve.OrNil(); err != nil {
			return err
		}
		if err := s.r.Update(dbc, cur); err != nil {
			return err
		}
		out, err = s.r.FindByID(dbc, cur.ID)
		return err
	})
	return out, err
}

func (s *activityLogSvc) Export(ctx context.Context, f repository.Filter, w io.Writer) error {
	logs, err := s.r.Export(dbctx.New(ctx), f, ExportLimit)
	if err != nil {
		return err
	}
	return report.ActivityLogs(w, logs)
}

// merge copies the supplied fields onto l, checking references as it goes.
// The cross-field rules run on the merged record so an update is held to
// the same rules as a new log.
func (s *activityLogSvc) merge(dbc dbctx.Context, ve *apperr.ValidationError, l *entities.ActivityLog, in service.UpdateInput) error {
	if in.ActivityTypeID != nil && !ve.Has("activity_type_id") {
		ok, err := s.r.ActivityTypeActive(dbc, *in.ActivityTypeID)
		if err != nil {
			return err
		}
		if !ok {
			ve.Add("activity_type_id", validate.Invalid("activity_type_id"))
		}
		l.ActivityTypeID = *in.ActivityTypeID
	}
	if in.ActivityDate != nil && !ve.Has("activity_date") {
		d, _ := dates.Parse(*in.ActivityDate)
		l.ActivityDate = d
	}
	if in.StartTime != nil {
		t, err := dates.ParseClockPtr(in.StartTime)
		if err != nil {
			ve.Add("start_time", validate.TimeFormat("start_time"))
		}
		l.StartTime = t
	}
	if in.EndTime != nil {
		t, err := dates.ParseClockPtr(in.EndTime)
		if err != nil {
			ve.Add("end_time", validate.TimeFormat("end_time"))
		}
		l.EndTime = t
	}

	if err := s.mergePlace(dbc, ve, l, in); err != nil {
		return err
	}

	units := []struct {
		field string
		id    *uint
		dst   **uint
	}{
		{"quantity_unit_id", in.QuantityUnitID, &l.QuantityUnitID},
		{"cost_unit_id", in.CostUnitID, &l.CostUnitID},
	}
	for _, u := range units {
		if u.id == nil {
			continue
		}
		ok, err := s.r.UnitExists(dbc, *u.id)
		if err != nil {
			return err
		}
		if !ok {
			ve.Add(u.field, validate.Invalid(u.field))
		}
		*u.dst = u.id
	}
	if in.QuantityValue != nil {
		l.QuantityValue = in.QuantityValue
	}
	if in.CostValue != nil {
		l.CostValue = in.CostValue
	}
	if in.Description != nil {
		l.Description = *in.Description
	}
	if in.PerformedBy != nil {
		l.PerformedBy = *in.PerformedBy
	}
	if in.WeatherConditions != nil {
		l.WeatherConditions = *in.WeatherConditions
	}

	if l.QuantityValue != nil && l.QuantityUnitID == nil && !ve.Has("quantity_unit_id") {
		ve.Add("quantity_unit_id", validate.RequiredWith("quantity_unit_id", "quantity_value"))
	}
	if l.StartTime != nil && l.EndTime != nil && *l.EndTime <= *l.StartTime &&
		!ve.Has("start_time") && !ve.Has("end_time") {
		ve.Add("end_time", validate.TimeAfter("end_time", "start_time"))
	}
	return nil
}

// mergePlace resolves the crop cycle, land parcel and water source. A log on
// a cycle takes the cycle's parcel unless one is given, and a given parcel
// has to be the cycle's.
func (s *activityLogSvc) mergePlace(dbc dbctx.Context, ve *apperr.ValidationError, l *entities.ActivityLog, in service.UpdateInput) error {
	if in.LandParcelID != nil {
		ok, err := s.r.LandParcelExists(dbc, *in.LandParcelID)
		if err != nil {
			return err
		}
		if !ok {
			ve.Add("land_parcel_id", validate.Invalid("land_parcel_id"))
		}
		l.LandParcelID = in.LandParcelID
	}
	if in.CropCycleID != nil {
		l.CropCycleID = in.CropCycleID
	}
	if in.CropCycleID != nil || in.LandParcelID != nil {
		if l.CropCycleID != nil {
			cycle, err := s.r.FindCycle(dbc, *l.CropCycleID)
			switch {
			case apperr.IsNotFound(err):
				ve.Add("crop_cycle_id", validate.Invalid("crop_cycle_id"))
			case err != nil:
				return err
			case in.LandParcelID == nil:
				parcel := cycle.LandParcelID
				l.LandParcelID = &parcel
			case !ve.Has("land_parcel_id") && *in.LandParcelID != cycle.LandParcelID:
				ve.Add("land_parcel_id", "The land parcel does not match the land parcel of the crop cycle.")
			}
		}
	}
	if in.WaterSourceID != nil {
		ok, err := s.r.WaterSourceExists(dbc, *in.WaterSourceID)
		if err != nil {
			return err
		}
		if !ok {
			ve.Add("water_source_id", validate.Invalid("water_source_id"))
		}
		l.WaterSourceID = in.WaterSourceID
	}
	return nil
}
