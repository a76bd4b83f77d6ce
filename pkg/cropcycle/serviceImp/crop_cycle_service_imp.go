package serviceImp

import (
	"context"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"farmbook/entities"
	"farmbook/pkg/apperr"
	"farmbook/pkg/codegen"
	"farmbook/pkg/cropcycle/lifecycle"
	"farmbook/pkg/cropcycle/repository"
	"farmbook/pkg/cropcycle/service"
	"farmbook/pkg/dates"
	"farmbook/pkg/dbctx"
	"farmbook/pkg/store"
	"farmbook/pkg/validate"
)

const codePrefix = "CC"

type cropCycleSvc struct {
	db  *gorm.DB
	r   repository.CropCycleRepository
	rec service.TransitionRecorder
	now func() time.Time
}

type Option func(*cropCycleSvc)

// WithRecorder reports committed transitions to rec.
func WithRecorder(rec service.TransitionRecorder) Option {
	return func(s *cropCycleSvc) { s.rec = rec }
}

// WithClock replaces time.Now when stamping actual dates.
func WithClock(now func() time.Time) Option {
	return func(s *cropCycleSvc) { s.now = now }
}

func NewCropCycleService(db *gorm.DB, r repository.CropCycleRepository, opts ...Option) service.CropCycleService {
	s := &cropCycleSvc{db: db, r: r, now: time.Now}
	for _, o := range opts {
		o(s)
	}
	return s
}

func (s *cropCycleSvc) List(ctx context.Context, f repository.Filter, page store.Page) ([]entities.CropCycle, int64, error) {
	return s.r.List(dbctx.New(ctx), f, page)
}

func (s *cropCycleSvc) Get(ctx context.Context, id uint) (*entities.CropCycle, error) {
	return s.r.FindByID(dbctx.New(ctx), id)
}

func (s *cropCycleSvc) Create(ctx context.Context, in service.CreateInput) (*entities.CropCycle, error) {
	var out *entities.CropCycle
	err := dbctx.Transaction(ctx, s.db, func(dbc dbctx.Context) error {
		ve := validate.Struct(in)
		code, err := codegen.Assign(ve, "cycle_code", codePrefix, in.CycleCode, s.taken(dbc, 0))
		if err != nil {
			return err
		}
		if err := s.checkRefs(dbc, ve, in.LandParcelID, in.CropTypeID, in.SeasonID); err != nil {
			return err
		}
		if ve.Has("planned_start_date") || ve.Has("planned_end_date") {
			return ve
		}
		start, _ := dates.Parse(*in.PlannedStartDate)
		end, _ := dates.Parse(*in.PlannedEndDate)
		var parcelID uint
		if in.LandParcelID != nil {
			parcelID = *in.LandParcelID
		}
		if err := s.checkPlan(dbc, ve, parcelID, 0, start, end); err != nil {
			return err
		}
		if err := ve.OrNil(); err != nil {
			return err
		}

		c := &entities.CropCycle{
			CycleCode:        code,
			LandParcelID:     *in.LandParcelID,
			CropTypeID:       *in.CropTypeID,
			SeasonID:         *in.SeasonID,
			Status:           entities.CycleStatusPlanned,
			PlannedStartDate: start,
			PlannedEndDate:   end,
		}
		if in.Notes != nil {
			c.Notes = *in.Notes
		}
		if err := s.r.Create(dbc, c); err != nil {
			return err
		}
		out, err = s.r.FindByID(dbc, c.ID)
		return err
	})
	return out, err
}

// Update merges the supplied planning fields. Dates and overlap are checked
// against the merged record, and only when a date or the parcel changed.
func (s *cropCycleSvc) Update(ctx context.Context, id uint, in service.UpdateInput) (*entities.CropCycle, error) {
	var out *entities.CropCycle
	err := dbctx.Transaction(ctx, s.db, func(dbc dbctx.Context) error {
		cur, err := s.r.FindByID(dbc, id)
		if err != nil {
			return err
		}
		if cur.IsTerminal() {
			return apperr.Conflict("The crop cycle is %s and can no longer be edited.", cur.Status)
		}
		ve := validate.Struct(in)
		if in.CycleCode != nil {
			if err := codegen.Check(ve, "cycle_code", *in.CycleCode, s.taken(dbc, cur.ID)); err != nil {
				return err
			}
		}
		if err := s.checkRefs(dbc, ve, in.LandParcelID, in.CropTypeID, in.SeasonID); err != nil {
			return err
		}
		if ve.Has("planned_start_date") || ve.Has("planned_end_date") {
			return ve
		}

		start, end := cur.PlannedStartDate, cur.PlannedEndDate
		if d, _ := dates.ParsePtr(in.PlannedStartDate); d != nil {
			start = *d
		}
		if d, _ := dates.ParsePtr(in.PlannedEndDate); d != nil {
			end = *d
		}
		parcelID := cur.LandParcelID
		if in.LandParcelID != nil {
			parcelID = *in.LandParcelID
		}
		if in.LandParcelID != nil || in.PlannedStartDate != nil || in.PlannedEndDate != nil {
			if err := s.checkPlan(dbc, ve, parcelID, cur.ID, start, end); err != nil {
				return err
			}
		}
		if err := ve.OrNil(); err != nil {
			return err
		}

		if in.CycleCode != nil {
			cur.CycleCode = *in.CycleCode
		}
		cur.LandParcelID = parcelID
		if in.CropTypeID != nil {
			cur.CropTypeID = *in.CropTypeID
		}
		if in.SeasonID != nil {
			cur.SeasonID = *in.SeasonID
		}
		cur.PlannedStartDate, cur.PlannedEndDate = start, end
		if in.Notes != nil {
			cur.Notes = *in.Notes
		}
		if err := s.r.Update(dbc, cur); err != nil {
			return err
		}
		out, err = s.r.FindByID(dbc, cur.ID)
		return err
	})
	return out, err
}

func (s *cropCycleSvc) Delete(ctx context.Context, id uint) error {
	return dbctx.Transaction(ctx, s.db, func(dbc dbctx.Context) error {
		cur, err := s.r.FindByID(dbc, id)
		if err != nil {
			return err
		}
		if cur.Status != entities.CycleStatusPlanned {
			return apperr.Conflict("Only planned crop cycles can be deleted; this one is %s.", cur.Status)
		}
		logged, err := s.r.HasActivityLogs(dbc, id)
		if err != nil {
			return err
		}
		if logged {
			return apperr.Conflict("The crop cycle has activity logs and cannot be deleted.")
		}
		return s.r.Delete(dbc, id)
	})
}

func (s *cropCycleSvc) Activate(ctx context.Context, id uint, in service.ActivateInput) (*entities.CropCycle, error) {
	return s.transition(ctx, id, lifecycle.Activate, func(_ dbctx.Context, c *entities.CropCycle) error {
		today := s.today()
		c.ActualStartDate = &today
		appendNotes(c, in.Notes)
		return nil
	})
}

func (s *cropCycleSvc) Complete(ctx context.Context, id uint, in service.CompleteInput) (*entities.CropCycle, error) {
	return s.transition(ctx, id, lifecycle.Complete, func(dbc dbctx.Context, c *entities.CropCycle) error {
		ve := validate.Struct(in)
		if in.YieldUnitID != nil {
			ok, err := s.r.UnitExists(dbc, *in.YieldUnitID)
			if err != nil {
				return err
			}
			if !ok {
				ve.Add("yield_unit_id", validate.Invalid("yield_unit_id"))
			}
		}
		end := s.today()
		if !ve.Has("actual_end_date") {
			if d, _ := dates.ParsePtr(in.ActualEndDate); d != nil {
				end = *d
			}
			if c.ActualStartDate != nil && end.Before(*c.ActualStartDate) {
				ve.Add("actual_end_date", validate.AfterOrEqual("actual_end_date", "actual_start_date"))
			}
		}
		if err := ve.OrNil(); err != nil {
			return err
		}
		c.ActualEndDate = &end
		c.YieldValue = in.YieldValue
		c.YieldUnitID = in.YieldUnitID
		c.QualityRating = in.QualityRating
		appendNotes(c, in.Notes)
		return nil
	})
}

func (s *cropCycleSvc) Fail(ctx context.Context, id uint, in service.TerminateInput) (*entities.CropCycle, error) {
	return s.terminate(ctx, id, lifecycle.Fail, in)
}

func (s *cropCycleSvc) Abandon(ctx context.Context, id uint, in service.TerminateInput) (*entities.CropCycle, error) {
	return s.terminate(ctx, id, lifecycle.Abandon, in)
}

func (s *cropCycleSvc) Transitions() []lifecycle.StatusEntry { return lifecycle.Table() }

func (s *cropCycleSvc) terminate(ctx context.Context, id uint, action lifecycle.Action, in service.TerminateInput) (*entities.CropCycle, error) {
	return s.transition(ctx, id, action, func(_ dbctx.Context, c *entities.CropCycle) error {
		ve := validate.Struct(in)
		reason := strings.TrimSpace(in.Reason)
		if reason == "" && !ve.Has("reason") {
			ve.Add("reason", validate.Required("reason"))
		}
		if err := ve.OrNil(); err != nil {
			return err
		}
		c.TerminationReason = &reason
		if c.Status == entities.CycleStatusActive {
			today := s.today()
			c.ActualEndDate = &today
		}
		appendNotes(c, in.Notes)
		return nil
	})
}

// transition loads the cycle, checks action against the lifecycle table, lets
// apply fill in the action's fields and moves the status. apply sees the
// status the cycle had before the action.
func (s *cropCycleSvc) transition(ctx context.Context, id uint, action lifecycle.Action, apply func(dbctx.Context, *entities.CropCycle) error) (*entities.CropCycle, error) {
	var out *entities.CropCycle
	err := dbctx.Transaction(ctx, s.db, func(dbc dbctx.Context) error {
		cur, err := s.r.FindByID(dbc, id)
		if err != nil {
			return err
		}
		if !lifecycle.Allowed(cur.Status, action) {
			return apperr.Conflict("Cannot %s a crop cycle that is %s.", action, cur.Status)
		}
		if err := apply(dbc, cur); err != nil {
			return err
		}
		cur.Status = lifecycle.Target(action)
		if err := s.r.Update(dbc, cur); err != nil {
			return err
		}
		out, err = s.r.FindByID(dbc, cur.ID)
		return err
	})
	if err != nil {
		return nil, err
	}
	if s.rec != nil {
		s.rec.Transition(out.Status)
	}
	return out, nil
}

func (s *cropCycleSvc) checkRefs(dbc dbctx.Context, ve *apperr.ValidationError, parcelID, cropTypeID, seasonID *uint) error {
	checks := []struct {
		field  string
		id     *uint
		active func(dbctx.Context, uint) (bool, error)
	}{
		{"land_parcel_id", parcelID, s.r.LandParcelActive},
		{"crop_type_id", cropTypeID, s.r.CropTypeActive},
		{"season_id", seasonID, s.r.SeasonActive},
	}
	for _, ch := range checks {
		if ch.id == nil || ve.Has(ch.field) {
			continue
		}
		ok, err := ch.active(dbc, *ch.id)
		if err != nil {
			return err
		}
		if !ok {
			ve.Add(ch.field, validate.Invalid(ch.field))
		}
	}
	return nil
}

// checkPlan enforces end > start and, when that holds and the parcel is
// valid, that no other open cycle on the parcel overlaps [start,end].
func (s *cropCycleSvc) checkPlan(dbc dbctx.Context, ve *apperr.ValidationError, parcelID, exceptID uint, start, end dates.Date) error {
	if !end.After(start) {
		ve.Add("planned_end_date", validate.After("planned_end_date", "planned_start_date"))
		return nil
	}
	if ve.Has("land_parcel_id") {
		return nil
	}
	open, err := s.r.OpenOnParcel(dbc, parcelID, exceptID)
	if err != nil {
		return err
	}
	for _, o := range open {
		if dates.Overlaps(start, end, o.PlannedStartDate, o.PlannedEndDate) {
			ve.Add("land_parcel_id", fmt.Sprintf(
				"The land parcel already has crop cycle %s (%s) planned from %s to %s.",
				o.CycleCode, o.Status, o.PlannedStartDate, o.PlannedEndDate,
			))
			break
		}
	}
	return nil
}

func (s *cropCycleSvc) taken(dbc dbctx.Context, exceptID uint) codegen.TakenFunc {
	return func(code string) (bool, error) { return s.r.CodeTaken(dbc, code, exceptID) }
}

func (s *cropCycleSvc) today() dates.Date { return dates.New(s.now()) }

// appendNotes adds action notes on a new line below what the cycle has.
func appendNotes(c *entities.CropCycle, notes *string) {
	if notes == nil || strings.TrimSpace(*notes) == "" {
		return
	}
	if c.Notes == "" {
		c.Notes = *notes
		return
	}
	c.Notes += "\n" + *notes
}
