package serviceImp

import (
	"context"
	"strings"
	"time"

	"gorm.io/gorm"

	"farmbook/entities"
	"farmbook/pkg/apperr"
	"farmbook/pkg/cyclestage/repository"
	"farmbook/pkg/cyclestage/service"
	"farmbook/pkg/dates"
	"farmbook/pkg/dbctx"
	"farmbook/pkg/stageplan"
	"farmbook/pkg/store"
	"farmbook/pkg/validate"
)

type stageSvc struct {
	db  *gorm.DB
	r   repository.CropCycleStageRepository
	tpl *stageplan.Template
	now func() time.Time
}

type Option func(*stageSvc)

func WithClock(now func() time.Time) Option {
	return func(s *stageSvc) { s.now = now }
}

// NewCropCycleStageService builds the service. A nil template falls back to
// stageplan.Default.
func NewCropCycleStageService(db *gorm.DB, r repository.CropCycleStageRepository, tpl *stageplan.Template, opts ...Option) service.CropCycleStageService {
	if tpl == nil {
		tpl = stageplan.Default()
	}
	s := &stageSvc{db: db, r: r, tpl: tpl, now: time.Now}
	for _, o := range opts {
		o(s)
	}
	return s
}

func (s *stageSvc) List(ctx context.Context, f repository.Filter, page store.Page) ([]entities.CropCycleStage, int64, error) {
	return s.r.List(dbctx.New(ctx), f, page)
}

func (s *stageSvc) ListByCycle(ctx context.Context, cycleID uint) ([]entities.CropCycleStage, error) {
	dbc := dbctx.New(ctx)
	if _, err := s.r.FindCycle(dbc, cycleID); err != nil {
		return nil, err
	}
	return s.r.ListByCycle(dbc, cycleID)
}

func (s *stageSvc) Get(ctx context.Context, id uint) (*entities.CropCycleStage, error) {
	return s.r.FindByID(dbctx.New(ctx), id)
}

func (s *stageSvc) Create(ctx context.Context, in service.CreateInput) (*entities.CropCycleStage, error) {
	var out *entities.CropCycleStage
	err := dbctx.Transaction(ctx, s.db, func(dbc dbctx.Context) error {
		ve := validate.Struct(in)
		if in.CropCycleID != nil {
			cycle, err := s.r.FindCycle(dbc, *in.CropCycleID)
			switch {
			case apperr.IsNotFound(err):
				ve.Add("crop_cycle_id", validate.Invalid("crop_cycle_id"))
			case err != nil:
				return err
			case cycle.IsTerminal():
				return apperr.Conflict("Stages cannot be added to a %s crop cycle.", cycle.Status)
			}
		}
		if in.CropCycleID != nil && in.SequenceOrder != nil && !ve.Has("crop_cycle_id") {
			if err := s.checkSequence(dbc, ve, *in.CropCycleID, *in.SequenceOrder, 0); err != nil {
				return err
			}
		}
		var start, end *dates.Date
		if !ve.Has("planned_start_date") && !ve.Has("planned_end_date") {
			start, _ = dates.ParsePtr(in.PlannedStartDate)
			end, _ = dates.ParsePtr(in.PlannedEndDate)
			checkRange(ve, start, end)
		}
		if err := ve.OrNil(); err != nil {
			return err
		}

		st := &entities.CropCycleStage{
			CropCycleID:      *in.CropCycleID,
			StageName:        in.StageName,
			SequenceOrder:    *in.SequenceOrder,
			PlannedStartDate: start,
			PlannedEndDate:   end,
			Status:           entities.StageStatusPending,
		}
		if in.Description != nil {
			st.Description = *in.Description
		}
		if in.Notes != nil {
			st.Notes = *in.Notes
		}
		if err := s.r.Create(dbc, st); err != nil {
			return err
		}
		var err error
		out, err = s.r.FindByID(dbc, st.ID)
		return err
	})
	return out, err
}

func (s *stageSvc) Update(ctx context.Context, id uint, in service.UpdateInput) (*entities.CropCycleStage, error) {
	var out *entities.CropCycleStage
	err := dbctx.Transaction(ctx, s.db, func(dbc dbctx.Context) error {
		cur, err := s.load(dbc, id)
		if err != nil {
			return err
		}
		if cur.Status == entities.StageStatusCompleted {
			return apperr.Conflict("The stage is completed and can no longer be edited.")
		}
		ve := validate.Struct(in)
		if in.SequenceOrder != nil && !ve.Has("sequence_order") {
			if err := s.checkSequence(dbc, ve, cur.CropCycleID, *in.SequenceOrder, cur.ID); err != nil {
				return err
			}
		}
		start, end := cur.PlannedStartDate, cur.PlannedEndDate
		if !ve.Has("planned_start_date") && !ve.Has("planned_end_date") {
			if d, _ := dates.ParsePtr(in.PlannedStartDate); d != nil {
				start = d
			}
			if d, _ := dates.ParsePtr(in.PlannedEndDate); d != nil {
				end = d
			}
			checkRange(ve, start, end)
		}
		if err := ve.OrNil(); err != nil {
			return err
		}

		if in.StageName != nil {
			cur.StageName = *in.StageName
		}
		if in.SequenceOrder != nil {
			cur.SequenceOrder = *in.SequenceOrder
		}
		cur.PlannedStartDate, cur.PlannedEndDate = start, end
		if in.Description != nil {
			cur.Description = *in.Description
		}
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

func (s *stageSvc) Delete(ctx context.Context, id uint) error {
	return dbctx.Transaction(ctx, s.db, func(dbc dbctx.Context) error {
		if _, err := s.load(dbc, id); err != nil {
			return err
		}
		return s.r.Delete(dbc, id)
	})
}

func (s *stageSvc) Start(ctx context.Context, id uint, in service.StartInput) (*entities.CropCycleStage, error) {
	return s.move(ctx, id, func(st *entities.CropCycleStage) error {
		if st.Status != entities.StageStatusPending {
			return apperr.Conflict("Only pending stages can be started; this one is %s.", st.Status)
		}
		if st.CropCycle.Status != entities.CycleStatusActive {
			return apperr.Conflict("Stages can only be started while the crop cycle is active; it is %s.", st.CropCycle.Status)
		}
		if err := validate.Struct(in).OrNil(); err != nil {
			return err
		}
		d := s.dateOr(in.ActualStartDate)
		st.ActualStartDate = &d
		st.Status = entities.StageStatusInProgress
		appendNotes(st, in.Notes)
		return nil
	})
}

func (s *stageSvc) Complete(ctx context.Context, id uint, in service.CompleteInput) (*entities.CropCycleStage, error) {
	return s.move(ctx, id, func(st *entities.CropCycleStage) error {
		if st.Status != entities.StageStatusInProgress {
			return apperr.Conflict("Only stages in progress can be completed; this one is %s.", st.Status)
		}
		ve := validate.Struct(in)
		if err := ve.OrNil(); err != nil {
			return err
		}
		d := s.dateOr(in.ActualEndDate)
		if st.ActualStartDate != nil && d.Before(*st.ActualStartDate) {
			return ve.Add("actual_end_date", validate.AfterOrEqual("actual_end_date", "actual_start_date"))
		}
		st.ActualEndDate = &d
		st.Status = entities.StageStatusCompleted
		appendNotes(st, in.Notes)
		return nil
	})
}

func (s *stageSvc) Skip(ctx context.Context, id uint, in service.SkipInput) (*entities.CropCycleStage, error) {
	return s.move(ctx, id, func(st *entities.CropCycleStage) error {
		if st.Status != entities.StageStatusPending && st.Status != entities.StageStatusInProgress {
			return apperr.Conflict("Only pending or in-progress stages can be skipped; this one is %s.", st.Status)
		}
		st.Status = entities.StageStatusSkipped
		appendNotes(st, in.Notes)
		return nil
	})
}

func (s *stageSvc) Generate(ctx context.Context, cycleID uint) ([]entities.CropCycleStage, error) {
	var out []entities.CropCycleStage
	err := dbctx.Transaction(ctx, s.db, func(dbc dbctx.Context) error {
		cycle, err := s.r.FindCycle(dbc, cycleID)
		if err != nil {
			return err
		}
		if cycle.IsTerminal() {
			return apperr.Conflict("Stages cannot be added to a %s crop cycle.", cycle.Status)
		}
		n, err := s.r.CountByCycle(dbc, cycleID)
		if err != nil {
			return err
		}
		if n > 0 {
			return apperr.Conflict("The crop cycle already has %d stages.", n)
		}
		for _, p := range s.tpl.Build(cycle.PlannedStartDate, cycle.PlannedEndDate) {
			start, end := p.Start, p.End
			st := &entities.CropCycleStage{
				CropCycleID:      cycleID,
				StageName:        p.Name,
				SequenceOrder:    p.Sequence,
				PlannedStartDate: &start,
				PlannedEndDate:   &end,
				Status:           entities.StageStatusPending,
				Description:      p.Description,
			}
			if err := s.r.Create(dbc, st); err != nil {
				return err
			}
		}
		out, err = s.r.ListByCycle(dbc, cycleID)
		return err
	})
	return out, err
}

// load fetches a stage with its cycle and refuses any change while the cycle
// is terminal.
func (s *stageSvc) load(dbc dbctx.Context, id uint) (*entities.CropCycleStage, error) {
	st, err := s.r.FindByID(dbc, id)
	if err != nil {
		return nil, err
	}
	if st.CropCycle != nil && st.CropCycle.IsTerminal() {
		return nil, apperr.Conflict("The crop cycle is %s; its stages can no longer be changed.", st.CropCycle.Status)
	}
	return st, nil
}

func (s *stageSvc) move(ctx context.Context, id uint, apply func(*entities.CropCycleStage) error) (*entities.CropCycleStage, error) {
	var out *entities.CropCycleStage
	err := dbctx.Transaction(ctx, s.db, func(dbc dbctx.Context) error {
		st, err := s.load(dbc, id)
		if err != nil {
			return err
		}
		if err := apply(st); err != nil {
			return err
		}
		if err := s.r.Update(dbc, st); err != nil {
			return err
		}
		out, err = s.r.FindByID(dbc, st.ID)
		return err
	})
	return out, err
}

func (s *stageSvc) checkSequence(dbc dbctx.Context, ve *apperr.ValidationError, cycleID uint, seq int, exceptID uint) error {
	if ve.Has("sequence_order") {
		return nil
	}
	used, err := s.r.SequenceTaken(dbc, cycleID, seq, exceptID)
	if err != nil {
		return err
	}
	if used {
		ve.Add("sequence_order", "The sequence order has already been taken for this crop cycle.")
	}
	return nil
}

// dateOr parses an already validated optional date, defaulting to today.
func (s *stageSvc) dateOr(raw *string) dates.Date {
	if d, _ := dates.ParsePtr(raw); d != nil {
		return *d
	}
	return dates.New(s.now())
}

func checkRange(ve *apperr.ValidationError, start, end *dates.Date) {
	if start != nil && end != nil && !end.After(*start) {
		ve.Add("planned_end_date", validate.After("planned_end_date", "planned_start_date"))
	}
}

func appendNotes(st *entities.CropCycleStage, notes *string) {
	if notes == nil || strings.TrimSpace(*notes) == "" {
		return
	}
	if st.Notes == "" {
		st.Notes = *notes
		return
	}
	st.Notes += "\n" + *notes
}
