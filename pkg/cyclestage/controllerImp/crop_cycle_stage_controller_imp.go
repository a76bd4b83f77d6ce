package controllerImp

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"farmbook/entities"
	"farmbook/pkg/cyclestage/controller"
	"farmbook/pkg/cyclestage/repository"
	"farmbook/pkg/cyclestage/service"
	"farmbook/pkg/request"
	"farmbook/pkg/response"
)

type stageCtrl struct{ svc service.CropCycleStageService }

func New(svc service.CropCycleStageService) controller.CropCycleStageController {
	return &stageCtrl{svc}
}

func (h *stageCtrl) Index(c echo.Context) error {
	q := request.NewQuery(c)
	f := repository.Filter{CropCycleID: q.Uint("crop_cycle_id"), Status: q.String("status")}
	if err := q.Err(); err != nil {
		return err
	}
	page := request.Page(c)
	items, total, err := h.svc.List(c.Request().Context(), f, page)
	if err != nil {
		return err
	}
	return response.Paginated(c, items, total, page)
}

func (h *stageCtrl) Store(c echo.Context) error {
	var in service.CreateInput
	if err := request.Bind(c, &in); err != nil {
		return err
	}
	st, err := h.svc.Create(c.Request().Context(), in)
	if err != nil {
		return err
	}
	return response.Data(c, http.StatusCreated, st)
}

func (h *stageCtrl) Show(c echo.Context) error {
	id, err := request.ID(c, "id", "crop cycle stage")
	if err != nil {
		return err
	}
	st, err := h.svc.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return response.Data(c, http.StatusOK, st)
}

func (h *stageCtrl) Update(c echo.Context) error {
	var in service.UpdateInput
	return action(c, &in, func(id uint) (*entities.CropCycleStage, error) {
		return h.svc.Update(c.Request().Context(), id, in)
	})
}

func (h *stageCtrl) Destroy(c echo.Context) error {
	id, err := request.ID(c, "id", "crop cycle stage")
	if err != nil {
		return err
	}
	if err := h.svc.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *stageCtrl) Start(c echo.Context) error {
	var in service.StartInput
	return action(c, &in, func(id uint) (*entities.CropCycleStage, error) {
		return h.svc.Start(c.Request().Context(), id, in)
	})
}

func (h *stageCtrl) Complete(c echo.Context) error {
	var in service.CompleteInput
	return action(c, &in, func(id uint) (*entities.CropCycleStage, error) {
		return h.svc.Complete(c.Request().Context(), id, in)
	})
}

func (h *stageCtrl) Skip(c echo.Context) error {
	var in service.SkipInput
	return action(c, &in, func(id uint) (*entities.CropCycleStage, error) {
		return h.svc.Skip(c.Request().Context(), id, in)
	})
}

func (h *stageCtrl) ForCycle(c echo.Context) error {
	id, err := request.ID(c, "id", "crop cycle")
	if err != nil {
		return err
	}
	stages, err := h.svc.ListByCycle(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return response.Data(c, http.StatusOK, stages)
}

func (h *stageCtrl) Generate(c echo.Context) error {
	id, err := request.ID(c, "id", "crop cycle")
	if err != nil {
		return err
	}
	stages, err := h.svc.Generate(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return response.Data(c, http.StatusCreated, stages)
}

func action(c echo.Context, in any, fn func(id uint) (*entities.CropCycleStage, error)) error {
	id, err := request.ID(c, "id", "crop cycle stage")
	if err != nil {
		return err
	}
	if err := request.Bind(c, in); err != nil {
		return err
	}
	st, err := fn(id)
	if err != nil {
		return err
	}
	return response.Data(c, http.StatusOK, st)
}
