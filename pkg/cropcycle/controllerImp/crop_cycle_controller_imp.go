package controllerImp

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"farmbook/entities"
	"farmbook/pkg/cropcycle/controller"
	"farmbook/pkg/cropcycle/repository"
	"farmbook/pkg/cropcycle/service"
	"farmbook/pkg/request"
	"farmbook/pkg/response"
)

type cropCycleCtrl struct{ svc service.CropCycleService }

func New(svc service.CropCycleService) controller.CropCycleController {
	return &cropCycleCtrl{svc}
}

func (h *cropCycleCtrl) Index(c echo.Context) error {
	q := request.NewQuery(c)
	f := repository.Filter{
		Status:       q.String("status"),
		LandParcelID: q.Uint("land_parcel_id"),
		CropTypeID:   q.Uint("crop_type_id"),
		SeasonID:     q.Uint("season_id"),
		Search:       q.String("search"),
	}
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

func (h *cropCycleCtrl) Store(c echo.Context) error {
	var in service.CreateInput
	if err := request.Bind(c, &in); err != nil {
		return err
	}
	cc, err := h.svc.Create(c.Request().Context(), in)
	if err != nil {
		return err
	}
	return response.Data(c, http.StatusCreated, cc)
}

func (h *cropCycleCtrl) Show(c echo.Context) error {
	id, err := request.ID(c, "id", "crop cycle")
	if err != nil {
		return err
	}
	cc, err := h.svc.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return response.Data(c, http.StatusOK, cc)
}

func (h *cropCycleCtrl) Update(c echo.Context) error {
	id, err := request.ID(c, "id", "crop cycle")
	if err != nil {
		return err
	}
	var in service.UpdateInput
	if err := request.Bind(c, &in); err != nil {
		return err
	}
	cc, err := h.svc.Update(c.Request().Context(), id, in)
	if err != nil {
		return err
	}
	return response.Data(c, http.StatusOK, cc)
}

func (h *cropCycleCtrl) Destroy(c echo.Context) error {
	id, err := request.ID(c, "id", "crop cycle")
	if err != nil {
		return err
	}
	if err := h.svc.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *cropCycleCtrl) Activate(c echo.Context) error {
	var in service.ActivateInput
	return action(c, &in, func(id uint) (*entities.CropCycle, error) {
		return h.svc.Activate(c.Request().Context(), id, in)
	})
}

func (h *cropCycleCtrl) Complete(c echo.Context) error {
	var in service.CompleteInput
	return action(c, &in, func(id uint) (*entities.CropCycle, error) {
		return h.svc.Complete(c.Request().Context(), id, in)
	})
}

func (h *cropCycleCtrl) Fail(c echo.Context) error {
	var in service.TerminateInput
	return action(c, &in, func(id uint) (*entities.CropCycle, error) {
		return h.svc.Fail(c.Request().Context(), id, in)
	})
}

func (h *cropCycleCtrl) Abandon(c echo.Context) error {
	var in service.TerminateInput
	return action(c, &in, func(id uint) (*entities.CropCycle, error) {
		return h.svc.Abandon(c.Request().Context(), id, in)
	})
}

func (h *cropCycleCtrl) Transitions(c echo.Context) error {
	return response.Data(c, http.StatusOK, h.svc.Transitions())
}

// action binds the optional body into in before running fn. An empty body
// leaves in at its zero value.
func action(c echo.Context, in any, fn func(id uint) (*entities.CropCycle, error)) error {
	id, err := request.ID(c, "id", "crop cycle")
	if err != nil {
		return err
	}
	if err := request.Bind(c, in); err != nil {
		return err
	}
	cc, err := fn(id)
	if err != nil {
		return err
	}
	return response.Data(c, http.StatusOK, cc)
}
