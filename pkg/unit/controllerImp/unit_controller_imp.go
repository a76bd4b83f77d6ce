package controllerImp

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"farmbook/pkg/request"
	"farmbook/pkg/response"
	"farmbook/pkg/unit/controller"
	"farmbook/pkg/unit/repository"
	"farmbook/pkg/unit/service"
)

const resource = "unit of measure"

type unitCtrl struct{ svc service.UnitService }

func New(svc service.UnitService) controller.UnitController { return &unitCtrl{svc} }

func (h *unitCtrl) Index(c echo.Context) error {
	q := request.NewQuery(c)
	f := repository.Filter{UnitType: q.String("unit_type"), IsActive: q.Bool("is_active"), Search: q.String("search")}
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

func (h *unitCtrl) Store(c echo.Context) error {
	var in service.CreateInput
	if err := request.Bind(c, &in); err != nil {
		return err
	}
	u, err := h.svc.Create(c.Request().Context(), in)
	if err != nil {
		return err
	}
	return response.Data(c, http.StatusCreated, u)
}

func (h *unitCtrl) Show(c echo.Context) error {
	id, err := request.ID(c, "id", resource)
	if err != nil {
		return err
	}
	u, err := h.svc.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return response.Data(c, http.StatusOK, u)
}

func (h *unitCtrl) Update(c echo.Context) error {
	id, err := request.ID(c, "id", resource)
	if err != nil {
		return err
	}
	var in service.UpdateInput
	if err := request.Bind(c, &in); err != nil {
		return err
	}
	u, err := h.svc.Update(c.Request().Context(), id, in)
	if err != nil {
		return err
	}
	return response.Data(c, http.StatusOK, u)
}

func (h *unitCtrl) Destroy(c echo.Context) error {
	id, err := request.ID(c, "id", resource)
	if err != nil {
		return err
	}
	if err := h.svc.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// Convert handles GET /units-of-measure/convert?value=&from_unit_id=&to_unit_id=.
func (h *unitCtrl) Convert(c echo.Context) error {
	q := request.NewQuery(c)
	q.Require("value", "from_unit_id", "to_unit_id")
	value, from, to := q.Float("value"), q.Uint("from_unit_id"), q.Uint("to_unit_id")
	if err := q.Err(); err != nil {
		return err
	}
	out, err := h.svc.Convert(c.Request().Context(), *value, *from, *to)
	if err != nil {
		return err
	}
	return response.Data(c, http.StatusOK, out)
}
