package controllerImp

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"farmbook/pkg/request"
	"farmbook/pkg/response"
	"farmbook/pkg/watersource/controller"
	"farmbook/pkg/watersource/repository"
	"farmbook/pkg/watersource/service"
)

type waterSourceCtrl struct{ svc service.WaterSourceService }

func New(svc service.WaterSourceService) controller.WaterSourceController {
	return &waterSourceCtrl{svc}
}

func (h *waterSourceCtrl) Index(c echo.Context) error {
	q := request.NewQuery(c)
	f := repository.Filter{
		SourceType:   q.String("source_type"),
		WaterQuality: q.String("water_quality"),
		IsActive:     q.Bool("is_active"),
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

func (h *waterSourceCtrl) Store(c echo.Context) error {
	var in service.CreateInput
	if err := request.Bind(c, &in); err != nil {
		return err
	}
	ws, err := h.svc.Create(c.Request().Context(), in)
	if err != nil {
		return err
	}
	return response.Data(c, http.StatusCreated, ws)
}

func (h *waterSourceCtrl) Show(c echo.Context) error {
	id, err := request.ID(c, "id", "water source")
	if err != nil {
		return err
	}
	ws, err := h.svc.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return response.Data(c, http.StatusOK, ws)
}

func (h *waterSourceCtrl) Update(c echo.Context) error {
	id, err := request.ID(c, "id", "water source")
	if err != nil {
		return err
	}
	var in service.UpdateInput
	if err := request.Bind(c, &in); err != nil {
		return err
	}
	ws, err := h.svc.Update(c.Request().Context(), id, in)
	if err != nil {
		return err
	}
	return response.Data(c, http.StatusOK, ws)
}

func (h *waterSourceCtrl) Destroy(c echo.Context) error {
	id, err := request.ID(c, "id", "water source")
	if err != nil {
		return err
	}
	if err := h.svc.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
