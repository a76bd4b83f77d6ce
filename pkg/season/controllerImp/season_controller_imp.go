package controllerImp

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"farmbook/pkg/request"
	"farmbook/pkg/response"
	"farmbook/pkg/season/controller"
	"farmbook/pkg/season/repository"
	"farmbook/pkg/season/service"
)

type definitionCtrl struct{ svc service.DefinitionService }

func NewDefinitionController(svc service.DefinitionService) controller.DefinitionController {
	return &definitionCtrl{svc}
}

func (h *definitionCtrl) Index(c echo.Context) error {
	q := request.NewQuery(c)
	f := repository.DefinitionFilter{IsActive: q.Bool("is_active"), Search: q.String("search")}
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

func (h *definitionCtrl) Store(c echo.Context) error {
	var in service.DefinitionInput
	if err := request.Bind(c, &in); err != nil {
		return err
	}
	d, err := h.svc.Create(c.Request().Context(), in)
	if err != nil {
		return err
	}
	return response.Data(c, http.StatusCreated, d)
}

func (h *definitionCtrl) Show(c echo.Context) error {
	id, err := request.ID(c, "id", "season definition")
	if err != nil {
		return err
	}
	d, err := h.svc.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return response.Data(c, http.StatusOK, d)
}

func (h *definitionCtrl) Update(c echo.Context) error {
	id, err := request.ID(c, "id", "season definition")
	if err != nil {
		return err
	}
	var in service.DefinitionPatch
	if err := request.Bind(c, &in); err != nil {
		return err
	}
	d, err := h.svc.Update(c.Request().Context(), id, in)
	if err != nil {
		return err
	}
	return response.Data(c, http.StatusOK, d)
}

func (h *definitionCtrl) Destroy(c echo.Context) error {
	id, err := request.ID(c, "id", "season definition")
	if err != nil {
		return err
	}
	if err := h.svc.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

type seasonCtrl struct{ svc service.SeasonService }

func NewSeasonController(svc service.SeasonService) controller.SeasonController {
	return &seasonCtrl{svc}
}

func (h *seasonCtrl) Index(c echo.Context) error {
	q := request.NewQuery(c)
	f := repository.SeasonFilter{
		SeasonDefinitionID: q.Uint("season_definition_id"),
		Year:               q.Uint("year"),
		IsActive:           q.Bool("is_active"),
		Search:             q.String("search"),
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

func (h *seasonCtrl) Store(c echo.Context) error {
	var in service.SeasonInput
	if err := request.Bind(c, &in); err != nil {
		return err
	}
	ss, err := h.svc.Create(c.Request().Context(), in)
	if err != nil {
		return err
	}
	return response.Data(c, http.StatusCreated, ss)
}

func (h *seasonCtrl) Show(c echo.Context) error {
	id, err := request.ID(c, "id", "season")
	if err != nil {
		return err
	}
	ss, err := h.svc.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return response.Data(c, http.StatusOK, ss)
}

func (h *seasonCtrl) Update(c echo.Context) error {
	id, err := request.ID(c, "id", "season")
	if err != nil {
		return err
	}
	var in service.SeasonPatch
	if err := request.Bind(c, &in); err != nil {
		return err
	}
	ss, err := h.svc.Update(c.Request().Context(), id, in)
	if err != nil {
		return err
	}
	return response.Data(c, http.StatusOK, ss)
}

func (h *seasonCtrl) Destroy(c echo.Context) error {
	id, err := request.ID(c, "id", "season")
	if err != nil {
		return err
	}
	if err := h.svc.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
