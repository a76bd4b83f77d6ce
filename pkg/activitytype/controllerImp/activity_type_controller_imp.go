package controllerImp

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"farmbook/pkg/activitytype/controller"
	"farmbook/pkg/activitytype/repository"
	"farmbook/pkg/activitytype/service"
	"farmbook/pkg/request"
	"farmbook/pkg/response"
)

type activityTypeCtrl struct{ svc service.ActivityTypeService }

func New(svc service.ActivityTypeService) controller.ActivityTypeController { return &activityTypeCtrl{svc} }

func (h *activityTypeCtrl) Index(c echo.Context) error {
	q := request.NewQuery(c)
	f := repository.Filter{Category: q.String("category"), IsActive: q.Bool("is_active"), Search: q.String("search")}
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

func (h *activityTypeCtrl) Store(c echo.Context) error {
	var in service.CreateInput
	if err := request.Bind(c, &in); err != nil {
		return err
	}
	at, err := h.svc.Create(c.Request().Context(), in)
	if err != nil {
		return err
	}
	return response.Data(c, http.StatusCreated, at)
}

func (h *activityTypeCtrl) Show(c echo.Context) error {
	id, err := request.ID(c, "id", "activity type")
	if err != nil {
		return err
	}
	at, err := h.svc.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return response.Data(c, http.StatusOK, at)
}

func (h *activityTypeCtrl) Update(c echo.Context) error {
	id, err := request.ID(c, "id", "activity type")
	if err != nil {
		return err
	}
	var in service.UpdateInput
	if err := request.Bind(c, &in); err != nil {
		return err
	}
	at, err := h.svc.Update(c.Request().Context(), id, in)
	if err != nil {
		return err
	}
	return response.Data(c, http.StatusOK, at)
}

func (h *activityTypeCtrl) Destroy(c echo.Context) error {
	id, err := request.ID(c, "id", "activity type")
	if err != nil {
		return err
	}
	if err := h.svc.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
