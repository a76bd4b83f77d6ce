package controllerImp

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"farmbook/pkg/croptype/controller"
	"farmbook/pkg/croptype/repository"
	"farmbook/pkg/croptype/service"
	"farmbook/pkg/request"
	"farmbook/pkg/response"
)

type cropTypeCtrl struct{ svc service.CropTypeService }

func New(svc service.CropTypeService) controller.CropTypeController { return &cropTypeCtrl{svc} }

func (h *cropTypeCtrl) Index(c echo.Context) error {
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

func (h *cropTypeCtrl) Store(c echo.Context) error {
	var in service.CreateInput
	if err := request.Bind(c, &in); err != nil {
		return err
	}
	ct, err := h.svc.Create(c.Request().Context(), in)
	if err != nil {
		return err
	}
	return response.Data(c, http.StatusCreated, ct)
}

func (h *cropTypeCtrl) Show(c echo.Context) error {
	id, err := request.ID(c, "id", "crop type")
	if err != nil {
		return err
	}
	ct, err := h.svc.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return response.Data(c, http.StatusOK, ct)
}

func (h *cropTypeCtrl) Update(c echo.Context) error {
	id, err := request.ID(c, "id", "crop type")
	if err != nil {
		return err
	}
	var in service.UpdateInput
	if err := request.Bind(c, &in); err != nil {
		return err
	}
	ct, err := h.svc.Update(c.Request().Context(), id, in)
	if err != nil {
		return err
	}
	return response.Data(c, http.StatusOK, ct)
}

func (h *cropTypeCtrl) Destroy(c echo.Context) error {
	id, err := request.ID(c, "id", "crop type")
	if err != nil {
		return err
	}
	if err := h.svc.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
