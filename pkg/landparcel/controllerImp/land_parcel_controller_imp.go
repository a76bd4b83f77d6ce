package controllerImp

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"farmbook/pkg/landparcel/controller"
	"farmbook/pkg/landparcel/repository"
	"farmbook/pkg/landparcel/service"
	"farmbook/pkg/request"
	"farmbook/pkg/response"
)

type landParcelCtrl struct{ svc service.LandParcelService }

func New(svc service.LandParcelService) controller.LandParcelController {
	return &landParcelCtrl{svc}
}

func (h *landParcelCtrl) Index(c echo.Context) error {
	q := request.NewQuery(c)
	f := repository.Filter{LandType: q.String("land_type"), IsActive: q.Bool("is_active"), Search: q.String("search")}
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

func (h *landParcelCtrl) Store(c echo.Context) error {
	var in service.CreateInput
	if err := request.Bind(c, &in); err != nil {
		return err
	}
	p, err := h.svc.Create(c.Request().Context(), in)
	if err != nil {
		return err
	}
	return response.Data(c, http.StatusCreated, p)
}

func (h *landParcelCtrl) Show(c echo.Context) error {
	id, err := request.ID(c, "id", "land parcel")
	if err != nil {
		return err
	}
	p, err := h.svc.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return response.Data(c, http.StatusOK, p)
}

func (h *landParcelCtrl) Update(c echo.Context) error {
	id, err := request.ID(c, "id", "land parcel")
	if err != nil {
		return err
	}
	var in service.UpdateInput
	if err := request.Bind(c, &in); err != nil {
		return err
	}
	p, err := h.svc.Update(c.Request().Context(), id, in)
	if err != nil {
		return err
	}
	return response.Data(c, http.StatusOK, p)
}

func (h *landParcelCtrl) Destroy(c echo.Context) error {
	id, err := request.ID(c, "id", "land parcel")
	if err != nil {
		return err
	}
	if err := h.svc.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *landParcelCtrl) WaterSources(c echo.Context) error {
	id, err := request.ID(c, "id", "land parcel")
	if err != nil {
		return err
	}
	links, err := h.svc.WaterSources(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return response.Data(c, http.StatusOK, links)
}

func (h *landParcelCtrl) AttachWaterSource(c echo.Context) error {
	id, err := request.ID(c, "id", "land parcel")
	if err != nil {
		return err
	}
	var in service.AttachInput
	if err := request.Bind(c, &in); err != nil {
		return err
	}
	link, err := h.svc.AttachWaterSource(c.Request().Context(), id, in)
	if err != nil {
		return err
	}
	return response.Data(c, http.StatusCreated, link)
}

func (h *landParcelCtrl) DetachWaterSource(c echo.Context) error {
	id, err := request.ID(c, "id", "land parcel")
	if err != nil {
		return err
	}
	wsID, err := request.ID(c, "waterSourceId", "water source")
	if err != nil {
		return err
	}
	if err := h.svc.DetachWaterSource(c.Request().Context(), id, wsID); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
