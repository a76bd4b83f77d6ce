package controllerImp

import (
	"bytes"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"farmbook/pkg/activitylog/controller"
	"farmbook/pkg/activitylog/repository"
	"farmbook/pkg/activitylog/service"
	"farmbook/pkg/request"
	"farmbook/pkg/response"
)

const xlsxMIME = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type activityLogCtrl struct{ svc service.ActivityLogService }

func New(svc service.ActivityLogService) controller.ActivityLogController {
	return &activityLogCtrl{svc}
}

func filter(c echo.Context) (repository.Filter, error) {
	q := request.NewQuery(c)
	f := repository.Filter{
		CropCycleID:    q.Uint("crop_cycle_id"),
		LandParcelID:   q.Uint("land_parcel_id"),
		ActivityTypeID: q.Uint("activity_type_id"),
		DateFrom:       q.Date("date_from"),
		DateTo:         q.Date("date_to"),
	}
	return f, q.Err()
}

func (h *activityLogCtrl) Index(c echo.Context) error {
	f, err := filter(c)
	if err != nil {
		return err
	}
	page := request.Page(c)
	items, total, err := h.svc.List(c.Request().Context(), f, page)
	if err != nil {
		return err
	}
	return response.Paginated(c, items, total, page)
}

func (h *activityLogCtrl) Store(c echo.Context) error {
	var in service.RecordInput
	if err := request.Bind(c, &in); err != nil {
		return err
	}
	l, err := h.svc.Record(c.Request().Context(), in)
	if err != nil {
		return err
	}
	return response.Data(c, http.StatusCreated, l)
}

func (h *activityLogCtrl) Show(c echo.Context) error {
	id, err := request.ID(c, "id", "activity log")
	if err != nil {
		return err
	}
	l, err := h.svc.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return response.Data(c, http.StatusOK, l)
}

func (h *activityLogCtrl) Update(c echo.Context) error {
	id, err := request.ID(c, "id", "activity log")
	if err != nil {
		return err
	}
	var in service.UpdateInput
	if err := request.Bind(c, &in); err != nil {
		return err
	}
	l, err := h.svc.Update(c.Request().Context(), id, in)
	if err != nil {
		return err
	}
	return response.Data(c, http.StatusOK, l)
}

// Export buffers the workbook so a failure still gets a JSON error.
func (h *activityLogCtrl) Export(c echo.Context) error {
	f, err := filter(c)
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := h.svc.Export(c.Request().Context(), f, &buf); err != nil {
		return err
	}
	name := fmt.Sprintf("activity-logs-%s.xlsx", time.Now().Format("20060102"))
	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", name))
	return c.Blob(http.StatusOK, xlsxMIME, buf.Bytes())
}
