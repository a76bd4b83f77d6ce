// Package response renders the JSON envelopes and maps service errors to
// HTTP status codes.
package response

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"farmbook/pkg/apperr"
	"farmbook/pkg/logger"
	"farmbook/pkg/store"
)

type Meta struct {
	CurrentPage int   `json:"current_page"`
	PerPage     int   `json:"per_page"`
	Total       int64 `json:"total"`
	LastPage    int   `json:"last_page"`
}

func Data(c echo.Context, status int, v any) error {
	return c.JSON(status, echo.Map{"data": v})
}

func Paginated[T any](c echo.Context, items []T, total int64, page store.Page) error {
	if items == nil {
		items = []T{}
	}
	return c.JSON(http.StatusOK, echo.Map{
		"data": items,
		"meta": Meta{
			CurrentPage: page.Page,
			PerPage:     page.PerPage,
			Total:       total,
			LastPage:    page.LastPage(total),
		},
	})
}

// ErrorHandler is installed as echo's HTTPErrorHandler.
func ErrorHandler(log *logger.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}
		status, body := render(err)
		if status >= http.StatusInternalServerError {
			log.Error("request failed",
				"method", c.Request().Method,
				"path", c.Path(),
				"request_id", c.Response().Header().Get(echo.HeaderXRequestID),
				"error", err,
			)
		}
		if c.Request().Method == http.MethodHead {
			err = c.NoContent(status)
		} else {
			err = c.JSON(status, body)
		}
		if err != nil {
			log.Warn("write error response", "error", err)
		}
	}
}

func render(err error) (int, echo.Map) {
	var (
		ve *apperr.ValidationError
		ce *apperr.ConflictError
		he *echo.HTTPError
	)
	switch {
	case errors.As(err, &ve):
		return http.StatusUnprocessableEntity, echo.Map{"message": ve.Error(), "errors": ve.Fields}
	case errors.As(err, &ce):
		return http.StatusUnprocessableEntity, echo.Map{
			"message": ce.Message,
			"errors":  map[string][]string{"status": {ce.Message}},
		}
	case errors.Is(err, apperr.ErrNotFound):
		return http.StatusNotFound, echo.Map{"message": err.Error()}
	case errors.As(err, &he):
		msg, ok := he.Message.(string)
		if !ok || msg == "" {
			msg = http.StatusText(he.Code)
		}
		if he.Code >= http.StatusInternalServerError {
			msg = "Server Error"
		}
		return he.Code, echo.Map{"message": msg}
	default:
		return http.StatusInternalServerError, echo.Map{"message": "Server Error"}
	}
}
