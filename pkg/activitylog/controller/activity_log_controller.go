package controller

import "github.com/labstack/echo/v4"

// ActivityLogController exposes no Destroy.
type ActivityLogController interface {
	Index(c echo.Context) error
	Store(c echo.Context) error
	Show(c echo.Context) error
	Update(c echo.Context) error
	Export(c echo.Context) error
}
