package controller

import "github.com/labstack/echo/v4"

type CropCycleController interface {
	Index(c echo.Context) error
	Store(c echo.Context) error
	Show(c echo.Context) error
	Update(c echo.Context) error
	Destroy(c echo.Context) error

	Activate(c echo.Context) error
	Complete(c echo.Context) error
	Fail(c echo.Context) error
	Abandon(c echo.Context) error
	Transitions(c echo.Context) error
}
