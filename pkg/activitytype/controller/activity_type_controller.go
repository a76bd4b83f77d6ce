package controller

import "github.com/labstack/echo/v4"

type ActivityTypeController interface {
	Index(c echo.Context) error
	Store(c echo.Context) error
	Show(c echo.Context) error
	Update(c echo.Context) error
	Destroy(c echo.Context) error
}
