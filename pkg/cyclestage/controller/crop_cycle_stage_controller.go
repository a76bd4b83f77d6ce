package controller

import "github.com/labstack/echo/v4"

type CropCycleStageController interface {
	Index(c echo.Context) error
	Store(c echo.Context) error
	Show(c echo.Context) error
	Update(c echo.Context) error
	Destroy(c echo.Context) error

	Start(c echo.Context) error
	Complete(c echo.Context) error
	Skip(c echo.Context) error

	// mounted under /crop-cycles/:id
	ForCycle(c echo.Context) error
	Generate(c echo.Context) error
}
