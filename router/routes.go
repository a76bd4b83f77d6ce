package router

import (
	"net/http"

	"github.com/labstack/echo/v4"

	activityLogCtrl "farmbook/pkg/activitylog/controller"
	activityTypeCtrl "farmbook/pkg/activitytype/controller"
	authCtrl "farmbook/pkg/auth/controller"
	cropCycleCtrl "farmbook/pkg/cropcycle/controller"
	cropTypeCtrl "farmbook/pkg/croptype/controller"
	stageCtrl "farmbook/pkg/cyclestage/controller"
	landParcelCtrl "farmbook/pkg/landparcel/controller"
	seasonCtrl "farmbook/pkg/season/controller"
	unitCtrl "farmbook/pkg/unit/controller"
	waterSourceCtrl "farmbook/pkg/watersource/controller"
)

type Controllers struct {
	Health         interface{ Health(echo.Context) error }
	Metrics        echo.HandlerFunc
	Auth           authCtrl.AuthController
	Unit           unitCtrl.UnitController
	LandParcel     landParcelCtrl.LandParcelController
	WaterSource    waterSourceCtrl.WaterSourceController
	CropType       cropTypeCtrl.CropTypeController
	ActivityType   activityTypeCtrl.ActivityTypeController
	Definition     seasonCtrl.DefinitionController
	Season         seasonCtrl.SeasonController
	CropCycle      cropCycleCtrl.CropCycleController
	CropCycleStage stageCtrl.CropCycleStageController
	ActivityLog    activityLogCtrl.ActivityLogController
}

type resource interface {
	Index(echo.Context) error
	Store(echo.Context) error
	Show(echo.Context) error
	Update(echo.Context) error
	Destroy(echo.Context) error
}

// apiResource registers index, store, show, update and destroy for path.
func apiResource(g *echo.Group, path string, r resource) {
	g.GET(path, r.Index)
	g.POST(path, r.Store)
	g.GET(path+"/:id", r.Show)
	g.PUT(path+"/:id", r.Update)
	g.PATCH(path+"/:id", r.Update)
	g.DELETE(path+"/:id", r.Destroy)
}

// methodNotAllowed answers 405 for a verb a resource refuses outright.
func methodNotAllowed(allow, msg string) echo.HandlerFunc {
	return func(c echo.Context) error {
		c.Response().Header().Set(echo.HeaderAllow, allow)
		return echo.NewHTTPError(http.StatusMethodNotAllowed, msg)
	}
}

// New registers every route. Static segments such as /crop-cycles/transitions
// win over /:id in echo's router.
func New(e *echo.Echo, api *echo.Group, c Controllers) *echo.Echo {
	e.GET("/health", c.Health.Health)
	e.GET("/metrics", c.Metrics)

	api.POST("/auth/dev-token", c.Auth.DevToken)
	api.GET("/auth/whoami", c.Auth.WhoAmI)

	api.GET("/units-of-measure/convert", c.Unit.Convert)
	apiResource(api, "/units-of-measure", c.Unit)

	apiResource(api, "/land-parcels", c.LandParcel)
	api.GET("/land-parcels/:id/water-sources", c.LandParcel.WaterSources)
	api.POST("/land-parcels/:id/water-sources", c.LandParcel.AttachWaterSource)
	api.DELETE("/land-parcels/:id/water-sources/:waterSourceId", c.LandParcel.DetachWaterSource)

	apiResource(api, "/water-sources", c.WaterSource)
	apiResource(api, "/crop-types", c.CropType)
	apiResource(api, "/season-definitions", c.Definition)
	apiResource(api, "/seasons", c.Season)
	apiResource(api, "/activity-types", c.ActivityType)

	api.GET("/crop-cycles/transitions", c.CropCycle.Transitions)
	apiResource(api, "/crop-cycles", c.CropCycle)
	api.POST("/crop-cycles/:id/activate", c.CropCycle.Activate)
	api.POST("/crop-cycles/:id/complete", c.CropCycle.Complete)
	api.POST("/crop-cycles/:id/fail", c.CropCycle.Fail)
	api.POST("/crop-cycles/:id/abandon", c.CropCycle.Abandon)
	api.GET("/crop-cycles/:id/stages", c.CropCycleStage.ForCycle)
	api.POST("/crop-cycles/:id/stages/generate", c.CropCycleStage.Generate)

	apiResource(api, "/crop-cycle-stages", c.CropCycleStage)
	api.POST("/crop-cycle-stages/:id/start", c.CropCycleStage.Start)
	api.POST("/crop-cycle-stages/:id/complete", c.CropCycleStage.Complete)
	api.POST("/crop-cycle-stages/:id/skip", c.CropCycleStage.Skip)

	api.GET("/activity-logs/export", c.ActivityLog.Export)
	api.GET("/activity-logs", c.ActivityLog.Index)
	api.POST("/activity-logs", c.ActivityLog.Store)
	api.GET("/activity-logs/:id", c.ActivityLog.Show)
	api.PUT("/activity-logs/:id", c.ActivityLog.Update)
	api.PATCH("/activity-logs/:id", c.ActivityLog.Update)
	api.DELETE("/activity-logs/:id", methodNotAllowed("GET, PUT, PATCH", "Activity logs cannot be deleted."))
	return e
}
