package router

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"farmbook/config"
	"farmbook/pkg/logger"
	"farmbook/pkg/metrics"
	"farmbook/pkg/middleware"
	"farmbook/pkg/response"
	"farmbook/pkg/stageplan"
	"farmbook/pkg/validate"

	activityLogCtrlImp "farmbook/pkg/activitylog/controllerImp"
	activityLogRepoImp "farmbook/pkg/activitylog/repositoryImp"
	activityLogSvcImp "farmbook/pkg/activitylog/serviceImp"

	activityTypeCtrlImp "farmbook/pkg/activitytype/controllerImp"
	activityTypeRepoImp "farmbook/pkg/activitytype/repositoryImp"
	activityTypeSvcImp "farmbook/pkg/activitytype/serviceImp"

	authCtrlImp "farmbook/pkg/auth/controllerImp"

	cropCycleCtrlImp "farmbook/pkg/cropcycle/controllerImp"
	cropCycleRepoImp "farmbook/pkg/cropcycle/repositoryImp"
	cropCycleSvcImp "farmbook/pkg/cropcycle/serviceImp"

	cropTypeCtrlImp "farmbook/pkg/croptype/controllerImp"
	cropTypeRepoImp "farmbook/pkg/croptype/repositoryImp"
	cropTypeSvcImp "farmbook/pkg/croptype/serviceImp"

	stageCtrlImp "farmbook/pkg/cyclestage/controllerImp"
	stageRepoImp "farmbook/pkg/cyclestage/repositoryImp"
	stageSvcImp "farmbook/pkg/cyclestage/serviceImp"

	healthCtrlImp "farmbook/pkg/health/controllerImp"

	landParcelCtrlImp "farmbook/pkg/landparcel/controllerImp"
	landParcelRepoImp "farmbook/pkg/landparcel/repositoryImp"
	landParcelSvcImp "farmbook/pkg/landparcel/serviceImp"

	seasonCtrlImp "farmbook/pkg/season/controllerImp"
	seasonRepoImp "farmbook/pkg/season/repositoryImp"
	seasonSvcImp "farmbook/pkg/season/serviceImp"

	unitCtrlImp "farmbook/pkg/unit/controllerImp"
	unitRepoImp "farmbook/pkg/unit/repositoryImp"
	unitSvcImp "farmbook/pkg/unit/serviceImp"

	waterSourceCtrlImp "farmbook/pkg/watersource/controllerImp"
	waterSourceRepoImp "farmbook/pkg/watersource/repositoryImp"
	waterSourceSvcImp "farmbook/pkg/watersource/serviceImp"
)

const Version = "1.0.0"

// Build wires repositories, services and controllers onto a new echo
// instance configured from cfg.
func Build(db *gorm.DB, cfg config.AppConfig, log *logger.Logger) (*echo.Echo, error) {
	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		log.Warn("unknown timezone, using UTC", "tz", cfg.Timezone, "error", err)
		loc = time.UTC
	}
	now := func() time.Time { return time.Now().In(loc) }

	tpl, err := stageplan.Load(cfg.StageTemplatePath)
	if err != nil {
		return nil, fmt.Errorf("load stage template: %w", err)
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = response.ErrorHandler(log)
	e.Validator = validate.Echo{}

	m := metrics.New()
	e.Use(echoMiddleware.Recover())
	e.Use(echoMiddleware.RequestIDWithConfig(echoMiddleware.RequestIDConfig{Generator: uuid.NewString}))
	e.Use(middleware.Metrics(m))
	e.Use(middleware.RequestLogger(log))
	e.Use(echoMiddleware.CORS())

	var store echoMiddleware.RateLimiterStore
	if cfg.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr, DialTimeout: 2 * time.Second})
		e.Server.RegisterOnShutdown(func() { _ = rdb.Close() })
		store = middleware.NewRedisStore(rdb, cfg.RateLimitPerMinute, log)
	} else {
		store = middleware.NewMemoryStore(cfg.RateLimitPerMinute)
	}

	c := Controllers{
		Health:         healthCtrlImp.NewHealthCtrl(db, Version),
		Metrics:        echo.WrapHandler(m.Handler()),
		Auth:           authCtrlImp.NewAuthController(cfg.JWTSecret, cfg.DevLogin),
		Unit:           unitCtrlImp.New(unitSvcImp.NewUnitService(db, unitRepoImp.New(db))),
		LandParcel:     landParcelCtrlImp.New(landParcelSvcImp.NewLandParcelService(db, landParcelRepoImp.New(db))),
		WaterSource:    waterSourceCtrlImp.New(waterSourceSvcImp.NewWaterSourceService(db, waterSourceRepoImp.New(db))),
		CropType:       cropTypeCtrlImp.New(cropTypeSvcImp.NewCropTypeService(db, cropTypeRepoImp.New(db))),
		ActivityType:   activityTypeCtrlImp.New(activityTypeSvcImp.NewActivityTypeService(db, activityTypeRepoImp.New(db))),
		Definition:     seasonCtrlImp.NewDefinitionController(seasonSvcImp.NewDefinitionService(db, seasonRepoImp.NewDefinitionRepository(db))),
		Season:         seasonCtrlImp.NewSeasonController(seasonSvcImp.NewSeasonService(db, seasonRepoImp.NewSeasonRepository(db))),
		ActivityLog:    activityLogCtrlImp.New(activityLogSvcImp.NewActivityLogService(db, activityLogRepoImp.New(db))),
		CropCycleStage: stageCtrlImp.New(stageSvcImp.NewCropCycleStageService(db, stageRepoImp.New(db), tpl, stageSvcImp.WithClock(now))),
		CropCycle: cropCycleCtrlImp.New(cropCycleSvcImp.NewCropCycleService(db, cropCycleRepoImp.New(db),
			cropCycleSvcImp.WithRecorder(m),
			cropCycleSvcImp.WithClock(now),
		)),
	}

	api := e.Group("/api/v1",
		middleware.RateLimit(store),
		middleware.BearerAuth(cfg.JWTSecret, cfg.AuthEnabled, "/api/v1/auth/"),
	)
	New(e, api, c)
	return e, nil
}
