package controllerImp

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

const pingTimeout = 800 * time.Millisecond

var appStart = time.Now()

type HealthCtrl struct {
	db      *gorm.DB
	version string
}

func NewHealthCtrl(db *gorm.DB, version string) *HealthCtrl {
	return &HealthCtrl{db: db, version: version}
}

type check struct {
	OK     bool   `json:"ok"`
	Driver string `json:"driver,omitempty"`
	Err    string `json:"err,omitempty"`
}

// Health pings the database and answers 503 when it does not respond.
func (h *HealthCtrl) Health(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), pingTimeout)
	defer cancel()

	db := h.ping(ctx)
	status := http.StatusOK
	if !db.OK {
		status = http.StatusServiceUnavailable
	}
	return c.JSON(status, echo.Map{
		"status":     echo.Map{"ok": db.OK},
		"version":    h.version,
		"uptime_sec": int(time.Since(appStart).Seconds()),
		"checks":     echo.Map{"database": db},
		"time":       time.Now().Format(time.RFC3339),
	})
}

func (h *HealthCtrl) ping(ctx context.Context) check {
	if h.db == nil {
		return check{Err: "gorm db is nil"}
	}
	out := check{Driver: h.db.Dialector.Name()}
	sqlDB, err := h.db.DB()
	if err != nil {
		out.Err = "db.DB(): " + err.Error()
		return out
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		out.Err = "ping: " + err.Error()
		return out
	}
	out.OK = true
	return out
}
