package controllerImp

import (
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"farmbook/pkg/auth/controller"
	"farmbook/pkg/middleware"
	"farmbook/pkg/request"
	"farmbook/pkg/response"
)

const (
	defaultSubject = "dev-user"
	tokenTTL       = 12 * time.Hour
)

type authCtrl struct {
	secret   string
	devLogin bool
}

func NewAuthController(secret string, devLogin bool) controller.AuthController {
	return &authCtrl{secret: secret, devLogin: devLogin}
}

type devTokenInput struct {
	Subject string `json:"subject"`
}

// DevToken hands out a signed token for local work. It is a 404 unless
// DEV_LOGIN is on.
func (h *authCtrl) DevToken(c echo.Context) error {
	if !h.devLogin {
		return echo.ErrNotFound
	}
	var in devTokenInput
	if err := request.Bind(c, &in); err != nil {
		return err
	}
	sub := strings.TrimSpace(in.Subject)
	if sub == "" {
		sub = defaultSubject
	}
	tok, err := middleware.IssueToken(h.secret, sub, tokenTTL)
	if err != nil {
		return err
	}
	return response.Data(c, http.StatusOK, echo.Map{
		"token":      tok,
		"token_type": "Bearer",
		"expires_in": int(tokenTTL.Seconds()),
		"subject":    sub,
	})
}

// WhoAmI reads the Authorization header itself because /auth is outside the
// authenticated group.
func (h *authCtrl) WhoAmI(c echo.Context) error {
	raw := strings.TrimSpace(c.Request().Header.Get(echo.HeaderAuthorization))
	if len(raw) <= 7 || !strings.EqualFold(raw[:7], "Bearer ") {
		return echo.NewHTTPError(http.StatusUnauthorized, "Unauthenticated.")
	}
	sub, err := middleware.ParseToken(h.secret, strings.TrimSpace(raw[7:]))
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "Unauthenticated.")
	}
	return response.Data(c, http.StatusOK, echo.Map{"subject": sub})
}
