package middleware

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

const subjectKey = "sub"

var ErrInvalidToken = errors.New("invalid token")

// IssueToken signs an HS256 token for subject.
func IssueToken(secret, subject string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}

// ParseToken verifies raw and returns its subject.
func ParseToken(secret, raw string) (string, error) {
	var claims jwt.RegisteredClaims
	_, err := jwt.ParseWithClaims(raw, &claims, func(t *jwt.Token) (any, error) {
		return []byte(secret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return "", ErrInvalidToken
	}
	if claims.Subject == "" {
		return "", ErrInvalidToken
	}
	return claims.Subject, nil
}

// BearerAuth requires a valid bearer token except on paths that start with
// one of the public prefixes. With enabled=false every request passes.
func BearerAuth(secret string, enabled bool, public ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !enabled || isPublic(c.Request().URL.Path, public) {
				return next(c)
			}
			h := c.Request().Header.Get(echo.HeaderAuthorization)
			if len(h) <= 7 || !strings.EqualFold(h[:7], "Bearer ") {
				return echo.NewHTTPError(http.StatusUnauthorized, "Unauthenticated.")
			}
			sub, err := ParseToken(secret, strings.TrimSpace(h[7:]))
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "Unauthenticated.")
			}
			c.Set(subjectKey, sub)
			return next(c)
		}
	}
}

// Subject returns the authenticated subject, or "" when auth was skipped.
func Subject(c echo.Context) string {
	s, _ := c.Get(subjectKey).(string)
	return s
}

func isPublic(path string, prefixes []string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(path, p) {
			return true
		}
	}
	return false
}
