// Package request holds the small parsing helpers shared by the echo
// handlers: path ids, query filters and pagination.
package request

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"farmbook/pkg/apperr"
	"farmbook/pkg/dates"
	"farmbook/pkg/store"
	"farmbook/pkg/validate"
)

// ID reads a numeric path parameter. Anything else is reported as a missing
// resource, the way a route-bound model lookup would.
func ID(c echo.Context, name, resource string) (uint, error) {
	raw := c.Param(name)
	n, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || n == 0 {
		return 0, apperr.NotFound(resource, raw)
	}
	return uint(n), nil
}

// Bind decodes the body into dst. A value of the wrong JSON type is a 422 on
// that field; a body that does not parse is a 400.
func Bind(c echo.Context, dst any) error {
	err := c.Bind(dst)
	if err == nil {
		return nil
	}
	var ute *json.UnmarshalTypeError
	if errors.As(err, &ute) && ute.Field != "" && ute.Type != nil {
		return apperr.Invalid(ute.Field, validate.WrongType(ute.Field, ute.Type.Kind()))
	}
	return echo.NewHTTPError(http.StatusBadRequest, "Malformed JSON payload.")
}

func Page(c echo.Context) store.Page {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	per, _ := strconv.Atoi(c.QueryParam("per_page"))
	return store.NewPage(page, per)
}

// Query reads optional filters from the query string, collecting malformed
// values as 422 field errors.
type Query struct {
	c  echo.Context
	ve *apperr.ValidationError
}

func NewQuery(c echo.Context) *Query {
	return &Query{c: c, ve: apperr.NewValidation()}
}

func (q *Query) raw(key string) string { return strings.TrimSpace(q.c.QueryParam(key)) }

func (q *Query) String(key string) string { return q.raw(key) }

func (q *Query) Uint(key string) *uint {
	raw := q.raw(key)
	if raw == "" {
		return nil
	}
	n, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		q.ve.Add(key, "The "+validate.Label(key)+" field must be an integer.")
		return nil
	}
	v := uint(n)
	return &v
}

func (q *Query) Float(key string) *float64 {
	raw := q.raw(key)
	if raw == "" {
		return nil
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		q.ve.Add(key, "The "+validate.Label(key)+" field must be a number.")
		return nil
	}
	return &f
}

// Bool accepts 1/0/true/false.
func (q *Query) Bool(key string) *bool {
	raw := q.raw(key)
	if raw == "" {
		return nil
	}
	b, err := strconv.ParseBool(raw)
	if err != nil {
		q.ve.Add(key, "The "+validate.Label(key)+" field must be true or false.")
		return nil
	}
	return &b
}

func (q *Query) Date(key string) *dates.Date {
	raw := q.raw(key)
	if raw == "" {
		return nil
	}
	d, err := dates.Parse(raw)
	if err != nil {
		q.ve.Add(key, validate.DateFormat(key))
		return nil
	}
	return &d
}

// Require records a field error for key when it was absent.
func (q *Query) Require(keys ...string) {
	for _, k := range keys {
		if q.raw(k) == "" && !q.ve.Has(k) {
			q.ve.Add(k, validate.Required(k))
		}
	}
}

func (q *Query) Err() error { return q.ve.OrNil() }
