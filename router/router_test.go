package router

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"farmbook/config"
	"farmbook/database"
	"farmbook/pkg/logger"
)

type client struct {
	t     *testing.T
	e     *echo.Echo
	token string
}

func testConfig() config.AppConfig {
	return config.AppConfig{
		Env:                "test",
		Timezone:           "Asia/Ho_Chi_Minh",
		JWTSecret:          "bi-mat",
		RateLimitPerMinute: 10000,
	}
}

func newClient(t *testing.T, cfg config.AppConfig) *client {
	t.Helper()
	db, err := database.OpenMemory()
	require.NoError(t, err)
	e, err := Build(db, cfg, logger.Nop())
	require.NoError(t, err)
	return &client{t: t, e: e}
}

func (c *client) raw(method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if c.token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+c.token)
	}
	rec := httptest.NewRecorder()
	c.e.ServeHTTP(rec, req)
	return rec
}

func (c *client) do(method, path string, body any) (int, map[string]any) {
	c.t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(c.t, json.NewEncoder(&buf).Encode(body))
	}
	rec := c.raw(method, path, buf.String())
	out := map[string]any{}
	if rec.Body.Len() > 0 && strings.HasPrefix(rec.Header().Get(echo.HeaderContentType), echo.MIMEApplicationJSON) {
		require.NoError(c.t, json.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())
	}
	return rec.Code, out
}

// create posts body and returns the new id, failing unless the answer is 201.
func (c *client) create(path string, body any) uint {
	c.t.Helper()
	code, out := c.do(http.MethodPost, path, body)
	require.Equal(c.t, http.StatusCreated, code, "%v", out)
	return uint(data(out)["id"].(float64))
}

func data(out map[string]any) map[string]any {
	d, _ := out["data"].(map[string]any)
	return d
}

func errorFields(out map[string]any) map[string]any {
	f, _ := out["errors"].(map[string]any)
	return f
}

type refs struct{ parcel, crop, season, kg uint }

func (c *client) seedRefs() refs {
	return refs{
		parcel: c.create("/api/v1/land-parcels", map[string]any{"name": "Ruộng Phong Điền", "land_type": "rice_paddy", "area_value": 1.8}),
		crop:   c.create("/api/v1/crop-types", map[string]any{"name": "Lúa ST25", "category": "cereal", "typical_grow_duration_days": 105}),
		season: c.create("/api/v1/seasons", map[string]any{"name": "Hè Thu 2026", "year": 2026, "start_date": "2026-03-01", "end_date": "2026-08-31"}),
		kg:     c.create("/api/v1/units-of-measure", map[string]any{"name": "Kilogram", "abbreviation": "kg", "unit_type": "weight", "is_base_unit": true}),
	}
}

func (c *client) cycle(r refs, start, end string) (int, map[string]any) {
	return c.do(http.MethodPost, "/api/v1/crop-cycles", map[string]any{
		"land_parcel_id":     r.parcel,
		"crop_type_id":       r.crop,
		"season_id":          r.season,
		"planned_start_date": start,
		"planned_end_date":   end,
	})
}

func TestCropCycleOverlapScenario(t *testing.T) {
	c := newClient(t, testConfig())
	r := c.seedRefs()

	code, out := c.cycle(r, "2026-03-01", "2026-06-30")
	require.Equal(t, http.StatusCreated, code, "%v", out)
	id := uint(data(out)["id"].(float64))
	assert.Equal(t, "planned", data(out)["status"])

	code, out = c.do(http.MethodPost, fmt.Sprintf("/api/v1/crop-cycles/%d/activate", id), nil)
	require.Equal(t, http.StatusOK, code, "%v", out)
	assert.Equal(t, "active", data(out)["status"])

	code, out = c.cycle(r, "2026-05-01", "2026-08-31")
	assert.Equal(t, http.StatusUnprocessableEntity, code)
	assert.Contains(t, errorFields(out), "land_parcel_id")
}

func TestCropCyclePlannedEndMustFollowStart(t *testing.T) {
	c := newClient(t, testConfig())
	r := c.seedRefs()
	for _, end := range []string{"2026-03-01", "2026-02-28"} {
		code, out := c.cycle(r, "2026-03-01", end)
		assert.Equal(t, http.StatusUnprocessableEntity, code)
		assert.Contains(t, errorFields(out), "planned_end_date")
	}
}

func TestCompleteScenario(t *testing.T) {
	c := newClient(t, testConfig())
	r := c.seedRefs()
	_, out := c.cycle(r, "2026-03-01", "2026-06-30")
	id := uint(data(out)["id"].(float64))
	base := fmt.Sprintf("/api/v1/crop-cycles/%d", id)

	code, _ := c.do(http.MethodPost, base+"/activate", map[string]any{})
	require.Equal(t, http.StatusOK, code)

	code, out = c.do(http.MethodPost, base+"/complete", map[string]any{"yield_value": -100})
	assert.Equal(t, http.StatusUnprocessableEntity, code)
	assert.Contains(t, errorFields(out), "yield_value")

	code, out = c.do(http.MethodPost, base+"/complete", map[string]any{
		"yield_value": 5000, "quality_rating": "good", "yield_unit_id": r.kg,
	})
	require.Equal(t, http.StatusOK, code, "%v", out)
	assert.Equal(t, "completed", data(out)["status"])

	// terminal: any update is refused
	code, out = c.do(http.MethodPatch, base, map[string]any{})
	assert.Equal(t, http.StatusUnprocessableEntity, code)
	assert.Contains(t, errorFields(out), "status")
	code, _ = c.do(http.MethodPut, base, map[string]any{"notes": "sửa"})
	assert.Equal(t, http.StatusUnprocessableEntity, code)
}

func TestStageScenarios(t *testing.T) {
	c := newClient(t, testConfig())
	r := c.seedRefs()
	_, out := c.cycle(r, "2026-03-01", "2026-06-30")
	cycleID := uint(data(out)["id"].(float64))

	stageID := c.create("/api/v1/crop-cycle-stages", map[string]any{"crop_cycle_id": cycleID, "stage_name": "Làm đất", "sequence_order": 1})

	code, out := c.do(http.MethodPost, "/api/v1/crop-cycle-stages", map[string]any{"crop_cycle_id": cycleID, "stage_name": "Gieo sạ", "sequence_order": 1})
	assert.Equal(t, http.StatusUnprocessableEntity, code)
	assert.Contains(t, errorFields(out), "sequence_order")

	code, _ = c.do(http.MethodPut, fmt.Sprintf("/api/v1/crop-cycle-stages/%d", stageID), map[string]any{"sequence_order": 1})
	assert.Equal(t, http.StatusOK, code)

	// parent still planned
	code, _ = c.do(http.MethodPost, fmt.Sprintf("/api/v1/crop-cycle-stages/%d/start", stageID), nil)
	assert.Equal(t, http.StatusUnprocessableEntity, code)

	code, out = c.do(http.MethodGet, fmt.Sprintf("/api/v1/crop-cycles/%d/stages", cycleID), nil)
	require.Equal(t, http.StatusOK, code)
	assert.Len(t, out["data"], 1)
}

func TestGenerateStages(t *testing.T) {
	c := newClient(t, testConfig())
	r := c.seedRefs()
	_, out := c.cycle(r, "2026-03-01", "2026-06-30")
	cycleID := uint(data(out)["id"].(float64))
	path := fmt.Sprintf("/api/v1/crop-cycles/%d/stages/generate", cycleID)

	code, out := c.do(http.MethodPost, path, nil)
	require.Equal(t, http.StatusCreated, code, "%v", out)
	assert.Len(t, out["data"], 5)

	code, _ = c.do(http.MethodPost, path, nil)
	assert.Equal(t, http.StatusUnprocessableEntity, code)
}

func TestActivityTypeCategoryScenario(t *testing.T) {
	c := newClient(t, testConfig())
	code, out := c.do(http.MethodPost, "/api/v1/activity-types", map[string]any{"name": "Bơm nước", "category": "invalid_category"})
	assert.Equal(t, http.StatusUnprocessableEntity, code)
	assert.Contains(t, errorFields(out), "category")

	code, out = c.do(http.MethodPost, "/api/v1/activity-types", map[string]any{"name": "Bơm nước", "category": "irrigation"})
	assert.Equal(t, http.StatusCreated, code)
	assert.Regexp(t, `^AT-`, data(out)["code"])
}

func TestActivityLogQuantityUnit(t *testing.T) {
	c := newClient(t, testConfig())
	typeID := c.create("/api/v1/activity-types", map[string]any{"name": "Bón phân", "category": "fertilizing"})
	kg := c.create("/api/v1/units-of-measure", map[string]any{"name": "Kilogram", "abbreviation": "kg", "unit_type": "weight"})

	code, out := c.do(http.MethodPost, "/api/v1/activity-logs", map[string]any{
		"activity_type_id": typeID, "activity_date": "2026-04-01", "quantity_value": 50,
	})
	assert.Equal(t, http.StatusUnprocessableEntity, code)
	assert.Contains(t, errorFields(out), "quantity_unit_id")

	logID := c.create("/api/v1/activity-logs", map[string]any{"activity_type_id": typeID, "activity_date": "2026-04-01"})
	code, out = c.do(http.MethodPatch, fmt.Sprintf("/api/v1/activity-logs/%d", logID), map[string]any{"performed_by": "Út Hiền"})
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "Út Hiền", data(out)["performed_by"])

	code, _ = c.do(http.MethodPatch, fmt.Sprintf("/api/v1/activity-logs/%d", logID), map[string]any{"quantity_value": 50})
	assert.Equal(t, http.StatusUnprocessableEntity, code)
	code, _ = c.do(http.MethodPatch, fmt.Sprintf("/api/v1/activity-logs/%d", logID), map[string]any{"quantity_value": 50, "quantity_unit_id": kg})
	assert.Equal(t, http.StatusOK, code)

	// logs are never deleted
	rec := c.raw(http.MethodDelete, fmt.Sprintf("/api/v1/activity-logs/%d", logID), "")
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.Equal(t, "GET, PUT, PATCH", rec.Header().Get(echo.HeaderAllow))
	code, _ = c.do(http.MethodGet, fmt.Sprintf("/api/v1/activity-logs/%d", logID), nil)
	assert.Equal(t, http.StatusOK, code)

	rec = c.raw(http.MethodGet, "/api/v1/activity-logs/export", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get(echo.HeaderContentDisposition), "activity-logs-")
}

func TestErrorShapes(t *testing.T) {
	c := newClient(t, testConfig())

	code, out := c.do(http.MethodGet, "/api/v1/crop-cycles/999", nil)
	assert.Equal(t, http.StatusNotFound, code)
	assert.NotEmpty(t, out["message"])

	code, _ = c.do(http.MethodGet, "/api/v1/crop-cycles/abc", nil)
	assert.Equal(t, http.StatusNotFound, code)

	rec := c.raw(http.MethodPost, "/api/v1/crop-types", "{not json")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	code, out = c.do(http.MethodGet, "/api/v1/crop-cycles?land_parcel_id=x", nil)
	assert.Equal(t, http.StatusUnprocessableEntity, code)
	assert.Contains(t, errorFields(out), "land_parcel_id")

	code, out = c.do(http.MethodGet, "/api/v1/crop-cycles", nil)
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, []any{}, out["data"])
	assert.EqualValues(t, 1, out["meta"].(map[string]any)["last_page"])
}

func TestWrongJSONTypeIsFieldError(t *testing.T) {
	c := newClient(t, testConfig())
	r := c.seedRefs()
	_, out := c.cycle(r, "2026-03-01", "2026-06-30")
	cycleID := uint(data(out)["id"].(float64))

	cases := []struct {
		name, method, path, body, field, msg string
	}{
		{"integer", http.MethodPost, "/api/v1/crop-cycle-stages",
			fmt.Sprintf(`{"crop_cycle_id":%d,"stage_name":"Gieo sạ","sequence_order":"one"}`, cycleID),
			"sequence_order", "The sequence order field must be an integer."},
		{"number", http.MethodPost, fmt.Sprintf("/api/v1/crop-cycles/%d/complete", cycleID),
			`{"yield_value":"abc"}`, "yield_value", "The yield value field must be a number."},
		{"string", http.MethodPost, "/api/v1/crop-types",
			`{"name":"Lúa OM18","category":7}`, "category", "The category field must be a string."},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := c.raw(tc.method, tc.path, tc.body)
			require.Equal(t, http.StatusUnprocessableEntity, rec.Code, rec.Body.String())
			var body struct {
				Message string              `json:"message"`
				Errors  map[string][]string `json:"errors"`
			}
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, []string{tc.msg}, body.Errors[tc.field])
		})
	}

	// unparseable bodies stay a 400
	rec := c.raw(http.MethodPost, "/api/v1/crop-cycle-stages", `{"sequence_order":`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestTransitionsHealthAndMetrics(t *testing.T) {
	c := newClient(t, testConfig())

	code, out := c.do(http.MethodGet, "/api/v1/crop-cycles/transitions", nil)
	require.Equal(t, http.StatusOK, code)
	assert.Len(t, out["data"], 5)

	code, out = c.do(http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, true, out["status"].(map[string]any)["ok"])

	rec := c.raw(http.MethodGet, "/metrics", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "http_requests_total")
}

func TestAuth(t *testing.T) {
	cfg := testConfig()
	cfg.AuthEnabled = true
	cfg.DevLogin = true
	c := newClient(t, cfg)

	code, _ := c.do(http.MethodGet, "/api/v1/crop-types", nil)
	assert.Equal(t, http.StatusUnauthorized, code)

	code, out := c.do(http.MethodPost, "/api/v1/auth/dev-token", map[string]any{"subject": "chu-trang-trai"})
	require.Equal(t, http.StatusOK, code)
	c.token = data(out)["token"].(string)

	code, _ = c.do(http.MethodGet, "/api/v1/crop-types", nil)
	assert.Equal(t, http.StatusOK, code)
	code, out = c.do(http.MethodGet, "/api/v1/auth/whoami", nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "chu-trang-trai", data(out)["subject"])
}

func TestDevTokenDisabled(t *testing.T) {
	cfg := testConfig()
	cfg.AuthEnabled = true
	c := newClient(t, cfg)
	code, _ := c.do(http.MethodPost, "/api/v1/auth/dev-token", nil)
	assert.Equal(t, http.StatusNotFound, code)
}
