package dates

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

func mustParse(t *testing.T, s string) Date {
	t.Helper()
	d, err := Parse(s)
	require.NoError(t, err)
	return d
}

func TestParseAndCompare(t *testing.T) {
	a := mustParse(t, "2026-03-01")
	b := mustParse(t, "2026-06-30")
	assert.True(t, a.Before(b))
	assert.True(t, b.After(a))
	assert.Equal(t, "2026-03-01", a.String())
	assert.Equal(t, 121, a.DaysUntil(b))
	assert.Equal(t, "2026-03-11", a.AddDays(10).String())

	_, err := Parse("03/01/2026")
	assert.Error(t, err)
}

func TestNewNormalizesToMidnightUTC(t *testing.T) {
	loc := time.FixedZone("ICT", 7*3600)
	d := New(time.Date(2026, 3, 1, 23, 30, 0, 0, loc))
	assert.Equal(t, time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), d.Time())
}

func TestJSON(t *testing.T) {
	type wrap struct {
		D  Date  `json:"d"`
		P  *Date `json:"p"`
		DZ Date  `json:"dz"`
	}
	d := mustParse(t, "2026-05-01")
	b, err := json.Marshal(wrap{D: d})
	require.NoError(t, err)
	assert.JSONEq(t, `{"d":"2026-05-01","p":null,"dz":null}`, string(b))

	var w wrap
	require.NoError(t, json.Unmarshal([]byte(`{"d":"2026-08-31T00:00:00Z","p":"2026-01-02"}`), &w))
	assert.Equal(t, "2026-08-31", w.D.String())
	assert.Equal(t, "2026-01-02", w.P.String())
}

func TestOverlaps(t *testing.T) {
	p := func(s string) Date { return mustParse(t, s) }
	cases := []struct {
		name           string
		as, ae, bs, be string
		want           bool
	}{
		{"inside", "2026-03-01", "2026-06-30", "2026-05-01", "2026-08-31", true},
		{"touching end", "2026-03-01", "2026-06-30", "2026-06-30", "2026-08-31", true},
		{"disjoint", "2026-03-01", "2026-06-30", "2026-07-01", "2026-08-31", false},
		{"containing", "2026-01-01", "2026-12-31", "2026-05-01", "2026-05-02", true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Overlaps(p(tc.as), p(tc.ae), p(tc.bs), p(tc.be)))
			assert.Equal(t, tc.want, Overlaps(p(tc.bs), p(tc.be), p(tc.as), p(tc.ae)))
		})
	}
}

func TestParseClock(t *testing.T) {
	c, err := ParseClock("06:30")
	require.NoError(t, err)
	assert.Equal(t, datatypes.NewTime(6, 30, 0, 0), c)

	c, err = ParseClock("17:05:09")
	require.NoError(t, err)
	assert.Equal(t, "17:05:09", c.String())

	_, err = ParseClock("25:00")
	assert.Error(t, err)

	none, err := ParseClockPtr(nil)
	require.NoError(t, err)
	assert.Nil(t, none)
}
