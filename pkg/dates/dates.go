// Package dates wraps gorm's datatypes.Date and datatypes.Time with the
// wire formats the API speaks: YYYY-MM-DD and HH:MM[:SS].
package dates

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"gorm.io/datatypes"
)

const Layout = "2006-01-02"

// Date is a calendar day stored as a DATE column. It is always normalized to
// midnight UTC.
type Date struct {
	datatypes.Date
}

func New(t time.Time) Date {
	y, m, d := t.Date()
	return Date{datatypes.Date(time.Date(y, m, d, 0, 0, 0, 0, time.UTC))}
}

func Today() Date { return New(time.Now()) }

func Parse(s string) (Date, error) {
	t, err := time.Parse(Layout, strings.TrimSpace(s))
	if err != nil {
		return Date{}, err
	}
	return New(t), nil
}

// ParsePtr parses an optional date; nil or blank input gives nil.
func ParsePtr(s *string) (*Date, error) {
	if s == nil || strings.TrimSpace(*s) == "" {
		return nil, nil
	}
	d, err := Parse(*s)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (d Date) Time() time.Time {
	y, m, day := time.Time(d.Date).Date()
	return time.Date(y, m, day, 0, 0, 0, 0, time.UTC)
}

func (d Date) IsZero() bool { return time.Time(d.Date).IsZero() }
func (d Date) String() string { return d.Time().Format(Layout) }
func (d Date) Before(o Date) bool { return d.Time().Before(o.Time()) }
func (d Date) After(o Date) bool { return d.Time().After(o.Time()) }
func (d Date) Equal(o Date) bool { return d.Time().Equal(o.Time()) }
func (d Date) AddDays(n int) Date { return New(d.Time().AddDate(0, 0, n)) }

// DaysUntil returns the number of whole days from d to o.
func (d Date) DaysUntil(o Date) int {
	return int(o.Time().Sub(d.Time()).Hours() / 24)
}

func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(d.String())
}

func (d *Date) UnmarshalJSON(b []byte) error {
	if bytes.Equal(b, []byte("null")) {
		*d = Date{}
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	if len(s) > len(Layout) {
		s = s[:len(Layout)]
	}
	parsed, err := Parse(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Overlaps reports whether the inclusive ranges [aStart,aEnd] and
// [bStart,bEnd] share at least one day.
func Overlaps(aStart, aEnd, bStart, bEnd Date) bool {
	return !aStart.After(bEnd) && !bStart.After(aEnd)
}

// ParseClock accepts HH:MM or HH:MM:SS.
func ParseClock(s string) (datatypes.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range []string{"15:04:05", "15:04"} {
		if t, err := time.Parse(layout, s); err == nil {
			return datatypes.NewTime(t.Hour(), t.Minute(), t.Second(), 0), nil
		}
	}
	return 0, fmt.Errorf("invalid time %q", s)
}

func ParseClockPtr(s *string) (*datatypes.Time, error) {
	if s == nil || strings.TrimSpace(*s) == "" {
		return nil, nil
	}
	t, err := ParseClock(*s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
