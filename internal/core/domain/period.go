package domain

import (
	"fmt"
	"time"
)

// Period is the budgeting granularity: a calendar year and month.
// It is stored and transported in "YYYY-MM" form.
type Period struct {
	Year  int        `json:"year"`
	Month time.Month `json:"month"`
}

// PeriodOf truncates a date to its year-month period.
func PeriodOf(t time.Time) Period {
	return Period{Year: t.Year(), Month: t.Month()}
}

// CurrentPeriod returns the period containing the given clock time.
func CurrentPeriod(now time.Time) Period {
	return PeriodOf(now)
}

// ParsePeriod parses a period in "YYYY-MM" form.
func ParsePeriod(s string) (Period, error) {
	t, err := time.Parse("2006-01", s)
	if err != nil {
		return Period{}, fmt.Errorf("invalid period %q: expected YYYY-MM", s)
	}
	return PeriodOf(t), nil
}

// IsZero reports whether the period is the zero value.
func (p Period) IsZero() bool {
	return p.Year == 0 && p.Month == 0
}

// String formats the period as "YYYY-MM".
func (p Period) String() string {
	return fmt.Sprintf("%04d-%02d", p.Year, int(p.Month))
}

// Start returns the first instant of the period (midnight UTC on day one).
func (p Period) Start() time.Time {
	return time.Date(p.Year, p.Month, 1, 0, 0, 0, 0, time.UTC)
}

// End returns the last day of the period at midnight UTC.
func (p Period) End() time.Time {
	return p.Start().AddDate(0, 1, -1)
}

// Contains reports whether the given date falls inside the period.
func (p Period) Contains(t time.Time) bool {
	return t.Year() == p.Year && t.Month() == p.Month
}

// Before reports whether p is strictly earlier than other.
func (p Period) Before(other Period) bool {
	if p.Year != other.Year {
		return p.Year < other.Year
	}
	return p.Month < other.Month
}
