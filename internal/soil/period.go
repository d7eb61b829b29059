package soil

import (
	"fmt"
	"time"
)

// Period is a chart history window.
type Period string

const (
	Period7Days  Period = "7days"
	Period30Days Period = "30days"
	Period90Days Period = "90days"
)

// ParsePeriod parses a period query value. Empty means 7days.
func ParsePeriod(s string) (Period, error) {
	switch p := Period(s); p {
	case "":
		return Period7Days, nil
	case Period7Days, Period30Days, Period90Days:
		return p, nil
	default:
		return "", fmt.Errorf("invalid period %q; use 7days, 30days or 90days", s)
	}
}

// Days returns the number of daily samples covered by p.
func (p Period) Days() int {
	switch p {
	case Period30Days:
		return 30
	case Period90Days:
		return 90
	default:
		return 7
	}
}

// Since returns the first day included in p when it ends on now's day.
func (p Period) Since(now time.Time) time.Time {
	return truncateDay(now).AddDate(0, 0, -(p.Days() - 1))
}
