package pulse

import (
	"regexp"
	"strconv"
	"time"

	"pulse-insights/internal/model"
)

// ------------------- Time Window Filter -------------------

var periodRe = regexp.MustCompile(`^last_(\d+)d$`)

// ParsePeriod extracts the day count from a "last_<N>d" selector. Anything
// that does not match falls back to the default instead of erroring.
func ParsePeriod(period string, defaultDays int) int {
	m := periodRe.FindStringSubmatch(period)
	if m == nil {
		return defaultDays
	}
	days, err := strconv.Atoi(m[1])
	if err != nil || days <= 0 {
		return defaultDays
	}
	return days
}

// WindowStart computes the trailing window boundary: the instant `days` days
// before now, not truncated to a calendar day.
func WindowStart(now time.Time, days int) time.Time {
	return now.Add(-time.Duration(days) * 24 * time.Hour)
}

// FilterWindow narrows records to one team and one trailing window. Team
// matching is exact and case-sensitive; a record stamped exactly at the
// window start is in, anything earlier is out.
func FilterWindow(records []model.PulseRecord, teamID string, since time.Time) []model.PulseRecord {
	out := make([]model.PulseRecord, 0, len(records))
	for _, rec := range records {
		if rec.TeamID != teamID {
			continue
		}
		if rec.Timestamp.Before(since) {
			continue
		}
		out = append(out, rec)
	}
	return out
}
