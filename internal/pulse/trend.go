package pulse

import (
	"sort"
	"time"

	"pulse-insights/internal/model"
	"pulse-insights/pkg/utils"
)

// ------------------- Trend Bucketer -------------------

const bucketWidth = 7 * 24 * time.Hour

// WeeklyTrend groups records into fixed 7-day buckets counted from the window
// start and returns each populated bucket's mean rating in ascending bucket
// order. Fixed offsets, not ISO calendar weeks, so boundaries are stable
// across DST and year transitions.
//
// Empty buckets are omitted, not zero-filled: callers get a sparse sequence
// and must not treat positions as calendar week numbers.
func WeeklyTrend(records []model.PulseRecord, since time.Time) []float64 {
	buckets := make(map[int][]float64)
	for _, rec := range records {
		// Guarded even though the window filter runs first: duration
		// division truncates toward zero, which would fold the week
		// before the window into bucket 0.
		diff := rec.Timestamp.Sub(since)
		if diff < 0 {
			continue
		}
		idx := int(diff / bucketWidth)
		buckets[idx] = append(buckets[idx], float64(rec.Rating))
	}

	indices := make([]int, 0, len(buckets))
	for idx := range buckets {
		indices = append(indices, idx)
	}
	sort.Ints(indices)

	trend := make([]float64, 0, len(indices))
	for _, idx := range indices {
		trend = append(trend, utils.Round2(utils.Mean(buckets[idx])))
	}
	return trend
}
