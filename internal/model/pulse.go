package model

import "time"

// PulseRecord represents a single survey submission
type PulseRecord struct {
	Timestamp   time.Time `json:"timestamp"`
	TeamID      string    `json:"team_id"`
	EmpHash     string    `json:"emp_hash,omitempty"` // empty = anonymous
	Rating      int       `json:"rating_1to5"`
	CommentText string    `json:"comment_text,omitempty"`
}

// Topic is one configured topic with its keyword tokens. Position in the
// configured table is the tie-break priority when shares are equal.
type Topic struct {
	Name  string   `json:"name"`
	Terms []string `json:"terms"`
}

// TopicShare is the fraction of in-window records whose comment matched a topic
type TopicShare struct {
	Name  string  `json:"name"`
	Share float64 `json:"share"`
}

// Alert flags a condition derived from a single report
type Alert struct {
	Type     string `json:"type"`
	Severity string `json:"severity"`
	Reason   string `json:"reason"`
}

// AggregateReport is the full rolling report for one team and window.
//
// TrendWeekly holds the mean rating of each populated 7-day bucket counted
// from the window start, oldest first. Buckets with no records are omitted,
// so the slice is NOT a fixed-length calendar grid: entry positions do not
// line up with week numbers when a week had no submissions.
type AggregateReport struct {
	Avg         float64      `json:"avg"`
	TrendWeekly []float64    `json:"trend_weekly"`
	NegRate     float64      `json:"neg_rate"`
	Topics      []TopicShare `json:"topics"`
	Alerts      []Alert      `json:"alerts"`
}

// ReportRequest identifies the slice of data a report covers
type ReportRequest struct {
	TeamID string `json:"team_id"` // defaults to the configured team
	Period string `json:"period"`  // "last_<N>d", defaults to last_60d
}
