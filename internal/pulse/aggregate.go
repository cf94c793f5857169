package pulse

import (
	"sort"
	"time"

	"pulse-insights/internal/config"
	"pulse-insights/internal/model"
	"pulse-insights/pkg/utils"
)

// ------------------- Aggregator -------------------

// Engine derives rolling reports from an immutable record snapshot. It holds
// only the static configuration and tagger, so concurrent report requests
// share nothing mutable.
type Engine struct {
	cfg    *config.Config
	tagger *Tagger
}

func NewEngine(cfg *config.Config) *Engine {
	return &Engine{
		cfg:    cfg,
		tagger: NewTagger(cfg.NegativeTerms, cfg.Topics),
	}
}

// Report computes the full aggregate for one team and period against the
// given record snapshot. Every field is derived independently from the same
// filtered set; nothing is cached between calls, so an unchanged snapshot
// always yields an identical report.
func (e *Engine) Report(records []model.PulseRecord, req model.ReportRequest, now time.Time) model.AggregateReport {
	teamID := req.TeamID
	if teamID == "" {
		teamID = e.cfg.DefaultTeam
	}
	days := ParsePeriod(req.Period, e.cfg.DefaultWindowDays)
	since := WindowStart(now, days)

	filtered := FilterWindow(records, teamID, since)
	n := len(filtered)

	ratings := make([]float64, n)
	tokens := make([][]string, n)
	for i, rec := range filtered {
		ratings[i] = float64(rec.Rating)
		tokens[i] = Tokenize(rec.CommentText)
	}

	avg := utils.Round2(utils.Mean(ratings))

	negCount := 0
	for _, toks := range tokens {
		if e.tagger.IsNegative(toks) {
			negCount++
		}
	}
	negRate := 0.0
	if n > 0 {
		negRate = utils.Round2(float64(negCount) / float64(n))
	}

	report := model.AggregateReport{
		Avg:         avg,
		TrendWeekly: WeeklyTrend(filtered, since),
		NegRate:     negRate,
		Topics:      e.topicShares(tokens, n),
		Alerts:      []model.Alert{},
	}
	if alert := EvaluateAlert(report.TrendWeekly, report.NegRate); alert != nil {
		report.Alerts = append(report.Alerts, *alert)
	}
	return report
}

// topicShares counts topic matches and returns the top 5 shares, descending.
// Candidates are built in configured table order and the sort is stable, so
// equal counts break toward the earlier topic.
func (e *Engine) topicShares(tokens [][]string, n int) []model.TopicShare {
	counts := make([]int, len(e.cfg.Topics))
	for _, toks := range tokens {
		for i, matched := range e.tagger.TopicMatches(toks) {
			if matched {
				counts[i]++
			}
		}
	}

	total := n
	if total == 0 {
		total = 1
	}

	shares := make([]model.TopicShare, 0, len(e.cfg.Topics))
	countByName := make(map[string]int, len(e.cfg.Topics))
	for i, topic := range e.cfg.Topics {
		countByName[topic.Name] = counts[i]
		if counts[i] > 0 {
			shares = append(shares, model.TopicShare{
				Name:  topic.Name,
				Share: utils.Round2(float64(counts[i]) / float64(total)),
			})
		}
	}
	sort.SliceStable(shares, func(i, j int) bool {
		return countByName[shares[i].Name] > countByName[shares[j].Name]
	})
	if len(shares) > 5 {
		shares = shares[:5]
	}
	return shares
}
