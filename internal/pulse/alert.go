package pulse

import "pulse-insights/internal/model"

// ------------------- Alert Rule -------------------

const negRateAlertThreshold = 0.30

// EvaluateAlert emits at most one alert per report: a "dip" when the negative
// rate is above 30% and the two most recent trend buckets point downward.
// Fewer than two populated buckets means no trend comparison, not an error.
// The rule is stateless across requests; there is no alert history or
// suppression window.
func EvaluateAlert(trend []float64, negRate float64) *model.Alert {
	if negRate <= negRateAlertThreshold {
		return nil
	}
	if len(trend) < 2 {
		return nil
	}
	last, prev := trend[len(trend)-1], trend[len(trend)-2]
	if last >= prev {
		return nil
	}
	return &model.Alert{
		Type:     "dip",
		Severity: "high",
		Reason:   "2-week downward trend with negative-sentiment rate above 30%",
	}
}
