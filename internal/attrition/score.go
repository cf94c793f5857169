package attrition

import (
	"math"
	"sort"
	"time"

	"pulse-insights/internal/model"
	"pulse-insights/pkg/utils"
)

// Scorer applies a fixed linear (logistic) model to a static per-employee
// feature snapshot. No aggregation, no state: every call scores fresh.
type Scorer struct {
	model    model.AttritionModel
	features []model.FeatureRow
}

func NewScorer(m model.AttritionModel, features []model.FeatureRow) *Scorer {
	return &Scorer{model: m, features: features}
}

func sigmoid(z float64) float64 {
	return 1 / (1 + math.Exp(-z))
}

// scoreRow computes risk = sigmoid(intercept + Σ coef*x) and the per-feature
// impacts that explain it, strongest first. Missing features contribute 0.
func (s *Scorer) scoreRow(row model.FeatureRow) (float64, []model.RiskReason) {
	z := s.model.Intercept
	var reasons []model.RiskReason
	for feature, coef := range s.model.Features {
		x := row.Values[feature]
		z += coef * x
		if coef != 0 && x != 0 {
			reasons = append(reasons, model.RiskReason{
				Feature: feature,
				Impact:  utils.Round2(coef * x),
			})
		}
	}
	sort.Slice(reasons, func(i, j int) bool {
		ai, aj := math.Abs(reasons[i].Impact), math.Abs(reasons[j].Impact)
		if ai != aj {
			return ai > aj
		}
		// Map iteration order is random; pin equal impacts by name so
		// repeated scoring of the same snapshot is identical.
		return reasons[i].Feature < reasons[j].Feature
	})
	if len(reasons) > 3 {
		reasons = reasons[:3]
	}
	return utils.Round2(sigmoid(z)), reasons
}

// Rank scores every employee on the team and returns the topK highest-risk
// members with their explanatory reasons.
func (s *Scorer) Rank(teamID string, topK int, now time.Time) model.AttritionReport {
	if topK <= 0 {
		topK = 10
	}

	members := make([]model.RiskMember, 0, len(s.features))
	for _, row := range s.features {
		if row.TeamID != teamID {
			continue
		}
		risk, reasons := s.scoreRow(row)
		members = append(members, model.RiskMember{
			EmpHash: row.EmpHash,
			Risk:    risk,
			Reasons: reasons,
		})
	}
	sort.SliceStable(members, func(i, j int) bool {
		return members[i].Risk > members[j].Risk
	})
	if len(members) > topK {
		members = members[:topK]
	}

	return model.AttritionReport{
		AsOf:    now.UTC().Format("2006-01-02"),
		TeamID:  teamID,
		Members: members,
	}
}
