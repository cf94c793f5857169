package attrition

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pulse-insights/internal/model"
)

func testModel() model.AttritionModel {
	return model.AttritionModel{
		Intercept: -2.0,
		Features: map[string]float64{
			"overtime_hours": 0.1,
			"pulse_avg":      -0.5,
			"manager_moves":  0.4,
		},
	}
}

func TestScorer(t *testing.T) {
	now := time.Date(2026, 8, 29, 10, 0, 0, 0, time.UTC)

	t.Run("sigmoid of intercept alone for an all-zero row", func(t *testing.T) {
		s := NewScorer(testModel(), []model.FeatureRow{
			{TeamID: "T1", EmpHash: "a", Values: map[string]float64{}},
		})
		report := s.Rank("T1", 10, now)
		require.Len(t, report.Members, 1)
		// sigmoid(-2.0) = 0.1192..., rounded
		assert.Equal(t, 0.12, report.Members[0].Risk)
		assert.Empty(t, report.Members[0].Reasons)
	})

	t.Run("reasons rank by absolute impact, top three only", func(t *testing.T) {
		m := testModel()
		m.Features["extra"] = 0.01
		s := NewScorer(m, []model.FeatureRow{
			{TeamID: "T1", EmpHash: "a", Values: map[string]float64{
				"overtime_hours": 30, // +3.0
				"pulse_avg":      2,  // -1.0
				"manager_moves":  1,  // +0.4
				"extra":          1,  // +0.01, pushed out of top 3
			}},
		})
		report := s.Rank("T1", 10, now)
		require.Len(t, report.Members, 1)
		reasons := report.Members[0].Reasons
		require.Len(t, reasons, 3)
		assert.Equal(t, model.RiskReason{Feature: "overtime_hours", Impact: 3.0}, reasons[0])
		assert.Equal(t, model.RiskReason{Feature: "pulse_avg", Impact: -1.0}, reasons[1])
		assert.Equal(t, model.RiskReason{Feature: "manager_moves", Impact: 0.4}, reasons[2])
	})

	t.Run("members sort by risk descending and truncate to top_k", func(t *testing.T) {
		rows := []model.FeatureRow{
			{TeamID: "T1", EmpHash: "low", Values: map[string]float64{"pulse_avg": 5}},
			{TeamID: "T1", EmpHash: "high", Values: map[string]float64{"overtime_hours": 40}},
			{TeamID: "T1", EmpHash: "mid", Values: map[string]float64{"overtime_hours": 10}},
			{TeamID: "OTHER", EmpHash: "skip", Values: map[string]float64{"overtime_hours": 99}},
		}
		s := NewScorer(testModel(), rows)

		report := s.Rank("T1", 2, now)
		require.Len(t, report.Members, 2)
		assert.Equal(t, "high", report.Members[0].EmpHash)
		assert.Equal(t, "mid", report.Members[1].EmpHash)
		assert.Equal(t, "T1", report.TeamID)
		assert.Equal(t, "2026-08-29", report.AsOf)
	})

	t.Run("non-positive top_k falls back to 10", func(t *testing.T) {
		rows := make([]model.FeatureRow, 12)
		for i := range rows {
			rows[i] = model.FeatureRow{TeamID: "T1", EmpHash: string(rune('a' + i))}
		}
		report := NewScorer(testModel(), rows).Rank("T1", 0, now)
		assert.Len(t, report.Members, 10)
	})

	t.Run("scoring twice is identical", func(t *testing.T) {
		rows := []model.FeatureRow{
			{TeamID: "T1", EmpHash: "a", Values: map[string]float64{"overtime_hours": 5, "pulse_avg": 1}},
		}
		s := NewScorer(testModel(), rows)
		assert.Equal(t, s.Rank("T1", 10, now), s.Rank("T1", 10, now))
	})
}
