package pulse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluateAlert(t *testing.T) {
	t.Run("dip on downward trend above threshold", func(t *testing.T) {
		alert := EvaluateAlert([]float64{4.5, 4.0}, 0.35)
		require.NotNil(t, alert)
		assert.Equal(t, "dip", alert.Type)
		assert.Equal(t, "high", alert.Severity)
		assert.Equal(t, "2-week downward trend with negative-sentiment rate above 30%", alert.Reason)
	})

	t.Run("non-decreasing trend never alerts", func(t *testing.T) {
		assert.Nil(t, EvaluateAlert([]float64{4.5, 4.5}, 0.50))
		assert.Nil(t, EvaluateAlert([]float64{4.0, 4.5}, 0.50))
	})

	t.Run("threshold is strictly greater than 0.30", func(t *testing.T) {
		assert.Nil(t, EvaluateAlert([]float64{4.5, 4.0}, 0.30))
		assert.NotNil(t, EvaluateAlert([]float64{4.5, 4.0}, 0.31))
	})

	t.Run("fewer than two buckets skips the comparison", func(t *testing.T) {
		assert.Nil(t, EvaluateAlert([]float64{2.0}, 0.90))
		assert.Nil(t, EvaluateAlert(nil, 0.90))
	})

	t.Run("only the two newest buckets matter", func(t *testing.T) {
		// Earlier dip, but the latest pair recovers.
		assert.Nil(t, EvaluateAlert([]float64{4.5, 2.0, 3.0}, 0.50))
		assert.NotNil(t, EvaluateAlert([]float64{2.0, 4.5, 3.0}, 0.50))
	})
}
