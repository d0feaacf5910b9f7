package health

import (
	"testing"

	"github.com/diillson/sme-health-dashboard-go/internal/domain/entity"
	"github.com/stretchr/testify/assert"
)

func TestComputeScore_Rules(t *testing.T) {
	tests := []struct {
		name    string
		pm      float64
		er      float64
		dr      float64
		avgCash float64
		want    entity.HealthScore
	}{
		{"no penalties", 50, 50, 0, 60000, 100},
		{"low profitability", 9.99, 50, 0, 60000, 75},
		{"margin exactly at threshold", 10, 50, 0, 60000, 100},
		{"high cost burden", 50, 80.01, 0, 60000, 75},
		{"expense ratio exactly at threshold", 50, 80, 0, 60000, 100},
		{"high leverage", 50, 50, 20.5, 60000, 75},
		{"debt ratio exactly at threshold", 50, 50, 20, 60000, 100},
		{"low liquidity", 50, 50, 0, 49999.99, 75},
		{"cash exactly at threshold", 50, 50, 0, 50000, 100},
		{"two penalties", 5, 90, 0, 60000, 50},
		{"all penalties", -20, 120, 40, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ComputeScore(tt.pm, tt.er, tt.dr, tt.avgCash))
		})
	}
}

func TestComputeScore_AlwaysMultipleOf25InRange(t *testing.T) {
	values := []float64{-1e9, -50, 0, 9.99, 10, 10.01, 20, 20.01, 75, 80, 80.01, 100, 49999, 50000, 1e9}

	for _, pm := range values {
		for _, er := range values {
			for _, dr := range values {
				for _, cash := range values {
					score := ComputeScore(pm, er, dr, cash)
					assert.GreaterOrEqual(t, int(score), 0)
					assert.LessOrEqual(t, int(score), 100)
					assert.Zero(t, int(score)%25)
				}
			}
		}
	}
}

func TestScoreBreakdown_DeclarationOrder(t *testing.T) {
	penalties := ScoreBreakdown(5, 90, 30, 1000)

	assert.Equal(t, []entity.Penalty{
		{Rule: "low_profitability", Points: 25},
		{Rule: "high_cost_burden", Points: 25},
		{Rule: "high_leverage", Points: 25},
		{Rule: "low_liquidity", Points: 25},
	}, penalties)

	assert.Empty(t, ScoreBreakdown(50, 50, 0, 60000))
	assert.NotNil(t, ScoreBreakdown(50, 50, 0, 60000))
}

func TestClassifyRisk(t *testing.T) {
	assert.Equal(t, entity.RiskLow, ClassifyRisk(100))
	assert.Equal(t, entity.RiskLow, ClassifyRisk(75))
	assert.Equal(t, entity.RiskModerate, ClassifyRisk(74))
	assert.Equal(t, entity.RiskModerate, ClassifyRisk(50))
	assert.Equal(t, entity.RiskHigh, ClassifyRisk(49))
	assert.Equal(t, entity.RiskHigh, ClassifyRisk(25))
	assert.Equal(t, entity.RiskHigh, ClassifyRisk(0))
}

func TestClassifyRisk_Monotonic(t *testing.T) {
	prev := ClassifyRisk(0)
	for s := 1; s <= 100; s++ {
		tier := ClassifyRisk(entity.HealthScore(s))
		// RiskLow < RiskModerate < RiskHigh: um score maior nunca aumenta o risco.
		assert.LessOrEqual(t, int(tier), int(prev), "score %d", s)
		prev = tier
	}
}

func TestRiskTier_String(t *testing.T) {
	assert.Equal(t, "Low Risk", entity.RiskLow.String())
	assert.Equal(t, "Moderate Risk", entity.RiskModerate.String())
	assert.Equal(t, "High Risk", entity.RiskHigh.String())
}
