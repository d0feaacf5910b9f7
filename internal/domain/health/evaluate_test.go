package health

import (
	"testing"

	"github.com/diillson/sme-health-dashboard-go/internal/domain/entity"
	"github.com/diillson/sme-health-dashboard-go/internal/shared/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluate_ScenarioA_HealthyBusiness(t *testing.T) {
	records := makeRecords(
		[]float64{100, 100, 100, 100},
		[]float64{50, 50, 50, 50},
		[]float64{0, 0, 0, 0},
		[]float64{60000, 60000, 60000, 60000},
	)

	a, err := Evaluate(records)
	require.NoError(t, err)

	assert.Equal(t, 4, a.Months)
	assert.Equal(t, 400.0, a.Aggregates.TotalRevenue)
	assert.Equal(t, 200.0, a.Aggregates.TotalProfit)
	assert.Equal(t, 60000.0, a.Aggregates.AvgCash)
	assert.InDelta(t, 50.0, a.Ratios.ProfitMargin, 1e-9)
	assert.InDelta(t, 50.0, a.Ratios.ExpenseRatio, 1e-9)
	assert.Equal(t, 0.0, a.Ratios.DebtRatio)
	assert.Empty(t, a.Penalties)
	assert.Equal(t, entity.HealthScore(100), a.Score)
	assert.Equal(t, entity.RiskLow, a.Risk)
	assert.Empty(t, a.Anomalies)
	assert.True(t, a.Forecast.Available)
	assert.InDelta(t, 100.0, a.Forecast.Value, 1e-9)
	assert.Contains(t, a.Report.English, "Business shows strong financial stability.")
}

func TestEvaluate_ScenarioB_StressedBusiness(t *testing.T) {
	records := makeRecords([]float64{100}, []float64{90}, []float64{30}, []float64{10000})

	a, err := Evaluate(records)
	require.NoError(t, err)

	assert.InDelta(t, 10.0, a.Ratios.ProfitMargin, 1e-9)
	assert.InDelta(t, 90.0, a.Ratios.ExpenseRatio, 1e-9)
	assert.InDelta(t, 30.0, a.Ratios.DebtRatio, 1e-9)
	assert.Equal(t, entity.HealthScore(25), a.Score)
	assert.Equal(t, entity.RiskHigh, a.Risk)
	assert.Equal(t, []entity.Penalty{
		{Rule: "high_cost_burden", Points: 25},
		{Rule: "high_leverage", Points: 25},
		{Rule: "low_liquidity", Points: 25},
	}, a.Penalties)
}

func TestEvaluate_ScenarioC_ZeroRevenue(t *testing.T) {
	records := makeRecords([]float64{0}, []float64{500}, []float64{10}, []float64{100})

	a, err := Evaluate(records)

	require.ErrorIs(t, err, types.ErrZeroRevenue)
	assert.Empty(t, a.Report.English)
	assert.Empty(t, a.Report.Tamil)
}

func TestEvaluate_ScenarioD_SingleRecord(t *testing.T) {
	records := makeRecords([]float64{100}, []float64{40}, []float64{0}, []float64{80000})

	a, err := Evaluate(records)
	require.NoError(t, err)

	assert.Empty(t, a.Anomalies)
	assert.False(t, a.Forecast.Available)
}

func TestEvaluate_EmptyRecordSet(t *testing.T) {
	_, err := Evaluate(nil)

	assert.ErrorIs(t, err, types.ErrEmptyRecordSet)
}
