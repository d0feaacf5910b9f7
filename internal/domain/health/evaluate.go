package health

import "github.com/diillson/sme-health-dashboard-go/internal/domain/entity"

// Evaluate runs the whole engine over one record set. The console dashboard
// and the web dashboard both go through here.
func Evaluate(records []entity.MonthlyRecord) (entity.Assessment, error) {
	agg, err := ComputeAggregates(records)
	if err != nil {
		return entity.Assessment{}, err
	}

	ratios, err := ComputeRatios(agg)
	if err != nil {
		return entity.Assessment{}, err
	}

	score := ComputeScore(ratios.ProfitMargin, ratios.ExpenseRatio, ratios.DebtRatio, agg.AvgCash)
	risk := ClassifyRisk(score)

	return entity.Assessment{
		Months:     len(records),
		Aggregates: agg,
		Ratios:     ratios,
		Score:      score,
		Risk:       risk,
		Penalties:  ScoreBreakdown(ratios.ProfitMargin, ratios.ExpenseRatio, ratios.DebtRatio, agg.AvgCash),
		Anomalies:  DetectAnomalies(records),
		Forecast:   ForecastNextRevenue(records),
		Report:     GenerateReport(score, ratios, risk),
	}, nil
}
