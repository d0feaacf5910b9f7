package health

import "github.com/diillson/sme-health-dashboard-go/internal/domain/entity"

// Scoring thresholds. These are not the report thresholds in report.go.
const (
	MaxScore             = 100
	PenaltyPoints        = 25
	MinProfitMargin      = 10.0    // percent
	MaxExpenseRatio      = 80.0    // percent
	MaxDebtRatio         = 20.0    // percent
	MinAverageCash       = 50000.0 // currency units
	LowRiskMinScore      = 75
	ModerateRiskMinScore = 50
)

type scoreInput struct {
	profitMargin float64
	expenseRatio float64
	debtRatio    float64
	avgCash      float64
}

type scoringRule struct {
	name      string
	triggered func(in scoreInput) bool
}

// Regras avaliadas de forma independente, na ordem de declaração.
var scoringRules = []scoringRule{
	{name: "low_profitability", triggered: func(in scoreInput) bool { return in.profitMargin < MinProfitMargin }},
	{name: "high_cost_burden", triggered: func(in scoreInput) bool { return in.expenseRatio > MaxExpenseRatio }},
	{name: "high_leverage", triggered: func(in scoreInput) bool { return in.debtRatio > MaxDebtRatio }},
	{name: "low_liquidity", triggered: func(in scoreInput) bool { return in.avgCash < MinAverageCash }},
}

// ScoreBreakdown returns the penalties triggered by the given inputs.
func ScoreBreakdown(pm, er, dr, avgCash float64) []entity.Penalty {
	in := scoreInput{profitMargin: pm, expenseRatio: er, debtRatio: dr, avgCash: avgCash}

	penalties := []entity.Penalty{}
	for _, rule := range scoringRules {
		if rule.triggered(in) {
			penalties = append(penalties, entity.Penalty{Rule: rule.name, Points: PenaltyPoints})
		}
	}
	return penalties
}

// ComputeScore starts at 100 and subtracts 25 for every triggered rule.
func ComputeScore(pm, er, dr, avgCash float64) entity.HealthScore {
	score := MaxScore
	for _, p := range ScoreBreakdown(pm, er, dr, avgCash) {
		score -= p.Points
	}
	if score < 0 {
		score = 0
	}
	return entity.HealthScore(score)
}

// ClassifyRisk maps a score to its risk tier. Lower bounds are inclusive.
func ClassifyRisk(score entity.HealthScore) entity.RiskTier {
	switch {
	case score >= LowRiskMinScore:
		return entity.RiskLow
	case score >= ModerateRiskMinScore:
		return entity.RiskModerate
	default:
		return entity.RiskHigh
	}
}
