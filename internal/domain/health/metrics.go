// Package health implements the metrics, scoring, anomaly, forecast and
// report engine of the SME financial health dashboard. Every function is a
// pure transformation of the record set it receives.
package health

import (
	"github.com/diillson/sme-health-dashboard-go/internal/domain/entity"
	"github.com/diillson/sme-health-dashboard-go/internal/shared/types"
)

// ComputeAggregates reduces the record set into totals and the average cash balance.
func ComputeAggregates(records []entity.MonthlyRecord) (entity.Aggregates, error) {
	if len(records) == 0 {
		return entity.Aggregates{}, types.ErrEmptyRecordSet
	}

	var agg entity.Aggregates
	var cash float64
	for _, r := range records {
		agg.TotalRevenue += r.Revenue
		agg.TotalExpenses += r.Expenses
		agg.TotalLoans += r.LoanPayment
		cash += r.CashInBank
	}

	agg.TotalProfit = agg.TotalRevenue - agg.TotalExpenses
	agg.AvgCash = cash / float64(len(records))

	return agg, nil
}

// ComputeRatios derives the percentage ratios from the aggregates. It fails
// with ErrZeroRevenue instead of producing NaN or Inf.
func ComputeRatios(agg entity.Aggregates) (entity.Ratios, error) {
	if agg.TotalRevenue == 0 {
		return entity.Ratios{}, types.ErrZeroRevenue
	}

	return entity.Ratios{
		ProfitMargin: agg.TotalProfit / agg.TotalRevenue * 100,
		ExpenseRatio: agg.TotalExpenses / agg.TotalRevenue * 100,
		DebtRatio:    agg.TotalLoans / agg.TotalRevenue * 100,
	}, nil
}
