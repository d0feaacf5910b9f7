package entity

// Aggregates contains the totals computed over a whole record set.
type Aggregates struct {
	TotalRevenue  float64 `json:"total_revenue"`
	TotalExpenses float64 `json:"total_expenses"`
	TotalProfit   float64 `json:"total_profit"`
	TotalLoans    float64 `json:"total_loans"`
	AvgCash       float64 `json:"avg_cash"`
}

// Ratios contains the percentage ratios derived from the aggregates.
type Ratios struct {
	ProfitMargin float64 `json:"profit_margin"`
	ExpenseRatio float64 `json:"expense_ratio"`
	DebtRatio    float64 `json:"debt_ratio"`
}
