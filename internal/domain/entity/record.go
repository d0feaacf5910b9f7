package entity

// MonthlyRecord represents one month of the business' financial data.
type MonthlyRecord struct {
	Month       string  `json:"month"`
	Revenue     float64 `json:"revenue"`
	Expenses    float64 `json:"expenses"`
	LoanPayment float64 `json:"loan_payment"`
	CashInBank  float64 `json:"cash_in_bank"`
}

// Profit returns revenue minus expenses for the month.
func (r MonthlyRecord) Profit() float64 {
	return r.Revenue - r.Expenses
}
