package entity

// Forecast is the one-step revenue projection. Available is false when the
// record set does not hold enough history to compute a growth rate.
type Forecast struct {
	Available bool    `json:"available"`
	Value     float64 `json:"value,omitempty"`
	AvgGrowth float64 `json:"avg_growth,omitempty"`
	Periods   int     `json:"periods"`
}

// Assessment is the full result of evaluating one record set.
type Assessment struct {
	Months     int             `json:"months"`
	Aggregates Aggregates      `json:"aggregates"`
	Ratios     Ratios          `json:"ratios"`
	Score      HealthScore     `json:"score"`
	Risk       RiskTier        `json:"risk"`
	Penalties  []Penalty       `json:"penalties"`
	Anomalies  []MonthlyRecord `json:"anomalies"`
	Forecast   Forecast        `json:"forecast"`
	Report     Report          `json:"report"`
}
