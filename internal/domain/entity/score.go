package entity

// HealthScore is the 0-100 financial health score, always a multiple of 25.
type HealthScore int

// Normalized returns the score in the 0-1 range, used by progress indicators.
func (s HealthScore) Normalized() float64 {
	return float64(s) / 100
}

// RiskTier classifies a health score.
type RiskTier int

const (
	RiskLow RiskTier = iota
	RiskModerate
	RiskHigh
)

// String returns the label used in reports and dashboards.
func (t RiskTier) String() string {
	switch t {
	case RiskLow:
		return "Low Risk"
	case RiskModerate:
		return "Moderate Risk"
	case RiskHigh:
		return "High Risk"
	default:
		return "Unknown Risk"
	}
}

// MarshalText encodes the tier as its label.
func (t RiskTier) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// Penalty is a scoring rule that was triggered during evaluation.
type Penalty struct {
	Rule   string `json:"rule"`
	Points int    `json:"points"`
}
