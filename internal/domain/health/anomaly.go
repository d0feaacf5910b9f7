package health

import (
	"math"

	"github.com/diillson/sme-health-dashboard-go/internal/domain/entity"
)

// DetectAnomalies returns, in input order, the months whose expenses are
// strictly above mean + one population standard deviation. With fewer than
// two records the result is empty.
func DetectAnomalies(records []entity.MonthlyRecord) []entity.MonthlyRecord {
	anomalies := []entity.MonthlyRecord{}
	if len(records) < 2 {
		return anomalies
	}

	expenses := make([]float64, len(records))
	for i, r := range records {
		expenses[i] = r.Expenses
	}
	mean, stdDev := meanStdDev(expenses)
	threshold := mean + stdDev

	for _, r := range records {
		if r.Expenses > threshold {
			anomalies = append(anomalies, r)
		}
	}
	return anomalies
}

// meanStdDev computes the mean and the population standard deviation.
func meanStdDev(values []float64) (float64, float64) {
	var sum float64
	for _, v := range values {
		sum += v
	}
	mean := sum / float64(len(values))

	var sq float64
	for _, v := range values {
		d := v - mean
		sq += d * d
	}
	return mean, math.Sqrt(sq / float64(len(values)))
}
