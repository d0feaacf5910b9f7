package health

import "github.com/diillson/sme-health-dashboard-go/internal/domain/entity"

// MinForecastRecords is the history needed for one growth rate.
const MinForecastRecords = 2

// ForecastNextRevenue projects next month's revenue from the mean
// month-over-month growth rate. Periods following a zero-revenue month have
// no defined growth rate and are skipped.
func ForecastNextRevenue(records []entity.MonthlyRecord) entity.Forecast {
	if len(records) < MinForecastRecords {
		return entity.Forecast{}
	}

	var sum float64
	periods := 0
	for i := 1; i < len(records); i++ {
		prev := records[i-1].Revenue
		if prev == 0 {
			continue
		}
		sum += (records[i].Revenue - prev) / prev
		periods++
	}

	if periods == 0 {
		return entity.Forecast{}
	}

	avgGrowth := sum / float64(periods)
	last := records[len(records)-1].Revenue

	return entity.Forecast{
		Available: true,
		Value:     last * (1 + avgGrowth),
		AvgGrowth: avgGrowth,
		Periods:   periods,
	}
}
