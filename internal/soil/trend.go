package soil

import (
	"math"

	"github.com/montanaflynn/stats"
)

// stableBand is the absolute percentage change under which a trend counts as stable.
const stableBand = 2.0

// Analyze classifies the direction of a single metric's series by comparing
// the mean of its second half with the mean of its first half. The first
// half gets the smaller share on odd lengths.
func Analyze(values []float64) Trend {
	if len(values) < 2 {
		return Trend{Kind: TrendStable}
	}

	mid := len(values) / 2
	firstMean, _ := stats.Mean(values[:mid])
	secondMean, _ := stats.Mean(values[mid:])

	delta := secondMean - firstMean
	if firstMean == 0 {
		return Trend{Kind: TrendStable, Delta: delta}
	}

	pct := delta / firstMean * 100

	kind := TrendStable
	switch {
	case math.Abs(pct) < stableBand:
	case pct > 0:
		kind = TrendImproving
	default:
		kind = TrendDeclining
	}

	return Trend{Kind: kind, Delta: delta, Percentage: round1(pct)}
}

// AnalyzeSeries runs Analyze independently for every metric of series.
func AnalyzeSeries(series []Sample) Trends {
	return Trends{
		Moisture:    Analyze(Values(series, MetricMoisture)),
		PH:          Analyze(Values(series, MetricPH)),
		Temperature: Analyze(Values(series, MetricTemperature)),
		Nutrients:   Analyze(Values(series, MetricNutrients)),
	}
}
