package soil

import (
	"time"
)

// Metric names one of the four tracked soil measurements.
type Metric string

const (
	MetricMoisture    Metric = "moisture"
	MetricPH          Metric = "ph"
	MetricTemperature Metric = "temperature"
	MetricNutrients   Metric = "nutrients"
)

// Metrics lists every metric in display order.
var Metrics = []Metric{MetricMoisture, MetricPH, MetricTemperature, MetricNutrients}

// Reading is a single snapshot of the four soil metrics.
type Reading struct {
	Moisture    float64 `json:"moisture" validate:"gte=0,lte=100"`
	PH          float64 `json:"ph" validate:"gte=0,lte=14"`
	Temperature float64 `json:"temperature" validate:"gte=-50,lte=80"`
	Nutrients   float64 `json:"nutrients" validate:"gte=0,lte=100"`
}

// Value returns the reading's value for m.
func (r Reading) Value(m Metric) float64 {
	switch m {
	case MetricMoisture:
		return r.Moisture
	case MetricPH:
		return r.PH
	case MetricTemperature:
		return r.Temperature
	case MetricNutrients:
		return r.Nutrients
	default:
		return 0
	}
}

// Sample is one dated reading in a series. Series are ordered by Date ascending.
type Sample struct {
	Date time.Time `json:"date"` // always UTC
	Reading
}

// Values extracts the values of a single metric from a series, preserving order.
func Values(series []Sample, m Metric) []float64 {
	out := make([]float64, len(series))
	for i, s := range series {
		out[i] = s.Value(m)
	}
	return out
}

// TrendKind classifies the recent direction of a metric.
type TrendKind string

const (
	TrendImproving TrendKind = "improving"
	TrendStable    TrendKind = "stable"
	TrendDeclining TrendKind = "declining"
)

// Trend compares the mean of the later half of a series with the earlier half.
type Trend struct {
	Kind       TrendKind `json:"type"`
	Delta      float64   `json:"value"`
	Percentage float64   `json:"percentage"`
}

// Trends holds one Trend per metric.
type Trends struct {
	Moisture    Trend `json:"moisture"`
	PH          Trend `json:"ph"`
	Temperature Trend `json:"temperature"`
	Nutrients   Trend `json:"nutrients"`
}

// AlertKind identifies which threshold an alert was raised for.
type AlertKind string

const (
	AlertLowMoisture  AlertKind = "lowMoisture"
	AlertPHImbalance  AlertKind = "phImbalance"
	AlertTempExtreme  AlertKind = "tempExtreme"
	AlertLowNutrients AlertKind = "lowNutrients"
)

// Severity of an alert.
type Severity string

const (
	SeverityLow    Severity = "low"
	SeverityMedium Severity = "medium"
	SeverityHigh   Severity = "high"
)

// Alert is a threshold-triggered notice about the current reading.
// ID is stable per kind so re-evaluations replace rather than accumulate.
type Alert struct {
	ID                string    `json:"id"`
	Kind              AlertKind `json:"type"`
	Severity          Severity  `json:"severity"`
	Title             string    `json:"title"`
	Message           string    `json:"message"`
	RecommendedAction string    `json:"action"`
	Timestamp         time.Time `json:"timestamp"`
	Acknowledged      bool      `json:"isRead"`
}

// Summary holds per-metric averages over a report window.
type Summary struct {
	AverageMoisture    float64 `json:"averageMoisture"`
	AveragePH          float64 `json:"averagePh"`
	AverageTemperature float64 `json:"averageTemperature"`
	AverageNutrients   float64 `json:"averageNutrients"`
}

// WeeklyReport summarises the last seven days of a series.
type WeeklyReport struct {
	ID              string    `json:"id"`
	PeriodStart     time.Time `json:"weekStart"`
	PeriodEnd       time.Time `json:"weekEnd"`
	Summary         Summary   `json:"summary"`
	Trends          Trends    `json:"trends"`
	Achievements    []string  `json:"achievements"`
	Recommendations []string  `json:"recommendations"`
	UpcomingTasks   []string  `json:"upcomingTasks"`
}
