package soil

import (
	"time"
)

// alertSpec is the fixed presentation and threshold data for one alert kind.
type alertSpec struct {
	id      string
	kind    AlertKind
	title   string
	message string
	action  string
	age     time.Duration // display offset from evaluation time

	fires func(Reading) bool
	high  func(Reading) bool
	// otherwise is the severity when fires but not high.
	otherwise Severity
	// acked reports whether a fired alert starts out acknowledged.
	acked func(Reading) bool
}

// alertTable is evaluated in order; at most one alert per entry.
var alertTable = []alertSpec{
	{
		id:        "alert-moisture",
		kind:      AlertLowMoisture,
		title:     "Low Moisture Alert",
		message:   "Soil moisture is below optimal levels",
		action:    "Water Garden",
		age:       time.Hour,
		fires:     func(r Reading) bool { return r.Moisture < 50 },
		high:      func(r Reading) bool { return r.Moisture < 30 },
		otherwise: SeverityMedium,
	},
	{
		id:        "alert-ph",
		kind:      AlertPHImbalance,
		title:     "pH Imbalance",
		message:   "Soil pH is outside optimal range",
		action:    "Adjust pH",
		age:       3 * time.Hour,
		fires:     func(r Reading) bool { return r.PH < 6.0 || r.PH > 7.5 },
		high:      func(r Reading) bool { return r.PH < 5.5 || r.PH > 8.0 },
		otherwise: SeverityMedium,
	},
	{
		id:        "alert-temp",
		kind:      AlertTempExtreme,
		title:     "Temperature Alert",
		message:   "Soil temperature is outside optimal range",
		action:    "Monitor Temperature",
		age:       30 * time.Minute,
		fires:     func(r Reading) bool { return r.Temperature < 15 || r.Temperature > 30 },
		high:      func(r Reading) bool { return r.Temperature < 10 || r.Temperature > 35 },
		otherwise: SeverityMedium,
	},
	{
		id:        "alert-nutrients",
		kind:      AlertLowNutrients,
		title:     "Low Nutrients",
		message:   "Nutrient levels are below recommended values",
		action:    "Apply Fertilizer",
		age:       6 * time.Hour,
		fires:     func(r Reading) bool { return r.Nutrients < 60 },
		high:      func(r Reading) bool { return r.Nutrients < 40 },
		otherwise: SeverityLow,
		// Mild nutrient shortfalls are raised as soft alerts.
		acked: func(r Reading) bool { return r.Nutrients > 50 },
	},
}

// Evaluate checks a reading against the alert thresholds, using the wall clock
// for alert timestamps. A nominal reading yields an empty slice.
func Evaluate(r Reading) []Alert {
	return EvaluateAt(r, time.Now().UTC())
}

// EvaluateAt is Evaluate with an explicit evaluation time.
func EvaluateAt(r Reading, now time.Time) []Alert {
	alerts := []Alert{}
	for _, spec := range alertTable {
		if !spec.fires(r) {
			continue
		}

		severity := spec.otherwise
		if spec.high(r) {
			severity = SeverityHigh
		}

		alerts = append(alerts, Alert{
			ID:                spec.id,
			Kind:              spec.kind,
			Severity:          severity,
			Title:             spec.title,
			Message:           spec.message,
			RecommendedAction: spec.action,
			Timestamp:         now.Add(-spec.age),
			Acknowledged:      spec.acked != nil && spec.acked(r),
		})
	}
	return alerts
}

// IsAlertID reports whether id is one of the stable alert ids.
func IsAlertID(id string) bool {
	for _, spec := range alertTable {
		if spec.id == id {
			return true
		}
	}
	return false
}
