package soil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluateNominal(t *testing.T) {
	alerts := Evaluate(Reading{Moisture: 65, PH: 6.8, Temperature: 22, Nutrients: 75})
	assert.Empty(t, alerts)
	assert.NotNil(t, alerts)
}

func TestEvaluateLowMoisture(t *testing.T) {
	alerts := Evaluate(Reading{Moisture: 25, PH: 6.8, Temperature: 22, Nutrients: 75})
	require.Len(t, alerts, 1)
	assert.Equal(t, AlertLowMoisture, alerts[0].Kind)
	assert.Equal(t, SeverityHigh, alerts[0].Severity)
	assert.Equal(t, "alert-moisture", alerts[0].ID)
	assert.Equal(t, "Water Garden", alerts[0].RecommendedAction)
	assert.False(t, alerts[0].Acknowledged)
}

func TestEvaluateSoftNutrientAlert(t *testing.T) {
	alerts := Evaluate(Reading{Moisture: 65, PH: 6.8, Temperature: 22, Nutrients: 55})
	require.Len(t, alerts, 1)
	assert.Equal(t, AlertLowNutrients, alerts[0].Kind)
	assert.Equal(t, SeverityLow, alerts[0].Severity)
	assert.True(t, alerts[0].Acknowledged)
}

func TestEvaluateSeverities(t *testing.T) {
	tests := []struct {
		name     string
		reading  Reading
		kind     AlertKind
		severity Severity
		acked    bool
	}{
		{"moisture medium", Reading{Moisture: 45, PH: 6.8, Temperature: 22, Nutrients: 75}, AlertLowMoisture, SeverityMedium, false},
		{"ph low medium", Reading{Moisture: 65, PH: 5.8, Temperature: 22, Nutrients: 75}, AlertPHImbalance, SeverityMedium, false},
		{"ph high medium", Reading{Moisture: 65, PH: 7.8, Temperature: 22, Nutrients: 75}, AlertPHImbalance, SeverityMedium, false},
		{"ph low high", Reading{Moisture: 65, PH: 5.4, Temperature: 22, Nutrients: 75}, AlertPHImbalance, SeverityHigh, false},
		{"ph high high", Reading{Moisture: 65, PH: 8.1, Temperature: 22, Nutrients: 75}, AlertPHImbalance, SeverityHigh, false},
		{"cold medium", Reading{Moisture: 65, PH: 6.8, Temperature: 12, Nutrients: 75}, AlertTempExtreme, SeverityMedium, false},
		{"hot medium", Reading{Moisture: 65, PH: 6.8, Temperature: 32, Nutrients: 75}, AlertTempExtreme, SeverityMedium, false},
		{"freezing high", Reading{Moisture: 65, PH: 6.8, Temperature: 8, Nutrients: 75}, AlertTempExtreme, SeverityHigh, false},
		{"scorching high", Reading{Moisture: 65, PH: 6.8, Temperature: 36, Nutrients: 75}, AlertTempExtreme, SeverityHigh, false},
		{"nutrients low unacked", Reading{Moisture: 65, PH: 6.8, Temperature: 22, Nutrients: 45}, AlertLowNutrients, SeverityLow, false},
		{"nutrients at soft edge", Reading{Moisture: 65, PH: 6.8, Temperature: 22, Nutrients: 50}, AlertLowNutrients, SeverityLow, false},
		{"nutrients high", Reading{Moisture: 65, PH: 6.8, Temperature: 22, Nutrients: 35}, AlertLowNutrients, SeverityHigh, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			alerts := Evaluate(tt.reading)
			require.Len(t, alerts, 1)
			assert.Equal(t, tt.kind, alerts[0].Kind)
			assert.Equal(t, tt.severity, alerts[0].Severity)
			assert.Equal(t, tt.acked, alerts[0].Acknowledged)
		})
	}
}

func TestEvaluateThresholdEdgesDoNotFire(t *testing.T) {
	assert.Empty(t, Evaluate(Reading{Moisture: 50, PH: 6.0, Temperature: 15, Nutrients: 60}))
	assert.Empty(t, Evaluate(Reading{Moisture: 50, PH: 7.5, Temperature: 30, Nutrients: 60}))
}

func TestEvaluateAllFireInOrder(t *testing.T) {
	now := time.Date(2024, time.June, 15, 12, 0, 0, 0, time.UTC)
	alerts := EvaluateAt(Reading{Moisture: 10, PH: 9, Temperature: 40, Nutrients: 20}, now)
	require.Len(t, alerts, 4)

	kinds := []AlertKind{AlertLowMoisture, AlertPHImbalance, AlertTempExtreme, AlertLowNutrients}
	ages := []time.Duration{time.Hour, 3 * time.Hour, 30 * time.Minute, 6 * time.Hour}
	for i, a := range alerts {
		assert.Equal(t, kinds[i], a.Kind)
		assert.Equal(t, SeverityHigh, a.Severity)
		assert.Equal(t, now.Add(-ages[i]), a.Timestamp)
		assert.True(t, IsAlertID(a.ID))
	}
	assert.False(t, IsAlertID("alert-unknown"))
}
