package soil

import (
	"math/rand/v2"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedNow() time.Time {
	return time.Date(2024, time.June, 15, 12, 0, 0, 0, time.UTC)
}

func TestGenerateLengthAndOrder(t *testing.T) {
	g := Generator{Rand: rand.New(rand.NewPCG(1, 2)), Now: fixedNow}

	series := g.Generate(90)
	require.Len(t, series, 90)

	today := time.Date(2024, time.June, 15, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, today, series[len(series)-1].Date)
	assert.Equal(t, today.AddDate(0, 0, -89), series[0].Date)

	for i := 1; i < len(series); i++ {
		assert.Equal(t, series[i-1].Date.AddDate(0, 0, 1), series[i].Date, "day %d", i)
	}
}

func TestGenerateStaysWithinBounds(t *testing.T) {
	for seed := uint64(0); seed < 20; seed++ {
		g := Generator{Rand: rand.New(rand.NewPCG(seed, seed+1)), Now: fixedNow}
		for _, s := range g.Generate(365) {
			for _, m := range Metrics {
				b := walks[m].bounds
				v := s.Value(m)
				assert.GreaterOrEqual(t, v, b.min, "%s on %s", m, s.Date)
				assert.LessOrEqual(t, v, b.max, "%s on %s", m, s.Date)
				assert.InDelta(t, round1(v), v, 1e-9, "%s not rounded", m)
			}
		}
	}
}

func TestGenerateNonPositiveDays(t *testing.T) {
	assert.Empty(t, Generate(0))
	assert.Empty(t, Generate(-3))
	assert.NotNil(t, Generate(0))
}

func TestGenerateDefaultGenerator(t *testing.T) {
	series := Generate(7)
	require.Len(t, series, 7)
	assert.Equal(t, truncateDay(time.Now()), series[6].Date)
}

func TestSeasonalFactor(t *testing.T) {
	// Day 365 of a non-leap year completes the cycle.
	assert.InDelta(t, 0, SeasonalFactor(time.Date(2023, time.December, 31, 0, 0, 0, 0, time.UTC)), 1e-9)
	// Around day 91 the factor peaks.
	assert.InDelta(t, 1, SeasonalFactor(time.Date(2023, time.April, 1, 0, 0, 0, 0, time.UTC)), 0.01)
}

func TestStepMovesOppositeSeasonalPhase(t *testing.T) {
	// Same random draws on two dates: only the seasonal term differs.
	warm := time.Date(2023, time.April, 1, 0, 0, 0, 0, time.UTC)
	cold := time.Date(2023, time.October, 1, 0, 0, 0, 0, time.UTC)

	a := Generator{Rand: rand.New(rand.NewPCG(7, 7))}.Step(Baseline, warm)
	b := Generator{Rand: rand.New(rand.NewPCG(7, 7))}.Step(Baseline, cold)

	assert.Greater(t, a.Temperature, b.Temperature)
	assert.Less(t, a.Moisture, b.Moisture)
	assert.Equal(t, a.PH, b.PH)
	assert.Equal(t, a.Nutrients, b.Nutrients)
}
