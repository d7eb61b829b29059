package soil

import (
	"math"
	"math/rand/v2"
	"time"
)

// Baseline is the starting point of every synthetic series and the fallback
// average for an empty report window.
var Baseline = Reading{
	Moisture:    65,
	PH:          6.8,
	Temperature: 22,
	Nutrients:   75,
}

// bounds clamps a metric while generating.
type bounds struct {
	min, max float64
}

// walk describes how one metric moves from day to day.
type walk struct {
	spread   float64 // half-width of the uniform daily delta
	seasonal float64 // multiplier of the seasonal factor
	bounds   bounds
}

var walks = map[Metric]walk{
	MetricMoisture:    {spread: 5, seasonal: -10, bounds: bounds{20, 100}},
	MetricPH:          {spread: 0.15, bounds: bounds{5.0, 8.0}},
	MetricTemperature: {spread: 2, seasonal: 5, bounds: bounds{10, 35}},
	MetricNutrients:   {spread: 4, bounds: bounds{30, 100}},
}

// Generator produces synthetic daily soil series.
// The zero value uses the wall clock and the global random source.
type Generator struct {
	Rand *rand.Rand
	Now  func() time.Time
}

// Generate returns days daily samples ending today, oldest first.
// Output is non-deterministic.
func Generate(days int) []Sample {
	return Generator{}.Generate(days)
}

// Generate returns days daily samples ending at g's current day, oldest first.
func (g Generator) Generate(days int) []Sample {
	if days <= 0 {
		return []Sample{}
	}

	today := truncateDay(g.now())
	series := make([]Sample, 0, days)
	state := Baseline

	for i := days - 1; i >= 0; i-- {
		date := today.AddDate(0, 0, -i)
		state = g.Step(state, date)
		series = append(series, Sample{Date: date, Reading: roundReading(state)})
	}
	return series
}

// Step advances a random-walk state by one day. The returned reading is
// clamped to the generation bounds but not rounded.
func (g Generator) Step(prev Reading, date time.Time) Reading {
	factor := SeasonalFactor(date)
	next := Reading{}
	for _, m := range Metrics {
		w := walks[m]
		v := prev.Value(m) + (g.float64()-0.5)*2*w.spread + w.seasonal*factor
		next = next.with(m, clamp(v, w.bounds))
	}
	return next
}

// SeasonalFactor is sin(2π·dayOfYear/365) for the given date.
func SeasonalFactor(date time.Time) float64 {
	return math.Sin(2 * math.Pi * float64(date.YearDay()) / 365)
}

func (g Generator) now() time.Time {
	if g.Now != nil {
		return g.Now().UTC()
	}
	return time.Now().UTC()
}

func (g Generator) float64() float64 {
	if g.Rand != nil {
		return g.Rand.Float64()
	}
	return rand.Float64()
}

func (r Reading) with(m Metric, v float64) Reading {
	switch m {
	case MetricMoisture:
		r.Moisture = v
	case MetricPH:
		r.PH = v
	case MetricTemperature:
		r.Temperature = v
	case MetricNutrients:
		r.Nutrients = v
	}
	return r
}

func clamp(v float64, b bounds) float64 {
	return math.Max(b.min, math.Min(b.max, v))
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func roundReading(r Reading) Reading {
	return Reading{
		Moisture:    round1(r.Moisture),
		PH:          round1(r.PH),
		Temperature: round1(r.Temperature),
		Nutrients:   round1(r.Nutrients),
	}
}

func truncateDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
