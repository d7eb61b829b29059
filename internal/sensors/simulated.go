package sensors

import (
	"context"
	"errors"
	"time"

	"github.com/Koushikkd07/Soil-Buddy/internal/soil"
)

// latestReader is the part of the store the simulated sensor needs.
type latestReader interface {
	GetLatest(garden string) (soil.Sample, error)
}

// Simulated implements soil.Sensor by continuing the synthetic random walk
// from a garden's latest stored sample. The walk advances once per day;
// reads later the same day return that day's value.
type Simulated struct {
	store latestReader
	gen   soil.Generator
}

// NewSimulated creates a simulated sensor reading its walk state from store.
func NewSimulated(store latestReader) *Simulated {
	return &Simulated{store: store}
}

func (s *Simulated) Name() string {
	return "simulated"
}

func (s *Simulated) Read(ctx context.Context, garden string) (soil.SensorReading, error) {
	if err := ctx.Err(); err != nil {
		return soil.SensorReading{}, err
	}

	now := time.Now().UTC()
	prev := soil.Baseline
	latest, err := s.store.GetLatest(garden)
	switch {
	case err == nil:
		if sameDay(latest.Date, now) {
			return soil.SensorReading{SensorName: s.Name(), Timestamp: now, Reading: latest.Reading}, nil
		}
		prev = latest.Reading
	case !errors.Is(err, soil.ErrNotFound):
		return soil.SensorReading{}, err
	}

	return soil.SensorReading{
		SensorName: s.Name(),
		Timestamp:  now,
		Reading:    s.gen.Step(prev, now),
	}, nil
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.UTC().Date()
	by, bm, bd := b.UTC().Date()
	return ay == by && am == bm && ad == bd
}
