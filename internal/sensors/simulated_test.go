package sensors

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Koushikkd07/Soil-Buddy/internal/soil"
)

type stubLatest struct {
	sample soil.Sample
	err    error
}

func (s stubLatest) GetLatest(string) (soil.Sample, error) {
	return s.sample, s.err
}

func inBounds(t *testing.T, r soil.Reading) {
	t.Helper()
	assert.GreaterOrEqual(t, r.Moisture, 20.0)
	assert.LessOrEqual(t, r.Moisture, 100.0)
	assert.GreaterOrEqual(t, r.PH, 5.0)
	assert.LessOrEqual(t, r.PH, 8.0)
	assert.GreaterOrEqual(t, r.Temperature, 10.0)
	assert.LessOrEqual(t, r.Temperature, 35.0)
	assert.GreaterOrEqual(t, r.Nutrients, 30.0)
	assert.LessOrEqual(t, r.Nutrients, 100.0)
}

func TestSimulatedStartsFromBaseline(t *testing.T) {
	s := NewSimulated(stubLatest{err: soil.ErrNotFound})

	r, err := s.Read(context.Background(), "home")
	require.NoError(t, err)
	assert.Equal(t, "simulated", r.SensorName)
	inBounds(t, r.Reading)
}

func TestSimulatedHoldsTodaysValue(t *testing.T) {
	today := soil.Sample{
		Date:    time.Now().UTC(),
		Reading: soil.Reading{Moisture: 44, PH: 6.1, Temperature: 18, Nutrients: 61},
	}
	s := NewSimulated(stubLatest{sample: today})

	r, err := s.Read(context.Background(), "home")
	require.NoError(t, err)
	assert.Equal(t, today.Reading, r.Reading)
}

func TestSimulatedStepsFromYesterday(t *testing.T) {
	yesterday := soil.Sample{
		Date:    time.Now().UTC().AddDate(0, 0, -1),
		Reading: soil.Reading{Moisture: 21, PH: 5.1, Temperature: 34, Nutrients: 99},
	}
	s := NewSimulated(stubLatest{sample: yesterday})

	r, err := s.Read(context.Background(), "home")
	require.NoError(t, err)
	inBounds(t, r.Reading)
	assert.InDelta(t, yesterday.PH, r.PH, 0.15+1e-9)
	assert.InDelta(t, yesterday.Nutrients, r.Nutrients, 4+1e-9)
}

func TestSimulatedStoreError(t *testing.T) {
	boom := errors.New("boom")
	_, err := NewSimulated(stubLatest{err: boom}).Read(context.Background(), "home")
	assert.ErrorIs(t, err, boom)
}

func TestSimulatedCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewSimulated(stubLatest{err: soil.ErrNotFound}).Read(ctx, "home")
	assert.ErrorIs(t, err, context.Canceled)
}
