package soil

import (
	"context"
	"time"
)

// SensorReading is a single sensor's reading that can be aggregated into a Sample.
type SensorReading struct {
	SensorName string
	Timestamp  time.Time
	Reading
}

// Sensor abstracts a soil data source (simulated walk, HTTP gateway).
type Sensor interface {
	Name() string
	Read(ctx context.Context, garden string) (SensorReading, error)
}

// Store is the contract the in-memory store (and any future persistent store) must satisfy.
type Store interface {
	SaveSample(garden string, sample Sample)
	GetLatest(garden string) (Sample, error)
	GetRange(garden string, from, to time.Time) ([]Sample, error)
}
