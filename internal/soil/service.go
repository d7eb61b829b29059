package soil

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/Koushikkd07/Soil-Buddy/internal/logger"
	"github.com/Koushikkd07/Soil-Buddy/internal/metrics"
)

var (
	// ErrNotFound is returned by stores when no samples exist for a garden or range.
	ErrNotFound = errors.New("no soil data for garden")
	// ErrNoSensors is returned when a poll is requested without any sensors configured.
	ErrNoSensors = errors.New("no soil sensors configured")
	// ErrUnknownAlert is returned when acknowledging an id that is not an alert id.
	ErrUnknownAlert = errors.New("unknown alert id")
)

// Service orchestrates sensors, the sample store and the analytics core.
type Service struct {
	store   Store
	sensors []Sensor
	acks    *AckRegistry
	now     func() time.Time
}

// NewService creates a new Service.
func NewService(store Store, sensors []Sensor) *Service {
	return &Service{
		store:   store,
		sensors: sensors,
		acks:    NewAckRegistry(),
		now:     func() time.Time { return time.Now().UTC() },
	}
}

// FetchAndStore reads all sensors concurrently for the given garden,
// aggregates successful readings, and stores the day's sample.
func (s *Service) FetchAndStore(ctx context.Context, garden string) error {
	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		readings []SensorReading
	)

	log := logger.WithGarden(garden)
	if len(s.sensors) == 0 {
		log.Error("no sensors available to read soil data")
		return ErrNoSensors
	}
	log.WithField("sensors", len(s.sensors)).Debug("polling sensors")

	for _, sensor := range s.sensors {
		wg.Add(1)
		go func() {
			defer wg.Done()

			r, err := sensor.Read(ctx, garden)
			if err != nil {
				// Partial success is fine; one failing sensor does not block the others.
				metrics.SensorReads.WithLabelValues(sensor.Name(), "error").Inc()
				log.WithError(err).WithField("sensor", sensor.Name()).Warn("sensor read failed")
				return
			}
			metrics.SensorReads.WithLabelValues(sensor.Name(), "ok").Inc()

			mu.Lock()
			readings = append(readings, r)
			mu.Unlock()
		}()
	}

	wg.Wait()

	if len(readings) == 0 {
		log.Warn("no successful sensor readings; keeping last good sample if any")
		return nil
	}

	sample := AggregateReadings(s.now(), readings)
	s.store.SaveSample(garden, sample)
	metrics.SamplesStored.WithLabelValues("poll").Inc()
	return nil
}

// Record stores a reading pushed by a client as today's sample.
func (s *Service) Record(garden string, r Reading) Sample {
	sample := Sample{Date: truncateDay(s.now()), Reading: roundReading(r)}
	s.store.SaveSample(garden, sample)
	metrics.SamplesStored.WithLabelValues("ingest").Inc()
	logger.WithGarden(garden).WithFields(logrus.Fields{
		"moisture":    sample.Moisture,
		"ph":          sample.PH,
		"temperature": sample.Temperature,
		"nutrients":   sample.Nutrients,
	}).Debug("reading recorded")
	return sample
}

// Seed backfills days of synthetic history for a garden that has none.
// It reports whether anything was written.
func (s *Service) Seed(garden string, days int) bool {
	if _, err := s.store.GetLatest(garden); err == nil {
		return false
	}

	series := Generator{Now: s.now}.Generate(days)
	for _, sample := range series {
		s.store.SaveSample(garden, sample)
	}
	metrics.SamplesStored.WithLabelValues("seed").Add(float64(len(series)))
	logger.WithGarden(garden).WithField("days", days).Info("seeded synthetic history")
	return len(series) > 0
}

// GetLatest delegates to the underlying store.
func (s *Service) GetLatest(garden string) (Sample, error) {
	return s.store.GetLatest(garden)
}

// History returns the samples covered by period, ending today.
func (s *Service) History(garden string, period Period) ([]Sample, error) {
	now := s.now()
	return s.store.GetRange(garden, period.Since(now), now)
}

// Trends classifies each metric over period.
func (s *Service) Trends(garden string, period Period) (Trends, error) {
	series, err := s.History(garden, period)
	if err != nil {
		return Trends{}, err
	}
	return AnalyzeSeries(series), nil
}

// Alerts evaluates the latest sample and applies the garden's acknowledgements.
// Only alerts that were not active at the previous evaluation count as raised.
func (s *Service) Alerts(garden string) ([]Alert, error) {
	latest, err := s.store.GetLatest(garden)
	if err != nil {
		return nil, err
	}

	alerts := s.acks.Reconcile(garden, EvaluateAt(latest.Reading, s.now()))
	for _, a := range s.acks.Raised(garden, alerts) {
		metrics.AlertsRaised.WithLabelValues(string(a.Kind), string(a.Severity)).Inc()
	}
	return alerts, nil
}

// Acknowledge dismisses an alert for a garden.
func (s *Service) Acknowledge(garden, id string) error {
	if !IsAlertID(id) {
		return fmt.Errorf("%w: %s", ErrUnknownAlert, id)
	}
	s.acks.Acknowledge(garden, id)
	return nil
}

// Report builds the weekly report for a garden. A garden without history
// gets a report over the baseline values.
func (s *Service) Report(garden string) (WeeklyReport, error) {
	now := s.now()
	series, err := s.store.GetRange(garden, now.Add(-ReportWindow), now)
	if err != nil && !errors.Is(err, ErrNotFound) {
		return WeeklyReport{}, err
	}

	metrics.ReportsBuilt.Inc()
	return BuildReportAt(series, now), nil
}
