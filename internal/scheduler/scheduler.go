package scheduler

import (
	"context"
	"sync"
	"time"

	"github.com/go-co-op/gocron"

	"github.com/Koushikkd07/Soil-Buddy/internal/logger"
)

// poller is the part of soil.Service the scheduler drives.
type poller interface {
	FetchAndStore(ctx context.Context, garden string) error
}

// Scheduler periodically polls soil sensors for configured gardens.
type Scheduler struct {
	scheduler *gocron.Scheduler
	service   poller
	gardens   []string
	interval  time.Duration
}

// New creates a new Scheduler.
func New(gardens []string, interval time.Duration, service poller) *Scheduler {
	s := gocron.NewScheduler(time.UTC)
	return &Scheduler{
		scheduler: s,
		service:   service,
		gardens:   gardens,
		interval:  interval,
	}
}

// Start schedules the periodic job and starts the underlying scheduler.
// The first poll runs immediately.
func (s *Scheduler) Start() error {
	if len(s.gardens) == 0 {
		logger.Log.Info("scheduler: no gardens configured; nothing to schedule")
		return nil
	}

	minutes := int(s.interval.Minutes())
	if minutes <= 0 {
		minutes = 15
	}

	_, err := s.scheduler.Every(minutes).Minutes().Do(s.pollAll)
	if err != nil {
		return err
	}

	s.scheduler.StartAsync()
	return nil
}

func (s *Scheduler) pollAll() {
	logger.Log.Debug("scheduler: running sensor poll job")

	var wg sync.WaitGroup
	for _, garden := range s.gardens {
		wg.Add(1)
		go func() {
			defer wg.Done()

			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()

			if err := s.service.FetchAndStore(ctx, garden); err != nil {
				logger.WithGarden(garden).WithError(err).Error("scheduler: poll failed")
			}
		}()
	}
	wg.Wait()
	logger.Log.Debug("scheduler: completed sensor poll job")
}

// Stop stops the scheduler and cancels any future jobs.
func (s *Scheduler) Stop() {
	if s.scheduler != nil {
		s.scheduler.Stop()
	}
}
