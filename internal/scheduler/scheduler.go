// Package scheduler runs the periodic exchange-rate refresh. Manual refresh
// through the API and a fresh startup remain the other entry points; the cron
// job just keeps the sample log current without user action.
package scheduler

import (
	"context"
	"log"

	"github.com/robfig/cron/v3"

	"github.com/rkaranam/Savings-Planner-Backend/internal/service"
)

// Scheduler owns the cron runner for background jobs.
type Scheduler struct {
	cron        *cron.Cron
	rateService *service.RateService
}

// New creates a Scheduler with the provided rate service.
func New(rateService *service.RateService) *Scheduler {
	return &Scheduler{
		cron:        cron.New(),
		rateService: rateService,
	}
}

// Start registers the rate-refresh job and starts the cron runner.
// An empty schedule disables background refresh entirely.
func (s *Scheduler) Start(schedule string) error {
	if schedule == "" {
		log.Println("Rate refresh schedule empty, background refresh disabled")
		return nil
	}

	_, err := s.cron.AddFunc(schedule, func() {
		sample, err := s.rateService.RefreshRate(context.Background())
		if err != nil {
			log.Printf("Scheduled rate refresh failed to persist: %v", err)
			return
		}
		if sample != nil {
			log.Printf("Exchange rate refreshed: 1 USD = %.4f INR", sample.Rate)
		}
	})
	if err != nil {
		return err
	}

	s.cron.Start()
	log.Printf("Rate refresh scheduled: %s", schedule)
	return nil
}

// Stop halts the cron runner and waits for a running job to finish.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
}
