package scheduler

import (
	"context"
	"sync"
	"time"

	"shopgate/backend/internal/service"
	"shopgate/backend/pkg/logger"
)

type Scheduler struct {
	sweepService service.SweepService
	interval     time.Duration
	stopCh       chan struct{}
	wg           sync.WaitGroup
	cancelFunc   context.CancelFunc // cancels the current sweep
	mu           sync.Mutex         // protects cancelFunc
}

func New(sweepService service.SweepService, interval time.Duration) *Scheduler {
	return &Scheduler{
		sweepService: sweepService,
		interval:     interval,
		stopCh:       make(chan struct{}),
	}
}

func (s *Scheduler) Start() {
	s.wg.Add(1)
	go s.run()
	logger.Info("scheduler started", "interval", s.interval)
}

func (s *Scheduler) Stop() {
	// Cancel any ongoing sweep first
	s.mu.Lock()
	if s.cancelFunc != nil {
		s.cancelFunc()
	}
	s.mu.Unlock()

	close(s.stopCh)
	s.wg.Wait()
	logger.Info("scheduler stopped")
}

func (s *Scheduler) run() {
	defer s.wg.Done()

	// Run immediately on start
	s.sweep()

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.sweep()
		case <-s.stopCh:
			return
		}
	}
}

func (s *Scheduler) sweep() {
	// Use the same timeout as the sweep interval
	ctx, cancel := context.WithTimeout(context.Background(), s.interval)

	// Store cancel function so Stop() can cancel an ongoing sweep
	s.mu.Lock()
	s.cancelFunc = cancel
	s.mu.Unlock()

	defer func() {
		cancel()
		s.mu.Lock()
		s.cancelFunc = nil
		s.mu.Unlock()
	}()

	logger.Info("starting abuse sweep")
	if err := s.sweepService.Sweep(ctx); err != nil {
		if ctx.Err() != nil {
			logger.Info("abuse sweep cancelled")
			return
		}
		logger.Error("abuse sweep", "error", err)
	}
	logger.Info("abuse sweep completed")
}
