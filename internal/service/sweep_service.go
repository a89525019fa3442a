//go:generate mockgen -source=$GOFILE -destination=mock/$GOFILE -package=mock
package service

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"shopgate/backend/internal/model"
	"shopgate/backend/internal/repository"
	"shopgate/backend/pkg/logger"
)

const (
	// SweepEscalationWindow is the trailing window aggregated per run.
	SweepEscalationWindow = time.Hour
	// SweepBlockDuration is the block applied to promoted offenders.
	SweepBlockDuration = 30 * time.Minute

	clientEscalationThreshold = 5
	deviceEscalationThreshold = 3
)

var escalationKinds = []model.IncidentKind{
	model.KindRateLimitExceeded,
	model.KindDeviceSpamAttempt,
	model.KindBusyModeAutoBlock,
}

// SweepService promotes repeated low-level violations into blocks and purges
// expired block rows. Each run performs three independent sub-tasks; a
// failure in one never aborts the others.
type SweepService interface {
	Sweep(ctx context.Context) error
}

type sweepService struct {
	incidents    repository.IncidentRepository
	clientBlocks repository.BlockRepository
	deviceBlocks repository.BlockRepository
}

// NewSweepService creates the abuse sweeper.
func NewSweepService(incidents repository.IncidentRepository, clientBlocks repository.BlockRepository, deviceBlocks repository.BlockRepository) SweepService {
	return &sweepService{
		incidents:    incidents,
		clientBlocks: clientBlocks,
		deviceBlocks: deviceBlocks,
	}
}

func (s *sweepService) Sweep(ctx context.Context) error {
	var g errgroup.Group

	g.Go(func() error {
		counts, err := s.incidents.CountByClientSince(ctx, escalationKinds, time.Now().UTC().Add(-SweepEscalationWindow))
		if err != nil {
			logger.Error("sweep: client aggregation failed", "error", err)
			return fmt.Errorf("aggregate client incidents: %w", err)
		}
		return s.escalate(ctx, s.clientBlocks, "client", counts, clientEscalationThreshold)
	})

	g.Go(func() error {
		counts, err := s.incidents.CountByDeviceSince(ctx, escalationKinds, time.Now().UTC().Add(-SweepEscalationWindow))
		if err != nil {
			logger.Error("sweep: device aggregation failed", "error", err)
			return fmt.Errorf("aggregate device incidents: %w", err)
		}
		return s.escalate(ctx, s.deviceBlocks, "device", counts, deviceEscalationThreshold)
	})

	g.Go(func() error {
		return s.purgeExpired(ctx)
	})

	return g.Wait()
}

func (s *sweepService) escalate(ctx context.Context, repo repository.BlockRepository, flavor string, counts map[string]int, threshold int) error {
	now := time.Now().UTC()
	until := now.Add(SweepBlockDuration)

	var firstErr error
	for key, count := range counts {
		if count < threshold {
			continue
		}

		// Never weaken an existing longer or permanent block.
		existing, err := repo.GetByKey(ctx, key)
		if err == nil && existing != nil && existing.ActiveAt(now) {
			if existing.BlockedUntil == nil || existing.BlockedUntil.After(until) {
				continue
			}
		}

		reason := fmt.Sprintf("automatic block: %d abuse incidents within the last hour", count)
		if _, err := repo.Upsert(ctx, key, reason, &until); err != nil {
			logger.Error("sweep: escalation upsert failed", "flavor", flavor, "key", key, "error", err)
			if firstErr == nil {
				firstErr = fmt.Errorf("escalate %s %q: %w", flavor, key, err)
			}
			continue
		}
		logger.Info("sweep: escalated offender", "flavor", flavor, "key", key, "incidents", count)
	}
	return firstErr
}

func (s *sweepService) purgeExpired(ctx context.Context) error {
	now := time.Now().UTC()

	var firstErr error
	for flavor, repo := range map[string]repository.BlockRepository{
		"client": s.clientBlocks,
		"device": s.deviceBlocks,
	} {
		purged, err := repo.DeleteExpired(ctx, now)
		if err != nil {
			logger.Error("sweep: expiry cleanup failed", "flavor", flavor, "error", err)
			if firstErr == nil {
				firstErr = fmt.Errorf("purge expired %s blocks: %w", flavor, err)
			}
			continue
		}
		if purged > 0 {
			logger.Info("sweep: purged expired blocks", "flavor", flavor, "count", purged)
		}
	}
	return firstErr
}
