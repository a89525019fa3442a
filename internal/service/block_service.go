//go:generate mockgen -source=$GOFILE -destination=mock/$GOFILE -package=mock
package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"shopgate/backend/internal/model"
	"shopgate/backend/internal/repository"
)

// AdmissionStats aggregates operational counters for dashboards.
type AdmissionStats struct {
	ActiveClientBlocks int
	ActiveDeviceBlocks int
	IncidentsLast24h   map[model.IncidentKind]int
}

// BlockService exposes manual operator actions on the block registry plus
// aggregate stats. Manual blocks bypass the sweeper's aggregation.
type BlockService interface {
	BlockClient(ctx context.Context, key string, reason string, duration *time.Duration) (*model.Block, error)
	BlockDevice(ctx context.Context, key string, reason string, duration *time.Duration) (*model.Block, error)
	UnblockClient(ctx context.Context, key string) error
	UnblockDevice(ctx context.Context, key string) error
	ListClientBlocks(ctx context.Context) ([]model.Block, error)
	ListDeviceBlocks(ctx context.Context) ([]model.Block, error)
	Stats(ctx context.Context) (AdmissionStats, error)
}

type blockService struct {
	clientBlocks repository.BlockRepository
	deviceBlocks repository.BlockRepository
	incidents    repository.IncidentRepository
}

// NewBlockService creates the manual block/unblock service.
func NewBlockService(clientBlocks repository.BlockRepository, deviceBlocks repository.BlockRepository, incidents repository.IncidentRepository) BlockService {
	return &blockService{
		clientBlocks: clientBlocks,
		deviceBlocks: deviceBlocks,
		incidents:    incidents,
	}
}

func (s *blockService) BlockClient(ctx context.Context, key string, reason string, duration *time.Duration) (*model.Block, error) {
	return s.block(ctx, s.clientBlocks, key, reason, duration)
}

func (s *blockService) BlockDevice(ctx context.Context, key string, reason string, duration *time.Duration) (*model.Block, error) {
	return s.block(ctx, s.deviceBlocks, key, reason, duration)
}

func (s *blockService) block(ctx context.Context, repo repository.BlockRepository, key string, reason string, duration *time.Duration) (*model.Block, error) {
	trimmedKey := strings.TrimSpace(key)
	if trimmedKey == "" {
		return nil, fmt.Errorf("%w: key is required", ErrInvalid)
	}
	if duration != nil && *duration <= 0 {
		return nil, fmt.Errorf("%w: duration must be positive", ErrInvalid)
	}

	reason = strings.TrimSpace(reason)
	if reason == "" {
		reason = "manual block"
	}

	// Absent duration means permanent.
	var blockedUntil *time.Time
	if duration != nil {
		until := time.Now().UTC().Add(*duration)
		blockedUntil = &until
	}

	block, err := repo.Upsert(ctx, trimmedKey, reason, blockedUntil)
	if err != nil {
		return nil, fmt.Errorf("upsert block: %w", err)
	}
	return block, nil
}

func (s *blockService) UnblockClient(ctx context.Context, key string) error {
	return s.unblock(ctx, s.clientBlocks, key)
}

func (s *blockService) UnblockDevice(ctx context.Context, key string) error {
	return s.unblock(ctx, s.deviceBlocks, key)
}

func (s *blockService) unblock(ctx context.Context, repo repository.BlockRepository, key string) error {
	trimmedKey := strings.TrimSpace(key)
	if trimmedKey == "" {
		return fmt.Errorf("%w: key is required", ErrInvalid)
	}

	if err := repo.Delete(ctx, trimmedKey); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		return fmt.Errorf("delete block: %w", err)
	}
	return nil
}

func (s *blockService) ListClientBlocks(ctx context.Context) ([]model.Block, error) {
	return s.clientBlocks.ListActive(ctx, time.Now().UTC())
}

func (s *blockService) ListDeviceBlocks(ctx context.Context) ([]model.Block, error) {
	return s.deviceBlocks.ListActive(ctx, time.Now().UTC())
}

func (s *blockService) Stats(ctx context.Context) (AdmissionStats, error) {
	now := time.Now().UTC()

	clientCount, err := s.clientBlocks.CountActive(ctx, now)
	if err != nil {
		return AdmissionStats{}, fmt.Errorf("count client blocks: %w", err)
	}
	deviceCount, err := s.deviceBlocks.CountActive(ctx, now)
	if err != nil {
		return AdmissionStats{}, fmt.Errorf("count device blocks: %w", err)
	}
	volume, err := s.incidents.CountByKindSince(ctx, now.Add(-24*time.Hour))
	if err != nil {
		return AdmissionStats{}, fmt.Errorf("count incidents: %w", err)
	}

	return AdmissionStats{
		ActiveClientBlocks: clientCount,
		ActiveDeviceBlocks: deviceCount,
		IncidentsLast24h:   volume,
	}, nil
}
