//go:generate mockgen -source=$GOFILE -destination=mock/$GOFILE -package=mock
package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"golang.org/x/sync/singleflight"

	"shopgate/backend/internal/model"
	"shopgate/backend/internal/repository"
	"shopgate/backend/pkg/logger"
)

const (
	BusyReasonManual = "manual"
	BusyReasonAuto   = "auto"
)

// BusyDecision is the outcome of one busy-mode check.
type BusyDecision struct {
	Allowed              bool
	Reason               string
	EstimatedWaitMinutes int
	Message              string
}

// BusyStatus is the read-only view for dashboards.
type BusyStatus struct {
	Busy               bool
	Reason             string
	ManualBusy         bool
	ActiveOrders       int
	MaxOrdersPerWindow int
	WindowMinutes      int
	BusyModeStartedAt  *time.Time
}

type BusyModeService interface {
	Check(ctx context.Context, tenantID int64, clientIdentity string, deviceIdentity string) BusyDecision
	Status(ctx context.Context, tenantID int64) (BusyStatus, error)
	GetConfig(ctx context.Context, tenantID int64) (*model.TenantAdmissionConfig, error)
	SetManualBusy(ctx context.Context, tenantID int64, busy bool) error
	UpdateLimits(ctx context.Context, tenantID int64, maxOrdersPerWindow int, windowMinutes int) error
}

type busyModeService struct {
	configs   repository.TenantConfigRepository
	orders    repository.OrderViewRepository
	incidents IncidentService

	// counts coalesces concurrent window-count queries per tenant.
	counts singleflight.Group
}

// NewBusyModeService creates the per-tenant admission gate.
func NewBusyModeService(configs repository.TenantConfigRepository, orders repository.OrderViewRepository, incidents IncidentService) BusyModeService {
	return &busyModeService{configs: configs, orders: orders, incidents: incidents}
}

// Check evaluates one admission attempt. The requester identities are
// stamped on every incident so the sweeper can group busy-mode pressure by
// client and device.
func (s *busyModeService) Check(ctx context.Context, tenantID int64, clientIdentity string, deviceIdentity string) BusyDecision {
	now := time.Now().UTC()
	client := strings.TrimSpace(clientIdentity)
	device := strings.TrimSpace(deviceIdentity)

	cfg, err := s.configs.Get(ctx, tenantID)
	if err != nil {
		s.failOpen(ctx, tenantID, client, device, "config lookup", err)
		return BusyDecision{Allowed: true}
	}

	if cfg.ManualBusy {
		s.incidents.Record(ctx, model.Incident{
			ClientIdentity: strPtr(client),
			DeviceIdentity: strPtr(device),
			TenantID:       int64Ptr(tenantID),
			Kind:           model.KindBusyModeManualBlock,
			OccurredAt:     now,
		})
		return BusyDecision{
			Reason:  BusyReasonManual,
			Message: "the store is not taking new orders right now",
		}
	}

	count, err := s.countActive(ctx, tenantID, now.Add(-cfg.Window()))
	if err != nil {
		s.failOpen(ctx, tenantID, client, device, "order count", err)
		return BusyDecision{Allowed: true}
	}

	if count >= cfg.MaxOrdersPerWindow {
		s.incidents.Record(ctx, model.Incident{
			ClientIdentity: strPtr(client),
			DeviceIdentity: strPtr(device),
			TenantID:       int64Ptr(tenantID),
			Kind:           model.KindBusyModeAutoBlock,
			Details: detailsJSON(map[string]interface{}{
				"activeOrders":       count,
				"maxOrdersPerWindow": cfg.MaxOrdersPerWindow,
				"windowMinutes":      cfg.WindowMinutes,
			}),
			OccurredAt: now,
		})
		if cfg.BusyModeStartedAt == nil {
			if err := s.configs.SetBusyModeStartedAt(ctx, tenantID, &now); err != nil {
				logger.Warn("failed to record busy-mode start", "tenantId", tenantID, "error", err)
			}
		}
		return BusyDecision{
			Reason:               BusyReasonAuto,
			EstimatedWaitMinutes: cfg.WindowMinutes,
			Message:              fmt.Sprintf("the store is busy, estimated wait is %d minutes", cfg.WindowMinutes),
		}
	}

	// Transition back to available.
	if cfg.BusyModeStartedAt != nil {
		if err := s.configs.SetBusyModeStartedAt(ctx, tenantID, nil); err != nil {
			logger.Warn("failed to clear busy-mode start", "tenantId", tenantID, "error", err)
		}
	}
	return BusyDecision{Allowed: true}
}

func (s *busyModeService) Status(ctx context.Context, tenantID int64) (BusyStatus, error) {
	now := time.Now().UTC()

	cfg, err := s.configs.Get(ctx, tenantID)
	if err != nil {
		return BusyStatus{}, fmt.Errorf("get tenant config: %w", err)
	}

	count, err := s.countActive(ctx, tenantID, now.Add(-cfg.Window()))
	if err != nil {
		return BusyStatus{}, fmt.Errorf("count active orders: %w", err)
	}

	status := BusyStatus{
		ManualBusy:         cfg.ManualBusy,
		ActiveOrders:       count,
		MaxOrdersPerWindow: cfg.MaxOrdersPerWindow,
		WindowMinutes:      cfg.WindowMinutes,
		BusyModeStartedAt:  cfg.BusyModeStartedAt,
	}
	switch {
	case cfg.ManualBusy:
		status.Busy = true
		status.Reason = BusyReasonManual
	case count >= cfg.MaxOrdersPerWindow:
		status.Busy = true
		status.Reason = BusyReasonAuto
	}
	return status, nil
}

func (s *busyModeService) GetConfig(ctx context.Context, tenantID int64) (*model.TenantAdmissionConfig, error) {
	return s.configs.Get(ctx, tenantID)
}

func (s *busyModeService) SetManualBusy(ctx context.Context, tenantID int64, busy bool) error {
	if err := s.configs.SetManualBusy(ctx, tenantID, busy); err != nil {
		return fmt.Errorf("set manual busy: %w", err)
	}

	now := time.Now().UTC()
	var startedAt *time.Time
	if busy {
		startedAt = &now
	}
	if err := s.configs.SetBusyModeStartedAt(ctx, tenantID, startedAt); err != nil {
		logger.Warn("failed to update busy-mode start on toggle", "tenantId", tenantID, "error", err)
	}

	kind := model.KindBusyModeDisabled
	if busy {
		kind = model.KindBusyModeEnabled
	}
	s.incidents.Record(ctx, model.Incident{
		TenantID:   int64Ptr(tenantID),
		Kind:       kind,
		OccurredAt: now,
	})
	return nil
}

func (s *busyModeService) UpdateLimits(ctx context.Context, tenantID int64, maxOrdersPerWindow int, windowMinutes int) error {
	if maxOrdersPerWindow < 1 || maxOrdersPerWindow > 1000 {
		return fmt.Errorf("%w: maxOrdersPerWindow must be between 1 and 1000", ErrInvalid)
	}
	if windowMinutes < 1 || windowMinutes > 1440 {
		return fmt.Errorf("%w: windowMinutes must be between 1 and 1440", ErrInvalid)
	}

	if err := s.configs.UpdateLimits(ctx, tenantID, maxOrdersPerWindow, windowMinutes); err != nil {
		return fmt.Errorf("update limits: %w", err)
	}

	s.incidents.Record(ctx, model.Incident{
		TenantID: int64Ptr(tenantID),
		Kind:     model.KindBusyModeConfigUpdate,
		Details: detailsJSON(map[string]interface{}{
			"maxOrdersPerWindow": maxOrdersPerWindow,
			"windowMinutes":      windowMinutes,
		}),
		OccurredAt: time.Now().UTC(),
	})
	return nil
}

func (s *busyModeService) countActive(ctx context.Context, tenantID int64, since time.Time) (int, error) {
	result, err, _ := s.counts.Do(strconv.FormatInt(tenantID, 10), func() (interface{}, error) {
		return s.orders.CountActiveForTenantSince(ctx, tenantID, since)
	})
	if err != nil {
		return 0, err
	}
	return result.(int), nil
}

func (s *busyModeService) failOpen(ctx context.Context, tenantID int64, clientIdentity string, deviceIdentity string, step string, err error) {
	logger.Error("busy-mode check failed open", "tenantId", tenantID, "step", step, "error", err)
	s.incidents.Record(ctx, model.Incident{
		ClientIdentity: strPtr(clientIdentity),
		DeviceIdentity: strPtr(deviceIdentity),
		TenantID:       int64Ptr(tenantID),
		Kind:           model.KindBusyModeCheckError,
		Details: detailsJSON(map[string]interface{}{
			"step":  step,
			"error": err.Error(),
		}),
		OccurredAt: time.Now().UTC(),
	})
}
