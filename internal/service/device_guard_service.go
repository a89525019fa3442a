//go:generate mockgen -source=$GOFILE -destination=mock/$GOFILE -package=mock
package service

import (
	"context"
	"strings"
	"time"

	"shopgate/backend/internal/model"
	"shopgate/backend/internal/repository"
	"shopgate/backend/pkg/logger"
)

const (
	DeviceDenyBlocked       = "blocked"
	DeviceDenyActiveOrder   = "active_order"
	DeviceDenyMissingDevice = "missing_device"
)

// DeviceDecision is the outcome of one device guard check.
type DeviceDecision struct {
	Allowed bool
	// Unverified marks requests admitted without a device identity.
	Unverified bool
	Reason     string
	Message    string
}

// DeviceStatus is the read-only view for dashboards.
type DeviceStatus struct {
	Blocked         bool
	BlockedUntil    *time.Time
	ActiveOrderCode *string
}

type DeviceGuardService interface {
	Check(ctx context.Context, deviceIdentity string, clientIdentity string) DeviceDecision
	Status(ctx context.Context, deviceIdentity string) (DeviceStatus, error)
}

type deviceGuardService struct {
	blocks    repository.BlockRepository
	orders    repository.OrderViewRepository
	incidents IncidentService

	// requireDeviceID flips the posture for anonymous devices from
	// allow-unverified to deny.
	requireDeviceID bool
}

// NewDeviceGuardService creates the one-order-per-device gate.
func NewDeviceGuardService(blocks repository.BlockRepository, orders repository.OrderViewRepository, incidents IncidentService, requireDeviceID bool) DeviceGuardService {
	return &deviceGuardService{
		blocks:          blocks,
		orders:          orders,
		incidents:       incidents,
		requireDeviceID: requireDeviceID,
	}
}

// Check evaluates one admission attempt. clientIdentity is stamped on every
// incident so the sweeper can group device abuse by client as well.
func (s *deviceGuardService) Check(ctx context.Context, deviceIdentity string, clientIdentity string) DeviceDecision {
	device := strings.TrimSpace(deviceIdentity)
	client := strings.TrimSpace(clientIdentity)
	if device == "" {
		if s.requireDeviceID {
			return DeviceDecision{
				Reason:  DeviceDenyMissingDevice,
				Message: "a device identifier is required to place orders",
			}
		}
		// Anonymous devices are accepted for backward compatibility.
		logger.Warn("device check without device identity")
		return DeviceDecision{Allowed: true, Unverified: true}
	}

	now := time.Now().UTC()

	block, err := s.blocks.GetByKey(ctx, device)
	if err != nil {
		s.failOpen(ctx, device, client, "block registry lookup", err)
		return DeviceDecision{Allowed: true}
	}
	if block != nil && block.ActiveAt(now) {
		details := map[string]interface{}{"reason": block.Reason}
		if block.BlockedUntil != nil {
			details["remainingMinutes"] = int(block.BlockedUntil.Sub(now).Round(time.Minute) / time.Minute)
		}
		s.incidents.Record(ctx, model.Incident{
			ClientIdentity: strPtr(client),
			DeviceIdentity: strPtr(device),
			Kind:           model.KindDeviceBlockedAttempt,
			Details:        detailsJSON(details),
			OccurredAt:     now,
		})
		return DeviceDecision{
			Reason:  DeviceDenyBlocked,
			Message: "ordering is currently restricted for this device",
		}
	}

	order, err := s.orders.FindActiveByDevice(ctx, device)
	if err != nil {
		s.failOpen(ctx, device, client, "order store lookup", err)
		return DeviceDecision{Allowed: true}
	}
	if order != nil {
		s.incidents.Record(ctx, model.Incident{
			ClientIdentity: strPtr(client),
			DeviceIdentity: strPtr(device),
			TenantID:       int64Ptr(order.TenantID),
			Kind:           model.KindDeviceSpamAttempt,
			Details: detailsJSON(map[string]interface{}{
				"orderId":     order.ID,
				"orderCode":   order.Code,
				"orderStatus": string(order.Status),
				"ageMinutes":  int(now.Sub(order.CreatedAt).Round(time.Minute) / time.Minute),
			}),
			OccurredAt: now,
		})
		return DeviceDecision{
			Reason:  DeviceDenyActiveOrder,
			Message: "please finish your current order first",
		}
	}

	return DeviceDecision{Allowed: true}
}

func (s *deviceGuardService) Status(ctx context.Context, deviceIdentity string) (DeviceStatus, error) {
	device := strings.TrimSpace(deviceIdentity)
	status := DeviceStatus{}
	if device == "" {
		return status, nil
	}

	now := time.Now().UTC()

	block, err := s.blocks.GetByKey(ctx, device)
	if err != nil {
		return status, err
	}
	if block != nil && block.ActiveAt(now) {
		status.Blocked = true
		status.BlockedUntil = block.BlockedUntil
	}

	order, err := s.orders.FindActiveByDevice(ctx, device)
	if err != nil {
		return status, err
	}
	if order != nil {
		code := order.Code
		status.ActiveOrderCode = &code
	}
	return status, nil
}

// failOpen records a device_check_error and lets the request through so a
// transient data-layer fault never blocks legitimate orders.
func (s *deviceGuardService) failOpen(ctx context.Context, device string, client string, step string, err error) {
	logger.Error("device check failed open", "device", device, "step", step, "error", err)
	s.incidents.Record(ctx, model.Incident{
		ClientIdentity: strPtr(client),
		DeviceIdentity: strPtr(device),
		Kind:           model.KindDeviceCheckError,
		Details: detailsJSON(map[string]interface{}{
			"step":  step,
			"error": err.Error(),
		}),
		OccurredAt: time.Now().UTC(),
	})
}
