//go:generate mockgen -source=$GOFILE -destination=mock/$GOFILE -package=mock
package service

import (
	"context"
	"net/http"
)

const (
	GateRateLimit = "rate_limit"
	GateDevice    = "device"
	GateBusyMode  = "busy_mode"
)

// AdmissionRequest identifies one inbound order-creation attempt.
type AdmissionRequest struct {
	ClientIdentity string
	DeviceIdentity string
	TenantID       int64
}

// AdmissionVerdict is the combined outcome of the gate chain.
type AdmissionVerdict struct {
	Allowed bool
	// Unverified is set when a gate admitted the request without being able
	// to establish an identity (fail-open path).
	Unverified bool

	Gate                 string
	Reason               string
	Message              string
	RetryAfterSeconds    int
	EstimatedWaitMinutes int
	HTTPStatus           int
}

// AdmissionService runs the gate chain for the order-creation entry point:
// rate limiter, then device guard, then busy mode, short-circuiting on the
// first deny.
type AdmissionService interface {
	Admit(ctx context.Context, req AdmissionRequest) AdmissionVerdict
}

type admissionService struct {
	rateLimit RateLimitService
	devices   DeviceGuardService
	busyMode  BusyModeService
}

// NewAdmissionService creates the gate chain orchestrator.
func NewAdmissionService(rateLimit RateLimitService, devices DeviceGuardService, busyMode BusyModeService) AdmissionService {
	return &admissionService{rateLimit: rateLimit, devices: devices, busyMode: busyMode}
}

func (s *admissionService) Admit(ctx context.Context, req AdmissionRequest) AdmissionVerdict {
	verdict := AdmissionVerdict{Allowed: true, HTTPStatus: http.StatusOK}

	rate := s.rateLimit.Admit(ctx, req.ClientIdentity, req.TenantID)
	verdict.Unverified = rate.Unverified
	if !rate.Allowed {
		return AdmissionVerdict{
			Gate:              GateRateLimit,
			Reason:            "rate_limited",
			Message:           rate.Message,
			RetryAfterSeconds: rate.RetryAfterSeconds,
			HTTPStatus:        http.StatusTooManyRequests,
		}
	}

	device := s.devices.Check(ctx, req.DeviceIdentity, req.ClientIdentity)
	verdict.Unverified = verdict.Unverified || device.Unverified
	if !device.Allowed {
		status := http.StatusTooManyRequests
		if device.Reason == DeviceDenyBlocked || device.Reason == DeviceDenyMissingDevice {
			status = http.StatusForbidden
		}
		return AdmissionVerdict{
			Gate:       GateDevice,
			Reason:     device.Reason,
			Message:    device.Message,
			HTTPStatus: status,
		}
	}

	busy := s.busyMode.Check(ctx, req.TenantID, req.ClientIdentity, req.DeviceIdentity)
	if !busy.Allowed {
		return AdmissionVerdict{
			Gate:                 GateBusyMode,
			Reason:               busy.Reason,
			Message:              busy.Message,
			EstimatedWaitMinutes: busy.EstimatedWaitMinutes,
			HTTPStatus:           http.StatusServiceUnavailable,
		}
	}

	return verdict
}
