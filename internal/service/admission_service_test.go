package service_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"shopgate/backend/internal/service"
	"shopgate/backend/internal/service/mock"
)

type admissionFixture struct {
	rateLimit *mock.MockRateLimitService
	devices   *mock.MockDeviceGuardService
	busyMode  *mock.MockBusyModeService
}

func newAdmission(t *testing.T) (service.AdmissionService, admissionFixture) {
	t.Helper()
	ctrl := gomock.NewController(t)
	fx := admissionFixture{
		rateLimit: mock.NewMockRateLimitService(ctrl),
		devices:   mock.NewMockDeviceGuardService(ctrl),
		busyMode:  mock.NewMockBusyModeService(ctrl),
	}
	return service.NewAdmissionService(fx.rateLimit, fx.devices, fx.busyMode), fx
}

func admitRequest() service.AdmissionRequest {
	return service.AdmissionRequest{
		ClientIdentity: "10.0.0.1",
		DeviceIdentity: "device-1",
		TenantID:       1,
	}
}

func TestAdmissionService_AllGatesPass(t *testing.T) {
	t.Parallel()
	svc, fx := newAdmission(t)
	ctx := context.Background()

	fx.rateLimit.EXPECT().Admit(ctx, "10.0.0.1", int64(1)).Return(service.RateLimitDecision{Allowed: true})
	fx.devices.EXPECT().Check(ctx, "device-1", "10.0.0.1").Return(service.DeviceDecision{Allowed: true})
	fx.busyMode.EXPECT().Check(ctx, int64(1), "10.0.0.1", "device-1").Return(service.BusyDecision{Allowed: true})

	verdict := svc.Admit(ctx, admitRequest())
	require.True(t, verdict.Allowed)
	require.Equal(t, http.StatusOK, verdict.HTTPStatus)
	require.Empty(t, verdict.Gate)
}

func TestAdmissionService_RateLimitShortCircuits(t *testing.T) {
	t.Parallel()
	svc, fx := newAdmission(t)
	ctx := context.Background()

	fx.rateLimit.EXPECT().Admit(ctx, "10.0.0.1", int64(1)).Return(service.RateLimitDecision{
		RetryAfterSeconds: 600,
		Message:           "too many order attempts, please try again in about 10 minutes",
	})
	// Device and busy-mode gates are never consulted.

	verdict := svc.Admit(ctx, admitRequest())
	require.False(t, verdict.Allowed)
	require.Equal(t, service.GateRateLimit, verdict.Gate)
	require.Equal(t, "rate_limited", verdict.Reason)
	require.Equal(t, 600, verdict.RetryAfterSeconds)
	require.Equal(t, http.StatusTooManyRequests, verdict.HTTPStatus)
}

func TestAdmissionService_DeviceBlockedIs403(t *testing.T) {
	t.Parallel()
	svc, fx := newAdmission(t)
	ctx := context.Background()

	fx.rateLimit.EXPECT().Admit(ctx, "10.0.0.1", int64(1)).Return(service.RateLimitDecision{Allowed: true})
	fx.devices.EXPECT().Check(ctx, "device-1", "10.0.0.1").Return(service.DeviceDecision{
		Reason:  service.DeviceDenyBlocked,
		Message: "ordering is currently restricted for this device",
	})

	verdict := svc.Admit(ctx, admitRequest())
	require.False(t, verdict.Allowed)
	require.Equal(t, service.GateDevice, verdict.Gate)
	require.Equal(t, http.StatusForbidden, verdict.HTTPStatus)
}

func TestAdmissionService_DeviceActiveOrderIs429(t *testing.T) {
	t.Parallel()
	svc, fx := newAdmission(t)
	ctx := context.Background()

	fx.rateLimit.EXPECT().Admit(ctx, "10.0.0.1", int64(1)).Return(service.RateLimitDecision{Allowed: true})
	fx.devices.EXPECT().Check(ctx, "device-1", "10.0.0.1").Return(service.DeviceDecision{
		Reason:  service.DeviceDenyActiveOrder,
		Message: "please finish your current order first",
	})

	verdict := svc.Admit(ctx, admitRequest())
	require.Equal(t, http.StatusTooManyRequests, verdict.HTTPStatus)
	require.Equal(t, service.DeviceDenyActiveOrder, verdict.Reason)
}

func TestAdmissionService_MissingDeviceIs403(t *testing.T) {
	t.Parallel()
	svc, fx := newAdmission(t)
	ctx := context.Background()

	fx.rateLimit.EXPECT().Admit(ctx, "10.0.0.1", int64(1)).Return(service.RateLimitDecision{Allowed: true})
	fx.devices.EXPECT().Check(ctx, "device-1", "10.0.0.1").Return(service.DeviceDecision{
		Reason: service.DeviceDenyMissingDevice,
	})

	verdict := svc.Admit(ctx, admitRequest())
	require.Equal(t, http.StatusForbidden, verdict.HTTPStatus)
}

func TestAdmissionService_BusyModeIs503(t *testing.T) {
	t.Parallel()
	svc, fx := newAdmission(t)
	ctx := context.Background()

	fx.rateLimit.EXPECT().Admit(ctx, "10.0.0.1", int64(1)).Return(service.RateLimitDecision{Allowed: true})
	fx.devices.EXPECT().Check(ctx, "device-1", "10.0.0.1").Return(service.DeviceDecision{Allowed: true})
	fx.busyMode.EXPECT().Check(ctx, int64(1), "10.0.0.1", "device-1").Return(service.BusyDecision{
		Reason:               service.BusyReasonAuto,
		EstimatedWaitMinutes: 15,
		Message:              "the store is busy, estimated wait is 15 minutes",
	})

	verdict := svc.Admit(ctx, admitRequest())
	require.False(t, verdict.Allowed)
	require.Equal(t, service.GateBusyMode, verdict.Gate)
	require.Equal(t, 15, verdict.EstimatedWaitMinutes)
	require.Equal(t, http.StatusServiceUnavailable, verdict.HTTPStatus)
}

func TestAdmissionService_UnverifiedPropagates(t *testing.T) {
	t.Parallel()
	svc, fx := newAdmission(t)
	ctx := context.Background()

	req := service.AdmissionRequest{TenantID: 1}
	fx.rateLimit.EXPECT().Admit(ctx, "", int64(1)).Return(service.RateLimitDecision{Allowed: true, Unverified: true})
	fx.devices.EXPECT().Check(ctx, "", "").Return(service.DeviceDecision{Allowed: true, Unverified: true})
	fx.busyMode.EXPECT().Check(ctx, int64(1), "", "").Return(service.BusyDecision{Allowed: true})

	verdict := svc.Admit(ctx, req)
	require.True(t, verdict.Allowed)
	require.True(t, verdict.Unverified)
}
