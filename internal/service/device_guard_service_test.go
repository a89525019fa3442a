package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"shopgate/backend/internal/model"
	repomock "shopgate/backend/internal/repository/mock"
	"shopgate/backend/internal/service"
	"shopgate/backend/internal/service/mock"
)

type deviceGuardFixture struct {
	blocks    *repomock.MockBlockRepository
	orders    *repomock.MockOrderViewRepository
	incidents *mock.MockIncidentService
}

func newDeviceGuard(t *testing.T, requireDeviceID bool) (service.DeviceGuardService, deviceGuardFixture) {
	t.Helper()
	ctrl := gomock.NewController(t)
	fx := deviceGuardFixture{
		blocks:    repomock.NewMockBlockRepository(ctrl),
		orders:    repomock.NewMockOrderViewRepository(ctrl),
		incidents: mock.NewMockIncidentService(ctrl),
	}
	return service.NewDeviceGuardService(fx.blocks, fx.orders, fx.incidents, requireDeviceID), fx
}

func TestDeviceGuardService_AllowsCleanDevice(t *testing.T) {
	t.Parallel()
	svc, fx := newDeviceGuard(t, false)
	ctx := context.Background()

	fx.blocks.EXPECT().GetByKey(ctx, "device-1").Return(nil, nil)
	fx.orders.EXPECT().FindActiveByDevice(ctx, "device-1").Return(nil, nil)

	decision := svc.Check(ctx, "device-1", "10.0.0.1")
	require.True(t, decision.Allowed)
	require.False(t, decision.Unverified)
}

func TestDeviceGuardService_DeniesBlockedDevice(t *testing.T) {
	t.Parallel()
	svc, fx := newDeviceGuard(t, false)
	ctx := context.Background()

	until := time.Now().UTC().Add(20 * time.Minute)
	fx.blocks.EXPECT().GetByKey(ctx, "device-1").Return(&model.Block{
		Key:          "device-1",
		Reason:       "abuse",
		BlockedUntil: &until,
	}, nil)
	fx.incidents.EXPECT().Record(gomock.Any(), gomock.Any()).Do(func(_ context.Context, incident model.Incident) {
		require.Equal(t, model.KindDeviceBlockedAttempt, incident.Kind)
		require.Equal(t, "device-1", *incident.DeviceIdentity)
		require.Equal(t, "10.0.0.1", *incident.ClientIdentity)
	})

	decision := svc.Check(ctx, "device-1", "10.0.0.1")
	require.False(t, decision.Allowed)
	require.Equal(t, service.DeviceDenyBlocked, decision.Reason)
}

func TestDeviceGuardService_LazilyExpiredBlockAllows(t *testing.T) {
	t.Parallel()
	svc, fx := newDeviceGuard(t, false)
	ctx := context.Background()

	// Expired block row still present; it must not deny.
	until := time.Now().UTC().Add(-time.Minute)
	fx.blocks.EXPECT().GetByKey(ctx, "device-1").Return(&model.Block{
		Key:          "device-1",
		BlockedUntil: &until,
	}, nil)
	fx.orders.EXPECT().FindActiveByDevice(ctx, "device-1").Return(nil, nil)

	decision := svc.Check(ctx, "device-1", "10.0.0.1")
	require.True(t, decision.Allowed)
}

func TestDeviceGuardService_DeniesActiveOrder(t *testing.T) {
	t.Parallel()
	svc, fx := newDeviceGuard(t, false)
	ctx := context.Background()

	fx.blocks.EXPECT().GetByKey(ctx, "device-1").Return(nil, nil)
	fx.orders.EXPECT().FindActiveByDevice(ctx, "device-1").Return(&model.OrderView{
		ID:        101,
		Code:      "ORD-101",
		TenantID:  3,
		Status:    model.OrderStatusPreparing,
		CreatedAt: time.Now().UTC().Add(-5 * time.Minute),
	}, nil)
	fx.incidents.EXPECT().Record(gomock.Any(), gomock.Any()).Do(func(_ context.Context, incident model.Incident) {
		require.Equal(t, model.KindDeviceSpamAttempt, incident.Kind)
		require.EqualValues(t, 3, *incident.TenantID)
		// The client identity rides along so repeated device abuse also
		// counts toward the client's escalation threshold.
		require.Equal(t, "10.0.0.1", *incident.ClientIdentity)
	})

	decision := svc.Check(ctx, "device-1", "10.0.0.1")
	require.False(t, decision.Allowed)
	require.Equal(t, service.DeviceDenyActiveOrder, decision.Reason)
	require.Contains(t, decision.Message, "current order")
}

func TestDeviceGuardService_MissingDevice_DefaultAllows(t *testing.T) {
	t.Parallel()
	svc, _ := newDeviceGuard(t, false)

	decision := svc.Check(context.Background(), "  ", "10.0.0.1")
	require.True(t, decision.Allowed)
	require.True(t, decision.Unverified)
}

func TestDeviceGuardService_MissingDevice_RequiredDenies(t *testing.T) {
	t.Parallel()
	svc, _ := newDeviceGuard(t, true)

	decision := svc.Check(context.Background(), "", "10.0.0.1")
	require.False(t, decision.Allowed)
	require.Equal(t, service.DeviceDenyMissingDevice, decision.Reason)
}

func TestDeviceGuardService_BlockLookupErrorFailsOpen(t *testing.T) {
	t.Parallel()
	svc, fx := newDeviceGuard(t, false)
	ctx := context.Background()

	fx.blocks.EXPECT().GetByKey(ctx, "device-1").Return(nil, errors.New("db locked"))
	fx.incidents.EXPECT().Record(gomock.Any(), gomock.Any()).Do(func(_ context.Context, incident model.Incident) {
		require.Equal(t, model.KindDeviceCheckError, incident.Kind)
	})

	decision := svc.Check(ctx, "device-1", "10.0.0.1")
	require.True(t, decision.Allowed)
}

func TestDeviceGuardService_OrderLookupErrorFailsOpen(t *testing.T) {
	t.Parallel()
	svc, fx := newDeviceGuard(t, false)
	ctx := context.Background()

	fx.blocks.EXPECT().GetByKey(ctx, "device-1").Return(nil, nil)
	fx.orders.EXPECT().FindActiveByDevice(ctx, "device-1").Return(nil, errors.New("db locked"))
	fx.incidents.EXPECT().Record(gomock.Any(), gomock.Any()).Do(func(_ context.Context, incident model.Incident) {
		require.Equal(t, model.KindDeviceCheckError, incident.Kind)
	})

	decision := svc.Check(ctx, "device-1", "10.0.0.1")
	require.True(t, decision.Allowed)
}

func TestDeviceGuardService_Status(t *testing.T) {
	t.Parallel()
	svc, fx := newDeviceGuard(t, false)
	ctx := context.Background()

	until := time.Now().UTC().Add(30 * time.Minute)
	fx.blocks.EXPECT().GetByKey(ctx, "device-1").Return(&model.Block{
		Key:          "device-1",
		BlockedUntil: &until,
	}, nil)
	fx.orders.EXPECT().FindActiveByDevice(ctx, "device-1").Return(&model.OrderView{Code: "ORD-7"}, nil)

	status, err := svc.Status(ctx, "device-1")
	require.NoError(t, err)
	require.True(t, status.Blocked)
	require.NotNil(t, status.BlockedUntil)
	require.Equal(t, "ORD-7", *status.ActiveOrderCode)
}

func TestDeviceGuardService_Status_EmptyIdentity(t *testing.T) {
	t.Parallel()
	svc, _ := newDeviceGuard(t, false)

	status, err := svc.Status(context.Background(), "")
	require.NoError(t, err)
	require.False(t, status.Blocked)
	require.Nil(t, status.ActiveOrderCode)
}

func TestDeviceGuardService_Status_Error(t *testing.T) {
	t.Parallel()
	svc, fx := newDeviceGuard(t, false)
	ctx := context.Background()

	fx.blocks.EXPECT().GetByKey(ctx, "device-1").Return(nil, errors.New("db locked"))

	_, err := svc.Status(ctx, "device-1")
	require.Error(t, err)
}
