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

// failingWindowStore simulates a window store outage.
type failingWindowStore struct{}

func (failingWindowStore) Hit(context.Context, string, time.Time) (service.WindowHit, error) {
	return service.WindowHit{}, errors.New("store down")
}

func (failingWindowStore) Peek(context.Context, string, time.Time) (service.WindowState, error) {
	return service.WindowState{}, errors.New("store down")
}

type rateLimitFixture struct {
	blocks    *repomock.MockBlockRepository
	incidents *mock.MockIncidentService
}

func newRateLimit(t *testing.T) (service.RateLimitService, rateLimitFixture) {
	t.Helper()
	ctrl := gomock.NewController(t)
	fx := rateLimitFixture{
		blocks:    repomock.NewMockBlockRepository(ctrl),
		incidents: mock.NewMockIncidentService(ctrl),
	}
	store := service.NewMemoryWindowStore(service.RateLimitWindow, service.RateLimitMaxAttempts, service.RateLimitCooldown)
	return service.NewRateLimitService(store, fx.blocks, fx.incidents), fx
}

func TestRateLimitService_AllowsWithinLimit(t *testing.T) {
	t.Parallel()
	svc, fx := newRateLimit(t)
	ctx := context.Background()

	fx.blocks.EXPECT().GetByKey(gomock.Any(), "10.0.0.1").Return(nil, nil).AnyTimes()

	for i := 0; i < service.RateLimitMaxAttempts; i++ {
		decision := svc.Admit(ctx, "10.0.0.1", 1)
		require.True(t, decision.Allowed)
		require.False(t, decision.Unverified)
	}
}

func TestRateLimitService_DeniesOverLimit(t *testing.T) {
	t.Parallel()
	svc, fx := newRateLimit(t)
	ctx := context.Background()

	fx.blocks.EXPECT().GetByKey(gomock.Any(), "10.0.0.1").Return(nil, nil).AnyTimes()

	for i := 0; i < service.RateLimitMaxAttempts; i++ {
		require.True(t, svc.Admit(ctx, "10.0.0.1", 1).Allowed)
	}

	fx.incidents.EXPECT().Record(gomock.Any(), gomock.Any()).Do(func(_ context.Context, incident model.Incident) {
		require.Equal(t, model.KindRateLimitExceeded, incident.Kind)
		require.Equal(t, "10.0.0.1", *incident.ClientIdentity)
		require.EqualValues(t, 1, *incident.TenantID)
	})

	decision := svc.Admit(ctx, "10.0.0.1", 1)
	require.False(t, decision.Allowed)
	require.InDelta(t, 600, decision.RetryAfterSeconds, 2)
	require.Contains(t, decision.Message, "too many order attempts")
}

func TestRateLimitService_RepeatDenialsUseBlockedKind(t *testing.T) {
	t.Parallel()
	svc, fx := newRateLimit(t)
	ctx := context.Background()

	fx.blocks.EXPECT().GetByKey(gomock.Any(), "10.0.0.1").Return(nil, nil).AnyTimes()

	for i := 0; i < service.RateLimitMaxAttempts; i++ {
		require.True(t, svc.Admit(ctx, "10.0.0.1", 1).Allowed)
	}

	kinds := make([]model.IncidentKind, 0, 2)
	fx.incidents.EXPECT().Record(gomock.Any(), gomock.Any()).Times(2).Do(func(_ context.Context, incident model.Incident) {
		kinds = append(kinds, incident.Kind)
	})

	require.False(t, svc.Admit(ctx, "10.0.0.1", 1).Allowed)
	require.False(t, svc.Admit(ctx, "10.0.0.1", 1).Allowed)
	require.Equal(t, []model.IncidentKind{model.KindRateLimitExceeded, model.KindRateLimitBlocked}, kinds)
}

func TestRateLimitService_RegistryBlockDeniesAdmission(t *testing.T) {
	t.Parallel()
	svc, fx := newRateLimit(t)
	ctx := context.Background()

	until := time.Now().UTC().Add(30 * time.Minute)
	fx.blocks.EXPECT().GetByKey(gomock.Any(), "10.0.0.1").Return(&model.Block{
		Key:          "10.0.0.1",
		Reason:       "automatic block: repeated abuse",
		BlockedUntil: &until,
	}, nil)
	fx.incidents.EXPECT().Record(gomock.Any(), gomock.Any()).Do(func(_ context.Context, incident model.Incident) {
		require.Equal(t, model.KindRateLimitBlocked, incident.Kind)
		require.Equal(t, "10.0.0.1", *incident.ClientIdentity)
	})

	decision := svc.Admit(ctx, "10.0.0.1", 1)
	require.False(t, decision.Allowed)
	require.InDelta(t, 1800, decision.RetryAfterSeconds, 2)
}

func TestRateLimitService_PermanentRegistryBlockDenies(t *testing.T) {
	t.Parallel()
	svc, fx := newRateLimit(t)
	ctx := context.Background()

	fx.blocks.EXPECT().GetByKey(gomock.Any(), "10.0.0.1").Return(&model.Block{
		Key:    "10.0.0.1",
		Reason: "manual block",
	}, nil)
	fx.incidents.EXPECT().Record(gomock.Any(), gomock.Any())

	decision := svc.Admit(ctx, "10.0.0.1", 1)
	require.False(t, decision.Allowed)
	require.Zero(t, decision.RetryAfterSeconds)
	require.Contains(t, decision.Message, "restricted")
}

func TestRateLimitService_ExpiredRegistryBlockAdmits(t *testing.T) {
	t.Parallel()
	svc, fx := newRateLimit(t)
	ctx := context.Background()

	// Expired block row still present; it must not deny.
	until := time.Now().UTC().Add(-time.Minute)
	fx.blocks.EXPECT().GetByKey(gomock.Any(), "10.0.0.1").Return(&model.Block{
		Key:          "10.0.0.1",
		BlockedUntil: &until,
	}, nil)

	require.True(t, svc.Admit(ctx, "10.0.0.1", 1).Allowed)
}

func TestRateLimitService_RegistryLookupErrorFailsOpen(t *testing.T) {
	t.Parallel()
	svc, fx := newRateLimit(t)
	ctx := context.Background()

	fx.blocks.EXPECT().GetByKey(gomock.Any(), "10.0.0.1").Return(nil, errors.New("db locked"))

	require.True(t, svc.Admit(ctx, "10.0.0.1", 1).Allowed)
}

func TestRateLimitService_TenantsDoNotShareWindows(t *testing.T) {
	t.Parallel()
	svc, fx := newRateLimit(t)
	ctx := context.Background()

	fx.blocks.EXPECT().GetByKey(gomock.Any(), "10.0.0.1").Return(nil, nil).AnyTimes()

	for i := 0; i < service.RateLimitMaxAttempts; i++ {
		require.True(t, svc.Admit(ctx, "10.0.0.1", 1).Allowed)
	}
	fx.incidents.EXPECT().Record(gomock.Any(), gomock.Any())
	require.False(t, svc.Admit(ctx, "10.0.0.1", 1).Allowed)

	// Same client, different tenant: fresh window.
	require.True(t, svc.Admit(ctx, "10.0.0.1", 2).Allowed)
}

func TestRateLimitService_EmptyIdentityFailsOpen(t *testing.T) {
	t.Parallel()
	svc, _ := newRateLimit(t)

	decision := svc.Admit(context.Background(), "  ", 1)
	require.True(t, decision.Allowed)
	require.True(t, decision.Unverified)
}

func TestRateLimitService_StoreErrorFailsOpen(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	blocks := repomock.NewMockBlockRepository(ctrl)
	blocks.EXPECT().GetByKey(gomock.Any(), "10.0.0.1").Return(nil, nil)
	svc := service.NewRateLimitService(failingWindowStore{}, blocks, mock.NewMockIncidentService(ctrl))

	decision := svc.Admit(context.Background(), "10.0.0.1", 1)
	require.True(t, decision.Allowed)
	require.True(t, decision.Unverified)
}

func TestRateLimitService_Status(t *testing.T) {
	t.Parallel()
	svc, fx := newRateLimit(t)
	ctx := context.Background()

	fx.blocks.EXPECT().GetByKey(gomock.Any(), "10.0.0.1").Return(nil, nil).AnyTimes()

	status, err := svc.Status(ctx, "10.0.0.1", 1)
	require.NoError(t, err)
	require.Zero(t, status.Attempts)
	require.Equal(t, service.RateLimitMaxAttempts, status.Limit)
	require.False(t, status.Blocked)
	require.Nil(t, status.BlockedUntil)

	svc.Admit(ctx, "10.0.0.1", 1)
	svc.Admit(ctx, "10.0.0.1", 1)

	status, err = svc.Status(ctx, "10.0.0.1", 1)
	require.NoError(t, err)
	require.Equal(t, 2, status.Attempts)
}

func TestRateLimitService_Status_ReflectsRegistryBlock(t *testing.T) {
	t.Parallel()
	svc, fx := newRateLimit(t)
	ctx := context.Background()

	until := time.Now().UTC().Add(30 * time.Minute)
	fx.blocks.EXPECT().GetByKey(gomock.Any(), "10.0.0.1").Return(&model.Block{
		Key:          "10.0.0.1",
		Reason:       "automatic block: repeated abuse",
		BlockedUntil: &until,
	}, nil)

	status, err := svc.Status(ctx, "10.0.0.1", 1)
	require.NoError(t, err)
	require.True(t, status.Blocked)
	require.NotNil(t, status.BlockedUntil)
	require.WithinDuration(t, until, *status.BlockedUntil, time.Second)
}

func TestRateLimitService_Status_ExpiredRegistryBlockReadsUnblocked(t *testing.T) {
	t.Parallel()
	svc, fx := newRateLimit(t)
	ctx := context.Background()

	until := time.Now().UTC().Add(-time.Minute)
	fx.blocks.EXPECT().GetByKey(gomock.Any(), "10.0.0.1").Return(&model.Block{
		Key:          "10.0.0.1",
		BlockedUntil: &until,
	}, nil)

	status, err := svc.Status(ctx, "10.0.0.1", 1)
	require.NoError(t, err)
	require.False(t, status.Blocked)
	require.Nil(t, status.BlockedUntil)
}

func TestRateLimitService_Status_PermanentRegistryBlock(t *testing.T) {
	t.Parallel()
	svc, fx := newRateLimit(t)
	ctx := context.Background()

	fx.blocks.EXPECT().GetByKey(gomock.Any(), "10.0.0.1").Return(&model.Block{
		Key:    "10.0.0.1",
		Reason: "manual block",
	}, nil)

	status, err := svc.Status(ctx, "10.0.0.1", 1)
	require.NoError(t, err)
	require.True(t, status.Blocked)
	require.Nil(t, status.BlockedUntil)
}

func TestRateLimitService_Status_StoreError(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	blocks := repomock.NewMockBlockRepository(ctrl)
	svc := service.NewRateLimitService(failingWindowStore{}, blocks, mock.NewMockIncidentService(ctrl))

	_, err := svc.Status(context.Background(), "10.0.0.1", 1)
	require.Error(t, err)
}
