package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"shopgate/backend/internal/model"
	"shopgate/backend/internal/repository"
	"shopgate/backend/internal/repository/testutil"
)

func TestTenantConfigRepository_Get_DefaultsWhenMissing(t *testing.T) {
	t.Parallel()
	db := testutil.NewTestDB(t)
	repo := repository.NewTenantConfigRepository(db)

	cfg, err := repo.Get(context.Background(), 42)
	require.NoError(t, err)
	require.NotNil(t, cfg)
	require.EqualValues(t, 42, cfg.TenantID)
	require.False(t, cfg.ManualBusy)
	require.Equal(t, model.DefaultMaxOrdersPerWindow, cfg.MaxOrdersPerWindow)
	require.Equal(t, model.DefaultWindowMinutes, cfg.WindowMinutes)
	require.Nil(t, cfg.BusyModeStartedAt)
}

func TestTenantConfigRepository_Get_Existing(t *testing.T) {
	t.Parallel()
	db := testutil.NewTestDB(t)
	repo := repository.NewTenantConfigRepository(db)

	startedAt := time.Now().UTC().Add(-time.Minute)
	testutil.SeedTenantConfig(t, db, model.TenantAdmissionConfig{
		TenantID:           7,
		ManualBusy:         true,
		MaxOrdersPerWindow: 50,
		WindowMinutes:      30,
		BusyModeStartedAt:  &startedAt,
	})

	cfg, err := repo.Get(context.Background(), 7)
	require.NoError(t, err)
	require.True(t, cfg.ManualBusy)
	require.Equal(t, 50, cfg.MaxOrdersPerWindow)
	require.Equal(t, 30, cfg.WindowMinutes)
	require.NotNil(t, cfg.BusyModeStartedAt)
	require.WithinDuration(t, startedAt, *cfg.BusyModeStartedAt, time.Second)
}

func TestTenantConfigRepository_SetManualBusy_CreatesRow(t *testing.T) {
	t.Parallel()
	db := testutil.NewTestDB(t)
	repo := repository.NewTenantConfigRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.SetManualBusy(ctx, 5, true))

	cfg, err := repo.Get(ctx, 5)
	require.NoError(t, err)
	require.True(t, cfg.ManualBusy)
	// Untouched columns keep their defaults
	require.Equal(t, model.DefaultMaxOrdersPerWindow, cfg.MaxOrdersPerWindow)

	require.NoError(t, repo.SetManualBusy(ctx, 5, false))
	cfg, err = repo.Get(ctx, 5)
	require.NoError(t, err)
	require.False(t, cfg.ManualBusy)
}

func TestTenantConfigRepository_UpdateLimits(t *testing.T) {
	t.Parallel()
	db := testutil.NewTestDB(t)
	repo := repository.NewTenantConfigRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.UpdateLimits(ctx, 5, 100, 60))

	cfg, err := repo.Get(ctx, 5)
	require.NoError(t, err)
	require.Equal(t, 100, cfg.MaxOrdersPerWindow)
	require.Equal(t, 60, cfg.WindowMinutes)
	require.False(t, cfg.ManualBusy)
}

func TestTenantConfigRepository_SetBusyModeStartedAt(t *testing.T) {
	t.Parallel()
	db := testutil.NewTestDB(t)
	repo := repository.NewTenantConfigRepository(db)
	ctx := context.Background()

	startedAt := time.Now().UTC()
	require.NoError(t, repo.SetBusyModeStartedAt(ctx, 5, &startedAt))

	cfg, err := repo.Get(ctx, 5)
	require.NoError(t, err)
	require.NotNil(t, cfg.BusyModeStartedAt)
	require.WithinDuration(t, startedAt, *cfg.BusyModeStartedAt, time.Second)

	require.NoError(t, repo.SetBusyModeStartedAt(ctx, 5, nil))
	cfg, err = repo.Get(ctx, 5)
	require.NoError(t, err)
	require.Nil(t, cfg.BusyModeStartedAt)
}
