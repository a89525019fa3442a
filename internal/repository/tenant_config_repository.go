//go:generate mockgen -source=$GOFILE -destination=mock/$GOFILE -package=mock
package repository

import (
	"context"
	"database/sql"
	"time"

	"shopgate/backend/internal/model"
)

// TenantConfigRepository stores per-tenant admission settings. Get returns
// defaults for tenants that never saved a row.
type TenantConfigRepository interface {
	Get(ctx context.Context, tenantID int64) (*model.TenantAdmissionConfig, error)
	SetManualBusy(ctx context.Context, tenantID int64, busy bool) error
	UpdateLimits(ctx context.Context, tenantID int64, maxOrdersPerWindow int, windowMinutes int) error
	SetBusyModeStartedAt(ctx context.Context, tenantID int64, startedAt *time.Time) error
}

type tenantConfigRepository struct {
	db *sql.DB
}

// NewTenantConfigRepository creates a new tenant admission config repository.
func NewTenantConfigRepository(db *sql.DB) TenantConfigRepository {
	return &tenantConfigRepository{db: db}
}

func (r *tenantConfigRepository) Get(ctx context.Context, tenantID int64) (*model.TenantAdmissionConfig, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT tenant_id, manual_busy, max_orders_per_window, window_minutes, busy_mode_started_at, created_at, updated_at
		FROM tenant_admission_configs WHERE tenant_id = ?
	`, tenantID)

	var (
		cfg         model.TenantAdmissionConfig
		manualBusy  int
		busyStarted sql.NullString
		createdAt   string
		updatedAt   string
	)
	err := row.Scan(&cfg.TenantID, &manualBusy, &cfg.MaxOrdersPerWindow, &cfg.WindowMinutes, &busyStarted, &createdAt, &updatedAt)
	if err == sql.ErrNoRows {
		return &model.TenantAdmissionConfig{
			TenantID:           tenantID,
			MaxOrdersPerWindow: model.DefaultMaxOrdersPerWindow,
			WindowMinutes:      model.DefaultWindowMinutes,
		}, nil
	}
	if err != nil {
		return nil, err
	}

	cfg.ManualBusy = manualBusy != 0
	cfg.BusyModeStartedAt = timeFromNull(busyStarted)
	cfg.CreatedAt, _ = parseTime(createdAt)
	cfg.UpdatedAt, _ = parseTime(updatedAt)
	return &cfg, nil
}

func (r *tenantConfigRepository) SetManualBusy(ctx context.Context, tenantID int64, busy bool) error {
	busyVal := 0
	if busy {
		busyVal = 1
	}
	return r.upsert(ctx, tenantID, `manual_busy = ?`, busyVal)
}

func (r *tenantConfigRepository) UpdateLimits(ctx context.Context, tenantID int64, maxOrdersPerWindow int, windowMinutes int) error {
	now := formatTime(time.Now())
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO tenant_admission_configs (tenant_id, max_orders_per_window, window_minutes, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(tenant_id) DO UPDATE SET
			max_orders_per_window = excluded.max_orders_per_window,
			window_minutes = excluded.window_minutes,
			updated_at = excluded.updated_at
	`, tenantID, maxOrdersPerWindow, windowMinutes, now, now)
	return err
}

func (r *tenantConfigRepository) SetBusyModeStartedAt(ctx context.Context, tenantID int64, startedAt *time.Time) error {
	return r.upsert(ctx, tenantID, `busy_mode_started_at = ?`, nullableTime(startedAt))
}

// upsert ensures the tenant row exists with defaults, then applies a single
// column assignment.
func (r *tenantConfigRepository) upsert(ctx context.Context, tenantID int64, assignment string, value interface{}) error {
	now := formatTime(time.Now())
	if _, err := r.db.ExecContext(ctx, `
		INSERT INTO tenant_admission_configs (tenant_id, created_at, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT(tenant_id) DO NOTHING
	`, tenantID, now, now); err != nil {
		return err
	}

	_, err := r.db.ExecContext(ctx,
		`UPDATE tenant_admission_configs SET `+assignment+`, updated_at = ? WHERE tenant_id = ?`,
		value, now, tenantID)
	return err
}
