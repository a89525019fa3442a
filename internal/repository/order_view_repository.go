//go:generate mockgen -source=$GOFILE -destination=mock/$GOFILE -package=mock
package repository

import (
	"context"
	"database/sql"
	"time"

	"shopgate/backend/internal/model"
)

// OrderViewRepository is the read-only boundary to the external order store.
// The admission gates consume exactly these two queries.
type OrderViewRepository interface {
	FindActiveByDevice(ctx context.Context, deviceIdentity string) (*model.OrderView, error)
	CountActiveForTenantSince(ctx context.Context, tenantID int64, since time.Time) (int, error)
}

type orderViewRepository struct {
	db *sql.DB
}

// NewOrderViewRepository creates a new order projection reader.
func NewOrderViewRepository(db *sql.DB) OrderViewRepository {
	return &orderViewRepository{db: db}
}

func (r *orderViewRepository) FindActiveByDevice(ctx context.Context, deviceIdentity string) (*model.OrderView, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, code, device_identity, tenant_id, status, created_at
		FROM orders
		WHERE device_identity = ? AND status NOT IN (?, ?)
		ORDER BY created_at DESC
		LIMIT 1
	`, deviceIdentity, string(model.OrderStatusCompleted), string(model.OrderStatusCancelled))

	var (
		order     model.OrderView
		device    sql.NullString
		createdAt string
	)
	if err := row.Scan(&order.ID, &order.Code, &device, &order.TenantID, &order.Status, &createdAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	order.DeviceIdentity = stringFromNull(device)
	order.CreatedAt, _ = parseTime(createdAt)
	return &order, nil
}

func (r *orderViewRepository) CountActiveForTenantSince(ctx context.Context, tenantID int64, since time.Time) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM orders
		WHERE tenant_id = ? AND created_at >= ? AND status NOT IN (?, ?)
	`, tenantID, formatTime(since), string(model.OrderStatusCompleted), string(model.OrderStatusCancelled)).Scan(&count)
	if err != nil {
		return 0, err
	}
	return count, nil
}
