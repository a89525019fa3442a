//go:generate mockgen -source=$GOFILE -destination=mock/$GOFILE -package=mock
package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"shopgate/backend/internal/model"
	"shopgate/backend/pkg/snowflake"
)

// BlockRepository stores active blocks for one identity flavor. The client
// and device registries share this interface over separate tables.
type BlockRepository interface {
	Upsert(ctx context.Context, key string, reason string, blockedUntil *time.Time) (*model.Block, error)
	GetByKey(ctx context.Context, key string) (*model.Block, error)
	Delete(ctx context.Context, key string) error
	ListActive(ctx context.Context, now time.Time) ([]model.Block, error)
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
	CountActive(ctx context.Context, now time.Time) (int, error)
}

type blockRepository struct {
	db    *sql.DB
	table string
}

// NewClientBlockRepository creates the block registry keyed by client identity.
func NewClientBlockRepository(db *sql.DB) BlockRepository {
	return &blockRepository{db: db, table: "client_blocks"}
}

// NewDeviceBlockRepository creates the block registry keyed by device identity.
func NewDeviceBlockRepository(db *sql.DB) BlockRepository {
	return &blockRepository{db: db, table: "device_blocks"}
}

func (r *blockRepository) Upsert(ctx context.Context, key string, reason string, blockedUntil *time.Time) (*model.Block, error) {
	id := snowflake.NextID()
	now := time.Now().UTC()
	nowStr := formatTime(now)

	query := fmt.Sprintf(`
		INSERT INTO %s (id, key, reason, blocked_until, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET
			reason = excluded.reason,
			blocked_until = excluded.blocked_until,
			updated_at = excluded.updated_at
	`, r.table)

	_, err := r.db.ExecContext(ctx, query, id, key, reason, nullableTime(blockedUntil), nowStr, nowStr)
	if err != nil {
		return nil, err
	}

	return r.GetByKey(ctx, key)
}

func (r *blockRepository) GetByKey(ctx context.Context, key string) (*model.Block, error) {
	query := fmt.Sprintf(`
		SELECT id, key, reason, blocked_until, created_at, updated_at FROM %s WHERE key = ?
	`, r.table)
	row := r.db.QueryRowContext(ctx, query, key)

	var (
		block        model.Block
		blockedUntil sql.NullString
		createdAt    string
		updatedAt    string
	)
	if err := row.Scan(&block.ID, &block.Key, &block.Reason, &blockedUntil, &createdAt, &updatedAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	block.BlockedUntil = timeFromNull(blockedUntil)
	block.CreatedAt, _ = parseTime(createdAt)
	block.UpdatedAt, _ = parseTime(updatedAt)
	return &block, nil
}

func (r *blockRepository) Delete(ctx context.Context, key string) error {
	result, err := r.db.ExecContext(ctx, fmt.Sprintf(`DELETE FROM %s WHERE key = ?`, r.table), key)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (r *blockRepository) ListActive(ctx context.Context, now time.Time) ([]model.Block, error) {
	query := fmt.Sprintf(`
		SELECT id, key, reason, blocked_until, created_at, updated_at FROM %s
		WHERE blocked_until IS NULL OR blocked_until > ?
		ORDER BY updated_at DESC
	`, r.table)

	rows, err := r.db.QueryContext(ctx, query, formatTime(now))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var blocks []model.Block
	for rows.Next() {
		var (
			block        model.Block
			blockedUntil sql.NullString
			createdAt    string
			updatedAt    string
		)
		if err := rows.Scan(&block.ID, &block.Key, &block.Reason, &blockedUntil, &createdAt, &updatedAt); err != nil {
			return nil, err
		}
		block.BlockedUntil = timeFromNull(blockedUntil)
		block.CreatedAt, _ = parseTime(createdAt)
		block.UpdatedAt, _ = parseTime(updatedAt)
		blocks = append(blocks, block)
	}
	return blocks, rows.Err()
}

func (r *blockRepository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	query := fmt.Sprintf(`DELETE FROM %s WHERE blocked_until IS NOT NULL AND blocked_until <= ?`, r.table)
	result, err := r.db.ExecContext(ctx, query, formatTime(now))
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

func (r *blockRepository) CountActive(ctx context.Context, now time.Time) (int, error) {
	query := fmt.Sprintf(`
		SELECT COUNT(*) FROM %s WHERE blocked_until IS NULL OR blocked_until > ?
	`, r.table)

	var count int
	if err := r.db.QueryRowContext(ctx, query, formatTime(now)).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}
