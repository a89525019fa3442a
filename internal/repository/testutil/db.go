package testutil

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"testing"
	"time"

	"shopgate/backend/internal/db"
	"shopgate/backend/internal/model"
	"shopgate/backend/pkg/snowflake"

	_ "modernc.org/sqlite"
)

// snowflakeOnce guards the process-wide snowflake node across parallel tests.
var snowflakeOnce sync.Once

// NewTestDB opens an in-memory SQLite database and runs all migrations.
func NewTestDB(t *testing.T) *sql.DB {
	t.Helper()

	snowflakeOnce.Do(func() {
		if err := snowflake.Init(0); err != nil {
			// t.Fatalf is unusable inside sync.Once
			panic("failed to initialize snowflake: " + err.Error())
		}
	})

	// Shared-cache mode so concurrent connections see the same memory DB;
	// unique name per test to avoid cross-test bleed.
	dbName := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared&_pragma=foreign_keys(1)", t.Name(), time.Now().UnixNano())
	database, err := sql.Open("sqlite", dbName)
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := db.Migrate(database); err != nil {
		database.Close()
		t.Fatalf("failed to migrate test database: %v", err)
	}

	t.Cleanup(func() {
		database.Close()
	})

	return database
}

func ptrVal[T any](p *T) interface{} {
	if p == nil {
		return nil
	}
	return *p
}

func timeVal(t *time.Time) interface{} {
	if t == nil {
		return nil
	}
	return t.UTC().Format(time.RFC3339Nano)
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// SeedOrder inserts an order projection row and returns its ID.
func SeedOrder(t *testing.T, db *sql.DB, order model.OrderView) int64 {
	t.Helper()

	if order.ID == 0 {
		order.ID = snowflake.NextID()
	}
	if order.Code == "" {
		order.Code = fmt.Sprintf("ORD-%d", order.ID)
	}
	if order.Status == "" {
		order.Status = model.OrderStatusPending
	}
	createdAt := order.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}
	now := time.Now().UTC().Format(time.RFC3339Nano)

	_, err := db.ExecContext(
		context.Background(),
		`INSERT INTO orders (id, code, device_identity, tenant_id, status, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		order.ID, order.Code, ptrVal(order.DeviceIdentity), order.TenantID, string(order.Status),
		createdAt.UTC().Format(time.RFC3339Nano), now,
	)
	if err != nil {
		t.Fatalf("failed to seed order: %v", err)
	}

	return order.ID
}

// SetOrderStatus updates a seeded order's status.
func SetOrderStatus(t *testing.T, db *sql.DB, orderID int64, status model.OrderStatus) {
	t.Helper()

	_, err := db.ExecContext(
		context.Background(),
		`UPDATE orders SET status = ?, updated_at = ? WHERE id = ?`,
		string(status), time.Now().UTC().Format(time.RFC3339Nano), orderID,
	)
	if err != nil {
		t.Fatalf("failed to update order status: %v", err)
	}
}

// SeedIncident inserts an incident row and returns its ID.
func SeedIncident(t *testing.T, db *sql.DB, incident model.Incident) int64 {
	t.Helper()

	if incident.ID == 0 {
		incident.ID = snowflake.NextID()
	}
	occurredAt := incident.OccurredAt
	if occurredAt.IsZero() {
		occurredAt = time.Now().UTC()
	}

	_, err := db.ExecContext(
		context.Background(),
		`INSERT INTO incidents (id, client_identity, device_identity, tenant_id, kind, details, occurred_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		incident.ID, ptrVal(incident.ClientIdentity), ptrVal(incident.DeviceIdentity),
		ptrVal(incident.TenantID), string(incident.Kind), ptrVal(incident.Details),
		occurredAt.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		t.Fatalf("failed to seed incident: %v", err)
	}

	return incident.ID
}

// SeedClientBlock inserts a client block row.
func SeedClientBlock(t *testing.T, db *sql.DB, key string, reason string, blockedUntil *time.Time) {
	t.Helper()
	seedBlock(t, db, "client_blocks", key, reason, blockedUntil)
}

// SeedDeviceBlock inserts a device block row.
func SeedDeviceBlock(t *testing.T, db *sql.DB, key string, reason string, blockedUntil *time.Time) {
	t.Helper()
	seedBlock(t, db, "device_blocks", key, reason, blockedUntil)
}

func seedBlock(t *testing.T, db *sql.DB, table string, key string, reason string, blockedUntil *time.Time) {
	t.Helper()

	now := time.Now().UTC().Format(time.RFC3339Nano)
	_, err := db.ExecContext(
		context.Background(),
		fmt.Sprintf(`INSERT INTO %s (id, key, reason, blocked_until, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?)`, table),
		snowflake.NextID(), key, reason, timeVal(blockedUntil), now, now,
	)
	if err != nil {
		t.Fatalf("failed to seed block: %v", err)
	}
}

// SeedTenantConfig inserts a tenant admission config row.
func SeedTenantConfig(t *testing.T, db *sql.DB, cfg model.TenantAdmissionConfig) {
	t.Helper()

	if cfg.MaxOrdersPerWindow == 0 {
		cfg.MaxOrdersPerWindow = model.DefaultMaxOrdersPerWindow
	}
	if cfg.WindowMinutes == 0 {
		cfg.WindowMinutes = model.DefaultWindowMinutes
	}
	now := time.Now().UTC().Format(time.RFC3339Nano)

	_, err := db.ExecContext(
		context.Background(),
		`INSERT INTO tenant_admission_configs (tenant_id, manual_busy, max_orders_per_window, window_minutes, busy_mode_started_at, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		cfg.TenantID, boolToInt(cfg.ManualBusy), cfg.MaxOrdersPerWindow, cfg.WindowMinutes,
		timeVal(cfg.BusyModeStartedAt), now, now,
	)
	if err != nil {
		t.Fatalf("failed to seed tenant config: %v", err)
	}
}
