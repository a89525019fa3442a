package db

import (
	"database/sql"
	"fmt"
)

// Base schema - uses Snowflake IDs (no AUTOINCREMENT)
const baseSchema = `
CREATE TABLE IF NOT EXISTS orders (
  id INTEGER PRIMARY KEY,
  code TEXT NOT NULL UNIQUE,
  device_identity TEXT,
  tenant_id INTEGER NOT NULL,
  status TEXT NOT NULL DEFAULT 'pending',
  created_at TEXT NOT NULL,
  updated_at TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_orders_device_status ON orders(device_identity, status);
CREATE INDEX IF NOT EXISTS idx_orders_tenant_created ON orders(tenant_id, created_at);

CREATE TABLE IF NOT EXISTS tenant_admission_configs (
  tenant_id INTEGER PRIMARY KEY,
  manual_busy INTEGER NOT NULL DEFAULT 0,
  max_orders_per_window INTEGER NOT NULL DEFAULT 20,
  window_minutes INTEGER NOT NULL DEFAULT 15,
  busy_mode_started_at TEXT,
  created_at TEXT NOT NULL,
  updated_at TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS incidents (
  id INTEGER PRIMARY KEY,
  client_identity TEXT,
  device_identity TEXT,
  tenant_id INTEGER,
  kind TEXT NOT NULL,
  details TEXT,
  occurred_at TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_incidents_occurred_kind ON incidents(occurred_at, kind);
CREATE INDEX IF NOT EXISTS idx_incidents_client ON incidents(client_identity);
CREATE INDEX IF NOT EXISTS idx_incidents_device ON incidents(device_identity);

CREATE TABLE IF NOT EXISTS client_blocks (
  id INTEGER PRIMARY KEY,
  key TEXT NOT NULL UNIQUE,
  reason TEXT NOT NULL DEFAULT '',
  blocked_until TEXT,
  created_at TEXT NOT NULL,
  updated_at TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS device_blocks (
  id INTEGER PRIMARY KEY,
  key TEXT NOT NULL UNIQUE,
  reason TEXT NOT NULL DEFAULT '',
  blocked_until TEXT,
  created_at TEXT NOT NULL,
  updated_at TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_client_blocks_until ON client_blocks(blocked_until);
CREATE INDEX IF NOT EXISTS idx_device_blocks_until ON device_blocks(blocked_until);
`

func Migrate(db *sql.DB) error {
	if _, err := db.Exec(baseSchema); err != nil {
		return fmt.Errorf("migrate base schema: %w", err)
	}

	if err := runMigrations(db); err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}

	return nil
}

func runMigrations(db *sql.DB) error {
	// Migration 1: Add tenant_id index on incidents for per-tenant filtering
	if _, err := db.Exec(`CREATE INDEX IF NOT EXISTS idx_incidents_tenant ON incidents(tenant_id)`); err != nil {
		return fmt.Errorf("create idx_incidents_tenant: %w", err)
	}

	// Migration 2: Backfill reason for legacy block rows created before the
	// column carried a NOT NULL default
	if _, err := db.Exec(`UPDATE client_blocks SET reason = '' WHERE reason IS NULL`); err != nil {
		return fmt.Errorf("backfill client_blocks reason: %w", err)
	}
	if _, err := db.Exec(`UPDATE device_blocks SET reason = '' WHERE reason IS NULL`); err != nil {
		return fmt.Errorf("backfill device_blocks reason: %w", err)
	}

	return nil
}
