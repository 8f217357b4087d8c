package db

import (
	"database/sql"
	"fmt"
)

// Migration represents a database migration
type Migration struct {
	Version int
	Name    string
	Up      func(*sql.DB) error
}

// migrations is the list of all migrations in order
var migrations = []Migration{
	{
		Version: 1,
		Name:    "initial_schema",
		Up:      migrationV1,
	},
	{
		Version: 2,
		Name:    "add_serial_number_to_assets",
		Up:      migrationV2,
	},
}

// RunMigrations applies pending migrations in order.
func RunMigrations() error {
	db, err := GetDB()
	if err != nil {
		return fmt.Errorf("failed to get database: %w", err)
	}

	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_version (
			version INTEGER PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("failed to create schema_version table: %w", err)
	}

	var currentVersion int
	err = db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_version").Scan(&currentVersion)
	if err != nil {
		return fmt.Errorf("failed to get current schema version: %w", err)
	}

	for _, migration := range migrations {
		if migration.Version <= currentVersion {
			continue
		}

		if err := migration.Up(db); err != nil {
			return fmt.Errorf("migration %d (%s) failed: %w", migration.Version, migration.Name, err)
		}

		_, err = db.Exec("INSERT INTO schema_version (version) VALUES (?)", migration.Version)
		if err != nil {
			return fmt.Errorf("failed to record migration %d: %w", migration.Version, err)
		}
	}

	return nil
}

// migrationV1 creates the original kv/assets/work_orders tables. The assets
// table is created without serial_number; V2 adds it.
func migrationV1(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS kv (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);

		CREATE TABLE IF NOT EXISTS assets (
			code TEXT PRIMARY KEY,
			brand TEXT NOT NULL,
			model TEXT NOT NULL,
			year INTEGER,
			kva REAL,
			status TEXT NOT NULL CHECK(status IN ('ready', 'rented', 'maintenance', 'repair')) DEFAULT 'ready',
			site TEXT,
			customer TEXT,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);

		CREATE TABLE IF NOT EXISTS work_orders (
			id TEXT PRIMARY KEY,
			asset_code TEXT NOT NULL,
			type TEXT NOT NULL CHECK(type IN ('PM', 'CM')),
			priority TEXT NOT NULL CHECK(priority IN ('1', '2', '3')),
			eta TEXT NOT NULL,
			description TEXT,
			status TEXT NOT NULL CHECK(status IN ('open', 'done')) DEFAULT 'open',
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			completed_at DATETIME
		);

		CREATE INDEX IF NOT EXISTS idx_work_orders_asset ON work_orders(asset_code);
		CREATE INDEX IF NOT EXISTS idx_work_orders_status ON work_orders(status);
	`)
	if err != nil {
		return fmt.Errorf("failed to create initial schema: %w", err)
	}
	return nil
}

// migrationV2 adds the serial_number column to assets.
func migrationV2(db *sql.DB) error {
	var count int
	err := db.QueryRow("SELECT COUNT(*) FROM pragma_table_info('assets') WHERE name = 'serial_number'").Scan(&count)
	if err != nil {
		return fmt.Errorf("failed to inspect assets table: %w", err)
	}
	if count > 0 {
		return nil
	}

	_, err = db.Exec("ALTER TABLE assets ADD COLUMN serial_number TEXT")
	if err != nil {
		return fmt.Errorf("failed to add serial_number column: %w", err)
	}
	return nil
}
