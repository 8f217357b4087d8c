package db

// SchemaSQL is the complete schema for fresh fleet installs.
//
// This is the SINGLE SOURCE OF TRUTH for the database schema. All tests use
// it via GetSchemaSQL(), so repository code referencing a column that does
// not exist here fails immediately with "no such column" at test time.
//
// Keep this in sync with migrations: when adding a column or table, add a
// migration in migrations.go and update SchemaSQL here.
const SchemaSQL = `
-- Key/value substrate for the scheduling core. The reservation set and the
-- holiday calendar are stored as serialized blobs under stable keys
-- (reservations-store, holidays-store, buffer-days).
CREATE TABLE IF NOT EXISTS kv (
	key TEXT PRIMARY KEY,
	value TEXT NOT NULL,
	updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

-- Asset registry (generator fleet units)
CREATE TABLE IF NOT EXISTS assets (
	code TEXT PRIMARY KEY,
	brand TEXT NOT NULL,
	model TEXT NOT NULL,
	serial_number TEXT,
	year INTEGER,
	kva REAL,
	status TEXT NOT NULL CHECK(status IN ('ready', 'rented', 'maintenance', 'repair')) DEFAULT 'ready',
	site TEXT,
	customer TEXT,
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
	updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

-- Maintenance and repair orders
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
`

// schemaVersion is the migration version a fresh install is stamped with.
const schemaVersion = 2

// InitSchema creates the schema on fresh installs and runs pending
// migrations on existing databases.
func InitSchema() error {
	db, err := GetDB()
	if err != nil {
		return err
	}

	var tableCount int
	err = db.QueryRow("SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name='schema_version'").Scan(&tableCount)
	if err != nil {
		return err
	}

	if tableCount == 0 {
		// Fresh install - create the modern schema directly and stamp all
		// migrations as applied so they never run.
		if _, err = db.Exec(SchemaSQL); err != nil {
			return err
		}
		_, err = db.Exec(`
			CREATE TABLE IF NOT EXISTS schema_version (
				version INTEGER PRIMARY KEY,
				applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
			)
		`)
		if err != nil {
			return err
		}
		for i := 1; i <= schemaVersion; i++ {
			if _, err = db.Exec("INSERT INTO schema_version (version) VALUES (?)", i); err != nil {
				return err
			}
		}
		return nil
	}

	return RunMigrations()
}

// GetSchemaSQL returns the authoritative schema SQL for use by tests.
// Tests should use this instead of hardcoding their own schema to prevent drift.
func GetSchemaSQL() string {
	return SchemaSQL
}
