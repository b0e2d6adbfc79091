package sqlite

import "database/sql"

// migrations contains the SQL statements to set up the database schema.
// These run on startup to ensure tables exist.
// Amounts and limits are stored as decimal strings; dates as YYYY-MM-DD text
// so that range predicates compare lexically.
const schema = `
CREATE TABLE IF NOT EXISTS users (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    email TEXT NOT NULL UNIQUE,
    created_at INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS cost_types (
    id TEXT PRIMARY KEY,
    owner_id TEXT NOT NULL,
    name TEXT NOT NULL,
    description TEXT NOT NULL DEFAULT '',
    created_at INTEGER NOT NULL,
    FOREIGN KEY (owner_id) REFERENCES users(id) ON DELETE CASCADE
);

CREATE TABLE IF NOT EXISTS costs (
    id TEXT PRIMARY KEY,
    owner_id TEXT NOT NULL,
    cost_type_id TEXT NOT NULL,
    occurred_on TEXT NOT NULL,
    description TEXT NOT NULL DEFAULT '',
    amount TEXT NOT NULL,
    created_at INTEGER NOT NULL,
    updated_at INTEGER NOT NULL,
    FOREIGN KEY (owner_id) REFERENCES users(id) ON DELETE CASCADE,
    FOREIGN KEY (cost_type_id) REFERENCES cost_types(id) ON DELETE CASCADE
);

CREATE TABLE IF NOT EXISTS cost_limits (
    id TEXT PRIMARY KEY,
    owner_id TEXT NOT NULL,
    cost_type_id TEXT NOT NULL,
    daily_limit TEXT,
    weekly_limit TEXT,
    monthly_limit TEXT,
    quarterly_limit TEXT,
    yearly_limit TEXT,
    created_at INTEGER NOT NULL,
    updated_at INTEGER NOT NULL,
    UNIQUE (owner_id, cost_type_id),
    FOREIGN KEY (owner_id) REFERENCES users(id) ON DELETE CASCADE,
    FOREIGN KEY (cost_type_id) REFERENCES cost_types(id) ON DELETE CASCADE
);

CREATE TABLE IF NOT EXISTS notifications (
    id TEXT PRIMARY KEY,
    owner_id TEXT NOT NULL,
    cost_id TEXT NOT NULL,
    period TEXT NOT NULL,
    recipient TEXT NOT NULL,
    subject TEXT NOT NULL,
    body TEXT NOT NULL,
    status TEXT NOT NULL DEFAULT 'pending',
    attempts INTEGER NOT NULL DEFAULT 0,
    last_error TEXT,
    created_at INTEGER NOT NULL,
    updated_at INTEGER NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_cost_types_owner ON cost_types(owner_id);
CREATE INDEX IF NOT EXISTS idx_costs_owner_date ON costs(owner_id, occurred_on);
CREATE INDEX IF NOT EXISTS idx_costs_owner_type_date ON costs(owner_id, cost_type_id, occurred_on);
CREATE INDEX IF NOT EXISTS idx_notifications_status ON notifications(status, created_at);
`

// runMigrations executes the schema setup.
func runMigrations(db *sql.DB) error {
	_, err := db.Exec(schema)
	return err
}
