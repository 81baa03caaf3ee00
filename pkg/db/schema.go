// Package db provides SQLite storage for the run history.
package db

// Schema defines the SQL statements to create database tables.
const Schema = `
-- Run history table
-- One row per completed import run
CREATE TABLE IF NOT EXISTS run_history (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    run_id TEXT NOT NULL UNIQUE,       -- UUID assigned per run
    input_file TEXT NOT NULL,          -- Statement file that was imported
    account TEXT NOT NULL,             -- Supplied account name
    transactions INTEGER NOT NULL,     -- Rows read from the statement
    entries INTEGER NOT NULL,          -- Ledger entries written
    rules_added INTEGER NOT NULL,      -- Net new rules persisted
    ledger_file TEXT NOT NULL,         -- Output ledger path
    recorded_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_run_history_recorded
    ON run_history(recorded_at);
`

// InitializeSchema initializes the database schema.
// It creates all tables if they don't exist.
func InitializeSchema(conn *Connection) error {
	if _, err := conn.Exec(Schema); err != nil {
		return err
	}
	return nil
}
