package db

import (
	"database/sql"
	"fmt"
	"time"
)

// RunRecord represents one completed import run.
type RunRecord struct {
	ID           int64
	RunID        string
	InputFile    string
	Account      string
	Transactions int
	Entries      int
	RulesAdded   int
	LedgerFile   string
	RecordedAt   time.Time
}

// RunHistory manages run history operations.
type RunHistory struct {
	conn *Connection
}

// NewRunHistory creates a new RunHistory instance.
func NewRunHistory(conn *Connection) *RunHistory {
	return &RunHistory{conn: conn}
}

// RecordRun records a completed run.
func (h *RunHistory) RecordRun(record RunRecord) error {
	query := `
		INSERT INTO run_history (run_id, input_file, account, transactions, entries, rules_added, ledger_file)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	_, err := h.conn.Exec(query,
		record.RunID,
		record.InputFile,
		record.Account,
		record.Transactions,
		record.Entries,
		record.RulesAdded,
		record.LedgerFile,
	)

	if err != nil {
		return fmt.Errorf("failed to record run: %w", err)
	}

	return nil
}

// GetRecentRuns retrieves the most recent runs, newest first.
func (h *RunHistory) GetRecentRuns(limit int) ([]RunRecord, error) {
	query := `
		SELECT id, run_id, input_file, account, transactions, entries, rules_added, ledger_file, recorded_at
		FROM run_history
		ORDER BY recorded_at DESC, id DESC
		LIMIT ?
	`

	rows, err := h.conn.Query(query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get recent runs: %w", err)
	}
	defer rows.Close()

	var records []RunRecord
	for rows.Next() {
		var record RunRecord

		if err := rows.Scan(
			&record.ID,
			&record.RunID,
			&record.InputFile,
			&record.Account,
			&record.Transactions,
			&record.Entries,
			&record.RulesAdded,
			&record.LedgerFile,
			&record.RecordedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan run record: %w", err)
		}

		records = append(records, record)
	}

	return records, nil
}

// Stats represents run history statistics.
type Stats struct {
	TotalRuns       int
	TotalEntries    int
	TotalRulesAdded int
	LastRun         sql.NullString
}

// GetStats retrieves run history statistics.
func (h *RunHistory) GetStats() (*Stats, error) {
	var stats Stats

	err := h.conn.QueryRow(`SELECT COUNT(*) FROM run_history`).Scan(&stats.TotalRuns)
	if err != nil {
		return nil, fmt.Errorf("failed to get run count: %w", err)
	}

	err = h.conn.QueryRow(`SELECT COALESCE(SUM(entries), 0) FROM run_history`).Scan(&stats.TotalEntries)
	if err != nil {
		return nil, fmt.Errorf("failed to get entry count: %w", err)
	}

	err = h.conn.QueryRow(`SELECT COALESCE(SUM(rules_added), 0) FROM run_history`).Scan(&stats.TotalRulesAdded)
	if err != nil {
		return nil, fmt.Errorf("failed to get rule count: %w", err)
	}

	err = h.conn.QueryRow(`SELECT MAX(recorded_at) FROM run_history`).Scan(&stats.LastRun)
	if err != nil && err != sql.ErrNoRows {
		return nil, fmt.Errorf("failed to get last run time: %w", err)
	}

	return &stats, nil
}
