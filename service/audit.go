package service

import (
	"database/sql"
	"log/slog"
	"time"

	"github.com/Abhishekjeyakumar/Contract-Analysis-and-Risk-Assessment-Bot/config"
	"github.com/Abhishekjeyakumar/Contract-Analysis-and-Risk-Assessment-Bot/model"
	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
)

// Auditor appends one record per analysis run. Writes are best effort:
// a failed write is logged and the computed analysis is still returned
// to the caller. Each record is keyed by a fresh UUID, so concurrent
// runs can never overwrite each other.
type Auditor struct {
	db *sql.DB
}

// AuditEntry is a stored audit record with its run key.
type AuditEntry struct {
	RunID string `json:"run_id"`
	model.AuditRecord
}

// NewAuditor opens (or creates) the audit database. On failure it
// returns a no-op auditor rather than an error; auditing must never
// block analysis.
func NewAuditor(cfg *config.AuditConfig) *Auditor {
	db, err := sql.Open("sqlite3", cfg.Path)
	if err != nil {
		slog.Warn("failed to open audit database, auditing disabled", "path", cfg.Path, "error", err)
		return &Auditor{}
	}

	_, err = db.Exec(`CREATE TABLE IF NOT EXISTS audit_log (
		run_id TEXT PRIMARY KEY,
		file TEXT NOT NULL,
		contract_type TEXT NOT NULL,
		risk TEXT NOT NULL,
		timestamp TEXT NOT NULL
	)`)
	if err != nil {
		slog.Warn("failed to create audit table, auditing disabled", "error", err)
		db.Close()
		return &Auditor{}
	}

	return &Auditor{db: db}
}

// Record appends one audit record and returns its run key. The empty
// string means the write was skipped or failed.
func (a *Auditor) Record(record model.AuditRecord) string {
	if a.db == nil {
		return ""
	}

	if record.Timestamp == "" {
		record.Timestamp = time.Now().Format(time.RFC3339)
	}

	runID := uuid.New().String()
	_, err := a.db.Exec(
		"INSERT INTO audit_log (run_id, file, contract_type, risk, timestamp) VALUES (?, ?, ?, ?, ?)",
		runID, record.File, record.ContractType, record.Risk, record.Timestamp,
	)
	if err != nil {
		slog.Warn("failed to write audit record", "file", record.File, "error", err)
		return ""
	}
	return runID
}

// Recent returns the newest audit entries, most recent first.
func (a *Auditor) Recent(limit int) ([]AuditEntry, error) {
	if a.db == nil {
		return nil, nil
	}

	rows, err := a.db.Query(
		"SELECT run_id, file, contract_type, risk, timestamp FROM audit_log ORDER BY timestamp DESC LIMIT ?",
		limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []AuditEntry
	for rows.Next() {
		var e AuditEntry
		if err := rows.Scan(&e.RunID, &e.File, &e.ContractType, &e.Risk, &e.Timestamp); err != nil {
			continue
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Close releases the underlying database
func (a *Auditor) Close() {
	if a.db != nil {
		a.db.Close()
	}
}
