package scanlog

import (
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/cjgrahamlxm-code/JGraha40969-lex-hilbert-polya-proof/internal/scan"
	"github.com/cjgrahamlxm-code/JGraha40969-lex-hilbert-polya-proof/internal/validate"
)

// #region schema
const schema = `
CREATE TABLE IF NOT EXISTS scan_runs (
	run_id        TEXT PRIMARY KEY,
	mode          TEXT NOT NULL,
	start_pos     REAL NOT NULL,
	step          REAL NOT NULL,
	requested     INTEGER NOT NULL,
	evaluated     INTEGER NOT NULL,
	anomaly_count INTEGER NOT NULL,
	termination   TEXT NOT NULL,
	abort_cause   TEXT,
	created_at    TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS scan_flags (
	id         INTEGER PRIMARY KEY AUTOINCREMENT,
	run_id     TEXT NOT NULL,
	position   REAL NOT NULL,
	magnitude  REAL NOT NULL,
	mode       TEXT NOT NULL,
	FOREIGN KEY (run_id) REFERENCES scan_runs(run_id)
);

CREATE TABLE IF NOT EXISTS scan_faults (
	id         INTEGER PRIMARY KEY AUTOINCREMENT,
	run_id     TEXT NOT NULL,
	position   REAL NOT NULL,
	reason     TEXT NOT NULL,
	FOREIGN KEY (run_id) REFERENCES scan_runs(run_id)
);

CREATE TABLE IF NOT EXISTS validation_runs (
	id         INTEGER PRIMARY KEY AUTOINCREMENT,
	sampled    INTEGER NOT NULL,
	mismatches INTEGER NOT NULL,
	faults     INTEGER NOT NULL,
	all_passed INTEGER NOT NULL,
	created_at TEXT NOT NULL
);
`

// #endregion schema

// #region store-struct

// Store persists scan runs, flags, faults and validation summaries in SQLite.
type Store struct {
	db *sql.DB
}

// #endregion store-struct

// #region constructor

// NewStore opens a SQLite database and runs migrations.
func NewStore(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		return nil, fmt.Errorf("pragma: %w", err)
	}
	if _, err := db.Exec("PRAGMA foreign_keys=ON"); err != nil {
		return nil, fmt.Errorf("pragma fk: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return &Store{db: db}, nil
}

// #endregion constructor

// #region close

// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// DB returns the underlying *sql.DB for use by other tools.
func (s *Store) DB() *sql.DB {
	return s.db
}

// #endregion close

// #region record-scan

// RecordScan persists one scan result with its flags and faults atomically.
func (s *Store) RecordScan(res scan.Result) error {
	now := time.Now().UTC()

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	var abortPtr interface{}
	if res.AbortCause != "" {
		abortPtr = res.AbortCause
	}

	_, err = tx.Exec(
		`INSERT INTO scan_runs (run_id, mode, start_pos, step, requested, evaluated, anomaly_count, termination, abort_cause, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		res.RunID, string(res.Mode), res.Start, res.Step, res.Requested, res.Evaluated,
		res.AnomalyCount, string(res.Termination), abortPtr, now.Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("insert run: %w", err)
	}

	for _, f := range res.Flags {
		_, err = tx.Exec(
			`INSERT INTO scan_flags (run_id, position, magnitude, mode) VALUES (?, ?, ?, ?)`,
			res.RunID, f.Position, f.Magnitude, string(f.Mode),
		)
		if err != nil {
			return fmt.Errorf("insert flag: %w", err)
		}
	}

	for _, f := range res.Faults {
		_, err = tx.Exec(
			`INSERT INTO scan_faults (run_id, position, reason) VALUES (?, ?, ?)`,
			res.RunID, f.Position, f.Reason,
		)
		if err != nil {
			return fmt.Errorf("insert fault: %w", err)
		}
	}

	return tx.Commit()
}

// #endregion record-scan

// #region record-validation

// RecordValidation persists one validation report summary.
func (s *Store) RecordValidation(report validate.Report) error {
	passed := 0
	if report.AllPassed {
		passed = 1
	}
	_, err := s.db.Exec(
		`INSERT INTO validation_runs (sampled, mismatches, faults, all_passed, created_at)
		 VALUES (?, ?, ?, ?, ?)`,
		report.Sampled, len(report.Mismatches), len(report.Faults), passed,
		time.Now().UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("insert validation: %w", err)
	}
	return nil
}

// #endregion record-validation

// #region list-runs

// ListRuns returns the most recent scan runs, newest first.
func (s *Store) ListRuns(limit int) ([]RunRecord, error) {
	rows, err := s.db.Query(
		`SELECT r.run_id, r.mode, r.start_pos, r.step, r.requested, r.evaluated,
		        r.anomaly_count, r.termination, r.abort_cause, r.created_at,
		        (SELECT COUNT(*) FROM scan_flags f WHERE f.run_id = r.run_id)
		 FROM scan_runs r ORDER BY r.created_at DESC LIMIT ?`, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	defer rows.Close()

	var records []RunRecord
	for rows.Next() {
		var rec RunRecord
		var abortCause sql.NullString
		var createdStr string
		if err := rows.Scan(&rec.RunID, &rec.Mode, &rec.Start, &rec.Step, &rec.Requested,
			&rec.Evaluated, &rec.AnomalyCount, &rec.Termination, &abortCause, &createdStr,
			&rec.FlagCount); err != nil {
			return nil, fmt.Errorf("scan row: %w", err)
		}
		if abortCause.Valid {
			rec.AbortCause = abortCause.String
		}
		rec.CreatedAt, _ = time.Parse(time.RFC3339Nano, createdStr)
		records = append(records, rec)
	}
	return records, rows.Err()
}

// #endregion list-runs

// #region flags-for-run

// FlagsForRun returns the flags of one run in insertion (scan) order.
func (s *Store) FlagsForRun(runID string) ([]FlagRecord, error) {
	rows, err := s.db.Query(
		`SELECT run_id, position, magnitude, mode FROM scan_flags WHERE run_id = ? ORDER BY id ASC`,
		runID,
	)
	if err != nil {
		return nil, fmt.Errorf("flags for run %s: %w", runID, err)
	}
	defer rows.Close()

	var records []FlagRecord
	for rows.Next() {
		var rec FlagRecord
		if err := rows.Scan(&rec.RunID, &rec.Position, &rec.Magnitude, &rec.Mode); err != nil {
			return nil, fmt.Errorf("scan row: %w", err)
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

// #endregion flags-for-run

// #region list-validations

// ListValidations returns the most recent validation summaries, newest first.
func (s *Store) ListValidations(limit int) ([]ValidationRecord, error) {
	rows, err := s.db.Query(
		`SELECT sampled, mismatches, faults, all_passed, created_at
		 FROM validation_runs ORDER BY created_at DESC LIMIT ?`, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("list validations: %w", err)
	}
	defer rows.Close()

	var records []ValidationRecord
	for rows.Next() {
		var rec ValidationRecord
		var passed int
		var createdStr string
		if err := rows.Scan(&rec.Sampled, &rec.Mismatches, &rec.Faults, &passed, &createdStr); err != nil {
			return nil, fmt.Errorf("scan row: %w", err)
		}
		rec.AllPassed = passed == 1
		rec.CreatedAt, _ = time.Parse(time.RFC3339Nano, createdStr)
		records = append(records, rec)
	}
	return records, rows.Err()
}

// #endregion list-validations
