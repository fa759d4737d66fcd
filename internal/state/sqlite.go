package state

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // SQLite driver (pure Go)
)

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db   *sql.DB
	path string
}

// Open opens (or creates) the snapshot database at path and runs any
// pending migrations. Use ":memory:" for an in-memory database.
func Open(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open state database: %w", err)
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping state database: %w", err)
	}
	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	s := &SQLiteStore{db: db, path: path}
	if err := s.migrate(); err != nil {
		_ = db.Close()
		return nil, err
	}
	return s, nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Save persists a snapshot and its section counts in one transaction.
func (s *SQLiteStore) Save(snap *Snapshot) error {
	snap.ID = uuid.New().String()
	snap.TakenAt = time.Now().UTC()

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	_, err = tx.Exec(
		`INSERT INTO snapshots (id, taken_at, api, api_version, binding, bound, internal, total)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		snap.ID, snap.TakenAt.Format(time.RFC3339Nano),
		snap.API, snap.APIVersion, snap.Binding,
		snap.Bound, snap.Internal, snap.Total,
	)
	if err != nil {
		return fmt.Errorf("failed to insert snapshot: %w", err)
	}

	for _, sec := range snap.Sections {
		_, err = tx.Exec(
			`INSERT INTO snapshot_sections (snapshot_id, section, bound, internal, total)
			 VALUES (?, ?, ?, ?, ?)`,
			snap.ID, sec.Section, sec.Bound, sec.Internal, sec.Total,
		)
		if err != nil {
			return fmt.Errorf("failed to insert section count for %s: %w", sec.Section, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit snapshot: %w", err)
	}
	return nil
}

// List returns snapshots newest first, without section counts.
func (s *SQLiteStore) List(limit int) ([]*Snapshot, error) {
	// rowid order is insertion order; taken_at strings trim trailing
	// zeros and do not sort lexicographically.
	query := `SELECT id, taken_at, api, api_version, binding, bound, internal, total
	          FROM snapshots ORDER BY rowid DESC`
	args := []any{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list snapshots: %w", err)
	}
	defer rows.Close()

	var out []*Snapshot
	for rows.Next() {
		snap, err := scanSnapshot(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, snap)
	}
	return out, rows.Err()
}

// Get returns one snapshot with its section counts.
func (s *SQLiteStore) Get(id string) (*Snapshot, error) {
	rows, err := s.db.Query(
		`SELECT id, taken_at, api, api_version, binding, bound, internal, total
		 FROM snapshots WHERE id = ?`, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get snapshot: %w", err)
	}
	defer rows.Close()

	if !rows.Next() {
		return nil, rows.Err()
	}
	snap, err := scanSnapshot(rows)
	if err != nil {
		return nil, err
	}
	if err := rows.Close(); err != nil {
		return nil, err
	}

	secRows, err := s.db.Query(
		`SELECT section, bound, internal, total FROM snapshot_sections
		 WHERE snapshot_id = ? ORDER BY rowid`, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get section counts: %w", err)
	}
	defer secRows.Close()

	for secRows.Next() {
		var sec SectionCount
		if err := secRows.Scan(&sec.Section, &sec.Bound, &sec.Internal, &sec.Total); err != nil {
			return nil, fmt.Errorf("failed to scan section count: %w", err)
		}
		snap.Sections = append(snap.Sections, sec)
	}
	return snap, secRows.Err()
}

func scanSnapshot(rows *sql.Rows) (*Snapshot, error) {
	snap := &Snapshot{}
	var takenAt string
	err := rows.Scan(&snap.ID, &takenAt, &snap.API, &snap.APIVersion, &snap.Binding,
		&snap.Bound, &snap.Internal, &snap.Total)
	if err != nil {
		return nil, fmt.Errorf("failed to scan snapshot: %w", err)
	}
	snap.TakenAt, err = time.Parse(time.RFC3339Nano, takenAt)
	if err != nil {
		return nil, fmt.Errorf("failed to parse snapshot timestamp: %w", err)
	}
	return snap, nil
}
