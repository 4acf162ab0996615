// Package store provides the SQLite-backed persistence layer for the entity
// graph. Cascade rules live in the schema's foreign keys; uniqueness and
// lock rules are checked before mutations are applied.
package store

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // register sqlite driver
)

// Sentinel errors surfaced by mutation methods.
var (
	// ErrDuplicate reports an identity that already exists; detected before
	// the mutation is applied.
	ErrDuplicate = errors.New("identity already exists")
	// ErrNotFound reports a missing record.
	ErrNotFound = errors.New("record not found")
	// ErrLockedCategory reports an attempt to rename or delete a
	// system-reserved category.
	ErrLockedCategory = errors.New("category is locked")
	// ErrFinalized reports a mutation attempt on a finalized income division.
	ErrFinalized = errors.New("income division is finalized")
)

const dateLayout = "2006-01-02"

// Store wraps the SQLite database.
type Store struct {
	db *sql.DB
}

// Open opens or creates the database at the given path, applying the schema
// and seeding the reserved categories on first use.
func Open(dbPath string) (*Store, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("creating data dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=synchronous(normal)&_pragma=foreign_keys(on)")
	if err != nil {
		return nil, fmt.Errorf("opening db: %w", err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	s := &Store{db: db}
	if err := s.seedReservedCategories(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("seeding categories: %w", err)
	}
	return s, nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// exists reports whether the query (expected to be a SELECT COUNT) matches
// any row.
func (s *Store) exists(query string, args ...any) (bool, error) {
	var count int
	if err := s.db.QueryRow(query, args...).Scan(&count); err != nil {
		return false, err
	}
	return count > 0, nil
}

func formatDate(t time.Time) string {
	return t.UTC().Format(dateLayout)
}

func parseDate(s string) time.Time {
	t, _ := time.Parse(dateLayout, s)
	return t
}

func formatDatePtr(t *time.Time) any {
	if t == nil {
		return nil
	}
	return formatDate(*t)
}

func parseDatePtr(s sql.NullString) *time.Time {
	if !s.Valid || s.String == "" {
		return nil
	}
	t := parseDate(s.String)
	return &t
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
