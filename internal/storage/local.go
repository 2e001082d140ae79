package storage

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	_ "modernc.org/sqlite"
)

// Local stores the ledger document in a single-row SQLite table, exposing
// the same conditional-write semantics as the remote store. Used for offline
// journaling and as the conflict-faithful test backend.
type Local struct {
	db *sql.DB
}

// DefaultLocalPath returns the default offline database location.
func DefaultLocalPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home dir: %w", err)
	}
	return filepath.Join(homeDir, ".rapjournal.db"), nil
}

// OpenLocal opens (and creates if missing) the SQLite-backed store at path.
func OpenLocal(ctx context.Context, path string) (*Local, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}
	if _, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS ledger_document (
			id      INTEGER PRIMARY KEY CHECK (id = 1),
			content TEXT NOT NULL,
			version INTEGER NOT NULL
		)
	`); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}
	return &Local{db: db}, nil
}

func (s *Local) Close() error {
	return s.db.Close()
}

// Fetch reads the document row.
func (s *Local) Fetch(ctx context.Context) (Document, error) {
	row := s.db.QueryRowContext(ctx, `SELECT content, version FROM ledger_document WHERE id = 1`)
	var content string
	var version int64
	if err := row.Scan(&content, &version); err != nil {
		if err == sql.ErrNoRows {
			return Document{}, ErrNotFound
		}
		return Document{}, fmt.Errorf("fetch document: %w", err)
	}
	return Document{Content: content, Version: strconv.FormatInt(version, 10)}, nil
}

// Write replaces the document via compare-and-swap on the version column.
func (s *Local) Write(ctx context.Context, content, version string) error {
	if version == "" {
		_, err := s.db.ExecContext(ctx, `
			INSERT INTO ledger_document (id, content, version) VALUES (1, ?, 1)
		`, content)
		if err != nil {
			// The row already existing means someone created it first.
			return ErrConflict
		}
		return nil
	}

	v, err := strconv.ParseInt(version, 10, 64)
	if err != nil {
		return fmt.Errorf("write document: bad version token %q", version)
	}

	res, err := s.db.ExecContext(ctx, `
		UPDATE ledger_document SET content = ?, version = version + 1
		WHERE id = 1 AND version = ?
	`, content, v)
	if err != nil {
		return fmt.Errorf("write document: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("write document rows affected: %w", err)
	}
	if n == 0 {
		return ErrConflict
	}
	return nil
}
