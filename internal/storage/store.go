// Package storage provides access to the single ledger document. The remote
// GitHub store is the production backend; the SQLite store serves offline use
// and tests. Both speak the same read/conditional-write contract.
package storage

import (
	"context"
	"errors"
)

// ErrNotFound means the document does not exist yet (fresh start). Callers
// must treat this differently from an unreachable store.
var ErrNotFound = errors.New("ledger document not found")

// ErrConflict means the document changed between the read that produced the
// supplied version token and this write. The caller retries from a fresh
// read; no merge is attempted.
var ErrConflict = errors.New("ledger document version conflict")

// Document is one fetched snapshot with its version token.
type Document struct {
	Content string
	Version string
}

// Store is the remote-file collaborator contract: read the whole document,
// replace the whole document conditioned on the last-seen version. An empty
// version is only valid when creating the document.
type Store interface {
	Fetch(ctx context.Context) (Document, error)
	Write(ctx context.Context, content, version string) error
}
