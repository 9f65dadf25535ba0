// Package sqlite provides a SQLite-backed session store.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/louisbranch/avatarpick/internal/platform/storage/sqlitemigrate"
	"github.com/louisbranch/avatarpick/internal/session"
	"github.com/louisbranch/avatarpick/internal/session/sqlite/migrations"
)

// Store persists session records in SQLite.
type Store struct {
	sqlDB *sql.DB
	now   func() time.Time
}

// Open opens and migrates a session store at path.
func Open(ctx context.Context, path string) (*Store, error) {
	sqlDB, err := sqlitemigrate.Open(ctx, path, migrations.FS, "")
	if err != nil {
		return nil, err
	}
	return &Store{sqlDB: sqlDB, now: time.Now}, nil
}

// Close releases the underlying SQLite connection.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// Get loads the record stored under session.StorageKey for sessionID.
func (s *Store) Get(ctx context.Context, sessionID string) (session.Record, bool, error) {
	if s == nil || s.sqlDB == nil {
		return session.Record{}, false, fmt.Errorf("storage is not configured")
	}
	sessionID, err := session.NormalizeID(sessionID)
	if err != nil {
		return session.Record{}, false, err
	}

	var payload string
	err = s.sqlDB.QueryRowContext(ctx,
		`SELECT payload_json FROM session_records WHERE session_id = ? AND storage_key = ?`,
		sessionID, session.StorageKey,
	).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return session.Record{}, false, nil
	}
	if err != nil {
		return session.Record{}, false, fmt.Errorf("get session record: %w", err)
	}

	record, err := session.Decode([]byte(payload))
	if err != nil {
		return session.Record{}, false, fmt.Errorf("get session record: %w", err)
	}
	return record, true, nil
}

// Put inserts or replaces the record for sessionID.
func (s *Store) Put(ctx context.Context, sessionID string, record session.Record) error {
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	sessionID, err := session.NormalizeID(sessionID)
	if err != nil {
		return err
	}
	payload, err := session.Encode(record)
	if err != nil {
		return err
	}

	now := s.now().UTC().UnixMilli()
	_, err = s.sqlDB.ExecContext(ctx,
		`INSERT INTO session_records (session_id, storage_key, payload_json, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?)
		 ON CONFLICT(session_id, storage_key) DO UPDATE SET
		   payload_json = excluded.payload_json,
		   updated_at = excluded.updated_at`,
		sessionID, session.StorageKey, string(payload), now, now,
	)
	if err != nil {
		return fmt.Errorf("put session record: %w", err)
	}
	return nil
}
