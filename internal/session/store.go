package session

import (
	"context"
	"errors"
	"strings"
)

// ErrSessionIDRequired indicates a store call without a session id.
var ErrSessionIDRequired = errors.New("session id is required")

// Store persists session records keyed by session id.
type Store interface {
	// Get returns the record for sessionID; ok is false when none exists.
	Get(ctx context.Context, sessionID string) (record Record, ok bool, err error)
	Put(ctx context.Context, sessionID string, record Record) error
}

// NormalizeID trims sessionID and rejects blank values.
func NormalizeID(sessionID string) (string, error) {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return "", ErrSessionIDRequired
	}
	return sessionID, nil
}

// Bound is a Store narrowed to one session.
type Bound struct {
	store     Store
	sessionID string
}

// Bind narrows store to sessionID.
func Bind(store Store, sessionID string) Bound {
	return Bound{store: store, sessionID: sessionID}
}

// SessionID returns the bound session id.
func (b Bound) SessionID() string {
	return b.sessionID
}

// Get reads the bound record.
func (b Bound) Get(ctx context.Context) (Record, bool, error) {
	if b.store == nil {
		return Record{}, false, errors.New("session store is not configured")
	}
	return b.store.Get(ctx, b.sessionID)
}

// Set replaces the bound record.
func (b Bound) Set(ctx context.Context, record Record) error {
	if b.store == nil {
		return errors.New("session store is not configured")
	}
	return b.store.Put(ctx, b.sessionID, record)
}
