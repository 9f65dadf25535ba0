// Package memory provides an in-process session store.
package memory

import (
	"context"
	"sync"

	"github.com/louisbranch/avatarpick/internal/session"
)

// Store keeps encoded session records in memory. The zero value is ready to use.
type Store struct {
	mu       sync.RWMutex
	payloads map[string][]byte
}

// New returns an empty store.
func New() *Store {
	return &Store{}
}

// Get decodes the record stored for sessionID.
func (s *Store) Get(ctx context.Context, sessionID string) (session.Record, bool, error) {
	if err := ctx.Err(); err != nil {
		return session.Record{}, false, err
	}
	sessionID, err := session.NormalizeID(sessionID)
	if err != nil {
		return session.Record{}, false, err
	}
	s.mu.RLock()
	payload, ok := s.payloads[sessionID]
	s.mu.RUnlock()
	if !ok {
		return session.Record{}, false, nil
	}
	record, err := session.Decode(payload)
	if err != nil {
		return session.Record{}, false, err
	}
	return record, true, nil
}

// Put encodes and stores record for sessionID.
func (s *Store) Put(ctx context.Context, sessionID string, record session.Record) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	sessionID, err := session.NormalizeID(sessionID)
	if err != nil {
		return err
	}
	payload, err := session.Encode(record)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.payloads == nil {
		s.payloads = make(map[string][]byte)
	}
	s.payloads[sessionID] = payload
	return nil
}

// PutRaw stores payload for sessionID without decoding it.
func (s *Store) PutRaw(sessionID string, payload []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.payloads == nil {
		s.payloads = make(map[string][]byte)
	}
	s.payloads[sessionID] = append([]byte(nil), payload...)
}

// Raw returns the stored payload for sessionID.
func (s *Store) Raw(sessionID string) ([]byte, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	payload, ok := s.payloads[sessionID]
	return append([]byte(nil), payload...), ok
}
