package avatar

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/louisbranch/avatarpick/internal/session"
)

// SessionStore reads and writes the session record of the current caller.
type SessionStore interface {
	Get(ctx context.Context) (record session.Record, ok bool, err error)
	Set(ctx context.Context, record session.Record) error
}

// SetAvatarResult is the backend answer to a set-avatar call.
type SetAvatarResult struct {
	IsSet bool
	Image string
}

// Backend persists the chosen avatar for a user.
type Backend interface {
	SetAvatar(ctx context.Context, userID, image string) (SetAvatarResult, error)
}

// Service runs the selection screen flow.
type Service struct {
	fetcher *Fetcher
	backend Backend
	logger  *log.Logger
}

// NewService wires a service. A nil logger discards output.
func NewService(fetcher *Fetcher, backend Backend, logger *log.Logger) *Service {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Service{fetcher: fetcher, backend: backend, logger: logger}
}

// Guard returns the caller's session record or ErrNotLoggedIn. Store
// failures are returned wrapped and are not treated as logged out.
func (s *Service) Guard(ctx context.Context, store SessionStore) (session.Record, error) {
	if store == nil {
		return session.Record{}, errors.New("session store is required")
	}
	record, ok, err := store.Get(ctx)
	if err != nil {
		return session.Record{}, fmt.Errorf("read session record: %w", err)
	}
	if !ok || !record.LoggedIn() {
		return session.Record{}, ErrNotLoggedIn
	}
	return record, nil
}

// Load guards the screen and, only when a session exists, fetches a batch of
// candidates.
func (s *Service) Load(ctx context.Context, store SessionStore) (session.Record, Batch, error) {
	record, err := s.Guard(ctx, store)
	if err != nil {
		return session.Record{}, Batch{}, err
	}
	if s.fetcher == nil {
		return record, Batch{}, errors.New("avatar fetcher is not configured")
	}
	batch, err := s.fetcher.Fetch(ctx)
	if err != nil {
		return record, batch, fmt.Errorf("fetch avatars: %w", err)
	}
	return record, batch, nil
}

// Submit sends the picker's selection to the backend and, when the backend
// confirms it, stores the updated session record. The session is left
// untouched on every error path.
func (s *Service) Submit(ctx context.Context, store SessionStore, picker *Picker) (session.Record, error) {
	if picker == nil {
		return session.Record{}, ErrNoSelection
	}
	image, ok := picker.SelectedImage()
	if !ok {
		return session.Record{}, ErrNoSelection
	}

	record, err := s.Guard(ctx, store)
	if err != nil {
		return session.Record{}, err
	}
	if s.backend == nil {
		return session.Record{}, fmt.Errorf("%w: backend is not configured", ErrBackendUnavailable)
	}

	result, err := s.backend.SetAvatar(ctx, record.ID, image)
	if err != nil {
		s.logger.Error("set avatar", "user_id", record.ID, "err", err)
		return session.Record{}, fmt.Errorf("%w: %w", ErrBackendUnavailable, err)
	}
	if !result.IsSet {
		s.logger.Warn("set avatar rejected", "user_id", record.ID)
		return session.Record{}, ErrAvatarNotSet
	}

	stored := result.Image
	if stored == "" {
		stored = image
	}
	updated := record.WithAvatar(stored)
	if err := store.Set(ctx, updated); err != nil {
		s.logger.Error("save session record", "user_id", record.ID, "err", err)
		return session.Record{}, fmt.Errorf("save session record: %w", err)
	}
	s.logger.Info("avatar set", "user_id", record.ID)
	return updated, nil
}
