package picker

import (
	"context"
	"errors"
	"strconv"
	"sync"

	"github.com/louisbranch/avatarpick/internal/avatar"
	"github.com/louisbranch/avatarpick/internal/platform/random"
	"github.com/louisbranch/avatarpick/internal/session"
)

var errBoom = errors.New("boom")

type fakeImageSource struct {
	mu    sync.Mutex
	calls int
}

func (f *fakeImageSource) FetchImage(_ context.Context, seed int) ([]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	return []byte("svg-" + strconv.Itoa(seed)), nil
}

type fakeBackend struct {
	result avatar.SetAvatarResult
	err    error
	calls  int
}

func (f *fakeBackend) SetAvatar(context.Context, string, string) (avatar.SetAvatarResult, error) {
	f.calls++
	return f.result, f.err
}

type fakeSessionStore struct {
	record session.Record
	ok     bool
	sets   int
}

func (f *fakeSessionStore) Get(context.Context) (session.Record, bool, error) {
	return f.record, f.ok, nil
}

func (f *fakeSessionStore) Set(_ context.Context, record session.Record) error {
	f.sets++
	f.record = record
	f.ok = true
	return nil
}

type fixture struct {
	images  *fakeImageSource
	backend *fakeBackend
	store   *fakeSessionStore
	model   Model
}

func newFixture(loggedIn bool, backend *fakeBackend, pickRand random.Source) fixture {
	images := &fakeImageSource{}
	if backend == nil {
		backend = &fakeBackend{}
	}
	store := &fakeSessionStore{}
	if loggedIn {
		store.record = session.Record{ID: "user-1"}
		store.ok = true
	}
	fetcher := avatar.NewFetcher(images, random.NewSequence(5, 6, 7, 8), nil, avatar.FetcherConfig{Concurrency: 1})
	model := New(context.Background(), Config{
		Service: avatar.NewService(fetcher, backend, nil),
		Store:   store,
		Random:  pickRand,
	})
	return fixture{images: images, backend: backend, store: store, model: model}
}
