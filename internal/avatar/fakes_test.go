package avatar

import (
	"context"
	"errors"
	"sync"

	"github.com/louisbranch/avatarpick/internal/session"
)

type fakeImageSource struct {
	mu     sync.Mutex
	images map[int][]byte
	errs   map[int]error
	fail   error
	seeds  []int
}

func (f *fakeImageSource) FetchImage(_ context.Context, seed int) ([]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.seeds = append(f.seeds, seed)
	if f.fail != nil {
		return nil, f.fail
	}
	if err, ok := f.errs[seed]; ok {
		return nil, err
	}
	if image, ok := f.images[seed]; ok {
		return image, nil
	}
	return []byte("svg-" + string(rune('a'+seed%26))), nil
}

func (f *fakeImageSource) calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.seeds)
}

type fakeBackend struct {
	result SetAvatarResult
	err    error
	calls  int
	userID string
	image  string
}

func (f *fakeBackend) SetAvatar(_ context.Context, userID, image string) (SetAvatarResult, error) {
	f.calls++
	f.userID = userID
	f.image = image
	if f.err != nil {
		return SetAvatarResult{}, f.err
	}
	return f.result, nil
}

type fakeSessionStore struct {
	record  session.Record
	ok      bool
	getErr  error
	setErr  error
	sets    int
	getCall int
}

func (f *fakeSessionStore) Get(context.Context) (session.Record, bool, error) {
	f.getCall++
	if f.getErr != nil {
		return session.Record{}, false, f.getErr
	}
	return f.record, f.ok, nil
}

func (f *fakeSessionStore) Set(_ context.Context, record session.Record) error {
	if f.setErr != nil {
		return f.setErr
	}
	f.sets++
	f.record = record
	f.ok = true
	return nil
}

var errBoom = errors.New("boom")
