package setavatar

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/louisbranch/avatarpick/internal/avatar"
	"github.com/louisbranch/avatarpick/internal/platform/random"
	"github.com/louisbranch/avatarpick/internal/session"
	"github.com/louisbranch/avatarpick/internal/session/memory"
	module "github.com/louisbranch/avatarpick/internal/services/web/module"
	"github.com/louisbranch/avatarpick/internal/services/web/platform/flash"
	"github.com/louisbranch/avatarpick/internal/services/web/platform/sessioncookie"
	"github.com/louisbranch/avatarpick/internal/services/web/routepath"
)

const testSessionID = "sess-1"

var errBoom = errors.New("boom")

type fakeImageSource struct {
	mu    sync.Mutex
	fail  map[int]bool
	seeds []int
}

func (f *fakeImageSource) FetchImage(_ context.Context, seed int) ([]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.seeds = append(f.seeds, seed)
	if f.fail[seed] {
		return nil, errBoom
	}
	return []byte("svg-" + strconv.Itoa(seed)), nil
}

func (f *fakeImageSource) calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.seeds)
}

type fakeBackend struct {
	mu     sync.Mutex
	result avatar.SetAvatarResult
	err    error
	calls  int
	userID string
	image  string
}

func (f *fakeBackend) SetAvatar(_ context.Context, userID, image string) (avatar.SetAvatarResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	f.userID = userID
	f.image = image
	if f.err != nil {
		return avatar.SetAvatarResult{}, f.err
	}
	return f.result, nil
}

// testClock is a settable time source for pick expiry.
type testClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *testClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *testClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

type harness struct {
	handler http.Handler
	store   *memory.Store
	images  *fakeImageSource
	backend *fakeBackend
	clock   *testClock
}

type harnessOptions struct {
	failSeeds []int
	pickRand  random.Source
	noSession bool
}

func newHarness(t *testing.T, backend *fakeBackend, opts harnessOptions) harness {
	t.Helper()

	images := &fakeImageSource{fail: map[int]bool{}}
	for _, seed := range opts.failSeeds {
		images.fail[seed] = true
	}
	if backend == nil {
		backend = &fakeBackend{}
	}
	store := memory.New()
	if !opts.noSession {
		if err := store.Put(context.Background(), testSessionID, session.Record{ID: "user-1", Username: "ada"}); err != nil {
			t.Fatalf("Put() error = %v", err)
		}
	}
	pickRand := opts.pickRand
	if pickRand == nil {
		pickRand = random.NewSequence(0)
	}
	clock := &testClock{now: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)}
	fetcher := avatar.NewFetcher(images, random.NewSequence(1, 2, 3, 4), nil, avatar.FetcherConfig{Concurrency: 1})
	mount, err := New().Mount(module.Dependencies{
		Avatars:  avatar.NewService(fetcher, backend, nil),
		Sessions: store,
		Random:   pickRand,
		PickTTL:  time.Minute,
		Now:      clock.Now,
	})
	if err != nil {
		t.Fatalf("Mount() error = %v", err)
	}
	return harness{handler: mount.Handler, store: store, images: images, backend: backend, clock: clock}
}

func (h harness) do(method, path string, form url.Values, sessionID string) *httptest.ResponseRecorder {
	var req *http.Request
	if form != nil {
		req = httptest.NewRequest(method, path, strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if sessionID != "" {
		req.AddCookie(&http.Cookie{Name: sessioncookie.Name, Value: sessionID})
	}
	rr := httptest.NewRecorder()
	h.handler.ServeHTTP(rr, req)
	return rr
}

// load mounts a new screen and returns its pick id.
func (h harness) load(t *testing.T) string {
	t.Helper()
	rr := h.do(http.MethodGet, routepath.SetAvatar, nil, testSessionID)
	if rr.Code != http.StatusSeeOther {
		t.Fatalf("load status = %d, want %d", rr.Code, http.StatusSeeOther)
	}
	location := rr.Header().Get("Location")
	pickID := strings.TrimPrefix(location, routepath.SetAvatarPrefix)
	if pickID == "" || pickID == location {
		t.Fatalf("load Location = %q, want pick path", location)
	}
	return pickID
}

func (h harness) record(t *testing.T) session.Record {
	t.Helper()
	record, ok, err := h.store.Get(context.Background(), testSessionID)
	if err != nil || !ok {
		t.Fatalf("Get() = (%v, %v), want stored record", ok, err)
	}
	return record
}

// flashNotice decodes the flash cookie set on rr.
func flashNotice(t *testing.T, rr *httptest.ResponseRecorder) (flash.Notice, bool) {
	t.Helper()
	for _, raw := range rr.Header().Values("Set-Cookie") {
		cookie, err := http.ParseSetCookie(raw)
		if err != nil || cookie.Name != flash.CookieName || cookie.Value == "" {
			continue
		}
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(cookie)
		return flash.Cookies{}.ReadAndClear(httptest.NewRecorder(), req)
	}
	return flash.Notice{}, false
}

func httptestRequest(method, path, sessionID string) *http.Request {
	req := httptest.NewRequest(method, path, nil)
	if sessionID != "" {
		req.AddCookie(&http.Cookie{Name: sessioncookie.Name, Value: sessionID})
	}
	return req
}

func serve(h harness, req *http.Request) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	h.handler.ServeHTTP(rr, req)
	return rr
}
