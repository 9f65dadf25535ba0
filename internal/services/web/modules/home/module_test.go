package home

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/louisbranch/avatarpick/internal/avatar"
	"github.com/louisbranch/avatarpick/internal/session"
	"github.com/louisbranch/avatarpick/internal/session/memory"
	module "github.com/louisbranch/avatarpick/internal/services/web/module"
	"github.com/louisbranch/avatarpick/internal/services/web/platform/sessioncookie"
	"github.com/louisbranch/avatarpick/internal/services/web/routepath"
)

type failingStore struct{}

func (failingStore) Get(context.Context, string) (session.Record, bool, error) {
	return session.Record{}, false, errors.New("disk on fire")
}

func (failingStore) Put(context.Context, string, session.Record) error {
	return errors.New("disk on fire")
}

func mountHome(t *testing.T, store session.Store) http.Handler {
	t.Helper()
	mount, err := New().Mount(module.Dependencies{
		Avatars:  avatar.NewService(nil, nil, nil),
		Sessions: store,
	})
	if err != nil {
		t.Fatalf("Mount() error = %v", err)
	}
	if mount.Prefix != routepath.Root {
		t.Fatalf("Prefix = %q, want %q", mount.Prefix, routepath.Root)
	}
	return mount.Handler
}

func get(handler http.Handler, path, sessionID string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if sessionID != "" {
		req.AddCookie(&http.Cookie{Name: sessioncookie.Name, Value: sessionID})
	}
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	return rr
}

func TestModuleIDReturnsHome(t *testing.T) {
	t.Parallel()

	if got := New().ID(); got != "home" {
		t.Fatalf("ID() = %q, want %q", got, "home")
	}
}

func TestMountRequiresDependencies(t *testing.T) {
	t.Parallel()

	if _, err := New().Mount(module.Dependencies{}); err == nil {
		t.Fatal("Mount() error = nil, want missing dependency error")
	}
}

func TestHomeWithoutSessionRedirectsToLogin(t *testing.T) {
	t.Parallel()

	handler := mountHome(t, memory.New())
	for _, sessionID := range []string{"", "sess-unknown"} {
		rr := get(handler, routepath.Root, sessionID)
		if rr.Code != http.StatusSeeOther {
			t.Fatalf("status = %d, want %d", rr.Code, http.StatusSeeOther)
		}
		if got := rr.Header().Get("Location"); got != routepath.Login {
			t.Fatalf("Location = %q, want %q", got, routepath.Login)
		}
	}
}

func TestHomeShowsCurrentAvatar(t *testing.T) {
	t.Parallel()

	store := memory.New()
	record := session.Record{ID: "user-1", Username: "ada"}.WithAvatar("PHN2Zz4=")
	if err := store.Put(context.Background(), "sess-1", record); err != nil {
		t.Fatalf("Put() error = %v", err)
	}
	rr := get(mountHome(t, store), routepath.Root, "sess-1")

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
	}
	body := rr.Body.String()
	for _, want := range []string{"Welcome, ada", "data:image/svg+xml;base64,PHN2Zz4=", `href="/set-avatar"`} {
		if !strings.Contains(body, want) {
			t.Fatalf("body missing %q: %q", want, body)
		}
	}
}

func TestHomeWithoutAvatarLinksToPicker(t *testing.T) {
	t.Parallel()

	store := memory.New()
	if err := store.Put(context.Background(), "sess-1", session.Record{ID: "user-1"}); err != nil {
		t.Fatalf("Put() error = %v", err)
	}
	body := get(mountHome(t, store), routepath.Root, "sess-1").Body.String()
	if strings.Contains(body, "current-avatar") {
		t.Fatalf("unexpected avatar image: %q", body)
	}
	if !strings.Contains(body, `href="/set-avatar"`) {
		t.Fatalf("body missing picker link: %q", body)
	}
}

func TestHomeStoreFailureRendersUnavailable(t *testing.T) {
	t.Parallel()

	rr := get(mountHome(t, failingStore{}), routepath.Root, "sess-1")
	if rr.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusServiceUnavailable)
	}
	if strings.Contains(rr.Body.String(), "disk on fire") {
		t.Fatal("body leaked store error")
	}
}

func TestRoutesPathAndMethodContracts(t *testing.T) {
	t.Parallel()

	handler := mountHome(t, memory.New())
	tests := []struct {
		name       string
		method     string
		path       string
		wantStatus int
	}{
		{name: "root", method: http.MethodGet, path: routepath.Root, wantStatus: http.StatusSeeOther},
		{name: "root post rejected", method: http.MethodPost, path: routepath.Root, wantStatus: http.StatusMethodNotAllowed},
		{name: "unknown path", method: http.MethodGet, path: "/nowhere", wantStatus: http.StatusNotFound},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, httptest.NewRequest(tc.method, tc.path, nil))
			if rr.Code != tc.wantStatus {
				t.Fatalf("status = %d, want %d", rr.Code, tc.wantStatus)
			}
		})
	}
}
