package setavatar

import (
	"errors"
	"testing"
	"time"

	"github.com/louisbranch/avatarpick/internal/avatar"
)

func TestPickStoreSnapshotCopiesState(t *testing.T) {
	t.Parallel()

	clock := &testClock{now: time.Unix(100, 0)}
	store := newPickStore(time.Minute, clock.Now)
	pickID, err := store.create("sess-1", avatar.Batch{
		Candidates: []string{"a", "b"},
		Failures:   []avatar.FetchFailure{{Attempt: 2, Seed: 9, Err: errBoom}},
	})
	if err != nil {
		t.Fatalf("create() error = %v", err)
	}
	if err := store.update(pickID, "sess-1", func(p *pick) error { return p.picker.Select(1) }); err != nil {
		t.Fatalf("update() error = %v", err)
	}

	snap, err := store.snapshot(pickID, "sess-1")
	if err != nil {
		t.Fatalf("snapshot() error = %v", err)
	}
	if snap.Failed != 1 || snap.Attempts != 3 {
		t.Fatalf("failed/attempts = %d/%d, want 1/3", snap.Failed, snap.Attempts)
	}
	if !snap.HasChoice || snap.Selected != 1 {
		t.Fatalf("selection = (%d, %v), want (1, true)", snap.Selected, snap.HasChoice)
	}
	snap.Candidates[0] = "mutated"
	again, _ := store.snapshot(pickID, "sess-1")
	if again.Candidates[0] != "a" {
		t.Fatalf("Candidates[0] = %q, want %q", again.Candidates[0], "a")
	}

	image, ok := snap.Picker().SelectedImage()
	if !ok || image != "b" {
		t.Fatalf("Picker().SelectedImage() = (%q, %v), want (%q, true)", image, ok, "b")
	}
}

func TestPickStoreRejectsOtherSession(t *testing.T) {
	t.Parallel()

	store := newPickStore(time.Minute, nil)
	pickID, err := store.create("sess-1", avatar.Batch{Candidates: []string{"a"}})
	if err != nil {
		t.Fatalf("create() error = %v", err)
	}
	if _, err := store.snapshot(pickID, "sess-2"); !errors.Is(err, errPickNotFound) {
		t.Fatalf("snapshot() error = %v, want %v", err, errPickNotFound)
	}
	if _, err := store.snapshot("missing", "sess-1"); !errors.Is(err, errPickNotFound) {
		t.Fatalf("snapshot(missing) error = %v, want %v", err, errPickNotFound)
	}
}

func TestPickStoreSweepsExpiredPicks(t *testing.T) {
	t.Parallel()

	clock := &testClock{now: time.Unix(100, 0)}
	store := newPickStore(time.Minute, clock.Now)
	if _, err := store.create("sess-1", avatar.Batch{}); err != nil {
		t.Fatalf("create() error = %v", err)
	}
	clock.Advance(2 * time.Minute)
	if _, err := store.create("sess-1", avatar.Batch{}); err != nil {
		t.Fatalf("create() error = %v", err)
	}
	if got := store.len(); got != 1 {
		t.Fatalf("len() = %d, want 1", got)
	}
}

func TestPickStoreBoundsPicksPerSession(t *testing.T) {
	t.Parallel()

	store := newPickStore(time.Hour, nil)
	batch := avatar.Batch{Candidates: []string{"a", "b", "c", "d"}}
	var ids []string
	for range 50 {
		pickID, err := store.create("sess-1", batch)
		if err != nil {
			t.Fatalf("create() error = %v", err)
		}
		ids = append(ids, pickID)
	}
	if got := store.len(); got != maxPicksPerSession {
		t.Fatalf("len() = %d, want %d", got, maxPicksPerSession)
	}
	for _, pickID := range ids[len(ids)-maxPicksPerSession:] {
		if _, err := store.snapshot(pickID, "sess-1"); err != nil {
			t.Fatalf("snapshot(%s) error = %v, want newest picks kept", pickID, err)
		}
	}
	if _, err := store.snapshot(ids[0], "sess-1"); !errors.Is(err, errPickNotFound) {
		t.Fatalf("snapshot(oldest) error = %v, want %v", err, errPickNotFound)
	}
}

func TestPickStoreEvictionLeavesOtherSessions(t *testing.T) {
	t.Parallel()

	store := newPickStore(time.Hour, nil)
	other, err := store.create("sess-2", avatar.Batch{})
	if err != nil {
		t.Fatalf("create() error = %v", err)
	}
	for range maxPicksPerSession + 2 {
		if _, err := store.create("sess-1", avatar.Batch{}); err != nil {
			t.Fatalf("create() error = %v", err)
		}
	}
	if _, err := store.snapshot(other, "sess-2"); err != nil {
		t.Fatalf("snapshot(other session) error = %v", err)
	}
	if got := store.len(); got != maxPicksPerSession+1 {
		t.Fatalf("len() = %d, want %d", got, maxPicksPerSession+1)
	}
}

func TestPickStoreRemove(t *testing.T) {
	t.Parallel()

	store := newPickStore(0, nil)
	if store.ttl != defaultPickTTL {
		t.Fatalf("ttl = %v, want %v", store.ttl, defaultPickTTL)
	}
	pickID, err := store.create("sess-1", avatar.Batch{})
	if err != nil {
		t.Fatalf("create() error = %v", err)
	}
	store.remove(pickID)
	if got := store.len(); got != 0 {
		t.Fatalf("len() = %d, want 0", got)
	}
}

func TestPickStoreCreatePropagatesIDError(t *testing.T) {
	t.Parallel()

	store := newPickStore(time.Minute, nil)
	store.newID = func() (string, error) { return "", errBoom }
	if _, err := store.create("sess-1", avatar.Batch{}); !errors.Is(err, errBoom) {
		t.Fatalf("create() error = %v, want %v", err, errBoom)
	}
}
