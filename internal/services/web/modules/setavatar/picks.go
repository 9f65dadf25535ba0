package setavatar

import (
	"cmp"
	"errors"
	"slices"
	"sync"
	"time"

	"github.com/louisbranch/avatarpick/internal/avatar"
	"github.com/louisbranch/avatarpick/internal/platform/id"
)

const (
	defaultPickTTL = 30 * time.Minute
	// maxPicksPerSession bounds the live picks one session holds; the
	// oldest is evicted when a new screen is loaded.
	maxPicksPerSession = 3
)

var errPickNotFound = errors.New("pick not found")

// pick is one mounted selection screen owned by a session.
type pick struct {
	id        string
	sessionID string
	picker    *avatar.Picker
	failed    int
	attempts  int
	createdAt time.Time
	seq       uint64
}

// pickSnapshot is a copy of a pick safe to use outside the store lock.
type pickSnapshot struct {
	ID         string
	Candidates []string
	Selected   int
	HasChoice  bool
	Failed     int
	Attempts   int
}

// Picker rebuilds a picker carrying the snapshot selection.
func (s pickSnapshot) Picker() *avatar.Picker {
	p := avatar.NewPicker(s.Candidates)
	if s.HasChoice {
		_ = p.Select(s.Selected)
	}
	return p
}

type pickStore struct {
	mu    sync.Mutex
	ttl   time.Duration
	now   func() time.Time
	newID func() (string, error)
	picks map[string]*pick
	seq   uint64
}

func newPickStore(ttl time.Duration, now func() time.Time) *pickStore {
	if ttl <= 0 {
		ttl = defaultPickTTL
	}
	if now == nil {
		now = time.Now
	}
	return &pickStore{ttl: ttl, now: now, newID: id.NewID, picks: make(map[string]*pick)}
}

// create stores a pick for batch and returns its id. Expired picks are swept
// on the way and the session's oldest picks are evicted past
// maxPicksPerSession.
func (s *pickStore) create(sessionID string, batch avatar.Batch) (string, error) {
	pickID, err := s.newID()
	if err != nil {
		return "", err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.now()
	s.sweepLocked(now)
	s.evictOldestLocked(sessionID, maxPicksPerSession-1)
	s.seq++
	s.picks[pickID] = &pick{
		id:        pickID,
		sessionID: sessionID,
		picker:    avatar.NewPicker(batch.Candidates),
		failed:    len(batch.Failures),
		attempts:  len(batch.Candidates) + len(batch.Failures),
		createdAt: now,
		seq:       s.seq,
	}
	return pickID, nil
}

// snapshot copies the pick when it exists, is live, and belongs to sessionID.
func (s *pickStore) snapshot(pickID, sessionID string) (pickSnapshot, error) {
	var snap pickSnapshot
	err := s.update(pickID, sessionID, func(p *pick) error {
		snap = snapshotOf(p)
		return nil
	})
	return snap, err
}

// update runs fn on the pick under the store lock.
func (s *pickStore) update(pickID, sessionID string, fn func(*pick) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.picks[pickID]
	if !ok || p.sessionID != sessionID {
		return errPickNotFound
	}
	if s.expired(p, s.now()) {
		delete(s.picks, pickID)
		return errPickNotFound
	}
	return fn(p)
}

// remove drops a pick once it has been submitted.
func (s *pickStore) remove(pickID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.picks, pickID)
}

func (s *pickStore) len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.picks)
}

func (s *pickStore) sweepLocked(now time.Time) {
	for pickID, p := range s.picks {
		if s.expired(p, now) {
			delete(s.picks, pickID)
		}
	}
}

// evictOldestLocked drops the session's oldest picks until at most keep
// remain.
func (s *pickStore) evictOldestLocked(sessionID string, keep int) {
	var owned []*pick
	for _, p := range s.picks {
		if p.sessionID == sessionID {
			owned = append(owned, p)
		}
	}
	if len(owned) <= keep {
		return
	}
	slices.SortFunc(owned, func(a, b *pick) int {
		return cmp.Compare(a.seq, b.seq)
	})
	for _, p := range owned[:len(owned)-keep] {
		delete(s.picks, p.id)
	}
}

func (s *pickStore) expired(p *pick, now time.Time) bool {
	return now.Sub(p.createdAt) >= s.ttl
}

func snapshotOf(p *pick) pickSnapshot {
	selected, chosen := p.picker.Selected()
	return pickSnapshot{
		ID:         p.id,
		Candidates: p.picker.Candidates(),
		Selected:   selected,
		HasChoice:  chosen,
		Failed:     p.failed,
		Attempts:   p.attempts,
	}
}
