// Package random provides the injectable randomness used for avatar seeds and
// random selection.
//
// Production sources are seeded from crypto/rand; tests substitute Sequence
// to get deterministic draws.
package random

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math/rand/v2"
	"sync"
)

// Source draws integers uniformly from [0, n). Implementations must panic on
// n <= 0 the same way math/rand does; callers guard empty ranges.
type Source interface {
	IntN(n int) int
}

// NewSeed generates a random seed using crypto/rand.
func NewSeed() (uint64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}
	return binary.LittleEndian.Uint64(b[:]), nil
}

// Locked is a PCG-backed Source safe for concurrent use.
type Locked struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// New returns a Locked source seeded from crypto/rand.
func New() (*Locked, error) {
	hi, err := NewSeed()
	if err != nil {
		return nil, err
	}
	lo, err := NewSeed()
	if err != nil {
		return nil, err
	}
	return NewSeeded(hi, lo), nil
}

// MustNew is New for callers with no way to report a broken entropy source.
func MustNew() *Locked {
	src, err := New()
	if err != nil {
		panic(err)
	}
	return src
}

// NewSeeded returns a Locked source with a fixed PCG seed.
func NewSeeded(hi, lo uint64) *Locked {
	return &Locked{rng: rand.New(rand.NewPCG(hi, lo))}
}

// IntN implements Source.
func (l *Locked) IntN(n int) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.rng.IntN(n)
}

// Sequence replays fixed values, reducing each modulo n. It wraps around when
// exhausted and returns 0 when empty.
type Sequence struct {
	mu     sync.Mutex
	values []int
	next   int
}

// NewSequence returns a Sequence over values.
func NewSequence(values ...int) *Sequence {
	return &Sequence{values: append([]int(nil), values...)}
}

// IntN implements Source.
func (s *Sequence) IntN(n int) int {
	if n <= 0 {
		panic("random: invalid argument to IntN")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.values) == 0 {
		return 0
	}
	v := s.values[s.next%len(s.values)]
	s.next++
	v %= n
	if v < 0 {
		v += n
	}
	return v
}
