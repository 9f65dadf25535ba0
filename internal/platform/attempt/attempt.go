// Package attempt runs a fixed number of independent best-effort attempts and
// collects whatever succeeds.
//
// It replaces silent catch-and-skip loops with an explicit result: successes
// in attempt order plus a tally of the attempts that failed.
package attempt

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// Func performs attempt index i of n.
type Func[T any] func(ctx context.Context, i int) (T, error)

// Failure records one failed attempt.
type Failure struct {
	Index int
	Err   error
}

// Error implements error.
func (f Failure) Error() string {
	return fmt.Sprintf("attempt %d: %v", f.Index, f.Err)
}

// Unwrap exposes the attempt error.
func (f Failure) Unwrap() error {
	return f.Err
}

// Result holds the outcome of Collect.
type Result[T any] struct {
	// Values holds successful results ordered by attempt index.
	Values []T
	// Indexes holds the attempt index that produced each entry in Values.
	Indexes  []int
	Failures []Failure
	Attempts int
}

// Complete reports whether every attempt succeeded.
func (r Result[T]) Complete() bool {
	return len(r.Failures) == 0 && len(r.Values) == r.Attempts
}

// Collect runs n attempts with at most limit in flight (limit <= 0 means no
// bound; 1 runs them sequentially). It always waits for every attempt and
// never returns early on failure. Attempts that have not started when ctx is
// done fail with the context error.
func Collect[T any](ctx context.Context, n, limit int, fn Func[T]) Result[T] {
	if n <= 0 || fn == nil {
		return Result[T]{Attempts: max(n, 0)}
	}
	type slot struct {
		value T
		err   error
	}
	slots := make([]slot, n)

	var g errgroup.Group
	if limit > 0 {
		g.SetLimit(limit)
	}
	for i := 0; i < n; i++ {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				slots[i].err = err
				return nil
			}
			value, err := fn(ctx, i)
			slots[i] = slot{value: value, err: err}
			return nil
		})
	}
	_ = g.Wait()

	result := Result[T]{Attempts: n}
	for i, s := range slots {
		if s.err != nil {
			result.Failures = append(result.Failures, Failure{Index: i, Err: s.err})
			continue
		}
		result.Values = append(result.Values, s.value)
		result.Indexes = append(result.Indexes, i)
	}
	return result
}
