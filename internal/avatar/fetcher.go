package avatar

import (
	"context"
	"encoding/base64"
	"errors"
	"io"

	"github.com/charmbracelet/log"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/louisbranch/avatarpick/internal/platform/attempt"
	"github.com/louisbranch/avatarpick/internal/platform/random"
)

const tracerName = "github.com/louisbranch/avatarpick/internal/avatar"

var tracer = otel.Tracer(tracerName)

const (
	// DefaultCount is the number of candidates requested per screen.
	DefaultCount = 4
	// DefaultMaxSeed is the largest seed sent to the image source.
	DefaultMaxSeed = 1000
	// DefaultConcurrency bounds in-flight image requests.
	DefaultConcurrency = 4
)

// ImageSource returns the raw image for a numeric seed.
type ImageSource interface {
	FetchImage(ctx context.Context, seed int) ([]byte, error)
}

// FetcherConfig tunes a Fetcher. Zero fields take the defaults.
type FetcherConfig struct {
	Count       int
	MaxSeed     int
	Concurrency int
}

func (c FetcherConfig) withDefaults() FetcherConfig {
	if c.Count <= 0 {
		c.Count = DefaultCount
	}
	if c.MaxSeed <= 0 {
		c.MaxSeed = DefaultMaxSeed
	}
	if c.Concurrency <= 0 {
		c.Concurrency = DefaultConcurrency
	}
	return c
}

// FetchFailure describes one attempt that produced no candidate.
type FetchFailure struct {
	Attempt int
	Seed    int
	Err     error
}

// Batch is the outcome of one Fetch: base64 candidates in attempt order and
// the attempts that failed.
type Batch struct {
	Candidates []string
	Seeds      []int
	Failures   []FetchFailure
}

// Fetcher loads candidate images from an ImageSource.
type Fetcher struct {
	source ImageSource
	random random.Source
	logger *log.Logger
	cfg    FetcherConfig
}

// NewFetcher builds a fetcher. A nil random source uses a locked PCG source;
// a nil logger discards output.
func NewFetcher(source ImageSource, rnd random.Source, logger *log.Logger, cfg FetcherConfig) *Fetcher {
	if rnd == nil {
		rnd = random.MustNew()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Fetcher{source: source, random: rnd, logger: logger, cfg: cfg.withDefaults()}
}

// Fetch makes exactly Count attempts and keeps whatever succeeds. Failed
// attempts are logged and skipped. The returned error is non-nil only when
// ctx ended before the attempts completed.
func (f *Fetcher) Fetch(ctx context.Context) (Batch, error) {
	ctx, span := tracer.Start(ctx, "avatar.fetch", trace.WithAttributes(
		attribute.Int("avatar.count", f.cfg.Count),
		attribute.Int("avatar.concurrency", f.cfg.Concurrency),
	))
	defer span.End()

	if f.source == nil {
		err := errors.New("image source is not configured")
		span.SetStatus(codes.Error, err.Error())
		return Batch{}, err
	}

	seeds := make([]int, f.cfg.Count)
	for i := range seeds {
		seeds[i] = f.random.IntN(f.cfg.MaxSeed + 1)
	}

	result := attempt.Collect(ctx, f.cfg.Count, f.cfg.Concurrency, func(ctx context.Context, i int) (string, error) {
		image, err := f.source.FetchImage(ctx, seeds[i])
		if err != nil {
			return "", err
		}
		return base64.StdEncoding.EncodeToString(image), nil
	})

	batch := Batch{Candidates: result.Values}
	for _, i := range result.Indexes {
		batch.Seeds = append(batch.Seeds, seeds[i])
	}
	for _, failure := range result.Failures {
		seed := seeds[failure.Index]
		batch.Failures = append(batch.Failures, FetchFailure{Attempt: failure.Index, Seed: seed, Err: failure.Err})
		f.logger.Warn("fetch avatar", "attempt", failure.Index+1, "of", f.cfg.Count, "seed", seed, "err", failure.Err)
	}

	span.SetAttributes(
		attribute.Int("avatar.candidates", len(batch.Candidates)),
		attribute.Int("avatar.failures", len(batch.Failures)),
	)
	if err := ctx.Err(); err != nil {
		span.SetStatus(codes.Error, err.Error())
		return batch, err
	}
	return batch, nil
}
