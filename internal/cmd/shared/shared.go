// Package shared holds the avatar core wiring used by every command.
package shared

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/louisbranch/avatarpick/internal/avatar"
	"github.com/louisbranch/avatarpick/internal/platform/logging"
	"github.com/louisbranch/avatarpick/internal/platform/timeouts"
	"github.com/louisbranch/avatarpick/internal/session/sqlite"
)

// AvatarConfig configures the avatar clients, the fetcher and the session
// store.
type AvatarConfig struct {
	AvatarAPIBase    string `env:"AVATAR_API_BASE"    envDefault:"https://api.multiavatar.com/4645646"`
	SetAvatarURL     string `env:"SET_AVATAR_URL"     envDefault:"http://localhost:5000/api/auth/setAvatar"`
	FetchCount       int    `env:"FETCH_COUNT"        envDefault:"4"`
	FetchConcurrency int    `env:"FETCH_CONCURRENCY"  envDefault:"4"`
	FetchMaxSeed     int    `env:"FETCH_MAX_SEED"     envDefault:"1000"`
	SessionDBPath    string `env:"SESSION_DB"         envDefault:"data/sessions.db"`
	LogLevel         string `env:"LOG_LEVEL"          envDefault:"info"`
	LogFormat        string `env:"LOG_FORMAT"         envDefault:"text"`
}

// RegisterFlags binds flag overrides for cfg on fs.
func (c *AvatarConfig) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.AvatarAPIBase, "avatar-api", c.AvatarAPIBase, "avatar image API base URL")
	fs.StringVar(&c.SetAvatarURL, "set-avatar-url", c.SetAvatarURL, "backend set-avatar URL")
	fs.IntVar(&c.FetchCount, "fetch-count", c.FetchCount, "avatars fetched per screen")
	fs.IntVar(&c.FetchConcurrency, "fetch-concurrency", c.FetchConcurrency, "parallel avatar requests")
	fs.IntVar(&c.FetchMaxSeed, "fetch-max-seed", c.FetchMaxSeed, "largest avatar seed")
	fs.StringVar(&c.SessionDBPath, "session-db", c.SessionDBPath, "session SQLite database path")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "log level (debug, info, warn, error)")
	fs.StringVar(&c.LogFormat, "log-format", c.LogFormat, "log format (text, logfmt, json)")
}

// Logger builds the service logger described by cfg.
func (c AvatarConfig) Logger(service string, opts logging.Options) (*log.Logger, error) {
	if opts.Level == "" {
		opts.Level = c.LogLevel
	}
	if opts.Format == "" {
		opts.Format = c.LogFormat
	}
	return logging.NewWithOptions(service, opts)
}

// NewAvatarService builds the avatar core over HTTP clients.
func NewAvatarService(cfg AvatarConfig, logger *log.Logger) (*avatar.Service, error) {
	imageClient, err := avatar.NewImageClient(cfg.AvatarAPIBase, &http.Client{Timeout: timeouts.AvatarFetch})
	if err != nil {
		return nil, err
	}
	backendClient, err := avatar.NewBackendClient(cfg.SetAvatarURL, &http.Client{Timeout: timeouts.BackendRequest})
	if err != nil {
		return nil, err
	}
	fetcher := avatar.NewFetcher(imageClient, nil, logger, avatar.FetcherConfig{
		Count:       cfg.FetchCount,
		MaxSeed:     cfg.FetchMaxSeed,
		Concurrency: cfg.FetchConcurrency,
	})
	return avatar.NewService(fetcher, backendClient, logger), nil
}

// OpenSessionStore opens the SQLite session store, creating its directory.
func OpenSessionStore(ctx context.Context, path string) (*sqlite.Store, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, errors.New("session database path is required")
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create session database directory: %w", err)
		}
	}
	store, err := sqlite.Open(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("open session store: %w", err)
	}
	return store, nil
}
