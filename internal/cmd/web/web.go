// Package web parses web command configuration and runs the HTTP service.
package web

import (
	"context"
	"flag"
	"fmt"
	"time"

	"github.com/louisbranch/avatarpick/internal/cmd/shared"
	entrypoint "github.com/louisbranch/avatarpick/internal/platform/cmd"
	"github.com/louisbranch/avatarpick/internal/platform/logging"
	"github.com/louisbranch/avatarpick/internal/services/web"
)

// Config holds web command configuration.
type Config struct {
	shared.AvatarConfig

	HTTPAddr            string        `env:"WEB_HTTP_ADDR"             envDefault:"localhost:8080"`
	LoginURL            string        `env:"WEB_LOGIN_URL"             envDefault:"/login"`
	PickTTL             time.Duration `env:"WEB_PICK_TTL"              envDefault:"30m"`
	TrustForwardedProto bool          `env:"WEB_TRUST_FORWARDED_PROTO" envDefault:"false"`
	DevSessions         bool          `env:"WEB_DEV_SESSIONS"          envDefault:"false"`
}

// ParseConfig parses environment and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}

	cfg.AvatarConfig.RegisterFlags(fs)
	fs.StringVar(&cfg.HTTPAddr, "http-addr", cfg.HTTPAddr, "HTTP listen address")
	fs.StringVar(&cfg.LoginURL, "login-url", cfg.LoginURL, "redirect target for requests without a session")
	fs.DurationVar(&cfg.PickTTL, "pick-ttl", cfg.PickTTL, "how long a loaded avatar selection stays valid")
	fs.BoolVar(&cfg.TrustForwardedProto, "trust-forwarded-proto", cfg.TrustForwardedProto, "trust X-Forwarded-Proto for cookie security")
	fs.BoolVar(&cfg.DevSessions, "dev-sessions", cfg.DevSessions, "serve /dev/session/{id} to sign a browser into a seeded session")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run builds the web server and serves until ctx ends.
func Run(ctx context.Context, cfg Config) error {
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceWeb, func(ctx context.Context) error {
		logger, err := cfg.Logger(entrypoint.ServiceWeb, logging.Options{})
		if err != nil {
			return err
		}
		avatars, err := shared.NewAvatarService(cfg.AvatarConfig, logger)
		if err != nil {
			return fmt.Errorf("init avatar service: %w", err)
		}
		store, err := shared.OpenSessionStore(ctx, cfg.SessionDBPath)
		if err != nil {
			return err
		}
		defer store.Close()

		server, err := web.NewServer(ctx, web.Config{
			HTTPAddr:            cfg.HTTPAddr,
			Avatars:             avatars,
			Sessions:            store,
			Logger:              logger,
			LoginURL:            cfg.LoginURL,
			PickTTL:             cfg.PickTTL,
			TrustForwardedProto: cfg.TrustForwardedProto,
			DevSessions:         cfg.DevSessions,
		})
		if err != nil {
			return fmt.Errorf("init web server: %w", err)
		}
		defer server.Close()

		if err := server.ListenAndServe(ctx); err != nil {
			return fmt.Errorf("serve web: %w", err)
		}
		return nil
	})
}
