// Package seed creates a logged-in session record for local use.
package seed

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/louisbranch/avatarpick/internal/cmd/shared"
	entrypoint "github.com/louisbranch/avatarpick/internal/platform/cmd"
	"github.com/louisbranch/avatarpick/internal/platform/id"
	"github.com/louisbranch/avatarpick/internal/session"
)

// Config holds seed command configuration.
type Config struct {
	SessionDBPath string `env:"SESSION_DB" envDefault:"data/sessions.db"`
	SessionID     string
	UserID        string
	Username      string
}

// ParseConfig parses environment and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}

	fs.StringVar(&cfg.SessionDBPath, "session-db", cfg.SessionDBPath, "session SQLite database path")
	fs.StringVar(&cfg.SessionID, "session", "", "session id to write (default: generated)")
	fs.StringVar(&cfg.UserID, "user-id", "", "user id stored as _id (default: generated)")
	fs.StringVar(&cfg.Username, "username", "", "username stored with the record")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run writes the session record and prints its session id to out.
func Run(ctx context.Context, cfg Config, out io.Writer) error {
	if out == nil {
		out = io.Discard
	}
	sessionID, err := orNewID(cfg.SessionID)
	if err != nil {
		return err
	}
	userID, err := orNewID(cfg.UserID)
	if err != nil {
		return err
	}

	store, err := shared.OpenSessionStore(ctx, cfg.SessionDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	record := session.Record{ID: userID, Username: strings.TrimSpace(cfg.Username)}
	if err := store.Put(ctx, sessionID, record); err != nil {
		return fmt.Errorf("write session record: %w", err)
	}
	_, err = fmt.Fprintln(out, sessionID)
	return err
}

func orNewID(value string) (string, error) {
	if value = strings.TrimSpace(value); value != "" {
		return value, nil
	}
	return id.NewID()
}
