// Package avatarpick runs the terminal avatar selection screen.
package avatarpick

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/louisbranch/avatarpick/internal/avatar"
	"github.com/louisbranch/avatarpick/internal/cmd/shared"
	entrypoint "github.com/louisbranch/avatarpick/internal/platform/cmd"
	"github.com/louisbranch/avatarpick/internal/platform/logging"
	"github.com/louisbranch/avatarpick/internal/session"
	"github.com/louisbranch/avatarpick/internal/tui/picker"
)

// Config holds avatarpick command configuration.
type Config struct {
	shared.AvatarConfig

	SessionID string `env:"SESSION_ID"`
	LogFile   string `env:"LOG_FILE"`
}

// ParseConfig parses environment and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}

	cfg.AvatarConfig.RegisterFlags(fs)
	fs.StringVar(&cfg.SessionID, "session", cfg.SessionID, "session id printed by the seed command")
	fs.StringVar(&cfg.LogFile, "log-file", cfg.LogFile, "write logs to this file instead of discarding them")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	cfg.SessionID = strings.TrimSpace(cfg.SessionID)
	return cfg, nil
}

// Run shows the selection screen on in/out and reports where it navigated.
func Run(ctx context.Context, cfg Config, in io.Reader, out io.Writer) error {
	if out == nil {
		out = io.Discard
	}
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceAvatarPick, func(ctx context.Context) error {
		logWriter := io.Discard
		if cfg.LogFile != "" {
			file, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
			if err != nil {
				return fmt.Errorf("open log file: %w", err)
			}
			defer file.Close()
			logWriter = file
		}
		logger, err := cfg.Logger(entrypoint.ServiceAvatarPick, logging.Options{Writer: logWriter})
		if err != nil {
			return err
		}
		avatars, err := shared.NewAvatarService(cfg.AvatarConfig, logger)
		if err != nil {
			return fmt.Errorf("init avatar service: %w", err)
		}

		var sessions avatar.SessionStore = noSession{}
		if cfg.SessionID != "" {
			store, err := shared.OpenSessionStore(ctx, cfg.SessionDBPath)
			if err != nil {
				return err
			}
			defer store.Close()
			sessions = session.Bind(store, cfg.SessionID)
		}

		opts := []tea.ProgramOption{tea.WithContext(ctx), tea.WithOutput(out)}
		if in != nil {
			opts = append(opts, tea.WithInput(in))
		}
		final, err := tea.NewProgram(picker.New(ctx, picker.Config{Service: avatars, Store: sessions}), opts...).Run()
		if err != nil && !errors.Is(err, tea.ErrProgramKilled) {
			return fmt.Errorf("run avatar picker: %w", err)
		}
		model, ok := final.(picker.Model)
		if !ok {
			return nil
		}
		return report(out, model)
	})
}

func report(out io.Writer, model picker.Model) error {
	switch model.Route() {
	case picker.RouteLogin:
		_, err := fmt.Fprintf(out, "not logged in, continue at %s\n", picker.RouteLogin)
		return err
	case picker.RouteRoot:
		_, err := fmt.Fprintf(out, "avatar set for user %s\n", model.Record().ID)
		return err
	}
	return model.Err()
}

// noSession stands in for the session store when no session id is given.
type noSession struct{}

func (noSession) Get(context.Context) (session.Record, bool, error) {
	return session.Record{}, false, nil
}

func (noSession) Set(context.Context, session.Record) error {
	return avatar.ErrNotLoggedIn
}
