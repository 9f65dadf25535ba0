package seed

import (
	"bytes"
	"context"
	"flag"
	"path/filepath"
	"strings"
	"testing"

	"github.com/louisbranch/avatarpick/internal/platform/id"
	"github.com/louisbranch/avatarpick/internal/session/sqlite"
)

func TestParseConfigFlags(t *testing.T) {
	fs := flag.NewFlagSet("seed", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, []string{"-session", "sess-1", "-user-id", "user-1", "-username", "ada"})
	if err != nil {
		t.Fatalf("ParseConfig() error = %v", err)
	}
	if cfg.SessionID != "sess-1" || cfg.UserID != "user-1" || cfg.Username != "ada" {
		t.Fatalf("cfg = %+v, want flag values", cfg)
	}
	if cfg.SessionDBPath != "data/sessions.db" {
		t.Fatalf("SessionDBPath = %q, want %q", cfg.SessionDBPath, "data/sessions.db")
	}
}

func TestRunWritesRecordAndPrintsSessionID(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "sessions.db")
	var out bytes.Buffer
	err := Run(context.Background(), Config{SessionDBPath: path, UserID: "user-1", Username: " ada "}, &out)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	sessionID := strings.TrimSpace(out.String())
	if !id.Valid(sessionID) {
		t.Fatalf("printed session id = %q, want generated id", sessionID)
	}

	store, err := sqlite.Open(context.Background(), path)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer store.Close()
	record, ok, err := store.Get(context.Background(), sessionID)
	if err != nil || !ok {
		t.Fatalf("Get() = (%v, %v), want stored record", ok, err)
	}
	if record.ID != "user-1" || record.Username != "ada" {
		t.Fatalf("record = %+v, want user-1/ada", record)
	}
	if record.IsAvatarImageSet {
		t.Fatal("new record must not have an avatar")
	}
}

func TestRunUsesGivenSessionID(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	path := filepath.Join(t.TempDir(), "sessions.db")
	if err := Run(context.Background(), Config{SessionDBPath: path, SessionID: "sess-1"}, &out); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if got := strings.TrimSpace(out.String()); got != "sess-1" {
		t.Fatalf("output = %q, want %q", got, "sess-1")
	}
}
