// Package module defines the contract between the web root and its feature
// modules.
package module

import (
	"net/http"
	"time"

	"github.com/charmbracelet/log"

	"github.com/louisbranch/avatarpick/internal/avatar"
	"github.com/louisbranch/avatarpick/internal/platform/random"
	"github.com/louisbranch/avatarpick/internal/session"
	"github.com/louisbranch/avatarpick/internal/services/web/platform/requestmeta"
)

// Dependencies carries shared runtime collaborators for modules.
type Dependencies struct {
	Avatars  *avatar.Service
	Sessions session.Store
	Random   random.Source
	Logger   *log.Logger
	// LoginURL is where requests without a session are sent.
	LoginURL     string
	PickTTL      time.Duration
	SchemePolicy requestmeta.SchemePolicy
	Now          func() time.Time
}

// Mount is a module's root prefix and handler.
type Mount struct {
	Prefix  string
	Handler http.Handler
}

// Module is one feature area mounted on the root mux.
type Module interface {
	ID() string
	Mount(Dependencies) (Mount, error)
}
