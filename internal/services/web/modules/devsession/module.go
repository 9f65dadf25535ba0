// Package devsession hands a seeded session to a browser.
//
// The login flow lives outside this service. For local runs, the session id
// printed by the seed command is opened at /dev/session/{sessionID}, which
// sets the session cookie and continues to the avatar selection screen.
package devsession

import (
	"errors"
	"net/http"

	module "github.com/louisbranch/avatarpick/internal/services/web/module"
	"github.com/louisbranch/avatarpick/internal/services/web/routepath"
)

// Module provides the session handoff routes.
type Module struct{}

// New returns a dev session module.
func New() Module { return Module{} }

// ID returns a stable module identifier.
func (Module) ID() string { return "devsession" }

// Mount wires session handoff handlers.
func (Module) Mount(deps module.Dependencies) (module.Mount, error) {
	if deps.Sessions == nil {
		return module.Mount{}, errors.New("session store is required")
	}
	mux := http.NewServeMux()
	registerRoutes(mux, newHandlers(deps))
	return module.Mount{Prefix: routepath.DevSessionPrefix, Handler: mux}, nil
}
