// Package setavatar serves the avatar selection screen.
//
// Loading the screen guards the session, fetches a batch of candidates and
// stores it as a pick owned by the session. Selection, randomize and submit
// act on that pick until it is submitted or expires.
package setavatar

import (
	"errors"
	"net/http"

	module "github.com/louisbranch/avatarpick/internal/services/web/module"
	"github.com/louisbranch/avatarpick/internal/services/web/routepath"
)

// Module provides the set-avatar routes.
type Module struct{}

// New returns a set-avatar module.
func New() Module { return Module{} }

// ID returns a stable module identifier.
func (Module) ID() string { return "setavatar" }

// Mount wires set-avatar route handlers.
func (Module) Mount(deps module.Dependencies) (module.Mount, error) {
	if deps.Avatars == nil {
		return module.Mount{}, errors.New("avatar service is required")
	}
	if deps.Sessions == nil {
		return module.Mount{}, errors.New("session store is required")
	}
	mux := http.NewServeMux()
	registerRoutes(mux, newHandlers(deps, newPickStore(deps.PickTTL, deps.Now)))
	return module.Mount{Prefix: routepath.SetAvatarPrefix, Handler: mux}, nil
}
