// Package home serves the landing page that shows the current avatar.
package home

import (
	"errors"
	"net/http"

	module "github.com/louisbranch/avatarpick/internal/services/web/module"
	"github.com/louisbranch/avatarpick/internal/services/web/routepath"
)

// Module provides the root route.
type Module struct{}

// New returns a home module.
func New() Module { return Module{} }

// ID returns a stable module identifier.
func (Module) ID() string { return "home" }

// Mount wires home route handlers.
func (Module) Mount(deps module.Dependencies) (module.Mount, error) {
	if deps.Avatars == nil {
		return module.Mount{}, errors.New("avatar service is required")
	}
	if deps.Sessions == nil {
		return module.Mount{}, errors.New("session store is required")
	}
	mux := http.NewServeMux()
	registerRoutes(mux, newHandlers(deps))
	return module.Mount{Prefix: routepath.Root, Handler: mux}, nil
}
