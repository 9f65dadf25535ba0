package home

import (
	"net/http"

	"github.com/louisbranch/avatarpick/internal/services/web/platform/httpx"
	"github.com/louisbranch/avatarpick/internal/services/web/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc(http.MethodGet+" "+routepath.Root+"{$}", h.handleHome)
	mux.HandleFunc(routepath.Root+"{$}", httpx.MethodNotAllowed(http.MethodGet))
	mux.HandleFunc(routepath.Root, h.handleNotFound)
}
