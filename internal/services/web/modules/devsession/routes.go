package devsession

import (
	"net/http"

	"github.com/louisbranch/avatarpick/internal/services/web/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc(http.MethodGet+" "+routepath.DevSessionPattern, h.handleStart)
	mux.HandleFunc(http.MethodPost+" "+routepath.DevSessionEnd, h.handleEnd)
	mux.HandleFunc(routepath.DevSessionPrefix, h.handleNotFound)
}
