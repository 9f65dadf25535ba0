package setavatar

import (
	"net/http"

	"github.com/louisbranch/avatarpick/internal/services/web/platform/httpx"
	"github.com/louisbranch/avatarpick/internal/services/web/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc(http.MethodGet+" "+routepath.SetAvatar, h.handleLoad)
	mux.HandleFunc(http.MethodGet+" "+routepath.SetAvatarPrefix+"{$}", h.handleLoad)
	mux.HandleFunc(http.MethodGet+" "+routepath.SetAvatarPickPattern, h.handlePick)

	mux.HandleFunc(http.MethodPost+" "+routepath.SetAvatarSelectPattern, h.handleSelect)
	mux.HandleFunc(http.MethodGet+" "+routepath.SetAvatarSelectPattern, httpx.MethodNotAllowed(http.MethodPost))
	mux.HandleFunc(http.MethodPost+" "+routepath.SetAvatarRandomPattern, h.handleRandom)
	mux.HandleFunc(http.MethodGet+" "+routepath.SetAvatarRandomPattern, httpx.MethodNotAllowed(http.MethodPost))
	mux.HandleFunc(http.MethodPost+" "+routepath.SetAvatarSubmitPattern, h.handleSubmit)
	mux.HandleFunc(http.MethodGet+" "+routepath.SetAvatarSubmitPattern, httpx.MethodNotAllowed(http.MethodPost))

	mux.HandleFunc(http.MethodGet+" "+routepath.SetAvatarPickRestPattern, h.handleNotFound)
}
