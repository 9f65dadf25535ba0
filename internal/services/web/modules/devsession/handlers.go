package devsession

import (
	"io"
	"net/http"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/louisbranch/avatarpick/internal/session"
	module "github.com/louisbranch/avatarpick/internal/services/web/module"
	apperrors "github.com/louisbranch/avatarpick/internal/services/web/platform/errors"
	"github.com/louisbranch/avatarpick/internal/services/web/platform/flash"
	"github.com/louisbranch/avatarpick/internal/services/web/platform/httpx"
	"github.com/louisbranch/avatarpick/internal/services/web/platform/pagerender"
	"github.com/louisbranch/avatarpick/internal/services/web/platform/requestmeta"
	"github.com/louisbranch/avatarpick/internal/services/web/platform/sessioncookie"
	"github.com/louisbranch/avatarpick/internal/services/web/platform/weberror"
	"github.com/louisbranch/avatarpick/internal/services/web/routepath"
)

type handlers struct {
	sessions session.Store
	loginURL string
	policy   requestmeta.SchemePolicy
	renderer pagerender.Renderer
	logger   *log.Logger
}

func newHandlers(deps module.Dependencies) handlers {
	loginURL := strings.TrimSpace(deps.LoginURL)
	if loginURL == "" {
		loginURL = routepath.Login
	}
	logger := deps.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return handlers{
		sessions: deps.Sessions,
		loginURL: loginURL,
		policy:   deps.SchemePolicy,
		renderer: pagerender.Renderer{Flash: flash.Cookies{Policy: deps.SchemePolicy}},
		logger:   logger,
	}
}

// handleStart sets the session cookie when sessionID names a stored record.
func (h handlers) handleStart(w http.ResponseWriter, r *http.Request) {
	sessionID, err := session.NormalizeID(r.PathValue("sessionID"))
	if err != nil {
		h.handleNotFound(w, r)
		return
	}
	record, ok, err := h.sessions.Get(httpx.RequestContext(r), sessionID)
	if err != nil {
		h.logger.Error("load session record", "err", err)
		weberror.Write(w, r, h.renderer, apperrors.Wrap(apperrors.KindUnavailable, "web.error.unavailable", err))
		return
	}
	if !ok || !record.LoggedIn() {
		h.handleNotFound(w, r)
		return
	}
	sessioncookie.Write(w, r, sessionID, h.policy)
	h.logger.Info("session handed off", "user_id", record.ID)
	httpx.WriteRedirect(w, r, routepath.SetAvatar)
}

func (h handlers) handleEnd(w http.ResponseWriter, r *http.Request) {
	sessioncookie.Clear(w, r, h.policy)
	httpx.WriteRedirect(w, r, h.loginURL)
}

func (h handlers) handleNotFound(w http.ResponseWriter, r *http.Request) {
	weberror.NotFound(w, r, h.renderer)
}
