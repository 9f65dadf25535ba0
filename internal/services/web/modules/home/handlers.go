package home

import (
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/a-h/templ"
	"github.com/charmbracelet/log"

	"github.com/louisbranch/avatarpick/internal/avatar"
	"github.com/louisbranch/avatarpick/internal/session"
	module "github.com/louisbranch/avatarpick/internal/services/web/module"
	apperrors "github.com/louisbranch/avatarpick/internal/services/web/platform/errors"
	"github.com/louisbranch/avatarpick/internal/services/web/platform/flash"
	"github.com/louisbranch/avatarpick/internal/services/web/platform/httpx"
	"github.com/louisbranch/avatarpick/internal/services/web/platform/pagerender"
	"github.com/louisbranch/avatarpick/internal/services/web/platform/weberror"
	"github.com/louisbranch/avatarpick/internal/services/web/platform/websession"
	"github.com/louisbranch/avatarpick/internal/services/web/routepath"
	webtemplates "github.com/louisbranch/avatarpick/internal/services/web/templates"
)

type handlers struct {
	avatars  *avatar.Service
	sessions session.Store
	loginURL string
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
		avatars:  deps.Avatars,
		sessions: deps.Sessions,
		loginURL: loginURL,
		renderer: pagerender.Renderer{Flash: flash.Cookies{Policy: deps.SchemePolicy}},
		logger:   logger,
	}
}

func (h handlers) handleHome(w http.ResponseWriter, r *http.Request) {
	bound, ok := websession.Resolve(r, h.sessions)
	if !ok {
		httpx.WriteRedirect(w, r, h.loginURL)
		return
	}
	record, err := h.avatars.Guard(httpx.RequestContext(r), bound)
	if errors.Is(err, avatar.ErrNotLoggedIn) {
		httpx.WriteRedirect(w, r, h.loginURL)
		return
	}
	if err != nil {
		h.logger.Error("load session record", "err", err)
		weberror.Write(w, r, h.renderer, apperrors.Wrap(apperrors.KindUnavailable, "web.error.unavailable", err))
		return
	}

	view := webtemplates.HomeView{
		Username:     record.Username,
		AvatarImage:  record.AvatarImage,
		HasAvatar:    record.IsAvatarImageSet,
		SetAvatarURL: routepath.SetAvatar,
	}
	if err := h.renderer.Write(w, r, pagerender.Page{
		TitleKey: "web.home.title",
		Body: func(loc webtemplates.Localizer) templ.Component {
			return webtemplates.HomePage(view, loc)
		},
	}); err != nil {
		h.logger.Error("render home page", "err", err)
		weberror.Write(w, r, h.renderer, err)
	}
}

func (h handlers) handleNotFound(w http.ResponseWriter, r *http.Request) {
	weberror.NotFound(w, r, h.renderer)
}
