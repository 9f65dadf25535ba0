package setavatar

import (
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/a-h/templ"
	"github.com/charmbracelet/log"

	"github.com/louisbranch/avatarpick/internal/avatar"
	"github.com/louisbranch/avatarpick/internal/platform/random"
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
	picks    *pickStore
	random   random.Source
	loginURL string
	flash    flash.Cookies
	renderer pagerender.Renderer
	logger   *log.Logger
}

func newHandlers(deps module.Dependencies, picks *pickStore) handlers {
	loginURL := strings.TrimSpace(deps.LoginURL)
	if loginURL == "" {
		loginURL = routepath.Login
	}
	rnd := deps.Random
	if rnd == nil {
		rnd = random.MustNew()
	}
	logger := deps.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	cookies := flash.Cookies{Policy: deps.SchemePolicy}
	return handlers{
		avatars:  deps.Avatars,
		sessions: deps.Sessions,
		picks:    picks,
		random:   rnd,
		loginURL: loginURL,
		flash:    cookies,
		renderer: pagerender.Renderer{Flash: cookies},
		logger:   logger,
	}
}

// handleLoad mounts a new screen: guard, fetch, store the pick, then send the
// browser to it.
func (h handlers) handleLoad(w http.ResponseWriter, r *http.Request) {
	bound, ok := websession.Resolve(r, h.sessions)
	if !ok {
		httpx.WriteRedirect(w, r, h.loginURL)
		return
	}
	_, batch, err := h.avatars.Load(httpx.RequestContext(r), bound)
	if errors.Is(err, avatar.ErrNotLoggedIn) {
		httpx.WriteRedirect(w, r, h.loginURL)
		return
	}
	if err != nil {
		h.logger.Error("load avatar candidates", "err", err)
		h.writeError(w, r, apperrors.Wrap(apperrors.KindUnavailable, "web.error.unavailable", err))
		return
	}
	pickID, err := h.picks.create(bound.SessionID(), batch)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if len(batch.Candidates) == 0 {
		h.flash.Write(w, r, flash.NoticeWarning("web.set_avatar.notice_no_candidates"))
	}
	httpx.WriteRedirect(w, r, routepath.SetAvatarPick(pickID))
}

func (h handlers) handlePick(w http.ResponseWriter, r *http.Request) {
	bound, ok := websession.Resolve(r, h.sessions)
	if !ok {
		httpx.WriteRedirect(w, r, h.loginURL)
		return
	}
	snap, err := h.picks.snapshot(r.PathValue("pickID"), bound.SessionID())
	if err != nil {
		h.writePickError(w, r, err)
		return
	}
	view := setAvatarView(snap)
	if err := h.renderer.Write(w, r, pagerender.Page{
		TitleKey: "web.set_avatar.heading",
		Body: func(loc webtemplates.Localizer) templ.Component {
			return webtemplates.SetAvatarPage(view, loc)
		},
	}); err != nil {
		h.logger.Error("render set avatar page", "err", err)
		h.writeError(w, r, err)
	}
}

func (h handlers) handleSelect(w http.ResponseWriter, r *http.Request) {
	bound, ok := websession.Resolve(r, h.sessions)
	if !ok {
		httpx.WriteRedirect(w, r, h.loginURL)
		return
	}
	pickID := r.PathValue("pickID")
	if err := r.ParseForm(); err != nil {
		h.writeError(w, r, apperrors.EK(apperrors.KindInvalidInput, "web.error.invalid_selection", "failed to parse selection form"))
		return
	}
	index, err := strconv.Atoi(strings.TrimSpace(r.FormValue("index")))
	if err != nil {
		h.writeError(w, r, apperrors.EK(apperrors.KindInvalidInput, "web.error.invalid_selection", "selection index is not a number"))
		return
	}
	err = h.picks.update(pickID, bound.SessionID(), func(p *pick) error {
		return p.picker.Select(index)
	})
	switch {
	case errors.Is(err, avatar.ErrIndexOutOfRange):
		h.writeError(w, r, apperrors.Wrap(apperrors.KindInvalidInput, "web.error.invalid_selection", err))
		return
	case err != nil:
		h.writePickError(w, r, err)
		return
	}
	httpx.WriteRedirect(w, r, routepath.SetAvatarPick(pickID))
}

func (h handlers) handleRandom(w http.ResponseWriter, r *http.Request) {
	bound, ok := websession.Resolve(r, h.sessions)
	if !ok {
		httpx.WriteRedirect(w, r, h.loginURL)
		return
	}
	pickID := r.PathValue("pickID")
	err := h.picks.update(pickID, bound.SessionID(), func(p *pick) error {
		_, err := p.picker.SelectRandom(h.random)
		return err
	})
	switch {
	case errors.Is(err, avatar.ErrNoCandidates):
		h.flash.Write(w, r, flash.NoticeWarning("web.set_avatar.notice_no_candidates"))
	case err != nil:
		h.writePickError(w, r, err)
		return
	}
	httpx.WriteRedirect(w, r, routepath.SetAvatarPick(pickID))
}

func (h handlers) handleSubmit(w http.ResponseWriter, r *http.Request) {
	bound, ok := websession.Resolve(r, h.sessions)
	if !ok {
		httpx.WriteRedirect(w, r, h.loginURL)
		return
	}
	pickID := r.PathValue("pickID")
	snap, err := h.picks.snapshot(pickID, bound.SessionID())
	if err != nil {
		h.writePickError(w, r, err)
		return
	}
	_, err = h.avatars.Submit(httpx.RequestContext(r), bound, snap.Picker())
	if errors.Is(err, avatar.ErrNotLoggedIn) {
		httpx.WriteRedirect(w, r, h.loginURL)
		return
	}
	if err != nil {
		h.flash.Write(w, r, submitNotice(err))
		httpx.WriteRedirect(w, r, routepath.SetAvatarPick(pickID))
		return
	}
	h.picks.remove(pickID)
	h.flash.Write(w, r, flash.NoticeSuccess("web.set_avatar.notice_saved"))
	httpx.WriteRedirect(w, r, routepath.Root)
}

func (h handlers) handleNotFound(w http.ResponseWriter, r *http.Request) {
	weberror.NotFound(w, r, h.renderer)
}

func (h handlers) writePickError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, errPickNotFound) {
		h.writeError(w, r, apperrors.Wrap(apperrors.KindNotFound, "web.error.pick_not_found", err))
		return
	}
	h.writeError(w, r, err)
}

func (h handlers) writeError(w http.ResponseWriter, r *http.Request, err error) {
	weberror.Write(w, r, h.renderer, err)
}

// submitNotice maps a failed submit to its toast.
func submitNotice(err error) flash.Notice {
	message, _ := avatar.Notice(err)
	if message == avatar.MessageSelectAvatar {
		return flash.NoticeWarning("web.set_avatar.notice_select")
	}
	return flash.NoticeError("web.set_avatar.notice_failed")
}

func setAvatarView(snap pickSnapshot) webtemplates.SetAvatarView {
	candidates := make([]webtemplates.CandidateView, 0, len(snap.Candidates))
	for i, image := range snap.Candidates {
		candidates = append(candidates, webtemplates.CandidateView{
			Index:    i,
			Image:    image,
			Selected: snap.HasChoice && snap.Selected == i,
		})
	}
	return webtemplates.SetAvatarView{
		Candidates: candidates,
		Failed:     snap.Failed,
		Attempts:   snap.Attempts,
		SelectURL:  routepath.SetAvatarSelect(snap.ID),
		RandomURL:  routepath.SetAvatarRandom(snap.ID),
		SubmitURL:  routepath.SetAvatarSubmit(snap.ID),
		ReloadURL:  routepath.SetAvatar,
	}
}
