// Package weberror renders error pages for web modules.
package weberror

import (
	"net/http"

	"github.com/a-h/templ"

	"github.com/louisbranch/avatarpick/internal/services/web/platform/errors"
	"github.com/louisbranch/avatarpick/internal/services/web/platform/pagerender"
	"github.com/louisbranch/avatarpick/internal/services/web/routepath"
	webtemplates "github.com/louisbranch/avatarpick/internal/services/web/templates"
)

// MessageKey returns the localization key shown for err.
func MessageKey(err error) string {
	if key := errors.LocalizationKey(err); key != "" {
		return key
	}
	switch errors.HTTPStatus(err) {
	case http.StatusNotFound:
		return "web.error.not_found"
	case http.StatusServiceUnavailable:
		return "web.error.unavailable"
	default:
		return "web.error.internal"
	}
}

// Write renders the error page for err with its mapped status.
func Write(w http.ResponseWriter, r *http.Request, renderer pagerender.Renderer, err error) {
	if w == nil {
		return
	}
	statusCode := errors.HTTPStatus(err)
	if statusCode < http.StatusBadRequest {
		statusCode = http.StatusInternalServerError
	}
	view := webtemplates.ErrorView{StatusCode: statusCode, MessageKey: MessageKey(err), HomeURL: routepath.Root}
	renderErr := renderer.Write(w, r, pagerender.Page{
		TitleKey:   "web.error.title",
		StatusCode: statusCode,
		Body: func(loc webtemplates.Localizer) templ.Component {
			return webtemplates.ErrorPage(view, loc)
		},
	})
	if renderErr != nil {
		http.Error(w, http.StatusText(statusCode), statusCode)
	}
}

// NotFound renders the not-found page.
func NotFound(w http.ResponseWriter, r *http.Request, renderer pagerender.Renderer) {
	Write(w, r, renderer, errors.EK(errors.KindNotFound, "web.error.not_found", "not found"))
}
