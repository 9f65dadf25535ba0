package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// ErrorView describes a failed request.
type ErrorView struct {
	StatusCode int
	MessageKey string
	HomeURL    string
}

// ErrorPage renders a localized error message with a way back.
func ErrorPage(view ErrorView, loc Localizer) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		h := &html{w: w}
		key := view.MessageKey
		if key == "" {
			key = "web.error.internal"
		}
		h.raw(`<section class="error"`)
		h.intAttr("data-status", view.StatusCode)
		h.raw(`><h1>`)
		h.text(T(loc, "web.error.title"))
		h.raw(`</h1><p>`)
		h.text(T(loc, key))
		h.raw(`</p><a`)
		h.attr("href", view.HomeURL)
		h.raw(`>`)
		h.text(T(loc, "web.error.back_home"))
		h.raw(`</a></section>`)
		return h.err
	})
}
