package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// ToastAutoCloseMillis is how long a toast stays up without hover.
const ToastAutoCloseMillis = 8000

// ToastView is one rendered notice.
type ToastView struct {
	Kind    string
	Message string
}

// Toast renders a dismissible dark toast pinned to the bottom-right corner.
func Toast(view ToastView, loc Localizer) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		h := &html{w: w}
		kind := view.Kind
		if kind == "" {
			kind = "info"
		}
		h.raw(`<div class="toast-container toast-bottom-right" aria-live="polite"><div`)
		h.attr("class", "toast toast-dark toast-"+kind)
		h.attr("role", "alert")
		h.intAttr("data-autoclose", ToastAutoCloseMillis)
		h.attr("data-pause-on-hover", "true")
		h.raw(`><span class="toast-message">`)
		h.text(view.Message)
		h.raw(`</span><button type="button" class="toast-close"`)
		h.attr("aria-label", T(loc, "web.toast.close"))
		h.raw(`>&times;</button></div></div>`)
		return h.err
	})
}
