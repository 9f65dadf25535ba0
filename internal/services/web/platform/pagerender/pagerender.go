// Package pagerender renders full pages, and bare fragments for HTMX, with
// the pending flash notice shown as a toast.
package pagerender

import (
	"bytes"
	"net/http"
	"strings"

	"github.com/a-h/templ"
	"golang.org/x/text/message"

	webi18n "github.com/louisbranch/avatarpick/internal/services/web/i18n"
	"github.com/louisbranch/avatarpick/internal/services/web/platform/flash"
	"github.com/louisbranch/avatarpick/internal/services/web/platform/httpx"
	webtemplates "github.com/louisbranch/avatarpick/internal/services/web/templates"
)

// Page describes one page response.
type Page struct {
	TitleKey   string
	StatusCode int
	// Body builds the page content once the request language is known.
	Body func(loc webtemplates.Localizer) templ.Component
}

// Renderer writes pages.
type Renderer struct {
	Flash flash.Cookies
}

// Localizer resolves the request printer, persisting an explicit language
// choice.
func (Renderer) Localizer(w http.ResponseWriter, r *http.Request) (*message.Printer, string) {
	printer, tag := webi18n.ResolvePrinter(w, r)
	return printer, tag.String()
}

// Write renders page. The response is buffered so a render failure can still
// produce an error status.
func (rd Renderer) Write(w http.ResponseWriter, r *http.Request, page Page) error {
	if w == nil {
		return nil
	}
	statusCode := page.StatusCode
	if statusCode <= 0 {
		statusCode = http.StatusOK
	}
	loc, lang := rd.Localizer(w, r)
	var body templ.Component = templ.NopComponent
	if page.Body != nil {
		body = page.Body(loc)
	}

	ctx := httpx.RequestContext(r)
	var buf bytes.Buffer
	if httpx.IsHTMXRequest(r) {
		if err := body.Render(ctx, &buf); err != nil {
			return err
		}
	} else {
		layout := webtemplates.Layout(webtemplates.PageView{
			Lang:   lang,
			Title:  webtemplates.T(loc, page.TitleKey),
			Loc:    loc,
			Notice: rd.toast(w, r, loc),
		}, body)
		if err := layout.Render(ctx, &buf); err != nil {
			return err
		}
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(statusCode)
	_, _ = w.Write(buf.Bytes())
	return nil
}

func (rd Renderer) toast(w http.ResponseWriter, r *http.Request, loc webtemplates.Localizer) *webtemplates.ToastView {
	notice, ok := rd.Flash.ReadAndClear(w, r)
	if !ok {
		return nil
	}
	text := strings.TrimSpace(webtemplates.T(loc, notice.Key))
	if text == "" {
		return nil
	}
	return &webtemplates.ToastView{Kind: string(notice.Kind), Message: text}
}
