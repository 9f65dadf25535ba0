package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// StylesheetPath and ScriptPath locate the embedded static assets.
const (
	StylesheetPath = "/static/css/app.css"
	ScriptPath     = "/static/js/toast.js"
)

// PageView carries the document chrome shared by every page.
type PageView struct {
	Lang   string
	Title  string
	Loc    Localizer
	Notice *ToastView
}

// Layout renders the HTML document around body.
func Layout(page PageView, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := &html{w: w}
		lang := page.Lang
		if lang == "" {
			lang = "en-US"
		}
		h.raw("<!DOCTYPE html><html")
		h.attr("lang", lang)
		h.raw(`><head><meta charset="utf-8"><meta name="viewport" content="width=device-width, initial-scale=1"><title>`)
		h.text(T(page.Loc, "web.title.page", page.Title))
		h.raw(`</title><link rel="stylesheet"`)
		h.attr("href", StylesheetPath)
		h.raw(`><script defer`)
		h.attr("src", ScriptPath)
		h.raw(`></script></head><body><main class="container">`)
		if h.err != nil {
			return h.err
		}
		if body != nil {
			if err := body.Render(ctx, w); err != nil {
				return err
			}
		}
		h.raw(`</main>`)
		if h.err != nil {
			return h.err
		}
		if page.Notice != nil {
			if err := Toast(*page.Notice, page.Loc).Render(ctx, w); err != nil {
				return err
			}
		}
		h.raw(`</body></html>`)
		return h.err
	})
}
