package templates

import (
	"context"
	"io"
	"strconv"

	"github.com/a-h/templ"
)

// ImageDataURI builds the inline source for a base64 SVG candidate.
func ImageDataURI(image string) string {
	return "data:image/svg+xml;base64," + image
}

// CandidateView is one selectable avatar.
type CandidateView struct {
	Index    int
	Image    string
	Selected bool
}

// SetAvatarView is the selection screen state.
type SetAvatarView struct {
	Candidates []CandidateView
	Failed     int
	Attempts   int
	SelectURL  string
	RandomURL  string
	SubmitURL  string
	ReloadURL  string
}

// SetAvatarPage renders the avatar selection screen.
func SetAvatarPage(view SetAvatarView, loc Localizer) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		h := &html{w: w}
		h.raw(`<section class="set-avatar"><div class="title-container"><h1>`)
		h.text(T(loc, "web.set_avatar.heading"))
		h.raw(`</h1></div>`)

		if view.Failed > 0 && len(view.Candidates) > 0 {
			h.raw(`<p class="fetch-warning">`)
			h.text(T(loc, "web.set_avatar.partial", view.Failed, view.Attempts))
			h.raw(`</p>`)
		}

		if len(view.Candidates) == 0 {
			h.raw(`<p class="empty">`)
			h.text(T(loc, "web.set_avatar.empty"))
			h.raw(`</p>`)
		} else {
			h.raw(`<form method="post" class="avatars"`)
			h.attr("action", view.SelectURL)
			h.raw(`>`)
			for _, candidate := range view.Candidates {
				class := "avatar"
				if candidate.Selected {
					class += " selected"
				}
				h.raw(`<button type="submit" name="index"`)
				h.attr("value", strconv.Itoa(candidate.Index))
				h.attr("class", class)
				if candidate.Selected {
					h.attr("aria-pressed", "true")
				}
				h.raw(`><img`)
				h.attr("src", ImageDataURI(candidate.Image))
				h.attr("alt", T(loc, "web.set_avatar.candidate_alt", candidate.Index+1))
				h.raw(`></button>`)
			}
			h.raw(`</form>`)
		}

		h.raw(`<div class="actions">`)
		if len(view.Candidates) > 0 {
			h.raw(`<form method="post"`)
			h.attr("action", view.SubmitURL)
			h.raw(`><button type="submit" class="submit-btn">`)
			h.text(T(loc, "web.set_avatar.submit"))
			h.raw(`</button></form><form method="post"`)
			h.attr("action", view.RandomURL)
			h.raw(`><button type="submit" class="submit-btn secondary">`)
			h.text(T(loc, "web.set_avatar.random"))
			h.raw(`</button></form>`)
		}
		h.raw(`<a class="reload"`)
		h.attr("href", view.ReloadURL)
		h.raw(`>`)
		h.text(T(loc, "web.set_avatar.reload"))
		h.raw(`</a></div></section>`)
		return h.err
	})
}
