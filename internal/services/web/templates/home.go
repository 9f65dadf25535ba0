package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// HomeView is the landing page state for a logged-in user.
type HomeView struct {
	Username     string
	AvatarImage  string
	HasAvatar    bool
	SetAvatarURL string
}

// HomePage renders the current avatar and a link back to the picker.
func HomePage(view HomeView, loc Localizer) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		h := &html{w: w}
		h.raw(`<section class="home"><h1>`)
		if view.Username != "" {
			h.text(T(loc, "web.home.greeting", view.Username))
		} else {
			h.text(T(loc, "web.home.greeting_anonymous"))
		}
		h.raw(`</h1>`)
		linkKey := "web.home.pick_avatar"
		if view.HasAvatar && view.AvatarImage != "" {
			h.raw(`<img class="current-avatar"`)
			h.attr("src", ImageDataURI(view.AvatarImage))
			h.attr("alt", T(loc, "web.home.avatar_alt"))
			h.raw(`>`)
			linkKey = "web.home.change_avatar"
		} else {
			h.raw(`<p>`)
			h.text(T(loc, "web.home.no_avatar"))
			h.raw(`</p>`)
		}
		h.raw(`<a class="submit-btn"`)
		h.attr("href", view.SetAvatarURL)
		h.raw(`>`)
		h.text(T(loc, linkKey))
		h.raw(`</a></section>`)
		return h.err
	})
}
