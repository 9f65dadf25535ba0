package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func init() {
	lang := language.AmericanEnglish

	message.SetString(lang, "web.app_name", "Avatar Pick")
	message.SetString(lang, "web.title.page", "%s | Avatar Pick")

	// Selection screen
	message.SetString(lang, "web.set_avatar.heading", "Pick an Avatar as your profile picture")
	message.SetString(lang, "web.set_avatar.submit", "Set as Profile Picture")
	message.SetString(lang, "web.set_avatar.random", "Select Random Avatar")
	message.SetString(lang, "web.set_avatar.reload", "Load new avatars")
	message.SetString(lang, "web.set_avatar.candidate_alt", "Avatar %d")
	message.SetString(lang, "web.set_avatar.empty", "No avatars could be loaded.")
	message.SetString(lang, "web.set_avatar.partial", "%d of %d avatars could not be loaded.")
	message.SetString(lang, "web.set_avatar.notice_select", "Please select an avatar")
	message.SetString(lang, "web.set_avatar.notice_failed", "Error setting avatar. Please try again.")
	message.SetString(lang, "web.set_avatar.notice_saved", "Your avatar is set.")
	message.SetString(lang, "web.set_avatar.notice_no_candidates", "There are no avatars to choose from.")

	// Home
	message.SetString(lang, "web.home.title", "Home")
	message.SetString(lang, "web.home.greeting", "Welcome, %s")
	message.SetString(lang, "web.home.greeting_anonymous", "Welcome")
	message.SetString(lang, "web.home.avatar_alt", "Your avatar")
	message.SetString(lang, "web.home.no_avatar", "You have not picked an avatar yet.")
	message.SetString(lang, "web.home.change_avatar", "Change avatar")
	message.SetString(lang, "web.home.pick_avatar", "Pick an avatar")

	// Toasts
	message.SetString(lang, "web.toast.close", "Close")

	// Errors
	message.SetString(lang, "web.error.title", "Error")
	message.SetString(lang, "web.error.not_found", "This page does not exist or has expired.")
	message.SetString(lang, "web.error.pick_not_found", "This avatar selection has expired. Load new avatars to continue.")
	message.SetString(lang, "web.error.invalid_selection", "That avatar is not available.")
	message.SetString(lang, "web.error.unavailable", "The avatar service is unavailable. Please try again.")
	message.SetString(lang, "web.error.internal", "Something went wrong.")
	message.SetString(lang, "web.error.back_home", "Back to home")
}
