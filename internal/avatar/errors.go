package avatar

import "errors"

var (
	// ErrNotLoggedIn indicates there is no session record for the caller.
	ErrNotLoggedIn = errors.New("not logged in")
	// ErrNoSelection indicates submit was requested before any candidate was chosen.
	ErrNoSelection = errors.New("no avatar selected")
	// ErrAvatarNotSet indicates the backend answered but did not set the avatar.
	ErrAvatarNotSet = errors.New("avatar was not set")
	// ErrBackendUnavailable indicates the set-avatar call failed in transport or decoding.
	ErrBackendUnavailable = errors.New("set avatar backend unavailable")
	// ErrNoCandidates indicates a random selection over an empty candidate list.
	ErrNoCandidates = errors.New("no avatar candidates")
	// ErrIndexOutOfRange indicates a selection outside the candidate list.
	ErrIndexOutOfRange = errors.New("avatar index out of range")
)

// User-facing notices.
const (
	MessageSelectAvatar    = "Please select an avatar"
	MessageSetAvatarFailed = "Error setting avatar. Please try again."
)

// Notice maps a submit error to the notice shown to the user. It returns false
// for errors that are not surfaced as a notice (ErrNotLoggedIn redirects).
func Notice(err error) (string, bool) {
	switch {
	case err == nil:
		return "", false
	case errors.Is(err, ErrNotLoggedIn):
		return "", false
	case errors.Is(err, ErrNoSelection):
		return MessageSelectAvatar, true
	default:
		return MessageSetAvatarFailed, true
	}
}
