// Package routepath stores canonical HTTP paths for web modules.
package routepath

import "net/url"

const (
	Root                     = "/"
	Login                    = "/login"
	Health                   = "/up"
	StaticPrefix             = "/static/"
	SetAvatar                = "/set-avatar"
	SetAvatarPrefix          = "/set-avatar/"
	SetAvatarPickPattern     = SetAvatarPrefix + "{pickID}"
	SetAvatarSelectPattern   = SetAvatarPrefix + "{pickID}/select"
	SetAvatarRandomPattern   = SetAvatarPrefix + "{pickID}/random"
	SetAvatarSubmitPattern   = SetAvatarPrefix + "{pickID}/submit"
	SetAvatarPickRestPattern = SetAvatarPrefix + "{pickID}/{rest...}"
	DevSessionPrefix         = "/dev/session/"
	DevSessionPattern        = DevSessionPrefix + "{sessionID}"
	DevSessionEnd            = DevSessionPrefix + "end"
)

// SetAvatarPick returns the selection screen path for a pick.
func SetAvatarPick(pickID string) string {
	return SetAvatarPrefix + url.PathEscape(pickID)
}

// SetAvatarSelect returns the select action path for a pick.
func SetAvatarSelect(pickID string) string {
	return SetAvatarPick(pickID) + "/select"
}

// SetAvatarRandom returns the randomize action path for a pick.
func SetAvatarRandom(pickID string) string {
	return SetAvatarPick(pickID) + "/random"
}

// SetAvatarSubmit returns the submit action path for a pick.
func SetAvatarSubmit(pickID string) string {
	return SetAvatarPick(pickID) + "/submit"
}

// DevSession returns the handoff path that signs a browser into sessionID.
func DevSession(sessionID string) string {
	return DevSessionPrefix + url.PathEscape(sessionID)
}
