// Package session models the persisted record of a logged-in user and the
// stores that hold it.
//
// A record is a JSON object stored under StorageKey for each browser or
// terminal session. Only the avatar fields are interpreted here; every other
// field written by the login flow is carried through untouched.
package session
