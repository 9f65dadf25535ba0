// Package avatar implements the avatar selection screen independently of how
// it is presented.
//
// A Service guards the screen behind a session record, loads a batch of
// candidate images through a Fetcher and persists the chosen image through a
// Backend. Candidate selection state lives in a Picker owned by the caller.
// Everything external (image API, backend, session storage, randomness) is
// injected, so the web handlers and the terminal UI share the same flow.
package avatar
