// Package websession binds the session cookie of a request to the session
// record store.
package websession

import (
	"net/http"

	"github.com/louisbranch/avatarpick/internal/session"
	"github.com/louisbranch/avatarpick/internal/services/web/platform/sessioncookie"
)

// Resolve returns store narrowed to the request's session. ok is false when
// the request carries no session cookie.
func Resolve(r *http.Request, store session.Store) (session.Bound, bool) {
	sessionID, ok := sessioncookie.Read(r)
	if !ok {
		return session.Bound{}, false
	}
	return session.Bind(store, sessionID), true
}
