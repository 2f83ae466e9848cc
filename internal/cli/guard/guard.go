// Package guard decides, synchronously, whether a navigation may proceed.
package guard

// Session is the snapshot the guard consults. It must already be resolved;
// Decide never waits on the network.
type Session interface {
	IsAuthenticated() bool
	IsAdmin() bool
}

type Action int

const (
	// Allow lets the navigation proceed.
	Allow Action = iota
	// RedirectLogin sends the user to the login route, carrying the
	// originally intended path as the return target.
	RedirectLogin
	// RedirectHome silently downgrades an authenticated non-admin to the
	// home route. Not an error.
	RedirectHome
)

// Decision is the outcome of a guard evaluation.
type Decision struct {
	Action     Action
	RedirectTo string
	// ReturnTo is the denied path, set on RedirectLogin so the login flow
	// can send the user back afterwards.
	ReturnTo string
}

// Decide evaluates a navigation intent against the current session. It is
// pure and must be re-evaluated for every attempt; the session may have
// changed in between.
func Decide(route Route, s Session) Decision {
	if route.RequiresAdmin {
		if !s.IsAuthenticated() {
			return Decision{Action: RedirectLogin, RedirectTo: Login.Path, ReturnTo: route.Path}
		}
		if !s.IsAdmin() {
			return Decision{Action: RedirectHome, RedirectTo: Home.Path}
		}
		return Decision{Action: Allow}
	}

	if route.RequiresAuth && !s.IsAuthenticated() {
		return Decision{Action: RedirectLogin, RedirectTo: Login.Path, ReturnTo: route.Path}
	}

	return Decision{Action: Allow}
}
