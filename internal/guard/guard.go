// Package guard decides whether navigation to a screen is allowed for the
// current identity state. It is a pure two-state decision table; HTTP
// enforcement lives in the middleware package.
package guard

// RouteKind classifies a screen by who may enter it.
type RouteKind int

const (
	// Public routes are reachable regardless of identity state.
	Public RouteKind = iota
	// AuthenticatedOnly screens require a signed-in identity.
	AuthenticatedOnly
	// AnonymousOnly screens (sign-in, sign-up) are for signed-out users.
	AnonymousOnly
)

// Decision is the outcome of a navigation attempt.
type Decision int

const (
	Allow Decision = iota
	// RedirectSignIn blocks the navigation and sends the user to the
	// sign-in screen.
	RedirectSignIn
	// RedirectDashboard blocks the navigation and sends the user to the
	// dashboard.
	RedirectDashboard
)

// Decide applies the guard table: anonymous users are bounced off
// authenticated-only screens to sign-in, signed-in users are bounced off
// anonymous-only screens to the dashboard, everything else passes.
func Decide(kind RouteKind, signedIn bool) Decision {
	switch kind {
	case AuthenticatedOnly:
		if !signedIn {
			return RedirectSignIn
		}
	case AnonymousOnly:
		if signedIn {
			return RedirectDashboard
		}
	}
	return Allow
}
