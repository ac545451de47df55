package guard

import (
	"testing"
)

func TestDecide(t *testing.T) {
	tests := []struct {
		name     string
		kind     RouteKind
		signedIn bool
		want     Decision
	}{
		{"anonymous blocked from authenticated screen", AuthenticatedOnly, false, RedirectSignIn},
		{"signed-in allowed into authenticated screen", AuthenticatedOnly, true, Allow},
		{"signed-in blocked from anonymous screen", AnonymousOnly, true, RedirectDashboard},
		{"anonymous allowed into anonymous screen", AnonymousOnly, false, Allow},
		{"public screen, anonymous", Public, false, Allow},
		{"public screen, signed in", Public, true, Allow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Decide(tt.kind, tt.signedIn); got != tt.want {
				t.Fatalf("Decide(%v, %v) = %v, want %v", tt.kind, tt.signedIn, got, tt.want)
			}
		})
	}
}
