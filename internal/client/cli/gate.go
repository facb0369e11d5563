package cli

import "wodtracker/internal/client/session"

// Screen names the group of commands currently available to the user.
type Screen string

const (
	// ScreenLoading blocks input while an auth operation is in flight.
	ScreenLoading Screen = "loading"
	// ScreenAuth offers register and login.
	ScreenAuth Screen = "auth"
	// ScreenMain offers the workout commands.
	ScreenMain Screen = "main"
)

// ScreenFor decides which command group a session state maps to. Loading
// wins over everything else so a half-finished login never exposes the
// authenticated commands.
func ScreenFor(s session.Session) Screen {
	if s.Loading {
		return ScreenLoading
	}
	if s.Authenticated() {
		return ScreenMain
	}
	return ScreenAuth
}
