// Package session owns the client-side authentication state: a single
// Session value mutated only through the Manager's four operations (login,
// register, logout, restore), persisted to the device-local credential store.
package session

// User is the client-side view of the signed-in account.
type User struct {
	Email string `json:"email"`
}

// Session is the client-held record of current authentication status.
//
// Invariant: Token non-empty means the navigation layer treats the user as
// authenticated. While Loading is true no navigation decision is made.
type Session struct {
	User    *User
	Token   string
	Loading bool
	Err     string
}

// Authenticated reports whether the session carries a token.
func (s Session) Authenticated() bool {
	return s.Token != ""
}

// clone returns a deep copy so observers never share the User pointer with
// the manager's internal state.
func (s Session) clone() Session {
	out := s
	if s.User != nil {
		u := *s.User
		out.User = &u
	}
	return out
}
