package users

import "time"

// User is the server-owned account record. PasswordHash is a bcrypt hash;
// the plaintext password never leaves the service layer.
type User struct {
	ID           string
	Username     string
	PasswordHash string
	CreatedAt    time.Time
}
