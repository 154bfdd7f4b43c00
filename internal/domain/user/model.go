package user

import "time"

// User is an account identity. PasswordHash is a bcrypt digest; the login
// password itself is never stored.
type User struct {
	ID           string
	Email        string
	Username     string
	PasswordHash string
	CreatedAt    time.Time
}
