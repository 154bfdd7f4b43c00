package session

import "errors"

var (
	// ErrNoSession means the token is unknown or expired.
	ErrNoSession = errors.New("no valid session")

	// ErrUnauthenticated is surfaced by Require when an operation is
	// attempted without a live session.
	ErrUnauthenticated = errors.New("not authenticated")
)
