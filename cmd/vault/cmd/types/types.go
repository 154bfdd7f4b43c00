// Package types carries the values the root command shares with its
// subcommands through the command context.
package types

import (
	"context"

	"passvault/internal/app"
)

type ContextKey string

// AppKey is the context key under which the wired application lives.
const AppKey ContextKey = "app"

// FromContext pulls the application out of a command context.
func FromContext(ctx context.Context) *app.App {
	a, _ := ctx.Value(AppKey).(*app.App)
	return a
}
