package identity

import (
	"context"
)

// ContextKey is a type for context keys to avoid collisions.
type ContextKey string

const (
	// Key is the context key for Identity.
	Key ContextKey = "identity"

	// WhitelistedSubject is the synthetic subject for allow-listed callers.
	WhitelistedSubject = "whitelisted"

	// RoleAdmin is granted to allow-listed callers.
	RoleAdmin = "admin"

	// RoleUser is the default role when a token carries none.
	RoleUser = "user"
)

// Identity is the authenticated caller for a single request, either
// decoded from a verified bearer token or synthesized for an
// allow-listed network address.
type Identity struct {
	Subject string
	Role    string
}

// Whitelisted returns the synthetic admin identity for allow-listed callers.
func Whitelisted() *Identity {
	return &Identity{Subject: WhitelistedSubject, Role: RoleAdmin}
}

// IsAdmin reports whether the identity carries the admin role.
func (i *Identity) IsAdmin() bool {
	return i.Role == RoleAdmin
}

// Get retrieves Identity from context.
func Get(ctx context.Context) (*Identity, bool) {
	id, ok := ctx.Value(Key).(*Identity)
	return id, ok
}

// Set stores Identity in context.
func Set(ctx context.Context, id *Identity) context.Context {
	return context.WithValue(ctx, Key, id)
}
