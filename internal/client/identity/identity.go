// Package identity supplies the current user to every mutation and
// aggregation call. Authorship used to be a hardcoded constant in the web
// frontend; here it always flows in from a Provider so remote sessions and
// the local profile plug into the same seam.
package identity

import "context"

// User identifies the acting user for attribution and remote scoping.
type User struct {
	ID     string
	Name   string
	Email  string
	Avatar string
}

// Provider yields the identity mutations and stats should be attributed to.
type Provider interface {
	Current(ctx context.Context) (User, error)
}

// Static is a fixed-identity provider, used in tests and as a last-resort
// fallback.
type Static struct {
	User User
}

func (s Static) Current(ctx context.Context) (User, error) {
	return s.User, nil
}
