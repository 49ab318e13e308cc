package identity

import (
	"context"

	"github.com/ecellnce/campushub/internal/client/store"
	"github.com/ecellnce/campushub/internal/common"
)

// ProfileProvider derives the identity from the locally stored profile,
// the behavior an offline-only install gets.
type ProfileProvider struct {
	store *store.Store
}

func NewProfileProvider(s *store.Store) *ProfileProvider {
	return &ProfileProvider{store: s}
}

func (p *ProfileProvider) Current(ctx context.Context) (User, error) {
	profile, err := p.store.Profile(ctx)
	if err != nil {
		return User{}, err
	}

	avatar := profile.Avatar
	if avatar == "" {
		avatar = common.Initials(profile.Name)
	}

	return User{
		ID:     profile.Email,
		Name:   profile.Name,
		Email:  profile.Email,
		Avatar: avatar,
	}, nil
}
