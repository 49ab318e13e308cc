package feed

import (
	"context"

	"github.com/ecellnce/campushub/internal/client/identity"
	"github.com/ecellnce/campushub/internal/client/models"
	"github.com/ecellnce/campushub/internal/client/stats"
	"github.com/ecellnce/campushub/internal/client/store"
	"github.com/ecellnce/campushub/internal/common"
	"github.com/ecellnce/campushub/internal/logging"
)

// PostsState is the feed reconciler's snapshot: the posts collection plus
// the session's like flags. The flags are not persisted: the backend has no
// liker set, so a flag surviving the session could not be reconciled
// against the counter anyway.
type PostsState struct {
	Posts []models.Post
	Liked map[string]bool
}

// EventsState pairs the cached events with the user's RSVP map; the two are
// always persisted together.
type EventsState struct {
	Events []models.Event
	RSVP   map[string]bool
}

// Service is the feed engine the UI talks to: every user intent goes
// through a pure mutator and a serialized reconciler cycle, and every view
// reads back canonical snapshots.
type Service struct {
	who     identity.Provider
	posts   *Reconciler[PostsState]
	events  *Reconciler[EventsState]
	profile *Reconciler[models.Profile]
}

func NewService(s *store.Store, who identity.Provider, logger logging.Logger) *Service {
	posts := NewReconciler(common.KeyPosts,
		func(ctx context.Context) (PostsState, error) {
			p, err := s.Posts(ctx)
			if err != nil {
				return PostsState{}, err
			}
			return PostsState{Posts: p, Liked: map[string]bool{}}, nil
		},
		func(ctx context.Context, st PostsState) error {
			return s.SavePosts(ctx, st.Posts)
		},
		logger,
	)

	events := NewReconciler(common.KeyEvents,
		func(ctx context.Context) (EventsState, error) {
			ev, err := s.Events(ctx)
			if err != nil {
				return EventsState{}, err
			}
			rsvp, err := s.RSVP(ctx)
			if err != nil {
				return EventsState{}, err
			}
			return EventsState{Events: ev, RSVP: rsvp}, nil
		},
		func(ctx context.Context, st EventsState) error {
			return s.SaveEventsAndRSVP(ctx, st.Events, st.RSVP)
		},
		logger,
	)

	profile := NewReconciler(common.KeyProfile, s.Profile, s.SaveProfile, logger)

	return &Service{who: who, posts: posts, events: events, profile: profile}
}

// CreatePost validates and prepends a new post authored by the current user.
func (s *Service) CreatePost(ctx context.Context, draft models.PostDraft) (models.Post, error) {
	user, err := s.who.Current(ctx)
	if err != nil {
		return models.Post{}, err
	}

	st, err := s.posts.Apply(ctx, func(cur PostsState) (PostsState, error) {
		next, err := AddPost(cur.Posts, draft, user.Name, user.Avatar)
		if err != nil {
			return PostsState{}, err
		}
		return PostsState{Posts: next, Liked: cur.Liked}, nil
	})
	if err != nil {
		return models.Post{}, err
	}
	return st.Posts[0], nil
}

// ToggleLike flips the current session's like on postID and reports the
// resulting flag.
func (s *Service) ToggleLike(ctx context.Context, postID string) (bool, error) {
	st, err := s.posts.Apply(ctx, func(cur PostsState) (PostsState, error) {
		nextPosts, nextLiked, err := ToggleLike(cur.Posts, cur.Liked, postID)
		if err != nil {
			return PostsState{}, err
		}
		return PostsState{Posts: nextPosts, Liked: nextLiked}, nil
	})
	if err != nil {
		return false, err
	}
	return st.Liked[postID], nil
}

// AddComment appends a comment by the current user to postID.
func (s *Service) AddComment(ctx context.Context, postID, text string) error {
	user, err := s.who.Current(ctx)
	if err != nil {
		return err
	}

	_, err = s.posts.Apply(ctx, func(cur PostsState) (PostsState, error) {
		next, err := AddComment(cur.Posts, postID, text, user.Name)
		if err != nil {
			return PostsState{}, err
		}
		return PostsState{Posts: next, Liked: cur.Liked}, nil
	})
	return err
}

// ToggleRSVP flips the attendance flag for eventID and reports the new flag.
func (s *Service) ToggleRSVP(ctx context.Context, eventID string) (bool, error) {
	st, err := s.events.Apply(ctx, func(cur EventsState) (EventsState, error) {
		nextEvents, nextRSVP, err := ToggleRSVP(cur.Events, cur.RSVP, eventID)
		if err != nil {
			return EventsState{}, err
		}
		return EventsState{Events: nextEvents, RSVP: nextRSVP}, nil
	})
	if err != nil {
		return false, err
	}
	return st.RSVP[eventID], nil
}

// UpdateProfile merges the patch into the stored profile.
func (s *Service) UpdateProfile(ctx context.Context, patch models.ProfilePatch) (models.Profile, error) {
	return s.profile.Apply(ctx, func(cur models.Profile) (models.Profile, error) {
		return PatchProfile(cur, patch), nil
	})
}

// Posts returns the current feed snapshot.
func (s *Service) Posts(ctx context.Context) (PostsState, error) {
	return s.posts.Snapshot(ctx)
}

// Events returns the current events snapshot.
func (s *Service) Events(ctx context.Context) (EventsState, error) {
	return s.events.Snapshot(ctx)
}

// Profile returns the current profile snapshot.
func (s *Service) Profile(ctx context.Context) (models.Profile, error) {
	return s.profile.Snapshot(ctx)
}

// Refresh re-reads every collection from the store, the feed page's
// explicit refresh button.
func (s *Service) Refresh(ctx context.Context) error {
	if _, err := s.posts.Refresh(ctx); err != nil {
		return err
	}
	if _, err := s.events.Refresh(ctx); err != nil {
		return err
	}
	_, err := s.profile.Refresh(ctx)
	return err
}

// ReplaceEvents installs an events list pushed by the remote change feed,
// keeping the local RSVP map.
func (s *Service) ReplaceEvents(ctx context.Context, events []models.Event) error {
	_, err := s.events.Apply(ctx, func(cur EventsState) (EventsState, error) {
		return EventsState{Events: events, RSVP: cur.RSVP}, nil
	})
	return err
}

// ReplaceProfile installs a profile pushed from the backend.
func (s *Service) ReplaceProfile(ctx context.Context, profile models.Profile) error {
	return s.profile.Replace(ctx, profile)
}

// Stats recomputes the profile summary for the current user.
func (s *Service) Stats(ctx context.Context) (stats.Summary, error) {
	user, err := s.who.Current(ctx)
	if err != nil {
		return stats.Summary{}, err
	}
	postsState, err := s.posts.Snapshot(ctx)
	if err != nil {
		return stats.Summary{}, err
	}
	eventsState, err := s.events.Snapshot(ctx)
	if err != nil {
		return stats.Summary{}, err
	}
	return stats.Aggregate(postsState.Posts, eventsState.RSVP, user.Name), nil
}

// OwnPosts returns the current user's latest posts for the profile page.
func (s *Service) OwnPosts(ctx context.Context, limit int) ([]models.Post, error) {
	user, err := s.who.Current(ctx)
	if err != nil {
		return nil, err
	}
	st, err := s.posts.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return stats.OwnPosts(st.Posts, user.Name, limit), nil
}

// SubscribePosts registers a read-only view of the posts snapshot.
func (s *Service) SubscribePosts(fn func(PostsState)) {
	s.posts.Subscribe(fn)
}

// SubscribeEvents registers a read-only view of the events snapshot.
func (s *Service) SubscribeEvents(fn func(EventsState)) {
	s.events.Subscribe(fn)
}

// SubscribeProfile registers a read-only view of the profile snapshot.
func (s *Service) SubscribeProfile(fn func(models.Profile)) {
	s.profile.Subscribe(fn)
}
