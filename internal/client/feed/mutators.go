// Package feed implements the local-first feed engine: pure mutators that
// compute the next version of a collection from a user intent, and a
// reconciler that applies them optimistically against the persisted store.
package feed

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"

	"github.com/ecellnce/campushub/internal/client/models"
	"github.com/ecellnce/campushub/internal/common"
)

// Mutators never modify their inputs: they return fresh collections, so the
// caller keeps the prior snapshot for rollback and a failed mutation is
// simply discarded.

// AddPost validates draft and prepends a new post. Post ids are ULIDs, so
// they stay unique and sort by creation order.
func AddPost(posts []models.Post, draft models.PostDraft, author, avatar string) ([]models.Post, error) {
	content := strings.TrimSpace(draft.Content)
	if content == "" {
		return nil, fmt.Errorf("%w: post content is empty", common.ErrValidation)
	}
	if n := common.UTF16Length(content); n > common.MaxPostLength {
		return nil, fmt.Errorf("%w: post content is %d code units, limit is %d", common.ErrValidation, n, common.MaxPostLength)
	}
	if len(draft.Image) > common.MaxImageRefLength {
		return nil, fmt.Errorf("%w: image reference exceeds %d bytes", common.ErrValidation, common.MaxImageRefLength)
	}

	post := models.Post{
		ID:        ulid.Make().String(),
		Content:   content,
		Author:    author,
		Avatar:    avatar,
		CreatedAt: time.Now(),
		Likes:     0,
		Comments:  []models.Comment{},
		Image:     draft.Image,
	}

	out := make([]models.Post, 0, len(posts)+1)
	out = append(out, post)
	out = append(out, models.ClonePosts(posts)...)
	return out, nil
}

// ToggleLike flips the caller's like flag for postID and adjusts the post's
// counter accordingly. The counter is clamped at zero: the flag is not
// server-verified, so a decrement may arrive for a count another session
// already consumed.
func ToggleLike(posts []models.Post, liked map[string]bool, postID string) ([]models.Post, map[string]bool, error) {
	idx := findPost(posts, postID)
	if idx < 0 {
		return nil, nil, fmt.Errorf("%w: post %s", common.ErrNotFound, postID)
	}

	nextPosts := models.ClonePosts(posts)
	nextLiked := models.CloneRSVP(liked)

	nowLiked := !nextLiked[postID]
	nextLiked[postID] = nowLiked

	if nowLiked {
		nextPosts[idx].Likes++
	} else if nextPosts[idx].Likes > 0 {
		nextPosts[idx].Likes--
	}

	return nextPosts, nextLiked, nil
}

// AddComment appends a comment to the target post. Comments are append-only
// and never reordered.
func AddComment(posts []models.Post, postID, text, author string) ([]models.Post, error) {
	content := strings.TrimSpace(text)
	if content == "" {
		return nil, fmt.Errorf("%w: comment is empty", common.ErrValidation)
	}

	idx := findPost(posts, postID)
	if idx < 0 {
		return nil, fmt.Errorf("%w: post %s", common.ErrNotFound, postID)
	}

	next := models.ClonePosts(posts)
	next[idx].Comments = append(next[idx].Comments, models.Comment{
		ID:        uuid.NewString(),
		Author:    author,
		Content:   content,
		CreatedAt: time.Now(),
	})
	return next, nil
}

// ToggleRSVP flips the attending flag for eventID and moves the event's
// registered counter with it, keeping the counter inside [0, max]. A
// register intent against a full event is rejected; unregister always
// goes through.
func ToggleRSVP(events []models.Event, rsvp map[string]bool, eventID string) ([]models.Event, map[string]bool, error) {
	idx := -1
	for i := range events {
		if events[i].ID == eventID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, nil, fmt.Errorf("%w: event %s", common.ErrNotFound, eventID)
	}

	attending := !rsvp[eventID]
	e := events[idx]
	if attending && e.MaxParticipants > 0 && e.RegisteredCount >= e.MaxParticipants {
		return nil, nil, fmt.Errorf("%w: %s (%d/%d)", common.ErrCapacity, e.Title, e.RegisteredCount, e.MaxParticipants)
	}

	nextEvents := models.CloneEvents(events)
	nextRSVP := models.CloneRSVP(rsvp)
	nextRSVP[eventID] = attending

	if attending {
		nextEvents[idx].RegisteredCount++
		if nextEvents[idx].MaxParticipants > 0 && nextEvents[idx].RegisteredCount > nextEvents[idx].MaxParticipants {
			nextEvents[idx].RegisteredCount = nextEvents[idx].MaxParticipants
		}
	} else if nextEvents[idx].RegisteredCount > 0 {
		nextEvents[idx].RegisteredCount--
	}
	nextEvents[idx].Status = nextEvents[idx].DeriveStatus()

	return nextEvents, nextRSVP, nil
}

// PatchProfile shallow-merges the editable fields into profile. The
// interests field arrives as free-form comma-separated text; entries are
// trimmed and empties dropped, but duplicates survive; the web frontend
// keeps them too.
func PatchProfile(profile models.Profile, patch models.ProfilePatch) models.Profile {
	next := profile.Clone()
	if patch.Name != nil {
		next.Name = *patch.Name
	}
	if patch.Email != nil {
		next.Email = *patch.Email
	}
	if patch.Department != nil {
		next.Department = *patch.Department
	}
	if patch.Year != nil {
		next.Year = *patch.Year
	}
	if patch.Bio != nil {
		next.Bio = *patch.Bio
	}
	if patch.Avatar != nil {
		next.Avatar = *patch.Avatar
	}
	if patch.Interests != nil {
		next.Interests = ParseInterests(*patch.Interests)
	}
	return next
}

// ParseInterests splits comma-separated text into an ordered interest list:
// entries are trimmed, empty ones dropped, first-appearance order kept.
func ParseInterests(s string) []string {
	out := []string{}
	for _, part := range strings.Split(s, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func findPost(posts []models.Post, id string) int {
	for i := range posts {
		if posts[i].ID == id {
			return i
		}
	}
	return -1
}
