// Package stats derives the profile-page summary numbers from the posts and
// RSVP collections. Everything here is a pure projection, recomputed on
// demand; the collections are small enough that caching would cost more
// than the scan.
package stats

import (
	"sort"

	"github.com/ecellnce/campushub/internal/client/models"
)

// Summary is what the profile page shows in its stat cards.
type Summary struct {
	PostsCount     int
	LikesReceived  int
	CommentsCount  int
	EventsAttended int
}

// Aggregate scans the collections for items attributable to author. Nil or
// empty inputs produce zeroes, never an error.
//
// CommentsCount counts the author's comments across ALL posts, not just
// their own.
func Aggregate(posts []models.Post, rsvp map[string]bool, author string) Summary {
	var s Summary

	for _, p := range posts {
		if p.Author == author {
			s.PostsCount++
			s.LikesReceived += p.Likes
		}
		for _, c := range p.Comments {
			if c.Author == author {
				s.CommentsCount++
			}
		}
	}

	for _, attending := range rsvp {
		if attending {
			s.EventsAttended++
		}
	}

	return s
}

// OwnPosts returns the author's posts, newest first, capped at limit. The
// profile page shows the latest three.
func OwnPosts(posts []models.Post, author string, limit int) []models.Post {
	var own []models.Post
	for _, p := range posts {
		if p.Author == author {
			own = append(own, p)
		}
	}
	sort.SliceStable(own, func(i, j int) bool {
		return own[i].CreatedAt.After(own[j].CreatedAt)
	})
	if limit >= 0 && len(own) > limit {
		own = own[:limit]
	}
	return own
}
