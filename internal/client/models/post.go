// Package models defines the community-feed entities persisted by the store.
// JSON tags follow the document format the web frontend already writes, so
// both clients can share one backend export.
package models

import "time"

// Comment is owned by its parent post and is only ever appended.
type Comment struct {
	ID        string    `json:"id"`
	Author    string    `json:"author"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"timestamp"`
}

// Post is a single feed item. Comments keep insertion order; Likes never
// goes negative.
type Post struct {
	ID        string    `json:"id"`
	Content   string    `json:"content"`
	Author    string    `json:"author"`
	Avatar    string    `json:"avatar"`
	CreatedAt time.Time `json:"timestamp"`
	Likes     int       `json:"likes"`
	Comments  []Comment `json:"comments"`
	// Image is an optional attachment reference (URL or data URI).
	Image string `json:"image,omitempty"`
}

// PostDraft is the user's input for a new post before validation.
type PostDraft struct {
	Content string
	Image   string
}

// Clone returns a deep copy of p. Mutators copy before touching anything so
// the previous snapshot stays valid for rollback.
func (p Post) Clone() Post {
	out := p
	out.Comments = make([]Comment, len(p.Comments))
	copy(out.Comments, p.Comments)
	return out
}

// ClonePosts deep-copies a posts collection.
func ClonePosts(posts []Post) []Post {
	out := make([]Post, len(posts))
	for i, p := range posts {
		out[i] = p.Clone()
	}
	return out
}
