package cli

import (
	"context"
	"os"
	"time"

	"github.com/ecellnce/campushub/internal/client/models"
	"github.com/ecellnce/campushub/internal/common"
)

// Feed prints the community feed, newest post first.
func (a *App) Feed(ctx context.Context) error {
	st, err := a.feed.Posts(ctx)
	if err != nil {
		printlnFn("error:", err.Error())
		return err
	}
	now := time.Now()
	for _, p := range st.Posts {
		printlnFn(FormatPost(p, st.Liked[p.ID], now))
	}
	return nil
}

// NewPost collects a post body and publishes it.
func (a *App) NewPost(ctx context.Context) error {
	content, err := GetMultiline(a.reader, "What's on your mind? (double Enter to finish):", os.Stdout)
	if err != nil {
		printlnFn("error:", err.Error())
		return err
	}

	post, err := a.feed.CreatePost(ctx, models.PostDraft{Content: content})
	if err != nil {
		printlnFn("error:", err.Error())
		return err
	}
	printlnFn("Posted", post.ID)
	return nil
}

// Like toggles the user's like on a post.
func (a *App) Like(ctx context.Context, postID string) error {
	liked, err := a.feed.ToggleLike(ctx, postID)
	if err != nil {
		printlnFn("error:", err.Error())
		return err
	}
	if liked {
		printlnFn("Liked.")
	} else {
		printlnFn("Like removed.")
	}
	return nil
}

// Comment collects a comment body and appends it to a post.
func (a *App) Comment(ctx context.Context, postID string) error {
	text, err := GetSimpleText(a.reader, "Enter comment", os.Stdout)
	if err != nil {
		printlnFn("error:", err.Error())
		return err
	}
	if err := a.feed.AddComment(ctx, postID, text); err != nil {
		printlnFn("error:", err.Error())
		return err
	}
	printlnFn("Comment added.")
	return nil
}

// Share prints the plain-text export of a post.
func (a *App) Share(ctx context.Context, postID string) error {
	st, err := a.feed.Posts(ctx)
	if err != nil {
		printlnFn("error:", err.Error())
		return err
	}
	for _, p := range st.Posts {
		if p.ID == postID {
			printlnFn(ShareText(p))
			return nil
		}
	}
	printlnFn("Post not found:", postID)
	return common.ErrNotFound
}
