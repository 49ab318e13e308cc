package cli

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/ecellnce/campushub/internal/client/models"
)

// ShowProfile prints the profile and the user's latest posts.
func (a *App) ShowProfile(ctx context.Context) error {
	profile, err := a.feed.Profile(ctx)
	if err != nil {
		printlnFn("error:", err.Error())
		return err
	}
	printlnFn(FormatProfile(profile))

	own, err := a.feed.OwnPosts(ctx, 3)
	if err != nil {
		printlnFn("error:", err.Error())
		return err
	}
	if len(own) > 0 {
		printlnFn("Recent posts:")
		now := time.Now()
		for _, p := range own {
			printlnFn(" ", p.Content, "("+FormatRelativeTime(p.CreatedAt, now)+")")
		}
	}
	return nil
}

// EditProfile walks through the editable profile fields. Empty input leaves
// a field unchanged.
func (a *App) EditProfile(ctx context.Context) error {
	var patch models.ProfilePatch

	prompt := func(label string) (*string, error) {
		v, err := GetSimpleText(a.reader, label+" (empty to keep)", os.Stdout)
		if err != nil {
			return nil, err
		}
		if v == "" {
			return nil, nil
		}
		return &v, nil
	}

	var err error
	if patch.Name, err = prompt("Name"); err != nil {
		return err
	}
	if patch.Department, err = prompt("Department"); err != nil {
		return err
	}
	if patch.Year, err = prompt("Year"); err != nil {
		return err
	}
	if patch.Interests, err = prompt("Interests (comma separated)"); err != nil {
		return err
	}

	bio, err := GetMultiline(a.reader, "Bio (double Enter to finish, empty to keep):", os.Stdout)
	if err != nil {
		return err
	}
	if bio != "" {
		patch.Bio = &bio
	}

	avatarPath, err := prompt("Avatar image path")
	if err != nil {
		return err
	}
	if avatarPath != nil {
		data, err := os.ReadFile(*avatarPath)
		if err != nil {
			printlnFn("error:", err.Error())
			return err
		}
		url, err := a.api.UploadAvatar(ctx, filepath.Base(*avatarPath), data)
		if err != nil {
			printlnFn("error:", err.Error())
			return err
		}
		patch.Avatar = &url
	}

	if _, err := a.feed.UpdateProfile(ctx, patch); err != nil {
		printlnFn("error:", err.Error())
		return err
	}
	printlnFn("Profile updated.")

	// Push to the backend when reachable; local copy stays authoritative.
	if a.sync.Online() {
		if err := a.sync.PushProfile(ctx); err != nil {
			a.logger.Warn(ctx, "profile push failed", "error", err)
		}
	}
	return nil
}

// ShowStats prints the activity summary.
func (a *App) ShowStats(ctx context.Context) error {
	summary, err := a.feed.Stats(ctx)
	if err != nil {
		printlnFn("error:", err.Error())
		return err
	}
	printlnFn(FormatStats(summary))
	return nil
}
