package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/ecellnce/campushub/internal/client/models"
	"github.com/ecellnce/campushub/internal/client/stats"
)

// FormatRelativeTime renders a post timestamp the way the feed shows it:
// "Just now" within the hour, hours within a day, days within a week, and a
// plain date beyond that.
func FormatRelativeTime(t, now time.Time) string {
	d := now.Sub(t)
	switch {
	case d < time.Hour:
		return "Just now"
	case d < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(d.Hours()))
	case d < 7*24*time.Hour:
		return fmt.Sprintf("%dd ago", int(d.Hours()/24))
	default:
		return t.Format("Jan 2, 2006")
	}
}

// FormatPost renders one feed card.
func FormatPost(p models.Post, liked bool, now time.Time) string {
	var b strings.Builder
	likeMark := " "
	if liked {
		likeMark = "*"
	}
	fmt.Fprintf(&b, "[%s] %s (%s)\n", p.ID, p.Author, FormatRelativeTime(p.CreatedAt, now))
	fmt.Fprintf(&b, "  %s\n", p.Content)
	fmt.Fprintf(&b, "  %s%d likes, %d comments", likeMark, p.Likes, len(p.Comments))
	for _, c := range p.Comments {
		fmt.Fprintf(&b, "\n    %s: %s", c.Author, c.Content)
	}
	return b.String()
}

// FormatEvent renders one event card, marking the user's RSVP.
func FormatEvent(e models.Event, attending bool) string {
	mark := " "
	if attending {
		mark = "*"
	}
	return fmt.Sprintf("[%s]%s %s (%s)\n  %s %s @ %s\n  %d/%d registered, %s",
		e.ID, mark, e.Title, e.Category,
		e.Date, e.Time, e.Location,
		e.RegisteredCount, e.MaxParticipants, e.DeriveStatus())
}

// FormatProfile renders the profile page header.
func FormatProfile(p models.Profile) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s <%s>\n", p.Name, p.Email)
	if p.Department != "" || p.Year != "" {
		fmt.Fprintf(&b, "%s, %s\n", p.Department, p.Year)
	}
	if p.Bio != "" {
		fmt.Fprintf(&b, "%s\n", p.Bio)
	}
	if len(p.Interests) > 0 {
		fmt.Fprintf(&b, "Interests: %s\n", strings.Join(p.Interests, ", "))
	}
	fmt.Fprintf(&b, "Member since %s", p.JoinDate.Format("January 2006"))
	return b.String()
}

// FormatStats renders the activity summary shown on the profile page.
func FormatStats(s stats.Summary) string {
	return fmt.Sprintf("Posts: %d | Likes received: %d | Comments: %d | Events attended: %d",
		s.PostsCount, s.LikesReceived, s.CommentsCount, s.EventsAttended)
}

// ShareText builds the plain-text export of a post used by the share command.
func ShareText(p models.Post) string {
	return fmt.Sprintf("%s on CampusHub\n\n%s\n\nPosted %s", p.Author, p.Content, p.CreatedAt.Format("Jan 2, 2006"))
}
