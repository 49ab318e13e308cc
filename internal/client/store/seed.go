package store

import (
	"time"

	"github.com/ecellnce/campushub/internal/client/models"
)

// Seed values used exactly once, on the first read of an absent key. They
// match what the web frontend writes on first run so the two clients see
// the same starter content.

func seedPosts() []models.Post {
	now := time.Now()
	return []models.Post{
		{
			ID:        "sample-1",
			Content:   "Just attended an amazing workshop on startup fundamentals! The insights on market validation were particularly valuable. Excited to apply these learnings to my project. 🚀",
			Author:    "E-Cell Team",
			Avatar:    "ET",
			CreatedAt: now.Add(-2 * time.Hour),
			Likes:     12,
			Comments: []models.Comment{
				{
					ID:        "comment-1",
					Author:    "Student Member",
					Content:   "This was incredibly helpful! Thanks for organizing.",
					CreatedAt: now.Add(-1 * time.Hour),
				},
			},
		},
		{
			ID:        "sample-2",
			Content:   "Reminder: Our monthly networking session is coming up next week. This is a great opportunity to connect with alumni entrepreneurs and potential mentors. Registration link in bio!",
			Author:    "E-Cell NCE",
			Avatar:    "EC",
			CreatedAt: now.Add(-6 * time.Hour),
			Likes:     24,
			Comments:  []models.Comment{},
		},
	}
}

func seedEvents() []models.Event {
	return []models.Event{
		{
			ID:              "1",
			Title:           "Startup Pitch Workshop",
			Description:     "Learn how to create compelling pitches that attract investors. Interactive workshop with real-world case studies and practice sessions.",
			Date:            "2024-01-20",
			Time:            "2:00 PM",
			Location:        "Main Auditorium",
			Category:        models.CategoryWorkshop,
			MaxParticipants: 100,
			RegisteredCount: 45,
			Status:          models.StatusOpen,
		},
		{
			ID:              "2",
			Title:           "Innovation Challenge 2024",
			Description:     "Annual innovation competition where students present their breakthrough ideas. Prizes worth ₹50,000 up for grabs!",
			Date:            "2024-02-15",
			Time:            "10:00 AM",
			Location:        "Conference Hall A",
			Category:        models.CategoryCompetition,
			MaxParticipants: 50,
			RegisteredCount: 23,
			Status:          models.StatusOpen,
		},
		{
			ID:              "3",
			Title:           "Alumni Entrepreneur Meet",
			Description:     "Network with successful alumni entrepreneurs. Share experiences, get mentorship, and build valuable connections.",
			Date:            "2024-01-28",
			Time:            "6:00 PM",
			Location:        "Student Center",
			Category:        models.CategoryNetworking,
			MaxParticipants: 75,
			RegisteredCount: 62,
			Status:          models.StatusLimited,
		},
		{
			ID:              "4",
			Title:           "Digital Marketing Masterclass",
			Description:     "Comprehensive masterclass on digital marketing strategies for startups. Covers social media, content marketing, and growth hacking.",
			Date:            "2024-02-10",
			Time:            "11:00 AM",
			Location:        "Computer Lab 2",
			Category:        models.CategoryWorkshop,
			MaxParticipants: 40,
			RegisteredCount: 18,
			Status:          models.StatusOpen,
		},
	}
}

func seedRSVP() map[string]bool {
	return map[string]bool{}
}

func seedProfile() models.Profile {
	return models.Profile{
		Name:       "Current User",
		Email:      "student@ncechandi.edu",
		Department: "Computer Science Engineering",
		Year:       "3rd Year",
		Bio:        "Passionate about entrepreneurship and innovation. Always looking for opportunities to learn and grow in the startup ecosystem.",
		JoinDate:   time.Date(2023, 8, 1, 0, 0, 0, 0, time.UTC),
		Interests:  []string{"Startups", "Technology", "Innovation", "Networking"},
	}
}
