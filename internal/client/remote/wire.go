package remote

import (
	"time"

	"github.com/ecellnce/campushub/internal/client/models"
)

// Wire DTOs use the backend's snake_case column names; converters map them
// to and from the local models.

type eventDTO struct {
	ID              string `json:"id"`
	Title           string `json:"title"`
	Description     string `json:"description"`
	EventDate       string `json:"event_date"`
	EventTime       string `json:"event_time"`
	Location        string `json:"location"`
	Category        string `json:"category"`
	ImageURL        string `json:"image_url,omitempty"`
	MaxParticipants int    `json:"max_participants"`
	RegisteredCount int    `json:"registered_count"`
	IsActive        bool   `json:"is_active"`
}

func (d eventDTO) toModel() models.Event {
	e := models.Event{
		ID:              d.ID,
		Title:           d.Title,
		Description:     d.Description,
		Date:            d.EventDate,
		Time:            d.EventTime,
		Location:        d.Location,
		Category:        d.Category,
		Image:           d.ImageURL,
		MaxParticipants: d.MaxParticipants,
		RegisteredCount: d.RegisteredCount,
	}
	e.Status = e.DeriveStatus()
	return e
}

func eventToDTO(e models.Event) eventDTO {
	return eventDTO{
		ID:              e.ID,
		Title:           e.Title,
		Description:     e.Description,
		EventDate:       e.Date,
		EventTime:       e.Time,
		Location:        e.Location,
		Category:        e.Category,
		ImageURL:        e.Image,
		MaxParticipants: e.MaxParticipants,
		RegisteredCount: e.RegisteredCount,
		IsActive:        true,
	}
}

type profileDTO struct {
	UserID     string    `json:"user_id"`
	FullName   string    `json:"full_name"`
	Email      string    `json:"email"`
	Department string    `json:"department"`
	Batch      string    `json:"batch"`
	AvatarURL  string    `json:"avatar_url,omitempty"`
	Bio        string    `json:"bio"`
	Interests  []string  `json:"interests"`
	CreatedAt  time.Time `json:"created_at"`
}

func (d profileDTO) toModel() models.Profile {
	return models.Profile{
		Name:       d.FullName,
		Email:      d.Email,
		Department: d.Department,
		Year:       d.Batch,
		Bio:        d.Bio,
		Interests:  d.Interests,
		JoinDate:   d.CreatedAt,
		Avatar:     d.AvatarURL,
	}
}

func profileToDTO(p models.Profile) profileDTO {
	return profileDTO{
		FullName:   p.Name,
		Email:      p.Email,
		Department: p.Department,
		Batch:      p.Year,
		Bio:        p.Bio,
		Interests:  p.Interests,
		CreatedAt:  p.JoinDate,
		AvatarURL:  p.Avatar,
	}
}
