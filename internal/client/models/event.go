package models

import "strings"

// Event categories used by the events page filter. The set is open: events
// synced from the backend may carry labels not listed here.
const (
	CategoryWorkshop    = "Workshop"
	CategoryCompetition = "Competition"
	CategoryNetworking  = "Networking"
	CategorySpeaker     = "Speaker Session"
)

// Event statuses shown on event cards. Status is denormalized: the RSVP
// mutator recomputes it whenever registeredCount changes.
const (
	StatusOpen    = "Open"
	StatusLimited = "Limited Seats"
	StatusFull    = "Full"
)

type Event struct {
	ID              string `json:"id"`
	Title           string `json:"title"`
	Description     string `json:"description"`
	Date            string `json:"date"`
	Time            string `json:"time"`
	Location        string `json:"location"`
	Category        string `json:"category"`
	MaxParticipants int    `json:"maxParticipants"`
	RegisteredCount int    `json:"registeredCount"`
	Status          string `json:"status"`
	Image           string `json:"image,omitempty"`
}

// DeriveStatus computes the status label from the current registration
// numbers: Full at capacity, Limited Seats when a fifth or less of the
// seats remain, Open otherwise.
func (e Event) DeriveStatus() string {
	if e.MaxParticipants <= 0 {
		return StatusOpen
	}
	if e.RegisteredCount >= e.MaxParticipants {
		return StatusFull
	}
	if (e.MaxParticipants-e.RegisteredCount)*5 <= e.MaxParticipants {
		return StatusLimited
	}
	return StatusOpen
}

// CloneEvents copies an events collection.
func CloneEvents(events []Event) []Event {
	out := make([]Event, len(events))
	copy(out, events)
	return out
}

// CloneRSVP copies an RSVP map (eventID -> attending).
func CloneRSVP(m map[string]bool) map[string]bool {
	out := make(map[string]bool, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// FilterByCategory returns the events whose category matches, or all events
// for the "all" filter. Matching is case-insensitive on the events page.
func FilterByCategory(events []Event, category string) []Event {
	if category == "" || category == "all" {
		return events
	}
	var out []Event
	for _, e := range events {
		if strings.EqualFold(e.Category, category) {
			out = append(out, e)
		}
	}
	return out
}
