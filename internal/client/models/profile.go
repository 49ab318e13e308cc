package models

import "time"

// Profile is the local user's profile document.
type Profile struct {
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Department string    `json:"department"`
	Year       string    `json:"year"`
	Bio        string    `json:"bio"`
	JoinDate   time.Time `json:"joinDate"`
	Interests  []string  `json:"interests"`
	Avatar     string    `json:"avatar,omitempty"`
}

// ProfilePatch carries the editable fields of a profile edit form. Nil
// pointers mean "leave unchanged"; Interests is the raw comma-separated
// text from the form.
type ProfilePatch struct {
	Name       *string
	Email      *string
	Department *string
	Year       *string
	Bio        *string
	Interests  *string
	Avatar     *string
}

// Clone copies the profile, including its interests slice.
func (p Profile) Clone() Profile {
	out := p
	out.Interests = make([]string, len(p.Interests))
	copy(out.Interests, p.Interests)
	return out
}
