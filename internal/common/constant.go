// Package common contains shared constants and sentinel errors used across
// CampusHub components.
package common

// Collection keys under which the store persists each document.
const (
	KeyPosts   = "posts"
	KeyEvents  = "events"
	KeyRSVP    = "rsvp"
	KeyProfile = "profile"
	KeySession = "session"
)

// SchemaVersion is the current version of the persisted envelope format.
const SchemaVersion = 1

// MaxPostLength bounds post content, counted in UTF-16 code units to match
// what the web frontend enforces in its composer.
const MaxPostLength = 280

// MaxImageRefLength bounds a post's image reference (URL or data URI).
// Generous enough for an inlined thumbnail, small enough that a post row
// stays a reasonable size.
const MaxImageRefLength = 512 * 1024

// AccessTokenHeaderName is the HTTP header used to carry the access token
// on outbound requests.
const AccessTokenHeaderName = "Authorization"
