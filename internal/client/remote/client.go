// Package remote is the adapter for the hosted backend: JSON-over-HTTP CRUD
// for events and profiles, token-based auth, and a websocket change feed.
// The core never talks to it directly; synced data enters the feed engine
// as replace-snapshot intents.
package remote

import (
	"context"

	"github.com/ecellnce/campushub/internal/client/models"
)

// TokenPair is what the auth endpoints hand back.
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// Change is one row-level notification from the realtime feed.
type Change struct {
	Type  string `json:"type"` // INSERT, UPDATE or DELETE
	Table string `json:"table"`
	RowID string `json:"row_id"`
}

type Client interface {
	Close() error

	Register(ctx context.Context, name, email, password string) (TokenPair, error)
	Login(ctx context.Context, email, password string) (TokenPair, error)
	Refresh(ctx context.Context, refreshToken string) (TokenPair, error)
	Ping(ctx context.Context) error

	ListEvents(ctx context.Context) ([]models.Event, error)
	GetEvent(ctx context.Context, id string) (*models.Event, error)
	CreateEvent(ctx context.Context, e models.Event) (models.Event, error)
	UpdateEvent(ctx context.Context, e models.Event) (models.Event, error)
	DeleteEvent(ctx context.Context, id string) error

	GetProfile(ctx context.Context) (models.Profile, error)
	UpdateProfile(ctx context.Context, p models.Profile) (models.Profile, error)
	UploadAvatar(ctx context.Context, filename string, data []byte) (string, error)

	// SubscribeEvents blocks, delivering change notifications for active
	// events until ctx is canceled.
	SubscribeEvents(ctx context.Context, onChange func(Change)) error
}
