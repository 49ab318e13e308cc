package identity

import (
	"context"
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/ecellnce/campushub/internal/client/models"
	"github.com/ecellnce/campushub/internal/client/repositories/collections"
	"github.com/ecellnce/campushub/internal/common"
	"github.com/ecellnce/campushub/internal/logging"
)

// Session is the persisted auth state of a logged-in user. PasswordHash is
// a bcrypt hash kept so the user can re-authenticate while the backend is
// unreachable; the password itself is never stored.
type Session struct {
	UserID       string `json:"user_id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	PasswordHash string `json:"password_hash"`
}

// claims are the token fields the backend puts in its access tokens.
type claims struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// Manager persists the session and acts as the Provider for a logged-in
// user, falling back to the local profile identity when nobody is logged in.
type Manager struct {
	repo     collections.Repository
	fallback Provider
	logger   logging.Logger
}

func NewManager(repo collections.Repository, fallback Provider, logger logging.Logger) *Manager {
	return &Manager{repo: repo, fallback: fallback, logger: logger.With("module", "identity")}
}

// Establish stores a fresh session from a successful remote login. The
// user's identity comes out of the access token's claims; the tokens are
// not signature-checked here, the backend did that when it minted them.
func (m *Manager) Establish(ctx context.Context, accessToken, refreshToken, password string) (User, error) {
	var c claims
	if _, _, err := jwt.NewParser().ParseUnverified(accessToken, &c); err != nil {
		return User{}, fmt.Errorf("%w: %v", common.ErrInvalidToken, err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return User{}, fmt.Errorf("hashing password: %w", err)
	}

	sess := Session{
		UserID:       c.Subject,
		Name:         c.Name,
		Email:        c.Email,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		PasswordHash: string(hash),
	}
	if err := m.save(ctx, sess); err != nil {
		return User{}, err
	}

	return sess.user(), nil
}

// OfflineLogin re-authenticates against the cached credential hash when the
// backend is unreachable.
func (m *Manager) OfflineLogin(ctx context.Context, email, password string) (User, error) {
	sess, ok, err := m.session(ctx)
	if err != nil {
		return User{}, err
	}
	if !ok || sess.Email != email {
		return User{}, common.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(sess.PasswordHash), []byte(password)); err != nil {
		return User{}, common.ErrUnauthorized
	}
	return sess.user(), nil
}

// Current returns the session user, or the fallback identity when no
// session exists.
func (m *Manager) Current(ctx context.Context) (User, error) {
	sess, ok, err := m.session(ctx)
	if err != nil {
		return User{}, err
	}
	if ok {
		return sess.user(), nil
	}
	return m.fallback.Current(ctx)
}

// Tokens returns the stored token pair, or ("", "") when logged out.
func (m *Manager) Tokens(ctx context.Context) (access, refresh string, err error) {
	sess, ok, err := m.session(ctx)
	if err != nil || !ok {
		return "", "", err
	}
	return sess.AccessToken, sess.RefreshToken, nil
}

// UpdateTokens replaces the stored token pair after a refresh.
func (m *Manager) UpdateTokens(ctx context.Context, access, refresh string) error {
	sess, ok, err := m.session(ctx)
	if err != nil {
		return err
	}
	if !ok {
		return common.ErrUnauthorized
	}
	sess.AccessToken = access
	sess.RefreshToken = refresh
	return m.save(ctx, sess)
}

// Logout removes the stored session.
func (m *Manager) Logout(ctx context.Context) error {
	return m.repo.Delete(ctx, common.KeySession)
}

func (m *Manager) session(ctx context.Context) (Session, bool, error) {
	data, err := m.repo.Get(ctx, common.KeySession)
	if err != nil {
		return Session{}, false, err
	}
	if data == nil {
		return Session{}, false, nil
	}

	var sess Session
	if err := models.Open(data, &sess); err != nil {
		if errors.Is(err, common.ErrDecode) {
			m.logger.Warn(ctx, "stored session unreadable, treating as logged out", "error", err)
			return Session{}, false, nil
		}
		return Session{}, false, err
	}
	return sess, true, nil
}

func (m *Manager) save(ctx context.Context, sess Session) error {
	data, err := models.Seal(sess)
	if err != nil {
		return fmt.Errorf("%w: sealing session: %v", common.ErrPersistence, err)
	}
	if err := m.repo.Set(ctx, common.KeySession, data); err != nil {
		return fmt.Errorf("%w: writing session: %v", common.ErrPersistence, err)
	}
	return nil
}

func (s Session) user() User {
	return User{
		ID:     s.UserID,
		Name:   s.Name,
		Email:  s.Email,
		Avatar: common.Initials(s.Name),
	}
}
