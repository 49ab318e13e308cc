package remote

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/ecellnce/campushub/internal/client/models"
	"github.com/ecellnce/campushub/internal/common"
	"github.com/ecellnce/campushub/internal/logging"
)

// TokenSource supplies and stores the current token pair. The identity
// manager satisfies it.
type TokenSource interface {
	Tokens(ctx context.Context) (access, refresh string, err error)
	UpdateTokens(ctx context.Context, access, refresh string) error
}

// HTTPClient implements Client against the backend's JSON API.
type HTTPClient struct {
	baseURL     string
	realtimeURL string
	httpc       *http.Client
	tokens      TokenSource
	logger      logging.Logger
}

func NewHTTPClient(baseURL, realtimeURL string, tokens TokenSource, logger logging.Logger) *HTTPClient {
	return &HTTPClient{
		baseURL:     baseURL,
		realtimeURL: realtimeURL,
		httpc:       &http.Client{Timeout: 15 * time.Second},
		tokens:      tokens,
		logger:      logger.With("module", "remote"),
	}
}

func (c *HTTPClient) Close() error {
	c.httpc.CloseIdleConnections()
	return nil
}

// do runs one JSON request. Authenticated calls that bounce with an expired
// token are retried exactly once after a transparent token refresh.
func (c *HTTPClient) do(ctx context.Context, method, path string, in, out any, authed bool) error {
	err := c.doOnce(ctx, method, path, in, out, authed)
	if err == nil || !authed {
		return err
	}
	if !isTokenExpired(err) {
		return err
	}

	_, refresh, terr := c.tokens.Tokens(ctx)
	if terr != nil || refresh == "" {
		return err
	}
	pair, rerr := c.Refresh(ctx, refresh)
	if rerr != nil {
		return err
	}
	if uerr := c.tokens.UpdateTokens(ctx, pair.AccessToken, pair.RefreshToken); uerr != nil {
		return uerr
	}

	return c.doOnce(ctx, method, path, in, out, authed)
}

func (c *HTTPClient) doOnce(ctx context.Context, method, path string, in, out any, authed bool) error {
	var body io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encoding request: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if authed {
		access, _, err := c.tokens.Tokens(ctx)
		if err != nil {
			return err
		}
		if access == "" {
			return common.ErrUnauthorized
		}
		req.Header.Set(common.AccessTokenHeaderName, "Bearer "+access)
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return decodeError(resp)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decoding response: %w", err)
		}
	}
	return nil
}

// apiError is the backend's error body: {"error": "..."}.
type apiError struct {
	Error string `json:"error"`
}

func decodeError(resp *http.Response) error {
	var ae apiError
	_ = json.NewDecoder(resp.Body).Decode(&ae)

	switch resp.StatusCode {
	case http.StatusUnauthorized:
		if ae.Error == common.ErrTokenExpired.Error() {
			return common.ErrTokenExpired
		}
		return fmt.Errorf("%w: %s", common.ErrUnauthorized, ae.Error)
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", common.ErrNotFound, ae.Error)
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return fmt.Errorf("%w: %s", ErrBadRequest, ae.Error)
	default:
		return fmt.Errorf("server error (%d): %s", resp.StatusCode, ae.Error)
	}
}

func isTokenExpired(err error) bool {
	return err == common.ErrTokenExpired
}

func (c *HTTPClient) Register(ctx context.Context, name, email, password string) (TokenPair, error) {
	var pair TokenPair
	in := map[string]string{"full_name": name, "email": email, "password": password}
	err := c.do(ctx, http.MethodPost, "/auth/register", in, &pair, false)
	return pair, err
}

func (c *HTTPClient) Login(ctx context.Context, email, password string) (TokenPair, error) {
	var pair TokenPair
	in := map[string]string{"email": email, "password": password}
	err := c.do(ctx, http.MethodPost, "/auth/login", in, &pair, false)
	return pair, err
}

func (c *HTTPClient) Refresh(ctx context.Context, refreshToken string) (TokenPair, error) {
	var pair TokenPair
	in := map[string]string{"refresh_token": refreshToken}
	err := c.doOnce(ctx, http.MethodPost, "/auth/refresh", in, &pair, false)
	return pair, err
}

func (c *HTTPClient) Ping(ctx context.Context) error {
	return c.doOnce(ctx, http.MethodGet, "/healthz", nil, nil, false)
}

func (c *HTTPClient) ListEvents(ctx context.Context) ([]models.Event, error) {
	var dtos []eventDTO
	if err := c.do(ctx, http.MethodGet, "/events?active=true", nil, &dtos, false); err != nil {
		return nil, err
	}
	events := make([]models.Event, 0, len(dtos))
	for _, d := range dtos {
		events = append(events, d.toModel())
	}
	return events, nil
}

func (c *HTTPClient) GetEvent(ctx context.Context, id string) (*models.Event, error) {
	var d eventDTO
	if err := c.do(ctx, http.MethodGet, "/events/"+url.PathEscape(id), nil, &d, false); err != nil {
		return nil, err
	}
	e := d.toModel()
	return &e, nil
}

func (c *HTTPClient) CreateEvent(ctx context.Context, e models.Event) (models.Event, error) {
	var d eventDTO
	if err := c.do(ctx, http.MethodPost, "/events", eventToDTO(e), &d, true); err != nil {
		return models.Event{}, err
	}
	return d.toModel(), nil
}

func (c *HTTPClient) UpdateEvent(ctx context.Context, e models.Event) (models.Event, error) {
	var d eventDTO
	if err := c.do(ctx, http.MethodPut, "/events/"+url.PathEscape(e.ID), eventToDTO(e), &d, true); err != nil {
		return models.Event{}, err
	}
	return d.toModel(), nil
}

func (c *HTTPClient) DeleteEvent(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/events/"+url.PathEscape(id), nil, nil, true)
}

func (c *HTTPClient) GetProfile(ctx context.Context) (models.Profile, error) {
	var d profileDTO
	if err := c.do(ctx, http.MethodGet, "/profile", nil, &d, true); err != nil {
		return models.Profile{}, err
	}
	return d.toModel(), nil
}

func (c *HTTPClient) UpdateProfile(ctx context.Context, p models.Profile) (models.Profile, error) {
	var d profileDTO
	if err := c.do(ctx, http.MethodPut, "/profile", profileToDTO(p), &d, true); err != nil {
		return models.Profile{}, err
	}
	return d.toModel(), nil
}

// UploadAvatar ships the image as base64 JSON and returns the public URL
// the backend stored it under.
func (c *HTTPClient) UploadAvatar(ctx context.Context, filename string, data []byte) (string, error) {
	in := map[string]string{
		"filename": filename,
		"content":  base64.StdEncoding.EncodeToString(data),
	}
	var out struct {
		URL string `json:"url"`
	}
	if err := c.do(ctx, http.MethodPost, "/profile/avatar", in, &out, true); err != nil {
		return "", err
	}
	return out.URL, nil
}
