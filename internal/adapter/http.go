package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"

	"github.com/MKhiriev/go-snooze-client/internal/config"
	"github.com/MKhiriev/go-snooze-client/internal/logger"
	"github.com/MKhiriev/go-snooze-client/models"
)

type httpServerAdapter struct {
	client *resty.Client

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of
// [ServerAdapter]. It normalises and validates the base URL from
// adapterCfg.BaseURL and configures the underlying resty client with the
// resolved base URL and request timeout. Every outbound request carries a
// fresh X-Request-Id header so client and server logs can be correlated.
//
// Returns an error if adapterCfg.BaseURL is empty or cannot be parsed as a
// valid URL.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, log *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter base url: %w", err)
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(adapterCfg.RequestTimeout).
		OnBeforeRequest(func(_ *resty.Client, req *resty.Request) error {
			req.SetHeader("X-Request-Id", uuid.NewString())
			return nil
		})

	return &httpServerAdapter{client: client, logger: log}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// ListStories implements [ServerAdapter]. It GETs the public feed from
// GET /stories and decodes it into the ordered story slice. No credential is
// attached.
func (h *httpServerAdapter) ListStories(ctx context.Context) ([]models.Story, error) {
	var feed models.StoriesResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&feed).
		Get("/stories")
	if err != nil {
		return nil, fmt.Errorf("list stories request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return feed.Stories, nil
}

// CreateStory implements [ServerAdapter]. It POSTs the draft plus token to
// POST /stories and returns the server-assigned story. The server, not the
// client, fills in StoryID, Username and both timestamps.
func (h *httpServerAdapter) CreateStory(ctx context.Context, token string, draft models.StoryDraft) (models.Story, error) {
	var created models.StoryResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.CreateStoryRequest{Token: token, Story: draft}).
		SetResult(&created).
		Post("/stories")
	if err != nil {
		return models.Story{}, fmt.Errorf("create story request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Story{}, err
	}

	return created.Story, nil
}

// Signup implements [ServerAdapter]. It POSTs the credentials to
// POST /signup and returns the created account plus the issued bearer token.
func (h *httpServerAdapter) Signup(ctx context.Context, creds models.SignupCredentials) (models.User, string, error) {
	var auth models.AuthResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.SignupRequest{User: creds}).
		SetResult(&auth).
		Post("/signup")
	if err != nil {
		return models.User{}, "", fmt.Errorf("signup request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, "", err
	}

	return auth.User, auth.Token, nil
}

// Login implements [ServerAdapter]. It POSTs the credentials to POST /login
// and returns the full account record (favorites and own stories included)
// plus the issued bearer token.
func (h *httpServerAdapter) Login(ctx context.Context, creds models.LoginCredentials) (models.User, string, error) {
	var auth models.AuthResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.LoginRequest{User: creds}).
		SetResult(&auth).
		Post("/login")
	if err != nil {
		return models.User{}, "", fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, "", err
	}

	return auth.User, auth.Token, nil
}

// GetUser implements [ServerAdapter]. It GETs the account record from
// GET /users/{username} with the token passed as a query parameter, as the
// remote API expects.
func (h *httpServerAdapter) GetUser(ctx context.Context, token, username string) (models.User, error) {
	var account models.UserResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetQueryParam("token", token).
		SetResult(&account).
		Get("/users/" + url.PathEscape(username))
	if err != nil {
		return models.User{}, fmt.Errorf("get user request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	return account.User, nil
}

// AddFavorite implements [ServerAdapter]. It POSTs the token to
// POST /users/{username}/favorites/{storyID}. The response payload is
// ignored; only the status code matters.
func (h *httpServerAdapter) AddFavorite(ctx context.Context, token, username, storyID string) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.FavoriteRequest{Token: token}).
		Post(favoritePath(username, storyID))
	if err != nil {
		return fmt.Errorf("add favorite request: %w", err)
	}

	return mapHTTPError(resp)
}

// RemoveFavorite implements [ServerAdapter]. It sends a DELETE request to
// DELETE /users/{username}/favorites/{storyID} with the token in the body.
func (h *httpServerAdapter) RemoveFavorite(ctx context.Context, token, username, storyID string) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.FavoriteRequest{Token: token}).
		Delete(favoritePath(username, storyID))
	if err != nil {
		return fmt.Errorf("remove favorite request: %w", err)
	}

	return mapHTTPError(resp)
}

func favoritePath(username, storyID string) string {
	return "/users/" + url.PathEscape(username) + "/favorites/" + url.PathEscape(storyID)
}
