package service

import (
	"context"

	"github.com/MKhiriev/go-snooze-client/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/services_mock.go -package=mock

// AuthService defines the client-side contract for account creation,
// authentication, and session lifecycle. All four operations keep the
// durable session store and the in-memory [Session] in step: a credential is
// never persisted without an activated session and vice versa.
type AuthService interface {
	// Signup creates a new account and logs it in. The returned user has
	// empty favorites and own-stories collections; the issued credential is
	// persisted to the session store before the session is activated.
	// Returns [ErrUsernameTaken] (wrapped) when the username exists and
	// [ErrInvalidSignup] on malformed input.
	Signup(ctx context.Context, username, password, name string) (models.User, error)

	// Login authenticates an existing account. The returned user carries
	// the favorites and own-stories collections mapped from the server
	// payload. Returns [ErrInvalidCredentials] (wrapped) on bad
	// credentials. A failed login never produces a half-populated user or
	// a persisted credential.
	Login(ctx context.Context, username, password string) (models.User, error)

	// RestoreSession attempts a silent login from the stored credential.
	// When no credential is stored it returns (nil, nil) without any
	// network call: absence is "logged out", not an error. When the server
	// rejects the stored token the store is cleared and (nil, nil) is
	// returned. Restoration never leaves a half-populated user behind.
	RestoreSession(ctx context.Context) (*models.User, error)

	// Logout clears the session store and deactivates the session.
	// Idempotent: logging out while logged out is not an error.
	Logout(ctx context.Context) error
}

// StoryService maintains the client's view of the public story feed. The
// in-memory sequence is a cache of the server's ordering, valid until the
// next FetchAll; it is never authoritative.
type StoryService interface {
	// FetchAll downloads the full public feed and replaces the cached
	// sequence wholesale. Any client-side inserts made since the previous
	// fetch are discarded. No credential is required.
	FetchAll(ctx context.Context) ([]models.Story, error)

	// Create submits the draft on behalf of the logged-in user and returns
	// the server-assigned story. The cached feed is deliberately left
	// untouched: the caller decides whether and how to splice the new
	// story into the visible feed (see Prepend). Returns
	// [ErrNotAuthenticated] when no session is active and
	// [ErrInvalidStoryDraft] when the draft fails validation, locally or
	// on the server.
	Create(ctx context.Context, draft models.StoryDraft) (models.Story, error)

	// Stories returns a snapshot copy of the cached feed.
	Stories() []models.Story

	// Prepend splices story to the head of the cached feed, preserving the
	// most-recent-first ordering contract without a refetch. A story
	// already present is not duplicated.
	Prepend(story models.Story)
}

// FavoriteService toggles the favorite relation between the logged-in user
// and a story. Both transitions are confirm-then-apply: the local favorites
// set changes only after the server acknowledges the request, so a rejected
// call leaves local state untouched for the caller to surface.
type FavoriteService interface {
	// AddFavorite marks story as a favorite. Idempotent locally: adding a
	// story that is already favorited keeps a single entry. A second
	// toggle for the same story while one is in flight is rejected with
	// [ErrToggleInFlight].
	AddFavorite(ctx context.Context, story models.Story) error

	// RemoveFavorite removes story from the favorites. The remote delete
	// is issued even when the story is locally absent, since local absence
	// does not guarantee server absence; local removal is then a no-op.
	RemoveFavorite(ctx context.Context, story models.Story) error
}
