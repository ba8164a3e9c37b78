// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport layer for communicating with the
// hosted Hack or Snooze REST API.
//
// The primary abstraction is [ServerAdapter], which decouples the service
// layer from the underlying protocol. The package ships an HTTP/REST
// implementation ([NewHTTPServerAdapter]) built on resty.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrUnauthorized] for 401, [ErrConflict] for 409).
// Transport-level failures (unreachable host, timeout) are returned as
// wrapped resty errors and match none of the sentinels.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-snooze-client/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines transport-agnostic communication with the Hack or
// Snooze server. Implementations are responsible for serialisation, token
// placement (this API carries the token in request bodies and query strings,
// not in an Authorization header), and mapping transport-level errors to the
// sentinel values defined in this package.
//
// The adapter is stateless with respect to credentials: every authenticated
// operation receives the bearer token explicitly. The session store owns the
// durable credential.
type ServerAdapter interface {
	// ListStories fetches the public story feed in server order, most
	// recent first. No credential is required. Returns an error if the
	// request fails or the response cannot be decoded.
	ListStories(ctx context.Context) ([]models.Story, error)

	// CreateStory submits draft on behalf of the token's account and
	// returns the created story with the server-assigned StoryID, Username
	// and timestamps. Returns an error if the request fails or the server
	// responds with a non-2xx status.
	CreateStory(ctx context.Context, token string, draft models.StoryDraft) (models.Story, error)

	// Signup creates a new account and returns the account record together
	// with a freshly issued bearer token. Returns [ErrConflict] (wrapped)
	// when the username is taken and [ErrBadRequest] on malformed input.
	Signup(ctx context.Context, creds models.SignupCredentials) (models.User, string, error)

	// Login authenticates an existing account and returns the account
	// record (including favorites and own stories) together with a bearer
	// token. Returns [ErrUnauthorized] (wrapped) on bad credentials.
	Login(ctx context.Context, creds models.LoginCredentials) (models.User, string, error)

	// GetUser fetches the full account record for username, including
	// favorites and own stories. Returns [ErrUnauthorized] or
	// [ErrForbidden] (wrapped) when the token is stale or revoked.
	GetUser(ctx context.Context, token, username string) (models.User, error)

	// AddFavorite marks the story as a favorite of username on the server.
	// The call is idempotent on the server side.
	AddFavorite(ctx context.Context, token, username, storyID string) error

	// RemoveFavorite removes the story from username's favorites on the
	// server. Removing a story that is not favorited is not an error; the
	// server's own idempotency is relied upon.
	RemoveFavorite(ctx context.Context, token, username, storyID string) error
}
