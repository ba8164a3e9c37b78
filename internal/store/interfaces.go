package store

import (
	"context"

	"github.com/MKhiriev/go-snooze-client/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/session_store_mock.go -package=mock

// SessionStore persists at most one session credential across process
// restarts. It is the single durable source of truth for the (token,
// username) pair; in-memory copies elsewhere are caches.
//
// Implementations must uphold the both-or-neither invariant: a credential
// with an empty token or an empty username is never written.
type SessionStore interface {
	// Save persists cred, replacing any previously stored credential.
	// Returns [ErrCredentialIncomplete] if one of token/username is empty.
	Save(ctx context.Context, cred models.SessionCredential) error

	// Load returns the stored credential, or [ErrSessionNotFound] if no
	// credential has been saved since the last Clear.
	Load(ctx context.Context) (models.SessionCredential, error)

	// Clear removes the stored credential. Clearing an empty store is not
	// an error; the operation is idempotent.
	Clear(ctx context.Context) error
}
