package models

import "time"

// SessionCredential is the durable (token, username) pair that survives
// process restarts. The two fields are written and cleared together: the
// store must never hold one without the other.
type SessionCredential struct {
	// Token is the opaque bearer token issued by the API on signup or login.
	Token string `json:"token"`

	// Username is the login the token was issued for. Stored alongside the
	// token so the client does not need to decode the token on every start.
	Username string `json:"username"`

	// SavedAt records when the credential was persisted.
	SavedAt time.Time `json:"saved_at"`
}

// IsZero reports whether the credential is absent.
func (c SessionCredential) IsZero() bool {
	return c.Token == "" && c.Username == ""
}
