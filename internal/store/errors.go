package store

import "errors"

// Sentinel errors returned by the session store. Callers should use
// [errors.Is] to match against these values.
var (
	// ErrSessionNotFound is returned by Load when no credential is stored.
	// Callers must treat this as "logged out", not as a failure.
	ErrSessionNotFound = errors.New("local session not found")

	// ErrCredentialIncomplete is returned by Save when the credential
	// carries a token without a username or a username without a token.
	// The store never persists half a pair.
	ErrCredentialIncomplete = errors.New("session credential incomplete")
)

// Low-level database operation errors, returned (or wrapped) when a SQL
// operation fails before any domain logic can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a query against the
	// session database fails.
	ErrExecutingQuery = errors.New("error executing sql query")
)
