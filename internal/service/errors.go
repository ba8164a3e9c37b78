package service

import "errors"

var (
	// ErrNotAuthenticated is returned by operations that require a live
	// session when none is active or the server rejected the credential.
	ErrNotAuthenticated = errors.New("not logged in")

	// ErrInvalidCredentials is returned by Login when the server rejects
	// the username/password pair.
	ErrInvalidCredentials = errors.New("invalid username or password")

	// ErrUsernameTaken is returned by Signup when the requested username
	// already exists.
	ErrUsernameTaken = errors.New("username already taken")

	// ErrInvalidSignup is returned by Signup when the server rejects the
	// payload as malformed.
	ErrInvalidSignup = errors.New("invalid signup data")

	// ErrInvalidStoryDraft is returned by Create when the server rejects
	// the draft as malformed.
	ErrInvalidStoryDraft = errors.New("invalid story draft")

	// ErrToggleInFlight is returned when a favorite toggle is requested
	// for a story whose previous toggle has not resolved yet.
	ErrToggleInFlight = errors.New("favorite toggle already in progress")
)
