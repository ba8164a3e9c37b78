package models

// SignupCredentials carries the fields required to create a new account.
type SignupCredentials struct {
	// Username is the requested unique login identifier.
	Username string `json:"username"`

	// Password is the plaintext password; it is sent to the API over the
	// transport and never stored locally.
	Password string `json:"password"`

	// Name is the display name for the new account.
	Name string `json:"name"`
}

// LoginCredentials carries the fields required to authenticate an existing
// account.
type LoginCredentials struct {
	// Username is the login identifier of the account.
	Username string `json:"username"`

	// Password is the plaintext password.
	Password string `json:"password"`
}

// SignupRequest is the body of POST /signup.
type SignupRequest struct {
	User SignupCredentials `json:"user"`
}

// LoginRequest is the body of POST /login.
type LoginRequest struct {
	User LoginCredentials `json:"user"`
}

// CreateStoryRequest is the body of POST /stories: the bearer token plus the
// user-entered draft. The server assigns StoryID, Username and timestamps.
type CreateStoryRequest struct {
	Token string     `json:"token"`
	Story StoryDraft `json:"story"`
}

// FavoriteRequest is the body of both POST and DELETE
// /users/{username}/favorites/{storyId}.
type FavoriteRequest struct {
	Token string `json:"token"`
}
