package models

// StoriesResponse is the payload of GET /stories: the full public feed in
// server order, most recent first.
type StoriesResponse struct {
	// Stories is the ordered story feed.
	Stories []Story `json:"stories"`
}

// StoryResponse is the payload of POST /stories: the created story with the
// server-assigned StoryID, Username and timestamps filled in.
type StoryResponse struct {
	Story Story `json:"story"`
}

// AuthResponse is the payload of POST /signup and POST /login: the account
// record plus a freshly issued bearer token. On login the user record also
// carries the favorites and own-stories collections.
type AuthResponse struct {
	User  User   `json:"user"`
	Token string `json:"token"`
}

// UserResponse is the payload of GET /users/{username}: the full account
// record including favorites and own stories.
type UserResponse struct {
	User User `json:"user"`
}
