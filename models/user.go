package models

import "time"

// User represents the account of the currently signed-in person together
// with the story collections the API tracks for it. The Username is the
// immutable primary key; every other field is refreshed wholesale on login
// or session restore and mutated incrementally afterwards.
//
// User caches the session token for convenience only. The durable source of
// truth for the credential is the session store; the cached copy is set by
// signup, login, and session restore and nowhere else.
type User struct {
	// Username is the unique login identifier of the account.
	Username string `json:"username"`

	// Name is the display name of the user.
	Name string `json:"name"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"createdAt"`

	// UpdatedAt is the server-side last-modification timestamp.
	UpdatedAt time.Time `json:"updatedAt"`

	// Token is the in-memory copy of the bearer token for this session.
	// Never serialised; persisted only through the session store.
	Token string `json:"-"`

	// Favorites is the ordered set of stories the user has favorited,
	// unique by StoryID.
	Favorites []Story `json:"favorites"`

	// OwnStories is the ordered sequence of stories submitted by this user.
	OwnStories []Story `json:"stories"`
}

// IsFavorite reports whether a story with the given ID is present in the
// user's favorites.
func (u *User) IsFavorite(storyID string) bool {
	for _, s := range u.Favorites {
		if s.StoryID == storyID {
			return true
		}
	}
	return false
}

// AddFavorite appends story to the user's favorites unless a story with the
// same ID is already present. It reports whether the set was modified.
func (u *User) AddFavorite(story Story) bool {
	if u.IsFavorite(story.StoryID) {
		return false
	}

	u.Favorites = append(u.Favorites, story)
	return true
}

// RemoveFavorite removes the story with the given ID from the user's
// favorites. It reports whether an entry was removed; removal of an absent
// story is a no-op.
func (u *User) RemoveFavorite(storyID string) bool {
	for i, s := range u.Favorites {
		if s.StoryID == storyID {
			u.Favorites = append(u.Favorites[:i], u.Favorites[i+1:]...)
			return true
		}
	}
	return false
}

// AddOwnStory appends a freshly created story to the user's own-stories
// sequence.
func (u *User) AddOwnStory(story Story) {
	u.OwnStories = append(u.OwnStories, story)
}
