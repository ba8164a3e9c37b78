package models

import (
	"strings"
	"time"
)

// Story represents a single submitted story as returned by the remote API.
// A Story is immutable once constructed: the server owns every field,
// including the StoryID and both timestamps. Two stories are considered
// equal when their StoryID values match.
type Story struct {
	// StoryID is the opaque server-assigned identifier of the story.
	// It is the primary key within any story collection.
	StoryID string `json:"storyId"`

	// Title is the headline of the story as entered by the submitter.
	Title string `json:"title"`

	// Author is the name of the article's author (free text, not an account).
	Author string `json:"author"`

	// URL is the link the story points to.
	URL string `json:"url"`

	// Username is the login of the account that submitted the story.
	Username string `json:"username"`

	// CreatedAt is the server-side creation timestamp.
	CreatedAt time.Time `json:"createdAt"`

	// UpdatedAt is the server-side last-modification timestamp.
	UpdatedAt time.Time `json:"updatedAt"`
}

// Hostname returns the display hostname of the story's URL.
// See [Hostname] for the derivation rules.
func (s Story) Hostname() string {
	return Hostname(s.URL)
}

// Hostname derives the display hostname from rawURL: the host segment of the
// URL with a leading "www." stripped. The derivation is purely lexical so it
// never fails; malformed input yields its first path-ish segment unchanged.
func Hostname(rawURL string) string {
	host := rawURL
	if idx := strings.Index(rawURL, "://"); idx != -1 {
		rest := rawURL[idx+len("://"):]
		host, _, _ = strings.Cut(rest, "/")
	} else {
		host, _, _ = strings.Cut(rawURL, "/")
	}

	return strings.TrimPrefix(host, "www.")
}

// StoryDraft carries the user-entered fields of a story about to be
// submitted. The server assigns the identifier and timestamps on creation.
type StoryDraft struct {
	// Author is the name of the article's author.
	Author string `json:"author"`

	// Title is the headline of the story.
	Title string `json:"title"`

	// URL is the link the story points to.
	URL string `json:"url"`
}
