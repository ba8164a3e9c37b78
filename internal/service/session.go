package service

import (
	"sync"

	"github.com/MKhiriev/go-snooze-client/models"
)

// Session is the explicit owner of the "current user" state for the lifetime
// of the process. It replaces ambient globals with a single value whose
// lifecycle is create → active → cleared: [NewSession] creates it inactive,
// a successful signup, login, or restore activates it, and logout clears it.
//
// All access is mutex-guarded. Mutations of the current user's collections
// go through [Session.Update] so they happen under the write lock; readers
// get defensive copies via [Session.Snapshot].
type Session struct {
	mu   sync.RWMutex
	user *models.User
}

// NewSession returns an inactive session.
func NewSession() *Session {
	return &Session{}
}

// Activate installs user as the current user. Any previously active user is
// replaced wholesale.
func (s *Session) Activate(user models.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = &user
}

// Clear deactivates the session. Clearing an inactive session is a no-op.
func (s *Session) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = nil
}

// Active reports whether a user is logged in.
func (s *Session) Active() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user != nil
}

// Token returns the cached credential of the current user, or an empty
// string when the session is inactive.
func (s *Session) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return ""
	}
	return s.user.Token
}

// Username returns the login of the current user, or an empty string when
// the session is inactive.
func (s *Session) Username() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return ""
	}
	return s.user.Username
}

// Update runs fn against the current user under the write lock. When the
// session is inactive fn is not called and Update reports false.
func (s *Session) Update(fn func(*models.User)) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return false
	}

	fn(s.user)
	return true
}

// Snapshot returns a copy of the current user with freshly allocated
// collection slices, safe for the caller to hold across further mutations.
// The second return value reports whether a session was active.
func (s *Session) Snapshot() (models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return models.User{}, false
	}

	copied := *s.user
	copied.Favorites = append([]models.Story(nil), s.user.Favorites...)
	copied.OwnStories = append([]models.Story(nil), s.user.OwnStories...)
	return copied, true
}
