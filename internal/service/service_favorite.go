package service

import (
	"context"
	"sync"

	"github.com/MKhiriev/go-snooze-client/internal/adapter"
	"github.com/MKhiriev/go-snooze-client/internal/logger"
	"github.com/MKhiriev/go-snooze-client/models"
)

type clientFavoriteService struct {
	adapter adapter.ServerAdapter
	session *Session
	events  *Notifier
	logger  *logger.Logger

	mu       sync.Mutex
	inFlight map[string]struct{}
}

func NewClientFavoriteService(serverAdapter adapter.ServerAdapter, session *Session, events *Notifier, log *logger.Logger) FavoriteService {
	return &clientFavoriteService{
		adapter:  serverAdapter,
		session:  session,
		events:   events,
		logger:   log,
		inFlight: make(map[string]struct{}),
	}
}

func (f *clientFavoriteService) AddFavorite(ctx context.Context, story models.Story) error {
	token, username := f.session.Token(), f.session.Username()
	if token == "" {
		return ErrNotAuthenticated
	}

	if !f.begin(story.StoryID) {
		return ErrToggleInFlight
	}
	defer f.end(story.StoryID)

	if err := f.adapter.AddFavorite(ctx, token, username, story.StoryID); err != nil {
		// confirm-then-apply: a rejected request leaves the local set alone
		return mapFavoriteError(err)
	}

	f.session.Update(func(u *models.User) {
		u.AddFavorite(story)
	})

	f.events.Publish(Event{Kind: EventFavoriteToggled, Username: username, StoryID: story.StoryID, Favorited: true})

	f.logger.Debug().Str("story_id", story.StoryID).Msg("favorited")
	return nil
}

func (f *clientFavoriteService) RemoveFavorite(ctx context.Context, story models.Story) error {
	token, username := f.session.Token(), f.session.Username()
	if token == "" {
		return ErrNotAuthenticated
	}

	if !f.begin(story.StoryID) {
		return ErrToggleInFlight
	}
	defer f.end(story.StoryID)

	// the delete is issued even when the story is locally absent: local
	// absence does not guarantee server absence, and the endpoint is
	// idempotent on the server side
	if err := f.adapter.RemoveFavorite(ctx, token, username, story.StoryID); err != nil {
		return mapFavoriteError(err)
	}

	f.session.Update(func(u *models.User) {
		u.RemoveFavorite(story.StoryID)
	})

	f.events.Publish(Event{Kind: EventFavoriteToggled, Username: username, StoryID: story.StoryID, Favorited: false})

	f.logger.Debug().Str("story_id", story.StoryID).Msg("unfavorited")
	return nil
}

// begin registers an in-flight toggle for the story. It reports false when a
// toggle for the same story has not resolved yet, in which case the caller
// must reject the request instead of queuing a conflicting one.
func (f *clientFavoriteService) begin(storyID string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, busy := f.inFlight[storyID]; busy {
		return false
	}

	f.inFlight[storyID] = struct{}{}
	return true
}

func (f *clientFavoriteService) end(storyID string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.inFlight, storyID)
}
