package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/MKhiriev/go-snooze-client/internal/adapter"
	"github.com/MKhiriev/go-snooze-client/internal/logger"
	"github.com/MKhiriev/go-snooze-client/internal/validators"
	"github.com/MKhiriev/go-snooze-client/models"
)

type clientStoryService struct {
	adapter   adapter.ServerAdapter
	session   *Session
	events    *Notifier
	validator validators.Validator
	logger    *logger.Logger

	mu      sync.RWMutex
	stories []models.Story
}

func NewClientStoryService(serverAdapter adapter.ServerAdapter, session *Session, events *Notifier, log *logger.Logger) StoryService {
	return &clientStoryService{
		adapter:   serverAdapter,
		session:   session,
		events:    events,
		validator: validators.NewClientInputValidator(),
		logger:    log,
	}
}

func (s *clientStoryService) FetchAll(ctx context.Context) ([]models.Story, error) {
	feed, err := s.adapter.ListStories(ctx)
	if err != nil {
		return nil, err
	}

	// full replace: optimistic inserts made since the last fetch are
	// intentionally discarded together with any stale entries
	s.mu.Lock()
	s.stories = feed
	s.mu.Unlock()

	s.events.Publish(Event{Kind: EventFeedRefreshed})

	s.logger.Debug().Int("stories", len(feed)).Msg("feed refreshed")
	return s.Stories(), nil
}

func (s *clientStoryService) Create(ctx context.Context, draft models.StoryDraft) (models.Story, error) {
	token := s.session.Token()
	if token == "" {
		return models.Story{}, ErrNotAuthenticated
	}

	if err := s.validator.Validate(ctx, draft); err != nil {
		return models.Story{}, fmt.Errorf("%w: %v", ErrInvalidStoryDraft, err)
	}

	created, err := s.adapter.CreateStory(ctx, token, draft)
	if err != nil {
		return models.Story{}, mapCreateStoryError(err)
	}

	// the feed cache is left alone: splicing the new story into the
	// visible feed is the caller's decision, which keeps this cache from
	// racing a concurrent FetchAll
	s.session.Update(func(u *models.User) {
		u.AddOwnStory(created)
	})

	s.events.Publish(Event{Kind: EventStoryCreated, Username: created.Username, StoryID: created.StoryID})

	s.logger.Info().Str("story_id", created.StoryID).Msg("story created")
	return created, nil
}

func (s *clientStoryService) Stories() []models.Story {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Story(nil), s.stories...)
}

func (s *clientStoryService) Prepend(story models.Story) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.stories {
		if existing.StoryID == story.StoryID {
			return
		}
	}

	s.stories = append([]models.Story{story}, s.stories...)
}
