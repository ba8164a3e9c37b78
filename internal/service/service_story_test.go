package service

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/go-snooze-client/internal/adapter"
	"github.com/MKhiriev/go-snooze-client/internal/logger"
	"github.com/MKhiriev/go-snooze-client/internal/mock"
	"github.com/MKhiriev/go-snooze-client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestStorySvc(
	t *testing.T,
	ctrl *gomock.Controller,
) (
	*clientStoryService,
	*mock.MockServerAdapter,
	*Session,
	*Notifier,
) {
	t.Helper()
	mockAdapter := mock.NewMockServerAdapter(ctrl)
	session := NewSession()
	events := NewNotifier()

	svc := NewClientStoryService(mockAdapter, session, events, logger.Nop()).(*clientStoryService)

	return svc, mockAdapter, session, events
}

// ── FetchAll ─────────────────────────────────────────────────────────────────

func TestClientStoryService_FetchAll_ReplacesCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, _, events := newTestStorySvc(t, ctrl)
	ctx := context.Background()

	var got []Event
	events.Subscribe(func(evt Event) { got = append(got, evt) })

	first := []models.Story{{StoryID: "s1"}, {StoryID: "s2"}}
	second := []models.Story{{StoryID: "s3"}}

	mockAdapter.EXPECT().ListStories(ctx).Return(first, nil)
	feed, err := svc.FetchAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, first, feed)

	// a client-side insert between fetches is discarded by the next fetch
	svc.Prepend(models.Story{StoryID: "local"})

	mockAdapter.EXPECT().ListStories(ctx).Return(second, nil)
	feed, err = svc.FetchAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, second, feed)
	assert.Equal(t, second, svc.Stories())

	require.Len(t, got, 2)
	assert.Equal(t, EventFeedRefreshed, got[0].Kind)
	assert.Equal(t, EventFeedRefreshed, got[1].Kind)
}

func TestClientStoryService_FetchAll_ErrorKeepsCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, _, _ := newTestStorySvc(t, ctrl)
	ctx := context.Background()

	cached := []models.Story{{StoryID: "s1"}}
	mockAdapter.EXPECT().ListStories(ctx).Return(cached, nil)
	_, err := svc.FetchAll(ctx)
	require.NoError(t, err)

	mockAdapter.EXPECT().ListStories(ctx).Return(nil, errors.New("server down"))
	_, err = svc.FetchAll(ctx)
	require.Error(t, err)

	assert.Equal(t, cached, svc.Stories())
}

// ── Create ───────────────────────────────────────────────────────────────────

func TestClientStoryService_Create_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, session, events := newTestStorySvc(t, ctrl)
	ctx := context.Background()

	session.Activate(models.User{Username: "alice", Token: "tok"})

	var got []Event
	events.Subscribe(func(evt Event) { got = append(got, evt) })

	draft := models.StoryDraft{Author: "Me", Title: "Hello", URL: "http://example.com"}
	created := models.Story{StoryID: "s9", Title: "Hello", Username: "alice"}

	mockAdapter.EXPECT().CreateStory(ctx, "tok", draft).Return(created, nil)

	story, err := svc.Create(ctx, draft)
	require.NoError(t, err)
	assert.Equal(t, created, story)

	// the feed cache must stay untouched; the own-stories collection grows
	assert.Empty(t, svc.Stories())
	snapshot, ok := session.Snapshot()
	require.True(t, ok)
	require.Len(t, snapshot.OwnStories, 1)
	assert.Equal(t, "s9", snapshot.OwnStories[0].StoryID)

	require.Len(t, got, 1)
	assert.Equal(t, EventStoryCreated, got[0].Kind)
	assert.Equal(t, "s9", got[0].StoryID)
}

func TestClientStoryService_Create_NotAuthenticated(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// no EXPECT on the adapter: an unauthenticated create never leaves
	// the client
	svc, _, _, _ := newTestStorySvc(t, ctrl)

	_, err := svc.Create(context.Background(), models.StoryDraft{Title: "x"})
	require.ErrorIs(t, err, ErrNotAuthenticated)
}

func TestClientStoryService_Create_RejectedByServer(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, session, _ := newTestStorySvc(t, ctrl)
	ctx := context.Background()

	session.Activate(models.User{Username: "alice", Token: "tok"})

	draft := models.StoryDraft{Title: "Hello", Author: "Me", URL: "http://example.com"}
	mockAdapter.EXPECT().CreateStory(ctx, "tok", draft).Return(models.Story{}, adapter.ErrBadRequest)

	_, err := svc.Create(ctx, draft)
	require.ErrorIs(t, err, ErrInvalidStoryDraft)

	snapshot, ok := session.Snapshot()
	require.True(t, ok)
	assert.Empty(t, snapshot.OwnStories)
}

func TestClientStoryService_Create_InvalidDraftRejectedLocally(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// no EXPECT on the adapter: a draft that fails validation never
	// leaves the client
	svc, _, session, _ := newTestStorySvc(t, ctrl)
	ctx := context.Background()

	session.Activate(models.User{Username: "alice", Token: "tok"})

	_, err := svc.Create(ctx, models.StoryDraft{Title: "no url"})
	require.ErrorIs(t, err, ErrInvalidStoryDraft)
}

// ── Stories / Prepend ────────────────────────────────────────────────────────

func TestClientStoryService_Stories_ReturnsCopy(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, _, _ := newTestStorySvc(t, ctrl)
	ctx := context.Background()

	mockAdapter.EXPECT().ListStories(ctx).Return([]models.Story{{StoryID: "s1", Title: "orig"}}, nil)
	_, err := svc.FetchAll(ctx)
	require.NoError(t, err)

	feed := svc.Stories()
	feed[0].Title = "mutated"

	assert.Equal(t, "orig", svc.Stories()[0].Title)
}

func TestClientStoryService_Prepend(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _, _ := newTestStorySvc(t, ctrl)

	svc.Prepend(models.Story{StoryID: "s1"})
	svc.Prepend(models.Story{StoryID: "s2"})

	feed := svc.Stories()
	require.Len(t, feed, 2)
	assert.Equal(t, "s2", feed[0].StoryID)
	assert.Equal(t, "s1", feed[1].StoryID)
}

func TestClientStoryService_Prepend_NoDuplicates(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _, _ := newTestStorySvc(t, ctrl)

	svc.Prepend(models.Story{StoryID: "s1"})
	svc.Prepend(models.Story{StoryID: "s1"})

	assert.Len(t, svc.Stories(), 1)
}
