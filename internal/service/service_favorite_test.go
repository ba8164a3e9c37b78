package service

import (
	"context"
	"sync"
	"testing"

	"github.com/MKhiriev/go-snooze-client/internal/adapter"
	"github.com/MKhiriev/go-snooze-client/internal/logger"
	"github.com/MKhiriev/go-snooze-client/internal/mock"
	"github.com/MKhiriev/go-snooze-client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestFavoriteSvc(
	t *testing.T,
	ctrl *gomock.Controller,
) (
	*clientFavoriteService,
	*mock.MockServerAdapter,
	*Session,
	*Notifier,
) {
	t.Helper()
	mockAdapter := mock.NewMockServerAdapter(ctrl)
	session := NewSession()
	events := NewNotifier()

	svc := NewClientFavoriteService(mockAdapter, session, events, logger.Nop()).(*clientFavoriteService)

	return svc, mockAdapter, session, events
}

// ── AddFavorite ──────────────────────────────────────────────────────────────

func TestClientFavoriteService_AddFavorite_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, session, events := newTestFavoriteSvc(t, ctrl)
	ctx := context.Background()

	session.Activate(models.User{Username: "alice", Token: "tok"})

	var got []Event
	events.Subscribe(func(evt Event) { got = append(got, evt) })

	story := models.Story{StoryID: "s1", Title: "one"}

	mockAdapter.EXPECT().AddFavorite(ctx, "tok", "alice", "s1").Return(nil)

	require.NoError(t, svc.AddFavorite(ctx, story))

	snapshot, ok := session.Snapshot()
	require.True(t, ok)
	require.Len(t, snapshot.Favorites, 1)
	assert.Equal(t, "s1", snapshot.Favorites[0].StoryID)

	require.Len(t, got, 1)
	assert.Equal(t, EventFavoriteToggled, got[0].Kind)
	assert.True(t, got[0].Favorited)
}

func TestClientFavoriteService_AddFavorite_Idempotent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, session, _ := newTestFavoriteSvc(t, ctrl)
	ctx := context.Background()

	session.Activate(models.User{Username: "alice", Token: "tok"})
	story := models.Story{StoryID: "s1"}

	// each call goes to the server, but the local set keeps one entry
	mockAdapter.EXPECT().AddFavorite(ctx, "tok", "alice", "s1").Return(nil).Times(2)

	require.NoError(t, svc.AddFavorite(ctx, story))
	require.NoError(t, svc.AddFavorite(ctx, story))

	snapshot, _ := session.Snapshot()
	assert.Len(t, snapshot.Favorites, 1)
}

func TestClientFavoriteService_AddFavorite_RejectedLeavesLocalUntouched(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, session, events := newTestFavoriteSvc(t, ctrl)
	ctx := context.Background()

	session.Activate(models.User{Username: "alice", Token: "tok"})

	var got []Event
	events.Subscribe(func(evt Event) { got = append(got, evt) })

	mockAdapter.EXPECT().AddFavorite(ctx, "tok", "alice", "s1").Return(adapter.ErrUnauthorized)

	err := svc.AddFavorite(ctx, models.Story{StoryID: "s1"})
	require.ErrorIs(t, err, ErrNotAuthenticated)

	snapshot, _ := session.Snapshot()
	assert.Empty(t, snapshot.Favorites)
	assert.Empty(t, got)
}

func TestClientFavoriteService_AddFavorite_NotLoggedIn(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _, _ := newTestFavoriteSvc(t, ctrl)

	err := svc.AddFavorite(context.Background(), models.Story{StoryID: "s1"})
	require.ErrorIs(t, err, ErrNotAuthenticated)
}

// ── RemoveFavorite ───────────────────────────────────────────────────────────

func TestClientFavoriteService_RemoveFavorite_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, session, events := newTestFavoriteSvc(t, ctrl)
	ctx := context.Background()

	story := models.Story{StoryID: "s1"}
	session.Activate(models.User{
		Username:  "alice",
		Token:     "tok",
		Favorites: []models.Story{story},
	})

	var got []Event
	events.Subscribe(func(evt Event) { got = append(got, evt) })

	mockAdapter.EXPECT().RemoveFavorite(ctx, "tok", "alice", "s1").Return(nil)

	require.NoError(t, svc.RemoveFavorite(ctx, story))

	snapshot, _ := session.Snapshot()
	assert.Empty(t, snapshot.Favorites)

	require.Len(t, got, 1)
	assert.Equal(t, EventFavoriteToggled, got[0].Kind)
	assert.False(t, got[0].Favorited)
}

func TestClientFavoriteService_RemoveFavorite_AbsentStillCallsServer(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, session, _ := newTestFavoriteSvc(t, ctrl)
	ctx := context.Background()

	session.Activate(models.User{Username: "alice", Token: "tok"})

	// local absence does not guarantee server absence
	mockAdapter.EXPECT().RemoveFavorite(ctx, "tok", "alice", "s1").Return(nil)

	require.NoError(t, svc.RemoveFavorite(ctx, models.Story{StoryID: "s1"}))
}

func TestClientFavoriteService_RemoveFavorite_RejectedKeepsEntry(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, session, _ := newTestFavoriteSvc(t, ctrl)
	ctx := context.Background()

	story := models.Story{StoryID: "s1"}
	session.Activate(models.User{
		Username:  "alice",
		Token:     "tok",
		Favorites: []models.Story{story},
	})

	mockAdapter.EXPECT().RemoveFavorite(ctx, "tok", "alice", "s1").Return(adapter.ErrForbidden)

	err := svc.RemoveFavorite(ctx, story)
	require.ErrorIs(t, err, ErrNotAuthenticated)

	snapshot, _ := session.Snapshot()
	assert.Len(t, snapshot.Favorites, 1)
}

// ── in-flight guard ──────────────────────────────────────────────────────────

func TestClientFavoriteService_ToggleInFlight_Rejected(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, session, _ := newTestFavoriteSvc(t, ctrl)
	ctx := context.Background()

	session.Activate(models.User{Username: "alice", Token: "tok"})

	firstEntered := make(chan struct{})
	release := make(chan struct{})

	mockAdapter.EXPECT().AddFavorite(ctx, "tok", "alice", "s1").DoAndReturn(
		func(context.Context, string, string, string) error {
			close(firstEntered)
			<-release
			return nil
		},
	)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		assert.NoError(t, svc.AddFavorite(ctx, models.Story{StoryID: "s1"}))
	}()

	<-firstEntered

	// second toggle for the same story while the first is unresolved
	err := svc.RemoveFavorite(ctx, models.Story{StoryID: "s1"})
	require.ErrorIs(t, err, ErrToggleInFlight)

	close(release)
	wg.Wait()
}

func TestClientFavoriteService_ToggleInFlight_DifferentStoriesIndependent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, session, _ := newTestFavoriteSvc(t, ctrl)
	ctx := context.Background()

	session.Activate(models.User{Username: "alice", Token: "tok"})

	firstEntered := make(chan struct{})
	release := make(chan struct{})

	mockAdapter.EXPECT().AddFavorite(ctx, "tok", "alice", "s1").DoAndReturn(
		func(context.Context, string, string, string) error {
			close(firstEntered)
			<-release
			return nil
		},
	)
	mockAdapter.EXPECT().AddFavorite(ctx, "tok", "alice", "s2").Return(nil)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		assert.NoError(t, svc.AddFavorite(ctx, models.Story{StoryID: "s1"}))
	}()

	<-firstEntered

	// the guard is per story, not global
	require.NoError(t, svc.AddFavorite(ctx, models.Story{StoryID: "s2"}))

	close(release)
	wg.Wait()
}

func TestClientFavoriteService_GuardReleasedAfterError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, session, _ := newTestFavoriteSvc(t, ctrl)
	ctx := context.Background()

	session.Activate(models.User{Username: "alice", Token: "tok"})

	gomock.InOrder(
		mockAdapter.EXPECT().AddFavorite(ctx, "tok", "alice", "s1").Return(adapter.ErrInternalServerError),
		mockAdapter.EXPECT().AddFavorite(ctx, "tok", "alice", "s1").Return(nil),
	)

	require.Error(t, svc.AddFavorite(ctx, models.Story{StoryID: "s1"}))
	// a failed toggle must release the guard for the retry
	require.NoError(t, svc.AddFavorite(ctx, models.Story{StoryID: "s1"}))
}
