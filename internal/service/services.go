package service

import (
	"github.com/MKhiriev/go-snooze-client/internal/adapter"
	"github.com/MKhiriev/go-snooze-client/internal/logger"
	"github.com/MKhiriev/go-snooze-client/internal/store"
)

// ClientServices bundles the session, the event notifier, and the three
// domain services behind a single constructor so the client binary wires
// everything in one call.
type ClientServices struct {
	Session *Session
	Events  *Notifier

	AuthService     AuthService
	StoryService    StoryService
	FavoriteService FavoriteService
}

func NewClientServices(localStore *store.ClientStorages, serverAdapter adapter.ServerAdapter, log *logger.Logger) *ClientServices {
	session := NewSession()
	events := NewNotifier()

	return &ClientServices{
		Session:         session,
		Events:          events,
		AuthService:     NewClientAuthService(localStore.Session, serverAdapter, session, events, log),
		StoryService:    NewClientStoryService(serverAdapter, session, events, log),
		FavoriteService: NewClientFavoriteService(serverAdapter, session, events, log),
	}
}
