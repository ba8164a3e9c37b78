package service

import "sync"

// EventKind enumerates the state changes the service layer announces to the
// rendering layer.
type EventKind int

const (
	// EventSessionRestored fires when a stored credential was accepted and
	// the user is silently logged back in.
	EventSessionRestored EventKind = iota + 1
	// EventLoggedIn fires on a successful interactive login.
	EventLoggedIn
	// EventSignedUp fires on a successful account creation.
	EventSignedUp
	// EventFeedRefreshed fires after FetchAll replaced the cached feed.
	EventFeedRefreshed
	// EventStoryCreated fires after the server accepted a submitted story.
	EventStoryCreated
	// EventFavoriteToggled fires after the server confirmed a favorite
	// transition; Favorited carries the new state.
	EventFavoriteToggled
	// EventLoggedOut fires after logout cleared the session.
	EventLoggedOut
)

// Event is a single state-change notification. StoryID and Favorited are set
// only for the story-scoped kinds; Username is set whenever a session is
// involved.
type Event struct {
	Kind      EventKind
	Username  string
	StoryID   string
	Favorited bool
}

// Notifier delivers events to subscribed callbacks. Dispatch is synchronous
// and in registration order, matching the single-logical-thread model of the
// client: by the time a service method returns, every subscriber has seen
// the event. Subscribers must not block.
type Notifier struct {
	mu          sync.RWMutex
	subscribers []func(Event)
}

// NewNotifier returns a Notifier with no subscribers.
func NewNotifier() *Notifier {
	return &Notifier{}
}

// Subscribe registers fn to be called for every subsequent event.
// Subscriptions cannot be removed; the notifier lives as long as the
// process.
func (n *Notifier) Subscribe(fn func(Event)) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.subscribers = append(n.subscribers, fn)
}

// Publish delivers evt to every subscriber in registration order.
func (n *Notifier) Publish(evt Event) {
	n.mu.RLock()
	subs := append(([]func(Event))(nil), n.subscribers...)
	n.mu.RUnlock()

	for _, fn := range subs {
		fn(evt)
	}
}
