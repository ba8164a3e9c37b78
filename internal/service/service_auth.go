package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-snooze-client/internal/adapter"
	"github.com/MKhiriev/go-snooze-client/internal/logger"
	"github.com/MKhiriev/go-snooze-client/internal/store"
	"github.com/MKhiriev/go-snooze-client/internal/validators"
	"github.com/MKhiriev/go-snooze-client/models"
)

type clientAuthService struct {
	sessionStore store.SessionStore
	adapter      adapter.ServerAdapter
	session      *Session
	events       *Notifier
	validator    validators.Validator
	logger       *logger.Logger
}

func NewClientAuthService(sessionStore store.SessionStore, serverAdapter adapter.ServerAdapter, session *Session, events *Notifier, log *logger.Logger) AuthService {
	return &clientAuthService{
		sessionStore: sessionStore,
		adapter:      serverAdapter,
		session:      session,
		events:       events,
		validator:    validators.NewClientInputValidator(),
		logger:       log,
	}
}

func (a *clientAuthService) Signup(ctx context.Context, username, password, name string) (models.User, error) {
	creds := models.SignupCredentials{
		Username: username,
		Password: password,
		Name:     name,
	}

	if err := a.validator.Validate(ctx, creds); err != nil {
		return models.User{}, fmt.Errorf("%w: %v", ErrInvalidSignup, err)
	}

	user, token, err := a.adapter.Signup(ctx, creds)
	if err != nil {
		return models.User{}, mapSignupError(err)
	}

	// a fresh account has nothing favorited and nothing submitted
	user.Token = token
	user.Favorites = []models.Story{}
	user.OwnStories = []models.Story{}

	if err = a.persistCredential(ctx, token, user.Username); err != nil {
		return models.User{}, err
	}

	a.session.Activate(user)
	a.events.Publish(Event{Kind: EventSignedUp, Username: user.Username})

	a.logger.Info().Str("username", user.Username).Msg("signed up")
	return user, nil
}

func (a *clientAuthService) Login(ctx context.Context, username, password string) (models.User, error) {
	creds := models.LoginCredentials{
		Username: username,
		Password: password,
	}

	if err := a.validator.Validate(ctx, creds); err != nil {
		return models.User{}, fmt.Errorf("%w: %v", ErrInvalidCredentials, err)
	}

	user, token, err := a.adapter.Login(ctx, creds)
	if err != nil {
		return models.User{}, mapLoginError(err)
	}

	user.Token = token

	if err = a.persistCredential(ctx, token, user.Username); err != nil {
		return models.User{}, err
	}

	a.session.Activate(user)
	a.events.Publish(Event{Kind: EventLoggedIn, Username: user.Username})

	a.logger.Info().Str("username", user.Username).Msg("logged in")
	return user, nil
}

func (a *clientAuthService) RestoreSession(ctx context.Context) (*models.User, error) {
	cred, err := a.sessionStore.Load(ctx)
	if err != nil {
		if errors.Is(err, store.ErrSessionNotFound) {
			// cold start without a credential is simply "logged out"
			return nil, nil
		}
		return nil, fmt.Errorf("load session: %w", err)
	}

	// best-effort local check: a token whose subject names a different
	// account than the stored username is a corrupted pair, forget it
	// without a round trip. Tokens that do not parse are left for the
	// server to judge.
	if subject, subErr := (models.Token{SignedString: cred.Token}).Username(); subErr == nil && subject != cred.Username {
		a.logger.Info().Str("username", cred.Username).Msg("stored credential mismatched, clearing")
		if clearErr := a.sessionStore.Clear(ctx); clearErr != nil {
			return nil, fmt.Errorf("clear mismatched session: %w", clearErr)
		}
		return nil, nil
	}

	user, err := a.adapter.GetUser(ctx, cred.Token, cred.Username)
	if err != nil {
		if sessionRejected(err) {
			// stale or revoked token: forget it and start logged out
			a.logger.Info().Str("username", cred.Username).Msg("stored session rejected, clearing")
			if clearErr := a.sessionStore.Clear(ctx); clearErr != nil {
				return nil, fmt.Errorf("clear rejected session: %w", clearErr)
			}
			return nil, nil
		}
		return nil, err
	}

	user.Token = cred.Token

	a.session.Activate(user)
	a.events.Publish(Event{Kind: EventSessionRestored, Username: user.Username})

	a.logger.Info().Str("username", user.Username).Msg("session restored")

	restored := user
	return &restored, nil
}

func (a *clientAuthService) Logout(ctx context.Context) error {
	if err := a.sessionStore.Clear(ctx); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}

	username := a.session.Username()
	a.session.Clear()
	a.events.Publish(Event{Kind: EventLoggedOut, Username: username})

	return nil
}

// persistCredential writes the (token, username) pair as one unit. A failed
// write aborts the whole auth operation so the durable store and the
// in-memory session never disagree.
func (a *clientAuthService) persistCredential(ctx context.Context, token, username string) error {
	cred := models.SessionCredential{
		Token:    token,
		Username: username,
		SavedAt:  time.Now(),
	}

	if err := a.sessionStore.Save(ctx, cred); err != nil {
		return fmt.Errorf("persist credential: %w", err)
	}

	return nil
}
