package validators

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-snooze-client/models"
)

const (
	FieldUsername = "username"
	FieldPassword = "password"
	FieldName     = "name"
	FieldTitle    = "title"
	FieldAuthor   = "author"
	FieldURL      = "url"
)

// ClientInputValidator checks user-entered values before they are sent to
// the remote API, so obviously malformed input fails fast without a round
// trip. The server remains the authority; these checks only mirror its
// documented requirements.
type ClientInputValidator struct {
}

func NewClientInputValidator() Validator {
	return &ClientInputValidator{}
}

func (v *ClientInputValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.SignupCredentials:
		return v.validateSignup(ctx, value, fields...)
	case *models.SignupCredentials:
		return v.validateSignup(ctx, *value, fields...)

	case models.LoginCredentials:
		return v.validateLogin(ctx, value, fields...)
	case *models.LoginCredentials:
		return v.validateLogin(ctx, *value, fields...)

	case models.StoryDraft:
		return v.validateDraft(ctx, value, fields...)
	case *models.StoryDraft:
		return v.validateDraft(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *ClientInputValidator) validateSignup(_ context.Context, creds models.SignupCredentials, fields ...string) error {
	for _, field := range scope(fields, FieldUsername, FieldPassword, FieldName) {
		switch field {
		case FieldUsername:
			if strings.TrimSpace(creds.Username) == "" {
				return ErrEmptyUsername
			}
		case FieldPassword:
			if creds.Password == "" {
				return ErrEmptyPassword
			}
		case FieldName:
			if strings.TrimSpace(creds.Name) == "" {
				return ErrEmptyName
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
	}

	return nil
}

func (v *ClientInputValidator) validateLogin(_ context.Context, creds models.LoginCredentials, fields ...string) error {
	for _, field := range scope(fields, FieldUsername, FieldPassword) {
		switch field {
		case FieldUsername:
			if strings.TrimSpace(creds.Username) == "" {
				return ErrEmptyUsername
			}
		case FieldPassword:
			if creds.Password == "" {
				return ErrEmptyPassword
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
	}

	return nil
}

func (v *ClientInputValidator) validateDraft(_ context.Context, draft models.StoryDraft, fields ...string) error {
	for _, field := range scope(fields, FieldTitle, FieldAuthor, FieldURL) {
		switch field {
		case FieldTitle:
			if strings.TrimSpace(draft.Title) == "" {
				return ErrEmptyTitle
			}
		case FieldAuthor:
			if strings.TrimSpace(draft.Author) == "" {
				return ErrEmptyAuthor
			}
		case FieldURL:
			if draft.URL == "" {
				return ErrEmptyURL
			}
			if !isAbsoluteHTTPURL(draft.URL) {
				return fmt.Errorf("%w: %q", ErrInvalidURL, draft.URL)
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
	}

	return nil
}

// scope returns the requested fields, or all known fields when none were
// named.
func scope(requested []string, all ...string) []string {
	if len(requested) == 0 {
		return all
	}
	return requested
}

func isAbsoluteHTTPURL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
