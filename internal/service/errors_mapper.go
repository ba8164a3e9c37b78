// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-snooze-client/internal/adapter"
)

// The mappers translate the adapter's transport sentinels into service-level
// business errors while keeping the server's message reachable through the
// error chain. Transport failures (no matching sentinel) pass through
// unchanged so callers can distinguish "server said no" from "network down".

func mapSignupError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, adapter.ErrConflict):
		return fmt.Errorf("%w: %v", ErrUsernameTaken, err)
	case errors.Is(err, adapter.ErrBadRequest):
		return fmt.Errorf("%w: %v", ErrInvalidSignup, err)
	default:
		return err
	}
}

func mapLoginError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, adapter.ErrUnauthorized), errors.Is(err, adapter.ErrNotFound):
		return fmt.Errorf("%w: %v", ErrInvalidCredentials, err)
	default:
		return err
	}
}

func mapCreateStoryError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, adapter.ErrUnauthorized), errors.Is(err, adapter.ErrForbidden):
		return fmt.Errorf("%w: %v", ErrNotAuthenticated, err)
	case errors.Is(err, adapter.ErrBadRequest):
		return fmt.Errorf("%w: %v", ErrInvalidStoryDraft, err)
	default:
		return err
	}
}

func mapFavoriteError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, adapter.ErrUnauthorized), errors.Is(err, adapter.ErrForbidden):
		return fmt.Errorf("%w: %v", ErrNotAuthenticated, err)
	default:
		return err
	}
}

// sessionRejected reports whether err means the stored credential is stale
// or revoked, which during restore must clear the session store rather than
// surface as a failure.
func sessionRejected(err error) bool {
	return errors.Is(err, adapter.ErrUnauthorized) || errors.Is(err, adapter.ErrForbidden)
}
