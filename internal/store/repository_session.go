package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-snooze-client/internal/logger"
	"github.com/MKhiriev/go-snooze-client/models"
)

// sessionRepository is the SQLite-backed implementation of [SessionStore].
// The credential lives in a single-row table so that "at most one session"
// is enforced by the schema, not by application bookkeeping.
type sessionRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewSessionRepository constructs a [SessionStore] backed by the provided
// database connection and logger.
func NewSessionRepository(db *DB, logger *logger.Logger) SessionStore {
	logger.Debug().Msg("creating session repository")
	return &sessionRepository{
		db:     db,
		logger: logger,
	}
}

// Save persists cred, replacing any previously stored credential in the same
// statement. The both-or-neither invariant is checked up front: a token
// without a username (or the reverse) is rejected with
// [ErrCredentialIncomplete] before any write happens.
func (r *sessionRepository) Save(ctx context.Context, cred models.SessionCredential) error {
	if cred.Token == "" || cred.Username == "" {
		return ErrCredentialIncomplete
	}

	query, args, err := buildUpsertSessionQuery(cred)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		r.logger.Err(err).Str("func", "*sessionRepository.Save").Msg("error saving session")
		return fmt.Errorf("%w: %v", ErrExecutingQuery, err)
	}

	return nil
}

// Load returns the stored credential or [ErrSessionNotFound] when the
// session table is empty.
func (r *sessionRepository) Load(ctx context.Context) (models.SessionCredential, error) {
	query, args, err := buildSelectSessionQuery()
	if err != nil {
		return models.SessionCredential{}, fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}

	var cred models.SessionCredential
	row := r.db.QueryRowContext(ctx, query, args...)
	if err = row.Scan(&cred.Token, &cred.Username, &cred.SavedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.SessionCredential{}, ErrSessionNotFound
		}

		r.logger.Err(err).Str("func", "*sessionRepository.Load").Msg("error loading session")
		return models.SessionCredential{}, fmt.Errorf("%w: %v", ErrExecutingQuery, err)
	}

	return cred, nil
}

// Clear deletes the stored credential. Deleting from an empty table affects
// zero rows and is not treated as an error.
func (r *sessionRepository) Clear(ctx context.Context) error {
	query, args, err := buildDeleteSessionQuery()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		r.logger.Err(err).Str("func", "*sessionRepository.Clear").Msg("error clearing session")
		return fmt.Errorf("%w: %v", ErrExecutingQuery, err)
	}

	return nil
}
