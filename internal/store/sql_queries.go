// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-snooze-client/models"
)

// The session table holds at most one row, pinned to id = 1 by a CHECK
// constraint. Saving replaces the row in place so the store can never hold
// two credentials.
const sessionRowID = 1

func buildUpsertSessionQuery(cred models.SessionCredential) (string, []any, error) {
	return sq.Insert("session").
		Columns("id", "token", "username", "saved_at").
		Values(sessionRowID, cred.Token, cred.Username, cred.SavedAt).
		Suffix(`ON CONFLICT (id) DO UPDATE SET
			token = excluded.token,
			username = excluded.username,
			saved_at = excluded.saved_at`).
		ToSql()
}

func buildSelectSessionQuery() (string, []any, error) {
	return sq.Select("token", "username", "saved_at").
		From("session").
		Where(sq.Eq{"id": sessionRowID}).
		ToSql()
}

func buildDeleteSessionQuery() (string, []any, error) {
	return sq.Delete("session").
		Where(sq.Eq{"id": sessionRowID}).
		ToSql()
}
