package store

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/go-user-hub/models"
)

// userColumns is the canonical column list of the "users" table in scan order.
var userColumns = []string{
	"user_id",
	"email",
	"password_hash",
	"name",
	"is_admin",
	"profile_image_url",
	"created_at",
	"updated_at",
}

const (
	createUser = `INSERT INTO users (email, password_hash, name, is_admin)
    VALUES ($1, $2, $3, $4)
    RETURNING user_id, email, password_hash, name, is_admin, profile_image_url, created_at, updated_at;`

	findUserByEmail = `SELECT user_id, email, password_hash, name, is_admin, profile_image_url, created_at, updated_at
    FROM users
    WHERE email = $1;`

	findUserByID = `SELECT user_id, email, password_hash, name, is_admin, profile_image_url, created_at, updated_at
    FROM users
    WHERE user_id = $1;`

	deleteUser = `DELETE FROM users
    WHERE user_id = $1;`
)

// psql is the squirrel statement builder configured for PostgreSQL
// positional placeholders ($1, $2, ...).
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// buildListUsersQuery builds the admin listing query: every column of every
// user, ordered by creation time, newest first.
func buildListUsersQuery() (string, []any, error) {
	query, args, err := psql.
		Select(userColumns...).
		From("users").
		OrderBy("created_at DESC").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// buildUpdateUserQuery builds a partial UPDATE for the given user: only
// non-nil fields of update produce SET clauses, updated_at is always bumped,
// and the full row is returned so the caller receives the canonical state.
//
// Returns ErrBuildingSQLQuery wrapped if update carries nothing to change.
func buildUpdateUserQuery(update models.UserUpdate) (string, []any, error) {
	if !update.HasChanges() {
		return "", nil, fmt.Errorf("%w: no fields to update", ErrBuildingSQLQuery)
	}

	builder := psql.
		Update("users").
		Set("updated_at", sq.Expr("NOW()"))

	if update.Name != nil {
		builder = builder.Set("name", *update.Name)
	}
	if update.Email != nil {
		builder = builder.Set("email", *update.Email)
	}
	if update.ProfileImageURL != nil {
		builder = builder.Set("profile_image_url", *update.ProfileImageURL)
	}

	query, args, err := builder.
		Where(sq.Eq{"user_id": update.UserID}).
		Suffix("RETURNING user_id, email, password_hash, name, is_admin, profile_image_url, created_at, updated_at").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}
