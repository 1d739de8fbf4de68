package store

import (
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/emarchenko/go-identity/models"
)

// psql is the shared statement builder configured for PostgreSQL-style
// $N placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// userColumns is the canonical column order used by every user query and
// matched by every row scan in this package.
var userColumns = []string{"user_id", "email", "password_hash", "name", "created_at"}

// buildCreateUserQuery builds the INSERT statement for a new user record.
// All persisted columns are returned so the caller receives the canonical
// database representation including server-assigned fields.
func buildCreateUserQuery(user models.User) (string, []any, error) {
	query, args, err := psql.
		Insert(user.TableName()).
		Columns("email", "password_hash", "name").
		Values(user.Email, user.PasswordHash, user.Name).
		Suffix("RETURNING " + strings.Join(userColumns, ", ")).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// buildFindUserByEmailQuery builds the SELECT statement that looks a user up
// by exact email match.
func buildFindUserByEmailQuery(email string) (string, []any, error) {
	query, args, err := psql.
		Select(userColumns...).
		From(models.User{}.TableName()).
		Where(sq.Eq{"email": email}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}
