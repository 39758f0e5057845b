package dberrors

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// unique_violation
const uniqueViolationCode = "23505"

// IsDuplicateConstraintError reports whether err is a PostgreSQL unique
// violation on the named constraint. Repositories use it to map schema
// constraints to domain conflicts, e.g. users_email_key or
// team_members_team_id_user_id_key.
func IsDuplicateConstraintError(err error, constraintName string) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode && pgErr.ConstraintName == constraintName
}
