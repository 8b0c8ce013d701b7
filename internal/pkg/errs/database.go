package errs

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// uniqueViolationCode is the SQLSTATE PostgreSQL reports for unique index violations.
const uniqueViolationCode = "23505"

// FromDatabase translates a store error for the entity paramName/id into the
// package's typed errors. Unknown errors are returned unchanged.
func FromDatabase(err error, paramName string, id any) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return NewObjectNotFoundError(paramName, id)
	case IsUniqueViolation(err):
		return NewObjectAlreadyExistsErrorWithCause(paramName, id, err)
	default:
		return err
	}
}

// IsUniqueViolation reports whether err is a unique constraint violation raised by
// PostgreSQL (pgx or lib/pq drivers), SQLite, or GORM's translated duplicate key error.
func IsUniqueViolation(err error) bool {
	if err == nil {
		return false
	}

	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	var pgxErr *pgconn.PgError
	if errors.As(err, &pgxErr) {
		return pgxErr.Code == uniqueViolationCode
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code) == uniqueViolationCode
	}

	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
