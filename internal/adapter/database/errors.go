package database

import (
	"database/sql"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"

	"cadastro/internal/core/domain"
)

// Postgres SQLSTATE codes, see https://www.postgresql.org/docs/current/errcodes-appendix.html
const (
	pgUniqueViolation  = "23505"
	pgCheckViolation   = "23514"
	pgNotNullViolation = "23502"
	pgOutOfRange       = "22003"
)

// TranslateError maps driver errors to the domain taxonomy. id is used for
// not found errors and may be zero when the operation has no key.
func TranslateError(err error, operation, resource string, id int64) error {
	if err == nil {
		return nil
	}

	var de *domain.Error

	if errors.As(err, &de) {
		return err
	}

	if errors.Is(err, sql.ErrNoRows) {
		return domain.NewNotFoundError(resource, id)
	}

	var liteErr sqlite3.Error

	if errors.As(err, &liteErr) {
		switch liteErr.ExtendedCode {
		case sqlite3.ErrConstraintUnique, sqlite3.ErrConstraintPrimaryKey:
			return domain.NewConflictError(resource, err)
		case sqlite3.ErrConstraintCheck, sqlite3.ErrConstraintNotNull:
			return &domain.Error{Kind: domain.ErrValidation, Resource: resource, Message: liteErr.Error(), Cause: err}
		}
	}

	var pgErr *pgconn.PgError

	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return domain.NewConflictError(resource, err)
		case pgCheckViolation, pgNotNullViolation, pgOutOfRange:
			return &domain.Error{Kind: domain.ErrValidation, Resource: resource, Message: pgErr.Message, Cause: err}
		}
	}

	return domain.NewStorageError(operation, err)
}
