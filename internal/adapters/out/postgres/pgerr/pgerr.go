// Package pgerr translates postgres driver errors into the errs taxonomy used
// by the application core.
package pgerr

import (
	"errors"

	"sourcing/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// uniqueViolation is the SQLSTATE of a duplicate key.
const uniqueViolation = "23505"

// IsUniqueViolation reports whether err is a duplicate key error.
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == uniqueViolation
	}
	return errors.Is(err, gorm.ErrDuplicatedKey)
}

// Conflict returns an errs.ConflictError for a duplicate key error and nil otherwise.
func Conflict(err error, paramName string, value any) error {
	if !IsUniqueViolation(err) {
		return nil
	}
	return errs.NewConflictErrorWithCause(paramName, value, err)
}

// ConflictOn is Conflict restricted to a duplicate on the named constraint.
func ConflictOn(err error, constraint, paramName string, value any) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != uniqueViolation || pgErr.ConstraintName != constraint {
		return nil
	}
	return errs.NewConflictErrorWithCause(paramName, value, err)
}

// Unavailable wraps a store failure. Not found and errors already classified
// by errs pass through unchanged.
func Unavailable(operation string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, errs.ErrObjectNotFound) ||
		errors.Is(err, errs.ErrConflict) ||
		errors.Is(err, errs.ErrStoreUnavailable) {
		return err
	}
	return errs.NewStoreUnavailableError(operation, err)
}
