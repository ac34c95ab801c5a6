package errors

import (
	"context"
	"errors"
	"regexp"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// reKeyField extracts the column list from a unique violation detail:
// "Key (field)=(value) already exists.".
var reKeyField = regexp.MustCompile(`Key \(([^)]+)\)=`)

// MapDBError maps database errors to AppError instances:
//   - pgx.ErrNoRows → NotFound
//   - unique constraint violations → Conflict
//   - foreign key / check / not-null violations → Validation
//   - context timeouts/cancellations → Internal (wrapped)
//
// Unrecognized errors are returned unchanged.
func MapDBError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return Wrap(err, ErrCodeInternal, "request interrupted")
	}

	if errors.Is(err, pgx.ErrNoRows) {
		return Wrap(err, ErrCodeNotFound, "resource not found")
	}

	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}

	switch pgErr.Code {
	case pgerrcode.UniqueViolation:
		appErr := Wrap(err, ErrCodeConflict, "resource already exists")
		if m := reKeyField.FindStringSubmatch(pgErr.Detail); len(m) == 2 {
			appErr.Field = m[1]
		}
		return appErr
	case pgerrcode.ForeignKeyViolation:
		return Wrap(err, ErrCodeValidation, "referenced resource does not exist or is in use")
	case pgerrcode.CheckViolation, pgerrcode.NotNullViolation:
		appErr := Wrap(err, ErrCodeValidation, "invalid value")
		appErr.Field = pgErr.ColumnName
		return appErr
	}
	return err
}
