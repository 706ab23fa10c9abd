package postgres

import (
	"strings"

	domainerrors "favorites/internal/domain/errors"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// Helper functions for constraint error checking. GORM translates driver
// errors when TranslateError is on; the message checks cover drivers that don't.
func isUniqueConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	errMsg := strings.ToLower(err.Error())

	return strings.Contains(errMsg, "duplicate key") ||
		strings.Contains(errMsg, "unique constraint") ||
		strings.Contains(errMsg, "23505")
}

func isForeignKeyConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return true
	}

	errMsg := strings.ToLower(err.Error())

	return strings.Contains(errMsg, "foreign key constraint") ||
		strings.Contains(errMsg, "23503")
}

func isNotNullConstraintViolation(err error) bool {
	errMsg := strings.ToLower(err.Error())

	return strings.Contains(errMsg, "null value") ||
		strings.Contains(errMsg, "not null constraint") ||
		strings.Contains(errMsg, "23502")
}

func isCheckConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrCheckConstraintViolated) {
		return true
	}

	errMsg := strings.ToLower(err.Error())

	return strings.Contains(errMsg, "check constraint") ||
		strings.Contains(errMsg, "23514")
}

// translateWriteError maps a failed write onto the domain taxonomy.
func translateWriteError(err error, conflictMsg, details string) error {
	switch {
	case isUniqueConstraintViolation(err):
		return domainerrors.Conflict(conflictMsg).WithCause(err)
	case isForeignKeyConstraintViolation(err):
		return domainerrors.NotFound("referenced record does not exist").WithCause(err)
	case isCheckConstraintViolation(err):
		return domainerrors.OutOfRange("value rejected by store constraint").WithCause(err)
	case isNotNullConstraintViolation(err):
		return domainerrors.Empty("missing required value").WithCause(err)
	default:
		return domainerrors.DatabaseExecute(err, details)
	}
}

// escapeLike makes user text literal inside a LIKE pattern. Pair it with ESCAPE '\'.
func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}
