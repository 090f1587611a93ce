package postgres

import (
	"strings"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// Postgres surfaces constraint failures either as translated gorm sentinels
// or as raw SQLSTATE text, depending on the driver's TranslateError setting.
// Both forms are matched so the repository error mapping works either way.

// isUniqueConstraintViolation matches the duplicate-key failure behind
// first-writer sensor binding and the per-user device token uniqueness.
func isUniqueConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	msg := strings.ToLower(err.Error())

	return strings.Contains(msg, "sqlstate 23505") ||
		strings.Contains(msg, "duplicate key value")
}

func isForeignKeyConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return true
	}

	msg := strings.ToLower(err.Error())

	return strings.Contains(msg, "sqlstate 23503") ||
		strings.Contains(msg, "violates foreign key")
}
