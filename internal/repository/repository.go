// internal/repository/repository.go
package repository

import (
	"errors"
	"log/slog"
	"strings"

	"gorm.io/gorm"
)

// Transaction interface for handling DB transactions.
type Transaction interface {
	Commit() error
	Rollback() error
}

// gormTransaction is a wrapper for a GORM DB transaction.
type gormTransaction struct {
	tx *gorm.DB
}

// Commit finalizes the transaction.
func (t *gormTransaction) Commit() error {
	return t.tx.Commit().Error
}

// Rollback reverts the transaction.
func (t *gormTransaction) Rollback() error {
	slog.Warn("Rolling back transaction")
	return t.tx.Rollback().Error
}

// isDuplicateErr reports whether a write failed on a unique index.
func isDuplicateErr(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	// pgconn surfaces unique violations as SQLSTATE 23505
	return err != nil && strings.Contains(err.Error(), "23505")
}
