package persistence

import (
	"errors"

	"github.com/quickvendor/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// translateError maps storage errors onto domain sentinels. Unique
// constraint violations become ErrAlreadyExists so callers can treat a
// lost check-then-write race as a retryable collision.
func translateError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return shared.ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return shared.ErrAlreadyExists
	default:
		return err
	}
}
