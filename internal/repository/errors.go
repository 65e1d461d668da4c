package repository

import (
	"errors"
	"fmt"
	"strings"

	"catalog_service/internal/domain"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

const pqForeignKeyViolation = "23503"

// translateError converts store errors into the domain taxonomy. Errors it does not
// recognise are returned unchanged.
func translateError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%w: %v", domain.ErrNotFound, err)
	}
	if isForeignKeyViolation(err) {
		return fmt.Errorf("%w: %v", domain.ErrIntegrityViolation, err)
	}
	return err
}

func isForeignKeyViolation(err error) bool {
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return true
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == pqForeignKeyViolation {
		return true
	}
	// sqlite reports "FOREIGN KEY constraint failed" when the translator is not in play
	return strings.Contains(strings.ToLower(err.Error()), "foreign key constraint")
}
