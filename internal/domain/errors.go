package domain

import "errors"

var (
	ErrNotFound           = errors.New("not found")
	ErrIntegrityViolation = errors.New("referential integrity violation")
)
