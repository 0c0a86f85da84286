package domain

import "errors"

// Store level errors returned by repositories.
var (
	ErrNotFound       = errors.New("not found")
	ErrDuplicateEntry = errors.New("duplicate entry")
	ErrNoRowsAffected = errors.New("no rows affected")
)
