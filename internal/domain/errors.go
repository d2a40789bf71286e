package domain

import "errors"

var (
	ErrNotFound           = errors.New("not found")
	ErrInsufficientSeats  = errors.New("insufficient seats")
	ErrValidation         = errors.New("invalid input")
	ErrStorageUnavailable = errors.New("storage unavailable")
	ErrConflict           = errors.New("conflict")
)
