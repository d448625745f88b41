package errs

import "errors"

// Domain-specific sentinel errors for the usecase layers
var (
	// Equipment errors
	ErrEquipmentNotFound = errors.New("equipment not found")

	// Booking errors
	ErrBookingNotFound       = errors.New("booking not found")
	ErrBookingConflict       = errors.New("booking conflict")
	ErrInvalidTransition     = errors.New("invalid booking status transition")
	ErrConflictLookupFailed  = errors.New("conflict lookup failed")

	// Auth errors
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrForbidden          = errors.New("forbidden")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
