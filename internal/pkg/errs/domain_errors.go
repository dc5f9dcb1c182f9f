package errs

import "errors"

// Domain-specific sentinel errors for CQRS usecase layers
var (
	// Room errors
	ErrRoomNotFound = errors.New("room not found")

	// Booking errors
	ErrBookingNotFound  = errors.New("booking not found")
	ErrBookingAccess    = errors.New("booking access denied")
	ErrSlotUnavailable  = errors.New("time slot unavailable")
	ErrInvalidTimeRange = errors.New("invalid time range")

	// User errors
	ErrUserNotFound  = errors.New("user not found")
	ErrEmailTaken    = errors.New("email already registered")
	ErrSessionRevoke = errors.New("session revoke failed")

	// Validation errors
	ErrDomainValidation = errors.New("domain validation error")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
