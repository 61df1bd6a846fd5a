package errs

import "errors"

// Domain-specific sentinel errors shared by the usecase layers
var (
	// Booking errors
	ErrBookingNotFound = errors.New("booking not found")
	ErrSlotTaken       = errors.New("slot already taken")

	// Authorization errors
	ErrForbidden = errors.New("forbidden")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
