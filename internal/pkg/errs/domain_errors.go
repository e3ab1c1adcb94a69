package errs

import "errors"

// Domain-specific sentinel errors shared across the usecase layer
var (
	// Booking errors
	ErrBookingValidation = errors.New("booking validation failed")
	ErrSlotUnavailable   = errors.New("slot unavailable")
	ErrAlreadyBooked     = errors.New("slot already booked")
	ErrBookingNotFound   = errors.New("booking not found")

	// Schedule errors
	ErrSlotNotFound  = errors.New("slot not found")
	ErrDuplicateSlot = errors.New("slot already exists")

	// Reminder errors
	ErrReminderValidation = errors.New("reminder validation failed")

	// Catalog errors
	ErrServiceNotFound   = errors.New("service not found")
	ErrServiceValidation = errors.New("service validation failed")

	// Auth errors
	ErrUnauthorized = errors.New("unauthorized")

	// Operation errors
	ErrStorageFailure = errors.New("storage operation failed")
)
