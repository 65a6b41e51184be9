package service

import "errors"

var (
	// ErrChecklistLocked means the editing checklist was touched before the
	// shoot was marked done.
	ErrChecklistLocked = errors.New("editing checklist is locked until the shoot is marked done")

	// ErrAlreadyDelivered means a delivery was attempted on a booking that is
	// already delivered.
	ErrAlreadyDelivered = errors.New("booking is already delivered")

	// ErrNegativeCollected rejects a negative collection amount at delivery.
	ErrNegativeCollected = errors.New("collected amount cannot be negative")

	// ErrTaskNotFound means the checklist has no task with the given id.
	ErrTaskNotFound = errors.New("checklist task not found")

	// ErrValidation covers rejected booking or settings fields.
	ErrValidation = errors.New("validation failed")
)
