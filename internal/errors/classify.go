package errors

import (
	"errors"
	"syscall"
)

// Category represents the type of error for display and handling purposes.
type Category int

const (
	// CategoryUnknown is the default for unclassified errors.
	CategoryUnknown Category = iota
	// CategoryUser indicates an error the user can fix (bad input, missing args).
	CategoryUser
	// CategorySystem indicates a system-level error (disk full, storage down).
	CategorySystem
	// CategoryInternal indicates an internal bug or unexpected state.
	CategoryInternal
)

// String returns the string representation of the category.
func (c Category) String() string {
	switch c {
	case CategoryUser:
		return "user"
	case CategorySystem:
		return "system"
	case CategoryInternal:
		return "internal"
	default:
		return "unknown"
	}
}

// Classify determines the category of an error.
func Classify(err error) Category {
	if err == nil {
		return CategoryUnknown
	}

	// Check for our typed errors first
	if IsUserError(err) {
		return CategoryUser
	}
	if IsSystemError(err) {
		return CategorySystem
	}

	// Validation sentinels are user-facing
	switch {
	case errors.Is(err, ErrTitleRequired),
		errors.Is(err, ErrInvalidPriority),
		errors.Is(err, ErrInvalidAttendees),
		errors.Is(err, ErrInvalidDate),
		errors.Is(err, ErrRecordNotFound):
		return CategoryUser
	}

	// Storage failures are system errors
	switch {
	case errors.Is(err, ErrPersistFailed),
		errors.Is(err, ErrDiskFull),
		errors.Is(err, ErrDatabaseCorrupted),
		errors.Is(err, ErrPermissionDenied):
		return CategorySystem
	}

	// OS-level errors from the storage layer
	switch {
	case errors.Is(err, syscall.ENOSPC):
		return CategorySystem
	case errors.Is(err, syscall.EACCES), errors.Is(err, syscall.EPERM):
		return CategorySystem
	}

	return CategoryInternal
}

// ClassifyStorage maps an OS-level storage failure onto a domain sentinel,
// keeping the original error in the chain.
func ClassifyStorage(err error) error {
	if err == nil {
		return nil
	}
	switch {
	case errors.Is(err, syscall.ENOSPC):
		return Wrapf(ErrDiskFull, "%v", err)
	case errors.Is(err, syscall.EACCES), errors.Is(err, syscall.EPERM):
		return Wrapf(ErrPermissionDenied, "%v", err)
	}
	return err
}
