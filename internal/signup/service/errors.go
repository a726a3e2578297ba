package service

import "errors"

var (
	// ErrValidation marks a request rejected before anything was written.
	ErrValidation = errors.New("validation failed")

	// ErrStorage marks a failed write to, or read from, the file store.
	ErrStorage = errors.New("file storage failed")

	// ErrPersistence marks a failed read or write of user records.
	ErrPersistence = errors.New("user record store failed")

	// ErrFileNotFound is returned when a requested stored file does not exist.
	ErrFileNotFound = errors.New("file not found")
)

// ValidationError describes why a registration was rejected. Its message is
// safe to show to the submitting client.
type ValidationError struct {
	Field    string // Form field the problem was found in
	Filename string // Original file name, empty for non-file fields
	Reason   string
}

func (e *ValidationError) Error() string { return e.Reason }

func (e *ValidationError) Is(target error) bool { return target == ErrValidation }
