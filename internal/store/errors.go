package store

import "errors"

// ErrNotFound matches any *NotFoundError via errors.Is.
var ErrNotFound = errors.New("Task not found")

// ValidationError reports the first failed field rule.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NotFoundError is returned when no task has the requested id.
type NotFoundError struct {
	ID string
}

func (e *NotFoundError) Error() string {
	return ErrNotFound.Error()
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}
