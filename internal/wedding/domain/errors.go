package domain

import (
	"errors"
	"fmt"
)

// Category sentinels. Concrete errors below match them through errors.Is.
var (
	ErrValidation = errors.New("validation failed")
	ErrNotFound   = errors.New("not found")
)

// ValidationError is a caller-correctable input problem. Message is safe
// to show to the person who submitted the input.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func (e *ValidationError) Is(target error) bool { return target == ErrValidation }

// Invalid builds a ValidationError from a format string.
func Invalid(format string, args ...any) error {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// NotFoundError reports that the named resource does not exist.
type NotFoundError struct {
	Resource string
	Message  string
}

func (e *NotFoundError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return e.Resource + " not found"
}

func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }

func NotFound(resource, message string) error {
	return &NotFoundError{Resource: resource, Message: message}
}

// Messages reused across packages.
const (
	MsgInviteNotFound = "Invite not found"
)
