package paging

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArguments is matched by every *ArgumentError.
	ErrInvalidArguments = errors.New("invalid pagination arguments")

	// ErrInvalidCursor is matched by every *CursorError.
	ErrInvalidCursor = errors.New("invalid cursor")
)

// ArgumentError is returned when PageArgs are conflicting or malformed.
// No store access happens once it is returned.
type ArgumentError struct {
	Reason string
}

func (e *ArgumentError) Error() string {
	return fmt.Sprintf("%s: %s", ErrInvalidArguments, e.Reason)
}

// Is makes errors.Is(err, ErrInvalidArguments) hold.
func (e *ArgumentError) Is(target error) bool {
	return target == ErrInvalidArguments
}

// CursorError is returned when a cursor token cannot be decoded or does not
// belong to the sort key it is used with.
type CursorError struct {
	Reason string
	Err    error
}

func (e *CursorError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", ErrInvalidCursor, e.Reason, e.Err)
	}
	return fmt.Sprintf("%s: %s", ErrInvalidCursor, e.Reason)
}

// Is makes errors.Is(err, ErrInvalidCursor) hold.
func (e *CursorError) Is(target error) bool {
	return target == ErrInvalidCursor
}

func (e *CursorError) Unwrap() error {
	return e.Err
}

// IsClientError reports whether err was caused by the caller's input rather
// than by the store. Transports can use it to pick a status code.
func IsClientError(err error) bool {
	return errors.Is(err, ErrInvalidArguments) || errors.Is(err, ErrInvalidCursor)
}
