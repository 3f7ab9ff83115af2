package shopapi

import "errors"

// ErrUnreachable indicates a transport-level failure contacting the commerce API.
var ErrUnreachable = errors.New("commerce api unreachable")

// RejectionError indicates the commerce API answered with success=false.
type RejectionError struct {
	Message string
}

func (e RejectionError) Error() string {
	return e.Message
}
