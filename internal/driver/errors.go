package driver

import (
	"errors"
	"fmt"
)

// Kind classifies transport failures: the response could not be obtained at
// all, or came back with an unacceptable HTTP status.
type Kind int

const (
	// KindConnection means the connection could not be established.
	KindConnection Kind = iota
	// KindTimeout means the call exceeded the configured timeout.
	KindTimeout
	// KindAuthentication means the server answered 401.
	KindAuthentication
	// KindStatus means any other non-2xx HTTP status.
	KindStatus
	// KindUnexpected covers transport failures outside the kinds above.
	KindUnexpected
)

func (k Kind) String() string {
	switch k {
	case KindConnection:
		return "connection"
	case KindTimeout:
		return "timeout"
	case KindAuthentication:
		return "authentication"
	case KindStatus:
		return "status"
	default:
		return "unexpected"
	}
}

// Error is a tagged transport failure. StatusCode is set for the
// authentication and status kinds, zero otherwise.
type Error struct {
	Kind       Kind
	StatusCode int
	Message    string
	Err        error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// KindOf reports the transport kind of err, if it carries one.
func KindOf(err error) (Kind, bool) {
	var de *Error
	if errors.As(err, &de) {
		return de.Kind, true
	}
	return 0, false
}
