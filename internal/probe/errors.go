package probe

import (
	"errors"
	"fmt"
)

// ErrorKind classifies interpretation failures: a response (or a service
// name) was obtained but could not be mapped onto the severity scale.
type ErrorKind int

const (
	// KindInvalidStatus means the expected field is absent from the
	// response, or its value falls outside the service's vocabulary.
	KindInvalidStatus ErrorKind = iota
	// KindStatusFormat means the field is present but null or not the
	// expected shape.
	KindStatusFormat
	// KindNotFound means the requested service name is not registered.
	KindNotFound
)

func (k ErrorKind) String() string {
	switch k {
	case KindInvalidStatus:
		return "invalid_status"
	case KindStatusFormat:
		return "status_format"
	case KindNotFound:
		return "not_found"
	default:
		return "unknown"
	}
}

// DomainError is a tagged interpretation failure.
type DomainError struct {
	Kind    ErrorKind
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

// Errorf builds a DomainError with a formatted message.
func Errorf(kind ErrorKind, format string, args ...any) *DomainError {
	return &DomainError{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// KindOf reports the domain kind of err, if it carries one.
func KindOf(err error) (ErrorKind, bool) {
	var de *DomainError
	if errors.As(err, &de) {
		return de.Kind, true
	}
	return 0, false
}
