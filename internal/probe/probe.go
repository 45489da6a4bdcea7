package probe

import "context"

// Credentials holds the base endpoint and the Basic Auth pair for one
// invocation. They live only for the lifetime of a single check and are
// never logged in cleartext.
type Credentials struct {
	Endpoint string
	User     string
	Password string
}

// Probe fetches and interprets one remote health endpoint. Implementations
// never return a partial result: either a severity or a typed error.
type Probe interface {
	Name() string
	GetStatus(ctx context.Context) (Severity, error)
}

// Description is the self-description format for service probes.
type Description struct {
	Name        string
	Description string
	StatusPath  string
}
