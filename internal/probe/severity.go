package probe

// Severity is the four-level scale every check result and every error
// condition collapses to before reporting. The numeric values double as the
// plugin exit codes.
type Severity int

const (
	SeverityOK Severity = iota
	SeverityWarning
	SeverityCritical
	SeverityUnknown
)

func (s Severity) String() string {
	switch s {
	case SeverityOK:
		return "OK"
	case SeverityWarning:
		return "WARNING"
	case SeverityCritical:
		return "CRITICAL"
	default:
		return "UNKNOWN"
	}
}

// Code returns the numeric plugin code for the severity.
func (s Severity) Code() int {
	return int(s)
}
