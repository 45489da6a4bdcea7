// Package nagios maps severities onto the supervisor's state constants and
// renders the one-line plugin report. All functions are pure.
package nagios

import (
	"fmt"

	"github.com/stackwatch/check-elastic-stack/internal/probe"
)

// State is one of the supervisor's native plugin states.
type State struct {
	Code  int
	Label string
}

var (
	Ok       = State{Code: 0, Label: "OK"}
	Warn     = State{Code: 1, Label: "WARNING"}
	Critical = State{Code: 2, Label: "CRITICAL"}
	Unknown  = State{Code: 3, Label: "UNKNOWN"}
)

var stateMapping = map[probe.Severity]State{
	probe.SeverityOK:       Ok,
	probe.SeverityWarning:  Warn,
	probe.SeverityCritical: Critical,
	probe.SeverityUnknown:  Unknown,
}

var stateMessages = map[probe.Severity]string{
	probe.SeverityOK:       "Service is up.",
	probe.SeverityWarning:  "Potential issue detected, investigate soon.",
	probe.SeverityCritical: "Service is in a critical state. Action needed immediately!",
	probe.SeverityUnknown:  "Service state is unknown, please check the configuration or logs.",
}

// Evaluate maps a severity onto the supervisor state. Anything outside the
// four known codes maps to Unknown rather than failing.
func Evaluate(severity probe.Severity) State {
	state, ok := stateMapping[severity]
	if !ok {
		return Unknown
	}
	return state
}

// Describe returns the override message verbatim when one was supplied,
// otherwise the fixed default message for the severity.
func Describe(severity probe.Severity, override string) string {
	if override != "" {
		return override
	}
	message, ok := stateMessages[severity]
	if !ok {
		return "No status available"
	}
	return message
}

// Performance returns the machine-readable perfdata string.
func Performance(severity probe.Severity) string {
	return fmt.Sprintf("service_status=%d", Evaluate(severity).Code)
}

// Report renders the full plugin output line.
func Report(severity probe.Severity, override string) string {
	state := Evaluate(severity)
	return fmt.Sprintf("%s - %s | %s", state.Label, Describe(severity, override), Performance(severity))
}
