// Package check drives a single health check invocation: resolve the
// probe, run it, collapse any failure into a severity, and render the
// plugin report.
package check

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/stackwatch/check-elastic-stack/internal/driver"
	"github.com/stackwatch/check-elastic-stack/internal/nagios"
	"github.com/stackwatch/check-elastic-stack/internal/probe"
	"github.com/stackwatch/check-elastic-stack/internal/probes"
)

// Params describe one invocation.
type Params struct {
	Service  string
	Endpoint string
	User     string
	Password string
	Timeout  time.Duration
}

// Outcome is the final, reportable result of one invocation.
type Outcome struct {
	Severity probe.Severity
	Line     string
	ExitCode int
}

// overrideMessages carries the fixed transport-error text into the report.
var overrideMessages = map[driver.Kind]string{
	driver.KindConnection:     "Unable to connect to the service.",
	driver.KindTimeout:        "Service request timed out.",
	driver.KindAuthentication: "Authentication failed for the service.",
	driver.KindStatus:         "An HTTP status error occurred.",
	driver.KindUnexpected:     "An unexpected error occurred.",
}

// Run performs one synchronous check. Probe and transport failures are
// collapsed into severity UNKNOWN; only an unrecognized service name is
// returned as an error, since it is operator error rather than an
// environmental failure.
func Run(ctx context.Context, params Params, log *zap.Logger) (*Outcome, error) {
	factory, err := probes.Resolve(params.Service)
	if err != nil {
		return nil, err
	}

	d := driver.New(params.Timeout, log)
	p := factory(probe.Credentials{
		Endpoint: params.Endpoint,
		User:     params.User,
		Password: params.Password,
	}, d, log)

	severity, err := p.GetStatus(ctx)
	var override string
	if err != nil {
		severity = probe.SeverityUnknown
		override = collapse(err, log)
	}

	return &Outcome{
		Severity: severity,
		Line:     nagios.Report(severity, override),
		ExitCode: nagios.Evaluate(severity).Code,
	}, nil
}

// collapse logs the failure and returns the override message for transport
// errors. Interpretation errors keep the default UNKNOWN text.
func collapse(err error, log *zap.Logger) string {
	if kind, ok := driver.KindOf(err); ok {
		log.Error("transport error", zap.Stringer("kind", kind), zap.Error(err))
		return overrideMessages[kind]
	}
	if kind, ok := probe.KindOf(err); ok {
		log.Error("status interpretation error", zap.Stringer("kind", kind), zap.Error(err))
		return ""
	}
	log.Error("unclassified error", zap.Error(err))
	return overrideMessages[driver.KindUnexpected]
}
